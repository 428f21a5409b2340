package repository

import (
	"math"

	"gorm.io/gorm"
)

const (
	DefaultPage  = 1
	DefaultLimit = 25
	MaxLimit     = 100
)

type PageRequest struct {
	Page  int
	Limit int
}

type PageResult[T any] struct {
	Data            []T   `json:"data"`
	Page            int   `json:"page"`
	Limit           int   `json:"limit"`
	NumberOfPages   int   `json:"numberOfPages"`
	NumberOfResults int64 `json:"numberOfResults"`
}

func normalizePageRequest(in PageRequest) PageRequest {
	page := in.Page
	if page < 1 {
		page = DefaultPage
	}
	limit := in.Limit
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return PageRequest{Page: page, Limit: limit}
}

func numberOfPages(total int64, limit int) int {
	if total <= 0 || limit <= 0 {
		return 0
	}
	return int(math.Ceil(float64(total) / float64(limit)))
}

// Paginate counts the rows matched by filter, then fetches one page offset by
// (page-1)*limit. Preloads apply to the fetch only; the count runs against
// the bare filter.
func Paginate[T any](db *gorm.DB, filter Filter, order []string, preloads []string, req PageRequest) (*PageResult[T], error) {
	req = normalizePageRequest(req)

	var model T
	var total int64
	if err := ApplyFilter(db.Model(&model), filter).Count(&total).Error; err != nil {
		return nil, err
	}

	q := ApplyFilter(db, filter)
	for _, o := range order {
		q = q.Order(o)
	}
	for _, p := range preloads {
		q = q.Preload(p)
	}

	var rows []T
	if err := q.Offset((req.Page - 1) * req.Limit).Limit(req.Limit).Find(&rows).Error; err != nil {
		return nil, err
	}

	return &PageResult[T]{
		Data:            rows,
		Page:            req.Page,
		Limit:           req.Limit,
		NumberOfPages:   numberOfPages(total, req.Limit),
		NumberOfResults: total,
	}, nil
}
