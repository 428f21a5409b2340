package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/anbessa/iam-backend/internal/apperr"
	"github.com/anbessa/iam-backend/internal/repository"
)

func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return apperr.ValidationField("body", "invalid payload")
	}
	return nil
}

func parsePathID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, apperr.ValidationField("id", "id must be a positive number")
	}
	return uint(id), nil
}

// parsePageRequest reads page and limit from the query string. Absent
// values fall back to the defaults; present but non-numeric or non-positive
// values are rejected rather than silently coerced.
func parsePageRequest(r *http.Request) (repository.PageRequest, error) {
	req := repository.PageRequest{Page: repository.DefaultPage, Limit: repository.DefaultLimit}
	q := r.URL.Query()
	if raw := q.Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 1 {
			return req, apperr.ValidationField("page", apperr.MsgPageInvalid)
		}
		req.Page = page
	}
	if raw := q.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 {
			return req, apperr.ValidationField("limit", apperr.MsgLimitInvalid)
		}
		req.Limit = limit
	}
	return req, nil
}

// searchFilter builds a conjunction of Contains conditions from the query
// string, restricted to the given searchable columns.
func searchFilter(r *http.Request, columns ...string) repository.Filter {
	var conds []repository.Filter
	q := r.URL.Query()
	for _, col := range columns {
		if v := q.Get(col); v != "" {
			conds = append(conds, repository.Contains(col, v))
		}
	}
	if len(conds) == 0 {
		return repository.All()
	}
	return repository.And(conds...)
}

func requireFields(fields ...apperr.FieldError) error {
	var missing []apperr.FieldError
	for _, f := range fields {
		if f.Field != "" {
			missing = append(missing, f)
		}
	}
	if len(missing) > 0 {
		return apperr.Validation(missing...)
	}
	return nil
}

// fieldIfEmpty tags a required-field message when value is empty, and is
// skipped by requireFields otherwise.
func fieldIfEmpty(value, field, message string) apperr.FieldError {
	if value == "" {
		return apperr.FieldError{Field: field, Message: message}
	}
	return apperr.FieldError{}
}

func fieldIfZero(value uint, field, message string) apperr.FieldError {
	if value == 0 {
		return apperr.FieldError{Field: field, Message: message}
	}
	return apperr.FieldError{}
}
