package repository

import (
	"fmt"
	"testing"

	"github.com/anbessa/iam-backend/internal/domain"
)

func seedPermissions(t *testing.T, repo PermissionRepository, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		perm := &domain.Permission{
			Name:     fmt.Sprintf("Permission %03d", i),
			Code:     fmt.Sprintf("PERM_%03d", i),
			Type:     domain.PermissionRead,
			Resource: fmt.Sprintf("Resource %03d", i),
		}
		if err := repo.Create(perm); err != nil {
			t.Fatalf("seed permission %d: %v", i, err)
		}
	}
}

func TestPaginateSplitsIntoPages(t *testing.T) {
	db := newTestDB(t)
	repo := NewPermissionRepository(db)
	seedPermissions(t, repo, 53)

	page, err := repo.SearchPaged(nil, []string{"name asc"}, PageRequest{Page: 1, Limit: 25})
	if err != nil {
		t.Fatalf("SearchPaged: %v", err)
	}
	if page.NumberOfResults != 53 {
		t.Fatalf("expected 53 total, got %d", page.NumberOfResults)
	}
	if page.NumberOfPages != 3 {
		t.Fatalf("expected 3 pages, got %d", page.NumberOfPages)
	}
	if len(page.Data) != 25 {
		t.Fatalf("expected a full first page, got %d rows", len(page.Data))
	}
	if page.Data[0].Name != "Permission 000" {
		t.Fatalf("expected ordered first row, got %q", page.Data[0].Name)
	}
}

func TestPaginateLastPageIsPartial(t *testing.T) {
	db := newTestDB(t)
	repo := NewPermissionRepository(db)
	seedPermissions(t, repo, 53)

	page, err := repo.SearchPaged(nil, []string{"name asc"}, PageRequest{Page: 3, Limit: 25})
	if err != nil {
		t.Fatalf("SearchPaged: %v", err)
	}
	if len(page.Data) != 3 {
		t.Fatalf("expected 3 rows on the last page, got %d", len(page.Data))
	}
	if page.Data[0].Name != "Permission 050" {
		t.Fatalf("unexpected first row on page 3: %q", page.Data[0].Name)
	}
}

func TestPaginatePastTheEndIsEmpty(t *testing.T) {
	db := newTestDB(t)
	repo := NewPermissionRepository(db)
	seedPermissions(t, repo, 10)

	page, err := repo.SearchPaged(nil, nil, PageRequest{Page: 5, Limit: 25})
	if err != nil {
		t.Fatalf("SearchPaged: %v", err)
	}
	if len(page.Data) != 0 {
		t.Fatalf("expected empty page, got %d rows", len(page.Data))
	}
	if page.NumberOfResults != 10 || page.NumberOfPages != 1 {
		t.Fatalf("expected counts to survive an out-of-range page: %+v", page)
	}
}

func TestPaginateNormalizesRequest(t *testing.T) {
	db := newTestDB(t)
	repo := NewPermissionRepository(db)
	seedPermissions(t, repo, 30)

	page, err := repo.SearchPaged(nil, nil, PageRequest{})
	if err != nil {
		t.Fatalf("SearchPaged: %v", err)
	}
	if page.Page != DefaultPage || page.Limit != DefaultLimit {
		t.Fatalf("expected defaults, got page=%d limit=%d", page.Page, page.Limit)
	}

	page, err = repo.SearchPaged(nil, nil, PageRequest{Page: 1, Limit: 100000})
	if err != nil {
		t.Fatalf("SearchPaged: %v", err)
	}
	if page.Limit != MaxLimit {
		t.Fatalf("expected limit capped at %d, got %d", MaxLimit, page.Limit)
	}
}

func TestNumberOfPages(t *testing.T) {
	cases := []struct {
		total int64
		limit int
		want  int
	}{
		{0, 25, 0},
		{1, 25, 1},
		{25, 25, 1},
		{26, 25, 2},
		{53, 25, 3},
	}
	for _, c := range cases {
		if got := numberOfPages(c.total, c.limit); got != c.want {
			t.Fatalf("numberOfPages(%d, %d) = %d, want %d", c.total, c.limit, got, c.want)
		}
	}
}
