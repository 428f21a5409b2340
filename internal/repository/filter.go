package repository

import (
	"strings"

	"gorm.io/gorm"
)

// Filter is a backend-agnostic predicate tree. Repositories render it to a
// WHERE clause; handlers build it from validated query input so field names
// never come from the client verbatim.
type Filter interface {
	expr() (string, []any)
}

type cond struct {
	field string
	op    string
	value any
}

func (c cond) expr() (string, []any) {
	switch c.op {
	case "contains":
		return c.field + " LIKE ?", []any{"%" + c.value.(string) + "%"}
	default:
		return c.field + " " + c.op + " ?", []any{c.value}
	}
}

type group struct {
	joiner  string
	filters []Filter
}

func (g group) expr() (string, []any) {
	if len(g.filters) == 0 {
		return "", nil
	}
	parts := make([]string, 0, len(g.filters))
	var args []any
	for _, f := range g.filters {
		sql, a := f.expr()
		if sql == "" {
			continue
		}
		parts = append(parts, "("+sql+")")
		args = append(args, a...)
	}
	return strings.Join(parts, " "+g.joiner+" "), args
}

// Eq matches rows where field equals value.
func Eq(field string, value any) Filter { return cond{field: field, op: "=", value: value} }

// Contains matches rows where field contains value as a substring.
func Contains(field, value string) Filter { return cond{field: field, op: "contains", value: value} }

func And(filters ...Filter) Filter { return group{joiner: "AND", filters: filters} }

func Or(filters ...Filter) Filter { return group{joiner: "OR", filters: filters} }

// All matches every row.
func All() Filter { return group{} }

// ApplyFilter renders f onto db. A nil or empty filter leaves db unchanged.
func ApplyFilter(db *gorm.DB, f Filter) *gorm.DB {
	if f == nil {
		return db
	}
	sql, args := f.expr()
	if sql == "" {
		return db
	}
	return db.Where(sql, args...)
}
