package todo

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/jsamuelsen11/go-todo-service/internal/domain"
)

// Pagination defaults and bounds.
const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// Query parameter names accepted by TranslateQuery.
const (
	ParamPage      = "page"
	ParamLimit     = "limit"
	ParamCompleted = "completed"
	ParamPriority  = "priority"
	ParamSearch    = "search"
)

// Filter holds optional filter criteria for listing todos.
// Zero-value fields mean "no filter" for that dimension; all present terms
// are combined with AND.
type Filter struct {
	Completed *bool
	Priority  Priority
	Search    string
}

// IsZero reports whether the filter matches every record.
func (f Filter) IsZero() bool {
	return f.Completed == nil && f.Priority == "" && f.Search == ""
}

// ListQuery is the normalized descriptor built from raw list parameters.
type ListQuery struct {
	Filter Filter
	Page   int
	Limit  int
	Skip   int
}

// DefaultListQuery returns the descriptor used when no parameters are given.
func DefaultListQuery() ListQuery {
	return ListQuery{Page: DefaultPage, Limit: DefaultLimit, Skip: 0}
}

// TranslateQuery converts raw list parameters into a ListQuery. It has no
// side effects.
//
//   - page, limit: positive base-10 integers; empty or absent means the default.
//     Anything else is a validation error.
//   - completed: present means a filter term; only the literal "true" is true.
//   - priority: exact match when non-empty (not checked against the enum).
//   - search: case-insensitive substring of the title when non-empty.
func TranslateQuery(params url.Values) (ListQuery, error) {
	verr := &domain.ValidationError{}

	page := parsePositive(params.Get(ParamPage), DefaultPage, ParamPage, verr)
	limit := parsePositive(params.Get(ParamLimit), DefaultLimit, ParamLimit, verr)
	if limit > MaxLimit {
		verr.Add(ParamLimit, fmt.Sprintf("limit must be at most %d", MaxLimit))
	}
	if err := verr.OrNil(); err != nil {
		return ListQuery{}, err
	}

	var f Filter
	if params.Has(ParamCompleted) {
		completed := params.Get(ParamCompleted) == "true"
		f.Completed = &completed
	}
	f.Priority = Priority(params.Get(ParamPriority))
	f.Search = params.Get(ParamSearch)

	return ListQuery{
		Filter: f,
		Page:   page,
		Limit:  limit,
		Skip:   (page - 1) * limit,
	}, nil
}

func parsePositive(raw string, def int, name string, verr *domain.ValidationError) int {
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		verr.Add(name, name+" must be a positive integer")
		return def
	}
	return n
}
