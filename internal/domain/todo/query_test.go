package todo

import (
	"net/url"
	"testing"
)

func mustParseQuery(t *testing.T, raw string) url.Values {
	t.Helper()
	v, err := url.ParseQuery(raw)
	if err != nil {
		t.Fatalf("url.ParseQuery(%q) error: %v", raw, err)
	}
	return v
}

func TestTranslateQuery_Defaults(t *testing.T) {
	t.Parallel()

	q, err := TranslateQuery(url.Values{})
	if err != nil {
		t.Fatalf("TranslateQuery() error = %v", err)
	}
	if q != DefaultListQuery() {
		t.Errorf("TranslateQuery() = %+v, want %+v", q, DefaultListQuery())
	}
	if !q.Filter.IsZero() {
		t.Errorf("Filter = %+v, want zero", q.Filter)
	}
}

func TestTranslateQuery_Pagination(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw       string
		wantPage  int
		wantLimit int
		wantSkip  int
	}{
		{raw: "page=2&limit=5", wantPage: 2, wantLimit: 5, wantSkip: 5},
		{raw: "limit=7", wantPage: 1, wantLimit: 7, wantSkip: 0},
		{raw: "page=3", wantPage: 3, wantLimit: 10, wantSkip: 20},
		{raw: "page=&limit=", wantPage: 1, wantLimit: 10, wantSkip: 0},
		{raw: "limit=100", wantPage: 1, wantLimit: 100, wantSkip: 0},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			t.Parallel()
			q, err := TranslateQuery(mustParseQuery(t, tt.raw))
			if err != nil {
				t.Fatalf("TranslateQuery(%q) error = %v", tt.raw, err)
			}
			if q.Page != tt.wantPage || q.Limit != tt.wantLimit || q.Skip != tt.wantSkip {
				t.Errorf("TranslateQuery(%q) = {page:%d limit:%d skip:%d}, want {page:%d limit:%d skip:%d}",
					tt.raw, q.Page, q.Limit, q.Skip, tt.wantPage, tt.wantLimit, tt.wantSkip)
			}
		})
	}
}

func TestTranslateQuery_RejectsBadPagination(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw       string
		wantField string
	}{
		{raw: "page=abc", wantField: ParamPage},
		{raw: "page=0", wantField: ParamPage},
		{raw: "page=-1", wantField: ParamPage},
		{raw: "page=1.5", wantField: ParamPage},
		{raw: "limit=xyz", wantField: ParamLimit},
		{raw: "limit=0", wantField: ParamLimit},
		{raw: "limit=101", wantField: ParamLimit},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			t.Parallel()
			_, err := TranslateQuery(mustParseQuery(t, tt.raw))
			requireValidationField(t, err, tt.wantField)
		})
	}
}

func TestTranslateQuery_BothPaginationErrorsReported(t *testing.T) {
	t.Parallel()

	_, err := TranslateQuery(mustParseQuery(t, "page=x&limit=y"))
	verr := requireValidationField(t, err, ParamPage)
	if !verr.Has(ParamLimit) {
		t.Errorf("violations = %v, want limit too", verr.Violations)
	}
	want := "page must be a positive integer, limit must be a positive integer"
	if verr.Message() != want {
		t.Errorf("Message() = %q, want %q", verr.Message(), want)
	}
}

func TestTranslateQuery_Completed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw  string
		want *bool
	}{
		{raw: "", want: nil},
		{raw: "completed=true", want: boolPtr(true)},
		{raw: "completed=false", want: boolPtr(false)},
		{raw: "completed=TRUE", want: boolPtr(false)},
		{raw: "completed=1", want: boolPtr(false)},
		{raw: "completed=", want: boolPtr(false)},
	}

	for _, tt := range tests {
		t.Run("q="+tt.raw, func(t *testing.T) {
			t.Parallel()
			q, err := TranslateQuery(mustParseQuery(t, tt.raw))
			if err != nil {
				t.Fatalf("TranslateQuery(%q) error = %v", tt.raw, err)
			}
			got := q.Filter.Completed
			switch {
			case tt.want == nil && got != nil:
				t.Errorf("Completed = %v, want nil", *got)
			case tt.want != nil && got == nil:
				t.Errorf("Completed = nil, want %v", *tt.want)
			case tt.want != nil && *got != *tt.want:
				t.Errorf("Completed = %v, want %v", *got, *tt.want)
			}
		})
	}
}

func TestTranslateQuery_ComposesFilters(t *testing.T) {
	t.Parallel()

	q, err := TranslateQuery(mustParseQuery(t, "completed=true&priority=high&search=Milk"))
	if err != nil {
		t.Fatalf("TranslateQuery() error = %v", err)
	}

	if q.Filter.Completed == nil || !*q.Filter.Completed {
		t.Errorf("Completed = %v, want true", q.Filter.Completed)
	}
	if q.Filter.Priority != PriorityHigh {
		t.Errorf("Priority = %q, want %q", q.Filter.Priority, PriorityHigh)
	}
	if q.Filter.Search != "Milk" {
		t.Errorf("Search = %q, want %q", q.Filter.Search, "Milk")
	}
}

func TestTranslateQuery_UnknownPriorityPassesThrough(t *testing.T) {
	t.Parallel()

	q, err := TranslateQuery(mustParseQuery(t, "priority=urgent"))
	if err != nil {
		t.Fatalf("TranslateQuery() error = %v", err)
	}
	if q.Filter.Priority != "urgent" {
		t.Errorf("Priority = %q, want %q", q.Filter.Priority, "urgent")
	}
}

func TestNewPage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		total     int64
		limit     int
		wantPages int
	}{
		{name: "no records", total: 0, limit: 10, wantPages: 0},
		{name: "fewer than a page", total: 3, limit: 10, wantPages: 1},
		{name: "exact multiple", total: 15, limit: 5, wantPages: 3},
		{name: "remainder rounds up", total: 20, limit: 7, wantPages: 3},
		{name: "single per page", total: 4, limit: 1, wantPages: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			p := NewPage(nil, ListQuery{Page: 2, Limit: tt.limit}, tt.total)
			if p.Meta.Pages != tt.wantPages {
				t.Errorf("Pages = %d, want %d", p.Meta.Pages, tt.wantPages)
			}
			if p.Meta.Total != tt.total || p.Meta.Page != 2 || p.Meta.Limit != tt.limit {
				t.Errorf("Meta = %+v, want total=%d page=2 limit=%d", p.Meta, tt.total, tt.limit)
			}
			if p.Data == nil {
				t.Error("Data = nil, want empty slice")
			}
		})
	}
}
