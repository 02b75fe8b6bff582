package todo

// Meta describes where a page sits within the full result set.
type Meta struct {
	Total int64
	Page  int
	Limit int
	Pages int
}

// Page is one slice of a filtered, sorted list.
type Page struct {
	Data []Todo
	Meta Meta
}

// NewPage computes the page count as ceil(total/limit), which is 0 when
// total is 0. Data is never nil.
func NewPage(data []Todo, q ListQuery, total int64) *Page {
	if data == nil {
		data = []Todo{}
	}
	pages := 0
	if total > 0 && q.Limit > 0 {
		pages = int((total + int64(q.Limit) - 1) / int64(q.Limit))
	}
	return &Page{
		Data: data,
		Meta: Meta{
			Total: total,
			Page:  q.Page,
			Limit: q.Limit,
			Pages: pages,
		},
	}
}
