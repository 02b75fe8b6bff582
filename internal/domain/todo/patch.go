package todo

import "time"

// Patch is a partial update. Nil fields are left unchanged.
type Patch struct {
	Title     *string
	Completed *bool
	Priority  *Priority
	Tags      *[]string
	DueDate   *time.Time
}

// Normalize trims the title in place, mirroring what New does on creation.
func (p *Patch) Normalize() {
	if p.Title != nil {
		title := NormalizeTitle(*p.Title)
		p.Title = &title
	}
	if p.Tags != nil && *p.Tags == nil {
		empty := []string{}
		p.Tags = &empty
	}
}

// Validate checks only the supplied fields. Because every stored record
// already satisfies the rules, this is equivalent to validating the merged
// result.
func (p *Patch) Validate() error {
	return validate(fieldSet{title: p.Title, priority: p.Priority, tags: p.Tags})
}

// IsEmpty reports whether the patch changes nothing.
func (p *Patch) IsEmpty() bool {
	return p.Title == nil && p.Completed == nil && p.Priority == nil && p.Tags == nil && p.DueDate == nil
}

// Apply merges the patch into t.
func (p *Patch) Apply(t *Todo) {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Completed != nil {
		t.Completed = *p.Completed
	}
	if p.Priority != nil {
		t.Priority = *p.Priority
	}
	if p.Tags != nil {
		t.Tags = *p.Tags
	}
	if p.DueDate != nil {
		d := *p.DueDate
		t.DueDate = &d
	}
}
