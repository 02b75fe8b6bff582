// Package todo holds the Todo entity, its field rules, partial updates, and
// the list-query contract shared by the service and the store adapter.
package todo

import (
	"strings"
	"time"
)

// Todo represents a task item.
type Todo struct {
	ID        string
	Title     string
	Completed bool
	Priority  Priority
	Tags      []string
	DueDate   *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// New builds a Todo for creation with defaults applied: completed false,
// medium priority, and an empty (non-nil) tag list. The title is trimmed.
// An empty priority means "not supplied"; any other value is kept as is so
// Validate can reject it.
func New(title string, completed bool, priority Priority, tags []string, dueDate *time.Time) *Todo {
	if priority == "" {
		priority = DefaultPriority
	}
	if tags == nil {
		tags = []string{}
	}
	return &Todo{
		Title:     NormalizeTitle(title),
		Completed: completed,
		Priority:  priority,
		Tags:      tags,
		DueDate:   dueDate,
	}
}

// NormalizeTitle trims surrounding whitespace. Length rules are evaluated on
// the normalized value.
func NormalizeTitle(title string) string {
	return strings.TrimSpace(title)
}

// Validate checks every field rule against the full record.
// Returns a *domain.ValidationError (wrapping domain.ErrValidation) with
// violations in rule order, or nil if all rules pass.
func (t *Todo) Validate() error {
	return validate(t.fieldValues())
}

func (t *Todo) fieldValues() fieldSet {
	title := t.Title
	priority := t.Priority
	tags := t.Tags
	return fieldSet{title: &title, priority: &priority, tags: &tags}
}
