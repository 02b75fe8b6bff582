package dto

import (
	"fmt"
	"time"

	"github.com/jsamuelsen11/go-todo-service/internal/domain"
	"github.com/jsamuelsen11/go-todo-service/internal/domain/todo"
)

const fieldDueDate = "dueDate"

// dueDateLayouts are tried in order when parsing dueDate.
var dueDateLayouts = []string{time.RFC3339Nano, time.DateOnly}

// CreateTodoRequest represents the JSON body for creating a todo. Omitted
// fields take their creation defaults.
type CreateTodoRequest struct {
	Title     string   `json:"title"`
	Completed *bool    `json:"completed,omitempty"`
	Priority  string   `json:"priority,omitempty"`
	Tags      []string `json:"tags,omitempty"`
	DueDate   *string  `json:"dueDate,omitempty"`
}

// ToDomain converts the request into a new todo entity. Only the dueDate
// format is checked here; the entity rules run in the service.
func (r *CreateTodoRequest) ToDomain() (*todo.Todo, error) {
	due, err := parseDueDate(r.DueDate)
	if err != nil {
		return nil, err
	}

	completed := false
	if r.Completed != nil {
		completed = *r.Completed
	}

	return todo.New(r.Title, completed, todo.Priority(r.Priority), r.Tags, due), nil
}

// UpdateTodoRequest represents the JSON body for a partial update.
// All fields are optional; nil means "do not change this field".
type UpdateTodoRequest struct {
	Title     *string   `json:"title,omitempty"`
	Completed *bool     `json:"completed,omitempty"`
	Priority  *string   `json:"priority,omitempty"`
	Tags      *[]string `json:"tags,omitempty"`
	DueDate   *string   `json:"dueDate,omitempty"`
}

// ToPatch converts the request into a domain patch.
func (r *UpdateTodoRequest) ToPatch() (todo.Patch, error) {
	due, err := parseDueDate(r.DueDate)
	if err != nil {
		return todo.Patch{}, err
	}

	p := todo.Patch{
		Title:     r.Title,
		Completed: r.Completed,
		Tags:      r.Tags,
		DueDate:   due,
	}
	if r.Priority != nil {
		prio := todo.Priority(*r.Priority)
		p.Priority = &prio
	}
	return p, nil
}

func parseDueDate(raw *string) (*time.Time, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	for _, layout := range dueDateLayouts {
		if t, err := time.Parse(layout, *raw); err == nil {
			t = t.UTC()
			return &t, nil
		}
	}
	return nil, domain.NewValidationError(fieldDueDate,
		fmt.Sprintf("dueDate must be a valid date (got %q)", *raw))
}
