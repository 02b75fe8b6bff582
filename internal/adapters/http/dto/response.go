// Package dto provides HTTP request/response data transfer objects and the
// error envelope for the inbound HTTP adapter layer.
package dto

import (
	"time"

	"github.com/jsamuelsen11/go-todo-service/internal/domain/todo"
)

// timestampLayout renders UTC timestamps with millisecond precision,
// e.g. 2026-01-02T03:04:05.000Z.
const timestampLayout = "2006-01-02T15:04:05.000Z07:00"

// TodoResponse represents a single todo in HTTP responses.
type TodoResponse struct {
	ID        string   `json:"_id"`
	Title     string   `json:"title"`
	Completed bool     `json:"completed"`
	Priority  string   `json:"priority"`
	Tags      []string `json:"tags"`
	DueDate   *string  `json:"dueDate,omitempty"`
	CreatedAt string   `json:"createdAt"`
	UpdatedAt string   `json:"updatedAt"`
}

// MetaResponse carries the pagination summary of a list response.
type MetaResponse struct {
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Pages int   `json:"pages"`
}

// TodoListResponse represents one page of todos.
type TodoListResponse struct {
	Data []TodoResponse `json:"data"`
	Meta MetaResponse   `json:"meta"`
}

// HealthResponse is the body of the plain health endpoint.
type HealthResponse struct {
	OK bool `json:"ok"`
}

// ToTodoResponse converts a domain Todo entity to an HTTP response DTO.
func ToTodoResponse(t *todo.Todo) TodoResponse {
	tags := t.Tags
	if tags == nil {
		tags = []string{}
	}

	resp := TodoResponse{
		ID:        t.ID,
		Title:     t.Title,
		Completed: t.Completed,
		Priority:  t.Priority.String(),
		Tags:      tags,
		CreatedAt: formatTime(t.CreatedAt),
		UpdatedAt: formatTime(t.UpdatedAt),
	}
	if t.DueDate != nil {
		due := formatTime(*t.DueDate)
		resp.DueDate = &due
	}
	return resp
}

// ToTodoListResponse converts a domain page into the list envelope. Data is
// always an array, never null.
func ToTodoListResponse(p *todo.Page) TodoListResponse {
	items := make([]TodoResponse, len(p.Data))
	for i := range p.Data {
		items[i] = ToTodoResponse(&p.Data[i])
	}
	return TodoListResponse{
		Data: items,
		Meta: MetaResponse{
			Total: p.Meta.Total,
			Page:  p.Meta.Page,
			Limit: p.Meta.Limit,
			Pages: p.Meta.Pages,
		},
	}
}

func formatTime(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}
