package ports

import (
	"context"

	"github.com/jsamuelsen11/go-todo-service/internal/domain/todo"
)

// TodoService defines the service port for the todo resource collection.
// Implemented by the application layer; called by inbound adapters (handlers).
// Every failure is returned unmodified so the HTTP error normalizer can map it.
type TodoService interface {
	// Create validates and persists a new todo and returns it with
	// store-assigned fields (ID, timestamps).
	// Returns domain.ErrValidation if the todo fails validation.
	Create(ctx context.Context, t *todo.Todo) (*todo.Todo, error)

	// List returns one page of todos matching q.Filter, newest first,
	// together with pagination metadata.
	List(ctx context.Context, q todo.ListQuery) (*todo.Page, error)

	// Get returns a single todo by ID.
	// Returns domain.ErrNotFound if the todo does not exist.
	Get(ctx context.Context, id string) (*todo.Todo, error)

	// Update applies a partial update and returns the updated todo.
	// Returns domain.ErrValidation if a supplied field is invalid and
	// domain.ErrNotFound if the todo does not exist.
	Update(ctx context.Context, id string, patch todo.Patch) (*todo.Todo, error)

	// Toggle flips the completed flag and returns the updated todo.
	// Returns domain.ErrNotFound if the todo does not exist.
	Toggle(ctx context.Context, id string) (*todo.Todo, error)

	// Delete permanently removes a todo.
	// Returns domain.ErrNotFound if the todo does not exist.
	Delete(ctx context.Context, id string) error
}
