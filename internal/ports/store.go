package ports

import (
	"context"

	"github.com/jsamuelsen11/go-todo-service/internal/domain/todo"
)

// TodoStore defines the persistence port for todos. Implemented by the
// MongoDB adapter; called by the application layer.
//
// Implementations own ID and timestamp assignment and translate driver
// errors to domain errors: domain.ErrInvalidID for identifiers the store
// cannot parse, domain.ErrNotFound for missing documents, and
// domain.ErrUnavailable when the database cannot be reached.
type TodoStore interface {
	// Insert persists t and returns the stored record with ID, CreatedAt
	// and UpdatedAt set.
	Insert(ctx context.Context, t *todo.Todo) (*todo.Todo, error)

	// Count returns the number of todos matching filter.
	Count(ctx context.Context, filter todo.Filter) (int64, error)

	// Find returns at most limit todos matching filter, skipping skip,
	// sorted by CreatedAt descending.
	Find(ctx context.Context, filter todo.Filter, skip, limit int) ([]todo.Todo, error)

	// FindByID returns a single todo.
	FindByID(ctx context.Context, id string) (*todo.Todo, error)

	// Update applies patch to the todo in a single round trip, bumps
	// UpdatedAt, and returns the updated record.
	Update(ctx context.Context, id string, patch todo.Patch) (*todo.Todo, error)

	// Delete removes the todo.
	Delete(ctx context.Context, id string) error
}
