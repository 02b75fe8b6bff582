// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen11/go-todo-service/internal/domain/todo"
	"github.com/jsamuelsen11/go-todo-service/internal/ports"
)

// Compile-time check that TodoService implements ports.TodoService.
var _ ports.TodoService = (*TodoService)(nil)

// TodoService implements ports.TodoService on top of the TodoStore port. It
// runs the entity rules before writes and logs failures, but never recovers
// from or rewrites an error: every failure reaches the caller unmodified.
type TodoService struct {
	store  ports.TodoStore
	logger *slog.Logger
}

// NewTodoService creates a TodoService. A nil logger discards output.
func NewTodoService(store ports.TodoStore, logger *slog.Logger) *TodoService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &TodoService{
		store:  store,
		logger: logger,
	}
}

// Create validates and persists a new todo.
func (s *TodoService) Create(ctx context.Context, t *todo.Todo) (*todo.Todo, error) {
	s.logger.InfoContext(ctx, "creating todo", slog.String("title", t.Title))

	t.Title = todo.NormalizeTitle(t.Title)
	if err := t.Validate(); err != nil {
		return nil, err
	}

	created, err := s.store.Insert(ctx, t)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to create todo",
			slog.String("operation", "Create"),
			slog.Any("error", err),
		)
		return nil, err
	}

	return created, nil
}

// List counts the todos matching the filter and fetches the requested page.
func (s *TodoService) List(ctx context.Context, q todo.ListQuery) (*todo.Page, error) {
	s.logger.InfoContext(ctx, "listing todos",
		slog.Int("page", q.Page),
		slog.Int("limit", q.Limit),
	)

	total, err := s.store.Count(ctx, q.Filter)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to count todos",
			slog.String("operation", "List"),
			slog.Any("error", err),
		)
		return nil, err
	}

	// Nothing to fetch past the last page; meta still reports the total.
	if int64(q.Skip) >= total {
		return todo.NewPage(nil, q, total), nil
	}

	items, err := s.store.Find(ctx, q.Filter, q.Skip, q.Limit)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to find todos",
			slog.String("operation", "List"),
			slog.Int("skip", q.Skip),
			slog.Int("limit", q.Limit),
			slog.Any("error", err),
		)
		return nil, err
	}

	return todo.NewPage(items, q, total), nil
}

// Get returns a single todo by ID.
func (s *TodoService) Get(ctx context.Context, id string) (*todo.Todo, error) {
	s.logger.InfoContext(ctx, "fetching todo", slog.String("id", id))

	t, err := s.store.FindByID(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch todo",
			slog.String("operation", "Get"),
			slog.String("id", id),
			slog.Any("error", err),
		)
		return nil, err
	}

	return t, nil
}

// Update validates the supplied fields and applies them in one store call.
func (s *TodoService) Update(ctx context.Context, id string, patch todo.Patch) (*todo.Todo, error) {
	s.logger.InfoContext(ctx, "updating todo", slog.String("id", id))

	patch.Normalize()
	if err := patch.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.store.Update(ctx, id, patch)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to update todo",
			slog.String("operation", "Update"),
			slog.String("id", id),
			slog.Any("error", err),
		)
		return nil, err
	}

	return updated, nil
}

// Toggle reads the todo, inverts Completed, and writes it back. Concurrent
// toggles on the same ID are last-write-wins.
func (s *TodoService) Toggle(ctx context.Context, id string) (*todo.Todo, error) {
	s.logger.InfoContext(ctx, "toggling todo", slog.String("id", id))

	current, err := s.store.FindByID(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch todo",
			slog.String("operation", "Toggle"),
			slog.String("id", id),
			slog.Any("error", err),
		)
		return nil, err
	}

	completed := !current.Completed
	updated, err := s.store.Update(ctx, id, todo.Patch{Completed: &completed})
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to save toggled todo",
			slog.String("operation", "Toggle"),
			slog.String("id", id),
			slog.Bool("completed", completed),
			slog.Any("error", err),
		)
		return nil, err
	}

	return updated, nil
}

// Delete permanently removes a todo.
func (s *TodoService) Delete(ctx context.Context, id string) error {
	s.logger.InfoContext(ctx, "deleting todo", slog.String("id", id))

	if err := s.store.Delete(ctx, id); err != nil {
		s.logger.ErrorContext(ctx, "failed to delete todo",
			slog.String("operation", "Delete"),
			slog.String("id", id),
			slog.Any("error", err),
		)
		return err
	}

	return nil
}
