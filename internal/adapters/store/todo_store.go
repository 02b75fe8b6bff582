// Package store implements the persistence adapters behind the store ports.
// Documents are translated to and from domain types here; driver and
// breaker errors are mapped to domain errors by [TranslateError].
package store

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jsamuelsen11/go-todo-service/internal/domain"
	"github.com/jsamuelsen11/go-todo-service/internal/domain/todo"
	"github.com/jsamuelsen11/go-todo-service/internal/platform/mongodb"
	"github.com/jsamuelsen11/go-todo-service/internal/ports"
)

// Compile-time interface check.
var _ ports.TodoStore = (*TodoStore)(nil)

// TodoStore persists todos in a MongoDB collection. Every driver call goes
// through [mongodb.Client.Do], which adds the circuit breaker, tracing, and
// operation metrics.
type TodoStore struct {
	client *mongodb.Client
	coll   *mongo.Collection
	now    func() time.Time
	logger *slog.Logger
}

// NewTodoStore creates a TodoStore over the named collection.
func NewTodoStore(client *mongodb.Client, collection string, logger *slog.Logger) *TodoStore {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &TodoStore{
		client: client,
		coll:   client.Collection(collection),
		now:    time.Now,
		logger: logger,
	}
}

// EnsureIndexes creates the list index on {completed: 1, createdAt: -1}.
// Creating an index that already exists is a no-op.
func (s *TodoStore) EnsureIndexes(ctx context.Context) error {
	model := mongo.IndexModel{
		Keys: bson.D{
			{Key: fieldCompleted, Value: 1},
			{Key: fieldCreatedAt, Value: -1},
		},
	}

	err := s.client.Do(ctx, "createIndex", func(ctx context.Context) error {
		name, err := s.coll.Indexes().CreateOne(ctx, model)
		if err == nil {
			s.logger.DebugContext(ctx, "index ensured", slog.String("index", name))
		}
		return err
	})
	return TranslateError("ensure indexes", err)
}

// Insert assigns an ID and timestamps and stores the todo.
func (s *TodoStore) Insert(ctx context.Context, t *todo.Todo) (*todo.Todo, error) {
	doc := toDocument(t)
	doc.ID = primitive.NewObjectID()
	now := timestamp(s.now())
	doc.CreatedAt = now
	doc.UpdatedAt = now

	err := s.client.Do(ctx, "insert", func(ctx context.Context) error {
		_, err := s.coll.InsertOne(ctx, doc)
		return err
	})
	if err != nil {
		return nil, TranslateError("insert todo", err)
	}

	created := toDomain(&doc)
	return &created, nil
}

// Count returns the number of todos matching the filter.
func (s *TodoStore) Count(ctx context.Context, filter todo.Filter) (int64, error) {
	var total int64
	err := s.client.Do(ctx, "count", func(ctx context.Context) error {
		n, err := s.coll.CountDocuments(ctx, filterDocument(filter))
		total = n
		return err
	})
	if err != nil {
		return 0, TranslateError("count todos", err)
	}
	return total, nil
}

// Find returns one page of matching todos, newest first.
func (s *TodoStore) Find(ctx context.Context, filter todo.Filter, skip, limit int) ([]todo.Todo, error) {
	opts := options.Find().
		SetSort(listSort()).
		SetSkip(int64(skip)).
		SetLimit(int64(limit))

	var docs []todoDocument
	err := s.client.Do(ctx, "find", func(ctx context.Context) error {
		cur, err := s.coll.Find(ctx, filterDocument(filter), opts)
		if err != nil {
			return err
		}
		return cur.All(ctx, &docs)
	})
	if err != nil {
		return nil, TranslateError("find todos", err)
	}
	return toDomainList(docs), nil
}

// FindByID returns the todo with the given ID or [domain.ErrNotFound].
func (s *TodoStore) FindByID(ctx context.Context, id string) (*todo.Todo, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	var doc todoDocument
	err = s.client.Do(ctx, "findOne", func(ctx context.Context) error {
		return s.coll.FindOne(ctx, bson.D{{Key: fieldID, Value: oid}}).Decode(&doc)
	})
	if err != nil {
		return nil, TranslateError("find todo", err)
	}

	found := toDomain(&doc)
	return &found, nil
}

// Update applies the supplied patch fields in a single find-and-modify and
// returns the stored record after the update.
func (s *TodoStore) Update(ctx context.Context, id string, patch todo.Patch) (*todo.Todo, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	update := bson.D{{Key: "$set", Value: setDocument(&patch, timestamp(s.now()))}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc todoDocument
	err = s.client.Do(ctx, "findOneAndUpdate", func(ctx context.Context) error {
		return s.coll.FindOneAndUpdate(ctx, bson.D{{Key: fieldID, Value: oid}}, update, opts).Decode(&doc)
	})
	if err != nil {
		return nil, TranslateError("update todo", err)
	}

	updated := toDomain(&doc)
	return &updated, nil
}

// Delete removes the todo or returns [domain.ErrNotFound] when nothing matched.
func (s *TodoStore) Delete(ctx context.Context, id string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}

	var deleted int64
	err = s.client.Do(ctx, "delete", func(ctx context.Context) error {
		res, err := s.coll.DeleteOne(ctx, bson.D{{Key: fieldID, Value: oid}})
		if err != nil {
			return err
		}
		deleted = res.DeletedCount
		return nil
	})
	if err != nil {
		return TranslateError("delete todo", err)
	}
	if deleted == 0 {
		return fmt.Errorf("delete todo: %w", domain.ErrNotFound)
	}
	return nil
}

func parseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("parse id %q: %w", id, domain.ErrInvalidID)
	}
	return oid, nil
}
