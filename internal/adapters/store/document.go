package store

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/jsamuelsen11/go-todo-service/internal/domain/todo"
)

// BSON field names. They match the JSON names of the public API.
const (
	fieldID        = "_id"
	fieldTitle     = "title"
	fieldCompleted = "completed"
	fieldPriority  = "priority"
	fieldTags      = "tags"
	fieldDueDate   = "dueDate"
	fieldCreatedAt = "createdAt"
	fieldUpdatedAt = "updatedAt"
)

// todoDocument is the stored shape of a todo.
type todoDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Title     string             `bson:"title"`
	Completed bool               `bson:"completed"`
	Priority  string             `bson:"priority"`
	Tags      []string           `bson:"tags"`
	DueDate   *time.Time         `bson:"dueDate,omitempty"`
	CreatedAt time.Time          `bson:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt"`
}

// toDocument converts a domain todo into its stored shape. The ID and
// timestamps are assigned by the caller.
func toDocument(t *todo.Todo) todoDocument {
	tags := t.Tags
	if tags == nil {
		tags = []string{}
	}
	return todoDocument{
		Title:     t.Title,
		Completed: t.Completed,
		Priority:  t.Priority.String(),
		Tags:      tags,
		DueDate:   utcPtr(t.DueDate),
	}
}

// toDomain converts a stored document back into the domain entity.
func toDomain(doc *todoDocument) todo.Todo {
	tags := doc.Tags
	if tags == nil {
		tags = []string{}
	}
	return todo.Todo{
		ID:        doc.ID.Hex(),
		Title:     doc.Title,
		Completed: doc.Completed,
		Priority:  todo.Priority(doc.Priority),
		Tags:      tags,
		DueDate:   utcPtr(doc.DueDate),
		CreatedAt: doc.CreatedAt.UTC(),
		UpdatedAt: doc.UpdatedAt.UTC(),
	}
}

func toDomainList(docs []todoDocument) []todo.Todo {
	todos := make([]todo.Todo, len(docs))
	for i := range docs {
		todos[i] = toDomain(&docs[i])
	}
	return todos
}

// setDocument builds the $set body for a patch. Only supplied fields are
// written; updatedAt is always bumped.
func setDocument(p *todo.Patch, now time.Time) bson.D {
	set := bson.D{}
	if p.Title != nil {
		set = append(set, bson.E{Key: fieldTitle, Value: *p.Title})
	}
	if p.Completed != nil {
		set = append(set, bson.E{Key: fieldCompleted, Value: *p.Completed})
	}
	if p.Priority != nil {
		set = append(set, bson.E{Key: fieldPriority, Value: p.Priority.String()})
	}
	if p.Tags != nil {
		tags := *p.Tags
		if tags == nil {
			tags = []string{}
		}
		set = append(set, bson.E{Key: fieldTags, Value: tags})
	}
	if p.DueDate != nil {
		set = append(set, bson.E{Key: fieldDueDate, Value: p.DueDate.UTC()})
	}
	return append(set, bson.E{Key: fieldUpdatedAt, Value: now})
}

// timestamp returns t in UTC at the millisecond precision BSON dates keep.
func timestamp(t time.Time) time.Time {
	return t.UTC().Truncate(time.Millisecond)
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := timestamp(*t)
	return &v
}
