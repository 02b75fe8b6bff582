package store

import (
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/jsamuelsen11/go-todo-service/internal/domain/todo"
)

// filterDocument translates a list filter into a query document. Terms are
// ANDed; an empty filter matches everything.
func filterDocument(f todo.Filter) bson.D {
	q := bson.D{}
	if f.Completed != nil {
		q = append(q, bson.E{Key: fieldCompleted, Value: *f.Completed})
	}
	if f.Priority != "" {
		q = append(q, bson.E{Key: fieldPriority, Value: f.Priority.String()})
	}
	if f.Search != "" {
		q = append(q, bson.E{Key: fieldTitle, Value: primitive.Regex{
			Pattern: regexp.QuoteMeta(f.Search),
			Options: "i",
		}})
	}
	return q
}

// listSort orders newest first. _id breaks ties between equal createdAt
// values so paging is stable.
func listSort() bson.D {
	return bson.D{
		{Key: fieldCreatedAt, Value: -1},
		{Key: fieldID, Value: -1},
	}
}
