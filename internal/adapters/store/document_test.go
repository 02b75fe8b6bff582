package store

import (
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/jsamuelsen11/go-todo-service/internal/domain/todo"
)

func TestToDocument_NormalizesTagsAndDates(t *testing.T) {
	t.Parallel()

	due := time.Date(2026, 12, 31, 10, 0, 0, 123456789, time.FixedZone("CET", 3600))
	doc := toDocument(&todo.Todo{Title: "Ship it", Priority: todo.PriorityHigh, DueDate: &due})

	if doc.Tags == nil {
		t.Error("Tags = nil, want empty slice")
	}
	if doc.Priority != "high" {
		t.Errorf("Priority = %q, want %q", doc.Priority, "high")
	}
	if doc.DueDate == nil {
		t.Fatal("DueDate = nil, want value")
	}
	if doc.DueDate.Location() != time.UTC {
		t.Errorf("DueDate location = %v, want UTC", doc.DueDate.Location())
	}
	if doc.DueDate.Nanosecond() != 123000000 {
		t.Errorf("DueDate nanos = %d, want millisecond precision", doc.DueDate.Nanosecond())
	}
	if !doc.ID.IsZero() {
		t.Errorf("ID = %s, want zero until insert", doc.ID.Hex())
	}
}

func TestToDomain_RoundTripsFields(t *testing.T) {
	t.Parallel()

	oid := primitive.NewObjectID()
	created := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	doc := todoDocument{
		ID:        oid,
		Title:     "Learn Mongoose",
		Completed: true,
		Priority:  "low",
		CreatedAt: created,
		UpdatedAt: created.Add(time.Minute),
	}

	got := toDomain(&doc)

	if got.ID != oid.Hex() {
		t.Errorf("ID = %q, want %q", got.ID, oid.Hex())
	}
	if got.Title != "Learn Mongoose" || !got.Completed || got.Priority != todo.PriorityLow {
		t.Errorf("toDomain() = %+v, want fields copied", got)
	}
	if got.Tags == nil || len(got.Tags) != 0 {
		t.Errorf("Tags = %#v, want empty non-nil slice", got.Tags)
	}
	if got.DueDate != nil {
		t.Errorf("DueDate = %v, want nil", got.DueDate)
	}
	if !got.UpdatedAt.Equal(created.Add(time.Minute)) {
		t.Errorf("UpdatedAt = %v, want %v", got.UpdatedAt, created.Add(time.Minute))
	}
}

func TestSetDocument(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 5, 5, 5, 5, 5, 0, time.UTC)
	title := "Renamed"
	done := false
	prio := todo.PriorityHigh
	var nilTags []string
	due := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		patch    todo.Patch
		wantKeys []string
	}{
		{
			name:     "empty patch only bumps updatedAt",
			patch:    todo.Patch{},
			wantKeys: []string{fieldUpdatedAt},
		},
		{
			name:     "false completed is still written",
			patch:    todo.Patch{Completed: &done},
			wantKeys: []string{fieldCompleted, fieldUpdatedAt},
		},
		{
			name: "all fields in stable order",
			patch: todo.Patch{
				Title:     &title,
				Completed: &done,
				Priority:  &prio,
				Tags:      &nilTags,
				DueDate:   &due,
			},
			wantKeys: []string{fieldTitle, fieldCompleted, fieldPriority, fieldTags, fieldDueDate, fieldUpdatedAt},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			set := setDocument(&tt.patch, now)

			if len(set) != len(tt.wantKeys) {
				t.Fatalf("setDocument() = %v, want keys %v", set, tt.wantKeys)
			}
			for i, key := range tt.wantKeys {
				if set[i].Key != key {
					t.Errorf("set[%d].Key = %q, want %q", i, set[i].Key, key)
				}
			}
			if last := set[len(set)-1]; last.Value != now {
				t.Errorf("updatedAt = %v, want %v", last.Value, now)
			}
		})
	}
}

func TestSetDocument_NilTagsStoredAsEmptyArray(t *testing.T) {
	t.Parallel()

	var nilTags []string
	set := setDocument(&todo.Patch{Tags: &nilTags}, time.Now())

	tags, ok := set.Map()[fieldTags].([]string)
	if !ok || tags == nil {
		t.Errorf("tags = %#v, want empty []string", set.Map()[fieldTags])
	}
}

func TestTimestamp_TruncatesToMillisecond(t *testing.T) {
	t.Parallel()

	in := time.Date(2026, 1, 2, 3, 4, 5, 678901234, time.FixedZone("X", -7200))
	got := timestamp(in)

	if got.Location() != time.UTC {
		t.Errorf("location = %v, want UTC", got.Location())
	}
	if got.Nanosecond() != 678000000 {
		t.Errorf("nanos = %d, want 678000000", got.Nanosecond())
	}
	if !got.Equal(in.Truncate(time.Millisecond)) {
		t.Errorf("timestamp() = %v, want same instant as %v", got, in)
	}
}
