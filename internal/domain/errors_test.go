package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestValidationError_ErrorsIs(t *testing.T) {
	t.Parallel()

	verr := NewValidationError("title", "title is required")

	if !errors.Is(verr, ErrValidation) {
		t.Error("errors.Is(ValidationError, ErrValidation) = false, want true")
	}

	wrapped := fmt.Errorf("operation failed: %w", verr)
	if !errors.Is(wrapped, ErrValidation) {
		t.Error("errors.Is(wrapped ValidationError, ErrValidation) = false, want true")
	}
}

func TestValidationError_ErrorsAs(t *testing.T) {
	t.Parallel()

	original := &ValidationError{}
	original.Add("title", "title is required")
	original.Add("priority", "priority is invalid")

	wrapped := fmt.Errorf("operation failed: %w", original)

	var verr *ValidationError
	if !errors.As(wrapped, &verr) {
		t.Fatal("errors.As(wrapped, *ValidationError) = false, want true")
	}
	if len(verr.Violations) != 2 {
		t.Errorf("Violations has %d entries, want 2", len(verr.Violations))
	}
	if !verr.Has("priority") {
		t.Error("Has(\"priority\") = false, want true")
	}
	if verr.Has("tags") {
		t.Error("Has(\"tags\") = true, want false")
	}
}

func TestValidationError_MessageKeepsRuleOrder(t *testing.T) {
	t.Parallel()

	verr := &ValidationError{}
	verr.Add("title", "title must be at least 3 characters")
	verr.Add("priority", "priority must be one of: low, medium, high")
	verr.Add("tags", "tags must contain at most 10 items")

	want := "title must be at least 3 characters, priority must be one of: low, medium, high, " +
		"tags must contain at most 10 items"
	if got := verr.Message(); got != want {
		t.Errorf("Message() = %q, want %q", got, want)
	}
	if got := verr.Error(); got != "validation error: "+want {
		t.Errorf("Error() = %q, want prefix %q", got, "validation error: ")
	}
}

func TestValidationError_OrNil(t *testing.T) {
	t.Parallel()

	var nilErr *ValidationError
	if err := nilErr.OrNil(); err != nil {
		t.Errorf("nil.OrNil() = %v, want nil", err)
	}

	empty := &ValidationError{}
	if err := empty.OrNil(); err != nil {
		t.Errorf("empty.OrNil() = %v, want nil", err)
	}

	full := NewValidationError("tags", "too many")
	if err := full.OrNil(); err == nil {
		t.Error("full.OrNil() = nil, want error")
	}
}

func TestSentinelErrors(t *testing.T) {
	t.Parallel()

	sentinels := []struct {
		name string
		err  error
	}{
		{"ErrNotFound", ErrNotFound},
		{"ErrValidation", ErrValidation},
		{"ErrInvalidID", ErrInvalidID},
		{"ErrUnavailable", ErrUnavailable},
	}

	for i, a := range sentinels {
		for j, b := range sentinels {
			if i == j {
				continue
			}
			if errors.Is(a.err, b.err) {
				t.Errorf("errors.Is(%s, %s) = true, want false", a.name, b.name)
			}
		}
	}
}
