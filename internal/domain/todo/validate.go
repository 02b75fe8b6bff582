package todo

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/jsamuelsen11/go-todo-service/internal/domain"
)

// Field limits.
const (
	TitleMinLength = 3
	TitleMaxLength = 120
	MaxTags        = 10
)

// fieldSet carries the candidate values of the validated fields. A nil
// pointer means the field is not part of this validation pass.
type fieldSet struct {
	title    *string
	priority *Priority
	tags     *[]string
}

// fieldRule validates one field and records any violation on verr.
type fieldRule func(fs fieldSet, verr *domain.ValidationError)

// rules runs in declaration order; the order fixes the order of the joined
// message returned to clients.
var rules = []fieldRule{
	validateTitle,
	validatePriority,
	validateTags,
}

func validate(fs fieldSet) error {
	verr := &domain.ValidationError{}
	for _, rule := range rules {
		rule(fs, verr)
	}
	return verr.OrNil()
}

func validateTitle(fs fieldSet, verr *domain.ValidationError) {
	if fs.title == nil {
		return
	}
	title := NormalizeTitle(*fs.title)
	n := utf8.RuneCountInString(title)
	switch {
	case n == 0:
		verr.Add("title", "title is required")
	case n < TitleMinLength:
		verr.Add("title", fmt.Sprintf("title must be at least %d characters", TitleMinLength))
	case n > TitleMaxLength:
		verr.Add("title", fmt.Sprintf("title must be at most %d characters", TitleMaxLength))
	}
}

func validatePriority(fs fieldSet, verr *domain.ValidationError) {
	if fs.priority == nil || fs.priority.IsValid() {
		return
	}
	names := make([]string, len(Priorities))
	for i, p := range Priorities {
		names[i] = p.String()
	}
	verr.Add("priority", fmt.Sprintf("priority must be one of: %s (got %q)",
		strings.Join(names, ", "), *fs.priority))
}

func validateTags(fs fieldSet, verr *domain.ValidationError) {
	if fs.tags == nil {
		return
	}
	if n := len(*fs.tags); n > MaxTags {
		verr.Add("tags", fmt.Sprintf("tags must contain at most %d items (got %d)", MaxTags, n))
	}
}
