package schema

import (
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// validate is safe for concurrent use and caches parsed tags.
var validate = validator.New(validator.WithRequiredStructEnabled())

// Rule validates a single already coerced field value.
type Rule func(field string, value interface{}) error

// NonBlank accepts strings of at least one rune and, if max is positive,
// at most max runes.
func NonBlank(max int) Rule {
	tag := "min=1"
	if max > 0 {
		tag = fmt.Sprintf("min=1,max=%d", max)
	}
	return func(field string, value interface{}) error {
		if _, ok := value.(string); !ok {
			return &TypeMismatchError{Field: field, Expected: "string"}
		}
		if err := validate.Var(value, tag); err != nil {
			return &BlankOrTooLongError{Field: field, Max: max}
		}
		return nil
	}
}

// LazyOneOf accepts members of a choice set that is computed on every call,
// so registry changes are picked up without invalidation.
func LazyOneOf(choices func() []string) Rule {
	return func(field string, value interface{}) error {
		s, ok := value.(string)
		if !ok {
			return &TypeMismatchError{Field: field, Expected: "string"}
		}
		allowed := choices()
		for _, choice := range allowed {
			if choice == s {
				return nil
			}
		}
		sorted := append([]string(nil), allowed...)
		sort.Strings(sorted)
		return &UnknownChoiceError{Field: field, Attempted: s, Allowed: sorted}
	}
}

// Sanitize trims surrounding whitespace and drops control characters
// other than tab, newline and carriage return.
func Sanitize(s string) string {
	s = strings.Map(func(r rune) rune {
		if r == '\t' || r == '\n' || r == '\r' {
			return r
		}
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)
	return strings.TrimSpace(s)
}
