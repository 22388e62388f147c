package schema

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrDumpOnly is returned when loading through a shape that only renders output.
var ErrDumpOnly = errors.New("shape is dump only")

// BlankOrTooLongError reports an empty string or one longer than Max runes.
type BlankOrTooLongError struct {
	Field string
	Max   int
}

func (e *BlankOrTooLongError) Error() string {
	if e.Max <= 0 {
		return "Field cannot be blank."
	}
	return fmt.Sprintf("Field cannot be blank or longer than %d characters.", e.Max)
}

// UnknownChoiceError reports a value outside of the current choice set.
type UnknownChoiceError struct {
	Field     string
	Attempted string
	Allowed   []string
}

func (e *UnknownChoiceError) Error() string {
	return fmt.Sprintf("Must be one of: %s.", strings.Join(e.Allowed, ", "))
}

// UnknownVariantError reports a discriminant that names no known shape.
type UnknownVariantError struct {
	Field     string
	Attempted string
	Known     []string
}

func (e *UnknownVariantError) Error() string {
	return fmt.Sprintf("Unsupported value: %s. Must be one of: %s.", e.Attempted, strings.Join(e.Known, ", "))
}

// TypeMismatchError reports a value of the wrong kind.
type TypeMismatchError struct {
	Field    string
	Expected string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("Not a valid %s.", e.Expected)
}

// RequiredError reports a missing required field.
type RequiredError struct {
	Field string
}

func (e *RequiredError) Error() string {
	return "Missing data for required field."
}

// ConstraintError reports a value violating a declared task argument requirement.
type ConstraintError struct {
	Field       string
	Requirement string
	Reason      string
}

func (e *ConstraintError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("Does not satisfy requirement %s.", e.Requirement)
	}
	return fmt.Sprintf("Does not satisfy requirement %s: %s.", e.Requirement, e.Reason)
}

// ValidationError collects every field error of one load call, keyed by
// field path. Nested paths are joined with a dot, the record itself is "".
type ValidationError struct {
	fields map[string][]error
}

func newValidationError() *ValidationError {
	return &ValidationError{fields: map[string][]error{}}
}

// add records err under field. Errors of nested validations are re-rooted
// below field.
func (e *ValidationError) add(field string, err error) {
	if err == nil {
		return
	}
	if nested, ok := err.(*ValidationError); ok {
		for path, errs := range nested.fields {
			joined := joinPath(field, path)
			e.fields[joined] = append(e.fields[joined], errs...)
		}
		return
	}
	e.fields[field] = append(e.fields[field], err)
}

// err returns nil when nothing was collected so callers can return it directly.
func (e *ValidationError) err() error {
	if len(e.fields) == 0 {
		return nil
	}
	return e
}

// Fields returns the sorted field paths that have errors.
func (e *ValidationError) Fields() []string {
	fields := make([]string, 0, len(e.fields))
	for field := range e.fields {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fields
}

// FieldErrors returns the errors recorded for one field path.
func (e *ValidationError) FieldErrors(field string) []error {
	return e.fields[field]
}

// Messages renders the report as field path -> messages.
func (e *ValidationError) Messages() map[string][]string {
	messages := make(map[string][]string, len(e.fields))
	for field, errs := range e.fields {
		for _, err := range errs {
			messages[field] = append(messages[field], err.Error())
		}
	}
	return messages
}

func (e *ValidationError) Error() string {
	parts := []string{}
	for _, field := range e.Fields() {
		for _, err := range e.fields[field] {
			name := field
			if name == "" {
				name = "_schema"
			}
			parts = append(parts, fmt.Sprintf("%s: %v", name, err))
		}
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() []error {
	errs := []error{}
	for _, field := range e.Fields() {
		errs = append(errs, e.fields[field]...)
	}
	return errs
}

func joinPath(parent, child string) string {
	if parent == "" {
		return child
	}
	if child == "" {
		return parent
	}
	return parent + "." + child
}
