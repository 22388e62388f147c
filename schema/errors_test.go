package schema

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationError(t *testing.T) {
	t.Run("Empty validation error is nil", func(t *testing.T) {
		errs := newValidationError()
		errs.add("title", nil)
		assert.NoError(t, errs.err())
	})

	t.Run("Nested errors are re-rooted below the parent field", func(t *testing.T) {
		nested := newValidationError()
		nested.add("seconds", &TypeMismatchError{Field: "seconds", Expected: "integer"})
		nested.add("", &RequiredError{})

		errs := newValidationError()
		errs.add("schedule", nested)

		assert.Equal(t, []string{"schedule", "schedule.seconds"}, errs.Fields())
		assert.Equal(t, []string{"Not a valid integer."}, errs.Messages()["schedule.seconds"])
	})

	t.Run("Error lists all fields with the record level as _schema", func(t *testing.T) {
		errs := newValidationError()
		errs.add("", &TypeMismatchError{Expected: "mapping"})
		errs.add("title", &RequiredError{Field: "title"})

		assert.Equal(t, "validation failed: _schema: Not a valid mapping.; title: Missing data for required field.", errs.Error())
	})

	t.Run("Field errors can be matched with errors.As", func(t *testing.T) {
		errs := newValidationError()
		errs.add("task", &UnknownChoiceError{Field: "task", Attempted: "x", Allowed: []string{"a", "b"}})

		var choiceErr *UnknownChoiceError
		require.True(t, errors.As(errs.err(), &choiceErr))
		assert.Equal(t, "x", choiceErr.Attempted)
		assert.Equal(t, "Must be one of: a, b.", choiceErr.Error())
	})
}
