package helper

import "fmt"

// Error wraps an error with the operation it happened in.
type Error struct {
	Trace    string
	Original error
}

// NewError wraps err with a trace of the failed operation.
func NewError(trace string, err error) error {
	return &Error{
		Trace:    trace,
		Original: err,
	}
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v", e.Trace, e.Original)
}

func (e *Error) Unwrap() error {
	return e.Original
}
