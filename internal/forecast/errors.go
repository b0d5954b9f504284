package forecast

import "fmt"

// ParseError reports hourly data that could not be turned into a table.
// Index is -1 when the problem is not tied to a single row.
type ParseError struct {
	Field string
	Index int
	Value any
	Err   error
}

func (e *ParseError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("parse hourly %q: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("parse hourly %q[%d] (%v): %v", e.Field, e.Index, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
