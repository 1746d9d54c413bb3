package sheet

import (
	"errors"
	"fmt"
)

// Every storage failure a user can recover from maps to one of these.
// Anything else that bubbles out of the store is an infrastructure error.
var (
	// ErrNoSelection means an operation omitted its target and the
	// session has no current spreadsheet either.
	ErrNoSelection = errors.New("no spreadsheet selected")

	// ErrEmptyInput means the operation was given nothing usable
	// (no columns, no valid row data, a name that sanitizes to nothing).
	ErrEmptyInput = errors.New("empty input")
)

// NotFoundError reports a missing spreadsheet, row or column.
type NotFoundError struct {
	Kind string // "spreadsheet", "row", "column"
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.Name)
}

// ExistsError reports a duplicate on create. Name is the sanitized
// identifier, which may differ from what the user typed.
type ExistsError struct {
	Kind string // "spreadsheet", "column"
	Name string
}

func (e *ExistsError) Error() string {
	return fmt.Sprintf("%s %q already exists", e.Kind, e.Name)
}

// IsRecoverable reports whether err is a user-level storage error the
// session can continue past.
func IsRecoverable(err error) bool {
	var nf *NotFoundError
	var ex *ExistsError
	return errors.Is(err, ErrNoSelection) ||
		errors.Is(err, ErrEmptyInput) ||
		errors.As(err, &nf) ||
		errors.As(err, &ex)
}
