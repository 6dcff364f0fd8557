package pipeline

import "fmt"

type ErrorKind string

const (
	KindNotFound      ErrorKind = "not_found"
	KindLoad          ErrorKind = "load"
	KindMissingColumn ErrorKind = "missing_column"
	KindCoercion      ErrorKind = "coercion"
	KindInternal      ErrorKind = "internal"
)

// ReportError is the single failure outcome of a report run. Every kind but
// KindNotFound is shown to the user as a generic runtime failure.
type ReportError struct {
	Kind ErrorKind
	Path string
	Err  error
}

func (e *ReportError) Error() string {
	if e.Kind == KindNotFound {
		return fmt.Sprintf("file '%s' not found", e.Path)
	}
	if e.Err == nil {
		return string(e.Kind)
	}
	return e.Err.Error()
}

func (e *ReportError) Unwrap() error { return e.Err }

// UserMessage is the line printed on stdout for this failure.
func (e *ReportError) UserMessage() string {
	if e.Kind == KindNotFound {
		return fmt.Sprintf("Error: File '%s' not found.", e.Path)
	}
	return "An error occurred: " + e.Error()
}

type CoercionError struct {
	Column string
	RowNo  int
	Value  string
	Err    error
}

func (e *CoercionError) Error() string {
	return fmt.Sprintf("column '%s' row %d: %v", e.Column, e.RowNo, e.Err)
}

func (e *CoercionError) Unwrap() error { return e.Err }
