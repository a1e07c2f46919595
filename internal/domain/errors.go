package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrParse marks malformed dates, non-numeric temperatures and malformed rows.
	ErrParse = errors.New("parse error")
	// ErrIO marks an input resource that could not be opened or read.
	ErrIO = errors.New("io error")
	// ErrEmptyInput marks an aggregation requested over zero values.
	ErrEmptyInput = errors.New("empty input")
)

// ParseError describes a value that could not be parsed. Row is the 1-based
// data row (header excluded) or 0 when the value did not come from a table.
type ParseError struct {
	Row   int
	Field string
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	msg := "parse"
	if e.Row > 0 {
		msg += fmt.Sprintf(" row %d", e.Row)
	}
	if e.Field != "" {
		msg += " " + e.Field
	}
	if e.Value != "" {
		msg += fmt.Sprintf(" %q", e.Value)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap exposes both ErrParse and the underlying cause to errors.Is/As.
func (e *ParseError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrParse}
	}
	return []error{ErrParse, e.Err}
}
