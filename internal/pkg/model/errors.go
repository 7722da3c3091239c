package model

import (
	"errors"
	"fmt"
)

var (
	ErrMalformedNumber    = errors.New("malformed number")
	ErrMalformedTimestamp = errors.New("malformed timestamp")
	ErrMissingColumn      = errors.New("missing column")
	ErrNegativeEnergy     = errors.New("negative energy")
	ErrEmptyCatalog       = errors.New("empty tariff catalog")
	ErrUndecodable        = errors.New("unsupported text encoding")
	ErrWeekendMismatch    = errors.New("weekend flag does not match the weekday")
)

// ValidationError reports input that cannot be used by the simulation.
type ValidationError struct {
	Source string
	Line   int
	Field  string
	Value  string
	Err    error
}

func (e *ValidationError) Error() string {
	where := e.Source
	if e.Line > 0 {
		where = fmt.Sprintf("%s:%d", e.Source, e.Line)
	}
	if e.Value != "" {
		return fmt.Sprintf("validation error in %s for %s (%q): %v", where, e.Field, e.Value, e.Err)
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error in %s for %s: %v", where, e.Field, e.Err)
	}
	return fmt.Sprintf("validation error in %s: %v", where, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}
