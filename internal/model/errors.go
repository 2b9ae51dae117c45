package model

import (
	"errors"
	"fmt"
)

// Sentinel errors for configuration failures. Every one of them is fatal to the
// current run; arithmetic edge cases (zero production, zero capacity) are not
// errors and never surface here.
var (
	ErrOutOfRange        = errors.New("value out of range")
	ErrDivisionByZero    = errors.New("division by zero")
	ErrUnknownTechnology = errors.New("unknown battery technology")
	ErrUnknownScenario   = errors.New("unknown scenario")
	ErrUnknownModule     = errors.New("unknown pv module type")
	ErrUnknownCity       = errors.New("unknown city")
	ErrUnknownProfile    = errors.New("unknown consumption profile")
	ErrUnknownTariff     = errors.New("unknown tariff")
	ErrUnknownSubsidy    = errors.New("unknown subsidy type")
	ErrUnknownInverter   = errors.New("unknown inverter type")
)

// DomainError reports a configuration problem with the input of an operation.
type DomainError struct {
	Op    string // operation that rejected the input, e.g. "size_pv"
	Field string // offending field or identifier
	Err   error
}

func (e *DomainError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s: %s: %v", e.Op, e.Field, e.Err)
}

func (e *DomainError) Unwrap() error { return e.Err }

func outOfRange(op, field, constraint string) error {
	return &DomainError{Op: op, Field: field, Err: fmt.Errorf("%w: must be %s", ErrOutOfRange, constraint)}
}

// NewDomainError is a small constructor used by packages outside model.
func NewDomainError(op, field string, err error) error {
	return &DomainError{Op: op, Field: field, Err: err}
}
