package eval

import (
	"errors"
	"fmt"
)

// EvalError represents an error detected while evaluating a parsed tree.
//
// Evaluation errors are distinct from parse errors by design: a document
// that parses can still fail per-evaluation depending on the
// environment. They are local and recoverable - the caller retries with
// a corrected environment.
type EvalError struct {
	// Code identifies the error category.
	Code EvalErrorCode

	// Message is a human-readable description.
	Message string

	// Variable names the offending variable, when one is involved.
	Variable string
}

// EvalErrorCode categorizes evaluation errors.
type EvalErrorCode string

const (
	// ErrCodeUnknownVariable indicates a referenced variable is not
	// present in the environment.
	ErrCodeUnknownVariable EvalErrorCode = "UNKNOWN_VARIABLE"

	// ErrCodeTypeMismatch indicates a variable resolved to the wrong
	// kind for its context (e.g. a boolean-typed reference finding a
	// stored integer).
	ErrCodeTypeMismatch EvalErrorCode = "TYPE_MISMATCH"

	// ErrCodeDivisionByZero indicates an integer division whose
	// right-hand side evaluated to zero.
	ErrCodeDivisionByZero EvalErrorCode = "DIVISION_BY_ZERO"
)

// Error implements the error interface.
func (e *EvalError) Error() string {
	if e.Variable != "" {
		return fmt.Sprintf("%s: %s (variable=$%s)", e.Code, e.Message, e.Variable)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// IsUnknownVariable returns true if the error is an unknown-variable
// error. Uses errors.As to handle wrapped errors.
func IsUnknownVariable(err error) bool {
	var ee *EvalError
	return errors.As(err, &ee) && ee.Code == ErrCodeUnknownVariable
}

// IsTypeMismatch returns true if the error is a type-mismatch error.
func IsTypeMismatch(err error) bool {
	var ee *EvalError
	return errors.As(err, &ee) && ee.Code == ErrCodeTypeMismatch
}

// IsDivisionByZero returns true if the error is a division-by-zero
// error.
func IsDivisionByZero(err error) bool {
	var ee *EvalError
	return errors.As(err, &ee) && ee.Code == ErrCodeDivisionByZero
}

func newUnknownVariable(name string) *EvalError {
	return &EvalError{
		Code:     ErrCodeUnknownVariable,
		Message:  "variable not present in environment",
		Variable: name,
	}
}

func newTypeMismatch(name, want, got string) *EvalError {
	return &EvalError{
		Code:     ErrCodeTypeMismatch,
		Message:  fmt.Sprintf("expected %s, environment holds %s", want, got),
		Variable: name,
	}
}

func newDivisionByZero() *EvalError {
	return &EvalError{
		Code:    ErrCodeDivisionByZero,
		Message: "integer division by zero",
	}
}
