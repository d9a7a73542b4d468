package models

import "fmt"

// ErrorType represents different categories of errors
type ErrorType int

const (
	ErrMalformedField ErrorType = iota
	ErrInvalidConstraint
	ErrInvalidVersion
	ErrValidation
	ErrFileOp
	ErrInvalidConfig
)

// String returns the string representation of ErrorType
func (e ErrorType) String() string {
	switch e {
	case ErrMalformedField:
		return "MalformedField"
	case ErrInvalidConstraint:
		return "InvalidConstraint"
	case ErrInvalidVersion:
		return "InvalidVersion"
	case ErrValidation:
		return "Validation"
	case ErrFileOp:
		return "FileOp"
	case ErrInvalidConfig:
		return "InvalidConfig"
	default:
		return "Unknown"
	}
}

// LintError represents an error raised while parsing or validating a
// metadata record. Field carries the field name the error relates to,
// when there is one.
type LintError struct {
	Type  ErrorType
	Field string
	Err   error
}

// Error implements the error interface
func (e *LintError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Field, e.Err)
	}
	return fmt.Sprintf("[%s] %v", e.Type, e.Err)
}

// Unwrap returns the wrapped error
func (e *LintError) Unwrap() error {
	return e.Err
}
