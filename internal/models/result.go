package models

import "fmt"

// Severity distinguishes blocking errors from advisory warnings.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
)

// String returns the string representation of Severity
func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	default:
		return "unknown"
	}
}

// Violation is one finding from validation. Field is empty when the
// finding does not relate to a single field.
type Violation struct {
	Field    string
	Message  string
	Severity Severity
}

// String renders the violation for display.
func (v Violation) String() string {
	if v.Field != "" {
		return fmt.Sprintf("%s: %s: %s", v.Severity, v.Field, v.Message)
	}
	return fmt.Sprintf("%s: %s", v.Severity, v.Message)
}

// Result is the outcome of validating one metadata record. Errors and
// Warnings keep the order the rules reported them in.
type Result struct {
	Record   *Record
	Errors   []Violation
	Warnings []Violation
}

// Blocking reports whether the result contains any blocking errors.
func (r *Result) Blocking() bool {
	return len(r.Errors) > 0
}

// AddError appends a blocking error.
func (r *Result) AddError(field, format string, args ...interface{}) {
	r.Errors = append(r.Errors, Violation{
		Field:    field,
		Message:  fmt.Sprintf(format, args...),
		Severity: SeverityError,
	})
}

// AddWarning appends an advisory warning.
func (r *Result) AddWarning(field, format string, args ...interface{}) {
	r.Warnings = append(r.Warnings, Violation{
		Field:    field,
		Message:  fmt.Sprintf(format, args...),
		Severity: SeverityWarning,
	})
}
