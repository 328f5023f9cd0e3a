// internal/domain/common/validation.go
package common

import (
	"fmt"
	"strings"
)

// FieldViolation is a single field-level validation failure.
type FieldViolation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError collects every violated field of an inbound payload.
// Callers append with Add and finish with ErrOrNil so the response can
// enumerate all violations at once instead of stopping at the first.
type ValidationError struct {
	Violations []FieldViolation
}

func (e *ValidationError) Error() string {
	if e == nil || len(e.Violations) == 0 {
		return "validation failed"
	}
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, fmt.Sprintf("%s: %s", v.Field, v.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Add records one violation. Safe to call on a zero value.
func (e *ValidationError) Add(field, message string) {
	e.Violations = append(e.Violations, FieldViolation{Field: field, Message: message})
}

// ErrOrNil returns the error when at least one violation was recorded.
// Returning a plain nil here matters: a typed nil *ValidationError in an
// error interface would compare non-nil at call sites.
func (e *ValidationError) ErrOrNil() error {
	if e == nil || len(e.Violations) == 0 {
		return nil
	}
	return e
}

// AsValidationError unwraps err into *ValidationError if it is one.
func AsValidationError(err error) (*ValidationError, bool) {
	ve, ok := err.(*ValidationError)
	return ve, ok
}
