package shared

import (
	"sort"
	"strings"

	"glamping-api/internal/pkg/errs"
)

// FieldErrors maps a request field (its JSON name) to human-readable messages.
type FieldErrors map[string][]string

func (f FieldErrors) Add(field, message string) {
	f[field] = append(f[field], message)
}

// ValidationError is always marked with errs.ErrValidationFailed.
type ValidationError struct {
	Fields FieldErrors
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+strings.Join(e.Fields[k], ", "))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func NewValidationError(fields FieldErrors) error {
	return errs.Mark(&ValidationError{Fields: fields}, errs.ErrValidationFailed)
}

// FieldValidationError is a shorthand for a single failing field.
func FieldValidationError(field, message string) error {
	return NewValidationError(FieldErrors{field: {message}})
}

// AsValidationError extracts the field map from anywhere in err's chain.
func AsValidationError(err error) (FieldErrors, bool) {
	var ve *ValidationError
	if errs.As(err, &ve) {
		return ve.Fields, true
	}
	return nil, false
}
