package apperrors

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrUnauthorized indicates a missing or expired access token. Callers
// should treat this as a signal to log the user out.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden indicates the token is valid but the action is not allowed.
var ErrForbidden = errors.New("forbidden")

// ValidationError carries the API's field-keyed error map, e.g.
// {"errors": {"name": "The name field is required."}}.
type ValidationError struct {
	Fields map[string]string
}

func NewValidationError(fields map[string]string) *ValidationError {
	if fields == nil {
		fields = map[string]string{}
	}
	return &ValidationError{Fields: fields}
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return ErrValidation.Error()
	}
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return "validation error: " + strings.Join(parts, "; ")
}

// Unwrap lets errors.Is(err, ErrValidation) match a *ValidationError.
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
