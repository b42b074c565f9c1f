package domain

import (
	"errors"
	"sort"
	"strings"
)

var (
	// ErrNotFound covers both missing resources and resources owned by
	// another user.
	ErrNotFound          = errors.New("resource not found")
	ErrInvalidTaskFilter = errors.New("invalid task filter")
	ErrUnauthenticated   = errors.New("unauthenticated")
)

// ValidationError carries one message per rejected field.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: message}}
}
