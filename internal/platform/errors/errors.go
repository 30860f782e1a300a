package apperrors

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUnauthorized       = errors.New("session expired")
	ErrNotFound           = errors.New("not found")
	ErrTransient          = errors.New("service unavailable")
	ErrNotAuthenticated   = errors.New("not authenticated")
)

// ValidationError carries per-field messages for input rejected before any
// network call is made.
type ValidationError struct {
	Fields map[string]string
}

func NewValidation() *ValidationError {
	return &ValidationError{Fields: map[string]string{}}
}

func (e *ValidationError) Add(field, message string) {
	e.Fields[field] = message
}

func (e *ValidationError) Empty() bool {
	return len(e.Fields) == 0
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
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
	return "validation failed: " + strings.Join(parts, "; ")
}

// AsValidation unwraps err into a ValidationError when it is one.
func AsValidation(err error) (*ValidationError, bool) {
	var v *ValidationError
	if errors.As(err, &v) {
		return v, true
	}
	return nil, false
}
