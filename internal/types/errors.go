package types

import (
	"errors"
	"sort"
	"strings"
)

// Sentinel errors for handlers to map to HTTP status.
var (
	ErrUnauthenticated    = errors.New("no token, authorization denied")
	ErrInvalidToken       = errors.New("token is not valid")
	ErrForbidden          = errors.New("forbidden")
	ErrNotFound           = errors.New("not found")
	ErrValidation         = errors.New("validation failed")
	ErrConflict           = errors.New("already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// ValidationError carries per-field messages and matches ErrValidation.
type ValidationError struct {
	Fields map[string]string
}

func NewValidationError() *ValidationError {
	return &ValidationError{Fields: make(map[string]string)}
}

// Check records msg under key when cond is false. The first message per key wins.
func (v *ValidationError) Check(cond bool, key, msg string) {
	if cond {
		return
	}
	if _, ok := v.Fields[key]; !ok {
		v.Fields[key] = msg
	}
}

func (v *ValidationError) HasErrors() bool {
	return len(v.Fields) != 0
}

// OrNil returns v as an error only when it holds field errors.
func (v *ValidationError) OrNil() error {
	if !v.HasErrors() {
		return nil
	}
	return v
}

func (v *ValidationError) Error() string {
	keys := make([]string, 0, len(v.Fields))
	for k := range v.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+" "+v.Fields[k])
	}
	return ErrValidation.Error() + ": " + strings.Join(parts, ", ")
}

func (v *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
