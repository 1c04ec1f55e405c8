package gateway

import (
	"errors"
	"fmt"
)

// Failure classes reported by the upstream platform API. Callers branch with
// errors.Is and, for field details, errors.As on *APIError.
var (
	ErrTransport    = errors.New("gateway: transport failure")
	ErrValidation   = errors.New("gateway: validation failed")
	ErrUnauthorized = errors.New("gateway: unauthorized")
	ErrNotFound     = errors.New("gateway: not found")
	ErrUpstream     = errors.New("gateway: upstream error")
)

// FieldError is a server-reported validation failure for a single form field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// APIError carries a structured upstream failure. Unwrap yields the failure
// class sentinel so errors.Is(err, gateway.ErrNotFound) works on wrapped errors.
type APIError struct {
	Status  int
	Message string
	Fields  []FieldError

	class error
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s (%d): %s", e.class.Error(), e.Status, e.Message)
	}
	return fmt.Sprintf("%s (%d)", e.class.Error(), e.Status)
}

func (e *APIError) Unwrap() error {
	return e.class
}

// FieldMessages flattens validation failures into a field -> message map for
// inline form display.
func (e *APIError) FieldMessages() map[string]string {
	if len(e.Fields) == 0 {
		return nil
	}
	out := make(map[string]string, len(e.Fields))
	for _, f := range e.Fields {
		out[f.Field] = f.Message
	}
	return out
}
