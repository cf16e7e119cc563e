package models

import (
	"fmt"
	"strings"
)

// ValidationError describes a client-fixable problem with a request payload.
type ValidationError struct {
	Message string
	Fields  []string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) > 0 {
		return fmt.Sprintf("%s: %s", e.Message, strings.Join(e.Fields, ", "))
	}
	return e.Message
}

func invalidField(field, reason string) *ValidationError {
	return &ValidationError{Message: reason, Fields: []string{field}}
}
