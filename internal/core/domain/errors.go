package domain

import (
	"errors"
	"strings"
)

var ErrCourseNotFound = errors.New("course not found")
var ErrUserNotFound = errors.New("user not found")
var ErrInvalidCredentials = errors.New("invalid credentials")

// ValidationError is returned by repositories when an entity violates a
// persistence constraint. It carries one human-readable message per violated
// rule; handlers resolve it locally as a 400 and it never reaches the global
// error handler.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Messages, "; ")
}

// NewValidationError builds a ValidationError from individual rule messages.
func NewValidationError(messages ...string) *ValidationError {
	return &ValidationError{Messages: messages}
}

// OwnershipError signals that an authenticated caller attempted to mutate a
// course owned by somebody else. The message is operation-specific and is
// rendered verbatim in the 403 body.
type OwnershipError struct {
	Message string
}

func (e *OwnershipError) Error() string {
	return e.Message
}
