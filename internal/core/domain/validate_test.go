package domain

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateCourse_Valid(t *testing.T) {
	course := &Course{Title: "Intro", Description: "A short course", UserID: "u1"}
	if err := ValidateCourse(course); err != nil {
		t.Fatalf("expected valid course, got %v", err)
	}
}

func TestValidateCourse_MissingRequired(t *testing.T) {
	course := &Course{UserID: "u1"}
	err := ValidateCourse(course)

	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(ve.Messages) != 2 {
		t.Fatalf("expected 2 messages, got %d: %v", len(ve.Messages), ve.Messages)
	}
	joined := strings.Join(ve.Messages, " ")
	if !strings.Contains(joined, `"title"`) || !strings.Contains(joined, `"description"`) {
		t.Fatalf("messages do not name the violated fields: %v", ve.Messages)
	}
}

func TestValidateUser_BadEmail(t *testing.T) {
	user := &User{FirstName: "Joe", LastName: "Smith", EmailAddress: "not-an-email"}
	err := ValidateUser(user)

	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(ve.Messages) != 1 {
		t.Fatalf("expected 1 message, got %v", ve.Messages)
	}
	if !strings.Contains(ve.Messages[0], "emailAddress") {
		t.Fatalf("message does not name the field: %q", ve.Messages[0])
	}
}

func TestValidationError_Error(t *testing.T) {
	err := NewValidationError("one", "two")
	if got := err.Error(); got != "validation failed: one; two" {
		t.Fatalf("unexpected message: %q", got)
	}
}
