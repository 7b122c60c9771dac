package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate is shared by both repositories. go-playground struct tags on the
// domain types are the single source of persistence constraints.
var validate = validator.New()

// ValidateCourse checks a fully-merged course against its constraints and
// returns a *ValidationError listing every violated rule.
func ValidateCourse(c *Course) error {
	return runValidation(c)
}

// ValidateUser checks a user prior to persistence. The password is validated
// by the auth service before hashing, so only profile fields are covered here.
func ValidateUser(u *User) error {
	return runValidation(u)
}

func runValidation(entity any) error {
	err := validate.Struct(entity)
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return err
	}

	msgs := make([]string, 0, len(ve))
	for _, fe := range ve {
		msgs = append(msgs, fieldError(fe))
	}
	return &ValidationError{Messages: msgs}
}

// fieldError converts a single ValidationError into a human-readable message.
func fieldError(fe validator.FieldError) string {
	field := lowerFirst(fe.Field())
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("Please provide a value for %q", field)
	case "email":
		return fmt.Sprintf("%q must be a valid email address", field)
	case "min":
		return fmt.Sprintf("%q must be at least %s characters", field, fe.Param())
	default:
		return fmt.Sprintf("%q failed validation (%s)", field, fe.Tag())
	}
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
