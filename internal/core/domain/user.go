package domain

import "time"

// User models a registered account. The password hash is never serialized,
// and timestamps are excluded from every API projection.
type User struct {
	ID           string    `json:"id" validate:"-"`
	FirstName    string    `json:"firstName" validate:"required"`
	LastName     string    `json:"lastName" validate:"required"`
	EmailAddress string    `json:"emailAddress" validate:"required,email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"-"`
	UpdatedAt    time.Time `json:"-"`
}
