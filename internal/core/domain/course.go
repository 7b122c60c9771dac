package domain

import "time"

// Course is the core aggregate root. A course is owned by exactly one user;
// ownership is fixed at creation and never changes afterwards.
//
// CreatedAt/UpdatedAt are internal bookkeeping and never serialized, matching
// the API projection rule. The embedded owner is populated on reads only.
type Course struct {
	ID              string    `json:"id" validate:"-"`
	Title           string    `json:"title" validate:"required"`
	Description     string    `json:"description" validate:"required"`
	EstimatedTime   string    `json:"estimatedTime,omitempty"`
	MaterialsNeeded string    `json:"materialsNeeded,omitempty"`
	UserID          string    `json:"userId"`
	User            *User     `json:"user,omitempty"`
	CreatedAt       time.Time `json:"-"`
	UpdatedAt       time.Time `json:"-"`
}

// OwnedBy reports whether userID is the course owner. This is the whole
// authorization policy for course mutations.
func (c *Course) OwnedBy(userID string) bool {
	return userID != "" && c.UserID == userID
}

// CourseChanges carries a partial update. Nil fields are left untouched.
// The course id and owner are deliberately absent: both are immutable.
type CourseChanges struct {
	Title           *string
	Description     *string
	EstimatedTime   *string
	MaterialsNeeded *string
}

// Apply copies the non-nil fields onto c.
func (ch CourseChanges) Apply(c *Course) {
	if ch.Title != nil {
		c.Title = *ch.Title
	}
	if ch.Description != nil {
		c.Description = *ch.Description
	}
	if ch.EstimatedTime != nil {
		c.EstimatedTime = *ch.EstimatedTime
	}
	if ch.MaterialsNeeded != nil {
		c.MaterialsNeeded = *ch.MaterialsNeeded
	}
}
