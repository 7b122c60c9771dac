package domain

import "testing"

func TestCourse_OwnedBy(t *testing.T) {
	course := &Course{ID: "c1", UserID: "u1"}

	if !course.OwnedBy("u1") {
		t.Fatalf("owner should be allowed")
	}
	if course.OwnedBy("u2") {
		t.Fatalf("non-owner should be denied")
	}
	if course.OwnedBy("") {
		t.Fatalf("empty user id should never own anything")
	}
}

func TestCourseChanges_Apply(t *testing.T) {
	course := &Course{
		ID:              "c1",
		Title:           "Old title",
		Description:     "Old description",
		EstimatedTime:   "2 weeks",
		MaterialsNeeded: "notebook",
		UserID:          "u1",
	}

	title := "New title"
	materials := ""
	changes := CourseChanges{Title: &title, MaterialsNeeded: &materials}
	changes.Apply(course)

	if course.Title != "New title" {
		t.Fatalf("title not applied: %q", course.Title)
	}
	if course.MaterialsNeeded != "" {
		t.Fatalf("explicit empty value should overwrite: %q", course.MaterialsNeeded)
	}
	if course.Description != "Old description" || course.EstimatedTime != "2 weeks" {
		t.Fatalf("absent fields must stay untouched")
	}
	if course.ID != "c1" || course.UserID != "u1" {
		t.Fatalf("id and owner must never change")
	}
}
