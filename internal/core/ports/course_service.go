package ports

import (
	"context"

	"github.com/opencourses/course-api/internal/core/domain"
)

// CreateCourseInput carries the client-supplied course attributes. Any
// client-supplied owner is ignored: the service forces ownership to the
// authenticated caller.
type CreateCourseInput struct {
	Title           string
	Description     string
	EstimatedTime   string
	MaterialsNeeded string
}

// CourseService defines the use-case operations behind the /courses routes.
// Mutating operations take the authenticated caller's id and enforce the
// ownership policy, returning *domain.OwnershipError on denial.
type CourseService interface {
	ListCourses(ctx context.Context) ([]*domain.Course, error)
	GetCourse(ctx context.Context, id string) (*domain.Course, error)
	CreateCourse(ctx context.Context, currentUserID string, input CreateCourseInput) (string, error)
	UpdateCourse(ctx context.Context, currentUserID, id string, changes domain.CourseChanges) error
	DeleteCourse(ctx context.Context, currentUserID, id string) error
}
