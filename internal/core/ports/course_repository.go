package ports

import (
	"context"

	"github.com/opencourses/course-api/internal/core/domain"
)

// CourseRepository defines persistence operations for courses. The repository
// is the sole owner of persisted course state and enforces entity validation:
// Create and Update return *domain.ValidationError when a constraint is
// violated, never a partially-persisted entity.
type CourseRepository interface {
	// FindAll returns every course with its owner embedded and projected
	// (no password hash, no timestamps). An empty result is a valid success.
	FindAll(ctx context.Context) ([]*domain.Course, error)

	// FindByID returns the course with its owner embedded, or
	// domain.ErrCourseNotFound.
	FindByID(ctx context.Context, id string) (*domain.Course, error)

	// FindByPrimaryKey returns the raw course row (owner not embedded) for
	// mutating operations that need UserID before the ownership check.
	FindByPrimaryKey(ctx context.Context, id string) (*domain.Course, error)

	// Create validates and inserts the course, returning its assigned id.
	Create(ctx context.Context, course *domain.Course) (string, error)

	// Update validates and persists the already-merged course. ID and UserID
	// are never written.
	Update(ctx context.Context, course *domain.Course) error

	// Delete removes the course permanently. Callers confirm existence first.
	Delete(ctx context.Context, course *domain.Course) error
}
