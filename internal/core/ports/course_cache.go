package ports

import (
	"context"

	"github.com/opencourses/course-api/internal/core/domain"
)

// CourseCache is a best-effort read cache in front of the course repository.
// A cache miss or cache failure is never an error for the caller; the backing
// store stays authoritative and every mutation invalidates the whole cache.
type CourseCache interface {
	GetList(ctx context.Context) ([]*domain.Course, bool)
	SetList(ctx context.Context, courses []*domain.Course)
	GetCourse(ctx context.Context, id string) (*domain.Course, bool)
	SetCourse(ctx context.Context, course *domain.Course)
	Invalidate(ctx context.Context)
}
