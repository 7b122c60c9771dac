package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/opencourses/course-api/internal/core/domain"
	"github.com/opencourses/course-api/internal/core/ports"
)

type CourseService struct {
	repo   ports.CourseRepository
	cache  ports.CourseCache
	logger zerolog.Logger
}

// NewCourseService wires the course use-cases. cache may be nil, in which
// case every read goes straight to the repository.
func NewCourseService(repo ports.CourseRepository, cache ports.CourseCache, logger zerolog.Logger) *CourseService {
	return &CourseService{repo: repo, cache: cache, logger: logger}
}

func (s *CourseService) ListCourses(ctx context.Context) ([]*domain.Course, error) {
	if s.cache != nil {
		if courses, ok := s.cache.GetList(ctx); ok {
			return courses, nil
		}
	}

	courses, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list courses")
		return nil, err
	}

	if s.cache != nil {
		s.cache.SetList(ctx, courses)
	}
	return courses, nil
}

func (s *CourseService) GetCourse(ctx context.Context, id string) (*domain.Course, error) {
	if s.cache != nil {
		if course, ok := s.cache.GetCourse(ctx, id); ok {
			return course, nil
		}
	}

	course, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.SetCourse(ctx, course)
	}
	return course, nil
}

// CreateCourse persists a new course owned by the caller. Any client-supplied
// owner never reaches this point: ownership is always the authenticated user.
func (s *CourseService) CreateCourse(ctx context.Context, currentUserID string, input ports.CreateCourseInput) (string, error) {
	now := time.Now().UTC()
	course := &domain.Course{
		Title:           input.Title,
		Description:     input.Description,
		EstimatedTime:   input.EstimatedTime,
		MaterialsNeeded: input.MaterialsNeeded,
		UserID:          currentUserID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	id, err := s.repo.Create(ctx, course)
	if err != nil {
		return "", err
	}

	s.invalidate(ctx)
	s.logger.Info().Str("course_id", id).Str("user_id", currentUserID).Msg("course created")
	return id, nil
}

// UpdateCourse applies a partial update after the existence and ownership
// checks. On denial nothing is written.
func (s *CourseService) UpdateCourse(ctx context.Context, currentUserID, id string, changes domain.CourseChanges) error {
	course, err := s.repo.FindByPrimaryKey(ctx, id)
	if err != nil {
		return err
	}
	if !course.OwnedBy(currentUserID) {
		return &domain.OwnershipError{Message: "You cannot update course that you dont owned"}
	}

	changes.Apply(course)
	course.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, course); err != nil {
		return err
	}

	s.invalidate(ctx)
	s.logger.Info().Str("course_id", id).Str("user_id", currentUserID).Msg("course updated")
	return nil
}

func (s *CourseService) DeleteCourse(ctx context.Context, currentUserID, id string) error {
	course, err := s.repo.FindByPrimaryKey(ctx, id)
	if err != nil {
		return err
	}
	if !course.OwnedBy(currentUserID) {
		return &domain.OwnershipError{Message: "You cannot destroy a course that you dont owned"}
	}

	if err := s.repo.Delete(ctx, course); err != nil {
		return err
	}

	s.invalidate(ctx)
	s.logger.Info().Str("course_id", id).Str("user_id", currentUserID).Msg("course deleted")
	return nil
}

func (s *CourseService) invalidate(ctx context.Context) {
	if s.cache != nil {
		s.cache.Invalidate(ctx)
	}
}
