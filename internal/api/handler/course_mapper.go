package handler

import (
	"github.com/opencourses/course-api/internal/core/domain"
	"github.com/opencourses/course-api/internal/core/ports"
)

func toCreateInput(req createCourseRequest) ports.CreateCourseInput {
	return ports.CreateCourseInput{
		Title:           req.Title,
		Description:     req.Description,
		EstimatedTime:   req.EstimatedTime,
		MaterialsNeeded: req.MaterialsNeeded,
	}
}

func toChanges(req updateCourseRequest) domain.CourseChanges {
	return domain.CourseChanges{
		Title:           req.Title,
		Description:     req.Description,
		EstimatedTime:   req.EstimatedTime,
		MaterialsNeeded: req.MaterialsNeeded,
	}
}

func toCourseResponse(c *domain.Course) courseResponse {
	resp := courseResponse{
		ID:              c.ID,
		Title:           c.Title,
		Description:     c.Description,
		EstimatedTime:   c.EstimatedTime,
		MaterialsNeeded: c.MaterialsNeeded,
		UserID:          c.UserID,
	}
	if c.User != nil {
		resp.User = &userResponse{
			ID:           c.User.ID,
			FirstName:    c.User.FirstName,
			LastName:     c.User.LastName,
			EmailAddress: c.User.EmailAddress,
		}
	}
	return resp
}

func toListResponse(courses []*domain.Course) listCoursesResponse {
	out := listCoursesResponse{Courses: make([]courseResponse, len(courses))}
	for i, c := range courses {
		out.Courses[i] = toCourseResponse(c)
	}
	return out
}
