package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/opencourses/course-api/internal/api/metrics"
	"github.com/opencourses/course-api/internal/core/domain"
	"github.com/opencourses/course-api/internal/core/ports"
)

// CourseHandler handles HTTP requests for the /courses resource. Validation
// failures and ownership denials are expected business outcomes and are
// resolved here; every other failure is returned and flows to the global
// error handler.
type CourseHandler struct {
	service ports.CourseService
}

func NewCourseHandler(service ports.CourseService) *CourseHandler {
	return &CourseHandler{service: service}
}

// List handles GET /courses.
//
// @Summary      List all courses
// @Tags         courses
// @Produce      json
// @Success      200  {object}  listCoursesResponse
// @Failure      500  {object}  errorBody
// @Router       /courses [get]
func (h *CourseHandler) List(c echo.Context) error {
	courses, err := h.service.ListCourses(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toListResponse(courses))
}

// Get handles GET /courses/:id.
//
// @Summary      Get a course by id
// @Tags         courses
// @Produce      json
// @Param        id   path      string  true  "Course id"
// @Success      200  {object}  getCourseResponse
// @Failure      404  {object}  errorBody
// @Router       /courses/{id} [get]
func (h *CourseHandler) Get(c echo.Context) error {
	course, err := h.service.GetCourse(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, getCourseResponse{Course: toCourseResponse(course)})
}

// Create handles POST /courses.
//
// @Summary      Create a course
// @Tags         courses
// @Accept       json
// @Security     BasicAuth
// @Param        body  body  createCourseRequest  true  "Course attributes"
// @Success      201   "Location header references the new course"
// @Failure      400   {object}  validationBody
// @Failure      401   {object}  errorBody
// @Router       /courses [post]
func (h *CourseHandler) Create(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req createCourseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	id, err := h.service.CreateCourse(c.Request().Context(), user.ID, toCreateInput(req))
	if err != nil {
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			return c.JSON(http.StatusBadRequest, validationBody{Errors: ve.Messages})
		}
		return err
	}

	metrics.CoursesCreatedTotal.Inc()
	c.Response().Header().Set(echo.HeaderLocation, "/"+id)
	return c.NoContent(http.StatusCreated)
}

// Update handles PUT /courses/:id.
//
// @Summary      Update a course
// @Tags         courses
// @Accept       json
// @Security     BasicAuth
// @Param        id    path  string               true  "Course id"
// @Param        body  body  updateCourseRequest  true  "Fields to change"
// @Success      204   "Location header references the course"
// @Failure      400   {object}  validationBody
// @Failure      401   {object}  errorBody
// @Failure      403   {object}  ownershipBody
// @Failure      404   {object}  errorBody
// @Router       /courses/{id} [put]
func (h *CourseHandler) Update(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req updateCourseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	id := c.Param("id")
	if err := h.service.UpdateCourse(c.Request().Context(), user.ID, id, toChanges(req)); err != nil {
		return h.mutationFailure(c, "update", err)
	}

	metrics.CourseMutationsTotal.WithLabelValues("update", "ok").Inc()
	c.Response().Header().Set(echo.HeaderLocation, "/"+id)
	return c.NoContent(http.StatusNoContent)
}

// Delete handles DELETE /courses/:id.
//
// @Summary      Delete a course
// @Tags         courses
// @Security     BasicAuth
// @Param        id  path  string  true  "Course id"
// @Success      204  "Location header points at the collection root"
// @Failure      401  {object}  errorBody
// @Failure      403  {object}  ownershipBody
// @Failure      404  {object}  errorBody
// @Router       /courses/{id} [delete]
func (h *CourseHandler) Delete(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	if err := h.service.DeleteCourse(c.Request().Context(), user.ID, c.Param("id")); err != nil {
		return h.mutationFailure(c, "delete", err)
	}

	metrics.CourseMutationsTotal.WithLabelValues("delete", "ok").Inc()
	c.Response().Header().Set(echo.HeaderLocation, "/")
	return c.NoContent(http.StatusNoContent)
}

// mutationFailure resolves the two expected business outcomes locally and
// lets everything else propagate to the global error handler.
func (h *CourseHandler) mutationFailure(c echo.Context, op string, err error) error {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		metrics.CourseMutationsTotal.WithLabelValues(op, "invalid").Inc()
		return c.JSON(http.StatusBadRequest, validationBody{Errors: ve.Messages})
	}

	var oe *domain.OwnershipError
	if errors.As(err, &oe) {
		metrics.CourseMutationsTotal.WithLabelValues(op, "denied").Inc()
		return c.JSON(http.StatusForbidden, ownershipBody{Error: oe.Message})
	}

	if errors.Is(err, domain.ErrCourseNotFound) {
		metrics.CourseMutationsTotal.WithLabelValues(op, "not_found").Inc()
	} else {
		metrics.CourseMutationsTotal.WithLabelValues(op, "error").Inc()
	}
	return err
}
