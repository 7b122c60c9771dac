package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/opencourses/course-api/internal/api/middleware"
	"github.com/opencourses/course-api/internal/core/domain"
)

// currentUser extracts the user injected by the Auth middleware and performs
// a fast-fail check before any service call: a missing user means the route
// was registered without the middleware, which must never silently pass.
func currentUser(c echo.Context) (*domain.User, error) {
	user, _ := c.Get(middleware.UserKey).(*domain.User)
	if user == nil || user.ID == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Access Denied")
	}
	return user, nil
}
