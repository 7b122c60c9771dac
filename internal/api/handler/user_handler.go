package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/opencourses/course-api/internal/core/domain"
	"github.com/opencourses/course-api/internal/core/ports"
)

type UserHandler struct {
	authService ports.AuthService
}

func NewUserHandler(authService ports.AuthService) *UserHandler {
	return &UserHandler{authService: authService}
}

type createUserRequest struct {
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	EmailAddress string `json:"emailAddress"`
	Password     string `json:"password"`
}

type loginRequest struct {
	EmailAddress string `json:"emailAddress"`
	Password     string `json:"password"`
}

type loginResponse struct {
	Token string       `json:"token"`
	User  userResponse `json:"user"`
}

// GetCurrent handles GET /users — returns the authenticated caller.
//
// @Summary      Get the current user
// @Tags         users
// @Produce      json
// @Security     BasicAuth
// @Success      200  {object}  userResponse
// @Failure      401  {object}  errorBody
// @Router       /users [get]
func (h *UserHandler) GetCurrent(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponse(user))
}

// Create handles POST /users — account registration.
//
// @Summary      Register a new user
// @Tags         users
// @Accept       json
// @Param        body  body  createUserRequest  true  "Account details"
// @Success      201   "Location header points at the site root"
// @Failure      400   {object}  validationBody
// @Router       /users [post]
func (h *UserHandler) Create(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	_, err := h.authService.Register(c.Request().Context(), req.FirstName, req.LastName, req.EmailAddress, req.Password)
	if err != nil {
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			return c.JSON(http.StatusBadRequest, validationBody{Errors: ve.Messages})
		}
		return err
	}

	c.Response().Header().Set(echo.HeaderLocation, "/")
	return c.NoContent(http.StatusCreated)
}

// Login handles POST /users/login — verifies credentials and issues a JWT
// usable as a Bearer alternative to Basic credentials.
//
// @Summary      Login
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      401   {object}  errorBody
// @Router       /users/login [post]
func (h *UserHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	token, user, err := h.authService.Login(c.Request().Context(), req.EmailAddress, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, loginResponse{Token: token, User: toUserResponse(user)})
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:           u.ID,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		EmailAddress: u.EmailAddress,
	}
}
