package middleware

import (
	"encoding/base64"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/opencourses/course-api/internal/api/metrics"
	"github.com/opencourses/course-api/internal/core/ports"
)

// UserKey is the echo context key under which Auth stores the resolved
// *domain.User.
const UserKey = "currentUser"

// Auth resolves the request's credentials to a current user before the route
// body runs. Two schemes are accepted:
//   - Basic: email and password verified against the stored hash.
//   - Bearer: an HS256 JWT issued by the login endpoint.
//
// On any failure the route body never executes and the response is
// 401 {"message":"Access Denied"} via the global error handler.
func Auth(authService ports.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return deny(c, "missing_header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 {
				return deny(c, "malformed_header")
			}

			ctx := c.Request().Context()
			switch {
			case strings.EqualFold(parts[0], "basic"):
				email, password, ok := decodeBasic(parts[1])
				if !ok {
					return deny(c, "malformed_basic")
				}
				user, err := authService.Authenticate(ctx, email, password)
				if err != nil {
					return deny(c, "bad_credentials")
				}
				c.Set(UserKey, user)

			case strings.EqualFold(parts[0], "bearer"):
				user, err := authService.ResolveToken(ctx, parts[1])
				if err != nil {
					return deny(c, "bad_token")
				}
				c.Set(UserKey, user)

			default:
				return deny(c, "unknown_scheme")
			}

			return next(c)
		}
	}
}

func deny(c echo.Context, reason string) error {
	metrics.AuthFailuresTotal.WithLabelValues(reason).Inc()
	return echo.NewHTTPError(http.StatusUnauthorized, "Access Denied")
}

func decodeBasic(payload string) (email, password string, ok bool) {
	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", "", false
	}
	email, password, ok = strings.Cut(string(raw), ":")
	return email, password, ok
}
