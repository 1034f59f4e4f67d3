package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/nailyse/salon-api/internal/core/domain"
	"github.com/nailyse/salon-api/internal/core/ports"
)

// UserContextKey is where the authenticated user is stored on the echo
// context.
const UserContextKey = "auth_user"

// Auth resolves the bearer token to a user record and injects it into the
// request context. All failures map to 401; malformed, expired and
// unknown-account cases differ only by message text, matching what the
// frontend has always been shown.
func Auth(auth ports.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			user, err := auth.Authenticate(c.Request().Context(), parts[1])
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, authFailureMessage(err))
			}

			c.Set(UserContextKey, user)
			return next(c)
		}
	}
}

func authFailureMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrTokenExpired):
		return "token expired"
	case errors.Is(err, domain.ErrTokenMalformed):
		return "invalid token"
	case errors.Is(err, domain.ErrUserNotFound):
		return "user not found"
	case errors.Is(err, domain.ErrUserDisabled):
		return "user account is disabled"
	default:
		return "authentication failed"
	}
}

// CurrentUser returns the authenticated user injected by Auth, or nil.
func CurrentUser(c echo.Context) *domain.User {
	user, _ := c.Get(UserContextKey).(*domain.User)
	return user
}
