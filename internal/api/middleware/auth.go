package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/localspot/directory-api/internal/core/domain"
	"github.com/localspot/directory-api/internal/core/ports"
)

// ContextUserKey is where Auth stores the resolved *domain.User.
const ContextUserKey = "user"

// Auth verifies the bearer token, resolves it to a live user record and
// injects the user into the request context. Every failure — missing header,
// bad shape, invalid token, deleted account — ends the request with 401.
func Auth(tokens ports.TokenService, users ports.AuthRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "not authorized, no token")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			userID, err := tokens.Verify(parts[1])
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "not authorized, token failed")
			}

			// The token may outlive the account it was issued for.
			user, err := users.FindByID(c.Request().Context(), userID)
			if err != nil {
				if errors.Is(err, domain.ErrUserNotFound) {
					return echo.NewHTTPError(http.StatusUnauthorized, "user not found")
				}
				return err
			}

			c.Set(ContextUserKey, user)
			return next(c)
		}
	}
}
