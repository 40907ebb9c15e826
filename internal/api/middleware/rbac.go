package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/localspot/directory-api/internal/core/domain"
)

// RequireRole gates a route on the role resolved by Auth. It runs strictly
// after authentication: an unresolved user here is a middleware-ordering bug
// and still reads as 401, never as 403.
func RequireRole(role string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, ok := c.Get(ContextUserKey).(*domain.User)
			if !ok || user == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "not authorized")
			}
			if user.Role != role {
				return echo.NewHTTPError(http.StatusForbidden, "access denied")
			}
			return next(c)
		}
	}
}

// BusinessOwnerOnly restricts a route to business owners.
func BusinessOwnerOnly() echo.MiddlewareFunc {
	return RequireRole(domain.RoleBusinessOwner)
}

// RegularUserOnly restricts a route to regular users.
func RegularUserOnly() echo.MiddlewareFunc {
	return RequireRole(domain.RoleUser)
}
