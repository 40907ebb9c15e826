package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/localspot/directory-api/internal/api/middleware"
	"github.com/localspot/directory-api/internal/core/domain"
)

// currentUser extracts the user resolved by the Auth middleware. Its absence
// means the route was registered without the middleware; fail closed with 401.
func currentUser(c echo.Context) (*domain.User, error) {
	user, ok := c.Get(middleware.ContextUserKey).(*domain.User)
	if !ok || user == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "not authorized")
	}
	return user, nil
}
