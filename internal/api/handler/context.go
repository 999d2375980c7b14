package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/stayhub/lodging-api/internal/api/middleware"
)

// ctxIdentity extracts the caller identity injected by the Auth middleware.
// An empty user id means the middleware did not run for this route.
func ctxIdentity(c echo.Context) (userID, role string, err error) {
	userID, _ = c.Get(middleware.ContextKeyUserID).(string)
	if userID == "" {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	role, _ = c.Get(middleware.ContextKeyRole).(string)
	return userID, role, nil
}
