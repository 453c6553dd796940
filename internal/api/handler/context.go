package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/homeandown/listings-api/internal/api/middleware"
)

// ctxUserID extracts the caller ID injected by the Auth middleware. A missing
// ID means the route was wired without the middleware; fail closed.
func ctxUserID(c echo.Context) (string, error) {
	userID, _ := c.Get(middleware.ContextUserID).(string)
	if userID == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "Token missing")
	}
	return userID, nil
}
