package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/homeandown/listings-api/internal/api/metrics"
	"github.com/homeandown/listings-api/internal/core/ports"
)

// ContextUserID is the echo context key under which Auth stores the
// authenticated caller's ID.
const ContextUserID = "user_id"

// ExtractBearer strips an optional "Bearer " prefix from an Authorization
// header value. A bare token without the prefix is accepted as-is.
func ExtractBearer(header string) string {
	const prefix = "bearer "
	if len(header) >= len(prefix) && strings.EqualFold(header[:len(prefix)], prefix) {
		return strings.TrimSpace(header[len(prefix):])
	}
	return strings.TrimSpace(header)
}

// Auth gates protected routes behind a bearer token. On success the resolved
// user ID is stored in the request context; otherwise the request is rejected
// with 401 before the handler runs.
func Auth(tokens ports.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := ExtractBearer(c.Request().Header.Get("Authorization"))
			if token == "" {
				metrics.AuthRejectionsTotal.WithLabelValues("missing").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "Token missing")
			}

			userID, err := tokens.Verify(token)
			if err != nil {
				metrics.AuthRejectionsTotal.WithLabelValues("invalid").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "Token invalid")
			}

			c.Set(ContextUserID, userID)
			return next(c)
		}
	}
}
