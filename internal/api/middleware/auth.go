package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/teamtrack/employee-system/internal/core/ports"
)

// Context keys set by Auth for downstream handlers.
const (
	ClaimsKey = "claims"
	RoleKey   = "role"
)

// Auth extracts the bearer token, verifies it, and injects the claims into
// context. A missing token is 401; a present but invalid or expired token is
// 400. OPTIONS requests pass through unauthenticated so CORS pre-flights
// succeed.
func Auth(tokens ports.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Request().Method == http.MethodOptions {
				return next(c)
			}

			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Access denied. No token provided.")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid authorization header.")
			}

			claims, err := tokens.Verify(parts[1])
			if err != nil {
				return echo.NewHTTPError(http.StatusBadRequest, "Invalid token.")
			}

			c.Set(ClaimsKey, claims)
			c.Set(RoleKey, claims.Role)

			return next(c)
		}
	}
}
