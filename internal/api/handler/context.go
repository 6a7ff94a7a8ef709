package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/teamtrack/employee-system/internal/api/middleware"
	"github.com/teamtrack/employee-system/internal/core/domain"
)

// ctxClaims extracts the auth claims injected by the Auth middleware.
// Their absence means the route was wired without the middleware — treat it
// as an unauthenticated request rather than panicking.
func ctxClaims(c echo.Context) (*domain.Claims, error) {
	claims, _ := c.Get(middleware.ClaimsKey).(*domain.Claims)
	if claims == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return claims, nil
}
