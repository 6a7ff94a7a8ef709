package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/teamtrack/employee-system/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors. Details
// is only populated for validation failures, one entry per violated field.
type errorResponse struct {
	Error   string              `json:"error"`
	Details []domain.FieldError `json:"details,omitempty"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Renders validation failures as 400 with every field violation listed.
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"error": "<message>", "details": [...]}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg, details := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Error: msg, Details: details})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string, []domain.FieldError) {
	// Rejected payloads carry every violation found, not just the first.
	var ve domain.ValidationErrors
	if errors.As(err, &ve) {
		return http.StatusBadRequest, "Validation failed", ve
	}

	// Echo's own errors (bind failures, 404 from router, middleware rejections).
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message), nil
	}

	// Known domain errors → deterministic HTTP codes.
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "Authentication failed", nil
	case errors.Is(err, domain.ErrInvalidToken):
		return http.StatusBadRequest, "Invalid token.", nil
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, "User not found", nil
	case errors.Is(err, domain.ErrEmailNotRegistered):
		return http.StatusNotFound, "Email not found", nil
	case errors.Is(err, domain.ErrEmployeeNotFound):
		return http.StatusNotFound, "Employee not found", nil
	case errors.Is(err, domain.ErrDepartmentNotFound):
		return http.StatusNotFound, "Department not found", nil
	case errors.Is(err, domain.ErrLeaveNotFound):
		return http.StatusNotFound, "Leave request not found", nil
	case errors.Is(err, domain.ErrUsernameTaken):
		return http.StatusConflict, "Username already exists", nil
	case errors.Is(err, domain.ErrAccountExists):
		return http.StatusConflict, "Account already exists", nil
	case errors.Is(err, domain.ErrEmployeeEmailTaken):
		return http.StatusConflict, "Employee email already exists", nil
	case errors.Is(err, domain.ErrDepartmentInUse):
		return http.StatusConflict, "Department still has employees assigned", nil
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error", nil
}
