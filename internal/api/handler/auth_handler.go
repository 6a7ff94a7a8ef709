package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/teamtrack/employee-system/internal/api/metrics"
	"github.com/teamtrack/employee-system/internal/core/domain"
	"github.com/teamtrack/employee-system/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type registerRequest struct {
	Username string `json:"username" validate:"required,min=3,max=20"`
	Password string `json:"password" validate:"required,min=6,hasupper,hasdigit"`
	Email    string `json:"email" validate:"required,email"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// userPayload is the user shape returned by the auth endpoints. The password
// hash never appears here; Employee is attached where the endpoint resolves
// the linked employee record.
type userPayload struct {
	ID         int64            `json:"id"`
	Username   string           `json:"username"`
	Role       string           `json:"role"`
	EmployeeID *int64           `json:"employeeId"`
	Employee   *domain.Employee `json:"employee,omitempty"`
}

// errorPayload is the error envelope rendered directly by handlers that map
// their own failures. It matches the envelope the central error handler uses.
type errorPayload struct {
	Error   string             `json:"error"`
	Details []domain.FieldError `json:"details,omitempty"`
}

func userFrom(u *domain.User, emp *domain.Employee) userPayload {
	return userPayload{
		ID:         u.ID,
		Username:   u.Username,
		Role:       u.Role,
		EmployeeID: u.EmployeeID,
		Employee:   emp,
	}
}

// Register creates an account for an existing employee.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      201   {object}  map[string]any
// @Failure      400   {object}  errorPayload
// @Failure      404   {object}  errorPayload
// @Failure      409   {object}  errorPayload
// @Router       /register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	user, err := h.authService.Register(c.Request().Context(), req.Username, req.Password, req.Email)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUsernameTaken):
			metrics.RegistrationsTotal.WithLabelValues("username_taken").Inc()
			return c.JSON(http.StatusConflict, errorPayload{
				Error:   "Username already exists",
				Details: []domain.FieldError{{Field: "username", Message: "This username is already taken"}},
			})
		case errors.Is(err, domain.ErrEmailNotRegistered):
			metrics.RegistrationsTotal.WithLabelValues("email_not_found").Inc()
			return c.JSON(http.StatusNotFound, errorPayload{
				Error:   "Email not found",
				Details: []domain.FieldError{{Field: "email", Message: "This email is not registered as an employee"}},
			})
		case errors.Is(err, domain.ErrAccountExists):
			metrics.RegistrationsTotal.WithLabelValues("account_exists").Inc()
			return c.JSON(http.StatusConflict, errorPayload{
				Error:   "Account already exists",
				Details: []domain.FieldError{{Field: "email", Message: "An account already exists for this employee"}},
			})
		}
		metrics.RegistrationsTotal.WithLabelValues("error").Inc()
		return err
	}

	metrics.RegistrationsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusCreated, map[string]any{
		"message": "User registered successfully",
		"user":    userFrom(user, nil),
	})
}

// Login authenticates by username, or by employee email when no username
// matches, and returns a signed access token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  map[string]any
// @Failure      400   {object}  errorPayload
// @Failure      401   {object}  errorPayload
// @Failure      404   {object}  errorPayload
// @Router       /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	token, user, employee, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			metrics.LoginsTotal.WithLabelValues("user_not_found").Inc()
			return c.JSON(http.StatusNotFound, errorPayload{
				Error:   "Authentication failed",
				Details: []domain.FieldError{{Field: "username", Message: "User not found"}},
			})
		case errors.Is(err, domain.ErrInvalidCredentials):
			metrics.LoginsTotal.WithLabelValues("invalid_password").Inc()
			return c.JSON(http.StatusUnauthorized, errorPayload{
				Error:   "Authentication failed",
				Details: []domain.FieldError{{Field: "password", Message: "Invalid password"}},
			})
		}
		metrics.LoginsTotal.WithLabelValues("error").Inc()
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, map[string]any{
		"message": "Login successful",
		"token":   token,
		"user":    userFrom(user, employee),
	})
}

// CurrentUser returns the account behind the presented token, with its
// linked employee record when one exists.
//
// @Summary      Current user
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  userPayload
// @Failure      401  {object}  errorPayload
// @Failure      404  {object}  errorPayload
// @Router       /current-user [get]
func (h *AuthHandler) CurrentUser(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	res, err := h.authService.CurrentUser(c.Request().Context(), claims.UserID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, userFrom(res.User, res.Employee))
}
