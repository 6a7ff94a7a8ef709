package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/teamtrack/employee-system/internal/api/middleware"
	"github.com/teamtrack/employee-system/internal/core/domain"
	"github.com/teamtrack/employee-system/internal/core/ports"
)

type stubAuthService struct {
	registerFn    func(ctx context.Context, username, password, email string) (*domain.User, error)
	loginFn       func(ctx context.Context, username, password string) (string, *domain.User, *domain.Employee, error)
	currentUserFn func(ctx context.Context, userID int64) (*ports.CurrentUserResult, error)
}

func (s *stubAuthService) Register(ctx context.Context, username, password, email string) (*domain.User, error) {
	return s.registerFn(ctx, username, password, email)
}

func (s *stubAuthService) Login(ctx context.Context, username, password string) (string, *domain.User, *domain.Employee, error) {
	return s.loginFn(ctx, username, password)
}

func (s *stubAuthService) CurrentUser(ctx context.Context, userID int64) (*ports.CurrentUserResult, error) {
	return s.currentUserFn(ctx, userID)
}

func newAuthContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	return resp
}

func TestAuthHandler_Register_Success(t *testing.T) {
	empID := int64(7)
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, username, password, email string) (*domain.User, error) {
			if username != "alice" || email != "alice@example.com" {
				t.Fatalf("unexpected args: %s %s", username, email)
			}
			return &domain.User{ID: 1, Username: username, Role: domain.RoleEmployee, EmployeeID: &empID}, nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newAuthContext(t, http.MethodPost, "/register",
		`{"username":"alice","password":"Secret1","email":"alice@example.com"}`)

	if err := h.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	resp := decodeBody(t, rec)
	if resp["message"] != "User registered successfully" {
		t.Fatalf("unexpected message: %v", resp["message"])
	}
	user, ok := resp["user"].(map[string]any)
	if !ok {
		t.Fatalf("expected user in response")
	}
	if user["username"] != "alice" || user["role"] != "employee" || user["employeeId"] != float64(7) {
		t.Fatalf("unexpected user payload: %+v", user)
	}
	if _, leaked := user["password"]; leaked {
		t.Fatalf("password must never appear in responses")
	}
}

func TestAuthHandler_Register_ValidationFailure(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, username, password, email string) (*domain.User, error) {
			t.Fatalf("service must not be called on invalid payload")
			return nil, nil
		},
	}
	h := NewAuthHandler(stub)

	c, _ := newAuthContext(t, http.MethodPost, "/register",
		`{"username":"alice","password":"abcdef","email":"alice@example.com"}`)

	err := h.Register(c)
	var ve domain.ValidationErrors
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationErrors, got %v", err)
	}
	if len(ve) != 2 {
		t.Fatalf("expected 2 password violations, got %d: %+v", len(ve), ve)
	}
}

func TestAuthHandler_Register_UsernameTaken(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, username, password, email string) (*domain.User, error) {
			return nil, domain.ErrUsernameTaken
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newAuthContext(t, http.MethodPost, "/register",
		`{"username":"alice","password":"Secret1","email":"alice@example.com"}`)

	if err := h.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}

	resp := decodeBody(t, rec)
	details, ok := resp["details"].([]any)
	if !ok || len(details) != 1 {
		t.Fatalf("expected one detail entry: %+v", resp)
	}
	detail := details[0].(map[string]any)
	if detail["field"] != "username" || detail["message"] != "This username is already taken" {
		t.Fatalf("unexpected detail: %+v", detail)
	}
}

func TestAuthHandler_Register_EmailNotRegistered(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, username, password, email string) (*domain.User, error) {
			return nil, domain.ErrEmailNotRegistered
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newAuthContext(t, http.MethodPost, "/register",
		`{"username":"alice","password":"Secret1","email":"ghost@example.com"}`)

	if err := h.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}

	resp := decodeBody(t, rec)
	if resp["error"] != "Email not found" {
		t.Fatalf("unexpected error: %v", resp["error"])
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	empID := int64(7)
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, username, password string) (string, *domain.User, *domain.Employee, error) {
			user := &domain.User{ID: 1, Username: username, Role: domain.RoleEmployee, EmployeeID: &empID}
			emp := &domain.Employee{ID: empID, Name: "Alice Doe", Email: "alice@example.com"}
			return "signed-token", user, emp, nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newAuthContext(t, http.MethodPost, "/login",
		`{"username":"alice","password":"Secret1"}`)

	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	resp := decodeBody(t, rec)
	if resp["token"] != "signed-token" {
		t.Fatalf("missing token: %+v", resp)
	}
	user := resp["user"].(map[string]any)
	employee, ok := user["employee"].(map[string]any)
	if !ok || employee["name"] != "Alice Doe" {
		t.Fatalf("expected linked employee in payload: %+v", user)
	}
}

func TestAuthHandler_Login_UnknownUser(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, username, password string) (string, *domain.User, *domain.Employee, error) {
			return "", nil, nil, domain.ErrUserNotFound
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newAuthContext(t, http.MethodPost, "/login",
		`{"username":"ghost","password":"Secret1"}`)

	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "token") {
		t.Fatalf("no token may be issued on failure: %s", rec.Body.String())
	}
}

func TestAuthHandler_Login_WrongPassword(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, username, password string) (string, *domain.User, *domain.Employee, error) {
			return "", nil, nil, domain.ErrInvalidCredentials
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newAuthContext(t, http.MethodPost, "/login",
		`{"username":"alice","password":"Wrong1x"}`)

	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}

	resp := decodeBody(t, rec)
	if resp["error"] != "Authentication failed" {
		t.Fatalf("unexpected error: %v", resp["error"])
	}
}

func TestAuthHandler_CurrentUser(t *testing.T) {
	empID := int64(7)
	stub := &stubAuthService{
		currentUserFn: func(ctx context.Context, userID int64) (*ports.CurrentUserResult, error) {
			if userID != 1 {
				t.Fatalf("unexpected user id: %d", userID)
			}
			return &ports.CurrentUserResult{
				User:     &domain.User{ID: 1, Username: "alice", Role: domain.RoleEmployee, EmployeeID: &empID},
				Employee: &domain.Employee{ID: empID, Name: "Alice Doe"},
			}, nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newAuthContext(t, http.MethodGet, "/current-user", "")
	c.Set(middleware.ClaimsKey, &domain.Claims{UserID: 1, Role: domain.RoleEmployee, EmployeeID: &empID})

	if err := h.CurrentUser(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	resp := decodeBody(t, rec)
	if resp["username"] != "alice" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestAuthHandler_CurrentUser_NoClaims(t *testing.T) {
	stub := &stubAuthService{
		currentUserFn: func(ctx context.Context, userID int64) (*ports.CurrentUserResult, error) {
			t.Fatalf("service must not be called without claims")
			return nil, nil
		},
	}
	h := NewAuthHandler(stub)

	c, _ := newAuthContext(t, http.MethodGet, "/current-user", "")

	err := h.CurrentUser(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}
