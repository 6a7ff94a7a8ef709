package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/teamtrack/employee-system/internal/core/domain"
	"github.com/teamtrack/employee-system/internal/core/ports"
)

const bcryptCost = 10

// AuthService implements registration, login, and current-user lookup.
// Plaintext passwords exist only inside these calls; they are never logged,
// stored, or returned.
type AuthService struct {
	users     ports.AuthRepository
	employees ports.EmployeeRepository
	tokens    ports.TokenService
	logger    zerolog.Logger
}

func NewAuthService(users ports.AuthRepository, employees ports.EmployeeRepository, tokens ports.TokenService, logger zerolog.Logger) *AuthService {
	return &AuthService{users: users, employees: employees, tokens: tokens, logger: logger}
}

// Register creates a user identity for an existing employee. The repository
// runs the uniqueness checks and the insert in one transaction, so a failure
// at any step leaves no partial identity behind.
func (s *AuthService) Register(ctx context.Context, username, password, email string) (*domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, err
	}

	user, err := s.users.CreateEmployeeUser(ctx, username, string(hash), email)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("username", user.Username).Int64("user_id", user.ID).Msg("user registered")
	return user, nil
}

// Login resolves the identity by username or, failing that, by treating the
// submitted value as an employee email and following its linked account.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *domain.User, *domain.Employee, error) {
	user, err := s.users.FindUserByUsername(ctx, username)
	if errors.Is(err, domain.ErrUserNotFound) {
		user, err = s.users.FindUserByEmployeeEmail(ctx, username)
	}
	if err != nil {
		return "", nil, nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(domain.Claims{
		UserID:     user.ID,
		Role:       user.Role,
		EmployeeID: user.EmployeeID,
	})
	if err != nil {
		return "", nil, nil, err
	}

	employee := s.linkedEmployee(ctx, user)

	s.logger.Info().Str("username", user.Username).Str("role", user.Role).Msg("login successful")
	return token, user, employee, nil
}

// CurrentUser returns the identity behind verified claims, with the linked
// employee record (department included) when one exists.
func (s *AuthService) CurrentUser(ctx context.Context, userID int64) (*ports.CurrentUserResult, error) {
	user, err := s.users.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &ports.CurrentUserResult{
		User:     user,
		Employee: s.linkedEmployee(ctx, user),
	}, nil
}

// linkedEmployee fetches the employee a user is linked to. Lookup failures
// degrade to a nil employee rather than failing the auth flow.
func (s *AuthService) linkedEmployee(ctx context.Context, user *domain.User) *domain.Employee {
	if user.EmployeeID == nil {
		return nil
	}
	employee, err := s.employees.FindByID(ctx, *user.EmployeeID)
	if err != nil {
		s.logger.Warn().Err(err).Int64("employee_id", *user.EmployeeID).Msg("linked employee lookup failed")
		return nil
	}
	return employee
}
