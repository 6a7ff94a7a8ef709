package ports

import (
	"context"

	"github.com/teamtrack/employee-system/internal/core/domain"
)

// AuthRepository defines the persistence interface for user identities.
type AuthRepository interface {
	FindUserByID(ctx context.Context, id int64) (*domain.User, error)
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)

	// FindUserByEmployeeEmail resolves the user linked to the employee whose
	// email matches. Used by login when the submitted username is an email.
	FindUserByEmployeeEmail(ctx context.Context, email string) (*domain.User, error)

	// CreateEmployeeUser atomically runs the registration sequence: username
	// must be free, an employee with the given email must exist, and that
	// employee must not already have an account. All checks and the insert
	// happen in one transaction so no partial user is ever persisted.
	CreateEmployeeUser(ctx context.Context, username, passwordHash, email string) (*domain.User, error)
}
