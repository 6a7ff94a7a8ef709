package ports

import (
	"context"

	"github.com/teamtrack/employee-system/internal/core/domain"
)

// CurrentUserResult is the authenticated user together with its linked
// employee record (department included), when one exists.
type CurrentUserResult struct {
	User     *domain.User
	Employee *domain.Employee
}

type AuthService interface {
	Register(ctx context.Context, username, password, email string) (*domain.User, error)
	Login(ctx context.Context, username, password string) (string, *domain.User, *domain.Employee, error)
	CurrentUser(ctx context.Context, userID int64) (*CurrentUserResult, error)
}
