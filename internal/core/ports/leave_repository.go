package ports

import (
	"context"

	"github.com/teamtrack/employee-system/internal/core/domain"
)

// LeaveRepository defines the persistence interface for leave requests.
// List results carry the employee (with department) attached, newest first.
type LeaveRepository interface {
	ListAll(ctx context.Context) ([]domain.Leave, error)
	ListByEmployee(ctx context.Context, employeeID int64) ([]domain.Leave, error)
	Create(ctx context.Context, l *domain.Leave) (*domain.Leave, error)
	UpdateStatus(ctx context.Context, id int64, status, adminNote string) (*domain.Leave, error)
	Delete(ctx context.Context, id int64) error
}
