package ports

import (
	"context"

	"github.com/teamtrack/employee-system/internal/core/domain"
)

// EmployeeRepository defines the persistence interface for employees.
type EmployeeRepository interface {
	// List returns all employees with their department name attached.
	List(ctx context.Context) ([]domain.Employee, error)
	FindByID(ctx context.Context, id int64) (*domain.Employee, error)
	Create(ctx context.Context, e *domain.Employee) (*domain.Employee, error)
	Update(ctx context.Context, e *domain.Employee) (*domain.Employee, error)
	Delete(ctx context.Context, id int64) error
}
