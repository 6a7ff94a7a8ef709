package ports

import (
	"context"

	"github.com/teamtrack/employee-system/internal/core/domain"
)

// DepartmentRepository defines the persistence interface for departments.
type DepartmentRepository interface {
	List(ctx context.Context) ([]domain.Department, error)
	FindByID(ctx context.Context, id int64) (*domain.Department, error)
	Create(ctx context.Context, d *domain.Department) (*domain.Department, error)
	Update(ctx context.Context, d *domain.Department) (*domain.Department, error)
	Delete(ctx context.Context, id int64) error

	// CountEmployees reports how many employees are assigned to the
	// department. Deletion is refused while the count is non-zero.
	CountEmployees(ctx context.Context, id int64) (int64, error)
}
