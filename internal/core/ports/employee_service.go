package ports

import (
	"context"

	"github.com/teamtrack/employee-system/internal/core/domain"
)

// EmployeeInput carries the validated fields for creating or updating an
// employee. The transport layer owns the request shape; services only see
// this whitelisted form.
type EmployeeInput struct {
	Name         string
	Email        string
	Position     string
	DepartmentID int64
	Salary       float64
	JoiningDate  string
}

type EmployeeService interface {
	List(ctx context.Context) ([]domain.Employee, error)
	Get(ctx context.Context, id int64) (*domain.Employee, error)
	Create(ctx context.Context, input EmployeeInput) (*domain.Employee, error)
	Update(ctx context.Context, id int64, input EmployeeInput) (*domain.Employee, error)
	Delete(ctx context.Context, id int64) error
}
