package ports

import (
	"context"

	"github.com/teamtrack/employee-system/internal/core/domain"
)

type DepartmentInput struct {
	Name        string
	Description string
}

type DepartmentService interface {
	List(ctx context.Context) ([]domain.Department, error)
	Get(ctx context.Context, id int64) (*domain.Department, error)
	Create(ctx context.Context, input DepartmentInput) (*domain.Department, error)
	Update(ctx context.Context, id int64, input DepartmentInput) (*domain.Department, error)
	Delete(ctx context.Context, id int64) error
}
