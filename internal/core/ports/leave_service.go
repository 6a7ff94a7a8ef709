package ports

import (
	"context"

	"github.com/teamtrack/employee-system/internal/core/domain"
)

type LeaveInput struct {
	EmployeeID int64
	StartDate  string
	EndDate    string
	Type       string
	Reason     string
}

type LeaveStatusInput struct {
	Status    string
	AdminNote string
}

type LeaveService interface {
	// ListFor scopes results by role: admins see every request, employees
	// only those of their linked employee record.
	ListFor(ctx context.Context, claims domain.Claims) ([]domain.Leave, error)
	Create(ctx context.Context, input LeaveInput) (*domain.Leave, error)
	UpdateStatus(ctx context.Context, id int64, input LeaveStatusInput) (*domain.Leave, error)
	Delete(ctx context.Context, id int64) error
}
