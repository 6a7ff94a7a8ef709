package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/teamtrack/employee-system/internal/core/domain"
	"github.com/teamtrack/employee-system/internal/core/ports"
)

// LeaveService implements leave request submission and review.
type LeaveService struct {
	repo      ports.LeaveRepository
	employees ports.EmployeeRepository
	logger    zerolog.Logger
}

func NewLeaveService(repo ports.LeaveRepository, employees ports.EmployeeRepository, logger zerolog.Logger) *LeaveService {
	return &LeaveService{repo: repo, employees: employees, logger: logger}
}

// ListFor scopes visibility by role: admins see every request, employees only
// the requests of their linked employee record.
func (s *LeaveService) ListFor(ctx context.Context, claims domain.Claims) ([]domain.Leave, error) {
	if claims.Role == domain.RoleAdmin {
		return s.repo.ListAll(ctx)
	}
	if claims.EmployeeID == nil {
		return nil, domain.ErrEmployeeNotFound
	}
	return s.repo.ListByEmployee(ctx, *claims.EmployeeID)
}

func (s *LeaveService) Create(ctx context.Context, input ports.LeaveInput) (*domain.Leave, error) {
	if _, err := s.employees.FindByID(ctx, input.EmployeeID); err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, &domain.Leave{
		EmployeeID: input.EmployeeID,
		StartDate:  input.StartDate,
		EndDate:    input.EndDate,
		Type:       input.Type,
		Reason:     input.Reason,
		Status:     domain.LeavePending,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("leave_id", created.ID).Int64("employee_id", created.EmployeeID).Str("type", created.Type).Msg("leave request submitted")
	return created, nil
}

func (s *LeaveService) UpdateStatus(ctx context.Context, id int64, input ports.LeaveStatusInput) (*domain.Leave, error) {
	updated, err := s.repo.UpdateStatus(ctx, id, input.Status, input.AdminNote)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("leave_id", id).Str("status", input.Status).Msg("leave status updated")
	return updated, nil
}

func (s *LeaveService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
