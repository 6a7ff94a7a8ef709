package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/teamtrack/employee-system/internal/core/domain"
	"github.com/teamtrack/employee-system/internal/core/ports"
)

// EmployeeService implements CRUD over employee records.
type EmployeeService struct {
	repo        ports.EmployeeRepository
	departments ports.DepartmentRepository
	logger      zerolog.Logger
}

func NewEmployeeService(repo ports.EmployeeRepository, departments ports.DepartmentRepository, logger zerolog.Logger) *EmployeeService {
	return &EmployeeService{repo: repo, departments: departments, logger: logger}
}

func (s *EmployeeService) List(ctx context.Context) ([]domain.Employee, error) {
	return s.repo.List(ctx)
}

func (s *EmployeeService) Get(ctx context.Context, id int64) (*domain.Employee, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *EmployeeService) Create(ctx context.Context, input ports.EmployeeInput) (*domain.Employee, error) {
	if _, err := s.departments.FindByID(ctx, input.DepartmentID); err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, &domain.Employee{
		Name:         input.Name,
		Email:        input.Email,
		Position:     input.Position,
		DepartmentID: input.DepartmentID,
		Salary:       input.Salary,
		JoiningDate:  input.JoiningDate,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("employee_id", created.ID).Str("email", created.Email).Msg("employee created")
	return created, nil
}

func (s *EmployeeService) Update(ctx context.Context, id int64, input ports.EmployeeInput) (*domain.Employee, error) {
	if _, err := s.departments.FindByID(ctx, input.DepartmentID); err != nil {
		return nil, err
	}

	return s.repo.Update(ctx, &domain.Employee{
		ID:           id,
		Name:         input.Name,
		Email:        input.Email,
		Position:     input.Position,
		DepartmentID: input.DepartmentID,
		Salary:       input.Salary,
		JoiningDate:  input.JoiningDate,
	})
}

func (s *EmployeeService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Int64("employee_id", id).Msg("employee deleted")
	return nil
}
