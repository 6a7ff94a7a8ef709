package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/teamtrack/employee-system/internal/core/domain"
	"github.com/teamtrack/employee-system/internal/core/ports"
)

// DepartmentService implements CRUD over departments.
type DepartmentService struct {
	repo   ports.DepartmentRepository
	logger zerolog.Logger
}

func NewDepartmentService(repo ports.DepartmentRepository, logger zerolog.Logger) *DepartmentService {
	return &DepartmentService{repo: repo, logger: logger}
}

func (s *DepartmentService) List(ctx context.Context) ([]domain.Department, error) {
	return s.repo.List(ctx)
}

func (s *DepartmentService) Get(ctx context.Context, id int64) (*domain.Department, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *DepartmentService) Create(ctx context.Context, input ports.DepartmentInput) (*domain.Department, error) {
	created, err := s.repo.Create(ctx, &domain.Department{
		Name:        input.Name,
		Description: input.Description,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("department_id", created.ID).Str("name", created.Name).Msg("department created")
	return created, nil
}

func (s *DepartmentService) Update(ctx context.Context, id int64, input ports.DepartmentInput) (*domain.Department, error) {
	return s.repo.Update(ctx, &domain.Department{
		ID:          id,
		Name:        input.Name,
		Description: input.Description,
	})
}

// Delete refuses to remove a department that still has employees assigned.
func (s *DepartmentService) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}

	count, err := s.repo.CountEmployees(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return domain.ErrDepartmentInUse
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Int64("department_id", id).Msg("department deleted")
	return nil
}
