package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/teamtrack/employee-system/internal/core/domain"
	"github.com/teamtrack/employee-system/internal/core/ports"
)

const attendanceListLimit = 100

// AttendanceService records check-ins and check-outs and serves attendance
// history.
type AttendanceService struct {
	repo      ports.AttendanceRepository
	employees ports.EmployeeRepository
	logger    zerolog.Logger
}

func NewAttendanceService(repo ports.AttendanceRepository, employees ports.EmployeeRepository, logger zerolog.Logger) *AttendanceService {
	return &AttendanceService{repo: repo, employees: employees, logger: logger}
}

func (s *AttendanceService) CheckIn(ctx context.Context, input ports.CheckInInput) (*domain.Attendance, error) {
	if _, err := s.employees.FindByID(ctx, input.EmployeeID); err != nil {
		return nil, err
	}

	record := &domain.Attendance{
		EmployeeID: input.EmployeeID,
		Date:       input.CheckIn.UTC().Format("2006-01-02"),
		CheckIn:    input.CheckIn.UTC(),
	}
	if input.CheckOut != nil {
		out := input.CheckOut.UTC()
		record.CheckOut = &out
	}

	created, err := s.repo.CreateCheckIn(ctx, record)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("employee_id", input.EmployeeID).Msg("check-in recorded")
	return created, nil
}

// CheckOut closes every open record for the employee. Closing zero records
// is not an error; the result reports the count.
func (s *AttendanceService) CheckOut(ctx context.Context, input ports.CheckOutInput) (*ports.CheckOutResult, error) {
	if _, err := s.employees.FindByID(ctx, input.EmployeeID); err != nil {
		return nil, err
	}

	count, err := s.repo.CloseOpen(ctx, input.EmployeeID, input.CheckOut.UTC())
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("employee_id", input.EmployeeID).Int64("closed", count).Msg("check-out recorded")
	return &ports.CheckOutResult{Count: count}, nil
}

func (s *AttendanceService) ListRecent(ctx context.Context) ([]domain.Attendance, error) {
	return s.repo.ListRecent(ctx, attendanceListLimit)
}

func (s *AttendanceService) ListByEmployee(ctx context.Context, employeeID int64) ([]domain.Attendance, error) {
	return s.repo.ListByEmployee(ctx, employeeID)
}
