package ports

import (
	"context"
	"time"

	"github.com/teamtrack/employee-system/internal/core/domain"
)

// AttendanceRepository defines the persistence interface for attendance
// records.
type AttendanceRepository interface {
	CreateCheckIn(ctx context.Context, a *domain.Attendance) (*domain.Attendance, error)

	// CloseOpen stamps checkOut on every record for the employee whose
	// check-out is still unset, returning how many records were closed.
	CloseOpen(ctx context.Context, employeeID int64, checkOut time.Time) (int64, error)

	// ListRecent returns the newest records first with the employee name
	// attached, capped at limit.
	ListRecent(ctx context.Context, limit int) ([]domain.Attendance, error)
	ListByEmployee(ctx context.Context, employeeID int64) ([]domain.Attendance, error)
}
