package ports

import (
	"context"
	"time"

	"github.com/teamtrack/employee-system/internal/core/domain"
)

type CheckInInput struct {
	EmployeeID int64
	CheckIn    time.Time
	// CheckOut may be supplied up front when a full day is recorded at once.
	CheckOut *time.Time
}

type CheckOutInput struct {
	EmployeeID int64
	CheckOut   time.Time
}

// CheckOutResult reports how many open records were closed.
type CheckOutResult struct {
	Count int64 `json:"count"`
}

type AttendanceService interface {
	CheckIn(ctx context.Context, input CheckInInput) (*domain.Attendance, error)
	CheckOut(ctx context.Context, input CheckOutInput) (*CheckOutResult, error)
	ListRecent(ctx context.Context) ([]domain.Attendance, error)
	ListByEmployee(ctx context.Context, employeeID int64) ([]domain.Attendance, error)
}
