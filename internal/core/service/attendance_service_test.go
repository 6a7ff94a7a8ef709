package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/teamtrack/employee-system/internal/core/domain"
	"github.com/teamtrack/employee-system/internal/core/ports"
)

type stubAttendanceRepo struct {
	records []domain.Attendance
	nextID  int64
}

func (r *stubAttendanceRepo) CreateCheckIn(_ context.Context, a *domain.Attendance) (*domain.Attendance, error) {
	r.nextID++
	clone := *a
	clone.ID = r.nextID
	r.records = append(r.records, clone)
	return &clone, nil
}

func (r *stubAttendanceRepo) CloseOpen(_ context.Context, employeeID int64, checkOut time.Time) (int64, error) {
	var closed int64
	for i := range r.records {
		if r.records[i].EmployeeID == employeeID && r.records[i].CheckOut == nil {
			t := checkOut
			r.records[i].CheckOut = &t
			closed++
		}
	}
	return closed, nil
}

func (r *stubAttendanceRepo) ListRecent(_ context.Context, limit int) ([]domain.Attendance, error) {
	if len(r.records) > limit {
		return r.records[:limit], nil
	}
	return r.records, nil
}

func (r *stubAttendanceRepo) ListByEmployee(_ context.Context, employeeID int64) ([]domain.Attendance, error) {
	out := make([]domain.Attendance, 0)
	for _, a := range r.records {
		if a.EmployeeID == employeeID {
			out = append(out, a)
		}
	}
	return out, nil
}

func attendanceFixture() (*AttendanceService, *stubAttendanceRepo) {
	repo := &stubAttendanceRepo{}
	employees := newStubEmployeeRepo()
	employees.byID[7] = &domain.Employee{ID: 7, Name: "Alice Doe", Email: "alice@example.com"}
	return NewAttendanceService(repo, employees, zerolog.Nop()), repo
}

func TestAttendanceService_CheckIn(t *testing.T) {
	svc, _ := attendanceFixture()

	in := time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC)
	record, err := svc.CheckIn(context.Background(), ports.CheckInInput{EmployeeID: 7, CheckIn: in})
	if err != nil {
		t.Fatalf("check-in: %v", err)
	}
	if record.Date != "2026-08-28" {
		t.Fatalf("unexpected date: %s", record.Date)
	}
	if record.CheckOut != nil {
		t.Fatalf("check-out must be open")
	}
}

func TestAttendanceService_CheckIn_WithCheckOut(t *testing.T) {
	svc, _ := attendanceFixture()

	in := time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC)
	out := in.Add(8 * time.Hour)
	record, err := svc.CheckIn(context.Background(), ports.CheckInInput{EmployeeID: 7, CheckIn: in, CheckOut: &out})
	if err != nil {
		t.Fatalf("check-in: %v", err)
	}
	if record.CheckOut == nil || !record.CheckOut.Equal(out) {
		t.Fatalf("expected closed record, got %+v", record.CheckOut)
	}
}

func TestAttendanceService_CheckIn_UnknownEmployee(t *testing.T) {
	svc, repo := attendanceFixture()

	_, err := svc.CheckIn(context.Background(), ports.CheckInInput{EmployeeID: 99, CheckIn: time.Now()})
	if !errors.Is(err, domain.ErrEmployeeNotFound) {
		t.Fatalf("expected ErrEmployeeNotFound, got %v", err)
	}
	if len(repo.records) != 0 {
		t.Fatalf("no record may be created for an unknown employee")
	}
}

func TestAttendanceService_CheckOut_ClosesAllOpen(t *testing.T) {
	svc, repo := attendanceFixture()

	in := time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		if _, err := svc.CheckIn(context.Background(), ports.CheckInInput{EmployeeID: 7, CheckIn: in}); err != nil {
			t.Fatalf("check-in %d: %v", i, err)
		}
	}

	result, err := svc.CheckOut(context.Background(), ports.CheckOutInput{EmployeeID: 7, CheckOut: in.Add(8 * time.Hour)})
	if err != nil {
		t.Fatalf("check-out: %v", err)
	}
	if result.Count != 3 {
		t.Fatalf("expected 3 closed records, got %d", result.Count)
	}
	for _, a := range repo.records {
		if a.CheckOut == nil {
			t.Fatalf("record %d left open", a.ID)
		}
	}
}

func TestAttendanceService_CheckOut_NothingOpen(t *testing.T) {
	svc, _ := attendanceFixture()

	result, err := svc.CheckOut(context.Background(), ports.CheckOutInput{EmployeeID: 7, CheckOut: time.Now()})
	if err != nil {
		t.Fatalf("check-out: %v", err)
	}
	if result.Count != 0 {
		t.Fatalf("expected 0 closed records, got %d", result.Count)
	}
}
