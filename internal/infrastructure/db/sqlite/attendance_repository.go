package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/teamtrack/employee-system/internal/core/domain"
)

// AttendanceRepository persists attendance records in SQLite.
type AttendanceRepository struct {
	db *sql.DB
}

func NewAttendanceRepository(db *sql.DB) *AttendanceRepository {
	return &AttendanceRepository{db: db}
}

func (r *AttendanceRepository) CreateCheckIn(ctx context.Context, a *domain.Attendance) (*domain.Attendance, error) {
	var checkOut any
	if a.CheckOut != nil {
		checkOut = formatTime(*a.CheckOut)
	}
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO attendance (employee_id, date, check_in, check_out)
		VALUES (?, ?, ?, ?)`,
		a.EmployeeID, a.Date, formatTime(a.CheckIn), checkOut)
	if err != nil {
		return nil, fmt.Errorf("insert attendance: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("insert attendance id: %w", err)
	}
	return r.findByID(ctx, id)
}

func (r *AttendanceRepository) CloseOpen(ctx context.Context, employeeID int64, checkOut time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE attendance SET check_out = ?
		WHERE employee_id = ? AND check_out IS NULL`,
		formatTime(checkOut), employeeID)
	if err != nil {
		return 0, fmt.Errorf("close attendance: %w", err)
	}
	return res.RowsAffected()
}

func (r *AttendanceRepository) ListRecent(ctx context.Context, limit int) ([]domain.Attendance, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT a.id, a.employee_id, a.date, a.check_in, a.check_out, e.name
		FROM attendance a
		JOIN employees e ON e.id = a.employee_id
		ORDER BY a.date DESC, a.id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list attendance: %w", err)
	}
	defer rows.Close()

	return collectAttendance(rows, true)
}

func (r *AttendanceRepository) ListByEmployee(ctx context.Context, employeeID int64) ([]domain.Attendance, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT a.id, a.employee_id, a.date, a.check_in, a.check_out
		FROM attendance a
		WHERE a.employee_id = ?
		ORDER BY a.date DESC, a.id DESC`, employeeID)
	if err != nil {
		return nil, fmt.Errorf("list attendance by employee: %w", err)
	}
	defer rows.Close()

	return collectAttendance(rows, false)
}

func (r *AttendanceRepository) findByID(ctx context.Context, id int64) (*domain.Attendance, error) {
	var (
		a        domain.Attendance
		checkIn  string
		checkOut sql.NullString
	)
	err := r.db.QueryRowContext(ctx, `
		SELECT id, employee_id, date, check_in, check_out FROM attendance WHERE id = ?`, id).
		Scan(&a.ID, &a.EmployeeID, &a.Date, &checkIn, &checkOut)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("attendance %d vanished after insert", id)
	}
	if err != nil {
		return nil, fmt.Errorf("find attendance: %w", err)
	}
	a.CheckIn = parseTime(checkIn)
	if checkOut.Valid {
		t := parseTime(checkOut.String)
		a.CheckOut = &t
	}
	return &a, nil
}

func collectAttendance(rows *sql.Rows, withEmployee bool) ([]domain.Attendance, error) {
	records := make([]domain.Attendance, 0)
	for rows.Next() {
		var (
			a        domain.Attendance
			checkIn  string
			checkOut sql.NullString
			name     string
		)
		dest := []any{&a.ID, &a.EmployeeID, &a.Date, &checkIn, &checkOut}
		if withEmployee {
			dest = append(dest, &name)
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("scan attendance: %w", err)
		}
		a.CheckIn = parseTime(checkIn)
		if checkOut.Valid {
			t := parseTime(checkOut.String)
			a.CheckOut = &t
		}
		if withEmployee {
			a.Employee = &domain.EmployeeRef{Name: name}
		}
		records = append(records, a)
	}
	return records, rows.Err()
}
