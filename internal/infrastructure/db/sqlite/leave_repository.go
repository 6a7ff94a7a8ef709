package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/teamtrack/employee-system/internal/core/domain"
)

// LeaveRepository persists leave requests in SQLite.
type LeaveRepository struct {
	db *sql.DB
}

func NewLeaveRepository(db *sql.DB) *LeaveRepository {
	return &LeaveRepository{db: db}
}

const leaveSelect = `
	SELECT l.id, l.employee_id, l.start_date, l.end_date, l.type, l.reason, l.status, l.admin_note, l.created_at,
	       e.name, e.email, e.position, e.department_id, d.name
	FROM leaves l
	JOIN employees e ON e.id = l.employee_id
	LEFT JOIN departments d ON d.id = e.department_id`

func (r *LeaveRepository) ListAll(ctx context.Context) ([]domain.Leave, error) {
	rows, err := r.db.QueryContext(ctx, leaveSelect+` ORDER BY l.created_at DESC, l.id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list leaves: %w", err)
	}
	defer rows.Close()
	return collectLeaves(rows)
}

func (r *LeaveRepository) ListByEmployee(ctx context.Context, employeeID int64) ([]domain.Leave, error) {
	rows, err := r.db.QueryContext(ctx, leaveSelect+` WHERE l.employee_id = ? ORDER BY l.created_at DESC, l.id DESC`, employeeID)
	if err != nil {
		return nil, fmt.Errorf("list leaves by employee: %w", err)
	}
	defer rows.Close()
	return collectLeaves(rows)
}

func (r *LeaveRepository) Create(ctx context.Context, l *domain.Leave) (*domain.Leave, error) {
	now := time.Now().UTC()
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO leaves (employee_id, start_date, end_date, type, reason, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		l.EmployeeID, l.StartDate, l.EndDate, l.Type, l.Reason, l.Status, formatTime(now))
	if err != nil {
		return nil, fmt.Errorf("insert leave: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("insert leave id: %w", err)
	}
	return r.findByID(ctx, id)
}

func (r *LeaveRepository) UpdateStatus(ctx context.Context, id int64, status, adminNote string) (*domain.Leave, error) {
	res, err := r.db.ExecContext(ctx, `UPDATE leaves SET status = ?, admin_note = ? WHERE id = ?`,
		status, nullString(adminNote), id)
	if err != nil {
		return nil, fmt.Errorf("update leave: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("update leave rows: %w", err)
	}
	if affected == 0 {
		return nil, domain.ErrLeaveNotFound
	}
	return r.findByID(ctx, id)
}

func (r *LeaveRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM leaves WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete leave: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete leave rows: %w", err)
	}
	if affected == 0 {
		return domain.ErrLeaveNotFound
	}
	return nil
}

func (r *LeaveRepository) findByID(ctx context.Context, id int64) (*domain.Leave, error) {
	row := r.db.QueryRowContext(ctx, leaveSelect+` WHERE l.id = ?`, id)
	l, err := scanLeave(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrLeaveNotFound
	}
	return l, err
}

func scanLeave(row rowScanner) (*domain.Leave, error) {
	var (
		l         domain.Leave
		adminNote sql.NullString
		createdAt string
		emp       domain.Employee
		deptName  sql.NullString
	)
	err := row.Scan(&l.ID, &l.EmployeeID, &l.StartDate, &l.EndDate, &l.Type, &l.Reason, &l.Status, &adminNote, &createdAt,
		&emp.Name, &emp.Email, &emp.Position, &emp.DepartmentID, &deptName)
	if err != nil {
		return nil, err
	}
	l.AdminNote = adminNote.String
	l.CreatedAt = parseTime(createdAt)

	emp.ID = l.EmployeeID
	if deptName.Valid {
		emp.Department = &domain.DepartmentRef{Name: deptName.String}
	}
	l.Employee = &emp
	return &l, nil
}

func collectLeaves(rows *sql.Rows) ([]domain.Leave, error) {
	leaves := make([]domain.Leave, 0)
	for rows.Next() {
		l, err := scanLeave(rows)
		if err != nil {
			return nil, fmt.Errorf("scan leave: %w", err)
		}
		leaves = append(leaves, *l)
	}
	return leaves, rows.Err()
}
