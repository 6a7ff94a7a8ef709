package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/teamtrack/employee-system/internal/core/domain"
)

// DepartmentRepository persists departments in SQLite.
type DepartmentRepository struct {
	db *sql.DB
}

func NewDepartmentRepository(db *sql.DB) *DepartmentRepository {
	return &DepartmentRepository{db: db}
}

func scanDepartment(row rowScanner) (*domain.Department, error) {
	var (
		d    domain.Department
		desc sql.NullString
	)
	if err := row.Scan(&d.ID, &d.Name, &desc); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrDepartmentNotFound
		}
		return nil, fmt.Errorf("scan department: %w", err)
	}
	d.Description = desc.String
	return &d, nil
}

func (r *DepartmentRepository) List(ctx context.Context) ([]domain.Department, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, description FROM departments ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list departments: %w", err)
	}
	defer rows.Close()

	departments := make([]domain.Department, 0)
	for rows.Next() {
		d, err := scanDepartment(rows)
		if err != nil {
			return nil, err
		}
		departments = append(departments, *d)
	}
	return departments, rows.Err()
}

func (r *DepartmentRepository) FindByID(ctx context.Context, id int64) (*domain.Department, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id, name, description FROM departments WHERE id = ?`, id)
	return scanDepartment(row)
}

func (r *DepartmentRepository) Create(ctx context.Context, d *domain.Department) (*domain.Department, error) {
	res, err := r.db.ExecContext(ctx, `INSERT INTO departments (name, description) VALUES (?, ?)`,
		d.Name, nullString(d.Description))
	if err != nil {
		return nil, fmt.Errorf("insert department: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("insert department id: %w", err)
	}
	return r.FindByID(ctx, id)
}

func (r *DepartmentRepository) Update(ctx context.Context, d *domain.Department) (*domain.Department, error) {
	res, err := r.db.ExecContext(ctx, `UPDATE departments SET name = ?, description = ? WHERE id = ?`,
		d.Name, nullString(d.Description), d.ID)
	if err != nil {
		return nil, fmt.Errorf("update department: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("update department rows: %w", err)
	}
	if affected == 0 {
		return nil, domain.ErrDepartmentNotFound
	}
	return r.FindByID(ctx, d.ID)
}

func (r *DepartmentRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM departments WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete department: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete department rows: %w", err)
	}
	if affected == 0 {
		return domain.ErrDepartmentNotFound
	}
	return nil
}

func (r *DepartmentRepository) CountEmployees(ctx context.Context, id int64) (int64, error) {
	var count int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(1) FROM employees WHERE department_id = ?`, id).Scan(&count); err != nil {
		return 0, fmt.Errorf("count department employees: %w", err)
	}
	return count, nil
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
