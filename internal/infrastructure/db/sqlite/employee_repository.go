package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/teamtrack/employee-system/internal/core/domain"
)

// EmployeeRepository persists employee records in SQLite.
type EmployeeRepository struct {
	db *sql.DB
}

func NewEmployeeRepository(db *sql.DB) *EmployeeRepository {
	return &EmployeeRepository{db: db}
}

func (r *EmployeeRepository) List(ctx context.Context) ([]domain.Employee, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT e.id, e.name, e.email, e.position, e.department_id, e.salary, e.joining_date, d.name
		FROM employees e
		LEFT JOIN departments d ON d.id = e.department_id
		ORDER BY e.id`)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	defer rows.Close()

	employees := make([]domain.Employee, 0)
	for rows.Next() {
		var (
			e        domain.Employee
			deptName sql.NullString
		)
		if err := rows.Scan(&e.ID, &e.Name, &e.Email, &e.Position, &e.DepartmentID, &e.Salary, &e.JoiningDate, &deptName); err != nil {
			return nil, fmt.Errorf("scan employee: %w", err)
		}
		if deptName.Valid {
			e.Department = &domain.DepartmentRef{Name: deptName.String}
		}
		employees = append(employees, e)
	}
	return employees, rows.Err()
}

func (r *EmployeeRepository) FindByID(ctx context.Context, id int64) (*domain.Employee, error) {
	var (
		e        domain.Employee
		deptName sql.NullString
	)
	err := r.db.QueryRowContext(ctx, `
		SELECT e.id, e.name, e.email, e.position, e.department_id, e.salary, e.joining_date, d.name
		FROM employees e
		LEFT JOIN departments d ON d.id = e.department_id
		WHERE e.id = ?`, id).
		Scan(&e.ID, &e.Name, &e.Email, &e.Position, &e.DepartmentID, &e.Salary, &e.JoiningDate, &deptName)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrEmployeeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find employee: %w", err)
	}
	if deptName.Valid {
		e.Department = &domain.DepartmentRef{Name: deptName.String}
	}
	return &e, nil
}

func (r *EmployeeRepository) Create(ctx context.Context, e *domain.Employee) (*domain.Employee, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO employees (name, email, position, department_id, salary, joining_date)
		VALUES (?, ?, ?, ?, ?, ?)`,
		e.Name, e.Email, e.Position, e.DepartmentID, e.Salary, e.JoiningDate)
	if err != nil {
		if isConstraint(err, "employees.email") {
			return nil, domain.ErrEmployeeEmailTaken
		}
		return nil, fmt.Errorf("insert employee: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("insert employee id: %w", err)
	}
	return r.FindByID(ctx, id)
}

func (r *EmployeeRepository) Update(ctx context.Context, e *domain.Employee) (*domain.Employee, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE employees
		SET name = ?, email = ?, position = ?, department_id = ?, salary = ?, joining_date = ?
		WHERE id = ?`,
		e.Name, e.Email, e.Position, e.DepartmentID, e.Salary, e.JoiningDate, e.ID)
	if err != nil {
		if isConstraint(err, "employees.email") {
			return nil, domain.ErrEmployeeEmailTaken
		}
		return nil, fmt.Errorf("update employee: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("update employee rows: %w", err)
	}
	if affected == 0 {
		return nil, domain.ErrEmployeeNotFound
	}
	return r.FindByID(ctx, e.ID)
}

func (r *EmployeeRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM employees WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete employee: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete employee rows: %w", err)
	}
	if affected == 0 {
		return domain.ErrEmployeeNotFound
	}
	return nil
}
