package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/teamtrack/employee-system/internal/core/domain"
)

// AuthRepository persists user identities in SQLite.
type AuthRepository struct {
	db *sql.DB
}

func NewAuthRepository(db *sql.DB) *AuthRepository {
	return &AuthRepository{db: db}
}

const userColumns = "id, username, password, role, employee_id, created_at"

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (*domain.User, error) {
	var (
		u          domain.User
		employeeID sql.NullInt64
		createdAt  string
	)
	if err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Role, &employeeID, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("scan user: %w", err)
	}
	if employeeID.Valid {
		id := employeeID.Int64
		u.EmployeeID = &id
	}
	u.CreatedAt = parseTime(createdAt)
	return &u, nil
}

func (r *AuthRepository) FindUserByID(ctx context.Context, id int64) (*domain.User, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE id = ?`, id)
	return scanUser(row)
}

func (r *AuthRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE username = ?`, username)
	return scanUser(row)
}

func (r *AuthRepository) FindUserByEmployeeEmail(ctx context.Context, email string) (*domain.User, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT u.id, u.username, u.password, u.role, u.employee_id, u.created_at
		FROM users u
		JOIN employees e ON e.id = u.employee_id
		WHERE e.email = ?`, email)
	return scanUser(row)
}

// CreateEmployeeUser runs the whole registration sequence in one transaction:
// username free, employee exists for the email, employee not yet linked, then
// the insert. The unique constraints on username and employee_id back the
// checks up, so two concurrent registrations cannot both succeed.
func (r *AuthRepository) CreateEmployeeUser(ctx context.Context, username, passwordHash, email string) (*domain.User, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin registration: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var taken int
	if err := tx.QueryRowContext(ctx, `SELECT COUNT(1) FROM users WHERE username = ?`, username).Scan(&taken); err != nil {
		return nil, fmt.Errorf("check username: %w", err)
	}
	if taken > 0 {
		return nil, domain.ErrUsernameTaken
	}

	var employeeID int64
	err = tx.QueryRowContext(ctx, `SELECT id FROM employees WHERE email = ?`, email).Scan(&employeeID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrEmailNotRegistered
	}
	if err != nil {
		return nil, fmt.Errorf("resolve employee: %w", err)
	}

	var linked int
	if err := tx.QueryRowContext(ctx, `SELECT COUNT(1) FROM users WHERE employee_id = ?`, employeeID).Scan(&linked); err != nil {
		return nil, fmt.Errorf("check linked account: %w", err)
	}
	if linked > 0 {
		return nil, domain.ErrAccountExists
	}

	now := time.Now().UTC()
	res, err := tx.ExecContext(ctx, `
		INSERT INTO users (username, password, role, employee_id, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		username, passwordHash, domain.RoleEmployee, employeeID, formatTime(now))
	if err != nil {
		// The constraints catch the race the pre-checks cannot.
		if isConstraint(err, "users.username") {
			return nil, domain.ErrUsernameTaken
		}
		if isConstraint(err, "users.employee_id") {
			return nil, domain.ErrAccountExists
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("insert user id: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit registration: %w", err)
	}

	return &domain.User{
		ID:           id,
		Username:     username,
		PasswordHash: passwordHash,
		Role:         domain.RoleEmployee,
		EmployeeID:   &employeeID,
		CreatedAt:    now,
	}, nil
}
