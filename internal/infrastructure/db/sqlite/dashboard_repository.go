package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/teamtrack/employee-system/internal/core/domain"
)

// DashboardRepository serves the aggregate queries behind the dashboard
// summary.
type DashboardRepository struct {
	db *sql.DB
}

func NewDashboardRepository(db *sql.DB) *DashboardRepository {
	return &DashboardRepository{db: db}
}

func (r *DashboardRepository) CountEmployees(ctx context.Context) (int64, error) {
	return r.count(ctx, `SELECT COUNT(1) FROM employees`)
}

func (r *DashboardRepository) CountDepartments(ctx context.Context) (int64, error) {
	return r.count(ctx, `SELECT COUNT(1) FROM departments`)
}

func (r *DashboardRepository) CountPendingLeaves(ctx context.Context) (int64, error) {
	return r.count(ctx, `SELECT COUNT(1) FROM leaves WHERE status = ?`, domain.LeavePending)
}

func (r *DashboardRepository) CountPresentOn(ctx context.Context, date string) (int64, error) {
	return r.count(ctx, `SELECT COUNT(DISTINCT employee_id) FROM attendance WHERE date = ?`, date)
}

func (r *DashboardRepository) count(ctx context.Context, query string, args ...any) (int64, error) {
	var n int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("dashboard count: %w", err)
	}
	return n, nil
}
