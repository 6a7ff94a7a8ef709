package ports

import "context"

// DashboardSummary aggregates the headline counts shown on the dashboard.
type DashboardSummary struct {
	TotalEmployees   int64 `json:"totalEmployees"`
	TotalDepartments int64 `json:"totalDepartments"`
	PendingLeaves    int64 `json:"pendingLeaves"`
	PresentToday     int64 `json:"presentToday"`
}

// DashboardRepository exposes the aggregate queries behind the summary.
type DashboardRepository interface {
	CountEmployees(ctx context.Context) (int64, error)
	CountDepartments(ctx context.Context) (int64, error)
	CountPendingLeaves(ctx context.Context) (int64, error)
	CountPresentOn(ctx context.Context, date string) (int64, error)
}

// SummaryCache is a short-TTL cache in front of the summary queries.
// A miss is not an error; Get reports it via the bool.
type SummaryCache interface {
	Get(ctx context.Context) (*DashboardSummary, bool, error)
	Set(ctx context.Context, s *DashboardSummary) error
}

type DashboardService interface {
	Summary(ctx context.Context) (*DashboardSummary, error)
}
