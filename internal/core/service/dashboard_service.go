package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/teamtrack/employee-system/internal/core/ports"
)

// DashboardService aggregates the headline counts, fronted by a short-TTL
// cache. Cache failures degrade to direct queries.
type DashboardService struct {
	repo   ports.DashboardRepository
	cache  ports.SummaryCache
	logger zerolog.Logger
}

func NewDashboardService(repo ports.DashboardRepository, cache ports.SummaryCache, logger zerolog.Logger) *DashboardService {
	return &DashboardService{repo: repo, cache: cache, logger: logger}
}

func (s *DashboardService) Summary(ctx context.Context) (*ports.DashboardSummary, error) {
	if s.cache != nil {
		cached, ok, err := s.cache.Get(ctx)
		if err != nil {
			s.logger.Warn().Err(err).Msg("summary cache read failed")
		} else if ok {
			return cached, nil
		}
	}

	summary, err := s.compute(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, summary); err != nil {
			s.logger.Warn().Err(err).Msg("summary cache write failed")
		}
	}
	return summary, nil
}

func (s *DashboardService) compute(ctx context.Context) (*ports.DashboardSummary, error) {
	employees, err := s.repo.CountEmployees(ctx)
	if err != nil {
		return nil, err
	}
	departments, err := s.repo.CountDepartments(ctx)
	if err != nil {
		return nil, err
	}
	pending, err := s.repo.CountPendingLeaves(ctx)
	if err != nil {
		return nil, err
	}
	present, err := s.repo.CountPresentOn(ctx, time.Now().UTC().Format("2006-01-02"))
	if err != nil {
		return nil, err
	}

	return &ports.DashboardSummary{
		TotalEmployees:   employees,
		TotalDepartments: departments,
		PendingLeaves:    pending,
		PresentToday:     present,
	}, nil
}
