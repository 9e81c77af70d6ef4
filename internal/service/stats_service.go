package service

import (
	"context"

	"campushub/internal/domain"
	"campushub/internal/dto"
	"campushub/internal/repository"

	"go.uber.org/zap"
)

type StatsStore interface {
	CountItems(ctx context.Context, status domain.ItemStatus) (int64, error)
	CountReports(ctx context.Context, status domain.ReportStatus) (int64, error)
	CountUsers(ctx context.Context, role, status string) (int64, error)
	CountEvents(ctx context.Context) (int64, error)
	CategoryCounts(ctx context.Context) ([]repository.CategoryCount, error)
	CollegeCounts(ctx context.Context) ([]repository.GroupCount, error)
}

// StatsService computes the admin counters fresh on every call. A single failing count fails
// the whole call.
type StatsService struct {
	store StatsStore
	log   *zap.Logger
}

func NewStatsService(store StatsStore, log *zap.Logger) *StatsService {
	return &StatsService{store: store, log: log.Named("stats")}
}

// counter runs count queries in order and keeps the first error.
type counter struct {
	err error
}

func (c *counter) count(fn func() (int64, error)) int64 {
	if c.err != nil {
		return 0
	}
	n, err := fn()
	if err != nil {
		c.err = err
		return 0
	}
	return n
}

func (s *StatsService) MarketplaceStats(ctx context.Context) (*dto.MarketplaceStats, error) {
	var c counter
	out := &dto.MarketplaceStats{
		TotalListings:   c.count(func() (int64, error) { return s.store.CountItems(ctx, "") }),
		ActiveListings:  c.count(func() (int64, error) { return s.store.CountItems(ctx, domain.ItemStatusActive) }),
		SoldListings:    c.count(func() (int64, error) { return s.store.CountItems(ctx, domain.ItemStatusSold) }),
		FlaggedListings: c.count(func() (int64, error) { return s.store.CountItems(ctx, domain.ItemStatusFlagged) }),
	}
	if c.err != nil {
		return nil, s.fail("MarketplaceStats", "computing marketplace statistics", c.err)
	}
	return out, nil
}

func (s *StatsService) ReportStats(ctx context.Context) (*dto.ReportStats, error) {
	var c counter
	out := &dto.ReportStats{
		TotalReports:    c.count(func() (int64, error) { return s.store.CountReports(ctx, "") }),
		PendingReports:  c.count(func() (int64, error) { return s.store.CountReports(ctx, domain.ReportStatusPending) }),
		ResolvedReports: c.count(func() (int64, error) { return s.store.CountReports(ctx, domain.ReportStatusResolved) }),
	}
	if c.err != nil {
		return nil, s.fail("ReportStats", "computing report statistics", c.err)
	}
	return out, nil
}

// UserStats counts student accounts only.
func (s *StatsService) UserStats(ctx context.Context) (*dto.UserStats, error) {
	var c counter
	out := &dto.UserStats{
		TotalUsers:  c.count(func() (int64, error) { return s.store.CountUsers(ctx, domain.RoleStudent, "") }),
		ActiveUsers: c.count(func() (int64, error) { return s.store.CountUsers(ctx, domain.RoleStudent, domain.UserStatusActive) }),
		BannedUsers: c.count(func() (int64, error) { return s.store.CountUsers(ctx, domain.RoleStudent, domain.UserStatusBanned) }),
	}
	if c.err != nil {
		return nil, s.fail("UserStats", "computing user statistics", c.err)
	}
	return out, nil
}

// CategoryDistribution breaks listings down by category, largest first.
func (s *StatsService) CategoryDistribution(ctx context.Context) ([]dto.CategoryDistribution, error) {
	rows, err := s.store.CategoryCounts(ctx)
	if err != nil {
		return nil, s.fail("CategoryDistribution", "computing the category distribution", err)
	}
	var total int64
	for _, r := range rows {
		total += r.Count
	}
	out := make([]dto.CategoryDistribution, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.CategoryDistribution{
			Category:   r.Category.String(),
			Count:      r.Count,
			Percentage: domain.Percentage(r.Count, total),
		})
	}
	return out, nil
}

// CollegeDistribution breaks users down by the college of their program, largest first.
func (s *StatsService) CollegeDistribution(ctx context.Context) ([]dto.CollegeDistribution, error) {
	rows, err := s.store.CollegeCounts(ctx)
	if err != nil {
		return nil, s.fail("CollegeDistribution", "computing the college distribution", err)
	}
	var total int64
	for _, r := range rows {
		total += r.Count
	}
	out := make([]dto.CollegeDistribution, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.CollegeDistribution{
			College:    r.Name,
			Count:      r.Count,
			Percentage: domain.Percentage(r.Count, total),
		})
	}
	return out, nil
}

func (s *StatsService) Dashboard(ctx context.Context) (*dto.DashboardStats, error) {
	var c counter
	out := &dto.DashboardStats{
		TotalStudents:   c.count(func() (int64, error) { return s.store.CountUsers(ctx, domain.RoleStudent, "") }),
		PublishedEvents: c.count(func() (int64, error) { return s.store.CountEvents(ctx) }),
		ActiveListings:  c.count(func() (int64, error) { return s.store.CountItems(ctx, domain.ItemStatusActive) }),
		PendingReports:  c.count(func() (int64, error) { return s.store.CountReports(ctx, domain.ReportStatusPending) }),
	}
	if c.err != nil {
		return nil, s.fail("Dashboard", "loading dashboard statistics", c.err)
	}

	var err error
	if out.CategoryDistribution, err = s.CategoryDistribution(ctx); err != nil {
		return nil, err
	}
	if out.CollegeDistribution, err = s.CollegeDistribution(ctx); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *StatsService) fail(op, action string, err error) error {
	return storageFailure(s.log, op, action, err)
}
