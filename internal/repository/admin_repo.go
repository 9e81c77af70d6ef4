package repository

import (
	"context"

	"campushub/internal/domain"
	"campushub/internal/models"

	"gorm.io/gorm"
)

// GroupCount is one row of a GROUP BY ... COUNT(*) query.
type GroupCount struct {
	Name  string
	Count int64
}

// CategoryCount is one row of the listing-per-category breakdown.
type CategoryCount struct {
	Category domain.ItemCategory
	Count    int64
}

// StatsRepository answers the aggregate queries behind the admin dashboard.
// Every call hits the database; nothing is cached.
type StatsRepository struct {
	db *gorm.DB
}

func NewStatsRepository(db *gorm.DB) *StatsRepository {
	return &StatsRepository{db: db}
}

// CountItems counts listings; an empty status counts all of them.
func (r *StatsRepository) CountItems(ctx context.Context, status domain.ItemStatus) (int64, error) {
	q := r.db.WithContext(ctx).Model(&models.MarketplaceItem{})
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var c int64
	err := q.Count(&c).Error
	return c, err
}

func (r *StatsRepository) CountReports(ctx context.Context, status domain.ReportStatus) (int64, error) {
	q := r.db.WithContext(ctx).Model(&models.Report{})
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var c int64
	err := q.Count(&c).Error
	return c, err
}

// CountUsers counts accounts of role; an empty status counts every status.
func (r *StatsRepository) CountUsers(ctx context.Context, role, status string) (int64, error) {
	q := r.db.WithContext(ctx).Model(&models.User{}).Where("role = ?", role)
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var c int64
	err := q.Count(&c).Error
	return c, err
}

func (r *StatsRepository) CountEvents(ctx context.Context) (int64, error) {
	var c int64
	err := r.db.WithContext(ctx).Model(&models.Event{}).Count(&c).Error
	return c, err
}

// CountReportsForSeller counts reports filed against any listing owned by sellerID.
func (r *StatsRepository) CountReportsForSeller(ctx context.Context, sellerID uint) (int64, error) {
	var c int64
	err := r.db.WithContext(ctx).Model(&models.Report{}).
		Joins("JOIN marketplace_items ON marketplace_items.id = reports.marketplace_item_id").
		Where("marketplace_items.seller_id = ?", sellerID).
		Count(&c).Error
	return c, err
}

func (r *StatsRepository) CountListingsForSeller(ctx context.Context, sellerID uint) (int64, error) {
	var c int64
	err := r.db.WithContext(ctx).Model(&models.MarketplaceItem{}).
		Where("seller_id = ?", sellerID).
		Count(&c).Error
	return c, err
}

// CategoryCounts groups listings by category, largest group first.
func (r *StatsRepository) CategoryCounts(ctx context.Context) ([]CategoryCount, error) {
	var rows []CategoryCount
	err := r.db.WithContext(ctx).Model(&models.MarketplaceItem{}).
		Select("category, COUNT(*) AS count").
		Group("category").
		Order("count DESC").
		Order("category ASC").
		Scan(&rows).Error
	return rows, err
}

// CollegeCounts groups users by the college of their program, largest group first.
// Users without a program are not counted.
func (r *StatsRepository) CollegeCounts(ctx context.Context) ([]GroupCount, error) {
	var rows []GroupCount
	err := r.db.WithContext(ctx).Model(&models.User{}).
		Select("colleges.name AS name, COUNT(*) AS count").
		Joins("JOIN programs ON programs.id = users.program_id").
		Joins("JOIN colleges ON colleges.id = programs.college_id").
		Group("colleges.name").
		Order("count DESC").
		Order("colleges.name ASC").
		Scan(&rows).Error
	return rows, err
}
