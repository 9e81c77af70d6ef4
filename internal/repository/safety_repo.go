package repository

import (
	"context"

	"campushub/internal/domain"
	"campushub/internal/models"

	"gorm.io/gorm"
)

type ReportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

func (r *ReportRepository) Create(ctx context.Context, report *models.Report) error {
	return r.db.WithContext(ctx).Create(report).Error
}

func (r *ReportRepository) GetByID(ctx context.Context, id uint) (*models.Report, error) {
	var report models.Report
	err := r.db.WithContext(ctx).First(&report, id).Error
	if err != nil {
		return nil, err
	}
	return &report, nil
}

// SaveResolution persists the resolution fields and nothing else.
func (r *ReportRepository) SaveResolution(ctx context.Context, report *models.Report) error {
	return r.db.WithContext(ctx).Model(report).Select(models.ResolutionColumns).Updates(report).Error
}

// List returns reports newest first with the reported item and reporter loaded.
// An empty status returns every report.
func (r *ReportRepository) List(ctx context.Context, status domain.ReportStatus) ([]models.Report, error) {
	q := r.db.WithContext(ctx).Preload("MarketplaceItem").Preload("Reporter")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var list []models.Report
	err := q.Order("created_at DESC").Order("id DESC").Find(&list).Error
	return list, err
}

func (r *ReportRepository) ListByItem(ctx context.Context, itemID uint) ([]models.Report, error) {
	var list []models.Report
	err := r.db.WithContext(ctx).
		Preload("MarketplaceItem").Preload("Reporter").
		Where("marketplace_item_id = ?", itemID).
		Order("created_at DESC").
		Find(&list).Error
	return list, err
}

type AuditLogRepository struct {
	db *gorm.DB
}

func NewAuditLogRepository(db *gorm.DB) *AuditLogRepository {
	return &AuditLogRepository{db: db}
}

func (r *AuditLogRepository) Create(ctx context.Context, log *models.AuditLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}

func (r *AuditLogRepository) ListByResource(ctx context.Context, resource, resourceID string) ([]models.AuditLog, error) {
	var list []models.AuditLog
	err := r.db.WithContext(ctx).
		Where("resource = ? AND resource_id = ?", resource, resourceID).
		Order("id ASC").
		Find(&list).Error
	return list, err
}
