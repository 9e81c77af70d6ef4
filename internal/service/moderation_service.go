package service

import (
	"context"
	"errors"

	"campushub/internal/domain"
	"campushub/internal/dto"
	"campushub/internal/models"
	"campushub/internal/repository"
	"campushub/internal/validation"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type ModerationItemStore interface {
	GetByID(ctx context.Context, id uint) (*models.MarketplaceItem, error)
	UpdateStatus(ctx context.Context, item *models.MarketplaceItem) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, f repository.ItemFilter) ([]models.MarketplaceItem, error)
}

type ModerationReportStore interface {
	GetByID(ctx context.Context, id uint) (*models.Report, error)
	SaveResolution(ctx context.Context, report *models.Report) error
	List(ctx context.Context, status domain.ReportStatus) ([]models.Report, error)
	ListByItem(ctx context.Context, itemID uint) ([]models.Report, error)
}

// ModerationService owns item status changes and report resolution.
// Status changes are unconditional overwrites: any status may follow any other.
type ModerationService struct {
	items   ModerationItemStore
	reports ModerationReportStore
	images  ImageRemover
	feed    Publisher
	log     *zap.Logger
}

// NewModerationService wires the moderation core. images and feed may be nil.
func NewModerationService(items ModerationItemStore, reports ModerationReportStore, images ImageRemover, feed Publisher, log *zap.Logger) *ModerationService {
	return &ModerationService{
		items:   items,
		reports: reports,
		images:  images,
		feed:    feed,
		log:     log.Named("moderation"),
	}
}

func (s *ModerationService) SetItemStatus(ctx context.Context, in dto.ItemStatusUpdate) (*dto.MarketplaceItem, error) {
	if errs := validation.ItemStatusUpdate(in); len(errs) > 0 {
		return nil, domain.NewValidationError(errs)
	}
	return s.setStatus(ctx, "SetItemStatus", in.ItemID, in.Status, 0)
}

// FlagItemFromReport marks the item Flagged. Reports are left untouched; resolving them is a
// separate call.
func (s *ModerationService) FlagItemFromReport(ctx context.Context, in dto.FlagItem) (*dto.MarketplaceItem, error) {
	if errs := validation.FlagItem(in); len(errs) > 0 {
		return nil, domain.NewValidationError(errs)
	}
	return s.setStatus(ctx, "FlagItemFromReport", in.ItemID, domain.ItemStatusFlagged, in.AdminUserID)
}

func (s *ModerationService) setStatus(ctx context.Context, op string, itemID uint, status domain.ItemStatus, actorID uint) (*dto.MarketplaceItem, error) {
	item, err := s.items.GetByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("marketplace item", itemID)
		}
		return nil, storageFailure(s.log, op, "loading the marketplace item", err, zap.Uint("item_id", itemID))
	}

	now := nowUTC()
	item.Status = status
	item.UpdatedAt = &now
	if err := s.items.UpdateStatus(ctx, item); err != nil {
		return nil, storageFailure(s.log, op, "updating the item status", err, zap.Uint("item_id", itemID))
	}

	s.log.Info("item status changed",
		zap.String("op", op),
		zap.Uint("item_id", itemID),
		zap.String("status", string(status)),
	)
	publish(s.feed, domain.EventItemStatusChanged, itemID, string(status), actorID)
	out := toItemDTO(item, false)
	return &out, nil
}

// ResolveReport records the admin decision on a report. A second call overwrites the first.
// The admin id is not checked against the user table.
func (s *ModerationService) ResolveReport(ctx context.Context, in dto.ReportResolution) (*dto.Report, error) {
	if errs := validation.ReportResolution(in); len(errs) > 0 {
		return nil, domain.NewValidationError(errs)
	}

	report, err := s.reports.GetByID(ctx, in.ReportID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("report", in.ReportID)
		}
		return nil, storageFailure(s.log, "ResolveReport", "loading the report", err, zap.Uint("report_id", in.ReportID))
	}

	now := nowUTC()
	adminID := in.AdminUserID
	report.Status = in.Status
	report.ResolvedAt = &now
	report.ResolvedByUserID = &adminID
	report.AdminNotes = in.AdminNotes
	if err := s.reports.SaveResolution(ctx, report); err != nil {
		return nil, storageFailure(s.log, "ResolveReport", "updating the report status", err, zap.Uint("report_id", in.ReportID))
	}

	s.log.Info("report resolved",
		zap.Uint("report_id", report.ID),
		zap.String("status", string(report.Status)),
		zap.Uint("admin_user_id", adminID),
	)
	publish(s.feed, domain.EventReportResolved, report.ID, string(report.Status), adminID)
	out := toReportDTO(report)
	return &out, nil
}

// DeleteItem hard-deletes a listing with its likes and reports, then drops the hosted image.
func (s *ModerationService) DeleteItem(ctx context.Context, itemID, adminID uint) error {
	if errs := validation.ItemID(itemID); len(errs) > 0 {
		return domain.NewValidationError(errs)
	}
	item, err := s.items.GetByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.NewNotFoundError("marketplace item", itemID)
		}
		return storageFailure(s.log, "DeleteItem", "loading the marketplace item", err, zap.Uint("item_id", itemID))
	}
	if err := s.items.Delete(ctx, itemID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.NewNotFoundError("marketplace item", itemID)
		}
		return storageFailure(s.log, "DeleteItem", "deleting the marketplace item", err, zap.Uint("item_id", itemID))
	}

	if s.images != nil && item.ImageURL != "" {
		if err := s.images.DeleteByURL(ctx, item.ImageURL); err != nil {
			s.log.Warn("listing image not removed", zap.Uint("item_id", itemID), zap.Error(err))
		}
	}
	publish(s.feed, domain.EventItemDeleted, itemID, "", adminID)
	return nil
}

// ListItems returns every listing, flagged ones included, newest first.
func (s *ModerationService) ListItems(ctx context.Context, status domain.ItemStatus) ([]dto.MarketplaceItem, error) {
	if status != "" && !status.Valid() {
		return nil, domain.NewValidationError([]string{"Invalid item status"})
	}
	items, err := s.items.List(ctx, repository.ItemFilter{Status: status})
	if err != nil {
		return nil, storageFailure(s.log, "ListItems", "loading marketplace items", err)
	}
	out := make([]dto.MarketplaceItem, 0, len(items))
	for i := range items {
		out = append(out, toItemDTO(&items[i], false))
	}
	return out, nil
}

func (s *ModerationService) ListReports(ctx context.Context, status domain.ReportStatus) ([]dto.Report, error) {
	if status != "" && !status.Valid() {
		return nil, domain.NewValidationError([]string{"Invalid report status"})
	}
	reports, err := s.reports.List(ctx, status)
	if err != nil {
		return nil, storageFailure(s.log, "ListReports", "loading reports", err)
	}
	return toReportDTOs(reports), nil
}

func (s *ModerationService) ReportsForItem(ctx context.Context, itemID uint) ([]dto.Report, error) {
	if errs := validation.ItemID(itemID); len(errs) > 0 {
		return nil, domain.NewValidationError(errs)
	}
	reports, err := s.reports.ListByItem(ctx, itemID)
	if err != nil {
		return nil, storageFailure(s.log, "ReportsForItem", "loading reports", err, zap.Uint("item_id", itemID))
	}
	return toReportDTOs(reports), nil
}

func toReportDTOs(reports []models.Report) []dto.Report {
	out := make([]dto.Report, 0, len(reports))
	for i := range reports {
		out = append(out, toReportDTO(&reports[i]))
	}
	return out
}
