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

type MarketplaceStore interface {
	Create(ctx context.Context, item *models.MarketplaceItem) error
	GetByID(ctx context.Context, id uint) (*models.MarketplaceItem, error)
	Update(ctx context.Context, item *models.MarketplaceItem) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, f repository.ItemFilter) ([]models.MarketplaceItem, error)
	ToggleLike(ctx context.Context, itemID, userID uint) (bool, int, error)
	IsLiked(ctx context.Context, itemID, userID uint) (bool, error)
	LikedItemIDs(ctx context.Context, userID uint, itemIDs []uint) (map[uint]bool, error)
	Wishlist(ctx context.Context, userID uint) ([]models.MarketplaceItem, error)
}

type ReportCreator interface {
	Create(ctx context.Context, report *models.Report) error
}

// StatusSetter is the moderation entry point used for seller-initiated status changes.
type StatusSetter interface {
	SetItemStatus(ctx context.Context, in dto.ItemStatusUpdate) (*dto.MarketplaceItem, error)
}

// MarketplaceService is the student-facing side of the marketplace.
type MarketplaceService struct {
	items   MarketplaceStore
	reports ReportCreator
	status  StatusSetter
	log     *zap.Logger
}

func NewMarketplaceService(items MarketplaceStore, reports ReportCreator, status StatusSetter, log *zap.Logger) *MarketplaceService {
	return &MarketplaceService{
		items:   items,
		reports: reports,
		status:  status,
		log:     log.Named("marketplace"),
	}
}

func (s *MarketplaceService) CreateItem(ctx context.Context, in dto.CreateMarketplaceItem) (*dto.MarketplaceItem, error) {
	if errs := validation.CreateMarketplaceItem(in); len(errs) > 0 {
		return nil, domain.NewValidationError(errs)
	}
	item := &models.MarketplaceItem{
		Title:         in.Title,
		Description:   in.Description,
		Price:         in.Price,
		Category:      in.Category,
		Condition:     in.Condition,
		Location:      in.Location,
		ImageURL:      in.ImageURL,
		SellerID:      in.SellerID,
		SellerName:    in.SellerName,
		ContactNumber: in.ContactNumber,
		Status:        domain.ItemStatusActive,
		CreatedAt:     nowUTC(),
	}
	if err := s.items.Create(ctx, item); err != nil {
		return nil, storageFailure(s.log, "CreateItem", "creating the marketplace item", err, zap.Uint("seller_id", in.SellerID))
	}
	out := toItemDTO(item, false)
	return &out, nil
}

func (s *MarketplaceService) UpdateItem(ctx context.Context, in dto.UpdateMarketplaceItem) (*dto.MarketplaceItem, error) {
	if errs := validation.UpdateMarketplaceItem(in); len(errs) > 0 {
		return nil, domain.NewValidationError(errs)
	}
	item, err := s.ownedItem(ctx, "UpdateItem", in.ID, in.UserID)
	if err != nil {
		return nil, err
	}

	now := nowUTC()
	item.Title = in.Title
	item.Description = in.Description
	item.Price = in.Price
	item.Category = in.Category
	item.Condition = in.Condition
	item.Location = in.Location
	item.ImageURL = in.ImageURL
	item.ContactNumber = in.ContactNumber
	item.UpdatedAt = &now
	if err := s.items.Update(ctx, item); err != nil {
		return nil, storageFailure(s.log, "UpdateItem", "updating the marketplace item", err, zap.Uint("item_id", in.ID))
	}
	liked, err := s.items.IsLiked(ctx, item.ID, in.UserID)
	if err != nil {
		s.log.Warn("like lookup failed after update", zap.Uint("item_id", item.ID), zap.Error(err))
	}
	out := toItemDTO(item, liked)
	return &out, nil
}

// GetItem returns one listing. Flagged listings are only visible to their seller.
func (s *MarketplaceService) GetItem(ctx context.Context, itemID, userID uint) (*dto.MarketplaceItem, error) {
	if errs := validation.ItemID(itemID); len(errs) > 0 {
		return nil, domain.NewValidationError(errs)
	}
	item, err := s.load(ctx, "GetItem", itemID)
	if err != nil {
		return nil, err
	}
	if item.Status == domain.ItemStatusFlagged && item.SellerID != userID {
		return nil, domain.NewNotFoundError("marketplace item", itemID)
	}
	liked, err := s.items.IsLiked(ctx, itemID, userID)
	if err != nil {
		return nil, storageFailure(s.log, "GetItem", "loading the marketplace item", err, zap.Uint("item_id", itemID))
	}
	out := toItemDTO(item, liked)
	return &out, nil
}

// ListItems returns the public catalogue, newest first. Flagged listings are hidden.
// A zero location lists every campus.
func (s *MarketplaceService) ListItems(ctx context.Context, userID uint, location domain.CampusLocation) ([]dto.MarketplaceItem, error) {
	if location != 0 && !location.Valid() {
		return nil, domain.NewValidationError([]string{"Please select a valid campus location"})
	}
	items, err := s.items.List(ctx, repository.ItemFilter{Location: location, ExcludeStatus: domain.ItemStatusFlagged})
	if err != nil {
		return nil, storageFailure(s.log, "ListItems", "loading marketplace items", err)
	}
	return s.withLikes(ctx, "ListItems", userID, items)
}

// ListBySeller returns every listing of the seller, flagged ones included.
func (s *MarketplaceService) ListBySeller(ctx context.Context, sellerID uint) ([]dto.MarketplaceItem, error) {
	if errs := validation.UserID(sellerID); len(errs) > 0 {
		return nil, domain.NewValidationError(errs)
	}
	items, err := s.items.List(ctx, repository.ItemFilter{SellerID: sellerID})
	if err != nil {
		return nil, storageFailure(s.log, "ListBySeller", "loading marketplace items", err, zap.Uint("seller_id", sellerID))
	}
	return s.withLikes(ctx, "ListBySeller", sellerID, items)
}

// ProfileStats summarises the seller's listings. Earnings are the summed prices of sold items.
func (s *MarketplaceService) ProfileStats(ctx context.Context, sellerID uint) (*dto.ProfileStats, error) {
	if errs := validation.UserID(sellerID); len(errs) > 0 {
		return nil, domain.NewValidationError(errs)
	}
	items, err := s.items.List(ctx, repository.ItemFilter{SellerID: sellerID})
	if err != nil {
		return nil, storageFailure(s.log, "ProfileStats", "loading profile statistics", err, zap.Uint("seller_id", sellerID))
	}
	stats := &dto.ProfileStats{TotalListings: len(items)}
	for _, it := range items {
		switch it.Status {
		case domain.ItemStatusActive:
			stats.ActiveListings++
		case domain.ItemStatusSold:
			stats.ItemsSold++
			stats.TotalEarnings += it.Price
		}
	}
	return stats, nil
}

func (s *MarketplaceService) Wishlist(ctx context.Context, userID uint) ([]dto.MarketplaceItem, error) {
	if errs := validation.UserID(userID); len(errs) > 0 {
		return nil, domain.NewValidationError(errs)
	}
	items, err := s.items.Wishlist(ctx, userID)
	if err != nil {
		return nil, storageFailure(s.log, "Wishlist", "loading the wishlist", err, zap.Uint("user_id", userID))
	}
	out := make([]dto.MarketplaceItem, 0, len(items))
	for i := range items {
		out = append(out, toItemDTO(&items[i], true))
	}
	return out, nil
}

func (s *MarketplaceService) MarkSold(ctx context.Context, in dto.ItemStatusOperation) (*dto.MarketplaceItem, error) {
	return s.sellerStatus(ctx, "MarkSold", in, domain.ItemStatusSold)
}

func (s *MarketplaceService) MarkAvailable(ctx context.Context, in dto.ItemStatusOperation) (*dto.MarketplaceItem, error) {
	return s.sellerStatus(ctx, "MarkAvailable", in, domain.ItemStatusActive)
}

func (s *MarketplaceService) sellerStatus(ctx context.Context, op string, in dto.ItemStatusOperation, status domain.ItemStatus) (*dto.MarketplaceItem, error) {
	if errs := validation.ItemStatusOperation(in); len(errs) > 0 {
		return nil, domain.NewValidationError(errs)
	}
	item, err := s.ownedItem(ctx, op, in.ItemID, in.UserID)
	if err != nil {
		return nil, err
	}
	if item.Status == domain.ItemStatusFlagged {
		return nil, domain.NewForbiddenError("flagged listings can only be changed by an administrator")
	}
	return s.status.SetItemStatus(ctx, dto.ItemStatusUpdate{ItemID: in.ItemID, Status: status})
}

// DeleteOwnItem removes a listing owned by the caller.
func (s *MarketplaceService) DeleteOwnItem(ctx context.Context, in dto.ItemStatusOperation) error {
	if errs := validation.ItemStatusOperation(in); len(errs) > 0 {
		return domain.NewValidationError(errs)
	}
	if _, err := s.ownedItem(ctx, "DeleteOwnItem", in.ItemID, in.UserID); err != nil {
		return err
	}
	if err := s.items.Delete(ctx, in.ItemID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.NewNotFoundError("marketplace item", in.ItemID)
		}
		return storageFailure(s.log, "DeleteOwnItem", "deleting the marketplace item", err, zap.Uint("item_id", in.ItemID))
	}
	return nil
}

func (s *MarketplaceService) ToggleLike(ctx context.Context, in dto.ToggleLike) (*dto.ToggleLikeResult, error) {
	if errs := validation.ToggleLike(in); len(errs) > 0 {
		return nil, domain.NewValidationError(errs)
	}
	liked, count, err := s.items.ToggleLike(ctx, in.ItemID, in.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("marketplace item", in.ItemID)
		}
		return nil, storageFailure(s.log, "ToggleLike", "updating the like", err, zap.Uint("item_id", in.ItemID), zap.Uint("user_id", in.UserID))
	}
	return &dto.ToggleLikeResult{Liked: liked, LikesCount: count}, nil
}

// ReportItem files a Pending report against an existing listing.
func (s *MarketplaceService) ReportItem(ctx context.Context, in dto.CreateReport) (*dto.Report, error) {
	if errs := validation.CreateReport(in); len(errs) > 0 {
		return nil, domain.NewValidationError(errs)
	}
	item, err := s.load(ctx, "ReportItem", in.MarketplaceItemID)
	if err != nil {
		return nil, err
	}
	report := &models.Report{
		MarketplaceItemID: in.MarketplaceItemID,
		ReporterUserID:    in.ReporterID,
		Reason:            in.Reason,
		Description:       in.Description,
		Status:            domain.ReportStatusPending,
		CreatedAt:         nowUTC(),
	}
	if err := s.reports.Create(ctx, report); err != nil {
		return nil, storageFailure(s.log, "ReportItem", "creating the report", err, zap.Uint("item_id", in.MarketplaceItemID))
	}
	s.log.Info("item reported", zap.Uint("item_id", item.ID), zap.Uint("report_id", report.ID))
	report.MarketplaceItem = item
	out := toReportDTO(report)
	return &out, nil
}

func (s *MarketplaceService) load(ctx context.Context, op string, itemID uint) (*models.MarketplaceItem, error) {
	item, err := s.items.GetByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("marketplace item", itemID)
		}
		return nil, storageFailure(s.log, op, "loading the marketplace item", err, zap.Uint("item_id", itemID))
	}
	return item, nil
}

func (s *MarketplaceService) ownedItem(ctx context.Context, op string, itemID, userID uint) (*models.MarketplaceItem, error) {
	item, err := s.load(ctx, op, itemID)
	if err != nil {
		return nil, err
	}
	if item.SellerID != userID {
		return nil, domain.NewForbiddenError("you can only change your own listings")
	}
	return item, nil
}

func (s *MarketplaceService) withLikes(ctx context.Context, op string, userID uint, items []models.MarketplaceItem) ([]dto.MarketplaceItem, error) {
	liked := map[uint]bool{}
	if userID != 0 && len(items) > 0 {
		ids := make([]uint, len(items))
		for i := range items {
			ids[i] = items[i].ID
		}
		var err error
		if liked, err = s.items.LikedItemIDs(ctx, userID, ids); err != nil {
			return nil, storageFailure(s.log, op, "loading likes", err, zap.Uint("user_id", userID))
		}
	}
	out := make([]dto.MarketplaceItem, 0, len(items))
	for i := range items {
		out = append(out, toItemDTO(&items[i], liked[items[i].ID]))
	}
	return out, nil
}
