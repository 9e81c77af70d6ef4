package repository

import (
	"context"
	"errors"

	"campushub/internal/domain"
	"campushub/internal/models"

	"gorm.io/gorm"
)

// editableColumns are the listing fields a seller may change after creation.
var editableColumns = []string{
	"title", "description", "price", "category", "condition",
	"location", "image_url", "contact_number", "updated_at",
}

// ItemFilter narrows ListItems. Zero values mean no filter.
type ItemFilter struct {
	Location      domain.CampusLocation
	Status        domain.ItemStatus
	ExcludeStatus domain.ItemStatus
	SellerID      uint
}

type MarketplaceRepository struct {
	db *gorm.DB
}

func NewMarketplaceRepository(db *gorm.DB) *MarketplaceRepository {
	return &MarketplaceRepository{db: db}
}

func (r *MarketplaceRepository) Create(ctx context.Context, item *models.MarketplaceItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *MarketplaceRepository) GetByID(ctx context.Context, id uint) (*models.MarketplaceItem, error) {
	var item models.MarketplaceItem
	err := r.db.WithContext(ctx).First(&item, id).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// Update writes the seller-editable columns of item.
func (r *MarketplaceRepository) Update(ctx context.Context, item *models.MarketplaceItem) error {
	return r.db.WithContext(ctx).Model(item).Select(editableColumns).Updates(item).Error
}

// UpdateStatus writes only status and updated_at.
func (r *MarketplaceRepository) UpdateStatus(ctx context.Context, item *models.MarketplaceItem) error {
	return r.db.WithContext(ctx).Model(item).Select("status", "updated_at").Updates(item).Error
}

// Delete removes the item together with its likes and reports.
func (r *MarketplaceRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("marketplace_item_id = ?", id).Delete(&models.MarketplaceLike{}).Error; err != nil {
			return err
		}
		if err := tx.Where("marketplace_item_id = ?", id).Delete(&models.Report{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.MarketplaceItem{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// List returns items newest first.
func (r *MarketplaceRepository) List(ctx context.Context, f ItemFilter) ([]models.MarketplaceItem, error) {
	q := r.db.WithContext(ctx).Model(&models.MarketplaceItem{})
	if f.Location != 0 {
		q = q.Where("location = ?", f.Location)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.ExcludeStatus != "" {
		q = q.Where("status <> ?", f.ExcludeStatus)
	}
	if f.SellerID != 0 {
		q = q.Where("seller_id = ?", f.SellerID)
	}
	var list []models.MarketplaceItem
	err := q.Order("created_at DESC").Order("id DESC").Find(&list).Error
	return list, err
}

// ToggleLike adds the (item, user) like when absent and removes it otherwise, keeping
// likes_count in step. The count never drops below zero.
func (r *MarketplaceRepository) ToggleLike(ctx context.Context, itemID, userID uint) (liked bool, count int, err error) {
	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var item models.MarketplaceItem
		if err := tx.Select("id", "likes_count").First(&item, itemID).Error; err != nil {
			return err
		}

		var like models.MarketplaceLike
		findErr := tx.Where("marketplace_item_id = ? AND user_id = ?", itemID, userID).First(&like).Error
		switch {
		case errors.Is(findErr, gorm.ErrRecordNotFound):
			if err := tx.Create(&models.MarketplaceLike{MarketplaceItemID: itemID, UserID: userID}).Error; err != nil {
				return err
			}
			liked = true
			count = item.LikesCount + 1
		case findErr != nil:
			return findErr
		default:
			if err := tx.Delete(&like).Error; err != nil {
				return err
			}
			liked = false
			count = max(item.LikesCount-1, 0)
		}
		return tx.Model(&models.MarketplaceItem{}).Where("id = ?", itemID).UpdateColumn("likes_count", count).Error
	})
	return liked, count, err
}

func (r *MarketplaceRepository) IsLiked(ctx context.Context, itemID, userID uint) (bool, error) {
	var c int64
	err := r.db.WithContext(ctx).Model(&models.MarketplaceLike{}).
		Where("marketplace_item_id = ? AND user_id = ?", itemID, userID).
		Count(&c).Error
	return c > 0, err
}

// LikedItemIDs returns the subset of itemIDs the user has liked.
func (r *MarketplaceRepository) LikedItemIDs(ctx context.Context, userID uint, itemIDs []uint) (map[uint]bool, error) {
	liked := make(map[uint]bool)
	if len(itemIDs) == 0 {
		return liked, nil
	}
	var ids []uint
	err := r.db.WithContext(ctx).Model(&models.MarketplaceLike{}).
		Where("user_id = ? AND marketplace_item_id IN ?", userID, itemIDs).
		Pluck("marketplace_item_id", &ids).Error
	if err != nil {
		return nil, err
	}
	for _, id := range ids {
		liked[id] = true
	}
	return liked, nil
}

// Wishlist returns the items a user has liked, newest listing first.
func (r *MarketplaceRepository) Wishlist(ctx context.Context, userID uint) ([]models.MarketplaceItem, error) {
	var list []models.MarketplaceItem
	err := r.db.WithContext(ctx).
		Joins("JOIN marketplace_likes ON marketplace_likes.marketplace_item_id = marketplace_items.id").
		Where("marketplace_likes.user_id = ?", userID).
		Order("marketplace_items.created_at DESC").
		Find(&list).Error
	return list, err
}
