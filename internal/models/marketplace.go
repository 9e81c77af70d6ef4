package models

import (
	"time"

	"campushub/internal/domain"
)

type MarketplaceItem struct {
	ID            uint                  `gorm:"primaryKey" json:"id"`
	Title         string                `gorm:"size:100;not null" json:"title"`
	Description   string                `gorm:"size:1000;not null" json:"description"`
	Price         float64               `gorm:"type:decimal(10,2);not null" json:"price"`
	Category      domain.ItemCategory   `gorm:"not null;index" json:"category"`
	Condition     domain.ItemCondition  `gorm:"not null" json:"condition"`
	Location      domain.CampusLocation `gorm:"not null;index" json:"location"`
	ImageURL      string                `gorm:"size:512" json:"image_url"`
	SellerID      uint                  `gorm:"not null;index" json:"seller_id"`
	SellerName    string                `gorm:"size:100" json:"seller_name"`
	ContactNumber string                `gorm:"size:20" json:"contact_number"`
	LikesCount    int                   `gorm:"not null;default:0" json:"likes_count"`
	Status        domain.ItemStatus     `gorm:"size:20;not null;default:'Active';index" json:"status"`
	CreatedAt     time.Time             `json:"created_at"`
	UpdatedAt     *time.Time            `gorm:"autoUpdateTime:false" json:"updated_at"` // set by the service, nil until first update
}

func (MarketplaceItem) TableName() string {
	return "marketplace_items"
}

type MarketplaceLike struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	MarketplaceItemID uint      `gorm:"not null;uniqueIndex:idx_like_item_user" json:"marketplace_item_id"`
	UserID            uint      `gorm:"not null;uniqueIndex:idx_like_item_user;index" json:"user_id"`
	CreatedAt         time.Time `json:"created_at"`

	MarketplaceItem *MarketplaceItem `gorm:"foreignKey:MarketplaceItemID;constraint:OnDelete:CASCADE" json:"-"`
}

func (MarketplaceLike) TableName() string {
	return "marketplace_likes"
}
