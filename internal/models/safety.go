package models

import (
	"time"

	"campushub/internal/domain"
)

type Report struct {
	ID                uint                `gorm:"primaryKey" json:"id"`
	MarketplaceItemID uint                `gorm:"not null;index" json:"marketplace_item_id"`
	ReporterUserID    uint                `gorm:"not null;index" json:"reporter_user_id"`
	Reason            string              `gorm:"size:500;not null" json:"reason"`
	Description       *string             `gorm:"size:1000" json:"description"`
	Status            domain.ReportStatus `gorm:"size:20;not null;default:'Pending';index" json:"status"`
	CreatedAt         time.Time           `json:"created_at"`
	ResolvedAt        *time.Time          `json:"resolved_at"`
	ResolvedByUserID  *uint               `gorm:"index" json:"resolved_by_user_id"`
	AdminNotes        *string             `gorm:"size:500" json:"admin_notes"`

	MarketplaceItem *MarketplaceItem `gorm:"foreignKey:MarketplaceItemID;constraint:OnDelete:CASCADE" json:"-"`
	Reporter        *User            `gorm:"foreignKey:ReporterUserID" json:"-"`
}

func (Report) TableName() string {
	return "reports"
}

// ResolutionColumns are the only columns written after a report is created.
var ResolutionColumns = []string{"status", "resolved_at", "resolved_by_user_id", "admin_notes"}

type AuditLog struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     *uint     `gorm:"index" json:"user_id"`
	Action     string    `gorm:"size:100;not null;index" json:"action"`
	Resource   string    `gorm:"size:100;index" json:"resource"`
	ResourceID string    `gorm:"size:100;index" json:"resource_id"`
	IP         string    `gorm:"size:45" json:"ip"`
	UserAgent  string    `gorm:"size:512" json:"user_agent"`
	Metadata   string    `gorm:"type:text" json:"metadata"`
	CreatedAt  time.Time `json:"created_at"`
}

func (AuditLog) TableName() string {
	return "audit_logs"
}
