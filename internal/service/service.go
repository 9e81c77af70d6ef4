package service

import (
	"context"
	"time"

	"campushub/internal/domain"
	"campushub/internal/dto"
	"campushub/internal/models"

	"go.uber.org/zap"
)

// Publisher receives moderation events after they are persisted. Implementations must not block.
type Publisher interface {
	Publish(event dto.ModerationEvent)
}

// ImageRemover deletes a hosted listing image.
type ImageRemover interface {
	DeleteByURL(ctx context.Context, url string) error
}

func nowUTC() time.Time {
	return time.Now().UTC()
}

func publish(p Publisher, eventType string, id uint, status string, actorID uint) {
	if p == nil {
		return
	}
	p.Publish(dto.ModerationEvent{
		Type:    eventType,
		ID:      id,
		Status:  status,
		ActorID: actorID,
		At:      nowUTC(),
	})
}

// storageFailure logs err once and hides it behind a PersistenceError.
func storageFailure(log *zap.Logger, op, action string, err error, fields ...zap.Field) error {
	fields = append(fields, zap.String("op", op), zap.Error(err))
	log.Error("storage failure", fields...)
	return domain.NewPersistenceError(action, err)
}

func toItemDTO(m *models.MarketplaceItem, liked bool) dto.MarketplaceItem {
	return dto.MarketplaceItem{
		ID:            m.ID,
		Title:         m.Title,
		Description:   m.Description,
		Price:         m.Price,
		Category:      m.Category,
		CategoryName:  m.Category.String(),
		Condition:     m.Condition,
		ConditionName: m.Condition.String(),
		Location:      m.Location,
		LocationName:  domain.CampusLocationName(m.Location),
		ImageURL:      m.ImageURL,
		SellerID:      m.SellerID,
		SellerName:    m.SellerName,
		ContactNumber: m.ContactNumber,
		LikesCount:    m.LikesCount,
		IsLiked:       liked,
		Status:        m.Status,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
		TimeAgo:       domain.FormatRelativeTime(m.CreatedAt),
	}
}

func toReportDTO(r *models.Report) dto.Report {
	out := dto.Report{
		ID:                r.ID,
		MarketplaceItemID: r.MarketplaceItemID,
		ItemTitle:         "Unknown Item",
		ReporterID:        r.ReporterUserID,
		ReporterName:      "Unknown User",
		Reason:            r.Reason,
		Description:       r.Description,
		Status:            r.Status,
		CreatedAt:         r.CreatedAt,
		ResolvedAt:        r.ResolvedAt,
		AdminUserID:       r.ResolvedByUserID,
		AdminNotes:        r.AdminNotes,
	}
	if r.MarketplaceItem != nil && r.MarketplaceItem.Title != "" {
		out.ItemTitle = r.MarketplaceItem.Title
	}
	if r.Reporter != nil {
		out.ReporterName = r.Reporter.DisplayName()
	}
	return out
}

func toUserDTO(u *models.User) dto.User {
	return dto.User{
		ID:            u.ID,
		Username:      u.Username,
		FullName:      u.FullName,
		Email:         u.Email,
		ContactNumber: u.ContactNumber,
		StudentNumber: u.StudentNumber,
		Role:          u.Role,
		Status:        u.Status,
		CreatedAt:     u.CreatedAt,
	}
}
