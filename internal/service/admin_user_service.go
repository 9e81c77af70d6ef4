package service

import (
	"context"
	"errors"

	"campushub/internal/domain"
	"campushub/internal/dto"
	"campushub/internal/models"
	"campushub/internal/validation"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type UserStore interface {
	GetByID(ctx context.Context, id uint) (*models.User, error)
	UpdateStatus(ctx context.Context, u *models.User) error
	ListStudents(ctx context.Context) ([]models.User, error)
}

type SellerCounter interface {
	CountReportsForSeller(ctx context.Context, sellerID uint) (int64, error)
	CountListingsForSeller(ctx context.Context, sellerID uint) (int64, error)
}

// AdminUserService lists and bans student accounts.
type AdminUserService struct {
	users  UserStore
	counts SellerCounter
	feed   Publisher
	log    *zap.Logger
}

func NewAdminUserService(users UserStore, counts SellerCounter, feed Publisher, log *zap.Logger) *AdminUserService {
	return &AdminUserService{users: users, counts: counts, feed: feed, log: log.Named("admin_users")}
}

// ListStudents returns every student with the number of listings they own and the number of
// reports filed against those listings.
func (s *AdminUserService) ListStudents(ctx context.Context) ([]dto.AdminUser, error) {
	students, err := s.users.ListStudents(ctx)
	if err != nil {
		return nil, storageFailure(s.log, "ListStudents", "loading students", err)
	}
	out := make([]dto.AdminUser, 0, len(students))
	for i := range students {
		u := &students[i]
		reports, err := s.counts.CountReportsForSeller(ctx, u.ID)
		if err != nil {
			return nil, storageFailure(s.log, "ListStudents", "counting reports", err, zap.Uint("user_id", u.ID))
		}
		listings, err := s.counts.CountListingsForSeller(ctx, u.ID)
		if err != nil {
			return nil, storageFailure(s.log, "ListStudents", "counting listings", err, zap.Uint("user_id", u.ID))
		}
		out = append(out, dto.AdminUser{
			User:          toUserDTO(u),
			ReportsCount:  reports,
			ListingsCount: listings,
			JoinDate:      u.CreatedAt.Format("Jan 02, 2006"),
		})
	}
	return out, nil
}

func (s *AdminUserService) BanUser(ctx context.Context, userID, adminID uint) (*dto.User, error) {
	return s.setStatus(ctx, "BanUser", userID, adminID, domain.UserStatusBanned, domain.EventUserBanned)
}

func (s *AdminUserService) UnbanUser(ctx context.Context, userID, adminID uint) (*dto.User, error) {
	return s.setStatus(ctx, "UnbanUser", userID, adminID, domain.UserStatusActive, domain.EventUserUnbanned)
}

func (s *AdminUserService) setStatus(ctx context.Context, op string, userID, adminID uint, status, event string) (*dto.User, error) {
	if errs := validation.UserID(userID); len(errs) > 0 {
		return nil, domain.NewValidationError(errs)
	}
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("user", userID)
		}
		return nil, storageFailure(s.log, op, "loading the user", err, zap.Uint("user_id", userID))
	}
	if u.IsAdmin() {
		return nil, domain.NewForbiddenError("administrator accounts cannot be banned")
	}

	u.Status = status
	if err := s.users.UpdateStatus(ctx, u); err != nil {
		return nil, storageFailure(s.log, op, "updating the user status", err, zap.Uint("user_id", userID))
	}
	s.log.Info("user status changed", zap.Uint("user_id", userID), zap.String("status", status), zap.Uint("admin_user_id", adminID))
	publish(s.feed, event, userID, status, adminID)
	out := toUserDTO(u)
	return &out, nil
}
