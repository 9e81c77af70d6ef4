package service

import (
	"context"
	"errors"

	"campushub/config"
	"campushub/internal/auth"
	"campushub/internal/domain"
	"campushub/internal/dto"
	"campushub/internal/models"
	"campushub/internal/validation"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AccountStore interface {
	Create(ctx context.Context, u *models.User) error
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	UsernameTaken(ctx context.Context, username string) (bool, error)
	UpdateProfile(ctx context.Context, u *models.User) error
}

type AuthService struct {
	cfg   *config.JWTConfig
	users AccountStore
	log   *zap.Logger
}

func NewAuthService(cfg *config.JWTConfig, users AccountStore, log *zap.Logger) *AuthService {
	return &AuthService{cfg: cfg, users: users, log: log.Named("auth")}
}

// Register creates an active student account.
func (s *AuthService) Register(ctx context.Context, in dto.CreateUser) (*dto.User, error) {
	if errs := validation.CreateUser(in); len(errs) > 0 {
		return nil, domain.NewValidationError(errs)
	}
	taken, err := s.users.UsernameTaken(ctx, in.Username)
	if err != nil {
		return nil, storageFailure(s.log, "Register", "checking the username", err)
	}
	if taken {
		return nil, domain.NewConflictError("Username is already taken")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	u := &models.User{
		Username:      in.Username,
		FullName:      in.FullName,
		Email:         in.Email,
		ContactNumber: in.ContactNumber,
		StudentNumber: in.StudentNumber,
		PasswordHash:  string(hash),
		Role:          domain.RoleStudent,
		Status:        domain.UserStatusActive,
		ProgramID:     in.ProgramID,
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, storageFailure(s.log, "Register", "creating the account", err)
	}
	s.log.Info("account registered", zap.Uint("user_id", u.ID))
	out := toUserDTO(u)
	return &out, nil
}

// Login checks the password and issues an access token. Banned accounts are refused.
func (s *AuthService) Login(ctx context.Context, in dto.Login) (*dto.LoginResult, error) {
	if errs := validation.Login(in); len(errs) > 0 {
		return nil, domain.NewValidationError(errs)
	}
	u, err := s.users.GetByUsername(ctx, in.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewUnauthorizedError()
		}
		return nil, storageFailure(s.log, "Login", "loading the account", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.NewUnauthorizedError()
	}
	if u.IsBanned() {
		return nil, domain.NewForbiddenError("this account has been banned")
	}

	token, err := auth.GenerateAccessToken(s.cfg, u.ID, u.Username, u.Role)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResult{User: toUserDTO(u), AccessToken: token}, nil
}

func (s *AuthService) Me(ctx context.Context, userID uint) (*dto.User, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("user", userID)
		}
		return nil, storageFailure(s.log, "Me", "loading the account", err, zap.Uint("user_id", userID))
	}
	out := toUserDTO(u)
	return &out, nil
}

// UpdateProfile rewrites the caller's own contact details. Username, role and status stay as they are.
func (s *AuthService) UpdateProfile(ctx context.Context, in dto.UpdateProfile) (*dto.User, error) {
	if errs := validation.UpdateProfile(in); len(errs) > 0 {
		return nil, domain.NewValidationError(errs)
	}
	u, err := s.users.GetByID(ctx, in.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("user", in.UserID)
		}
		return nil, storageFailure(s.log, "UpdateProfile", "loading the account", err, zap.Uint("user_id", in.UserID))
	}
	u.FullName = in.FullName
	u.StudentNumber = in.StudentNumber
	u.Email = in.Email
	u.ContactNumber = in.ContactNumber
	u.UpdatedAt = nowUTC()
	if err := s.users.UpdateProfile(ctx, u); err != nil {
		return nil, storageFailure(s.log, "UpdateProfile", "updating the profile", err, zap.Uint("user_id", in.UserID))
	}
	out := toUserDTO(u)
	return &out, nil
}

// SellerName resolves the display name stamped on new listings.
func (s *AuthService) SellerName(ctx context.Context, userID uint) (string, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", domain.NewNotFoundError("user", userID)
		}
		return "", storageFailure(s.log, "SellerName", "loading the account", err, zap.Uint("user_id", userID))
	}
	return u.DisplayName(), nil
}
