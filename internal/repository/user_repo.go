package repository

import (
	"context"

	"campushub/internal/domain"
	"campushub/internal/models"

	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, u *models.User) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *UserRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	var u models.User
	err := r.db.WithContext(ctx).First(&u, id).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	var u models.User
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) UsernameTaken(ctx context.Context, username string) (bool, error) {
	var c int64
	err := r.db.WithContext(ctx).Model(&models.User{}).Where("username = ?", username).Count(&c).Error
	return c > 0, err
}

// UpdateStatus writes only the account status.
func (r *UserRepository) UpdateStatus(ctx context.Context, u *models.User) error {
	return r.db.WithContext(ctx).Model(u).Update("status", u.Status).Error
}

// ListStudents returns every student account, newest first.
func (r *UserRepository) ListStudents(ctx context.Context) ([]models.User, error) {
	var list []models.User
	err := r.db.WithContext(ctx).
		Where("role = ?", domain.RoleStudent).
		Order("created_at DESC").
		Find(&list).Error
	return list, err
}

// UpdateProfile writes the self-editable profile columns.
func (r *UserRepository) UpdateProfile(ctx context.Context, u *models.User) error {
	return r.db.WithContext(ctx).Model(u).
		Select("full_name", "student_number", "email", "contact_number", "updated_at").
		Updates(u).Error
}

// Status returns the account status without loading the rest of the row.
func (r *UserRepository) Status(ctx context.Context, id uint) (string, error) {
	var u models.User
	err := r.db.WithContext(ctx).Select("id", "status").First(&u, id).Error
	return u.Status, err
}
