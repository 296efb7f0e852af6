package repository

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"

	"socialhub/dto"
	"socialhub/internal/models"
)

// UserRepository exposes only the query shapes the services actually need.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	ByID(ctx context.Context, id uint) (*models.User, error)
	ByEmail(ctx context.Context, email string) (*models.User, error)
	ByResetToken(ctx context.Context, token string, now time.Time) (*models.User, error)
	Save(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id uint) error
	SearchByNamePrefix(ctx context.Context, prefix string) ([]models.PublicUser, error)
	ListWithPostCount(ctx context.Context) ([]dto.UserWithPostCount, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) ByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) ByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Where("email = ?", strings.ToLower(email)).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) ByResetToken(ctx context.Context, token string, now time.Time) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).
		Where("reset_password_token = ? AND reset_password_expires > ?", token, now).
		First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) Save(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

func (r *userRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.User{}, id).Error
}

// SearchByNamePrefix matches name or lastname case-insensitively from the
// start of the field.
func (r *userRepository) SearchByNamePrefix(ctx context.Context, prefix string) ([]models.PublicUser, error) {
	pattern := strings.ToLower(prefix) + "%"
	var users []models.PublicUser
	err := r.db.WithContext(ctx).Model(&models.User{}).
		Select("id, name, lastname, email").
		Where("LOWER(name) LIKE ? OR LOWER(lastname) LIKE ?", pattern, pattern).
		Scan(&users).Error
	return users, err
}

func (r *userRepository) ListWithPostCount(ctx context.Context) ([]dto.UserWithPostCount, error) {
	var users []dto.UserWithPostCount
	err := r.db.WithContext(ctx).Model(&models.User{}).
		Select("users.id, users.name, users.lastname, users.email, (SELECT COUNT(*) FROM posts WHERE posts.author = users.id) AS post_count").
		Scan(&users).Error
	return users, err
}
