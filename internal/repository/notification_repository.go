package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"socialhub/dto"
	"socialhub/internal/models"
)

type NotificationRepository interface {
	Create(ctx context.Context, notification *models.Notification) error
	ListByUser(ctx context.Context, userID uint) ([]dto.NotificationResponse, error)
	// DeleteByIDAndUser removes a notification only when it belongs to
	// userID and reports whether a row was removed.
	DeleteByIDAndUser(ctx context.Context, id, userID uint) (removed bool, err error)
}

type notificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) Create(ctx context.Context, notification *models.Notification) error {
	return r.db.WithContext(ctx).Create(notification).Error
}

func (r *notificationRepository) ListByUser(ctx context.Context, userID uint) ([]dto.NotificationResponse, error) {
	var rows []struct {
		ID           uint
		Type         string
		Message      string
		CreatedAt    time.Time
		FromUserID   uint
		FromName     string
		FromLastname string
	}
	err := r.db.WithContext(ctx).Model(&models.Notification{}).
		Select("notifications.id, notifications.type, notifications.message, notifications.created_at, notifications.from_user_id, users.name AS from_name, users.lastname AS from_lastname").
		Joins("JOIN users ON users.id = notifications.from_user_id").
		Where("notifications.user_id = ?", userID).
		Order("notifications.created_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]dto.NotificationResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, dto.NotificationResponse{
			ID:        row.ID,
			Type:      row.Type,
			Message:   row.Message,
			CreatedAt: row.CreatedAt,
			FromUser: &models.PublicUser{
				ID:       row.FromUserID,
				Name:     row.FromName,
				Lastname: row.FromLastname,
			},
		})
	}
	return out, nil
}

func (r *notificationRepository) DeleteByIDAndUser(ctx context.Context, id, userID uint) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.Notification{})
	return res.RowsAffected > 0, res.Error
}
