package services

import (
	"context"
	"errors"
	"fmt"

	"socialhub/dto"
	"socialhub/internal/models"
	"socialhub/internal/repository"
)

var ErrNotificationNotFound = errors.New("notification not found")

type NotificationService struct {
	notifications repository.NotificationRepository
}

func NewNotificationService(notifications repository.NotificationRepository) *NotificationService {
	return &NotificationService{notifications: notifications}
}

// LikeMessage and friends build the message text stored on the record.
func LikeMessage() string {
	return "liked your post"
}

func CommentMessage(text string) string {
	return fmt.Sprintf("commented on your post: %q", text)
}

func FollowMessage() string {
	return "started following you"
}

// Notify records an event for recipientID caused by actorID. Events a user
// triggers on their own content are dropped here, so every caller gets the
// actor-differs-from-recipient rule for free.
func (s *NotificationService) Notify(ctx context.Context, recipientID, actorID uint, notiType, message string) error {
	if recipientID == actorID {
		return nil
	}
	return s.notifications.Create(ctx, &models.Notification{
		UserID:     recipientID,
		FromUserID: actorID,
		Type:       notiType,
		Message:    message,
	})
}

func (s *NotificationService) List(ctx context.Context, userID uint) ([]dto.NotificationResponse, error) {
	return s.notifications.ListByUser(ctx, userID)
}

func (s *NotificationService) Delete(ctx context.Context, id, userID uint) error {
	removed, err := s.notifications.DeleteByIDAndUser(ctx, id, userID)
	if err != nil {
		return err
	}
	if !removed {
		return ErrNotificationNotFound
	}
	return nil
}
