package dto

import (
	"time"

	"socialhub/internal/models"
)

type NotificationResponse struct {
	ID        uint               `json:"id"`
	Type      string             `json:"type"`
	Message   string             `json:"message"`
	FromUser  *models.PublicUser `json:"fromUser"`
	CreatedAt time.Time          `json:"createdAt"`
}

type NotificationListResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
}
