package dto

import (
	"time"

	"socialhub/internal/models"
)

type CreateCommentRequest struct {
	Text string `json:"text"`
}

type UpdateCommentRequest struct {
	Text string `json:"text"`
}

type CommentResponse struct {
	ID        uint              `json:"id"`
	UserID    uint              `json:"userId"`
	PostID    uint              `json:"postId"`
	Text      string            `json:"text"`
	CreatedAt time.Time         `json:"createdAt"`
	UpdatedAt time.Time         `json:"updatedAt"`
	User      models.PublicUser `json:"user"`
}
