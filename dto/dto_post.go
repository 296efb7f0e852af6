package dto

import (
	"time"

	"socialhub/internal/models"
)

// FeedPost is a post enriched for a specific viewer: author display fields,
// derived like/comment totals and whether the viewer liked it.
type FeedPost struct {
	ID            uint              `json:"id"`
	Author        uint              `json:"author"`
	Title         string            `json:"title"`
	Description   string            `json:"description"`
	Image         string            `json:"image,omitempty"`
	CreatedAt     time.Time         `json:"created_at"`
	User          models.PublicUser `json:"user"`
	LikesCount    int64             `json:"likesCount"`
	CommentsCount int64             `json:"commentsCount"`
	Liked         bool              `json:"liked"`
}

type UpdatePostRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type ToggleLikeResponse struct {
	Message    string `json:"message"`
	PostID     uint   `json:"postId"`
	Liked      bool   `json:"liked"`
	LikesCount int64  `json:"likesCount"`
}

// PostLike is one entry of a post's likers list.
type PostLike struct {
	ID        uint              `json:"id"`
	UserID    uint              `json:"userId"`
	PostID    uint              `json:"postId"`
	CreatedAt time.Time         `json:"createdAt"`
	User      models.PublicUser `json:"user"`
}
