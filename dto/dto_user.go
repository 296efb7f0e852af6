package dto

import (
	"time"

	"socialhub/internal/models"
)

type UpdateProfileRequest struct {
	Name     string `json:"name"`
	Lastname string `json:"lastname"`
	Email    string `json:"email"`
}

// UserWithPostCount is the user directory entry.
type UserWithPostCount struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	Lastname  string `json:"lastname"`
	Email     string `json:"email"`
	PostCount int64  `json:"postCount"`
}

// FollowEdge is one follower/following list entry with the counterpart user.
type FollowEdge struct {
	ID          uint              `json:"id"`
	FollowerID  uint              `json:"follower_id"`
	FollowingID uint              `json:"following_id"`
	CreatedAt   time.Time         `json:"created_at"`
	User        models.PublicUser `json:"user"`
}
