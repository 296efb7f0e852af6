package services

import (
	"context"
	"errors"

	"socialhub/dto"
	"socialhub/internal/models"
	"socialhub/internal/repository"
)

var (
	ErrSelfFollow       = errors.New("you can't follow yourself")
	ErrSelfUnfollow     = errors.New("you can't unfollow yourself")
	ErrAlreadyFollowing = errors.New("already following this user")
	ErrNotFollowing     = errors.New("not following this user")
)

type FollowService struct {
	follows       repository.FollowRepository
	notifications *NotificationService
}

func NewFollowService(follows repository.FollowRepository, notifications *NotificationService) *FollowService {
	return &FollowService{follows: follows, notifications: notifications}
}

// Follow creates the directed edge. The unique index decides whether the
// edge already existed; there is no separate existence read.
func (s *FollowService) Follow(ctx context.Context, followerID, followingID uint) error {
	if followerID == followingID {
		return ErrSelfFollow
	}

	dup, err := s.follows.Insert(ctx, followerID, followingID)
	if err != nil {
		return err
	}
	if dup {
		return ErrAlreadyFollowing
	}

	return s.notifications.Notify(ctx, followingID, followerID, models.NotiFollow, FollowMessage())
}

func (s *FollowService) Unfollow(ctx context.Context, followerID, followingID uint) error {
	if followerID == followingID {
		return ErrSelfUnfollow
	}

	removed, err := s.follows.Delete(ctx, followerID, followingID)
	if err != nil {
		return err
	}
	if !removed {
		return ErrNotFollowing
	}
	return nil
}

func (s *FollowService) Followers(ctx context.Context, userID uint) ([]dto.FollowEdge, error) {
	return s.follows.Followers(ctx, userID)
}

func (s *FollowService) Following(ctx context.Context, userID uint) ([]dto.FollowEdge, error) {
	return s.follows.Following(ctx, userID)
}
