package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"socialhub/dto"
	"socialhub/internal/models"
)

type FollowRepository interface {
	// Insert attempts a conditional create of the edge; a duplicate-key
	// result means the follower already follows the target.
	Insert(ctx context.Context, followerID, followingID uint) (dup bool, err error)
	Delete(ctx context.Context, followerID, followingID uint) (removed bool, err error)
	FollowingIDs(ctx context.Context, followerID uint) ([]uint, error)
	Followers(ctx context.Context, userID uint) ([]dto.FollowEdge, error)
	Following(ctx context.Context, userID uint) ([]dto.FollowEdge, error)
}

type followRepository struct {
	db *gorm.DB
}

func NewFollowRepository(db *gorm.DB) FollowRepository {
	return &followRepository{db: db}
}

func (r *followRepository) Insert(ctx context.Context, followerID, followingID uint) (bool, error) {
	edge := models.Follow{FollowerID: followerID, FollowingID: followingID}
	err := r.db.WithContext(ctx).Create(&edge).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true, nil
	}
	return false, err
}

func (r *followRepository) Delete(ctx context.Context, followerID, followingID uint) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Delete(&models.Follow{})
	return res.RowsAffected > 0, res.Error
}

func (r *followRepository) FollowingIDs(ctx context.Context, followerID uint) ([]uint, error) {
	var ids []uint
	err := r.db.WithContext(ctx).Model(&models.Follow{}).
		Where("follower_id = ?", followerID).
		Pluck("following_id", &ids).Error
	return ids, err
}

func (r *followRepository) Followers(ctx context.Context, userID uint) ([]dto.FollowEdge, error) {
	return r.edges(ctx, "follows.following_id = ?", "users.id = follows.follower_id", userID)
}

func (r *followRepository) Following(ctx context.Context, userID uint) ([]dto.FollowEdge, error) {
	return r.edges(ctx, "follows.follower_id = ?", "users.id = follows.following_id", userID)
}

// edges lists follow rows joined with the user on the far side of the edge.
func (r *followRepository) edges(ctx context.Context, where, join string, userID uint) ([]dto.FollowEdge, error) {
	var rows []struct {
		ID           uint
		FollowerID   uint
		FollowingID  uint
		CreatedAt    time.Time
		UserID       uint
		UserName     string
		UserLastname string
		UserEmail    string
	}
	err := r.db.WithContext(ctx).Model(&models.Follow{}).
		Select("follows.id, follows.follower_id, follows.following_id, follows.created_at, users.id AS user_id, users.name AS user_name, users.lastname AS user_lastname, users.email AS user_email").
		Joins("JOIN users ON "+join).
		Where(where, userID).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]dto.FollowEdge, 0, len(rows))
	for _, row := range rows {
		out = append(out, dto.FollowEdge{
			ID:          row.ID,
			FollowerID:  row.FollowerID,
			FollowingID: row.FollowingID,
			CreatedAt:   row.CreatedAt,
			User: models.PublicUser{
				ID:       row.UserID,
				Name:     row.UserName,
				Lastname: row.UserLastname,
				Email:    row.UserEmail,
			},
		})
	}
	return out, nil
}
