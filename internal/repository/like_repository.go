package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"socialhub/dto"
	"socialhub/internal/models"
)

type LikeRepository interface {
	// Insert attempts a conditional create of the (user, post) pair. A
	// duplicate-key result means the pair already existed; it is not an
	// error.
	Insert(ctx context.Context, userID, postID uint) (dup bool, err error)
	// Delete removes the pair and reports whether a row was removed.
	Delete(ctx context.Context, userID, postID uint) (removed bool, err error)
	CountByPost(ctx context.Context, postID uint) (int64, error)
	CountByPosts(ctx context.Context, postIDs []uint) (map[uint]int64, error)
	LikedByUser(ctx context.Context, userID uint, postIDs []uint) (map[uint]bool, error)
	ListByPost(ctx context.Context, postID uint) ([]dto.PostLike, error)
}

type likeRepository struct {
	db *gorm.DB
}

func NewLikeRepository(db *gorm.DB) LikeRepository {
	return &likeRepository{db: db}
}

func (r *likeRepository) Insert(ctx context.Context, userID, postID uint) (bool, error) {
	like := models.Like{UserID: userID, PostID: postID}
	err := r.db.WithContext(ctx).Create(&like).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true, nil
	}
	return false, err
}

func (r *likeRepository) Delete(ctx context.Context, userID, postID uint) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Delete(&models.Like{})
	return res.RowsAffected > 0, res.Error
}

func (r *likeRepository) CountByPost(ctx context.Context, postID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Like{}).
		Where("post_id = ?", postID).
		Count(&count).Error
	return count, err
}

func (r *likeRepository) CountByPosts(ctx context.Context, postIDs []uint) (map[uint]int64, error) {
	counts := make(map[uint]int64, len(postIDs))
	if len(postIDs) == 0 {
		return counts, nil
	}

	var rows []struct {
		PostID uint
		Total  int64
	}
	err := r.db.WithContext(ctx).Model(&models.Like{}).
		Select("post_id, COUNT(*) AS total").
		Where("post_id IN ?", postIDs).
		Group("post_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		counts[row.PostID] = row.Total
	}
	return counts, nil
}

func (r *likeRepository) LikedByUser(ctx context.Context, userID uint, postIDs []uint) (map[uint]bool, error) {
	liked := make(map[uint]bool, len(postIDs))
	if len(postIDs) == 0 {
		return liked, nil
	}

	var ids []uint
	err := r.db.WithContext(ctx).Model(&models.Like{}).
		Where("user_id = ? AND post_id IN ?", userID, postIDs).
		Pluck("post_id", &ids).Error
	if err != nil {
		return nil, err
	}
	for _, id := range ids {
		liked[id] = true
	}
	return liked, nil
}

func (r *likeRepository) ListByPost(ctx context.Context, postID uint) ([]dto.PostLike, error) {
	var rows []struct {
		ID           uint
		UserID       uint
		PostID       uint
		CreatedAt    time.Time
		UserName     string
		UserLastname string
		UserEmail    string
	}
	err := r.db.WithContext(ctx).Model(&models.Like{}).
		Select("likes.id, likes.user_id, likes.post_id, likes.created_at, users.name AS user_name, users.lastname AS user_lastname, users.email AS user_email").
		Joins("JOIN users ON users.id = likes.user_id").
		Where("likes.post_id = ?", postID).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]dto.PostLike, 0, len(rows))
	for _, row := range rows {
		out = append(out, dto.PostLike{
			ID:        row.ID,
			UserID:    row.UserID,
			PostID:    row.PostID,
			CreatedAt: row.CreatedAt,
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
