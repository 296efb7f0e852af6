package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"socialhub/dto"
	"socialhub/internal/models"
)

type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	// ByIDAndUser looks up a comment by id scoped to its author. A miss
	// does not reveal whether the comment exists at all.
	ByIDAndUser(ctx context.Context, id, userID uint) (*models.Comment, error)
	Save(ctx context.Context, comment *models.Comment) error
	Delete(ctx context.Context, id uint) error
	ListByPost(ctx context.Context, postID uint) ([]dto.CommentResponse, error)
	CountByPosts(ctx context.Context, postIDs []uint) (map[uint]int64, error)
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(ctx context.Context, comment *models.Comment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

func (r *commentRepository) ByIDAndUser(ctx context.Context, id, userID uint) (*models.Comment, error) {
	var comment models.Comment
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&comment).Error
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

func (r *commentRepository) Save(ctx context.Context, comment *models.Comment) error {
	return r.db.WithContext(ctx).Save(comment).Error
}

func (r *commentRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Comment{}, id).Error
}

func (r *commentRepository) ListByPost(ctx context.Context, postID uint) ([]dto.CommentResponse, error) {
	var rows []struct {
		ID        uint
		UserID    uint
		PostID    uint
		Text      string
		CreatedAt time.Time
		UpdatedAt time.Time
		UserName  string
		UserEmail string
	}
	err := r.db.WithContext(ctx).Model(&models.Comment{}).
		Select("comments.id, comments.user_id, comments.post_id, comments.text, comments.created_at, comments.updated_at, users.name AS user_name, users.email AS user_email").
		Joins("JOIN users ON users.id = comments.user_id").
		Where("comments.post_id = ?", postID).
		Order("comments.created_at ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]dto.CommentResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, dto.CommentResponse{
			ID:        row.ID,
			UserID:    row.UserID,
			PostID:    row.PostID,
			Text:      row.Text,
			CreatedAt: row.CreatedAt,
			UpdatedAt: row.UpdatedAt,
			User: models.PublicUser{
				ID:    row.UserID,
				Name:  row.UserName,
				Email: row.UserEmail,
			},
		})
	}
	return out, nil
}

func (r *commentRepository) CountByPosts(ctx context.Context, postIDs []uint) (map[uint]int64, error) {
	counts := make(map[uint]int64, len(postIDs))
	if len(postIDs) == 0 {
		return counts, nil
	}

	var rows []struct {
		PostID uint
		Total  int64
	}
	err := r.db.WithContext(ctx).Model(&models.Comment{}).
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
