package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"socialhub/dto"
	"socialhub/internal/models"
)

type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	ByID(ctx context.Context, id uint) (*models.Post, error)
	Save(ctx context.Context, post *models.Post) error
	Delete(ctx context.Context, id uint) error
	// ListByAuthors returns posts by any of the given authors, newest
	// first, with the author's display fields attached. Engagement
	// counters are left zero for the caller to fill in.
	ListByAuthors(ctx context.Context, authorIDs []uint) ([]dto.FeedPost, error)
}

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	return r.db.WithContext(ctx).Create(post).Error
}

func (r *postRepository) ByID(ctx context.Context, id uint) (*models.Post, error) {
	var post models.Post
	if err := r.db.WithContext(ctx).First(&post, id).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *postRepository) Save(ctx context.Context, post *models.Post) error {
	return r.db.WithContext(ctx).Save(post).Error
}

func (r *postRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Post{}, id).Error
}

func (r *postRepository) ListByAuthors(ctx context.Context, authorIDs []uint) ([]dto.FeedPost, error) {
	if len(authorIDs) == 0 {
		return []dto.FeedPost{}, nil
	}

	var rows []struct {
		ID           uint
		Author       uint
		Title        string
		Description  string
		Image        string
		CreatedAt    time.Time
		UserName     string
		UserLastname string
	}
	err := r.db.WithContext(ctx).Model(&models.Post{}).
		Select("posts.id, posts.author, posts.title, posts.description, posts.image, posts.created_at, users.name AS user_name, users.lastname AS user_lastname").
		Joins("JOIN users ON users.id = posts.author").
		Where("posts.author IN ?", authorIDs).
		Order("posts.created_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]dto.FeedPost, 0, len(rows))
	for _, row := range rows {
		out = append(out, dto.FeedPost{
			ID:          row.ID,
			Author:      row.Author,
			Title:       row.Title,
			Description: row.Description,
			Image:       row.Image,
			CreatedAt:   row.CreatedAt,
			User: models.PublicUser{
				ID:       row.Author,
				Name:     row.UserName,
				Lastname: row.UserLastname,
			},
		})
	}
	return out, nil
}
