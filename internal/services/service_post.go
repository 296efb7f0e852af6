package services

import (
	"context"
	"errors"
	"log"
	"mime/multipart"

	"gorm.io/gorm"

	"socialhub/dto"
	"socialhub/internal/models"
	"socialhub/internal/repository"
	"socialhub/internal/storage"
)

var ErrPostNotFound = errors.New("post not found")

type PostService struct {
	posts repository.PostRepository
	media storage.MediaStore
}

func NewPostService(posts repository.PostRepository, media storage.MediaStore) *PostService {
	return &PostService{posts: posts, media: media}
}

func (s *PostService) Create(ctx context.Context, authorID uint, title, description string, file *multipart.FileHeader) (*models.Post, error) {
	post := &models.Post{
		Author:      authorID,
		Title:       title,
		Description: description,
	}
	if file != nil {
		url, err := s.media.Save(file)
		if err != nil {
			return nil, err
		}
		post.Image = url
	}
	if err := s.posts.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// Update edits a post's fields; a replacement upload drops the old media
// object. Only the author may update, a foreign post reads as missing.
func (s *PostService) Update(ctx context.Context, id, authorID uint, req dto.UpdatePostRequest, file *multipart.FileHeader) (*models.Post, error) {
	post, err := s.byIDForAuthor(ctx, id, authorID)
	if err != nil {
		return nil, err
	}

	if file != nil {
		url, err := s.media.Save(file)
		if err != nil {
			return nil, err
		}
		if post.Image != "" {
			if err := s.media.Remove(post.Image); err != nil {
				log.Printf("post: remove old media %s: %v", post.Image, err)
			}
		}
		post.Image = url
	}
	if req.Title != "" {
		post.Title = req.Title
	}
	if req.Description != "" {
		post.Description = req.Description
	}

	if err := s.posts.Save(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// Delete removes a post along with its media object; likes and comments go
// with it through the foreign keys.
func (s *PostService) Delete(ctx context.Context, id, authorID uint) error {
	post, err := s.byIDForAuthor(ctx, id, authorID)
	if err != nil {
		return err
	}

	if post.Image != "" {
		if err := s.media.Remove(post.Image); err != nil {
			log.Printf("post: remove media %s: %v", post.Image, err)
		}
	}
	return s.posts.Delete(ctx, post.ID)
}

func (s *PostService) byIDForAuthor(ctx context.Context, id, authorID uint) (*models.Post, error) {
	post, err := s.posts.ByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	if post.Author != authorID {
		return nil, ErrPostNotFound
	}
	return post, nil
}
