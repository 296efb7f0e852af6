package services

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"socialhub/dto"
	"socialhub/internal/models"
	"socialhub/internal/repository"
)

var (
	ErrEmptyComment = errors.New("comment text cannot be empty")
	// ErrCommentNotFound covers both a missing comment and one owned by
	// somebody else, so the API never reveals which it was.
	ErrCommentNotFound = errors.New("comment not found or you don't have permission")
)

type EngagementService struct {
	posts         repository.PostRepository
	likes         repository.LikeRepository
	comments      repository.CommentRepository
	notifications *NotificationService
}

func NewEngagementService(
	posts repository.PostRepository,
	likes repository.LikeRepository,
	comments repository.CommentRepository,
	notifications *NotificationService,
) *EngagementService {
	return &EngagementService{posts: posts, likes: likes, comments: comments, notifications: notifications}
}

// ToggleLike flips the viewer's like on a post. The first insert attempt is
// the decision point: a duplicate-key result means the like existed and
// this call is an unlike. The returned count is recomputed from rows.
func (s *EngagementService) ToggleLike(ctx context.Context, userID, postID uint) (liked bool, likesCount int64, err error) {
	post, err := s.posts.ByID(ctx, postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, 0, ErrPostNotFound
		}
		return false, 0, err
	}

	dup, err := s.likes.Insert(ctx, userID, postID)
	if err != nil {
		return false, 0, err
	}
	if dup {
		if _, err := s.likes.Delete(ctx, userID, postID); err != nil {
			return false, 0, err
		}
		liked = false
	} else {
		liked = true
		if err := s.notifications.Notify(ctx, post.Author, userID, models.NotiLike, LikeMessage()); err != nil {
			return false, 0, err
		}
	}

	likesCount, err = s.likes.CountByPost(ctx, postID)
	if err != nil {
		return false, 0, err
	}
	return liked, likesCount, nil
}

func (s *EngagementService) ListLikes(ctx context.Context, postID uint) ([]dto.PostLike, error) {
	return s.likes.ListByPost(ctx, postID)
}

// AddComment attaches text to a post and notifies the post's author with
// the comment text carried verbatim.
func (s *EngagementService) AddComment(ctx context.Context, userID, postID uint, text string) (*models.Comment, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyComment
	}

	post, err := s.posts.ByID(ctx, postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}

	comment := &models.Comment{UserID: userID, PostID: postID, Text: text}
	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, err
	}

	if err := s.notifications.Notify(ctx, post.Author, userID, models.NotiComment, CommentMessage(text)); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *EngagementService) ListComments(ctx context.Context, postID uint) ([]dto.CommentResponse, error) {
	return s.comments.ListByPost(ctx, postID)
}

func (s *EngagementService) EditComment(ctx context.Context, commentID, userID uint, text string) (*models.Comment, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyComment
	}

	comment, err := s.ownComment(ctx, commentID, userID)
	if err != nil {
		return nil, err
	}
	comment.Text = text
	if err := s.comments.Save(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *EngagementService) DeleteComment(ctx context.Context, commentID, userID uint) error {
	comment, err := s.ownComment(ctx, commentID, userID)
	if err != nil {
		return err
	}
	return s.comments.Delete(ctx, comment.ID)
}

func (s *EngagementService) ownComment(ctx context.Context, commentID, userID uint) (*models.Comment, error) {
	comment, err := s.comments.ByIDAndUser(ctx, commentID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCommentNotFound
		}
		return nil, err
	}
	return comment, nil
}
