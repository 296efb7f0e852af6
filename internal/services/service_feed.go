package services

import (
	"context"

	"socialhub/dto"
	"socialhub/internal/repository"
)

// FeedService assembles the viewer-specific feed: posts by the viewer and
// everyone they follow, newest first, each annotated with derived like and
// comment totals and the viewer's own like state.
type FeedService struct {
	follows  repository.FollowRepository
	posts    repository.PostRepository
	likes    repository.LikeRepository
	comments repository.CommentRepository
}

func NewFeedService(
	follows repository.FollowRepository,
	posts repository.PostRepository,
	likes repository.LikeRepository,
	comments repository.CommentRepository,
) *FeedService {
	return &FeedService{follows: follows, posts: posts, likes: likes, comments: comments}
}

// GetFeed resolves the audience (followees plus the viewer themselves) and
// returns the enriched posts. A viewer who follows nobody gets their own
// posts, or an empty list; never an error.
func (s *FeedService) GetFeed(ctx context.Context, viewerID uint) ([]dto.FeedPost, error) {
	audience, err := s.follows.FollowingIDs(ctx, viewerID)
	if err != nil {
		return nil, err
	}
	audience = append(audience, viewerID)

	posts, err := s.posts.ListByAuthors(ctx, audience)
	if err != nil {
		return nil, err
	}
	return s.enrich(ctx, posts, viewerID)
}

// GetUserPosts is a single-author feed: one profile's posts annotated for
// the viewer.
func (s *FeedService) GetUserPosts(ctx context.Context, profileID, viewerID uint) ([]dto.FeedPost, error) {
	posts, err := s.posts.ListByAuthors(ctx, []uint{profileID})
	if err != nil {
		return nil, err
	}
	return s.enrich(ctx, posts, viewerID)
}

// enrich fills likesCount, commentsCount and liked. The three lookups are
// independent of each other and grouped per table, so a page costs three
// queries regardless of its length.
func (s *FeedService) enrich(ctx context.Context, posts []dto.FeedPost, viewerID uint) ([]dto.FeedPost, error) {
	postIDs := make([]uint, 0, len(posts))
	for _, post := range posts {
		postIDs = append(postIDs, post.ID)
	}

	likeCounts, err := s.likes.CountByPosts(ctx, postIDs)
	if err != nil {
		return nil, err
	}
	commentCounts, err := s.comments.CountByPosts(ctx, postIDs)
	if err != nil {
		return nil, err
	}
	liked, err := s.likes.LikedByUser(ctx, viewerID, postIDs)
	if err != nil {
		return nil, err
	}

	for i := range posts {
		posts[i].LikesCount = likeCounts[posts[i].ID]
		posts[i].CommentsCount = commentCounts[posts[i].ID]
		posts[i].Liked = liked[posts[i].ID]
	}
	return posts, nil
}
