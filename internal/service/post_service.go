package service

import (
	"context"
	"strings"

	"ripple/internal/cache"
	"ripple/internal/middleware"
	"ripple/internal/models"
	"ripple/internal/repository"
)

const maxTitleLength = 200

// PostService provides post business logic.
type PostService struct {
	postRepo   repository.PostRepository
	followRepo repository.FollowRepository
}

// NewPostService returns a new PostService.
func NewPostService(postRepo repository.PostRepository, followRepo repository.FollowRepository) *PostService {
	return &PostService{postRepo: postRepo, followRepo: followRepo}
}

// CreatePost validates and stores a new post authored by userID.
func (s *PostService) CreatePost(ctx context.Context, userID uint, title, content string) (*models.Post, error) {
	title = strings.TrimSpace(title)
	content = strings.TrimSpace(content)

	if title == "" {
		return nil, models.NewValidationError("Title is required")
	}
	if len([]rune(title)) > maxTitleLength {
		return nil, models.NewValidationError("Title must be at most 200 characters")
	}
	if content == "" {
		return nil, models.NewValidationError("Content is required")
	}

	post := &models.Post{Title: title, Content: content, UserID: userID}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	// The new post belongs in every follower's feed; drop their cached
	// first pages. Best effort, the post is already stored.
	if followerIDs, err := s.followRepo.GetFollowerIDs(ctx, userID); err != nil {
		middleware.Logger.Warn("Failed to resolve followers for feed invalidation",
			"user_id", userID, "error", err)
	} else {
		cache.InvalidateFeeds(ctx, followerIDs)
	}

	return s.postRepo.GetByID(ctx, post.ID, userID)
}

// GetPost returns a post with engagement counts for the viewing user.
// currentUserID is zero for anonymous viewers.
func (s *PostService) GetPost(ctx context.Context, postID, currentUserID uint) (*models.Post, error) {
	return s.postRepo.GetByID(ctx, postID, currentUserID)
}

// ListPosts returns all posts, newest first.
func (s *PostService) ListPosts(ctx context.Context, limit, offset int, currentUserID uint) ([]*models.Post, error) {
	return s.postRepo.List(ctx, limit, offset, currentUserID)
}

// ListPostsByUser returns a user's posts, newest first.
func (s *PostService) ListPostsByUser(ctx context.Context, userID uint, limit, offset int, currentUserID uint) ([]*models.Post, error) {
	return s.postRepo.GetByUserID(ctx, userID, limit, offset, currentUserID)
}

// UpdatePost applies edits to a post. Only the author may edit; everyone
// else gets a forbidden error.
func (s *PostService) UpdatePost(ctx context.Context, userID, postID uint, title, content string) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, postID, userID)
	if err != nil {
		return nil, err
	}
	if post.UserID != userID {
		return nil, models.NewForbiddenError("You can only edit your own posts")
	}

	title = strings.TrimSpace(title)
	content = strings.TrimSpace(content)
	if title == "" {
		return nil, models.NewValidationError("Title is required")
	}
	if len([]rune(title)) > maxTitleLength {
		return nil, models.NewValidationError("Title must be at most 200 characters")
	}
	if content == "" {
		return nil, models.NewValidationError("Content is required")
	}

	post.Title = title
	post.Content = content
	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}
	return s.postRepo.GetByID(ctx, postID, userID)
}

// DeletePost removes a post. Only the author may delete it.
func (s *PostService) DeletePost(ctx context.Context, userID, postID uint) error {
	post, err := s.postRepo.GetByID(ctx, postID, userID)
	if err != nil {
		return err
	}
	if post.UserID != userID {
		return models.NewForbiddenError("You can only delete your own posts")
	}
	return s.postRepo.Delete(ctx, postID)
}
