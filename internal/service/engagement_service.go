package service

import (
	"context"

	"ripple/internal/cache"
	"ripple/internal/models"
	"ripple/internal/repository"
)

// LikeResult reports the state after a like request. Liked is the resulting
// state; Created distinguishes a fresh like from one that already existed.
type LikeResult struct {
	Liked   bool
	Created bool
}

// FollowResult reports the state after a follow request.
type FollowResult struct {
	Following bool
	Created   bool
}

// EngagementService coordinates follow and like actions with their side
// effects: notifications and feed cache invalidation.
type EngagementService struct {
	followRepo    repository.FollowRepository
	userRepo      repository.UserRepository
	postRepo      repository.PostRepository
	notifications *NotificationService

	// retractLikeNotifications controls whether unliking a post also
	// removes the notification the like produced.
	retractLikeNotifications bool
}

// NewEngagementService returns a new EngagementService.
func NewEngagementService(
	followRepo repository.FollowRepository,
	userRepo repository.UserRepository,
	postRepo repository.PostRepository,
	notifications *NotificationService,
	retractLikeNotifications bool,
) *EngagementService {
	return &EngagementService{
		followRepo:               followRepo,
		userRepo:                 userRepo,
		postRepo:                 postRepo,
		notifications:            notifications,
		retractLikeNotifications: retractLikeNotifications,
	}
}

// Follow creates a follow edge from follower to followee. Following yourself
// is rejected; following someone you already follow succeeds without change.
func (s *EngagementService) Follow(ctx context.Context, followerID, followeeID uint) (*FollowResult, error) {
	if followerID == followeeID {
		return nil, models.NewValidationError("You cannot follow yourself")
	}
	if _, err := s.userRepo.GetByID(ctx, followeeID); err != nil {
		return nil, err
	}

	created, err := s.followRepo.Create(ctx, followerID, followeeID)
	if err != nil {
		return nil, err
	}

	if created {
		if _, err := s.notifications.Notify(ctx, followeeID, followerID, models.VerbNewFollower, "", 0); err != nil {
			return nil, err
		}
		// The follower's feed now includes the followee's posts.
		cache.InvalidateFeeds(ctx, []uint{followerID})
	}

	return &FollowResult{Following: true, Created: created}, nil
}

// Unfollow removes the follow edge. Unfollowing someone you do not follow
// succeeds without change.
func (s *EngagementService) Unfollow(ctx context.Context, followerID, followeeID uint) (*FollowResult, error) {
	if followerID == followeeID {
		return nil, models.NewValidationError("You cannot unfollow yourself")
	}
	if _, err := s.userRepo.GetByID(ctx, followeeID); err != nil {
		return nil, err
	}

	removed, err := s.followRepo.Delete(ctx, followerID, followeeID)
	if err != nil {
		return nil, err
	}
	if removed {
		cache.InvalidateFeeds(ctx, []uint{followerID})
	}

	return &FollowResult{Following: false, Created: removed}, nil
}

// LikePost likes a post on behalf of userID. Liking an already-liked post
// succeeds without change; only a fresh like notifies the author.
func (s *EngagementService) LikePost(ctx context.Context, userID, postID uint) (*LikeResult, error) {
	post, err := s.postRepo.GetByID(ctx, postID, 0)
	if err != nil {
		return nil, err
	}

	created, err := s.postRepo.Like(ctx, userID, postID)
	if err != nil {
		return nil, err
	}

	if created {
		if _, err := s.notifications.Notify(ctx, post.UserID, userID, models.VerbLiked, models.TargetTypePost, postID); err != nil {
			return nil, err
		}
	}

	return &LikeResult{Liked: true, Created: created}, nil
}

// UnlikePost removes the user's like. Unliking a post the user never liked
// is a not-found error. When configured, the notification the like produced
// is retracted as well.
func (s *EngagementService) UnlikePost(ctx context.Context, userID, postID uint) (*LikeResult, error) {
	post, err := s.postRepo.GetByID(ctx, postID, 0)
	if err != nil {
		return nil, err
	}

	removed, err := s.postRepo.Unlike(ctx, userID, postID)
	if err != nil {
		return nil, err
	}
	if !removed {
		return nil, models.NewNotFoundError("Like", postID)
	}

	if s.retractLikeNotifications {
		if err := s.notifications.Retract(ctx, post.UserID, userID, models.VerbLiked, models.TargetTypePost, postID); err != nil {
			return nil, err
		}
	}

	return &LikeResult{Liked: false, Created: true}, nil
}

// GetFollowing returns the users followed by userID.
func (s *EngagementService) GetFollowing(ctx context.Context, userID uint) ([]models.User, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.followRepo.GetFollowing(ctx, userID)
}

// GetFollowers returns the users following userID.
func (s *EngagementService) GetFollowers(ctx context.Context, userID uint) ([]models.User, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.followRepo.GetFollowers(ctx, userID)
}

// IsFollowing reports whether follower follows followee.
func (s *EngagementService) IsFollowing(ctx context.Context, followerID, followeeID uint) (bool, error) {
	return s.followRepo.IsFollowing(ctx, followerID, followeeID)
}
