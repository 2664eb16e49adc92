package service

import (
	"context"

	"ripple/internal/cache"
	"ripple/internal/models"
	"ripple/internal/repository"
)

const (
	defaultFeedPageSize = 10
	maxFeedPageSize     = 100
)

// FeedPage is one page of a user's home feed.
type FeedPage struct {
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
	Items    []*models.Post `json:"items"`
}

// FeedService composes home feeds from the posts of followed users.
type FeedService struct {
	postRepo   repository.PostRepository
	followRepo repository.FollowRepository
}

// NewFeedService returns a new FeedService.
func NewFeedService(postRepo repository.PostRepository, followRepo repository.FollowRepository) *FeedService {
	return &FeedService{postRepo: postRepo, followRepo: followRepo}
}

// GetFeed returns the requested page of posts authored by users that userID
// follows, newest first. Out-of-range paging parameters are clamped rather
// than rejected. The first page is served cache-aside with a short TTL.
func (s *FeedService) GetFeed(ctx context.Context, userID uint, page, pageSize int) (*FeedPage, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultFeedPageSize
	}
	if pageSize > maxFeedPageSize {
		pageSize = maxFeedPageSize
	}

	if page == 1 && pageSize == defaultFeedPageSize {
		var cached FeedPage
		err := cache.Aside(ctx, cache.FeedKey(userID), &cached, cache.FeedTTL, func() error {
			fresh, err := s.composePage(ctx, userID, page, pageSize)
			if err != nil {
				return err
			}
			cached = *fresh
			return nil
		})
		if err != nil {
			return nil, err
		}
		return &cached, nil
	}

	return s.composePage(ctx, userID, page, pageSize)
}

func (s *FeedService) composePage(ctx context.Context, userID uint, page, pageSize int) (*FeedPage, error) {
	result := &FeedPage{
		Page:     page,
		PageSize: pageSize,
		Items:    []*models.Post{},
	}

	authorIDs, err := s.followRepo.GetFollowingIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(authorIDs) == 0 {
		return result, nil
	}

	total, err := s.postRepo.CountByAuthors(ctx, authorIDs)
	if err != nil {
		return nil, err
	}
	result.Total = total

	offset := (page - 1) * pageSize
	posts, err := s.postRepo.FeedByAuthors(ctx, authorIDs, pageSize, offset, userID)
	if err != nil {
		return nil, err
	}
	result.Items = posts

	return result, nil
}
