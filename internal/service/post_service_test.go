package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"ripple/internal/cache"
	"ripple/internal/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func TestPostServiceCreateValidation(t *testing.T) {
	svc := NewPostService(noopPostRepo(), noopFollowRepo())

	tests := []struct {
		name    string
		title   string
		content string
	}{
		{"empty title", "", "content"},
		{"whitespace title", "   ", "content"},
		{"empty content", "title", ""},
		{"whitespace content", "title", "\n\t "},
		{"title too long", strings.Repeat("a", 201), "content"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreatePost(context.Background(), 1, tt.title, tt.content)
			if err == nil {
				t.Fatal("expected validation error")
			}
			var appErr *models.AppError
			if !errors.As(err, &appErr) || appErr.Code != "VALIDATION_ERROR" {
				t.Fatalf("expected validation app error, got %#v", err)
			}
		})
	}
}

func TestPostServiceCreateTrimsFields(t *testing.T) {
	posts := noopPostRepo()
	var stored *models.Post
	posts.createFn = func(_ context.Context, p *models.Post) error {
		p.ID = 1
		stored = p
		return nil
	}
	posts.getByIDFn = func(ctx context.Context, id, _ uint) (*models.Post, error) {
		return stored, nil
	}

	svc := NewPostService(posts, noopFollowRepo())
	post, err := svc.CreatePost(context.Background(), 1, "  hello  ", "  world  ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if post.Title != "hello" || post.Content != "world" {
		t.Fatalf("expected trimmed fields, got %q / %q", post.Title, post.Content)
	}
}

func TestPostServiceCreateInvalidatesFollowerFeeds(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)
	cache.SetClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { cache.SetClient(nil) })

	if err := mr.Set(cache.FeedKey(7), "{}"); err != nil {
		t.Fatalf("failed to seed cache: %v", err)
	}
	if err := mr.Set(cache.FeedKey(8), "{}"); err != nil {
		t.Fatalf("failed to seed cache: %v", err)
	}

	posts := noopPostRepo()
	posts.createFn = func(_ context.Context, p *models.Post) error {
		p.ID = 1
		return nil
	}
	posts.getByIDFn = func(ctx context.Context, id, _ uint) (*models.Post, error) {
		return &models.Post{ID: id}, nil
	}

	follows := noopFollowRepo()
	follows.getFollowerIDsFn = func(_ context.Context, userID uint) ([]uint, error) {
		if userID != 1 {
			t.Fatalf("expected follower lookup for author 1, got %d", userID)
		}
		return []uint{7, 8}, nil
	}

	svc := NewPostService(posts, follows)
	if _, err := svc.CreatePost(context.Background(), 1, "title", "content"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if mr.Exists(cache.FeedKey(7)) || mr.Exists(cache.FeedKey(8)) {
		t.Fatal("expected cached follower feeds to be dropped")
	}
}

func TestPostServiceCreateSurvivesFollowerLookupFailure(t *testing.T) {
	posts := noopPostRepo()
	posts.createFn = func(_ context.Context, p *models.Post) error {
		p.ID = 2
		return nil
	}
	posts.getByIDFn = func(ctx context.Context, id, _ uint) (*models.Post, error) {
		return &models.Post{ID: id}, nil
	}

	follows := noopFollowRepo()
	follows.getFollowerIDsFn = func(context.Context, uint) ([]uint, error) {
		return nil, errors.New("connection reset")
	}

	svc := NewPostService(posts, follows)
	post, err := svc.CreatePost(context.Background(), 1, "title", "content")
	if err != nil {
		t.Fatalf("expected creation to succeed despite lookup failure, got %v", err)
	}
	if post == nil || post.ID != 2 {
		t.Fatalf("unexpected post %+v", post)
	}
}

func TestPostServiceUpdateForbiddenForNonAuthor(t *testing.T) {
	posts := noopPostRepo()
	posts.getByIDFn = func(ctx context.Context, id, _ uint) (*models.Post, error) {
		return &models.Post{ID: id, UserID: 2, Title: "t", Content: "c"}, nil
	}

	svc := NewPostService(posts, noopFollowRepo())
	_, err := svc.UpdatePost(context.Background(), 1, 10, "new", "new")
	if err == nil {
		t.Fatal("expected forbidden error")
	}
	var appErr *models.AppError
	if !errors.As(err, &appErr) || appErr.Code != "FORBIDDEN" {
		t.Fatalf("expected forbidden app error, got %#v", err)
	}
}

func TestPostServiceDeleteForbiddenForNonAuthor(t *testing.T) {
	posts := noopPostRepo()
	posts.getByIDFn = func(ctx context.Context, id, _ uint) (*models.Post, error) {
		return &models.Post{ID: id, UserID: 2}, nil
	}
	deleted := false
	posts.deleteFn = func(context.Context, uint) error {
		deleted = true
		return nil
	}

	svc := NewPostService(posts, noopFollowRepo())
	err := svc.DeletePost(context.Background(), 1, 10)
	var appErr *models.AppError
	if !errors.As(err, &appErr) || appErr.Code != "FORBIDDEN" {
		t.Fatalf("expected forbidden app error, got %#v", err)
	}
	if deleted {
		t.Fatal("expected no delete for non-author")
	}
}
