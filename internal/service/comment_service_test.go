package service

import (
	"context"
	"errors"
	"testing"

	"ripple/internal/models"
)

func TestCommentServiceCreateEmptyContent(t *testing.T) {
	svc := NewCommentService(noopCommentRepo(), noopPostRepo(), noopNotificationService())
	_, err := svc.CreateComment(context.Background(), 1, 10, "   ")
	if err == nil {
		t.Fatal("expected validation error")
	}
	var appErr *models.AppError
	if !errors.As(err, &appErr) || appErr.Code != "VALIDATION_ERROR" {
		t.Fatalf("expected validation app error, got %#v", err)
	}
}

func TestCommentServiceCreateNotifiesPostAuthor(t *testing.T) {
	notificationRepo := noopNotificationRepo()
	var notified []*models.Notification
	notificationRepo.createFn = func(_ context.Context, n *models.Notification) error {
		notified = append(notified, n)
		return nil
	}
	notifications := NewNotificationService(notificationRepo, noopPostRepo(), noopCommentRepo(), nil)

	posts := noopPostRepo()
	posts.getByIDFn = func(ctx context.Context, id, _ uint) (*models.Post, error) {
		return &models.Post{ID: id, UserID: 2}, nil
	}

	comments := noopCommentRepo()
	comments.createFn = func(_ context.Context, c *models.Comment) error {
		c.ID = 5
		return nil
	}
	comments.getByIDFn = func(ctx context.Context, id uint) (*models.Comment, error) {
		return &models.Comment{ID: id, Content: "nice", PostID: 10, UserID: 1}, nil
	}

	svc := NewCommentService(comments, posts, notifications)
	comment, err := svc.CreateComment(context.Background(), 1, 10, "nice")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if comment.ID != 5 {
		t.Fatalf("expected created comment, got %+v", comment)
	}

	if len(notified) != 1 {
		t.Fatalf("expected one notification, got %d", len(notified))
	}
	n := notified[0]
	if n.RecipientID != 2 || n.ActorID != 1 || n.Verb != models.VerbCommented || n.TargetType != models.TargetTypeComment || n.TargetID != 5 {
		t.Fatalf("unexpected notification %+v", n)
	}
}

func TestCommentServiceCommentOwnPostNoNotification(t *testing.T) {
	notificationRepo := noopNotificationRepo()
	created := false
	notificationRepo.createFn = func(context.Context, *models.Notification) error {
		created = true
		return nil
	}
	notifications := NewNotificationService(notificationRepo, noopPostRepo(), noopCommentRepo(), nil)

	posts := noopPostRepo()
	posts.getByIDFn = func(ctx context.Context, id, _ uint) (*models.Post, error) {
		return &models.Post{ID: id, UserID: 1}, nil
	}

	svc := NewCommentService(noopCommentRepo(), posts, notifications)
	if _, err := svc.CreateComment(context.Background(), 1, 10, "talking to myself"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created {
		t.Fatal("expected no notification for commenting on your own post")
	}
}

func TestCommentServiceDeleteByPostAuthor(t *testing.T) {
	comments := noopCommentRepo()
	comments.getByIDFn = func(ctx context.Context, id uint) (*models.Comment, error) {
		return &models.Comment{ID: id, PostID: 10, UserID: 3}, nil
	}
	deleted := false
	comments.deleteFn = func(context.Context, uint) error {
		deleted = true
		return nil
	}

	posts := noopPostRepo()
	posts.getByIDFn = func(ctx context.Context, id, _ uint) (*models.Post, error) {
		return &models.Post{ID: id, UserID: 1}, nil
	}

	svc := NewCommentService(comments, posts, noopNotificationService())
	if err := svc.DeleteComment(context.Background(), 1, 5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !deleted {
		t.Fatal("expected the post author to be able to delete the comment")
	}
}

func TestCommentServiceDeleteForbiddenForStranger(t *testing.T) {
	comments := noopCommentRepo()
	comments.getByIDFn = func(ctx context.Context, id uint) (*models.Comment, error) {
		return &models.Comment{ID: id, PostID: 10, UserID: 3}, nil
	}

	posts := noopPostRepo()
	posts.getByIDFn = func(ctx context.Context, id, _ uint) (*models.Post, error) {
		return &models.Post{ID: id, UserID: 2}, nil
	}

	svc := NewCommentService(comments, posts, noopNotificationService())
	err := svc.DeleteComment(context.Background(), 7, 5)
	var appErr *models.AppError
	if !errors.As(err, &appErr) || appErr.Code != "FORBIDDEN" {
		t.Fatalf("expected forbidden app error, got %#v", err)
	}
}
