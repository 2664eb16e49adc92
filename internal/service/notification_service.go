// Package service contains the business logic layer.
package service

import (
	"context"

	"ripple/internal/middleware"
	"ripple/internal/models"
	"ripple/internal/repository"
)

// Publisher pushes a notification to a user's live channels. Implementations
// are best effort; delivery failures never fail the originating request.
type Publisher interface {
	PublishUser(ctx context.Context, userID uint, payload interface{})
}

// NotificationService provides notification business logic.
type NotificationService struct {
	notificationRepo repository.NotificationRepository
	postRepo         repository.PostRepository
	commentRepo      repository.CommentRepository
	publisher        Publisher
}

// NewNotificationService returns a new NotificationService. publisher may be
// nil when live delivery is disabled.
func NewNotificationService(
	notificationRepo repository.NotificationRepository,
	postRepo repository.PostRepository,
	commentRepo repository.CommentRepository,
	publisher Publisher,
) *NotificationService {
	return &NotificationService{
		notificationRepo: notificationRepo,
		postRepo:         postRepo,
		commentRepo:      commentRepo,
		publisher:        publisher,
	}
}

// Notify records that actor performed verb on the target, addressed to
// recipient. Actions on your own content produce no notification; callers do
// not need to check first. Returns nil when the notification was suppressed.
func (s *NotificationService) Notify(ctx context.Context, recipientID, actorID uint, verb, targetType string, targetID uint) (*models.Notification, error) {
	if recipientID == actorID {
		return nil, nil
	}

	n := &models.Notification{
		RecipientID: recipientID,
		ActorID:     actorID,
		Verb:        verb,
		TargetType:  targetType,
		TargetID:    targetID,
	}
	if err := s.notificationRepo.Create(ctx, n); err != nil {
		return nil, err
	}
	middleware.NotificationsCreated.WithLabelValues(verb).Inc()

	if s.publisher != nil {
		full, err := s.notificationRepo.GetByID(ctx, n.ID)
		if err == nil {
			s.publisher.PublishUser(ctx, recipientID, s.toView(ctx, full))
		} else {
			middleware.Logger.WarnContext(ctx, "Failed to load notification for push",
				"notification_id", n.ID, "error", err)
		}
	}

	return n, nil
}

// Retract removes the notification produced by a now-undone action, matching
// the full event tuple. Missing rows are fine; retraction is idempotent.
func (s *NotificationService) Retract(ctx context.Context, recipientID, actorID uint, verb, targetType string, targetID uint) error {
	_, err := s.notificationRepo.DeleteMatching(ctx, recipientID, actorID, verb, targetType, targetID)
	return err
}

// List returns the recipient's notifications, newest first, with targets
// resolved to display strings.
func (s *NotificationService) List(ctx context.Context, recipientID uint, unreadOnly bool, limit, offset int) ([]models.NotificationView, int64, error) {
	notifications, err := s.notificationRepo.ListForRecipient(ctx, recipientID, unreadOnly, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.notificationRepo.CountForRecipient(ctx, recipientID, unreadOnly)
	if err != nil {
		return nil, 0, err
	}

	views := make([]models.NotificationView, 0, len(notifications))
	for _, n := range notifications {
		views = append(views, s.toView(ctx, n))
	}
	return views, total, nil
}

// MarkRead marks a notification as read. Only the recipient can see or touch
// it; anyone else gets a not-found. Marking an already-read notification is
// a no-op.
func (s *NotificationService) MarkRead(ctx context.Context, userID, notificationID uint) (*models.Notification, error) {
	return s.setRead(ctx, userID, notificationID, true)
}

// MarkUnread marks a notification as unread, with the same visibility rules
// as MarkRead.
func (s *NotificationService) MarkUnread(ctx context.Context, userID, notificationID uint) (*models.Notification, error) {
	return s.setRead(ctx, userID, notificationID, false)
}

func (s *NotificationService) setRead(ctx context.Context, userID, notificationID uint, read bool) (*models.Notification, error) {
	n, err := s.notificationRepo.GetByID(ctx, notificationID)
	if err != nil {
		return nil, err
	}
	if n.RecipientID != userID {
		return nil, models.NewNotFoundError("Notification", notificationID)
	}

	if n.IsRead != read {
		if _, err := s.notificationRepo.SetRead(ctx, notificationID, read); err != nil {
			return nil, err
		}
		n.IsRead = read
	}
	return n, nil
}

// MarkAllRead marks every unread notification for the user as read and
// returns how many changed.
func (s *NotificationService) MarkAllRead(ctx context.Context, userID uint) (int64, error) {
	return s.notificationRepo.MarkAllRead(ctx, userID)
}

// UnreadCount returns the number of unread notifications for the user.
func (s *NotificationService) UnreadCount(ctx context.Context, userID uint) (int64, error) {
	return s.notificationRepo.CountForRecipient(ctx, userID, true)
}

// toView resolves the notification's target to a display string. A target
// that no longer exists degrades to a null target rather than an error.
func (s *NotificationService) toView(ctx context.Context, n *models.Notification) models.NotificationView {
	view := models.NotificationView{
		ID:        n.ID,
		Actor:     n.Actor,
		Verb:      n.Verb,
		IsRead:    n.IsRead,
		CreatedAt: n.CreatedAt,
	}

	if n.TargetType != "" && n.TargetID != 0 {
		if target := s.resolveTarget(ctx, n.TargetType, n.TargetID); target != "" {
			view.Target = &target
		}
	}
	return view
}

func (s *NotificationService) resolveTarget(ctx context.Context, targetType string, targetID uint) string {
	switch targetType {
	case models.TargetTypePost:
		post, err := s.postRepo.GetByID(ctx, targetID, 0)
		if err != nil {
			return ""
		}
		return post.Title
	case models.TargetTypeComment:
		comment, err := s.commentRepo.GetByID(ctx, targetID)
		if err != nil {
			return ""
		}
		return snippet(comment.Content, 80)
	default:
		middleware.Logger.WarnContext(ctx, "Unknown notification target type",
			"target_type", targetType, "target_id", targetID)
		return ""
	}
}

func snippet(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}
