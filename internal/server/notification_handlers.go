package server

import (
	"github.com/gofiber/fiber/v2"
)

// GetNotifications handles GET /api/notifications. The optional unread=true
// query param restricts the page to unread entries.
func (s *Server) GetNotifications(c *fiber.Ctx) error {
	unreadOnly := c.QueryBool("unread", false)
	p := parsePagination(c, 20)

	views, total, err := s.notificationService.List(
		c.Context(), currentUserID(c), unreadOnly, p.Limit, p.Offset)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"notifications": views,
		"total":         total,
	})
}

// GetUnreadCount handles GET /api/notifications/unread-count
func (s *Server) GetUnreadCount(c *fiber.Ctx) error {
	count, err := s.notificationService.UnreadCount(c.Context(), currentUserID(c))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"count": count})
}

// MarkAllNotificationsRead handles POST /api/notifications/read-all
func (s *Server) MarkAllNotificationsRead(c *fiber.Ctx) error {
	updated, err := s.notificationService.MarkAllRead(c.Context(), currentUserID(c))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"updated": updated})
}

// MarkNotificationRead handles POST /api/notifications/:id/read
func (s *Server) MarkNotificationRead(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	notification, err := s.notificationService.MarkRead(c.Context(), currentUserID(c), id)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(notification)
}

// MarkNotificationUnread handles POST /api/notifications/:id/unread
func (s *Server) MarkNotificationUnread(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	notification, err := s.notificationService.MarkUnread(c.Context(), currentUserID(c), id)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(notification)
}
