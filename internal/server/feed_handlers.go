package server

import (
	"github.com/gofiber/fiber/v2"
)

// GetFeed handles GET /api/feed. The feed is the newest-first stream of posts
// by users the caller follows, paginated with page/page_size query params.
func (s *Server) GetFeed(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	pageSize := c.QueryInt("page_size", 10)

	feed, err := s.feedService.GetFeed(c.Context(), currentUserID(c), page, pageSize)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(feed)
}
