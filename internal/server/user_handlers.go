package server

import (
	"ripple/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetAllUsers handles GET /api/users
func (s *Server) GetAllUsers(c *fiber.Ctx) error {
	p := parsePagination(c, 20)

	users, err := s.userService.ListUsers(c.Context(), p.Limit, p.Offset)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"users": users})
}

// GetUserProfile handles GET /api/users/:id
func (s *Server) GetUserProfile(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	user, err := s.userService.GetProfile(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}

	resp := fiber.Map{"user": user}

	// Signed-in viewers also learn whether they follow this user.
	if viewerID := currentUserID(c); viewerID != 0 && viewerID != id {
		following, err := s.engagementService.IsFollowing(c.Context(), viewerID, id)
		if err != nil {
			return respondError(c, err)
		}
		resp["is_following"] = following
	}

	return c.JSON(resp)
}

// FollowUser handles POST /api/users/:id/follow
func (s *Server) FollowUser(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	res, err := s.engagementService.Follow(c.Context(), currentUserID(c), id)
	if err != nil {
		return respondError(c, err)
	}

	status := fiber.StatusOK
	if res.Created {
		status = fiber.StatusCreated
	}
	return c.Status(status).JSON(fiber.Map{
		"following": res.Following,
		"created":   res.Created,
	})
}

// UnfollowUser handles DELETE /api/users/:id/follow
func (s *Server) UnfollowUser(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	res, err := s.engagementService.Unfollow(c.Context(), currentUserID(c), id)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"following": res.Following,
		"removed":   res.Created,
	})
}

// GetFollowers handles GET /api/users/:id/followers
func (s *Server) GetFollowers(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	followers, err := s.engagementService.GetFollowers(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	if followers == nil {
		followers = []models.User{}
	}

	return c.JSON(fiber.Map{
		"followers": followers,
		"count":     len(followers),
	})
}

// GetFollowing handles GET /api/users/:id/following
func (s *Server) GetFollowing(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	following, err := s.engagementService.GetFollowing(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	if following == nil {
		following = []models.User{}
	}

	return c.JSON(fiber.Map{
		"following": following,
		"count":     len(following),
	})
}

// GetUserPosts handles GET /api/users/:id/posts
func (s *Server) GetUserPosts(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	p := parsePagination(c, 20)

	posts, err := s.postService.ListPostsByUser(c.Context(), id, p.Limit, p.Offset, currentUserID(c))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"posts": posts})
}
