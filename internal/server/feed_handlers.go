package server

import (
	"github.com/gofiber/fiber/v2"
)

// GetFeed handles GET /api/feed. An optional circleId query parameter
// narrows the feed to moments published under one circle.
func (s *Server) GetFeed(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	circleID, err := s.parseOptionalIDQuery(c, "circleId")
	if err != nil {
		return nil
	}

	moments, err := s.feedService.GetFeed(c.Context(), userID, circleID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(moments)
}
