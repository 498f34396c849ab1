package server

import (
	"constella/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetMyProfile handles GET /api/profiles/me
func (s *Server) GetMyProfile(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	profile, err := s.profileService.GetProfile(c.Context(), userID)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusNotFound, err)
	}

	return c.JSON(profile)
}

// GetProfile handles GET /api/profiles/:userId
func (s *Server) GetProfile(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}

	profile, err := s.profileService.GetProfile(c.Context(), userID)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusNotFound, err)
	}

	return c.JSON(profile)
}

// SearchProfiles handles GET /api/profiles/search?q=...
func (s *Server) SearchProfiles(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	profiles, err := s.profileService.SearchProfiles(c.Context(), userID, c.Query("q"))
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return c.JSON(profiles)
}
