package server

import (
	"strings"

	"devconnector/internal/models"

	"github.com/gofiber/fiber/v2"
)

// ProfileRequest is the payload for creating or updating a profile.
type ProfileRequest struct {
	Status   string `json:"status"`
	Company  string `json:"company"`
	Website  string `json:"website"`
	Location string `json:"location"`
	Skills   string `json:"skills"`
	Bio      string `json:"bio"`
}

// UpsertMyProfile handles POST /api/profile. A user has at most one profile;
// posting again replaces the previous values.
func (s *Server) UpsertMyProfile(c *fiber.Ctx) error {
	var req ProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return respondErr(c, models.NewValidationError("Invalid request body"))
	}

	if strings.TrimSpace(req.Status) == "" {
		return respondErr(c, models.NewValidationError("status is required"))
	}
	if strings.TrimSpace(req.Skills) == "" {
		return respondErr(c, models.NewValidationError("skills is required"))
	}

	profile := &models.Profile{
		UserID:   currentUserID(c),
		Status:   req.Status,
		Company:  req.Company,
		Website:  req.Website,
		Location: req.Location,
		Skills:   req.Skills,
		Bio:      req.Bio,
	}
	if err := s.profileRepo.Upsert(c.UserContext(), profile); err != nil {
		return respondErr(c, err)
	}

	return c.JSON(profile)
}

// GetMyProfile handles GET /api/profile/me.
func (s *Server) GetMyProfile(c *fiber.Ctx) error {
	profile, err := s.profileRepo.GetByUserID(c.UserContext(), currentUserID(c))
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(profile)
}
