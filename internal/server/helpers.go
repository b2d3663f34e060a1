package server

import (
	"errors"
	"strconv"

	"devconnector/internal/models"

	"github.com/gofiber/fiber/v2"
)

// currentUserID returns the authenticated user ID set by AuthRequired.
func currentUserID(c *fiber.Ctx) uint {
	if id, ok := c.Locals("userID").(uint); ok {
		return id
	}
	return 0
}

// parseID parses a numeric route parameter. A malformed identifier is
// indistinguishable from a missing resource to clients, so it maps to the
// same not-found response as an absent record rather than a validation error.
// It writes that response itself and reports false; callers must return
// immediately without touching the response again.
func parseID(c *fiber.Ctx, param, resource string) (uint, bool) {
	raw := c.Params(param)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		_ = models.RespondWithError(c, fiber.StatusNotFound,
			models.NewNotFoundError(resource))
		return 0, false
	}
	return uint(id), true
}

// statusForError maps application error codes to HTTP statuses. Conflict-style
// rejections (duplicate email, double like) surface as 400s to clients.
func statusForError(err error) int {
	var appErr *models.AppError
	if errors.As(err, &appErr) {
		switch appErr.Code {
		case "NOT_FOUND":
			return fiber.StatusNotFound
		case "VALIDATION_ERROR", "CONFLICT":
			return fiber.StatusBadRequest
		case "UNAUTHORIZED":
			return fiber.StatusUnauthorized
		}
	}
	return fiber.StatusInternalServerError
}

// respondErr writes err with the status derived from its error code.
func respondErr(c *fiber.Ctx, err error) error {
	return models.RespondWithError(c, statusForError(err), err)
}
