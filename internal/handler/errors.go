package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/cougarhub/cougarhub-backend/internal/apperrors"
	"github.com/cougarhub/cougarhub-backend/internal/models"
)

// fail maps service errors onto HTTP statuses: not-found 404, policy
// denials 403, duplicate email and other uniqueness conflicts 409, bad
// credentials 401, everything else 500 with a generic message.
func fail(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse(err.Error()))
	case errors.Is(err, apperrors.ErrUnauthorized):
		return c.Status(fiber.StatusForbidden).JSON(models.ErrorResponse(err.Error()))
	case errors.Is(err, apperrors.ErrDuplicateEmail), errors.Is(err, apperrors.ErrConstraintViolation):
		return c.Status(fiber.StatusConflict).JSON(models.ErrorResponse(err.Error()))
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse(err.Error()))
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("something went wrong"))
	}
}

// currentUserID pulls the authenticated user's ID out of the request
// context. Zero means anonymous (possible on optional-auth routes).
func currentUserID(c *fiber.Ctx) uint {
	if id, ok := c.Locals("userID").(uint); ok {
		return id
	}
	return 0
}
