package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/cougarhub/cougarhub-backend/internal/models"
	"github.com/cougarhub/cougarhub-backend/internal/service"
	"github.com/cougarhub/cougarhub-backend/pkg/utils"
)

type UserHandler struct {
	userService *service.UserService
	validator   *utils.Validator
}

func NewUserHandler(userService *service.UserService, validator *utils.Validator) *UserHandler {
	return &UserHandler{
		userService: userService,
		validator:   validator,
	}
}

func (h *UserHandler) GetProfile(c *fiber.Ctx) error {
	profile, err := h.userService.Profile(currentUserID(c), time.Now())
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(models.SuccessResponse(profile, ""))
}

func (h *UserHandler) UpdateProfile(c *fiber.Ctx) error {
	var req models.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	user, err := h.userService.UpdateProfile(currentUserID(c), req)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(models.SuccessResponse(user, "Profile updated"))
}

func (h *UserHandler) MyEvents(c *fiber.Ctx) error {
	resp, err := h.userService.MyEvents(currentUserID(c))
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(models.SuccessResponse(resp, ""))
}
