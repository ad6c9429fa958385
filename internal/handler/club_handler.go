package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/cougarhub/cougarhub-backend/internal/models"
	"github.com/cougarhub/cougarhub-backend/internal/repository"
	"github.com/cougarhub/cougarhub-backend/internal/service"
	"github.com/cougarhub/cougarhub-backend/pkg/utils"
)

type ClubHandler struct {
	clubService *service.ClubService
	validator   *utils.Validator
}

func NewClubHandler(clubService *service.ClubService, validator *utils.Validator) *ClubHandler {
	return &ClubHandler{
		clubService: clubService,
		validator:   validator,
	}
}

// ListClubs handles GET /api/clubs?q=...&my=1. The my filter only applies
// to authenticated requests; anonymous callers get the full directory.
func (h *ClubHandler) ListClubs(c *fiber.Ctx) error {
	filter := repository.ClubFilter{Query: c.Query("q")}
	if c.Query("my") == "1" {
		filter.OwnerID = currentUserID(c)
	}

	clubs, err := h.clubService.ListClubs(filter)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(models.SuccessResponse(clubs, ""))
}

func (h *ClubHandler) GetClub(c *fiber.Ctx) error {
	clubID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid club ID"))
	}

	club, err := h.clubService.GetClub(uint(clubID))
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(models.SuccessResponse(club, ""))
}

func (h *ClubHandler) ListClubEvents(c *fiber.Ctx) error {
	clubID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid club ID"))
	}

	events, err := h.clubService.ListClubEvents(uint(clubID))
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(models.SuccessResponse(events, ""))
}

func (h *ClubHandler) CreateClub(c *fiber.Ctx) error {
	var req models.ClubRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	club, err := h.clubService.CreateClub(currentUserID(c), req)
	if err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(models.SuccessResponse(club, "Club created"))
}

func (h *ClubHandler) UpdateClub(c *fiber.Ctx) error {
	clubID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid club ID"))
	}

	var req models.UpdateClubRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	club, err := h.clubService.UpdateClub(currentUserID(c), uint(clubID), req)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(models.SuccessResponse(club, "Club updated"))
}

func (h *ClubHandler) DeleteClub(c *fiber.Ctx) error {
	clubID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid club ID"))
	}

	if err := h.clubService.DeleteClub(currentUserID(c), uint(clubID)); err != nil {
		return fail(c, err)
	}

	return c.JSON(models.SuccessResponse(nil, "Club and its events were deleted"))
}
