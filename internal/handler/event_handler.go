package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/cougarhub/cougarhub-backend/internal/models"
	"github.com/cougarhub/cougarhub-backend/internal/repository"
	"github.com/cougarhub/cougarhub-backend/internal/service"
	"github.com/cougarhub/cougarhub-backend/pkg/utils"
)

type EventHandler struct {
	eventService *service.EventService
	rsvpService  *service.RSVPService
	validator    *utils.Validator
}

func NewEventHandler(eventService *service.EventService, rsvpService *service.RSVPService, validator *utils.Validator) *EventHandler {
	return &EventHandler{
		eventService: eventService,
		rsvpService:  rsvpService,
		validator:    validator,
	}
}

// ListEvents handles GET /api/events?q=...&sort=date|rsvp.
func (h *EventHandler) ListEvents(c *fiber.Ctx) error {
	sortBy := c.Query("sort", service.EventSortDate)

	events, err := h.eventService.ListEvents(repository.EventFilter{Query: c.Query("q")}, sortBy)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(models.SuccessResponse(events, ""))
}

// GetEvent reports the viewer's RSVP state alongside the event; the route
// uses optional auth so anonymous viewers simply get rsvped=false.
func (h *EventHandler) GetEvent(c *fiber.Ctx) error {
	eventID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid event ID"))
	}

	detail, err := h.eventService.GetEventDetail(uint(eventID), currentUserID(c))
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(models.SuccessResponse(detail, ""))
}

func (h *EventHandler) CreateEvent(c *fiber.Ctx) error {
	var req models.EventRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	event, err := h.eventService.CreateEvent(currentUserID(c), req)
	if err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(models.SuccessResponse(event, "Event created"))
}

func (h *EventHandler) UpdateEvent(c *fiber.Ctx) error {
	eventID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid event ID"))
	}

	var req models.UpdateEventRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	event, err := h.eventService.UpdateEvent(currentUserID(c), uint(eventID), req)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(models.SuccessResponse(event, "Event updated"))
}

func (h *EventHandler) DeleteEvent(c *fiber.Ctx) error {
	eventID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid event ID"))
	}

	if err := h.eventService.DeleteEvent(currentUserID(c), uint(eventID)); err != nil {
		return fail(c, err)
	}

	return c.JSON(models.SuccessResponse(nil, "Event deleted"))
}

func (h *EventHandler) RSVP(c *fiber.Ctx) error {
	eventID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid event ID"))
	}

	resp, err := h.rsvpService.RSVP(currentUserID(c), uint(eventID))
	if err != nil {
		return fail(c, err)
	}

	message := "RSVP recorded"
	if !resp.Created {
		message = "You already RSVP'd to this event"
	}
	return c.JSON(models.SuccessResponse(resp, message))
}

func (h *EventHandler) CancelRSVP(c *fiber.Ctx) error {
	eventID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid event ID"))
	}

	resp, err := h.rsvpService.Cancel(currentUserID(c), uint(eventID))
	if err != nil {
		return fail(c, err)
	}

	message := "RSVP cancelled"
	if !resp.Removed {
		message = "You had not RSVP'd to this event"
	}
	return c.JSON(models.SuccessResponse(resp, message))
}
