package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/cougarhub/cougarhub-backend/internal/models"
	"github.com/cougarhub/cougarhub-backend/internal/service"
)

type DiscoveryHandler struct {
	discoveryService *service.DiscoveryService
}

func NewDiscoveryHandler(discoveryService *service.DiscoveryService) *DiscoveryHandler {
	return &DiscoveryHandler{discoveryService: discoveryService}
}

func (h *DiscoveryHandler) Dashboard(c *fiber.Ctx) error {
	dashboard, err := h.discoveryService.Dashboard(time.Now())
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(models.SuccessResponse(dashboard, ""))
}
