package handler

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/cougarhub/cougarhub-backend/internal/models"
	"github.com/cougarhub/cougarhub-backend/pkg/storage"
	"github.com/cougarhub/cougarhub-backend/pkg/utils"
)

var allowedImageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// UploadHandler stores images (club logos/banners, event images, profile
// photos) in the object store and hands back the key. Entities persist
// only that key; serving the bytes is the storage collaborator's problem.
type UploadHandler struct {
	storage storage.ObjectStorage
}

func NewUploadHandler(store storage.ObjectStorage) *UploadHandler {
	return &UploadHandler{storage: store}
}

func (h *UploadHandler) UploadImage(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Missing file"))
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !allowedImageExts[ext] {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Unsupported image type"))
	}

	src, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Failed to read file"))
	}
	defer src.Close()

	key := fmt.Sprintf("uploads/%d_%s%s", currentUserID(c), utils.GenerateRandomString(12), ext)
	if err := h.storage.Upload(key, src); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Upload failed"))
	}

	return c.Status(fiber.StatusCreated).JSON(models.SuccessResponse(fiber.Map{"key": key}, "File uploaded"))
}
