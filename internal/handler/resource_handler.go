package handler

import (
	"errors"
	"io"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/hanafi-dev/sentra-portal-api/internal/dto"
	"github.com/hanafi-dev/sentra-portal-api/internal/service"
	"github.com/hanafi-dev/sentra-portal-api/internal/utils"
)

const maxUploadBytes = 25 << 20

// ResourceHandler exposes the resource library.
type ResourceHandler struct {
	service service.ResourceService
	logger  zerolog.Logger
}

// NewResourceHandler constructs the handler.
func NewResourceHandler(service service.ResourceService, logger zerolog.Logger) *ResourceHandler {
	return &ResourceHandler{
		service: service,
		logger:  logger.With().Str("component", "resource_handler").Logger(),
	}
}

// Register wires routes for resources.
func (h *ResourceHandler) Register(router fiber.Router) {
	router.Get("", h.list)
	router.Post("/import", h.importCloud)
	router.Post("/upload", h.upload)
}

func (h *ResourceHandler) list(c *fiber.Ctx) error {
	return utils.SendSuccess(c, "resources retrieved", h.service.List(c.UserContext()))
}

func (h *ResourceHandler) importCloud(c *fiber.Ctx) error {
	var req dto.CloudImportRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	resource, err := h.service.ImportCloud(c.UserContext(), req)
	switch {
	case errors.Is(err, service.ErrNoSession):
		return utils.SendError(c, fiber.StatusUnauthorized, "sign in first")
	case err != nil:
		return utils.SendError(c, fiber.StatusBadRequest, "invalid import request")
	}

	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "resource imported", resource)
}

func (h *ResourceHandler) upload(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "file is required")
	}
	if fileHeader.Size > maxUploadBytes {
		return utils.SendError(c, fiber.StatusRequestEntityTooLarge, "file too large")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "failed to read file")
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "failed to read file")
	}

	resource, err := h.service.Upload(c.UserContext(), fileHeader.Filename, data)
	switch {
	case errors.Is(err, service.ErrNoSession):
		return utils.SendError(c, fiber.StatusUnauthorized, "sign in first")
	case err != nil:
		h.logger.Error().Err(err).Msg("upload failed")
		return utils.SendError(c, fiber.StatusInternalServerError, "upload failed")
	}

	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "resource uploaded", resource)
}
