package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/hanafi-dev/sentra-portal-api/internal/service"
	"github.com/hanafi-dev/sentra-portal-api/internal/utils"
)

// DirectoryHandler exposes the user directory.
type DirectoryHandler struct {
	service service.DirectoryService
	logger  zerolog.Logger
}

// NewDirectoryHandler constructs the handler.
func NewDirectoryHandler(service service.DirectoryService, logger zerolog.Logger) *DirectoryHandler {
	return &DirectoryHandler{
		service: service,
		logger:  logger.With().Str("component", "directory_handler").Logger(),
	}
}

// Register wires routes for the directory.
func (h *DirectoryHandler) Register(router fiber.Router) {
	router.Get("", h.list)
	router.Post("/:id/lock", h.lock)
	router.Post("/:id/unlock", h.unlock)
}

func (h *DirectoryHandler) list(c *fiber.Ctx) error {
	return utils.SendSuccess(c, "directory retrieved", h.service.List(c.UserContext()))
}

func (h *DirectoryHandler) lock(c *fiber.Ctx) error {
	return h.setLocked(c, true)
}

func (h *DirectoryHandler) unlock(c *fiber.Ctx) error {
	return h.setLocked(c, false)
}

func (h *DirectoryHandler) setLocked(c *fiber.Ctx, locked bool) error {
	err := h.service.SetLocked(c.UserContext(), c.Params("id"), locked)
	switch {
	case errors.Is(err, service.ErrNoSession):
		return utils.SendError(c, fiber.StatusUnauthorized, "sign in first")
	case errors.Is(err, service.ErrNotFound):
		return utils.SendError(c, fiber.StatusNotFound, "user not found")
	case err != nil:
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to update account")
	}

	return utils.SendSuccess(c, "account updated", nil)
}
