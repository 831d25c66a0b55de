package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/hanafi-dev/sentra-portal-api/internal/dto"
	"github.com/hanafi-dev/sentra-portal-api/internal/service"
	"github.com/hanafi-dev/sentra-portal-api/internal/utils"
)

// SettingsHandler exposes the settings singleton.
type SettingsHandler struct {
	service service.SettingsService
	logger  zerolog.Logger
}

// NewSettingsHandler constructs the handler.
func NewSettingsHandler(service service.SettingsService, logger zerolog.Logger) *SettingsHandler {
	return &SettingsHandler{
		service: service,
		logger:  logger.With().Str("component", "settings_handler").Logger(),
	}
}

// Register wires routes for settings.
func (h *SettingsHandler) Register(router fiber.Router) {
	router.Get("", h.get)
	router.Put("", h.update)
}

func (h *SettingsHandler) get(c *fiber.Ctx) error {
	return utils.SendSuccess(c, "settings retrieved", h.service.Get(c.UserContext()))
}

func (h *SettingsHandler) update(c *fiber.Ctx) error {
	var req dto.SettingsUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	settings, err := h.service.Update(c.UserContext(), req)
	switch {
	case errors.Is(err, service.ErrNoSession):
		return utils.SendError(c, fiber.StatusUnauthorized, "sign in first")
	case err != nil:
		return utils.SendError(c, fiber.StatusBadRequest, "invalid settings")
	}

	return utils.SendSuccess(c, "settings saved", settings)
}
