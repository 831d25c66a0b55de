package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/hanafi-dev/sentra-portal-api/internal/service"
	"github.com/hanafi-dev/sentra-portal-api/internal/utils"
)

// AlertHandler exposes the security alert feed and the resolve action.
type AlertHandler struct {
	service service.AlertService
	logger  zerolog.Logger
}

// NewAlertHandler constructs the handler.
func NewAlertHandler(service service.AlertService, logger zerolog.Logger) *AlertHandler {
	return &AlertHandler{
		service: service,
		logger:  logger.With().Str("component", "alert_handler").Logger(),
	}
}

// Register wires routes for alerts.
func (h *AlertHandler) Register(router fiber.Router) {
	router.Get("", h.list)
	router.Post("/:id/resolve", h.resolve)
}

func (h *AlertHandler) list(c *fiber.Ctx) error {
	return utils.SendSuccess(c, "alerts retrieved", h.service.List(c.UserContext()))
}

func (h *AlertHandler) resolve(c *fiber.Ctx) error {
	h.service.Resolve(c.UserContext(), c.Params("id"))
	return utils.SendSuccess(c, "alert resolved", nil)
}
