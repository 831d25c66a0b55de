package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/hanafi-dev/sentra-portal-api/internal/models"
	"github.com/hanafi-dev/sentra-portal-api/internal/service"
	"github.com/hanafi-dev/sentra-portal-api/internal/utils"
)

// TimetableHandler exposes the weekly timetable grid.
type TimetableHandler struct {
	service service.TimetableService
	logger  zerolog.Logger
}

// NewTimetableHandler constructs the handler.
func NewTimetableHandler(service service.TimetableService, logger zerolog.Logger) *TimetableHandler {
	return &TimetableHandler{
		service: service,
		logger:  logger.With().Str("component", "timetable_handler").Logger(),
	}
}

// Register wires routes for the timetable.
func (h *TimetableHandler) Register(router fiber.Router) {
	router.Get("", h.list)
	router.Put("", h.replace)
}

func (h *TimetableHandler) list(c *fiber.Ctx) error {
	return utils.SendSuccess(c, "timetable retrieved", h.service.List(c.UserContext()))
}

func (h *TimetableHandler) replace(c *fiber.Ctx) error {
	var entries []models.TimetableEntry
	if err := c.BodyParser(&entries); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	if err := h.service.Replace(c.UserContext(), entries); err != nil {
		if errors.Is(err, service.ErrNoSession) {
			return utils.SendError(c, fiber.StatusUnauthorized, "sign in first")
		}
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to save timetable")
	}

	return utils.SendSuccess(c, "timetable saved", nil)
}
