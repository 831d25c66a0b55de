package handler

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/hanafi-dev/sentra-portal-api/internal/dto"
	"github.com/hanafi-dev/sentra-portal-api/internal/service"
	"github.com/hanafi-dev/sentra-portal-api/internal/utils"
)

// AnnouncementHandler exposes the announcement feed and reactions.
type AnnouncementHandler struct {
	service   service.AnnouncementService
	validator *validator.Validate
	logger    zerolog.Logger
}

// NewAnnouncementHandler constructs the handler.
func NewAnnouncementHandler(service service.AnnouncementService, validate *validator.Validate, logger zerolog.Logger) *AnnouncementHandler {
	return &AnnouncementHandler{
		service:   service,
		validator: validate,
		logger:    logger.With().Str("component", "announcement_handler").Logger(),
	}
}

// Register wires routes for announcements.
func (h *AnnouncementHandler) Register(router fiber.Router) {
	router.Get("", h.list)
	router.Post("", h.create)
	router.Post("/:id/reactions", h.toggleReaction)
}

func (h *AnnouncementHandler) list(c *fiber.Ctx) error {
	return utils.SendSuccess(c, "announcements retrieved", h.service.List(c.UserContext()))
}

func (h *AnnouncementHandler) create(c *fiber.Ctx) error {
	var req dto.AnnouncementCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	announcement, err := h.service.Create(c.UserContext(), req)
	switch {
	case errors.Is(err, service.ErrNoSession):
		return utils.SendError(c, fiber.StatusUnauthorized, "sign in first")
	case err != nil:
		return utils.SendError(c, fiber.StatusBadRequest, "invalid announcement")
	}

	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "announcement published", announcement)
}

func (h *AnnouncementHandler) toggleReaction(c *fiber.Ctx) error {
	var req dto.ReactionRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := h.validator.Struct(req); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "emoji is required")
	}

	if err := h.service.ToggleReaction(c.UserContext(), c.Params("id"), req.Emoji); err != nil {
		if errors.Is(err, service.ErrNoSession) {
			return utils.SendError(c, fiber.StatusUnauthorized, "sign in first")
		}
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to toggle reaction")
	}

	return utils.SendSuccess(c, "reaction toggled", nil)
}
