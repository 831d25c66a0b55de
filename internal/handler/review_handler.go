package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/hanafi-dev/sentra-portal-api/internal/service"
	"github.com/hanafi-dev/sentra-portal-api/internal/utils"
)

// ReviewHandler exposes course files and the AI review trigger.
type ReviewHandler struct {
	service service.ReviewService
	logger  zerolog.Logger
}

// NewReviewHandler constructs the handler.
func NewReviewHandler(service service.ReviewService, logger zerolog.Logger) *ReviewHandler {
	return &ReviewHandler{
		service: service,
		logger:  logger.With().Str("component", "review_handler").Logger(),
	}
}

// Register wires routes for course files.
func (h *ReviewHandler) Register(router fiber.Router) {
	router.Get("", h.list)
	router.Get("/:id/review", h.reviewStatus)
	router.Post("/:id/review", h.requestReview)
}

func (h *ReviewHandler) list(c *fiber.Ctx) error {
	return utils.SendSuccess(c, "course files retrieved", h.service.List(c.UserContext()))
}

func (h *ReviewHandler) reviewStatus(c *fiber.Ctx) error {
	id := c.Params("id")
	for _, file := range h.service.List(c.UserContext()) {
		if file.ID == id {
			return utils.SendSuccess(c, "review status retrieved", file.AIReview)
		}
	}
	return utils.SendError(c, fiber.StatusNotFound, "course file not found")
}

// requestReview is accepted regardless of outcome: the review task reports
// its progress through the store and the notification queue, not through
// this response.
func (h *ReviewHandler) requestReview(c *fiber.Ctx) error {
	h.service.RequestReview(c.UserContext(), c.Params("id"))
	return utils.SendSuccessWithStatus(c, fiber.StatusAccepted, "review requested", nil)
}
