package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/hanafi-dev/sentra-portal-api/internal/notify"
	"github.com/hanafi-dev/sentra-portal-api/internal/utils"
)

// NotificationHandler exposes the transient notification queue.
type NotificationHandler struct {
	notifier *notify.Notifier
	logger   zerolog.Logger
}

// NewNotificationHandler constructs the handler.
func NewNotificationHandler(notifier *notify.Notifier, logger zerolog.Logger) *NotificationHandler {
	return &NotificationHandler{
		notifier: notifier,
		logger:   logger.With().Str("component", "notification_handler").Logger(),
	}
}

// Register wires routes for notifications.
func (h *NotificationHandler) Register(router fiber.Router) {
	router.Get("", h.list)
	router.Delete("/:id", h.dismiss)
}

func (h *NotificationHandler) list(c *fiber.Ctx) error {
	return utils.SendSuccess(c, "notifications retrieved", h.notifier.Active())
}

func (h *NotificationHandler) dismiss(c *fiber.Ctx) error {
	h.notifier.Dismiss(c.Params("id"))
	return utils.SendSuccess(c, "notification dismissed", nil)
}
