package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/hanafi-dev/sentra-portal-api/internal/store"
	"github.com/hanafi-dev/sentra-portal-api/internal/utils"
)

// AuditHandler exposes the audit trail, newest entry first.
type AuditHandler struct {
	store  *store.Store
	logger zerolog.Logger
}

// NewAuditHandler constructs the handler.
func NewAuditHandler(st *store.Store, logger zerolog.Logger) *AuditHandler {
	return &AuditHandler{
		store:  st,
		logger: logger.With().Str("component", "audit_handler").Logger(),
	}
}

// Register wires routes for the audit log.
func (h *AuditHandler) Register(router fiber.Router) {
	router.Get("", h.list)
}

func (h *AuditHandler) list(c *fiber.Ctx) error {
	entries := h.store.AuditLog()

	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			return utils.SendError(c, fiber.StatusBadRequest, "invalid limit")
		}
		if limit < len(entries) {
			entries = entries[:limit]
		}
	}

	return utils.SendSuccess(c, "audit log retrieved", entries)
}
