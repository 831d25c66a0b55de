package handler

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/rs/zerolog"

	"github.com/hanafi-dev/sentra-portal-api/internal/notify"
	"github.com/hanafi-dev/sentra-portal-api/internal/observability"
	"github.com/hanafi-dev/sentra-portal-api/internal/store"
)

// EventsHandler streams store change events and notification pushes over a
// websocket so presentational consumers can re-render without polling.
type EventsHandler struct {
	store    *store.Store
	notifier *notify.Notifier
	logger   zerolog.Logger
}

type eventEnvelope struct {
	Kind         string               `json:"kind"`
	Change       *store.Event         `json:"change,omitempty"`
	Notification *notify.Notification `json:"notification,omitempty"`
}

// NewEventsHandler constructs the handler.
func NewEventsHandler(st *store.Store, notifier *notify.Notifier, logger zerolog.Logger) *EventsHandler {
	return &EventsHandler{
		store:    st,
		notifier: notifier,
		logger:   logger.With().Str("component", "events_handler").Logger(),
	}
}

// Register wires the websocket upgrade route.
func (h *EventsHandler) Register(router fiber.Router) {
	router.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	router.Get("/ws", websocket.New(h.handleConnection))
}

func (h *EventsHandler) handleConnection(conn *websocket.Conn) {
	collection := conn.Query("collection")
	if collection == "" {
		collection = store.CollectionAll
	}

	changes, cancelChanges := h.store.Subscribe(collection)
	notifications, cancelNotifications := h.notifier.Subscribe()
	defer cancelChanges()
	defer cancelNotifications()

	observability.EventSubscribers().Inc()
	defer observability.EventSubscribers().Dec()

	// Reader goroutine: the stream is one-way, we only need to notice the
	// peer going away.
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case <-closed:
			return
		case event, ok := <-changes:
			if !ok {
				return
			}
			if err := h.write(conn, eventEnvelope{Kind: "change", Change: &event}); err != nil {
				return
			}
		case notification, ok := <-notifications:
			if !ok {
				return
			}
			if err := h.write(conn, eventEnvelope{Kind: "notification", Notification: &notification}); err != nil {
				return
			}
		}
	}
}

func (h *EventsHandler) write(conn *websocket.Conn, envelope eventEnvelope) error {
	payload, err := json.Marshal(envelope)
	if err != nil {
		h.logger.Warn().Err(err).Msg("failed to encode event")
		return nil
	}
	return conn.WriteMessage(websocket.TextMessage, payload)
}
