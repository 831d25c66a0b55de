package notify

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
	"github.com/nats-io/nats.go"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/hanafi-dev/sentra-portal-api/internal/observability"
)

// DefaultTTL is how long a notification stays queued before it expires.
const DefaultTTL = 5 * time.Second

const streamBufferSize = 16

// Type classifies a notification for presentation.
type Type string

const (
	TypeSuccess Type = "success"
	TypeError   Type = "error"
	TypeWarning Type = "warning"
	TypeInfo    Type = "info"
)

// Notification is an ephemeral user-facing message. It lives only in process
// memory and removes itself after the queue TTL.
type Notification struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	Type      Type      `json:"type"`
	CreatedAt time.Time `json:"created_at"`
}

// Config wires the optional fan-out targets. Both are nil-safe: with neither
// configured the queue is purely local, which is the common deployment.
type Config struct {
	TTL     time.Duration
	Redis   *redis.Client
	Channel string
	NATS    *nats.Conn
	Subject string
}

// Notifier is the transient notification queue. Each push schedules exactly
// one deferred removal; dismissal is idempotent. Ordering is insertion order,
// oldest first, with no deduplication of identical messages.
type Notifier struct {
	mu          sync.Mutex
	ttl         time.Duration
	active      []Notification
	timers      map[string]*time.Timer
	subscribers map[chan Notification]struct{}
	sanitizer   *bluemonday.Policy
	redis       *redis.Client
	channel     string
	nats        *nats.Conn
	subject     string
	logger      zerolog.Logger
}

// New constructs a notifier with the given fan-out configuration.
func New(cfg Config, logger zerolog.Logger) *Notifier {
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	return &Notifier{
		ttl:         ttl,
		timers:      make(map[string]*time.Timer),
		subscribers: make(map[chan Notification]struct{}),
		sanitizer:   bluemonday.StrictPolicy(),
		redis:       cfg.Redis,
		channel:     cfg.Channel,
		nats:        cfg.NATS,
		subject:     cfg.Subject,
		logger:      logger.With().Str("component", "notifier").Logger(),
	}
}

// Push queues a message and returns its id. The message is stripped of any
// markup before queueing. Removal is scheduled after the queue TTL.
func (n *Notifier) Push(message string, kind Type) string {
	notification := Notification{
		ID:        uuid.NewString(),
		Message:   strings.TrimSpace(n.sanitizer.Sanitize(message)),
		Type:      kind,
		CreatedAt: time.Now().UTC(),
	}

	n.mu.Lock()
	n.active = append(n.active, notification)
	n.timers[notification.ID] = time.AfterFunc(n.ttl, func() {
		n.Dismiss(notification.ID)
	})
	n.mu.Unlock()

	observability.NotificationsPushed().WithLabelValues(string(kind)).Inc()

	n.broadcast(notification)
	n.publish(notification)

	return notification.ID
}

// Dismiss removes the notification with the given id. Dismissing an id that
// already expired or never existed is a no-op.
func (n *Notifier) Dismiss(id string) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if timer, ok := n.timers[id]; ok {
		timer.Stop()
		delete(n.timers, id)
	}

	for i, notification := range n.active {
		if notification.ID == id {
			n.active = append(n.active[:i], n.active[i+1:]...)
			return
		}
	}
}

// Active returns the queued notifications, oldest first.
func (n *Notifier) Active() []Notification {
	n.mu.Lock()
	defer n.mu.Unlock()

	out := make([]Notification, len(n.active))
	copy(out, n.active)
	return out
}

// Subscribe streams every pushed notification until cancel is called.
func (n *Notifier) Subscribe() (<-chan Notification, func()) {
	channel := make(chan Notification, streamBufferSize)

	n.mu.Lock()
	n.subscribers[channel] = struct{}{}
	n.mu.Unlock()

	cancel := func() {
		n.mu.Lock()
		if _, ok := n.subscribers[channel]; ok {
			delete(n.subscribers, channel)
			close(channel)
		}
		n.mu.Unlock()
	}

	return channel, cancel
}

func (n *Notifier) broadcast(notification Notification) {
	n.mu.Lock()
	defer n.mu.Unlock()

	for channel := range n.subscribers {
		select {
		case channel <- notification:
		default:
		}
	}
}

// publish fans the notification out to Redis and NATS when configured, so
// other portal nodes can mirror the queue. Failures are logged, never
// surfaced: the local queue is authoritative.
func (n *Notifier) publish(notification Notification) {
	if n.redis == nil && n.nats == nil {
		return
	}

	payload, err := json.Marshal(notification)
	if err != nil {
		n.logger.Warn().Err(err).Msg("failed to encode notification for fan-out")
		return
	}

	if n.redis != nil && n.channel != "" {
		if err := n.redis.Publish(context.Background(), n.channel, payload).Err(); err != nil {
			n.logger.Warn().Err(err).Msg("failed to publish notification to redis")
		}
	}

	if n.nats != nil && n.subject != "" {
		if err := n.nats.Publish(n.subject, payload); err != nil {
			n.logger.Warn().Err(err).Msg("failed to publish notification to nats")
		}
	}
}
