package observability

import (
	"sync"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	registerOnce           sync.Once
	loginAttemptsTotal     *prometheus.CounterVec
	notificationsPushed    *prometheus.CounterVec
	reviewRequestsTotal    *prometheus.CounterVec
	eventSubscribersActive prometheus.Gauge
	storeMutationsTotal    *prometheus.CounterVec
	httpRequestsTotal      *prometheus.CounterVec
	httpLatencySeconds     *prometheus.HistogramVec
)

// RegisterMetrics initialises the Prometheus collectors used by the portal.
func RegisterMetrics() {
	registerOnce.Do(func() {
		loginAttemptsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "sentra_login_attempts_total",
			Help: "Total number of login attempts by outcome.",
		}, []string{"outcome"})

		notificationsPushed = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "sentra_notifications_pushed_total",
			Help: "Total number of notifications pushed to the transient queue.",
		}, []string{"type"})

		reviewRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "sentra_review_requests_total",
			Help: "Total number of course file review requests by result.",
		}, []string{"result"})

		eventSubscribersActive = prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "sentra_event_subscribers_active",
			Help: "Number of websocket clients subscribed to store events.",
		})

		storeMutationsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "sentra_store_mutations_total",
			Help: "Total number of store mutations by collection.",
		}, []string{"collection"})

		httpRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "sentra_http_requests_total",
			Help: "Total number of HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"})

		httpLatencySeconds = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "sentra_http_request_duration_seconds",
			Help:    "HTTP request latency by method and route.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"})

		prometheus.MustRegister(
			loginAttemptsTotal,
			notificationsPushed,
			reviewRequestsTotal,
			eventSubscribersActive,
			storeMutationsTotal,
			httpRequestsTotal,
			httpLatencySeconds,
		)
	})
}

// LoginAttempts exposes the login attempt counter.
func LoginAttempts() *prometheus.CounterVec {
	RegisterMetrics()
	return loginAttemptsTotal
}

// NotificationsPushed exposes the notification counter.
func NotificationsPushed() *prometheus.CounterVec {
	RegisterMetrics()
	return notificationsPushed
}

// ReviewRequests exposes the review request counter.
func ReviewRequests() *prometheus.CounterVec {
	RegisterMetrics()
	return reviewRequestsTotal
}

// EventSubscribers exposes the websocket subscriber gauge.
func EventSubscribers() prometheus.Gauge {
	RegisterMetrics()
	return eventSubscribersActive
}

// StoreMutations exposes the per-collection mutation counter.
func StoreMutations() *prometheus.CounterVec {
	RegisterMetrics()
	return storeMutationsTotal
}

// HTTPRequests exposes the per-route request counter.
func HTTPRequests() *prometheus.CounterVec {
	RegisterMetrics()
	return httpRequestsTotal
}

// HTTPLatency exposes the per-route latency histogram.
func HTTPLatency() *prometheus.HistogramVec {
	RegisterMetrics()
	return httpLatencySeconds
}

// MetricsHandler adapts the Prometheus scrape endpoint to a Fiber route,
// registering the collectors on first use.
func MetricsHandler() fiber.Handler {
	RegisterMetrics()
	return adaptor.HTTPHandler(promhttp.Handler())
}
