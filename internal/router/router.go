package router

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/hanafi-dev/sentra-portal-api/internal/config"
	"github.com/hanafi-dev/sentra-portal-api/internal/handler"
	"github.com/hanafi-dev/sentra-portal-api/internal/middleware"
	"github.com/hanafi-dev/sentra-portal-api/internal/observability"
)

// Dependencies groups router dependencies for registration.
type Dependencies struct {
	AuthHandler         *handler.AuthHandler
	AnnouncementHandler *handler.AnnouncementHandler
	AlertHandler        *handler.AlertHandler
	ResourceHandler     *handler.ResourceHandler
	ReviewHandler       *handler.ReviewHandler
	AuditHandler        *handler.AuditHandler
	TimetableHandler    *handler.TimetableHandler
	SettingsHandler     *handler.SettingsHandler
	DirectoryHandler    *handler.DirectoryHandler
	NotificationHandler *handler.NotificationHandler
	EventsHandler       *handler.EventsHandler
	JWTMiddleware       fiber.Handler
}

// Register wires the HTTP routes into the fiber application.
func Register(app *fiber.App, cfg config.Config, deps Dependencies) {
	api := app.Group("/api/v1", func(c *fiber.Ctx) error {
		c.Set("X-Application", cfg.AppName)
		return c.Next()
	})

	api.Get("/health", handler.HealthCheck(cfg))
	api.Get("/metrics", observability.MetricsHandler())

	jwtMiddleware := deps.JWTMiddleware
	if jwtMiddleware == nil {
		jwtMiddleware = func(c *fiber.Ctx) error { return c.Next() }
	}

	if deps.AuthHandler != nil {
		auth := api.Group("/auth", middleware.RateLimit("auth", 20, time.Minute))
		deps.AuthHandler.Register(auth)
	}

	if deps.AnnouncementHandler != nil {
		deps.AnnouncementHandler.Register(api.Group("/announcements", jwtMiddleware))
	}

	if deps.AlertHandler != nil {
		alerts := api.Group("/alerts", jwtMiddleware, middleware.RequireRole("admin", "principal"))
		deps.AlertHandler.Register(alerts)
	}

	if deps.ResourceHandler != nil {
		deps.ResourceHandler.Register(api.Group("/resources", jwtMiddleware))
	}

	if deps.ReviewHandler != nil {
		courseFiles := api.Group("/course-files", jwtMiddleware, middleware.RequireRole("admin", "principal", "hod", "faculty"))
		deps.ReviewHandler.Register(courseFiles)
	}

	if deps.AuditHandler != nil {
		audit := api.Group("/audit", jwtMiddleware, middleware.RequireRole("admin", "principal"))
		deps.AuditHandler.Register(audit)
	}

	if deps.TimetableHandler != nil {
		deps.TimetableHandler.Register(api.Group("/timetable", jwtMiddleware))
	}

	if deps.SettingsHandler != nil {
		deps.SettingsHandler.Register(api.Group("/settings", jwtMiddleware))
	}

	if deps.DirectoryHandler != nil {
		deps.DirectoryHandler.Register(api.Group("/directory", jwtMiddleware))
	}

	if deps.NotificationHandler != nil {
		deps.NotificationHandler.Register(api.Group("/notifications"))
	}

	if deps.EventsHandler != nil {
		deps.EventsHandler.Register(api.Group("/events"))
	}
}
