package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog"

	"github.com/hanafi-dev/sentra-portal-api/internal/config"
	"github.com/hanafi-dev/sentra-portal-api/internal/database"
	"github.com/hanafi-dev/sentra-portal-api/internal/handler"
	"github.com/hanafi-dev/sentra-portal-api/internal/kvstore"
	"github.com/hanafi-dev/sentra-portal-api/internal/middleware"
	"github.com/hanafi-dev/sentra-portal-api/internal/notify"
	"github.com/hanafi-dev/sentra-portal-api/internal/router"
	"github.com/hanafi-dev/sentra-portal-api/internal/service"
	"github.com/hanafi-dev/sentra-portal-api/internal/store"
	"github.com/hanafi-dev/sentra-portal-api/pkg/ai"
	cloud "github.com/hanafi-dev/sentra-portal-api/pkg/cloudinary"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	ctx := context.Background()

	kv, err := kvstore.Open(ctx, kvstore.Options{
		Backend:     cfg.KVBackend,
		RedisURL:    cfg.RedisURL,
		DatabaseURL: cfg.DatabaseURL,
		SQLitePath:  cfg.SQLitePath,
		Prefix:      cfg.KVPrefix,
	})
	if err != nil {
		log.Fatalf("failed to open snapshot store: %v", err)
	}

	st := store.New(ctx, kv, logger)
	st.InitializeIfEmpty(ctx)

	notifier := notify.New(buildNotifyConfig(ctx, cfg, logger), logger)

	validate := validator.New(validator.WithRequiredStructEnabled())
	session := service.NewSession()

	var reviewer ai.Reviewer
	if cfg.OpenAIAPIKey != "" && cfg.AIProvider == "openai" {
		openaiReviewer, err := ai.NewOpenAIReviewer(ai.OpenAIConfig{
			APIKey: cfg.OpenAIAPIKey,
			Model:  cfg.OpenAIModel,
			Logger: logger,
		})
		if err != nil {
			log.Fatalf("failed to create reviewer: %v", err)
		}
		reviewer = openaiReviewer
	} else if cfg.AnthropicAPIKey != "" && cfg.AIProvider == "anthropic" {
		anthropicReviewer, err := ai.NewAnthropicReviewer(ai.AnthropicConfig{APIKey: cfg.AnthropicAPIKey})
		if err != nil {
			log.Fatalf("failed to create reviewer: %v", err)
		}
		reviewer = anthropicReviewer
	} else {
		logger.Warn().Msg("no review provider configured, course file reviews disabled")
	}

	var uploader service.Uploader
	if cfg.CloudinaryCloudName != "" {
		cloudService, err := cloud.New(cloud.Config{
			CloudName: cfg.CloudinaryCloudName,
			APIKey:    cfg.CloudinaryAPIKey,
			APISecret: cfg.CloudinaryAPISecret,
			Folder:    cfg.CloudinaryUploadFolder,
		}, logger)
		if err != nil {
			log.Fatalf("failed to create cloudinary client: %v", err)
		}
		uploader = cloudService
	}

	authService := service.NewAuthService(st, session, notifier, validate, logger)
	announcementService := service.NewAnnouncementService(st, session, notifier, validate, logger)
	alertService := service.NewAlertService(st, session, notifier, logger)
	resourceService := service.NewResourceService(st, session, notifier, uploader, validate, logger)
	reviewService := service.NewReviewService(st, notifier, reviewer, cfg.ReviewTimeout, logger)
	timetableService := service.NewTimetableService(st, session, notifier, logger)
	settingsService := service.NewSettingsService(st, session, notifier, validate, logger)
	directoryService := service.NewDirectoryService(st, session, notifier, logger)

	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ServerHeader: cfg.AppName,
	})

	middleware.Register(app, logger)
	router.Register(app, cfg, router.Dependencies{
		AuthHandler:         handler.NewAuthHandler(authService, validate, cfg.JWTSecret, logger),
		AnnouncementHandler: handler.NewAnnouncementHandler(announcementService, validate, logger),
		AlertHandler:        handler.NewAlertHandler(alertService, logger),
		ResourceHandler:     handler.NewResourceHandler(resourceService, logger),
		ReviewHandler:       handler.NewReviewHandler(reviewService, logger),
		AuditHandler:        handler.NewAuditHandler(st, logger),
		TimetableHandler:    handler.NewTimetableHandler(timetableService, logger),
		SettingsHandler:     handler.NewSettingsHandler(settingsService, logger),
		DirectoryHandler:    handler.NewDirectoryHandler(directoryService, logger),
		NotificationHandler: handler.NewNotificationHandler(notifier, logger),
		EventsHandler:       handler.NewEventsHandler(st, notifier, logger),
		JWTMiddleware:       middleware.JWTProtected(cfg.JWTSecret),
	})

	go func() {
		if err := app.Listen(cfg.HTTPAddress()); err != nil {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	waitForShutdown(app)
}

// buildNotifyConfig dials the optional fan-out targets. Either can be absent;
// the notifier stays purely local in that case.
func buildNotifyConfig(ctx context.Context, cfg config.Config, logger zerolog.Logger) notify.Config {
	notifyCfg := notify.Config{
		TTL:     cfg.NotificationTTL,
		Channel: cfg.NotifyChannel,
		Subject: cfg.NotifyChannel,
	}

	if cfg.RedisURL != "" {
		client, err := database.ConnectRedis(ctx, cfg.RedisURL)
		if err != nil {
			logger.Warn().Err(err).Msg("redis unavailable, notification fan-out disabled")
		} else {
			notifyCfg.Redis = client
		}
	}

	if cfg.NATSURL != "" {
		conn, err := nats.Connect(cfg.NATSURL)
		if err != nil {
			logger.Warn().Err(err).Msg("nats unavailable, notification fan-out disabled")
		} else {
			notifyCfg.NATS = conn
		}
	}

	return notifyCfg
}

func waitForShutdown(app *fiber.App) {
	shutdownCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-shutdownCtx.Done()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}

	log.Println("server stopped")
}
