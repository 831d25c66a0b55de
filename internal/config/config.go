package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds runtime configuration values for the portal service.
type Config struct {
	AppName string
	AppEnv  string
	AppPort string

	// Durable snapshot store selection.
	KVBackend   string
	KVPrefix    string
	RedisURL    string
	DatabaseURL string
	SQLitePath  string

	JWTSecret string

	NotificationTTL time.Duration
	NotifyChannel   string
	NATSURL         string

	CloudinaryCloudName    string
	CloudinaryAPIKey       string
	CloudinaryAPISecret    string
	CloudinaryUploadFolder string

	// AIProvider selects the review backend; an empty OpenAIAPIKey disables
	// the review feature entirely while leaving the rest of the portal up.
	AIProvider      string
	OpenAIAPIKey    string
	OpenAIModel     string
	AnthropicAPIKey string
	ReviewTimeout   time.Duration
}

// HTTPAddress returns the address the HTTP server should listen on.
func (c Config) HTTPAddress() string {
	if strings.HasPrefix(c.AppPort, ":") {
		return c.AppPort
	}

	return fmt.Sprintf(":%s", c.AppPort)
}

// Load reads configuration values from environment variables and an optional
// .env file.
func Load() (Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("SENTRA")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("app.name", "Sentra Portal API")
	v.SetDefault("app.env", "development")
	v.SetDefault("app.port", "8080")
	v.SetDefault("kv.backend", "sqlite")
	v.SetDefault("kv.prefix", "sentra")
	v.SetDefault("kv.sqlite_path", "sentra.db")
	v.SetDefault("notify.ttl", "5s")
	v.SetDefault("notify.channel", "sentra:notifications")
	v.SetDefault("ai.provider", "openai")
	v.SetDefault("ai.review_timeout", "60s")
	v.SetDefault("cloudinary.folder", "sentra/resources")

	ttl, err := time.ParseDuration(v.GetString("notify.ttl"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid notification ttl: %w", err)
	}

	reviewTimeout, err := time.ParseDuration(v.GetString("ai.review_timeout"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid review timeout: %w", err)
	}

	cfg := Config{
		AppName:                v.GetString("app.name"),
		AppEnv:                 v.GetString("app.env"),
		AppPort:                v.GetString("app.port"),
		KVBackend:              strings.ToLower(v.GetString("kv.backend")),
		KVPrefix:               v.GetString("kv.prefix"),
		RedisURL:               v.GetString("redis.url"),
		DatabaseURL:            v.GetString("database.url"),
		SQLitePath:             v.GetString("kv.sqlite_path"),
		JWTSecret:              v.GetString("jwt.secret"),
		NotificationTTL:        ttl,
		NotifyChannel:          v.GetString("notify.channel"),
		NATSURL:                v.GetString("nats.url"),
		CloudinaryCloudName:    v.GetString("cloudinary.cloud_name"),
		CloudinaryAPIKey:       v.GetString("cloudinary.api_key"),
		CloudinaryAPISecret:    v.GetString("cloudinary.api_secret"),
		CloudinaryUploadFolder: v.GetString("cloudinary.folder"),
		AIProvider:             strings.ToLower(v.GetString("ai.provider")),
		OpenAIAPIKey:           v.GetString("openai_api_key"),
		OpenAIModel:            v.GetString("openai_model"),
		AnthropicAPIKey:        v.GetString("anthropic_api_key"),
		ReviewTimeout:          reviewTimeout,
	}

	if cfg.JWTSecret == "" {
		if cfg.AppEnv != "development" {
			return Config{}, fmt.Errorf("jwt secret must be provided outside development")
		}
		cfg.JWTSecret = "sentra-dev-secret"
	}

	if cfg.ReviewTimeout <= 0 {
		cfg.ReviewTimeout = 60 * time.Second
	}

	return cfg, nil
}
