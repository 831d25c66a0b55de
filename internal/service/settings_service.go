package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/hanafi-dev/sentra-portal-api/internal/dto"
	"github.com/hanafi-dev/sentra-portal-api/internal/models"
	"github.com/hanafi-dev/sentra-portal-api/internal/notify"
	"github.com/hanafi-dev/sentra-portal-api/internal/store"
)

// SettingsService exposes the durable settings singleton.
type SettingsService interface {
	Get(ctx context.Context) models.AppSettings
	Update(ctx context.Context, req dto.SettingsUpdateRequest) (models.AppSettings, error)
}

type settingsService struct {
	store     *store.Store
	session   *Session
	notifier  *notify.Notifier
	validator *validator.Validate
	logger    zerolog.Logger
}

// NewSettingsService constructs the settings action set.
func NewSettingsService(st *store.Store, session *Session, notifier *notify.Notifier, validate *validator.Validate, logger zerolog.Logger) SettingsService {
	return &settingsService{
		store:     st,
		session:   session,
		notifier:  notifier,
		validator: validate,
		logger:    logger.With().Str("component", "settings_service").Logger(),
	}
}

func (s *settingsService) Get(ctx context.Context) models.AppSettings {
	return s.store.Settings()
}

func (s *settingsService) Update(ctx context.Context, req dto.SettingsUpdateRequest) (models.AppSettings, error) {
	user, ok := s.session.Current()
	if !ok {
		return models.AppSettings{}, ErrNoSession
	}

	if err := s.validator.Struct(req); err != nil {
		return models.AppSettings{}, err
	}

	settings := models.AppSettings{
		TimeSlots:   req.TimeSlots,
		AccentColor: req.AccentColor,
	}

	s.store.UpdateSettings(ctx, settings)
	s.store.RecordAudit(ctx, user.ID, user.Name, "Settings Updated", models.AuditSuccess, "")
	s.notifier.Push("Settings saved.", notify.TypeSuccess)

	return settings, nil
}
