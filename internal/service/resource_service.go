package service

import (
	"bytes"
	"context"
	"io"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/hanafi-dev/sentra-portal-api/internal/dto"
	"github.com/hanafi-dev/sentra-portal-api/internal/models"
	"github.com/hanafi-dev/sentra-portal-api/internal/notify"
	"github.com/hanafi-dev/sentra-portal-api/internal/store"
	"github.com/hanafi-dev/sentra-portal-api/pkg/cloudinary"
)

// Uploader pushes resource bytes to the configured cloud storage.
type Uploader interface {
	Upload(ctx context.Context, name string, reader io.Reader) (cloudinary.UploadResult, error)
}

// ResourceService exposes the resource library and its import actions.
type ResourceService interface {
	List(ctx context.Context) []models.Resource
	ImportCloud(ctx context.Context, req dto.CloudImportRequest) (models.Resource, error)
	Upload(ctx context.Context, name string, data []byte) (models.Resource, error)
}

type resourceService struct {
	store     *store.Store
	session   *Session
	notifier  *notify.Notifier
	uploader  Uploader
	validator *validator.Validate
	logger    zerolog.Logger
}

// NewResourceService constructs the resource action set. The uploader may be
// nil; uploads then stay local-only.
func NewResourceService(st *store.Store, session *Session, notifier *notify.Notifier, uploader Uploader, validate *validator.Validate, logger zerolog.Logger) ResourceService {
	return &resourceService{
		store:     st,
		session:   session,
		notifier:  notifier,
		uploader:  uploader,
		validator: validate,
		logger:    logger.With().Str("component", "resource_service").Logger(),
	}
}

func (s *resourceService) List(ctx context.Context) []models.Resource {
	return s.store.Resources()
}

// ImportCloud registers a cloud-hosted document as a resource owned by the
// session user. Without a session the store is left untouched.
func (s *resourceService) ImportCloud(ctx context.Context, req dto.CloudImportRequest) (models.Resource, error) {
	user, ok := s.session.Current()
	if !ok {
		return models.Resource{}, ErrNoSession
	}

	if err := s.validator.Struct(req); err != nil {
		return models.Resource{}, err
	}

	resource := models.Resource{
		ID:           uuid.NewString(),
		Name:         req.Name,
		Kind:         defaultString(req.Kind, "document"),
		Department:   user.Department,
		Subject:      defaultString(req.Subject, "General"),
		UploaderID:   user.ID,
		UploaderName: user.Name,
		Timestamp:    time.Now().UTC(),
		Origin:       models.ResourceOrigin(req.Provider),
		URL:          req.URL,
	}

	s.prepend(ctx, resource)
	s.notifier.Push("Resource imported from cloud storage.", notify.TypeSuccess)

	return resource, nil
}

// Upload registers a locally provided document. The kind is sniffed from the
// content; when cloud storage is configured the bytes are pushed there and
// the resource points at the stored copy.
func (s *resourceService) Upload(ctx context.Context, name string, data []byte) (models.Resource, error) {
	user, ok := s.session.Current()
	if !ok {
		return models.Resource{}, ErrNoSession
	}

	resource := models.Resource{
		ID:           uuid.NewString(),
		Name:         name,
		Kind:         mimetype.Detect(data).String(),
		Department:   user.Department,
		Subject:      "General",
		UploaderID:   user.ID,
		UploaderName: user.Name,
		Timestamp:    time.Now().UTC(),
		Origin:       models.OriginLocal,
	}

	if s.uploader != nil {
		stored, err := s.uploader.Upload(ctx, name, bytes.NewReader(data))
		if err != nil {
			s.logger.Warn().Err(err).Str("name", name).Msg("cloud upload failed, keeping resource local")
		} else {
			resource.Origin = models.OriginCloudinary
			resource.URL = stored.SecureURL
		}
	}

	s.prepend(ctx, resource)
	s.store.RecordAudit(ctx, user.ID, user.Name, "Resource Uploaded", models.AuditSuccess, name)
	s.notifier.Push("Resource uploaded.", notify.TypeSuccess)

	return resource, nil
}

func (s *resourceService) prepend(ctx context.Context, resource models.Resource) {
	s.store.UpdateResources(ctx, func(resources []models.Resource) []models.Resource {
		return append([]models.Resource{resource}, resources...)
	})
}

func defaultString(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
