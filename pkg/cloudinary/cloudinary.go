package cloudinary

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Config contains credentials required to talk to Cloudinary.
type Config struct {
	CloudName string
	APIKey    string
	APISecret string
	Folder    string
}

// UploadResult describes a stored asset. It is the descriptor handed to the
// resource importer.
type UploadResult struct {
	PublicID  string
	SecureURL string
	Bytes     int64
}

// Service uploads portal resources to Cloudinary.
type Service struct {
	client *cloudinary.Cloudinary
	folder string
	logger zerolog.Logger
}

// New validates the credentials and constructs the Cloudinary-backed
// uploader.
func New(cfg Config, logger zerolog.Logger) (*Service, error) {
	if cfg.CloudName == "" || cfg.APIKey == "" || cfg.APISecret == "" {
		return nil, fmt.Errorf("cloudinary credentials are incomplete")
	}

	client, err := cloudinary.NewFromParams(cfg.CloudName, cfg.APIKey, cfg.APISecret)
	if err != nil {
		return nil, fmt.Errorf("initialize cloudinary: %w", err)
	}

	return &Service{
		client: client,
		folder: strings.Trim(cfg.Folder, "/"),
		logger: logger.With().Str("component", "cloudinary").Logger(),
	}, nil
}

// Upload sends the file to Cloudinary and returns its descriptor.
func (s *Service) Upload(ctx context.Context, name string, reader io.Reader) (UploadResult, error) {
	uploaded, err := s.client.Upload.Upload(ctx, reader, uploader.UploadParams{
		Folder:       s.folder,
		PublicID:     publicID(name),
		ResourceType: "auto",
	})
	if err != nil {
		return UploadResult{}, fmt.Errorf("upload %q: %w", name, err)
	}

	s.logger.Info().
		Str("public_id", uploaded.PublicID).
		Int("bytes", uploaded.Bytes).
		Msg("resource uploaded to cloudinary")

	return UploadResult{
		PublicID:  uploaded.PublicID,
		SecureURL: uploaded.SecureURL,
		Bytes:     int64(uploaded.Bytes),
	}, nil
}

// publicID derives a collision-safe identifier from the original file name.
// Cloudinary treats slashes and dots in public ids as structure, so anything
// outside [a-z0-9] is folded to a dash.
func publicID(name string) string {
	base := strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))

	var b strings.Builder
	for _, r := range strings.ToLower(base) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		} else {
			b.WriteRune('-')
		}
	}

	cleaned := strings.Trim(b.String(), "-")
	if cleaned == "" {
		cleaned = "resource"
	}

	return cleaned + "-" + uuid.NewString()[:8]
}
