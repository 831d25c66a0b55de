package service

import (
	"context"
	"slices"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
	"github.com/rs/zerolog"

	"github.com/hanafi-dev/sentra-portal-api/internal/dto"
	"github.com/hanafi-dev/sentra-portal-api/internal/models"
	"github.com/hanafi-dev/sentra-portal-api/internal/notify"
	"github.com/hanafi-dev/sentra-portal-api/internal/store"
)

// AnnouncementService exposes the announcement feed and the reaction toggle.
type AnnouncementService interface {
	List(ctx context.Context) []models.Announcement
	Create(ctx context.Context, req dto.AnnouncementCreateRequest) (models.Announcement, error)
	ToggleReaction(ctx context.Context, announcementID, emoji string) error
}

type announcementService struct {
	store     *store.Store
	session   *Session
	notifier  *notify.Notifier
	validator *validator.Validate
	policy    *bluemonday.Policy
	logger    zerolog.Logger
}

// NewAnnouncementService constructs the announcement action set.
func NewAnnouncementService(st *store.Store, session *Session, notifier *notify.Notifier, validate *validator.Validate, logger zerolog.Logger) AnnouncementService {
	policy := bluemonday.UGCPolicy()
	policy.AllowElements("p", "strong", "em", "a", "ul", "ol", "li", "br")
	policy.AllowAttrs("href", "title", "target").OnElements("a")

	return &announcementService{
		store:     st,
		session:   session,
		notifier:  notifier,
		validator: validate,
		policy:    policy,
		logger:    logger.With().Str("component", "announcement_service").Logger(),
	}
}

// List returns announcements newest first.
func (s *announcementService) List(ctx context.Context) []models.Announcement {
	items := s.store.Announcements()
	slices.SortStableFunc(items, func(a, b models.Announcement) int {
		return b.Timestamp.Compare(a.Timestamp)
	})
	return items
}

// Create publishes a new announcement authored by the session user.
func (s *announcementService) Create(ctx context.Context, req dto.AnnouncementCreateRequest) (models.Announcement, error) {
	user, ok := s.session.Current()
	if !ok {
		return models.Announcement{}, ErrNoSession
	}

	if err := s.validator.Struct(req); err != nil {
		return models.Announcement{}, err
	}

	announcement := models.Announcement{
		ID:         uuid.NewString(),
		Title:      req.Title,
		Content:    s.policy.Sanitize(req.Content),
		Author:     user.Name,
		Timestamp:  time.Now().UTC(),
		TargetRole: models.Role(req.TargetRole),
		TargetDept: req.TargetDept,
		Reactions:  map[string][]string{},
	}

	s.store.UpdateAnnouncements(ctx, func(items []models.Announcement) []models.Announcement {
		return append([]models.Announcement{announcement}, items...)
	})
	s.store.RecordAudit(ctx, user.ID, user.Name, "Announcement Posted", models.AuditSuccess, req.Title)
	s.notifier.Push("Announcement published.", notify.TypeSuccess)

	return announcement, nil
}

// ToggleReaction flips the session user's membership in the emoji's reactor
// set. Applying it twice with the same arguments restores the original state.
// Without a session the store is left untouched.
func (s *announcementService) ToggleReaction(ctx context.Context, announcementID, emoji string) error {
	user, ok := s.session.Current()
	if !ok {
		return ErrNoSession
	}

	s.store.UpdateAnnouncements(ctx, func(items []models.Announcement) []models.Announcement {
		for i := range items {
			if items[i].ID != announcementID {
				continue
			}

			// Snapshots handed out earlier share the reaction map, so the
			// toggle must replace it rather than write into it.
			reactions := make(map[string][]string, len(items[i].Reactions)+1)
			for existing, reactors := range items[i].Reactions {
				reactions[existing] = reactors
			}

			reactors := reactions[emoji]
			if idx := slices.Index(reactors, user.ID); idx >= 0 {
				reactions[emoji] = slices.Delete(slices.Clone(reactors), idx, idx+1)
			} else {
				reactions[emoji] = append(slices.Clone(reactors), user.ID)
			}

			items[i].Reactions = reactions
			break
		}
		return items
	})

	return nil
}
