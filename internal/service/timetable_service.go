package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/hanafi-dev/sentra-portal-api/internal/models"
	"github.com/hanafi-dev/sentra-portal-api/internal/notify"
	"github.com/hanafi-dev/sentra-portal-api/internal/store"
)

// TimetableService exposes the weekly timetable grid.
type TimetableService interface {
	List(ctx context.Context) []models.TimetableEntry
	Replace(ctx context.Context, entries []models.TimetableEntry) error
}

type timetableService struct {
	store    *store.Store
	session  *Session
	notifier *notify.Notifier
	logger   zerolog.Logger
}

// NewTimetableService constructs the timetable action set.
func NewTimetableService(st *store.Store, session *Session, notifier *notify.Notifier, logger zerolog.Logger) TimetableService {
	return &timetableService{
		store:    st,
		session:  session,
		notifier: notifier,
		logger:   logger.With().Str("component", "timetable_service").Logger(),
	}
}

func (s *timetableService) List(ctx context.Context) []models.TimetableEntry {
	return s.store.Timetable()
}

// Replace swaps in a new timetable grid. Entries without ids get one.
func (s *timetableService) Replace(ctx context.Context, entries []models.TimetableEntry) error {
	user, ok := s.session.Current()
	if !ok {
		return ErrNoSession
	}

	for i := range entries {
		if entries[i].ID == "" {
			entries[i].ID = uuid.NewString()
		}
	}

	s.store.UpdateTimetable(ctx, func([]models.TimetableEntry) []models.TimetableEntry {
		return entries
	})
	s.store.RecordAudit(ctx, user.ID, user.Name, "Timetable Updated", models.AuditSuccess, "")
	s.notifier.Push("Timetable saved.", notify.TypeSuccess)

	return nil
}
