package store

import (
	"context"
	"slices"
	"sync"

	"github.com/rs/zerolog"

	"github.com/hanafi-dev/sentra-portal-api/internal/kvstore"
	"github.com/hanafi-dev/sentra-portal-api/internal/models"
)

// Collection names, used both as durable keys and as change-event labels.
const (
	CollectionUsers         = "users"
	CollectionTimetable     = "timetable"
	CollectionAnnouncements = "announcements"
	CollectionResources     = "resources"
	CollectionAlerts        = "alerts"
	CollectionCourseFiles   = "course_files"
	CollectionSettings      = "settings"
	CollectionAuditLog      = "audit_log"

	keySeeded = "seeded"
)

// Store owns every durable collection of the portal. All mutations pass
// through it under a single mutex, mirroring the single event loop of the
// client this state core was lifted from. Each mutation persists the new
// snapshot through its slot and emits a change event for subscribers.
type Store struct {
	mu     sync.Mutex
	kv     kvstore.Store
	logger zerolog.Logger
	broker *broker

	users         *Slot[[]models.User]
	timetable     *Slot[[]models.TimetableEntry]
	announcements *Slot[[]models.Announcement]
	resources     *Slot[[]models.Resource]
	alerts        *Slot[[]models.SecurityAlert]
	courseFiles   *Slot[[]models.CourseFile]
	settings      *Slot[models.AppSettings]
	auditLog      *Slot[[]models.AuditLogEntry]
	seeded        *Slot[bool]
}

// New binds every collection against the durable store. Missing or corrupt
// snapshots silently fall back to empty collections.
func New(ctx context.Context, kv kvstore.Store, logger zerolog.Logger) *Store {
	logger = logger.With().Str("component", "store").Logger()

	return &Store{
		kv:            kv,
		logger:        logger,
		broker:        newBroker(),
		users:         BindSlot(ctx, kv, CollectionUsers, []models.User{}, logger),
		timetable:     BindSlot(ctx, kv, CollectionTimetable, []models.TimetableEntry{}, logger),
		announcements: BindSlot(ctx, kv, CollectionAnnouncements, []models.Announcement{}, logger),
		resources:     BindSlot(ctx, kv, CollectionResources, []models.Resource{}, logger),
		alerts:        BindSlot(ctx, kv, CollectionAlerts, []models.SecurityAlert{}, logger),
		courseFiles:   BindSlot(ctx, kv, CollectionCourseFiles, []models.CourseFile{}, logger),
		settings:      BindSlot(ctx, kv, CollectionSettings, models.DefaultSettings(), logger),
		auditLog:      BindSlot(ctx, kv, CollectionAuditLog, []models.AuditLogEntry{}, logger),
		seeded:        BindSlot(ctx, kv, keySeeded, false, logger),
	}
}

// Subscribe returns a channel of change events for the named collection
// (CollectionAll for everything) and a cancel function releasing it.
func (s *Store) Subscribe(collection string) (<-chan Event, func()) {
	return s.broker.subscribe(collection)
}

// Users returns a copy of the user collection.
func (s *Store) Users() []models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.users.Get())
}

// UpdateUsers applies fn to the user collection and persists the result.
func (s *Store) UpdateUsers(ctx context.Context, fn func([]models.User) []models.User) {
	s.mu.Lock()
	s.users.Update(ctx, fn)
	s.mu.Unlock()
	s.broker.publish(CollectionUsers)
}

// Timetable returns a copy of the timetable collection.
func (s *Store) Timetable() []models.TimetableEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.timetable.Get())
}

// UpdateTimetable applies fn to the timetable and persists the result.
func (s *Store) UpdateTimetable(ctx context.Context, fn func([]models.TimetableEntry) []models.TimetableEntry) {
	s.mu.Lock()
	s.timetable.Update(ctx, fn)
	s.mu.Unlock()
	s.broker.publish(CollectionTimetable)
}

// Announcements returns a copy of the announcement collection.
func (s *Store) Announcements() []models.Announcement {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.announcements.Get())
}

// UpdateAnnouncements applies fn to the announcements and persists the result.
func (s *Store) UpdateAnnouncements(ctx context.Context, fn func([]models.Announcement) []models.Announcement) {
	s.mu.Lock()
	s.announcements.Update(ctx, fn)
	s.mu.Unlock()
	s.broker.publish(CollectionAnnouncements)
}

// Resources returns a copy of the resource collection.
func (s *Store) Resources() []models.Resource {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.resources.Get())
}

// UpdateResources applies fn to the resources and persists the result.
func (s *Store) UpdateResources(ctx context.Context, fn func([]models.Resource) []models.Resource) {
	s.mu.Lock()
	s.resources.Update(ctx, fn)
	s.mu.Unlock()
	s.broker.publish(CollectionResources)
}

// Alerts returns a copy of the security alert collection.
func (s *Store) Alerts() []models.SecurityAlert {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.alerts.Get())
}

// UpdateAlerts applies fn to the alerts and persists the result.
func (s *Store) UpdateAlerts(ctx context.Context, fn func([]models.SecurityAlert) []models.SecurityAlert) {
	s.mu.Lock()
	s.alerts.Update(ctx, fn)
	s.mu.Unlock()
	s.broker.publish(CollectionAlerts)
}

// CourseFiles returns a copy of the course file collection.
func (s *Store) CourseFiles() []models.CourseFile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.courseFiles.Get())
}

// UpdateCourseFiles applies fn to the course files and persists the result.
func (s *Store) UpdateCourseFiles(ctx context.Context, fn func([]models.CourseFile) []models.CourseFile) {
	s.mu.Lock()
	s.courseFiles.Update(ctx, fn)
	s.mu.Unlock()
	s.broker.publish(CollectionCourseFiles)
}

// Settings returns the current application settings.
func (s *Store) Settings() models.AppSettings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings.Get()
}

// UpdateSettings replaces the settings singleton and persists it.
func (s *Store) UpdateSettings(ctx context.Context, settings models.AppSettings) {
	s.mu.Lock()
	s.settings.Replace(ctx, settings)
	s.mu.Unlock()
	s.broker.publish(CollectionSettings)
}
