package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/hanafi-dev/sentra-portal-api/internal/kvstore"
	"github.com/hanafi-dev/sentra-portal-api/internal/models"
	"github.com/hanafi-dev/sentra-portal-api/internal/store"
)

func testLogger() zerolog.Logger {
	return zerolog.Nop()
}

func TestCollectionsSurviveRestart(t *testing.T) {
	ctx := context.Background()
	kv := kvstore.NewMemoryStore()

	first := store.New(ctx, kv, testLogger())
	first.UpdateAnnouncements(ctx, func(items []models.Announcement) []models.Announcement {
		return append(items, models.Announcement{ID: "a1", Title: "Exam schedule"})
	})

	// A second store over the same durable backend stands in for a process
	// restart.
	second := store.New(ctx, kv, testLogger())
	announcements := second.Announcements()
	require.Len(t, announcements, 1)
	require.Equal(t, "Exam schedule", announcements[0].Title)
}

func TestCorruptSnapshotFallsBackToEmpty(t *testing.T) {
	ctx := context.Background()
	kv := kvstore.NewMemoryStore()
	require.NoError(t, kv.Set(ctx, store.CollectionUsers, `{"not":"a user list`))

	st := store.New(ctx, kv, testLogger())
	require.Empty(t, st.Users())

	// The store must stay writable after discarding the bad snapshot.
	st.UpdateUsers(ctx, func(users []models.User) []models.User {
		return append(users, models.User{ID: "u1", Name: "Asha"})
	})
	require.Len(t, st.Users(), 1)
}

func TestInitializeIfEmptySeedsOnce(t *testing.T) {
	ctx := context.Background()
	kv := kvstore.NewMemoryStore()
	st := store.New(ctx, kv, testLogger())

	st.InitializeIfEmpty(ctx)

	users := st.Users()
	require.NotEmpty(t, users)
	require.NotEmpty(t, st.Timetable())
	require.NotEmpty(t, st.Announcements())
	require.NotEmpty(t, st.Alerts())
	require.NotEmpty(t, st.CourseFiles())

	names := make([]string, 0, len(users))
	for _, user := range users {
		names = append(names, user.Name)
	}
	require.Contains(t, names, "Admin")

	st.InitializeIfEmpty(ctx)
	require.Len(t, st.Users(), len(users))
}

func TestInitializeIfEmptySkipsExistingUsers(t *testing.T) {
	ctx := context.Background()
	kv := kvstore.NewMemoryStore()
	st := store.New(ctx, kv, testLogger())

	st.UpdateUsers(ctx, func(users []models.User) []models.User {
		return append(users, models.User{ID: "u1", Name: "Asha", Role: models.RoleAdmin})
	})

	st.InitializeIfEmpty(ctx)
	require.Len(t, st.Users(), 1)
}

func TestInitializeIfEmptyMarkerSurvivesRestart(t *testing.T) {
	ctx := context.Background()
	kv := kvstore.NewMemoryStore()

	first := store.New(ctx, kv, testLogger())
	first.InitializeIfEmpty(ctx)
	seededCount := len(first.Users())

	second := store.New(ctx, kv, testLogger())
	second.InitializeIfEmpty(ctx)
	require.Len(t, second.Users(), seededCount)
}

func TestRecordAuditPrependsNewestFirst(t *testing.T) {
	ctx := context.Background()
	st := store.New(ctx, kvstore.NewMemoryStore(), testLogger())

	st.RecordAudit(ctx, "u1", "Asha", "User Login", models.AuditSuccess, "")
	st.RecordAudit(ctx, "u1", "Asha", "User Logout", models.AuditInfo, "")

	entries := st.AuditLog()
	require.Len(t, entries, 2)
	require.Equal(t, "User Logout", entries[0].Action)
	require.Equal(t, "User Login", entries[1].Action)
	require.NotEmpty(t, entries[0].ID)
	require.NotEqual(t, entries[0].ID, entries[1].ID)
}

func TestRecordAuditCarriesOriginFromContext(t *testing.T) {
	ctx := context.Background()
	st := store.New(ctx, kvstore.NewMemoryStore(), testLogger())

	st.RecordAudit(store.WithOrigin(ctx, "10.1.2.3"), "u1", "Asha", "User Login", models.AuditSuccess, "")
	st.RecordAudit(ctx, "u1", "Asha", "User Logout", models.AuditInfo, "")

	entries := st.AuditLog()
	require.Equal(t, "local", entries[0].Origin)
	require.Equal(t, "10.1.2.3", entries[1].Origin)
}

func waitForEvent(t *testing.T, events <-chan store.Event) store.Event {
	t.Helper()

	select {
	case event := <-events:
		return event
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for change event")
		return store.Event{}
	}
}

func TestSubscribeDeliversMatchingEvents(t *testing.T) {
	ctx := context.Background()
	st := store.New(ctx, kvstore.NewMemoryStore(), testLogger())

	userEvents, cancelUsers := st.Subscribe(store.CollectionUsers)
	defer cancelUsers()
	allEvents, cancelAll := st.Subscribe(store.CollectionAll)
	defer cancelAll()
	alertEvents, cancelAlerts := st.Subscribe(store.CollectionAlerts)
	defer cancelAlerts()

	st.UpdateUsers(ctx, func(users []models.User) []models.User { return users })

	require.Equal(t, store.CollectionUsers, waitForEvent(t, userEvents).Collection)
	require.Equal(t, store.CollectionUsers, waitForEvent(t, allEvents).Collection)

	select {
	case event := <-alertEvents:
		t.Fatalf("alert subscriber received unrelated event %q", event.Collection)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestSubscribeCancelIsIdempotent(t *testing.T) {
	ctx := context.Background()
	st := store.New(ctx, kvstore.NewMemoryStore(), testLogger())

	_, cancel := st.Subscribe(store.CollectionUsers)
	cancel()
	cancel()

	// Publishing after cancellation must not panic on the closed channel.
	st.UpdateUsers(ctx, func(users []models.User) []models.User { return users })
}

func TestSettingsDefaultAndUpdate(t *testing.T) {
	ctx := context.Background()
	kv := kvstore.NewMemoryStore()
	st := store.New(ctx, kv, testLogger())

	require.Equal(t, models.DefaultSettings(), st.Settings())

	updated := models.AppSettings{TimeSlots: []string{"09:00-10:00"}, AccentColor: "teal"}
	st.UpdateSettings(ctx, updated)
	require.Equal(t, updated, st.Settings())

	restarted := store.New(ctx, kv, testLogger())
	require.Equal(t, updated, restarted.Settings())
}
