package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/hanafi-dev/sentra-portal-api/internal/kvstore"
	"github.com/hanafi-dev/sentra-portal-api/internal/models"
	"github.com/hanafi-dev/sentra-portal-api/internal/notify"
	"github.com/hanafi-dev/sentra-portal-api/internal/service"
	"github.com/hanafi-dev/sentra-portal-api/internal/store"
)

// testEnv bundles the shared state every action set depends on. The long
// notification TTL keeps queue assertions free of expiry races.
type testEnv struct {
	ctx      context.Context
	store    *store.Store
	session  *service.Session
	notifier *notify.Notifier
	validate *validator.Validate
	logger   zerolog.Logger
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	ctx := context.Background()
	logger := zerolog.Nop()

	return &testEnv{
		ctx:      ctx,
		store:    store.New(ctx, kvstore.NewMemoryStore(), logger),
		session:  service.NewSession(),
		notifier: notify.New(notify.Config{TTL: time.Minute}, logger),
		validate: validator.New(validator.WithRequiredStructEnabled()),
		logger:   logger,
	}
}

func (e *testEnv) signIn(user models.User) {
	e.session.Set(user)
}

func (e *testEnv) addUser(t *testing.T, user models.User) {
	t.Helper()

	e.store.UpdateUsers(e.ctx, func(users []models.User) []models.User {
		return append(users, user)
	})
}

func (e *testEnv) notificationMessages() []string {
	active := e.notifier.Active()
	messages := make([]string, 0, len(active))
	for _, notification := range active {
		messages = append(messages, notification.Message)
	}
	return messages
}

func (e *testEnv) latestAudit(t *testing.T) models.AuditLogEntry {
	t.Helper()

	entries := e.store.AuditLog()
	if len(entries) == 0 {
		t.Fatal("expected at least one audit entry")
	}
	return entries[0]
}
