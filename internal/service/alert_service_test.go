package service_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hanafi-dev/sentra-portal-api/internal/models"
	"github.com/hanafi-dev/sentra-portal-api/internal/service"
)

func newAlertService(env *testEnv) service.AlertService {
	return service.NewAlertService(env.store, env.session, env.notifier, env.logger)
}

func seedAlert(env *testEnv, id string) {
	env.store.UpdateAlerts(env.ctx, func(alerts []models.SecurityAlert) []models.SecurityAlert {
		return append(alerts, models.SecurityAlert{
			ID:       id,
			Category: "authentication",
			Title:    "Repeated failed logins",
			Severity: models.SeverityHigh,
		})
	})
}

func TestResolveMarksAlertResolved(t *testing.T) {
	env := newTestEnv(t)
	env.signIn(models.User{ID: "u1", Name: "Admin", Role: models.RoleAdmin})
	alerts := newAlertService(env)
	seedAlert(env, "alert-1")

	alerts.Resolve(env.ctx, "alert-1")

	require.True(t, alerts.List(env.ctx)[0].Resolved)

	entry := env.latestAudit(t)
	require.Equal(t, "Alert Resolved", entry.Action)
	require.Equal(t, models.AuditInfo, entry.Outcome)
	require.Equal(t, "Admin", entry.ActorName)
	require.Contains(t, env.notificationMessages(), "Alert marked as resolved.")
}

func TestResolveTwiceIsHarmless(t *testing.T) {
	env := newTestEnv(t)
	alerts := newAlertService(env)
	seedAlert(env, "alert-1")

	alerts.Resolve(env.ctx, "alert-1")
	alerts.Resolve(env.ctx, "alert-1")

	listed := alerts.List(env.ctx)
	require.Len(t, listed, 1)
	require.True(t, listed[0].Resolved)
}

func TestResolveUnknownAlertStillAuditsAsSystem(t *testing.T) {
	env := newTestEnv(t)
	alerts := newAlertService(env)
	seedAlert(env, "alert-1")

	alerts.Resolve(env.ctx, "no-such-alert")

	require.False(t, alerts.List(env.ctx)[0].Resolved)

	entry := env.latestAudit(t)
	require.Equal(t, "Alert Resolved", entry.Action)
	require.Equal(t, "system", entry.ActorName)
	require.Contains(t, env.notificationMessages(), "Alert marked as resolved.")
}
