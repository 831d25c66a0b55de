package service_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hanafi-dev/sentra-portal-api/internal/models"
	"github.com/hanafi-dev/sentra-portal-api/internal/service"
)

func newDirectoryService(env *testEnv) service.DirectoryService {
	return service.NewDirectoryService(env.store, env.session, env.notifier, env.logger)
}

func TestDirectoryListOmitsSecrets(t *testing.T) {
	env := newTestEnv(t)
	env.store.InitializeIfEmpty(env.ctx)
	directory := newDirectoryService(env)

	listed := directory.List(env.ctx)
	require.Len(t, listed, len(env.store.Users()))
	for _, user := range listed {
		require.NotEmpty(t, user.ID)
		require.NotEmpty(t, user.Name)
	}
}

func TestSetLockedRequiresSession(t *testing.T) {
	env := newTestEnv(t)
	env.addUser(t, models.User{ID: "u1", Name: "Ravi"})
	directory := newDirectoryService(env)

	require.ErrorIs(t, directory.SetLocked(env.ctx, "u1", true), service.ErrNoSession)
	require.False(t, env.store.Users()[0].Locked)
}

func TestSetLockedUnknownUser(t *testing.T) {
	env := newTestEnv(t)
	env.signIn(models.User{ID: "admin", Name: "Admin"})
	directory := newDirectoryService(env)

	require.ErrorIs(t, directory.SetLocked(env.ctx, "ghost", true), service.ErrNotFound)
}

func TestSetLockedFlipsFlagAndAudits(t *testing.T) {
	env := newTestEnv(t)
	env.signIn(models.User{ID: "admin", Name: "Admin"})
	env.addUser(t, models.User{ID: "u1", Name: "Ravi"})
	directory := newDirectoryService(env)

	require.NoError(t, directory.SetLocked(env.ctx, "u1", true))
	require.True(t, env.store.Users()[0].Locked)
	require.Equal(t, "Account Locked", env.latestAudit(t).Action)

	require.NoError(t, directory.SetLocked(env.ctx, "u1", false))
	require.False(t, env.store.Users()[0].Locked)
	require.Equal(t, "Account Unlocked", env.latestAudit(t).Action)
}
