package service_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hanafi-dev/sentra-portal-api/internal/dto"
	"github.com/hanafi-dev/sentra-portal-api/internal/models"
	"github.com/hanafi-dev/sentra-portal-api/internal/service"
)

func newAuthService(env *testEnv) service.AuthService {
	return service.NewAuthService(env.store, env.session, env.notifier, env.validate, env.logger)
}

func TestLoginSucceedsForSeededAdmin(t *testing.T) {
	env := newTestEnv(t)
	env.store.InitializeIfEmpty(env.ctx)
	auth := newAuthService(env)

	require.True(t, auth.Login(env.ctx, "Admin", "admin"))

	current, ok := auth.Current()
	require.True(t, ok)
	require.Equal(t, "Admin", current.Name)
	require.Equal(t, models.RoleAdmin, current.Role)

	entry := env.latestAudit(t)
	require.Equal(t, "User Login", entry.Action)
	require.Equal(t, models.AuditSuccess, entry.Outcome)
	require.Contains(t, env.notificationMessages(), "Welcome back, Admin!")
}

func TestLoginResolvesNameCaseInsensitively(t *testing.T) {
	env := newTestEnv(t)
	env.store.InitializeIfEmpty(env.ctx)
	auth := newAuthService(env)

	require.True(t, auth.Login(env.ctx, "  aDmIn ", "admin"))
}

func TestLoginRejectsWrongSecret(t *testing.T) {
	env := newTestEnv(t)
	env.store.InitializeIfEmpty(env.ctx)
	auth := newAuthService(env)

	require.False(t, auth.Login(env.ctx, "Admin", "nope"))

	_, ok := auth.Current()
	require.False(t, ok)

	entry := env.latestAudit(t)
	require.Equal(t, "User Login", entry.Action)
	require.Equal(t, models.AuditFailure, entry.Outcome)
	require.Contains(t, env.notificationMessages(), "Invalid name or password.")
}

func TestLoginRejectsUnknownUser(t *testing.T) {
	env := newTestEnv(t)
	auth := newAuthService(env)

	require.False(t, auth.Login(env.ctx, "Nobody", "secret"))
	require.Equal(t, models.AuditFailure, env.latestAudit(t).Outcome)
}

func TestLoginRefusesLockedAccountWithCorrectSecret(t *testing.T) {
	env := newTestEnv(t)
	env.addUser(t, models.User{
		ID:       "u-locked",
		Name:     "Ravi",
		Password: "secret",
		Role:     models.RoleStudent,
		Locked:   true,
	})
	auth := newAuthService(env)

	require.False(t, auth.Login(env.ctx, "Ravi", "secret"))

	_, ok := auth.Current()
	require.False(t, ok)

	entry := env.latestAudit(t)
	require.Equal(t, "Account Locked", entry.Action)
	require.Equal(t, models.AuditFailure, entry.Outcome)
	require.Contains(t, env.notificationMessages(), "This account is locked. Contact the administrator.")
}

func TestSignupCreatesActiveUser(t *testing.T) {
	env := newTestEnv(t)
	auth := newAuthService(env)

	user, err := auth.Signup(env.ctx, dto.SignupRequest{
		Name:       "Kiran",
		Password:   "secret",
		Role:       "Student",
		Department: "CSE",
		Year:       "2",
	})
	require.NoError(t, err)
	require.NotEmpty(t, user.ID)
	require.Equal(t, models.RoleStudent, user.Role)
	require.Equal(t, models.UserStatusActive, user.Status)

	require.Len(t, env.store.Users(), 1)
	require.Equal(t, "User Signup", env.latestAudit(t).Action)
}

func TestSignupRejectsCaseInsensitiveNameCollision(t *testing.T) {
	env := newTestEnv(t)
	env.store.InitializeIfEmpty(env.ctx)
	auth := newAuthService(env)

	before := env.store.Users()
	auditBefore := len(env.store.AuditLog())

	_, err := auth.Signup(env.ctx, dto.SignupRequest{
		Name:       "ADMIN",
		Password:   "secret",
		Role:       "student",
		Department: "CSE",
	})
	require.ErrorIs(t, err, service.ErrNameTaken)

	// A rejected signup must not touch the store or the audit trail.
	require.Len(t, env.store.Users(), len(before))
	require.Len(t, env.store.AuditLog(), auditBefore)
}

func TestSignupRejectsUnknownRole(t *testing.T) {
	env := newTestEnv(t)
	auth := newAuthService(env)

	_, err := auth.Signup(env.ctx, dto.SignupRequest{
		Name:       "Kiran",
		Password:   "secret",
		Role:       "wizard",
		Department: "CSE",
	})
	require.ErrorIs(t, err, service.ErrInvalidRole)
	require.Empty(t, env.store.Users())
}

func TestLogoutClearsSessionAndAudits(t *testing.T) {
	env := newTestEnv(t)
	env.store.InitializeIfEmpty(env.ctx)
	auth := newAuthService(env)

	require.True(t, auth.Login(env.ctx, "Admin", "admin"))
	auth.Logout(env.ctx)

	_, ok := auth.Current()
	require.False(t, ok)

	entry := env.latestAudit(t)
	require.Equal(t, "User Logout", entry.Action)
	require.Equal(t, models.AuditInfo, entry.Outcome)
}

func TestLogoutWithoutSessionLeavesAuditUntouched(t *testing.T) {
	env := newTestEnv(t)
	auth := newAuthService(env)

	auth.Logout(env.ctx)
	require.Empty(t, env.store.AuditLog())
}
