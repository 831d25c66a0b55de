package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/hanafi-dev/sentra-portal-api/internal/dto"
	"github.com/hanafi-dev/sentra-portal-api/internal/models"
	"github.com/hanafi-dev/sentra-portal-api/internal/notify"
	"github.com/hanafi-dev/sentra-portal-api/internal/observability"
	"github.com/hanafi-dev/sentra-portal-api/internal/store"
)

// AuthService owns the login, signup and logout actions. Credentials are
// compared in the clear against the stored user collection; this is a
// prototype-grade account store, not a credential system.
type AuthService interface {
	Login(ctx context.Context, name, secret string) bool
	Signup(ctx context.Context, req dto.SignupRequest) (models.User, error)
	Logout(ctx context.Context)
	Current() (models.User, bool)
}

type authService struct {
	store     *store.Store
	session   *Session
	notifier  *notify.Notifier
	validator *validator.Validate
	logger    zerolog.Logger
}

// NewAuthService constructs the auth action set.
func NewAuthService(st *store.Store, session *Session, notifier *notify.Notifier, validate *validator.Validate, logger zerolog.Logger) AuthService {
	return &authService{
		store:     st,
		session:   session,
		notifier:  notifier,
		validator: validate,
		logger:    logger.With().Str("component", "auth_service").Logger(),
	}
}

// Login resolves the name case-insensitively and checks the secret. A locked
// account is refused even with the correct secret and leaves a distinct audit
// trail. On success the session user is set and a welcome notification is
// queued.
func (s *authService) Login(ctx context.Context, name, secret string) bool {
	user, found := s.findByName(name)

	if !found || user.Password != secret {
		s.store.RecordAudit(ctx, "", name, "User Login", models.AuditFailure, "invalid name or password")
		s.notifier.Push("Invalid name or password.", notify.TypeError)
		observability.LoginAttempts().WithLabelValues("failure").Inc()
		return false
	}

	if user.Locked {
		s.store.RecordAudit(ctx, user.ID, user.Name, "Account Locked", models.AuditFailure, "login refused for locked account")
		s.notifier.Push("This account is locked. Contact the administrator.", notify.TypeError)
		observability.LoginAttempts().WithLabelValues("locked").Inc()
		return false
	}

	s.session.Set(user)
	s.store.RecordAudit(ctx, user.ID, user.Name, "User Login", models.AuditSuccess, "")
	s.notifier.Push(fmt.Sprintf("Welcome back, %s!", user.Name), notify.TypeSuccess)
	observability.LoginAttempts().WithLabelValues("success").Inc()

	s.logger.Info().Str("user", user.Name).Msg("user logged in")
	return true
}

// Signup rejects case-insensitive name collisions without touching the store
// or the audit trail. Accepted users become active immediately: the pending
// status exists in the data model but no approval gate is enforced here.
func (s *authService) Signup(ctx context.Context, req dto.SignupRequest) (models.User, error) {
	if err := s.validator.Struct(req); err != nil {
		return models.User{}, err
	}

	role := models.Role(strings.ToLower(req.Role))
	if !models.ValidRole(role) {
		return models.User{}, ErrInvalidRole
	}

	if _, exists := s.findByName(req.Name); exists {
		return models.User{}, ErrNameTaken
	}

	user := models.User{
		ID:         uuid.NewString(),
		Name:       strings.TrimSpace(req.Name),
		Password:   req.Password,
		Role:       role,
		Department: req.Department,
		Year:       req.Year,
		Status:     models.UserStatusActive,
		CreatedAt:  time.Now().UTC(),
	}

	s.store.UpdateUsers(ctx, func(users []models.User) []models.User {
		return append(users, user)
	})
	s.store.RecordAudit(ctx, user.ID, user.Name, "User Signup", models.AuditSuccess, "")
	s.notifier.Push("Account created. You can sign in now.", notify.TypeSuccess)

	s.logger.Info().Str("user", user.Name).Str("role", string(role)).Msg("user signed up")
	return user, nil
}

// Logout records who left when a session is active and always returns the
// process to its unauthenticated state.
func (s *authService) Logout(ctx context.Context) {
	if user, ok := s.session.Current(); ok {
		s.store.RecordAudit(ctx, user.ID, user.Name, "User Logout", models.AuditInfo, "")
	}
	s.session.Clear()
}

// Current returns the active session user, if any.
func (s *authService) Current() (models.User, bool) {
	return s.session.Current()
}

func (s *authService) findByName(name string) (models.User, bool) {
	needle := strings.ToLower(strings.TrimSpace(name))
	for _, user := range s.store.Users() {
		if strings.ToLower(user.Name) == needle {
			return user, true
		}
	}
	return models.User{}, false
}
