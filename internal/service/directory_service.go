package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/hanafi-dev/sentra-portal-api/internal/dto"
	"github.com/hanafi-dev/sentra-portal-api/internal/models"
	"github.com/hanafi-dev/sentra-portal-api/internal/notify"
	"github.com/hanafi-dev/sentra-portal-api/internal/store"
)

// DirectoryService exposes the user directory and the account lock toggle.
type DirectoryService interface {
	List(ctx context.Context) []dto.UserResponse
	SetLocked(ctx context.Context, userID string, locked bool) error
}

type directoryService struct {
	store    *store.Store
	session  *Session
	notifier *notify.Notifier
	logger   zerolog.Logger
}

// NewDirectoryService constructs the directory action set.
func NewDirectoryService(st *store.Store, session *Session, notifier *notify.Notifier, logger zerolog.Logger) DirectoryService {
	return &directoryService{
		store:    st,
		session:  session,
		notifier: notifier,
		logger:   logger.With().Str("component", "directory_service").Logger(),
	}
}

// List returns the public view of every account. Credential secrets never
// leave this layer.
func (s *directoryService) List(ctx context.Context) []dto.UserResponse {
	users := s.store.Users()
	out := make([]dto.UserResponse, 0, len(users))
	for _, user := range users {
		out = append(out, dto.UserResponse{
			ID:         user.ID,
			Name:       user.Name,
			Role:       string(user.Role),
			Department: user.Department,
			Year:       user.Year,
			Status:     string(user.Status),
			Locked:     user.Locked,
		})
	}
	return out
}

// SetLocked flips the lock flag on an account. Locked users cannot log in
// until unlocked again.
func (s *directoryService) SetLocked(ctx context.Context, userID string, locked bool) error {
	actor, ok := s.session.Current()
	if !ok {
		return ErrNoSession
	}

	found := false
	s.store.UpdateUsers(ctx, func(users []models.User) []models.User {
		for i := range users {
			if users[i].ID == userID {
				users[i].Locked = locked
				found = true
			}
		}
		return users
	})

	if !found {
		return ErrNotFound
	}

	action := "Account Unlocked"
	message := "Account unlocked."
	if locked {
		action = "Account Locked"
		message = "Account locked."
	}

	s.store.RecordAudit(ctx, actor.ID, actor.Name, action, models.AuditInfo, userID)
	s.notifier.Push(message, notify.TypeInfo)

	return nil
}
