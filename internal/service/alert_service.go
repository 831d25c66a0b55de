package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/hanafi-dev/sentra-portal-api/internal/models"
	"github.com/hanafi-dev/sentra-portal-api/internal/notify"
	"github.com/hanafi-dev/sentra-portal-api/internal/store"
)

// AlertService exposes the security alert list and the resolve action.
type AlertService interface {
	List(ctx context.Context) []models.SecurityAlert
	Resolve(ctx context.Context, alertID string)
}

type alertService struct {
	store    *store.Store
	session  *Session
	notifier *notify.Notifier
	logger   zerolog.Logger
}

// NewAlertService constructs the alert action set.
func NewAlertService(st *store.Store, session *Session, notifier *notify.Notifier, logger zerolog.Logger) AlertService {
	return &alertService{
		store:    st,
		session:  session,
		notifier: notifier,
		logger:   logger.With().Str("component", "alert_service").Logger(),
	}
}

func (s *alertService) List(ctx context.Context) []models.SecurityAlert {
	return s.store.Alerts()
}

// Resolve marks the alert resolved regardless of its prior state; resolving
// twice is a harmless no-op. The attempt is audited and announced even when
// the id matches nothing.
func (s *alertService) Resolve(ctx context.Context, alertID string) {
	s.store.UpdateAlerts(ctx, func(alerts []models.SecurityAlert) []models.SecurityAlert {
		for i := range alerts {
			if alerts[i].ID == alertID {
				alerts[i].Resolved = true
			}
		}
		return alerts
	})

	actorID, actorName := "", "system"
	if user, ok := s.session.Current(); ok {
		actorID, actorName = user.ID, user.Name
	}

	s.store.RecordAudit(ctx, actorID, actorName, "Alert Resolved", models.AuditInfo, fmt.Sprintf("alert %s", alertID))
	s.notifier.Push("Alert marked as resolved.", notify.TypeInfo)
}
