package models

import "time"

// AlertSeverity ranks a security alert.
type AlertSeverity string

const (
	SeverityLow      AlertSeverity = "low"
	SeverityMedium   AlertSeverity = "medium"
	SeverityHigh     AlertSeverity = "high"
	SeverityCritical AlertSeverity = "critical"
)

// ResponsePlan carries the suggested handling for an alert.
type ResponsePlan struct {
	RecommendedAction string   `json:"recommended_action"`
	Steps             []string `json:"steps,omitempty"`
}

// SecurityAlert is raised by detection logic or seeding. The resolved flag is
// monotonic: once true it never transitions back, and resolving an already
// resolved alert is a no-op.
type SecurityAlert struct {
	ID            string        `json:"id"`
	Category      string        `json:"category"`
	Title         string        `json:"title"`
	Description   string        `json:"description"`
	Timestamp     time.Time     `json:"timestamp"`
	Severity      AlertSeverity `json:"severity"`
	RelatedUserID string        `json:"related_user_id,omitempty"`
	Resolved      bool          `json:"resolved"`
	Plan          *ResponsePlan `json:"plan,omitempty"`
}
