package models

import "time"

// Role identifies what a user is allowed to see and do in the portal.
type Role string

// Known roles. The set is closed; anything else is rejected at signup.
const (
	RoleStudent      Role = "student"
	RoleFaculty      Role = "faculty"
	RoleHOD          Role = "hod"
	RoleAdmin        Role = "admin"
	RoleClassAdvisor Role = "class_advisor"
	RolePrincipal    Role = "principal"
)

// UserStatus tracks the account lifecycle.
type UserStatus string

const (
	UserStatusActive   UserStatus = "active"
	UserStatusPending  UserStatus = "pending"
	UserStatusRejected UserStatus = "rejected"
)

// Performance holds the optional academic counters kept per student.
type Performance struct {
	AttendedClasses int      `json:"attended_classes"`
	TotalClasses    int      `json:"total_classes"`
	Grades          []string `json:"grades,omitempty"`
}

// User represents a portal account. Display names are unique
// case-insensitively across the whole user collection. Accounts are never
// hard-deleted; lock and status changes are the only retirement paths.
type User struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Password    string       `json:"password"`
	Role        Role         `json:"role"`
	Department  string       `json:"department"`
	Year        string       `json:"year,omitempty"`
	Status      UserStatus   `json:"status"`
	Locked      bool         `json:"locked,omitempty"`
	Performance *Performance `json:"performance,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
}

// ValidRole reports whether r is one of the known roles.
func ValidRole(r Role) bool {
	switch r {
	case RoleStudent, RoleFaculty, RoleHOD, RoleAdmin, RoleClassAdvisor, RolePrincipal:
		return true
	default:
		return false
	}
}
