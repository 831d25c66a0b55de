package models

import "time"

// Announcement is a broadcast message optionally scoped to a role or
// department. Reactions map an emoji symbol to the set of user ids that
// applied it; a user id appears at most once per symbol.
type Announcement struct {
	ID         string              `json:"id"`
	Title      string              `json:"title"`
	Content    string              `json:"content"`
	Author     string              `json:"author"`
	Timestamp  time.Time           `json:"timestamp"`
	TargetRole Role                `json:"target_role,omitempty"`
	TargetDept string              `json:"target_dept,omitempty"`
	Reactions  map[string][]string `json:"reactions,omitempty"`
}

// HasReaction reports whether userID is in the reactor set for emoji.
func (a Announcement) HasReaction(emoji, userID string) bool {
	for _, id := range a.Reactions[emoji] {
		if id == userID {
			return true
		}
	}
	return false
}
