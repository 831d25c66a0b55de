package dto

// AnnouncementCreateRequest carries a new broadcast message.
type AnnouncementCreateRequest struct {
	Title      string `json:"title" validate:"required,min=3,max=255"`
	Content    string `json:"content" validate:"required"`
	TargetRole string `json:"target_role,omitempty"`
	TargetDept string `json:"target_dept,omitempty"`
}

// ReactionRequest toggles one emoji reaction on an announcement.
type ReactionRequest struct {
	Emoji string `json:"emoji" validate:"required,max=16"`
}
