package dto

// SettingsUpdateRequest replaces the settings singleton.
type SettingsUpdateRequest struct {
	TimeSlots   []string `json:"time_slots" validate:"required,min=1,dive,required"`
	AccentColor string   `json:"accent_color" validate:"required,hexcolor"`
}
