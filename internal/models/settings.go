package models

// AppSettings is the durable singleton holding presentation-level knobs.
type AppSettings struct {
	TimeSlots   []string `json:"time_slots"`
	AccentColor string   `json:"accent_color"`
}

// DefaultSettings returns the settings used before anyone customises them.
func DefaultSettings() AppSettings {
	return AppSettings{
		TimeSlots: []string{
			"09:00 - 09:50", "09:50 - 10:40", "10:50 - 11:40",
			"11:40 - 12:30", "13:20 - 14:10", "14:10 - 15:00",
		},
		AccentColor: "#4f46e5",
	}
}
