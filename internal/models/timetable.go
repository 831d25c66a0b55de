package models

// TimetableEntry places one subject in a weekly grid cell.
type TimetableEntry struct {
	ID          string `json:"id"`
	Day         string `json:"day"`
	Period      int    `json:"period"`
	Subject     string `json:"subject"`
	FacultyName string `json:"faculty_name,omitempty"`
	Department  string `json:"department"`
	Year        string `json:"year,omitempty"`
	Room        string `json:"room,omitempty"`
}
