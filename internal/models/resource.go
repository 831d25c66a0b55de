package models

import "time"

// ResourceOrigin names where a resource was sourced from.
type ResourceOrigin string

const (
	OriginLocal      ResourceOrigin = "local"
	OriginCloudinary ResourceOrigin = "cloudinary"
	OriginDrive      ResourceOrigin = "gdrive"
)

// Resource is a shared study material. Resources are immutable once created;
// the collection is kept newest-first.
type Resource struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	Kind         string         `json:"kind"`
	Department   string         `json:"department"`
	Subject      string         `json:"subject"`
	UploaderID   string         `json:"uploader_id"`
	UploaderName string         `json:"uploader_name"`
	Timestamp    time.Time      `json:"timestamp"`
	Origin       ResourceOrigin `json:"origin"`
	URL          string         `json:"url,omitempty"`
}
