package dto

// CloudImportRequest registers a resource already hosted by a cloud provider.
type CloudImportRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=255"`
	URL      string `json:"url" validate:"required,url"`
	Provider string `json:"provider" validate:"required,oneof=cloudinary gdrive"`
	Subject  string `json:"subject,omitempty"`
	Kind     string `json:"kind,omitempty"`
}
