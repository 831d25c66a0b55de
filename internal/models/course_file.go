package models

import "time"

// CourseFileStatus is the faculty-facing approval state of a course file.
type CourseFileStatus string

const (
	CourseFilePendingReview CourseFileStatus = "pending_review"
	CourseFileApproved      CourseFileStatus = "approved"
	CourseFileNeedsRevision CourseFileStatus = "needs_revision"
)

// ReviewStatus is the lifecycle of an AI review attached to a course file.
// A missing AIReview field means no review was ever requested.
type ReviewStatus string

const (
	ReviewPending  ReviewStatus = "pending"
	ReviewComplete ReviewStatus = "complete"
	ReviewFailed   ReviewStatus = "failed"
)

// Correction pairs a passage from the submitted material with its suggested
// replacement.
type Correction struct {
	Original  string `json:"original"`
	Corrected string `json:"corrected"`
}

// AIReview is the structured output of the external review provider.
type AIReview struct {
	Summary     string       `json:"summary"`
	Suggestions []string     `json:"suggestions"`
	Corrections []Correction `json:"corrections,omitempty"`
	Status      ReviewStatus `json:"status"`
}

// FileDescriptor names one attached document inside a course file bundle.
type FileDescriptor struct {
	Name string `json:"name"`
	Size int64  `json:"size,omitempty"`
	URL  string `json:"url,omitempty"`
}

// CourseFile is a faculty submission bundle for one subject and term. The
// ReviewGeneration counter fences overlapping review requests: a provider
// response is applied only if the generation it was issued under is still
// current.
type CourseFile struct {
	ID               string           `json:"id"`
	FacultyID        string           `json:"faculty_id"`
	FacultyName      string           `json:"faculty_name"`
	Department       string           `json:"department"`
	Subject          string           `json:"subject"`
	Term             string           `json:"term"`
	Files            []FileDescriptor `json:"files,omitempty"`
	Status           CourseFileStatus `json:"status"`
	SubmittedAt      time.Time        `json:"submitted_at"`
	AIReview         *AIReview        `json:"ai_review,omitempty"`
	ReviewGeneration uint64           `json:"review_generation,omitempty"`
}
