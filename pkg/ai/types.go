package ai

import "context"

// ReviewInput carries the artefacts sent to the review provider for one
// course file bundle.
type ReviewInput struct {
	Subject    string
	Term       string
	Department string
	FileNames  []string
	Notes      string
}

// Correction pairs a passage with its suggested replacement.
type Correction struct {
	Original  string `json:"original"`
	Corrected string `json:"corrected"`
}

// ReviewResult is the structured feedback returned by the review provider.
// Any provider response that does not parse into this shape is treated as a
// provider failure by the caller.
type ReviewResult struct {
	Summary     string                 `json:"summary"`
	Suggestions []string               `json:"suggestions"`
	Corrections []Correction           `json:"corrections,omitempty"`
	Raw         map[string]interface{} `json:"raw,omitempty"`
}

// Reviewer describes an AI model capable of reviewing course file bundles.
type Reviewer interface {
	Review(ctx context.Context, input ReviewInput) (ReviewResult, error)
}
