package ai

import (
	"context"
	"errors"
	"fmt"
)

// ErrProviderNotReady marks providers that are configured but cannot serve
// reviews yet.
var ErrProviderNotReady = errors.New("review provider not ready")

// AnthropicConfig holds credentials for the Anthropic reviewer.
type AnthropicConfig struct {
	APIKey string
	Model  string
}

// AnthropicReviewer reserves the provider slot until the SDK integration
// lands. Review always fails with ErrProviderNotReady, which the review
// lifecycle reports as a failed cycle rather than a crash.
type AnthropicReviewer struct {
	model string
}

// NewAnthropicReviewer validates the credentials and returns the stub.
func NewAnthropicReviewer(cfg AnthropicConfig) (*AnthropicReviewer, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("anthropic api key is required")
	}
	return &AnthropicReviewer{model: cfg.Model}, nil
}

func (a *AnthropicReviewer) Review(ctx context.Context, input ReviewInput) (ReviewResult, error) {
	return ReviewResult{}, fmt.Errorf("anthropic %q: %w", a.model, ErrProviderNotReady)
}
