// Package llm defines the model-provider contract and the machinery that
// turns a free-form model reply into a validated card record.
package llm

import "context"

// Completion is the raw result of one model call.
type Completion struct {
	Text         string
	Model        string
	InputTokens  int
	OutputTokens int
}

// Provider is implemented by each model backend. Complete sends the prompts
// and returns the model's raw free-text reply; it may fail for quota, auth,
// or network reasons. Timeouts are the provider's own responsibility.
type Provider interface {
	Name() string
	Complete(ctx context.Context, systemPrompt, userPrompt string) (*Completion, error)
}
