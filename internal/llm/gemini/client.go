// Package gemini implements the primary model provider on the Google GenAI
// SDK.
package gemini

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"google.golang.org/genai"

	"github.com/churnpilot/churnpilot/internal/llm"
)

// Config for the Gemini client.
type Config struct {
	APIKey string
	Model  string // e.g. "gemini-2.5-flash"
}

type Client struct {
	cfg    Config
	logger *slog.Logger
}

func NewClient(cfg Config, logger *slog.Logger) *Client {
	if cfg.Model == "" {
		cfg.Model = "gemini-2.5-flash"
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{cfg: cfg, logger: logger}
}

func (c *Client) Name() string { return "gemini" }

// Complete sends the combined prompt to Gemini and returns the raw reply.
// Gemini takes no separate system role here, so the system prompt is
// prepended to the user prompt.
func (c *Client) Complete(ctx context.Context, systemPrompt, userPrompt string) (*llm.Completion, error) {
	if c.cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini: API key is not configured")
	}

	rid := uuid.New().String()
	start := time.Now()
	c.logger.Info("llm.gemini.request",
		"req_id", rid,
		"model", c.cfg.Model,
		"prompt_len", len(systemPrompt)+len(userPrompt),
	)

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      c.cfg.APIKey,
		HTTPOptions: genai.HTTPOptions{APIVersion: "v1"},
	})
	if err != nil {
		return nil, fmt.Errorf("gemini: create client: %w", err)
	}

	fullPrompt := systemPrompt + "\n\n" + userPrompt
	contents := []*genai.Content{
		{
			Role:  "user",
			Parts: []*genai.Part{{Text: fullPrompt}},
		},
	}

	resp, err := client.Models.GenerateContent(ctx, c.cfg.Model, contents, nil)
	if err != nil {
		c.logger.Error("llm.gemini.error",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return nil, fmt.Errorf("gemini: generate content: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return nil, fmt.Errorf("gemini: empty response from model")
	}

	out := &llm.Completion{Text: text, Model: c.cfg.Model}
	if resp.UsageMetadata != nil {
		out.InputTokens = int(resp.UsageMetadata.PromptTokenCount)
		out.OutputTokens = int(resp.UsageMetadata.CandidatesTokenCount)
	}

	c.logger.Info("llm.gemini.response",
		"req_id", rid,
		"reply_len", len(text),
		"input_tokens", out.InputTokens,
		"output_tokens", out.OutputTokens,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return out, nil
}
