// Package pipeline wires fetching, model extraction, parsing, and catalog
// enrichment into the single card-extraction flow.
package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/churnpilot/churnpilot/internal/catalog"
	"github.com/churnpilot/churnpilot/internal/common"
	"github.com/churnpilot/churnpilot/internal/entity"
	"github.com/churnpilot/churnpilot/internal/fetcher"
	"github.com/churnpilot/churnpilot/internal/llm"
	"github.com/churnpilot/churnpilot/internal/usage"
)

// Source is the input to one extraction: exactly one of URL or Text.
type Source struct {
	URL  string
	Text string
}

func (s Source) extractionType() string {
	if s.URL != "" {
		return entity.ExtractionTypeURL
	}
	return entity.ExtractionTypeText
}

// Result is one completed extraction.
type Result struct {
	Card      *entity.CardData
	Match     entity.MatchResult
	Model     string
	Remaining int64 // extractions left after this one; -1 when unlimited or anonymous
	AuditID   uuid.UUID
	ElapsedMs int64
}

// Extractor runs the extraction pipeline. Providers are tried in order;
// each gets at most one attempt per extraction.
type Extractor struct {
	providers        []llm.Provider
	fetcher          *fetcher.Fetcher
	limiter          *usage.Limiter
	matcher          *catalog.Matcher
	logger           *slog.Logger
	maxContentChars  int
	enrichConfidence float64
}

// Options tunes an Extractor beyond its required collaborators.
type Options struct {
	MaxContentChars  int     // default llm.DefaultMaxContentChars
	EnrichConfidence float64 // default catalog.DefaultEnrichConfidence
}

func NewExtractor(providers []llm.Provider, f *fetcher.Fetcher, limiter *usage.Limiter, logger *slog.Logger, opts Options) *Extractor {
	if opts.MaxContentChars <= 0 {
		opts.MaxContentChars = llm.DefaultMaxContentChars
	}
	if opts.EnrichConfidence <= 0 {
		opts.EnrichConfidence = catalog.DefaultEnrichConfidence
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{
		providers:        providers,
		fetcher:          f,
		limiter:          limiter,
		matcher:          catalog.NewMatcher(catalog.Library),
		logger:           logger,
		maxContentChars:  opts.MaxContentChars,
		enrichConfidence: opts.EnrichConfidence,
	}
}

// Extract runs the full pipeline for src on behalf of userID. Pass uuid.Nil
// to skip quota checks and usage recording (internal callers only).
func (e *Extractor) Extract(ctx context.Context, userID uuid.UUID, src Source) (*Result, error) {
	start := time.Now()
	rid := uuid.New().String()
	ctx = common.WithRequestID(ctx, rid)

	e.logger.Info("extract.start", "req_id", rid, "type", src.extractionType(), "user_id", userID)

	metered := e.limiter != nil && userID != uuid.Nil
	if metered {
		status, err := e.limiter.CheckLimit(ctx, userID)
		if err != nil {
			return nil, common.WrapError(err, "check extraction quota")
		}
		if !status.Allowed {
			e.logger.Info("extract.quota_exceeded", "req_id", rid, "user_id", userID)
			return nil, common.NewExtractionError(status.Message, nil)
		}
	}

	content, err := e.resolveContent(ctx, src)
	if err != nil {
		return nil, err
	}

	completion, err := e.complete(ctx, rid, content)
	if err != nil {
		return nil, err
	}

	card, err := e.parse(completion.Text)
	if err != nil {
		e.logger.Error("extract.parse_failed", "req_id", rid, "model", completion.Model, "error", err)
		return nil, err
	}

	enriched, match := e.matcher.Enrich(card, e.enrichConfidence)
	if match.Matched() {
		e.logger.Info("extract.enriched",
			"req_id", rid,
			"template_id", match.TemplateID,
			"confidence", match.Confidence,
		)
	}

	result := &Result{
		Card:      enriched,
		Match:     match,
		Model:     completion.Model,
		Remaining: -1,
		ElapsedMs: time.Since(start).Milliseconds(),
	}

	if metered {
		auditID, err := e.limiter.RecordUsage(ctx, userID, usage.Record{
			ModelName:      completion.Model,
			ExtractionType: src.extractionType(),
			InputTokens:    completion.InputTokens,
			OutputTokens:   completion.OutputTokens,
			Success:        true,
		})
		if err != nil {
			return nil, common.WrapError(err, "record extraction usage")
		}
		result.AuditID = auditID

		if status, err := e.limiter.CheckLimit(ctx, userID); err == nil {
			result.Remaining = status.Remaining
		}
	}

	e.logger.Info("extract.done",
		"req_id", rid,
		"card", result.Card.Name,
		"issuer", result.Card.Issuer,
		"model", result.Model,
		"elapsed_ms", result.ElapsedMs,
	)
	return result, nil
}

// ExtractFromURL is a convenience wrapper over Extract.
func (e *Extractor) ExtractFromURL(ctx context.Context, userID uuid.UUID, url string) (*Result, error) {
	return e.Extract(ctx, userID, Source{URL: url})
}

// ExtractFromText is a convenience wrapper over Extract.
func (e *Extractor) ExtractFromText(ctx context.Context, userID uuid.UUID, text string) (*Result, error) {
	return e.Extract(ctx, userID, Source{Text: text})
}

func (e *Extractor) resolveContent(ctx context.Context, src Source) (string, error) {
	if src.URL != "" {
		raw, err := e.fetcher.Fetch(ctx, src.URL)
		if err != nil {
			return "", err
		}
		return fetcher.Preprocess(raw, e.maxContentChars), nil
	}

	text := strings.TrimSpace(src.Text)
	if text == "" {
		return "", common.NewExtractionError("empty input: provide a URL or card description text", nil)
	}
	return text, nil
}

// complete asks each provider in order until one returns a completion.
// A provider that fails is never retried within the same extraction.
func (e *Extractor) complete(ctx context.Context, rid, content string) (*llm.Completion, error) {
	if len(e.providers) == 0 {
		return nil, common.NewExtractionError("no extraction model is configured", nil)
	}

	userPrompt := llm.BuildExtractionPrompt(content, e.maxContentChars)

	var lastErr error
	for i, provider := range e.providers {
		if i > 0 {
			e.logger.Warn("extract.fallback",
				"req_id", rid,
				"from", e.providers[i-1].Name(),
				"to", provider.Name(),
				"error", lastErr,
			)
		}
		completion, err := provider.Complete(ctx, llm.SystemPrompt, userPrompt)
		if err == nil {
			return completion, nil
		}
		lastErr = err
	}
	return nil, common.NewExtractionError("all extraction models are currently unavailable", lastErr)
}

// parse recovers structured card data from model output. Parse details stay
// in the logs; callers get a generic message that never echoes model text.
func (e *Extractor) parse(raw string) (*entity.CardData, error) {
	jsonText, err := llm.ExtractJSON(raw)
	if err == nil {
		var card *entity.CardData
		card, err = llm.ParseCardJSON(jsonText)
		if err == nil {
			return card, nil
		}
	}

	var parseErr *llm.ParseError
	if errors.As(err, &parseErr) {
		return nil, common.NewExtractionError(
			"Unable to understand the card information in the model response. Please try again.", err)
	}
	return nil, common.WrapError(err, "parse model response")
}
