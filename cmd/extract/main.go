package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/churnpilot/churnpilot/internal/common"
	"github.com/churnpilot/churnpilot/internal/entity"
	"github.com/churnpilot/churnpilot/internal/export"
	"github.com/churnpilot/churnpilot/internal/fetcher"
	"github.com/churnpilot/churnpilot/internal/llm"
	"github.com/churnpilot/churnpilot/internal/llm/anthropic"
	"github.com/churnpilot/churnpilot/internal/llm/gemini"
	"github.com/churnpilot/churnpilot/internal/pipeline"
	"github.com/churnpilot/churnpilot/internal/repository"
	"github.com/churnpilot/churnpilot/internal/usage"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	if len(os.Args) < 2 {
		logger.Error("usage: extract <url | card description text> [user_id]")
		os.Exit(2)
	}
	input := os.Args[1]

	userID := uuid.Nil
	if len(os.Args) >= 3 {
		id, err := uuid.Parse(os.Args[2])
		if err != nil {
			logger.Error("invalid user_id", "arg", os.Args[2], "error", err)
			os.Exit(2)
		}
		userID = id
	}

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(2)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
	defer cancel()

	counters, audit, cleanup, err := openStores(ctx, cfg, logger)
	if err != nil {
		logger.Error("open counter store", "backend", cfg.Database.Backend, "error", err)
		os.Exit(1)
	}
	defer cleanup()

	limiter := usage.NewLimiter(counters, audit, usage.Limits{
		PerUserDaily:   int64(cfg.Limits.PerUserDaily),
		PerUserMonthly: int64(cfg.Limits.PerUserMonthly),
		GlobalMonthly:  int64(cfg.Limits.GlobalMonthly),
	}, logger)

	var providers []llm.Provider
	if cfg.LLM.GeminiAPIKey != "" {
		providers = append(providers, gemini.NewClient(gemini.Config{
			APIKey: cfg.LLM.GeminiAPIKey,
			Model:  cfg.LLM.GeminiModel,
		}, logger))
	}
	if cfg.LLM.AnthropicAPIKey != "" {
		providers = append(providers, anthropic.NewClient(anthropic.Config{
			APIKey:  cfg.LLM.AnthropicAPIKey,
			Model:   cfg.LLM.ClaudeModel,
			Timeout: cfg.LLM.Timeout,
		}, logger))
	}

	pageFetcher := fetcher.New(fetcher.Config{
		ReaderBaseURL:  cfg.Fetcher.ReaderBaseURL,
		Timeout:        cfg.Fetcher.Timeout,
		AllowedDomains: cfg.Fetcher.AllowedDomains,
	}, logger)

	extractor := pipeline.NewExtractor(providers, pageFetcher, limiter, logger, pipeline.Options{
		MaxContentChars: cfg.LLM.MaxContentChars,
	})

	var src pipeline.Source
	if strings.HasPrefix(input, "http://") || strings.HasPrefix(input, "https://") {
		src.URL = input
	} else {
		src.Text = input
	}

	result, err := extractor.Extract(ctx, userID, src)
	if err != nil {
		logger.Error("extraction failed", "error", err)
		os.Exit(1)
	}

	if out := os.Getenv("XLSX_OUT"); out != "" {
		data, err := export.NewService(logger).ExportCardsXLSX([]*entity.CardData{result.Card})
		if err != nil {
			logger.Error("xlsx export failed", "error", err)
		} else if err := os.WriteFile(out, data, 0o644); err != nil {
			logger.Error("write xlsx", "path", out, "error", err)
		} else {
			logger.Info("xlsx written", "path", out)
		}
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result.Card); err != nil {
		logger.Error("encode result", "error", err)
		os.Exit(1)
	}

	logger.Info("done",
		"model", result.Model,
		"template_id", result.Match.TemplateID,
		"confidence", result.Match.Confidence,
		"remaining", result.Remaining,
	)
}

func openStores(ctx context.Context, cfg *common.Config, logger *slog.Logger) (usage.CounterStore, usage.AuditLog, func(), error) {
	switch cfg.Database.Backend {
	case "postgres":
		store, err := repository.NewPostgresStore(ctx, cfg.Database.DSN)
		if err != nil {
			return nil, nil, nil, err
		}
		if err := store.EnsureSchema(ctx); err != nil {
			store.Close()
			return nil, nil, nil, err
		}
		return store, store, store.Close, nil

	case "redis":
		counters, err := repository.NewRedisCounters(ctx, cfg.Database.RedisAddr, cfg.Database.DialTimeout)
		if err != nil {
			return nil, nil, nil, err
		}
		// Redis keeps counters only; audits stay local.
		audit, cleanup, err := openSQLiteAudit(ctx, cfg)
		if err != nil {
			_ = counters.Close()
			return nil, nil, nil, err
		}
		return counters, audit, func() {
			cleanup()
			if err := counters.Close(); err != nil {
				logger.Warn("close redis", "error", err)
			}
		}, nil

	default:
		store, err := repository.NewSQLiteStore(cfg.Database.SQLitePath)
		if err != nil {
			return nil, nil, nil, err
		}
		if err := store.EnsureSchema(ctx); err != nil {
			_ = store.Close()
			return nil, nil, nil, err
		}
		return store, store, func() { _ = store.Close() }, nil
	}
}

func openSQLiteAudit(ctx context.Context, cfg *common.Config) (usage.AuditLog, func(), error) {
	store, err := repository.NewSQLiteStore(cfg.Database.SQLitePath)
	if err != nil {
		return nil, nil, err
	}
	if err := store.EnsureSchema(ctx); err != nil {
		_ = store.Close()
		return nil, nil, err
	}
	return store, func() { _ = store.Close() }, nil
}
