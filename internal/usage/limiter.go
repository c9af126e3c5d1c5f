// Package usage enforces extraction quotas and records an audit trail of
// model calls. Counters live in a pluggable store keyed by user and period.
package usage

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/churnpilot/churnpilot/internal/entity"
)

// CounterStore is the minimal counter capability the limiter needs. The
// increment must be atomic so concurrent extractions never lose counts.
type CounterStore interface {
	IncrementAndGet(ctx context.Context, key string) (int64, error)
	Read(ctx context.Context, key string) (int64, error)
}

// AuditLog appends one row per model call. Failures here never undo usage
// counters that were already incremented.
type AuditLog interface {
	Append(ctx context.Context, audit *entity.ExtractionAudit) error
}

// Limits holds the quota ceilings. Zero means unlimited for that scope.
type Limits struct {
	PerUserDaily   int64
	PerUserMonthly int64
	GlobalMonthly  int64
}

// DefaultLimits matches the free tier.
var DefaultLimits = Limits{
	PerUserDaily:   5,
	PerUserMonthly: 10,
	GlobalMonthly:  1000,
}

// QuotaStatus is the answer to a limit check.
type QuotaStatus struct {
	Allowed   bool
	Remaining int64
	Message   string
}

// Record captures one model call for RecordUsage.
type Record struct {
	ModelName      string
	ExtractionType string
	InputTokens    int
	OutputTokens   int
	Success        bool
}

// Limiter checks and records per-user and global extraction usage.
type Limiter struct {
	counters CounterStore
	audit    AuditLog
	limits   Limits
	logger   *slog.Logger
	now      func() time.Time
}

func NewLimiter(counters CounterStore, audit AuditLog, limits Limits, logger *slog.Logger) *Limiter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Limiter{
		counters: counters,
		audit:    audit,
		limits:   limits,
		logger:   logger,
		now:      time.Now,
	}
}

// CheckLimit reports whether userID may run another extraction. The global
// monthly cap is checked first, then the user's daily cap, then the user's
// monthly cap, so the message always names the tightest exhausted scope.
func (l *Limiter) CheckLimit(ctx context.Context, userID uuid.UUID) (*QuotaStatus, error) {
	now := l.now().UTC()

	if l.limits.GlobalMonthly > 0 {
		global, err := l.counters.Read(ctx, globalMonthKey(now))
		if err != nil {
			return nil, fmt.Errorf("read global usage: %w", err)
		}
		if global >= l.limits.GlobalMonthly {
			return &QuotaStatus{
				Allowed: false,
				Message: "The extraction service has reached its monthly capacity. Please try again next month.",
			}, nil
		}
	}

	var dailyRemaining, monthlyRemaining int64 = -1, -1

	if l.limits.PerUserDaily > 0 {
		daily, err := l.counters.Read(ctx, userDayKey(userID, now))
		if err != nil {
			return nil, fmt.Errorf("read daily usage: %w", err)
		}
		if daily >= l.limits.PerUserDaily {
			return &QuotaStatus{
				Allowed: false,
				Message: fmt.Sprintf("You have used all %d extractions for today. Your daily limit resets at midnight UTC.", l.limits.PerUserDaily),
			}, nil
		}
		dailyRemaining = l.limits.PerUserDaily - daily
	}

	if l.limits.PerUserMonthly > 0 {
		monthly, err := l.counters.Read(ctx, userMonthKey(userID, now))
		if err != nil {
			return nil, fmt.Errorf("read monthly usage: %w", err)
		}
		if monthly >= l.limits.PerUserMonthly {
			return &QuotaStatus{
				Allowed: false,
				Message: fmt.Sprintf("You have used all %d extractions for this month. Your limit resets on the 1st.", l.limits.PerUserMonthly),
			}, nil
		}
		monthlyRemaining = l.limits.PerUserMonthly - monthly
	}

	remaining := minRemaining(dailyRemaining, monthlyRemaining)
	return &QuotaStatus{Allowed: true, Remaining: remaining}, nil
}

// RecordUsage bumps the user's daily and monthly counters plus the global
// monthly counter, then appends an audit row. Audit failures are logged and
// swallowed; the counters stand. Returns the audit row ID, or uuid.Nil when
// the audit append failed.
func (l *Limiter) RecordUsage(ctx context.Context, userID uuid.UUID, rec Record) (uuid.UUID, error) {
	now := l.now().UTC()

	for _, key := range []string{
		userDayKey(userID, now),
		userMonthKey(userID, now),
		globalMonthKey(now),
	} {
		if _, err := l.counters.IncrementAndGet(ctx, key); err != nil {
			return uuid.Nil, fmt.Errorf("increment usage counter %s: %w", key, err)
		}
	}

	audit := &entity.ExtractionAudit{
		ID:             uuid.New(),
		UserID:         userID,
		ModelName:      rec.ModelName,
		ExtractionType: rec.ExtractionType,
		InputTokens:    rec.InputTokens,
		OutputTokens:   rec.OutputTokens,
		Success:        rec.Success,
		CreatedAt:      now,
	}
	if l.audit != nil {
		if err := l.audit.Append(ctx, audit); err != nil {
			l.logger.Warn("usage.audit_failed", "user_id", userID, "error", err)
			return uuid.Nil, nil
		}
	}

	l.logger.Info("usage.recorded",
		"user_id", userID,
		"model", rec.ModelName,
		"type", rec.ExtractionType,
		"success", rec.Success,
	)
	return audit.ID, nil
}

func userDayKey(userID uuid.UUID, t time.Time) string {
	return fmt.Sprintf("user:%s:day:%s", userID, t.Format("2006-01-02"))
}

func userMonthKey(userID uuid.UUID, t time.Time) string {
	return fmt.Sprintf("user:%s:month:%s", userID, t.Format("2006-01"))
}

func globalMonthKey(t time.Time) string {
	return fmt.Sprintf("global:month:%s", t.Format("2006-01"))
}

func minRemaining(a, b int64) int64 {
	switch {
	case a < 0 && b < 0:
		return -1 // both scopes unlimited
	case a < 0:
		return b
	case b < 0:
		return a
	case a < b:
		return a
	default:
		return b
	}
}
