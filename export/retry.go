package export

import (
	"context"
	"math"
	"time"

	"golang.org/x/exp/slog"
)

// RetryConfig controls how often a failed API call is attempted again.
// MaxRetries of zero means fail on the first error.
type RetryConfig struct {
	MaxRetries        int
	InitialDelay      time.Duration
	MaxDelay          time.Duration
	BackoffMultiplier float64
}

func (e *Exporter) withRetry(ctx context.Context, op string, fn func() error) error {
	cfg := e.cfg.Retry
	var lastErr error

	for attempt := 0; attempt <= cfg.MaxRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return newAPIError(op, err)
		}

		err := fn()
		if err == nil {
			if attempt > 0 {
				e.logger.Info("api call succeeded after retry", slog.String("op", op), slog.Int("attempt", attempt+1))
			}
			return nil
		}
		err = newAPIError(op, err)
		lastErr = err

		if attempt == cfg.MaxRetries {
			break
		}

		delay := backoff(cfg, attempt)
		e.logger.Warn("api call failed, retrying", slog.String("op", op), slog.Int("attempt", attempt+1), slog.Duration("delay", delay), slog.String("error", err.Error()))

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return newAPIError(op, ctx.Err())
		case <-timer.C:
		}
	}

	return lastErr
}

func backoff(cfg RetryConfig, attempt int) time.Duration {
	multiplier := cfg.BackoffMultiplier
	if multiplier < 1 {
		multiplier = 1
	}
	delay := time.Duration(float64(cfg.InitialDelay) * math.Pow(multiplier, float64(attempt)))
	if cfg.MaxDelay > 0 && delay > cfg.MaxDelay {
		delay = cfg.MaxDelay
	}

	return delay
}
