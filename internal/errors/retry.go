package errors

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// RetryConfig configures retry behavior
type RetryConfig struct {
	MaxAttempts int           // Maximum number of attempts (including initial)
	InitialWait time.Duration // Initial wait before first retry
	MaxWait     time.Duration // Maximum wait between retries
	Multiplier  float64       // Backoff multiplier (e.g., 2.0 for exponential)
}

// DefaultRetryConfig returns sensible defaults for retry behavior
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: 3,
		InitialWait: 100 * time.Millisecond,
		MaxWait:     2 * time.Second,
		Multiplier:  2.0,
	}
}

// Retry executes fn with exponential backoff retry logic.
// Permanent errors abort immediately; everything else is retried up to
// MaxAttempts. It returns nil on success or the last error encountered.
func Retry(ctx context.Context, cfg RetryConfig, fn func() error) error {
	var lastErr error
	wait := cfg.InitialWait

	for attempt := 1; attempt <= cfg.MaxAttempts; attempt++ {
		err := fn()
		if err == nil {
			return nil
		}

		lastErr = err

		// Permanent errors are not worth retrying
		var permErr *PermanentError
		if errors.As(err, &permErr) {
			return err
		}

		if attempt == cfg.MaxAttempts {
			break
		}

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return fmt.Errorf("retry cancelled: %w", ctx.Err())
		case <-timer.C:
		}

		wait = time.Duration(float64(wait) * cfg.Multiplier)
		if wait > cfg.MaxWait {
			wait = cfg.MaxWait
		}
	}

	return fmt.Errorf("retry failed after %d attempts: %w", cfg.MaxAttempts, lastErr)
}
