package dataset

import (
	"context"
	"fmt"
	"io"
	"math"
	"math/rand/v2"
	"net/http"
	"time"

	"spacex-dashboard/internal/logging"
)

// RetryConfig defines how remote launch tables are re-fetched.
type RetryConfig struct {
	MaxAttempts       int           `json:"max_attempts"`
	InitialDelay      time.Duration `json:"initial_delay"`
	MaxDelay          time.Duration `json:"max_delay"`
	BackoffMultiplier float64       `json:"backoff_multiplier"`
	Jitter            bool          `json:"jitter"`
}

// FetchRetry applies to http(s) sources only.
var FetchRetry = RetryConfig{
	MaxAttempts:       3,
	InitialDelay:      1 * time.Second,
	MaxDelay:          30 * time.Second,
	BackoffMultiplier: 2.0,
	Jitter:            true,
}

// retryDelay is the wait before the given attempt (attempt >= 1 has failed).
func (c RetryConfig) retryDelay(attempt int) time.Duration {
	delay := time.Duration(float64(c.InitialDelay) * math.Pow(c.BackoffMultiplier, float64(attempt-1)))
	if delay > c.MaxDelay {
		delay = c.MaxDelay
	}
	if c.Jitter {
		delay += time.Duration(float64(delay) * 0.1 * (rand.Float64() - 0.5))
	}
	return delay
}

// statusError is a non-200 response.
type statusError struct {
	status string
	code   int
}

func (e *statusError) Error() string {
	return fmt.Sprintf("failed to GET CSV: %s", e.status)
}

// retryable reports whether a failed fetch may succeed later: transport
// errors, 429 and 5xx. Other statuses are permanent.
func retryable(err error) bool {
	se, ok := err.(*statusError)
	if !ok {
		return true
	}
	return se.code == http.StatusTooManyRequests || se.code >= 500
}

func fetchOnce(ctx context.Context, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build CSV request: %w", err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to GET CSV: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, &statusError{status: resp.Status, code: resp.StatusCode}
	}
	return resp.Body, nil
}

// fetch GETs url, retrying transient failures with exponential backoff.
func fetch(ctx context.Context, url string, cfg RetryConfig) (io.ReadCloser, error) {
	logger := logging.New("dataset")
	attempts := max(cfg.MaxAttempts, 1)

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		body, err := fetchOnce(ctx, url)
		if err == nil {
			return body, nil
		}
		lastErr = err
		if ctx.Err() != nil || !retryable(err) || attempt == attempts {
			break
		}

		delay := cfg.retryDelay(attempt)
		logger.Warn().Err(err).Int("attempt", attempt).Dur("retry_in", delay).Msg("❌ CSV fetch failed, retrying")
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delay):
		}
	}
	return nil, lastErr
}
