package logistics

import (
	"context"
	"net/http"
	"time"

	"seller-console/internal/logx"
)

type counter interface {
	Inc()
}

// RetryConfig describes the retry behavior of the gateway transport.
type RetryConfig struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
}

// RetryingTransport is an http.RoundTripper decorator that retries idempotent
// requests on transient failures with exponential backoff. Mutating requests
// pass through untouched: the console favors re-read-after-write over replay.
type RetryingTransport struct {
	next    http.RoundTripper
	logger  logx.Logger
	retries counter
	cfg     RetryConfig
}

// NewRetryingTransport decorates next with retry behavior. next may be nil
// for http.DefaultTransport.
func NewRetryingTransport(next http.RoundTripper, logger logx.Logger, retries counter, cfg RetryConfig) *RetryingTransport {
	if next == nil {
		next = http.DefaultTransport
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 1
	}
	return &RetryingTransport{next: next, logger: logger, retries: retries, cfg: cfg}
}

// RoundTrip implements http.RoundTripper.
func (t *RetryingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if !idempotent(req.Method) {
		return t.next.RoundTrip(req)
	}

	var (
		resp    *http.Response
		lastErr error
	)
	for attempt := 1; attempt <= t.cfg.MaxAttempts; attempt++ {
		resp, lastErr = t.next.RoundTrip(req)
		if !retryable(resp, lastErr) {
			return resp, lastErr
		}
		if req.Context().Err() != nil || attempt == t.cfg.MaxAttempts {
			break
		}
		// drain so the connection can be reused
		if resp != nil {
			_ = resp.Body.Close()
		}

		delay := backoff(t.cfg.BaseDelay, t.cfg.MaxDelay, attempt)
		if t.retries != nil {
			t.retries.Inc()
		}
		t.logger.Warn("logistics gateway retry",
			logx.String("method", req.Method),
			logx.String("path", req.URL.Path),
			logx.Int("attempt", attempt),
			logx.Duration("delay", delay),
			logx.Any("err", lastErr),
		)
		if !sleepWithContext(req.Context(), delay) {
			break
		}
	}
	return resp, lastErr
}

func idempotent(method string) bool {
	return method == http.MethodGet || method == http.MethodHead
}

// retryable marks network errors and throttling/upstream statuses for retry.
func retryable(resp *http.Response, err error) bool {
	if err != nil {
		return true
	}
	switch resp.StatusCode {
	case http.StatusTooManyRequests,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	default:
		return false
	}
}

func backoff(base, max time.Duration, attempt int) time.Duration {
	d := base << (attempt - 1)
	if d > max {
		return max
	}
	return d
}

func sleepWithContext(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return true
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
