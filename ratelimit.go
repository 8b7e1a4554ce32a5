package discordhook

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/rs/zerolog"
)

// DefaultMaxRetries is the default number of retries after a rate limited
// attempt.
const DefaultMaxRetries = 5

// retryAfterPad is added on top of Discord's reported retry_after so the
// retried request does not land exactly on the reset instant.
const retryAfterPad = 150 * time.Millisecond

// waitFunc blocks for the given delay or until the context is done.
type waitFunc func(ctx context.Context, delay time.Duration) error

func sleepWait(ctx context.Context, delay time.Duration) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(delay):
		return nil
	}
}

// retryHandler repeats rate limited webhook requests.
type retryHandler struct {
	enabled    bool
	maxRetries int
	logger     zerolog.Logger
	wait       waitFunc
}

func newRetryHandler(enabled bool, maxRetries int, logger zerolog.Logger) *retryHandler {
	if maxRetries <= 0 {
		maxRetries = DefaultMaxRetries
	}
	return &retryHandler{
		enabled:    enabled,
		maxRetries: maxRetries,
		logger:     logger.With().Str("component", "RetryHandler").Logger(),
		wait:       sleepWait,
	}
}

// DoWithRetry executes doFunc and, when rate limit retries are enabled,
// repeats it after each 429 response for up to maxRetries retries. The
// returned response is never a 429: a rate limit that cannot be waited out
// surfaces as a *RateLimitedError carrying Discord's reported retry_after.
func (rh *retryHandler) DoWithRetry(ctx context.Context, url string, doFunc func() (*webhookResponse, error)) (*webhookResponse, error) {
	for attempt := 0; ; attempt++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		resp, err := doFunc()
		if err != nil {
			return nil, err
		}
		if resp.StatusCode != http.StatusTooManyRequests {
			return resp, nil
		}

		retryAfter := parseRetryAfter(resp)
		if !rh.enabled || attempt >= rh.maxRetries {
			return nil, NewRateLimitedError(url, retryAfter)
		}

		delay := retryAfter + retryAfterPad
		rh.logger.Warn().
			Str("url", url).
			Int("attempt", attempt+1).
			Int("max_retries", rh.maxRetries).
			Dur("delay", delay).
			Msg("Rate limited, waiting before retry")

		if err := rh.wait(ctx, delay); err != nil {
			return nil, err
		}
	}
}

// parseRetryAfter extracts the wait duration from a 429 response. The JSON
// body's retry_after value takes precedence, the Retry-After header is the
// fallback. Discord reports both in seconds, possibly fractional.
func parseRetryAfter(resp *webhookResponse) time.Duration {
	var data struct {
		RetryAfter float64 `json:"retry_after"`
	}
	if err := json.Unmarshal(resp.Body, &data); err == nil && data.RetryAfter > 0 {
		return time.Duration(data.RetryAfter * float64(time.Second))
	}

	if s := resp.Header.Get("Retry-After"); s != "" {
		if v, err := strconv.ParseFloat(s, 64); err == nil {
			return time.Duration(v * float64(time.Second))
		}
	}

	return 0
}
