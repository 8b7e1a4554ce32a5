package discordhook

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRetry_RecoversAfterRateLimit(t *testing.T) {
	var requestCount int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&requestCount, 1) <= 2 {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusTooManyRequests)
			_, _ = w.Write([]byte(`{"message":"You are being rate limited.","retry_after":0.25}`))
			return
		}
		_, _ = w.Write([]byte(`{"id":"1"}`))
	}))
	defer server.Close()

	webhook, err := NewWebhookBuilder().
		WithURL(server.URL).
		WithContent("retry me").
		WithRateLimitRetry(true).
		Build()
	require.NoError(t, err)

	var delays []time.Duration
	webhook.retry.wait = func(ctx context.Context, delay time.Duration) error {
		delays = append(delays, delay)
		return nil
	}

	results, err := webhook.Execute(context.Background())
	require.NoError(t, err)
	require.NoError(t, results[0].Err)
	assert.Equal(t, int32(3), atomic.LoadInt32(&requestCount))

	// Each wait is the reported retry_after plus the safety pad.
	require.Len(t, delays, 2)
	for _, delay := range delays {
		assert.Equal(t, 250*time.Millisecond+retryAfterPad, delay)
	}
}

func TestRetry_DisabledSurfacesRateLimit(t *testing.T) {
	var requestCount int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&requestCount, 1)
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"retry_after":2.5}`))
	}))
	defer server.Close()

	webhook := newTestWebhook(t, server.URL)
	webhook.SetContent("no retry")

	results, err := webhook.Execute(context.Background())
	require.NoError(t, err)
	require.Len(t, results, 1)

	var rateLimitErr *RateLimitedError
	require.ErrorAs(t, results[0].Err, &rateLimitErr)
	assert.Equal(t, 2500*time.Millisecond, rateLimitErr.RetryAfter)
	assert.Equal(t, int32(1), atomic.LoadInt32(&requestCount)) // retries are opt-in
}

func TestRetry_BudgetExhausted(t *testing.T) {
	var requestCount int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&requestCount, 1)
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"retry_after":0.01}`))
	}))
	defer server.Close()

	webhook, err := NewWebhookBuilder().
		WithURL(server.URL).
		WithContent("always limited").
		WithRateLimitRetry(true).
		WithMaxRetries(2).
		Build()
	require.NoError(t, err)

	var waits int
	webhook.retry.wait = func(ctx context.Context, delay time.Duration) error {
		waits++
		return nil
	}

	results, err := webhook.Execute(context.Background())
	require.NoError(t, err)

	var rateLimitErr *RateLimitedError
	require.ErrorAs(t, results[0].Err, &rateLimitErr)
	assert.Equal(t, int32(3), atomic.LoadInt32(&requestCount)) // initial attempt plus two retries
	assert.Equal(t, 2, waits)
}

func TestParseRetryAfter(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		header   string
		expected time.Duration
	}{
		{
			name:     "json body",
			body:     `{"retry_after":1.25}`,
			expected: 1250 * time.Millisecond,
		},
		{
			name:     "header fallback",
			body:     "not json",
			header:   "1.5",
			expected: 1500 * time.Millisecond,
		},
		{
			name:     "body wins over header",
			body:     `{"retry_after":0.5}`,
			header:   "9",
			expected: 500 * time.Millisecond,
		},
		{
			name:     "nothing reported",
			body:     `{}`,
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := &webhookResponse{
				StatusCode: http.StatusTooManyRequests,
				Header:     http.Header{},
				Body:       []byte(tt.body),
			}
			if tt.header != "" {
				resp.Header.Set("Retry-After", tt.header)
			}
			assert.Equal(t, tt.expected, parseRetryAfter(resp))
		})
	}
}

func TestSleepWait_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	err := sleepWait(ctx, time.Minute)
	require.ErrorIs(t, err, context.Canceled)
	assert.Less(t, time.Since(start), time.Second)
}

func TestNewRetryHandler_DefaultBudget(t *testing.T) {
	rh := newRetryHandler(true, 0, zerolog.Nop())
	assert.Equal(t, DefaultMaxRetries, rh.maxRetries)

	rh = newRetryHandler(true, 8, zerolog.Nop())
	assert.Equal(t, 8, rh.maxRetries)
}
