package discordhook

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEdit_SendsPatch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.True(t, strings.HasSuffix(r.URL.Path, "/messages/123"), "path %q", r.URL.Path)
		assert.Empty(t, r.URL.RawQuery) // edits go to the bare message endpoint
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		var payload MessagePayload
		require.NoError(t, json.Unmarshal(body, &payload))
		assert.Equal(t, "updated", payload.Content)

		_, _ = w.Write([]byte(`{"id":"123"}`))
	}))
	defer server.Close()

	webhook := newTestWebhook(t, server.URL)
	webhook.SetContent("updated")

	handle := &MessageHandle{URL: server.URL + "?thread_id=5", MessageID: "123"}
	edited, err := webhook.Edit(context.Background(), handle)
	require.NoError(t, err)
	assert.Equal(t, "123", edited.MessageID)
}

func TestEdit_EmptyMessage(t *testing.T) {
	webhook := newTestWebhook(t, "https://discord.com/api/webhooks/1/a")

	_, err := webhook.Edit(context.Background(), &MessageHandle{URL: "https://discord.com/api/webhooks/1/a", MessageID: "1"})
	require.ErrorIs(t, err, ErrEmptyMessage)
}

func TestEdit_RequiresHandle(t *testing.T) {
	webhook := newTestWebhook(t, "https://discord.com/api/webhooks/1/a")
	webhook.SetContent("x")

	var validationErr *ValidationError
	_, err := webhook.Edit(context.Background(), nil)
	require.ErrorAs(t, err, &validationErr)

	_, err = webhook.Edit(context.Background(), &MessageHandle{URL: "https://discord.com/api/webhooks/1/a"})
	require.ErrorAs(t, err, &validationErr)
}

func TestEdit_MessageGone(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"Unknown Message","code":10008}`, http.StatusNotFound)
	}))
	defer server.Close()

	webhook := newTestWebhook(t, server.URL)
	webhook.SetContent("too late")

	handle := &MessageHandle{URL: server.URL, MessageID: "123"}
	_, err := webhook.Edit(context.Background(), handle)

	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "123", notFound.MessageID)
}

func TestEdit_RateLimited(t *testing.T) {
	var attempts int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts == 1 {
			w.WriteHeader(http.StatusTooManyRequests)
			_, _ = w.Write([]byte(`{"retry_after":0.01}`))
			return
		}
		_, _ = w.Write([]byte(`{"id":"9"}`))
	}))
	defer server.Close()

	webhook, err := NewWebhookBuilder().
		WithURL(server.URL).
		WithContent("patched").
		WithRateLimitRetry(true).
		Build()
	require.NoError(t, err)

	edited, err := webhook.Edit(context.Background(), &MessageHandle{URL: server.URL, MessageID: "9"})
	require.NoError(t, err)
	assert.Equal(t, "9", edited.MessageID)
	assert.Equal(t, 2, attempts)
}

func TestDelete_SendsDelete(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.True(t, strings.HasSuffix(r.URL.Path, "/messages/77"), "path %q", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	webhook := newTestWebhook(t, server.URL)

	err := webhook.Delete(context.Background(), &MessageHandle{URL: server.URL, MessageID: "77"})
	require.NoError(t, err)
}

func TestDelete_MessageGone(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"Unknown Message","code":10008}`, http.StatusNotFound)
	}))
	defer server.Close()

	webhook := newTestWebhook(t, server.URL)

	err := webhook.Delete(context.Background(), &MessageHandle{URL: server.URL, MessageID: "77"})
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "77", notFound.MessageID)
}

func TestDelete_RequiresHandle(t *testing.T) {
	webhook := newTestWebhook(t, "https://discord.com/api/webhooks/1/a")

	var validationErr *ValidationError
	err := webhook.Delete(context.Background(), nil)
	require.ErrorAs(t, err, &validationErr)
}
