package discordhook

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessageHandle_Endpoint(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		id       string
		expected string
	}{
		{
			name:     "plain url",
			url:      "https://discord.com/api/webhooks/1/token",
			id:       "123",
			expected: "https://discord.com/api/webhooks/1/token/messages/123",
		},
		{
			name:     "query stripped",
			url:      "https://discord.com/api/webhooks/1/token?thread_id=42",
			id:       "123",
			expected: "https://discord.com/api/webhooks/1/token/messages/123",
		},
		{
			name:     "trailing slash kept out of the way",
			url:      "https://discord.com/api/webhooks/1/token?wait=true&thread_id=42",
			id:       "9",
			expected: "https://discord.com/api/webhooks/1/token/messages/9",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handle := &MessageHandle{URL: tt.url, MessageID: tt.id}
			assert.Equal(t, tt.expected, handle.messageEndpoint())
		})
	}
}

func TestParseMessageHandle(t *testing.T) {
	handle, err := parseMessageHandle("https://discord.com/api/webhooks/1/t", []byte(`{"id":"456","channel_id":"789"}`))
	require.NoError(t, err)
	assert.Equal(t, "456", handle.MessageID)
	assert.Equal(t, "https://discord.com/api/webhooks/1/t", handle.URL)
}

func TestParseMessageHandle_MissingID(t *testing.T) {
	_, err := parseMessageHandle("https://discord.com/api/webhooks/1/t", []byte(`{"channel_id":"789"}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing message id")
}

func TestParseMessageHandle_BadJSON(t *testing.T) {
	_, err := parseMessageHandle("https://discord.com/api/webhooks/1/t", []byte(`<html>`))
	require.Error(t, err)
}

func TestMessageHandle_String(t *testing.T) {
	handle := &MessageHandle{URL: "https://discord.com/api/webhooks/1/t", MessageID: "5"}
	assert.Equal(t, "message 5 via https://discord.com/api/webhooks/1/t", handle.String())
}
