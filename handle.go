package discordhook

import (
	"encoding/json"
	"fmt"
	"strings"
)

// MessageHandle identifies a message created through a webhook. It is the
// input to later Edit and Delete calls.
type MessageHandle struct {
	URL       string // Webhook URL the message was sent through
	MessageID string // Snowflake ID of the created message
}

// String renders the handle for logs.
func (h MessageHandle) String() string {
	return fmt.Sprintf("message %s via %s", h.MessageID, h.URL)
}

// messageEndpoint returns the REST endpoint for this message. Query
// parameters such as wait=true are stripped from the webhook URL before
// the message path is appended.
func (h MessageHandle) messageEndpoint() string {
	base := h.URL
	if i := strings.IndexByte(base, '?'); i >= 0 {
		base = base[:i]
	}
	return base + "/messages/" + h.MessageID
}

// SendResult pairs one webhook URL with the outcome of sending to it.
// Exactly one of Handle and Err is set.
type SendResult struct {
	URL    string
	Handle *MessageHandle
	Err    error
}

// parseMessageHandle extracts the created message's ID from a webhook
// response body.
func parseMessageHandle(url string, body []byte) (*MessageHandle, error) {
	var msg struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(body, &msg); err != nil {
		return nil, WrapError(err, "failed to parse webhook response")
	}
	if msg.ID == "" {
		return nil, fmt.Errorf("webhook response missing message id: %s", string(body))
	}
	return &MessageHandle{URL: url, MessageID: msg.ID}, nil
}
