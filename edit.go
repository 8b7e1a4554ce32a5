package discordhook

import (
	"context"
	"net/http"
)

// Edit replaces a previously sent message with the webhook's current
// composed state. The handle must come from an earlier Execute or Edit. A
// deleted or unknown message surfaces as a *NotFoundError.
func (w *Webhook) Edit(ctx context.Context, handle *MessageHandle) (*MessageHandle, error) {
	if handle == nil || handle.MessageID == "" {
		return nil, NewValidationError("handle", handle, "message handle is required")
	}
	if w.isEmpty() {
		return nil, ErrEmptyMessage
	}

	payload, files := w.snapshot()
	body, contentType, err := encodeBody(payload, files)
	if err != nil {
		return nil, err
	}

	endpoint := handle.messageEndpoint()
	resp, err := w.retry.DoWithRetry(ctx, handle.URL, func() (*webhookResponse, error) {
		return w.doRequest(ctx, http.MethodPatch, endpoint, body, contentType)
	})
	if err != nil {
		return nil, err
	}
	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, NewNotFoundError(handle.URL, handle.MessageID)
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return nil, NewHTTPErrorWithURL(resp.StatusCode, string(resp.Body), handle.URL)
	}

	w.logger.Debug().Str("url", handle.URL).Str("message_id", handle.MessageID).Msg("Webhook message edited")
	return parseMessageHandle(handle.URL, resp.Body)
}
