package discordhook

import (
	"context"
	"net/http"
)

// Delete removes a previously sent message. Discord replies 204 on success.
// A message that is already gone surfaces as a *NotFoundError, which
// callers deleting idempotently may treat as success.
func (w *Webhook) Delete(ctx context.Context, handle *MessageHandle) error {
	if handle == nil || handle.MessageID == "" {
		return NewValidationError("handle", handle, "message handle is required")
	}

	endpoint := handle.messageEndpoint()
	resp, err := w.retry.DoWithRetry(ctx, handle.URL, func() (*webhookResponse, error) {
		return w.doRequest(ctx, http.MethodDelete, endpoint, nil, "")
	})
	if err != nil {
		return err
	}
	switch {
	case resp.StatusCode == http.StatusNotFound:
		return NewNotFoundError(handle.URL, handle.MessageID)
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return NewHTTPErrorWithURL(resp.StatusCode, string(resp.Body), handle.URL)
	}

	w.logger.Debug().Str("url", handle.URL).Str("message_id", handle.MessageID).Msg("Webhook message deleted")
	return nil
}
