package discordhook

import (
	"context"
	"net/http"
	"strings"
)

// ExecuteOptions adjusts what happens after an Execute call.
type ExecuteOptions struct {
	// RemoveEmbeds clears the message's embeds once every URL accepted the
	// message.
	RemoveEmbeds bool
	// RemoveFiles clears the message's attachments once every URL accepted
	// the message.
	RemoveFiles bool
}

// Execute sends the composed message to every configured URL in order and
// returns one SendResult per URL. URLs are sent independently: a failure is
// recorded in its result and the remaining URLs are still attempted.
//
// An error is returned only when nothing was sent at all, such as an empty
// message (ErrEmptyMessage) or a payload that cannot be encoded.
func (w *Webhook) Execute(ctx context.Context) ([]SendResult, error) {
	return w.ExecuteWith(ctx, ExecuteOptions{})
}

// ExecuteWith is Execute with options applied afterwards. The options only
// take effect when every URL accepted the message, so a partially failed
// broadcast can be retried with the same state.
func (w *Webhook) ExecuteWith(ctx context.Context, opts ExecuteOptions) ([]SendResult, error) {
	if w.isEmpty() {
		return nil, ErrEmptyMessage
	}

	payload, files := w.snapshot()
	body, contentType, err := encodeBody(payload, files)
	if err != nil {
		return nil, err
	}

	results := make([]SendResult, 0, len(w.urls))
	allAccepted := true
	for _, rawURL := range w.urls {
		handle, sendErr := w.sendTo(ctx, rawURL, body, contentType)
		if sendErr != nil {
			allAccepted = false
			w.logger.Error().Err(sendErr).Str("url", rawURL).Msg("Webhook execute failed")
			results = append(results, SendResult{URL: rawURL, Err: sendErr})
			continue
		}
		w.logger.Debug().Str("url", rawURL).Str("message_id", handle.MessageID).Msg("Webhook message sent")
		results = append(results, SendResult{URL: rawURL, Handle: handle})
	}

	if allAccepted {
		if opts.RemoveEmbeds {
			w.RemoveEmbeds()
		}
		if opts.RemoveFiles {
			w.RemoveFiles()
		}
	}

	return results, nil
}

// Send sends the composed message through a single-URL webhook and returns
// the created message's handle. It errors when more than one URL is
// configured; use Execute for broadcasts.
func (w *Webhook) Send(ctx context.Context) (*MessageHandle, error) {
	if len(w.urls) != 1 {
		return nil, NewValidationError("urls", len(w.urls), "Send requires exactly one webhook URL")
	}
	results, err := w.Execute(ctx)
	if err != nil {
		return nil, err
	}
	if results[0].Err != nil {
		return nil, results[0].Err
	}
	return results[0].Handle, nil
}

// sendTo posts the encoded message to one URL and parses the created
// message's handle from the response.
func (w *Webhook) sendTo(ctx context.Context, rawURL string, body []byte, contentType string) (*MessageHandle, error) {
	target := executeURL(rawURL)
	resp, err := w.retry.DoWithRetry(ctx, rawURL, func() (*webhookResponse, error) {
		return w.doRequest(ctx, http.MethodPost, target, body, contentType)
	})
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, NewHTTPErrorWithURL(resp.StatusCode, string(resp.Body), rawURL)
	}
	return parseMessageHandle(rawURL, resp.Body)
}

// executeURL appends wait=true so Discord returns the created message
// object instead of a 204.
func executeURL(rawURL string) string {
	if strings.Contains(rawURL, "?") {
		return rawURL + "&wait=true"
	}
	return rawURL + "?wait=true"
}
