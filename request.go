package discordhook

import (
	"bytes"
	"context"
	"io"
	"net/http"
)

// webhookResponse is a fully read webhook HTTP response. Reading the body
// eagerly lets the retry handler inspect it after the connection is back in
// the pool.
type webhookResponse struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// doRequest performs a single HTTP request against a webhook endpoint and
// reads the full response body. Transport failures are reported as a
// *NetworkError.
func (w *Webhook) doRequest(ctx context.Context, method, url string, body []byte, contentType string) (*webhookResponse, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, WrapError(err, "failed to create HTTP request")
	}

	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")
	if w.userAgent != "" {
		req.Header.Set("User-Agent", w.userAgent)
	}

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return nil, NewNetworkError(url, "webhook request failed", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, NewNetworkError(url, "failed to read response body", err)
	}

	return &webhookResponse{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       respBody,
	}, nil
}
