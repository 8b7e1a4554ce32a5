package discordhook

import (
	"errors"
	"fmt"
	"time"
)

// ErrEmptyMessage is returned by Execute and Edit when the message carries no
// content, no embeds and no files. Discord rejects fully empty messages, so
// the client fails fast before any HTTP call is made.
var ErrEmptyMessage = errors.New("webhook message is empty: set content, embeds or files")

// ValidationError represents an error during local validation.
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s' (value: %v): %s", e.Field, e.Value, e.Message)
}

// NewValidationError creates a new ValidationError.
func NewValidationError(field string, value interface{}, message string) error {
	return &ValidationError{Field: field, Value: value, Message: message}
}

// RateLimitedError is returned when Discord answers 429 and either rate-limit
// retry is disabled or the retry budget is exhausted. RetryAfter carries the
// wait Discord asked for.
type RateLimitedError struct {
	URL        string
	RetryAfter time.Duration
}

func (e *RateLimitedError) Error() string {
	return fmt.Sprintf("rate limited by '%s': retry after %s", e.URL, e.RetryAfter)
}

// NewRateLimitedError creates a new RateLimitedError.
func NewRateLimitedError(url string, retryAfter time.Duration) error {
	return &RateLimitedError{URL: url, RetryAfter: retryAfter}
}

// NotFoundError is returned by Edit and Delete when the target message no
// longer exists (HTTP 404). A repeated Delete surfaces it as well; callers may
// treat that case as success.
type NotFoundError struct {
	URL       string
	MessageID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("message '%s' not found on '%s'", e.MessageID, e.URL)
}

// NewNotFoundError creates a new NotFoundError.
func NewNotFoundError(url, messageID string) error {
	return &NotFoundError{URL: url, MessageID: messageID}
}

// HTTPError represents an HTTP-level error (non-2xx status code other than the
// cases above).
type HTTPError struct {
	StatusCode int
	Body       string
	URL        string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("http error for URL '%s': status %d, body: %s", e.URL, e.StatusCode, e.Body)
}

// NewHTTPErrorWithURL creates a new HTTPError.
func NewHTTPErrorWithURL(statusCode int, body string, url string) error {
	return &HTTPError{StatusCode: statusCode, Body: body, URL: url}
}

// NetworkError represents a transport-level failure (connection refused,
// timeout, DNS) from the underlying HTTP client.
type NetworkError struct {
	URL     string
	Message string
	Err     error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error for URL '%s': %s: %v", e.URL, e.Message, e.Err)
}

// Unwrap returns the underlying error.
func (e *NetworkError) Unwrap() error {
	return e.Err
}

// NewNetworkError creates a new NetworkError.
func NewNetworkError(url, message string, err error) error {
	return &NetworkError{URL: url, Message: message, Err: err}
}

// FileError represents an I/O failure while reading an attachment from disk.
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("file error for '%s': %v", e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *FileError) Unwrap() error {
	return e.Err
}

// NewFileError creates a new FileError.
func NewFileError(path string, err error) error {
	return &FileError{Path: path, Err: err}
}

// WrapError wraps an existing error with a message.
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
