// Package discordhook composes and sends Discord webhook messages. It pairs
// a fluent embed builder with a thin client for the three webhook REST
// operations (execute, edit, delete), with optional rate limit retries and
// multipart file uploads.
package discordhook

import (
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"
)

// Webhook composes one message and sends it through one or more Discord
// webhook URLs. Construct it with NewWebhook, NewWebhookBuilder or
// NewFromConfig; the zero value is not usable.
//
// A Webhook is not safe for concurrent use. Execute snapshots the message
// state before sending, so a single goroutine can freely mutate and resend.
type Webhook struct {
	urls    []string
	payload MessagePayload
	files   []FileAttachment

	transport TransportConfig
	userAgent string

	httpClient *http.Client
	logger     zerolog.Logger
	retry      *retryHandler
}

// NewWebhook creates a webhook client for the given URLs with default
// settings: 30s timeout, no proxy, rate limit retries disabled and a no-op
// logger.
func NewWebhook(urls ...string) (*Webhook, error) {
	return NewWebhookBuilder().WithURL(urls...).Build()
}

// validateWebhookURL checks that a webhook URL is an absolute http(s) URL.
func validateWebhookURL(rawURL string) error {
	parsed, err := url.ParseRequestURI(rawURL)
	if err != nil {
		return NewValidationError("url", rawURL, "invalid webhook URL")
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return NewValidationError("url", rawURL, "webhook URL must use http or https")
	}
	return nil
}

// URLs returns a copy of the configured webhook URLs.
func (w *Webhook) URLs() []string {
	urls := make([]string, len(w.urls))
	copy(urls, w.urls)
	return urls
}

// SetContent sets the message text.
func (w *Webhook) SetContent(content string) {
	w.payload.Content = content
}

// Content returns the current message text.
func (w *Webhook) Content() string {
	return w.payload.Content
}

// SetUsername overrides the webhook's default display name.
func (w *Webhook) SetUsername(username string) {
	w.payload.Username = username
}

// SetAvatarURL overrides the webhook's default avatar.
func (w *Webhook) SetAvatarURL(avatarURL string) {
	w.payload.AvatarURL = avatarURL
}

// SetTTS marks the message as text-to-speech.
func (w *Webhook) SetTTS(tts bool) {
	w.payload.TTS = tts
}

// SetAllowedMentions controls which mentions in the message may ping. Pass
// nil to restore Discord's default behavior.
func (w *Webhook) SetAllowedMentions(mentions *AllowedMentions) error {
	if mentions != nil {
		if err := mentions.Validate(); err != nil {
			return err
		}
	}
	w.payload.AllowedMentions = mentions
	return nil
}

// AddEmbed appends an embed to the message. The embed is validated against
// Discord's limits, and a message holds at most 10 embeds; violations leave
// the message unchanged.
func (w *Webhook) AddEmbed(embed Embed) error {
	if len(w.payload.Embeds) >= MaxEmbedsPerMessage {
		return NewValidationError("embeds", len(w.payload.Embeds),
			fmt.Sprintf("cannot have more than %d embeds per message", MaxEmbedsPerMessage))
	}
	if err := embed.Validate(); err != nil {
		return err
	}
	w.payload.Embeds = append(w.payload.Embeds, embed)
	return nil
}

// RemoveEmbed removes the embed at the given index.
func (w *Webhook) RemoveEmbed(index int) error {
	if index < 0 || index >= len(w.payload.Embeds) {
		return NewValidationError("embed_index", index,
			fmt.Sprintf("embed index out of range [0, %d)", len(w.payload.Embeds)))
	}
	w.payload.Embeds = append(w.payload.Embeds[:index], w.payload.Embeds[index+1:]...)
	return nil
}

// RemoveEmbeds removes every embed from the message.
func (w *Webhook) RemoveEmbeds() {
	w.payload.Embeds = nil
}

// Embeds returns a copy of the message's embeds.
func (w *Webhook) Embeds() []Embed {
	embeds := make([]Embed, len(w.payload.Embeds))
	copy(embeds, w.payload.Embeds)
	return embeds
}

// AddAttachment adds a prepared file attachment to the message. Attachment
// names must be unique within a message.
func (w *Webhook) AddAttachment(file FileAttachment) error {
	if err := file.Validate(); err != nil {
		return err
	}
	for _, existing := range w.files {
		if existing.Name == file.Name {
			return NewValidationError("file_name", file.Name, "an attachment with this name already exists")
		}
	}
	w.files = append(w.files, file)
	return nil
}

// AddFile attaches in-memory content under the given file name. The content
// type is sniffed from the content.
func (w *Webhook) AddFile(name string, content []byte) error {
	return w.AddAttachment(NewFileAttachment(name, content, ""))
}

// AddFileFromPath reads the file at path and attaches it under its base
// name. Read failures are reported as a *FileError.
func (w *Webhook) AddFileFromPath(path string) error {
	file, err := AttachmentFromPath(path)
	if err != nil {
		return err
	}
	return w.AddAttachment(file)
}

// RemoveFile removes the attachment with the given name.
func (w *Webhook) RemoveFile(name string) error {
	for i, file := range w.files {
		if file.Name == name {
			w.files = append(w.files[:i], w.files[i+1:]...)
			return nil
		}
	}
	return NewValidationError("file_name", name, "no attachment with this name")
}

// RemoveFiles removes every attachment from the message.
func (w *Webhook) RemoveFiles() {
	w.files = nil
}

// Files returns a copy of the message's attachments. The content slices are
// shared with the stored attachments.
func (w *Webhook) Files() []FileAttachment {
	files := make([]FileAttachment, len(w.files))
	copy(files, w.files)
	return files
}

// SetProxy routes webhook requests through the given proxy URL and rebuilds
// the underlying HTTP client. An empty URL removes the proxy.
func (w *Webhook) SetProxy(proxyURL string) error {
	transport := w.transport
	transport.Proxy = proxyURL
	return w.setTransport(transport)
}

// SetTimeout changes the per-request timeout and rebuilds the underlying
// HTTP client.
func (w *Webhook) SetTimeout(timeout time.Duration) error {
	if timeout <= 0 {
		return NewValidationError("timeout", timeout, "timeout must be positive")
	}
	transport := w.transport
	transport.Timeout = timeout
	return w.setTransport(transport)
}

func (w *Webhook) setTransport(transport TransportConfig) error {
	client, err := newHTTPClient(transport, w.logger)
	if err != nil {
		return err
	}
	w.transport = transport
	w.httpClient = client
	return nil
}

// isEmpty reports whether the message carries nothing to send.
func (w *Webhook) isEmpty() bool {
	return w.payload.IsEmpty() && len(w.files) == 0
}

// snapshot copies the message state so in-flight sends are unaffected by
// later mutation.
func (w *Webhook) snapshot() (MessagePayload, []FileAttachment) {
	payload := w.payload
	payload.Embeds = make([]Embed, len(w.payload.Embeds))
	copy(payload.Embeds, w.payload.Embeds)

	files := make([]FileAttachment, len(w.files))
	copy(files, w.files)

	return payload, files
}
