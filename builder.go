package discordhook

import (
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// WebhookBuilder builds webhook clients with a fluent interface.
type WebhookBuilder struct {
	urls           []string
	content        string
	username       string
	avatarURL      string
	tts            bool
	mentions       *AllowedMentions
	embeds         []Embed
	files          []FileAttachment
	transport      TransportConfig
	rateLimitRetry bool
	maxRetries     int
	logger         zerolog.Logger
	httpClient     *http.Client
}

// NewWebhookBuilder creates a new WebhookBuilder with default configuration.
func NewWebhookBuilder() *WebhookBuilder {
	return &WebhookBuilder{
		transport:  DefaultTransportConfig(),
		maxRetries: DefaultMaxRetries,
		logger:     zerolog.Nop(),
	}
}

// WithURL adds one or more target webhook URLs.
func (b *WebhookBuilder) WithURL(urls ...string) *WebhookBuilder {
	b.urls = append(b.urls, urls...)
	return b
}

// WithContent sets the message text.
func (b *WebhookBuilder) WithContent(content string) *WebhookBuilder {
	b.content = content
	return b
}

// WithUsername overrides the webhook's default display name.
func (b *WebhookBuilder) WithUsername(username string) *WebhookBuilder {
	b.username = username
	return b
}

// WithAvatarURL overrides the webhook's default avatar.
func (b *WebhookBuilder) WithAvatarURL(avatarURL string) *WebhookBuilder {
	b.avatarURL = avatarURL
	return b
}

// WithTTS marks the message as text-to-speech.
func (b *WebhookBuilder) WithTTS(tts bool) *WebhookBuilder {
	b.tts = tts
	return b
}

// WithAllowedMentions controls which mentions in the message may ping.
func (b *WebhookBuilder) WithAllowedMentions(mentions *AllowedMentions) *WebhookBuilder {
	b.mentions = mentions
	return b
}

// WithEmbeds appends embeds to the message.
func (b *WebhookBuilder) WithEmbeds(embeds ...Embed) *WebhookBuilder {
	b.embeds = append(b.embeds, embeds...)
	return b
}

// WithAttachments appends file attachments to the message.
func (b *WebhookBuilder) WithAttachments(files ...FileAttachment) *WebhookBuilder {
	b.files = append(b.files, files...)
	return b
}

// WithProxy routes webhook requests through the given proxy URL.
func (b *WebhookBuilder) WithProxy(proxyURL string) *WebhookBuilder {
	b.transport.Proxy = proxyURL
	return b
}

// WithTimeout sets the per-request timeout.
func (b *WebhookBuilder) WithTimeout(timeout time.Duration) *WebhookBuilder {
	b.transport.Timeout = timeout
	return b
}

// WithRateLimitRetry enables or disables waiting out 429 responses.
func (b *WebhookBuilder) WithRateLimitRetry(enabled bool) *WebhookBuilder {
	b.rateLimitRetry = enabled
	return b
}

// WithMaxRetries sets how many times a rate limited request is retried.
// Zero and negative values select DefaultMaxRetries.
func (b *WebhookBuilder) WithMaxRetries(maxRetries int) *WebhookBuilder {
	b.maxRetries = maxRetries
	return b
}

// WithUserAgent sets the User-Agent header sent with every request.
func (b *WebhookBuilder) WithUserAgent(userAgent string) *WebhookBuilder {
	b.transport.UserAgent = userAgent
	return b
}

// WithTransportConfig replaces the whole transport configuration.
func (b *WebhookBuilder) WithTransportConfig(transport TransportConfig) *WebhookBuilder {
	b.transport = transport
	return b
}

// WithLogger sets the logger used by the client and its retry handler.
func (b *WebhookBuilder) WithLogger(logger zerolog.Logger) *WebhookBuilder {
	b.logger = logger
	return b
}

// WithHTTPClient injects a pre-built HTTP client, bypassing the transport
// configuration.
func (b *WebhookBuilder) WithHTTPClient(client *http.Client) *WebhookBuilder {
	b.httpClient = client
	return b
}

// Build validates the configuration and creates the webhook client.
func (b *WebhookBuilder) Build() (*Webhook, error) {
	if len(b.urls) == 0 {
		return nil, NewValidationError("urls", b.urls, "at least one webhook URL is required")
	}
	for _, rawURL := range b.urls {
		if err := validateWebhookURL(rawURL); err != nil {
			return nil, err
		}
	}
	if b.transport.Timeout <= 0 {
		return nil, NewValidationError("timeout", b.transport.Timeout, "timeout must be positive")
	}
	if b.mentions != nil {
		if err := b.mentions.Validate(); err != nil {
			return nil, err
		}
	}
	if len(b.embeds) > MaxEmbedsPerMessage {
		return nil, NewValidationError("embeds", len(b.embeds),
			fmt.Sprintf("cannot have more than %d embeds per message", MaxEmbedsPerMessage))
	}
	for _, embed := range b.embeds {
		if err := embed.Validate(); err != nil {
			return nil, err
		}
	}

	logger := b.logger.With().Str("module", "Webhook").Logger()

	httpClient := b.httpClient
	if httpClient == nil {
		var err error
		httpClient, err = newHTTPClient(b.transport, logger)
		if err != nil {
			return nil, err
		}
	}

	urls := make([]string, len(b.urls))
	copy(urls, b.urls)
	embeds := make([]Embed, len(b.embeds))
	copy(embeds, b.embeds)

	webhook := &Webhook{
		urls: urls,
		payload: MessagePayload{
			Content:         b.content,
			Username:        b.username,
			AvatarURL:       b.avatarURL,
			TTS:             b.tts,
			Embeds:          embeds,
			AllowedMentions: b.mentions,
		},
		transport:  b.transport,
		userAgent:  b.transport.UserAgent,
		httpClient: httpClient,
		logger:     logger,
		retry:      newRetryHandler(b.rateLimitRetry, b.maxRetries, logger),
	}

	for _, file := range b.files {
		if err := webhook.AddAttachment(file); err != nil {
			return nil, err
		}
	}

	return webhook, nil
}
