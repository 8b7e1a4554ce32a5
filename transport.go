package discordhook

import (
	"crypto/tls"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/net/http2"
)

// DefaultUserAgent follows Discord's documented user agent convention for
// API clients.
const DefaultUserAgent = "DiscordBot (https://github.com/aleister1102/discordhook, 1.0)"

// TransportConfig holds configuration for the underlying HTTP client.
type TransportConfig struct {
	Timeout             time.Duration // Request timeout
	Proxy               string        // Proxy URL (HTTP/SOCKS)
	UserAgent           string        // User-Agent header sent with every request
	InsecureSkipVerify  bool          // Skip TLS verification
	EnableHTTP2         bool          // Enable HTTP/2 support
	FollowRedirects     bool          // Whether to follow redirects
	MaxRedirects        int           // Maximum redirects to follow (0 = unlimited)
	MaxIdleConns        int           // Maximum idle connections
	MaxIdleConnsPerHost int           // Maximum idle connections per host
	IdleConnTimeout     time.Duration // Idle connection timeout
	TLSHandshakeTimeout time.Duration // TLS handshake timeout
	DialTimeout         time.Duration // Connection dial timeout
	KeepAlive           time.Duration // Keep-alive duration
}

// DefaultTransportConfig returns the default transport configuration.
func DefaultTransportConfig() TransportConfig {
	return TransportConfig{
		Timeout:             30 * time.Second,
		UserAgent:           DefaultUserAgent,
		EnableHTTP2:         true,
		FollowRedirects:     true,
		MaxRedirects:        3,
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
		DialTimeout:         10 * time.Second,
		KeepAlive:           30 * time.Second,
	}
}

// newHTTPClient creates a net/http client from the transport configuration.
func newHTTPClient(config TransportConfig, logger zerolog.Logger) (*http.Client, error) {
	transport := &http.Transport{
		MaxIdleConns:        config.MaxIdleConns,
		MaxIdleConnsPerHost: config.MaxIdleConnsPerHost,
		IdleConnTimeout:     config.IdleConnTimeout,
		TLSHandshakeTimeout: config.TLSHandshakeTimeout,
		DialContext: (&net.Dialer{
			Timeout:   config.DialTimeout,
			KeepAlive: config.KeepAlive,
		}).DialContext,
		TLSClientConfig: &tls.Config{
			InsecureSkipVerify: config.InsecureSkipVerify,
		},
	}

	if config.EnableHTTP2 {
		if err := http2.ConfigureTransport(transport); err != nil {
			logger.Warn().Err(err).Msg("Failed to configure HTTP/2, falling back to HTTP/1.1")
		}
	}

	if config.Proxy != "" {
		proxyURL, err := url.Parse(config.Proxy)
		if err != nil {
			return nil, WrapError(err, "failed to parse proxy URL")
		}
		transport.Proxy = http.ProxyURL(proxyURL)
		logger.Debug().Str("proxy", config.Proxy).Msg("Webhook client configured with proxy")
	}

	client := &http.Client{
		Transport: transport,
		Timeout:   config.Timeout,
	}

	if !config.FollowRedirects {
		client.CheckRedirect = func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		}
	} else if config.MaxRedirects > 0 {
		client.CheckRedirect = func(req *http.Request, via []*http.Request) error {
			if len(via) >= config.MaxRedirects {
				return http.ErrUseLastResponse
			}
			return nil
		}
	}

	return client, nil
}
