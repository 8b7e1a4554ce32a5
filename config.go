package discordhook

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// DefaultTimeoutSecs is the default request timeout for clients built from
// a Config.
const DefaultTimeoutSecs = 30

// AllowedMentionsConfig mirrors AllowedMentions for configuration files.
type AllowedMentionsConfig struct {
	Parse       []string `json:"parse,omitempty" yaml:"parse,omitempty" validate:"omitempty,dive,mentionparse"`
	Roles       []string `json:"roles,omitempty" yaml:"roles,omitempty"`
	Users       []string `json:"users,omitempty" yaml:"users,omitempty"`
	RepliedUser bool     `json:"replied_user" yaml:"replied_user"`
}

// toAllowedMentions converts the config shape to the wire shape.
func (c *AllowedMentionsConfig) toAllowedMentions() *AllowedMentions {
	return &AllowedMentions{
		Parse:       c.Parse,
		Roles:       c.Roles,
		Users:       c.Users,
		RepliedUser: c.RepliedUser,
	}
}

// Config configures a webhook client from a YAML or JSON file.
type Config struct {
	URLs             []string               `json:"urls" yaml:"urls" validate:"required,min=1,dive,url"`
	Content          string                 `json:"content,omitempty" yaml:"content,omitempty"`
	Username         string                 `json:"username,omitempty" yaml:"username,omitempty"`
	AvatarURL        string                 `json:"avatar_url,omitempty" yaml:"avatar_url,omitempty" validate:"omitempty,url"`
	TTS              bool                   `json:"tts" yaml:"tts"`
	AllowedMentions  *AllowedMentionsConfig `json:"allowed_mentions,omitempty" yaml:"allowed_mentions,omitempty"`
	Files            []string               `json:"files,omitempty" yaml:"files,omitempty" validate:"omitempty,dive,required"`
	Proxy            string                 `json:"proxy,omitempty" yaml:"proxy,omitempty" validate:"omitempty,url"`
	TimeoutSecs      int                    `json:"timeout_secs,omitempty" yaml:"timeout_secs,omitempty" validate:"omitempty,min=1"`
	RateLimitRetry   bool                   `json:"rate_limit_retry" yaml:"rate_limit_retry"`
	// Retry budget for 429 responses. Zero selects the default budget;
	// disabling retries is rate_limit_retry's job.
	RateLimitRetries int    `json:"rate_limit_retries,omitempty" yaml:"rate_limit_retries,omitempty" validate:"omitempty,min=0"`
	UserAgent        string `json:"user_agent,omitempty" yaml:"user_agent,omitempty"`
}

// NewDefaultConfig creates the default webhook configuration.
func NewDefaultConfig() *Config {
	return &Config{
		TimeoutSecs:      DefaultTimeoutSecs,
		RateLimitRetries: DefaultMaxRetries,
		UserAgent:        DefaultUserAgent,
	}
}

// LoadConfig loads a configuration file. YAML is used when the extension is
// .yaml or .yml, JSON otherwise. Fields absent from the file keep their
// defaults, and the result is validated before it is returned.
func LoadConfig(path string) (*Config, error) {
	cfg := NewDefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, NewFileError(path, err)
	}
	if err := parseConfigContent(data, path, cfg); err != nil {
		return nil, err
	}
	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// parseConfigContent parses the config content based on file extension
func parseConfigContent(data []byte, path string, cfg *Config) error {
	if isYAMLFile(filepath.Ext(path)) {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return WrapError(err, fmt.Sprintf("failed to unmarshal YAML from '%s'", path))
		}
		return nil
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return WrapError(err, fmt.Sprintf("failed to unmarshal JSON from '%s'", path))
	}
	return nil
}

// isYAMLFile checks if the file extension indicates a YAML file
func isYAMLFile(ext string) bool {
	return ext == ".yaml" || ext == ".yml"
}

// ValidateConfig performs validation on the Config structure.
func ValidateConfig(cfg *Config) error {
	validate := validator.New()

	// Mention parse kinds are a fixed vocabulary.
	_ = validate.RegisterValidation("mentionparse", func(fl validator.FieldLevel) bool {
		switch strings.ToLower(fl.Field().String()) {
		case AllowedMentionRoles, AllowedMentionUsers, AllowedMentionEveryone:
			return true
		default:
			return false
		}
	})

	err := validate.Struct(cfg)
	if err != nil {
		var errs validator.ValidationErrors
		if errors.As(err, &errs) {
			messages := make([]string, 0, len(errs))
			for _, e := range errs {
				msg := fmt.Sprintf("validation failed for '%s': rule '%s'", e.StructNamespace(), e.Tag())
				if e.Param() != "" {
					msg += fmt.Sprintf(" (expected: %s)", e.Param())
				}
				messages = append(messages, msg)
			}
			return fmt.Errorf("configuration validation failed:\n  %s", strings.Join(messages, "\n  "))
		}
		return fmt.Errorf("configuration validation error: %w", err)
	}
	return nil
}

// NewFromConfig builds a webhook client from a configuration.
func NewFromConfig(cfg *Config, logger zerolog.Logger) (*Webhook, error) {
	if cfg == nil {
		return nil, NewValidationError("config", cfg, "config is required")
	}
	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}

	builder := NewWebhookBuilder().
		WithURL(cfg.URLs...).
		WithContent(cfg.Content).
		WithUsername(cfg.Username).
		WithAvatarURL(cfg.AvatarURL).
		WithTTS(cfg.TTS).
		WithRateLimitRetry(cfg.RateLimitRetry).
		WithLogger(logger)

	if cfg.AllowedMentions != nil {
		builder.WithAllowedMentions(cfg.AllowedMentions.toAllowedMentions())
	}
	if cfg.Proxy != "" {
		builder.WithProxy(cfg.Proxy)
	}
	if cfg.TimeoutSecs > 0 {
		builder.WithTimeout(time.Duration(cfg.TimeoutSecs) * time.Second)
	}
	if cfg.RateLimitRetries > 0 {
		builder.WithMaxRetries(cfg.RateLimitRetries)
	}
	if cfg.UserAgent != "" {
		builder.WithUserAgent(cfg.UserAgent)
	}

	webhook, err := builder.Build()
	if err != nil {
		return nil, err
	}

	// Attachment paths are read when the client is built, not when it sends.
	for _, path := range cfg.Files {
		if err := webhook.AddFileFromPath(path); err != nil {
			return nil, err
		}
	}

	return webhook, nil
}
