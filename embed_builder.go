package discordhook

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// EmbedBuilder helps in constructing Embed objects. Every setter validates
// its input against Discord's limits: the first violation is recorded, the
// offending value is not applied, and all later calls become no-ops. Err
// and Build surface the recorded error, so a chain can be written without
// checking each step.
type EmbedBuilder struct {
	embed     Embed
	validator *EmbedValidator
	err       error
}

// NewEmbedBuilder creates a new embed builder
func NewEmbedBuilder() *EmbedBuilder {
	return &EmbedBuilder{
		embed:     Embed{},
		validator: NewEmbedValidator(),
	}
}

// WithTitle sets the embed title
func (eb *EmbedBuilder) WithTitle(title string) *EmbedBuilder {
	if eb.err != nil {
		return eb
	}
	if len(title) > MaxEmbedTitleLength {
		eb.err = NewValidationError("title", title, fmt.Sprintf("title cannot exceed %d characters", MaxEmbedTitleLength))
		return eb
	}
	eb.embed.Title = title
	return eb
}

// WithDescription sets the embed description
func (eb *EmbedBuilder) WithDescription(description string) *EmbedBuilder {
	if eb.err != nil {
		return eb
	}
	if len(description) > MaxEmbedDescriptionLength {
		eb.err = NewValidationError("description", description, fmt.Sprintf("description cannot exceed %d characters", MaxEmbedDescriptionLength))
		return eb
	}
	eb.embed.Description = description
	return eb
}

// WithURL sets the URL the embed title links to
func (eb *EmbedBuilder) WithURL(url string) *EmbedBuilder {
	if eb.err != nil {
		return eb
	}
	eb.embed.URL = url
	return eb
}

// WithTimestamp sets the embed timestamp
func (eb *EmbedBuilder) WithTimestamp(timestamp time.Time) *EmbedBuilder {
	if eb.err != nil {
		return eb
	}
	eb.embed.Timestamp = timestamp.Format(time.RFC3339)
	return eb
}

// WithTimestampNow sets the embed timestamp to the current time in UTC
func (eb *EmbedBuilder) WithTimestampNow() *EmbedBuilder {
	return eb.WithTimestamp(time.Now().UTC())
}

// WithColor sets the embed color
func (eb *EmbedBuilder) WithColor(color int) *EmbedBuilder {
	if eb.err != nil {
		return eb
	}
	if color < 0 || color > MaxEmbedColor {
		eb.err = NewValidationError("color", color, fmt.Sprintf("color must be between 0x000000 and 0x%06X", MaxEmbedColor))
		return eb
	}
	eb.embed.Color = color
	return eb
}

// WithHexColor sets the embed color from a hex string such as "#5CB85C",
// "0x5CB85C" or "5CB85C".
func (eb *EmbedBuilder) WithHexColor(hex string) *EmbedBuilder {
	if eb.err != nil {
		return eb
	}
	color, err := ParseHexColor(hex)
	if err != nil {
		eb.err = err
		return eb
	}
	eb.embed.Color = color
	return eb
}

// WithFooter sets the embed footer
func (eb *EmbedBuilder) WithFooter(text, iconURL string) *EmbedBuilder {
	if eb.err != nil {
		return eb
	}
	if text == "" {
		eb.err = NewValidationError("footer_text", text, "footer text cannot be empty")
		return eb
	}
	if len(text) > MaxEmbedFooterTextLength {
		eb.err = NewValidationError("footer_text", text, fmt.Sprintf("footer text cannot exceed %d characters", MaxEmbedFooterTextLength))
		return eb
	}
	eb.embed.Footer = NewEmbedFooter(text, iconURL)
	return eb
}

// WithImage sets the embed image
func (eb *EmbedBuilder) WithImage(url string) *EmbedBuilder {
	if eb.err != nil {
		return eb
	}
	eb.embed.Image = NewEmbedImage(url)
	return eb
}

// WithThumbnail sets the embed thumbnail
func (eb *EmbedBuilder) WithThumbnail(url string) *EmbedBuilder {
	if eb.err != nil {
		return eb
	}
	eb.embed.Thumbnail = NewEmbedThumbnail(url)
	return eb
}

// WithVideo sets the embed video
func (eb *EmbedBuilder) WithVideo(url string) *EmbedBuilder {
	if eb.err != nil {
		return eb
	}
	eb.embed.Video = NewEmbedVideo(url)
	return eb
}

// WithProvider sets the embed provider
func (eb *EmbedBuilder) WithProvider(name, url string) *EmbedBuilder {
	if eb.err != nil {
		return eb
	}
	eb.embed.Provider = NewEmbedProvider(name, url)
	return eb
}

// WithAuthor sets the embed author
func (eb *EmbedBuilder) WithAuthor(name, url, iconURL string) *EmbedBuilder {
	if eb.err != nil {
		return eb
	}
	if name == "" {
		eb.err = NewValidationError("author_name", name, "author name cannot be empty")
		return eb
	}
	if len(name) > MaxEmbedAuthorNameLength {
		eb.err = NewValidationError("author_name", name, fmt.Sprintf("author name cannot exceed %d characters", MaxEmbedAuthorNameLength))
		return eb
	}
	eb.embed.Author = NewEmbedAuthor(name, url, iconURL)
	return eb
}

// AddField adds a field to the embed. Adding a field beyond the limit of 25,
// or a field with an empty or oversized name or value, records an error and
// leaves the previously added fields intact.
func (eb *EmbedBuilder) AddField(name, value string, inline bool) *EmbedBuilder {
	if eb.err != nil {
		return eb
	}
	if len(eb.embed.Fields) >= MaxEmbedFields {
		eb.err = NewValidationError("fields", name, fmt.Sprintf("cannot have more than %d fields", MaxEmbedFields))
		return eb
	}
	field := NewEmbedField(name, value, inline)
	if err := eb.validator.ValidateField(len(eb.embed.Fields), field); err != nil {
		eb.err = err
		return eb
	}
	eb.embed.Fields = append(eb.embed.Fields, field)
	return eb
}

// WithFields appends prepared fields to the embed. Each field is validated
// like an AddField call.
func (eb *EmbedBuilder) WithFields(fields ...EmbedField) *EmbedBuilder {
	for _, field := range fields {
		eb.AddField(field.Name, field.Value, field.Inline)
	}
	return eb
}

// Err returns the first validation error recorded by a setter, or nil.
func (eb *EmbedBuilder) Err() error {
	return eb.err
}

// Validate validates the current embed
func (eb *EmbedBuilder) Validate() error {
	if eb.err != nil {
		return eb.err
	}
	return eb.validator.ValidateEmbed(eb.embed)
}

// Build builds the Discord embed with validation. The embed accumulated
// from the valid calls is returned even when an error is recorded, so a
// rejected 26th field still leaves 25 usable ones.
func (eb *EmbedBuilder) Build() (Embed, error) {
	return eb.embed, eb.Validate()
}

// ParseHexColor parses a hex color string such as "#5CB85C", "0x5CB85C" or
// "5CB85C" into its integer value.
func ParseHexColor(hex string) (int, error) {
	s := strings.TrimSpace(hex)
	s = strings.TrimPrefix(s, "#")
	if len(s) > 2 && (s[:2] == "0x" || s[:2] == "0X") {
		s = s[2:]
	}
	if s == "" {
		return 0, NewValidationError("color", hex, "color string cannot be empty")
	}
	value, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, NewValidationError("color", hex, "color must be a hex string like '#RRGGBB'")
	}
	if value > MaxEmbedColor {
		return 0, NewValidationError("color", hex, fmt.Sprintf("color must be between 0x000000 and 0x%06X", MaxEmbedColor))
	}
	return int(value), nil
}
