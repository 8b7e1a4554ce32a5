package discordhook

import "fmt"

// EmbedValidator validates Discord embed objects
type EmbedValidator struct{}

// NewEmbedValidator creates a new embed validator
func NewEmbedValidator() *EmbedValidator {
	return &EmbedValidator{}
}

// ValidateEmbed validates a Discord embed against the documented limits.
// It returns the first violation found as a *ValidationError.
func (ev *EmbedValidator) ValidateEmbed(embed Embed) error {
	if len(embed.Title) > MaxEmbedTitleLength {
		return NewValidationError("title", embed.Title, fmt.Sprintf("title cannot exceed %d characters", MaxEmbedTitleLength))
	}

	if len(embed.Description) > MaxEmbedDescriptionLength {
		return NewValidationError("description", embed.Description, fmt.Sprintf("description cannot exceed %d characters", MaxEmbedDescriptionLength))
	}

	if embed.Color < 0 || embed.Color > MaxEmbedColor {
		return NewValidationError("color", embed.Color, fmt.Sprintf("color must be between 0x000000 and 0x%06X", MaxEmbedColor))
	}

	if len(embed.Fields) > MaxEmbedFields {
		return NewValidationError("fields", len(embed.Fields), fmt.Sprintf("cannot have more than %d fields", MaxEmbedFields))
	}

	for i, field := range embed.Fields {
		if err := ev.ValidateField(i, field); err != nil {
			return err
		}
	}

	if embed.Footer != nil {
		if embed.Footer.Text == "" {
			return NewValidationError("footer_text", embed.Footer.Text, "footer text cannot be empty")
		}
		if len(embed.Footer.Text) > MaxEmbedFooterTextLength {
			return NewValidationError("footer_text", embed.Footer.Text, fmt.Sprintf("footer text cannot exceed %d characters", MaxEmbedFooterTextLength))
		}
	}

	if embed.Author != nil {
		if embed.Author.Name == "" {
			return NewValidationError("author_name", embed.Author.Name, "author name cannot be empty")
		}
		if len(embed.Author.Name) > MaxEmbedAuthorNameLength {
			return NewValidationError("author_name", embed.Author.Name, fmt.Sprintf("author name cannot exceed %d characters", MaxEmbedAuthorNameLength))
		}
	}

	return nil
}

// ValidateField validates a single embed field. The index is only used in
// error messages.
func (ev *EmbedValidator) ValidateField(index int, field EmbedField) error {
	if field.Name == "" {
		return NewValidationError("field_name", field.Name, fmt.Sprintf("field %d name cannot be empty", index))
	}
	if field.Value == "" {
		return NewValidationError("field_value", field.Value, fmt.Sprintf("field %d value cannot be empty", index))
	}
	if len(field.Name) > MaxEmbedFieldNameLength {
		return NewValidationError("field_name", field.Name, fmt.Sprintf("field %d name cannot exceed %d characters", index, MaxEmbedFieldNameLength))
	}
	if len(field.Value) > MaxEmbedFieldValueLength {
		return NewValidationError("field_value", field.Value, fmt.Sprintf("field %d value cannot exceed %d characters", index, MaxEmbedFieldValueLength))
	}
	return nil
}
