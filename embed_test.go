package discordhook

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbed_MarshalOmitsUnsetFields(t *testing.T) {
	data, err := json.Marshal(Embed{Title: "only a title"})
	require.NoError(t, err)

	var keys map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &keys))
	assert.Len(t, keys, 1)
	assert.Contains(t, keys, "title")
}

func TestEmbed_MarshalNestedObjects(t *testing.T) {
	embed := Embed{
		Title:     "release",
		Color:     0x5CB85C,
		Footer:    NewEmbedFooter("footer", ""),
		Image:     NewEmbedImage("https://example.com/banner.png"),
		Video:     NewEmbedVideo("https://example.com/clip.mp4"),
		Provider:  NewEmbedProvider("example", "https://example.com"),
		Author:    NewEmbedAuthor("author", "", ""),
		Fields:    []EmbedField{NewEmbedField("version", "1.2.3", true)},
		Timestamp: "2026-01-02T15:04:05Z",
	}

	data, err := json.Marshal(embed)
	require.NoError(t, err)

	var decoded map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Contains(t, decoded, "footer")
	assert.Contains(t, decoded, "video")
	assert.Contains(t, decoded, "provider")
	assert.NotContains(t, decoded, "thumbnail")
	assert.NotContains(t, decoded, "description")

	// Unset optionals inside sub-objects are omitted too.
	var footer map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(decoded["footer"], &footer))
	assert.Contains(t, footer, "text")
	assert.NotContains(t, footer, "icon_url")
}

func TestMessagePayload_MarshalOmitsUnsetFields(t *testing.T) {
	data, err := json.Marshal(MessagePayload{Content: "hello"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"content":"hello"}`, string(data))
}

func TestMessagePayload_IsEmpty(t *testing.T) {
	assert.True(t, MessagePayload{}.IsEmpty())
	assert.True(t, MessagePayload{Username: "name only"}.IsEmpty())
	assert.False(t, MessagePayload{Content: "x"}.IsEmpty())
	assert.False(t, MessagePayload{Embeds: []Embed{{Title: "t"}}}.IsEmpty())
}

func TestAllowedMentions_NoMentionsKeepsEmptyParse(t *testing.T) {
	data, err := json.Marshal(NoMentions())
	require.NoError(t, err)
	assert.JSONEq(t, `{"parse":[]}`, string(data))
}

func TestAllowedMentions_Validate(t *testing.T) {
	valid := &AllowedMentions{Parse: []string{AllowedMentionRoles, AllowedMentionUsers, AllowedMentionEveryone}}
	require.NoError(t, valid.Validate())

	invalid := &AllowedMentions{Parse: []string{"everybody"}}
	var validationErr *ValidationError
	require.ErrorAs(t, invalid.Validate(), &validationErr)
	assert.Equal(t, "allowed_mentions.parse", validationErr.Field)
}
