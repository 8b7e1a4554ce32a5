package discordhook

// Discord embed limits
// https://discord.com/developers/docs/resources/channel#embed-object-embed-limits
const (
	MaxEmbedTitleLength       = 256
	MaxEmbedDescriptionLength = 4096
	MaxEmbedFields            = 25
	MaxEmbedFieldNameLength   = 256
	MaxEmbedFieldValueLength  = 1024
	MaxEmbedFooterTextLength  = 2048
	MaxEmbedAuthorNameLength  = 256
	MaxEmbedsPerMessage       = 10
	MaxEmbedColor             = 0xFFFFFF
)

// Discord message limits
const (
	MaxContentLength  = 2000
	MaxUsernameLength = 80
)
