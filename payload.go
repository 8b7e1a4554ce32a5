package discordhook

// Allowed mention kinds for AllowedMentions.Parse.
const (
	AllowedMentionRoles    = "roles"
	AllowedMentionUsers    = "users"
	AllowedMentionEveryone = "everyone"
)

// AllowedMentions controls which mentions in the message content are allowed
// to ping. Parse deliberately has no omitempty: an empty list is meaningful
// to Discord and suppresses every mention. A nil Parse is sent as an empty
// list, so the zero value suppresses everything instead of putting null on
// the wire.
type AllowedMentions struct {
	Parse       []string `json:"parse"`
	Roles       []string `json:"roles,omitempty"` // Role IDs to allow mentions for
	Users       []string `json:"users,omitempty"` // User IDs to allow mentions for
	RepliedUser bool     `json:"replied_user,omitempty"`
}

// NoMentions returns an AllowedMentions that suppresses every mention in the
// message content.
func NoMentions() *AllowedMentions {
	return &AllowedMentions{Parse: []string{}}
}

// withParseNormalized returns a copy whose nil Parse is replaced by an empty
// list. Discord expects "parse": [] on the wire, not null.
func (am *AllowedMentions) withParseNormalized() *AllowedMentions {
	if am.Parse != nil {
		return am
	}
	normalized := *am
	normalized.Parse = []string{}
	return &normalized
}

// Validate checks that every parse kind is one of the recognized values.
func (am *AllowedMentions) Validate() error {
	for _, kind := range am.Parse {
		switch kind {
		case AllowedMentionRoles, AllowedMentionUsers, AllowedMentionEveryone:
		default:
			return NewValidationError("allowed_mentions.parse", kind,
				"parse kind must be one of 'roles', 'users', 'everyone'")
		}
	}
	return nil
}

// MessagePayload represents the JSON payload sent to a Discord webhook.
type MessagePayload struct {
	Content         string           `json:"content,omitempty"`    // Message content (text)
	Username        string           `json:"username,omitempty"`   // Override the default webhook username
	AvatarURL       string           `json:"avatar_url,omitempty"` // Override the default webhook avatar
	TTS             bool             `json:"tts,omitempty"`        // Send as a text-to-speech message
	Embeds          []Embed          `json:"embeds,omitempty"`     // Array of embed objects
	AllowedMentions *AllowedMentions `json:"allowed_mentions,omitempty"`
}

// IsEmpty reports whether the payload carries nothing Discord would accept.
// File attachments are tracked outside the payload, so an empty payload can
// still be sent when the message has files.
func (p MessagePayload) IsEmpty() bool {
	return p.Content == "" && len(p.Embeds) == 0
}
