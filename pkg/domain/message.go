package domain

import "time"

// Author identifies who produced a transcript message.
type Author string

const (
	AuthorBot  Author = "bot"
	AuthorUser Author = "user"
)

// Message is an immutable transcript entry. Placeholders in Content are
// already substituted by the time a Message is appended.
type Message struct {
	ID        string    `json:"id"`
	Author    Author    `json:"author"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`

	// Options carried by this message. Only the options attached to the
	// latest bot message are interactive; the presentation layer enforces
	// that, the transcript just records what was shown.
	Options []Option `json:"options,omitempty"`

	IsInputPrompt bool      `json:"is_input_prompt,omitempty"`
	InputKind     InputKind `json:"input_kind,omitempty"`
}
