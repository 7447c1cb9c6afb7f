package chat

import "time"

// Sender identifies which side of the conversation produced a message.
type Sender string

const (
	SenderUser Sender = "user"
	SenderBot  Sender = "bot"
)

// Message is one entry of a persona transcript. Notice marks client-facing
// failure notices that are kept for rendering but never replayed as model
// context.
type Message struct {
	ID        string    `json:"id,omitempty"`
	Sender    Sender    `json:"sender"`
	Content   string    `json:"content"`
	Notice    bool      `json:"notice,omitempty"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
}
