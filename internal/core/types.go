package core

import "time"

const (
	BotName       = "CS Assistant"
	BotTagline    = "Your Computer Science Learning Companion"
	RepositoryURL = "https://github.com/sandevgo/csbot"
	Version       = "0.1.0"
)

type Sender string

const (
	SenderUser Sender = "user"
	SenderBot  Sender = "bot"
)

func (s Sender) Valid() bool {
	return s == SenderUser || s == SenderBot
}

// Message is a single entry of a conversation. Messages are never mutated
// after they have been appended.
type Message struct {
	ID        int64     `json:"id"`
	Text      string    `json:"text"`
	Sender    Sender    `json:"sender"`
	Timestamp time.Time `json:"timestamp"`
	// Category is the topic branch that produced a bot reply, if any.
	Category string `json:"category,omitempty"`
}

func (m Message) IsBot() bool {
	return m.Sender == SenderBot
}
