package web

import (
	"time"

	"github.com/sandevgo/csbot/internal/core"
	"github.com/sandevgo/csbot/pkg/conv"
)

type messageDTO struct {
	ID        int64     `json:"id"`
	Text      string    `json:"text"`
	HTML      string    `json:"html"`
	Sender    string    `json:"sender"`
	Timestamp time.Time `json:"timestamp"`
	Time      string    `json:"time"`
	Category  string    `json:"category,omitempty"`
}

func toDTO(m core.Message) messageDTO {
	return messageDTO{
		ID:        m.ID,
		Text:      m.Text,
		HTML:      conv.MarkdownToHTML([]byte(m.Text)),
		Sender:    string(m.Sender),
		Timestamp: m.Timestamp,
		Time:      m.Timestamp.Format(TimeFormat),
		Category:  m.Category,
	}
}

type conversationResponse struct {
	SessionID string       `json:"session_id"`
	Bot       string       `json:"bot"`
	Tagline   string       `json:"tagline"`
	Typing    bool         `json:"typing"`
	Messages  []messageDTO `json:"messages"`
	// QuickQuestions is only filled before the first question.
	QuickQuestions []string `json:"quick_questions,omitempty"`
}

type sendRequest struct {
	Text string `json:"text"`
}

type sendResponse struct {
	Message *messageDTO `json:"message,omitempty"`
	Command string      `json:"command,omitempty"`
	HTML    string      `json:"html,omitempty"`
}

type topicDTO struct {
	ID       string   `json:"id"`
	Triggers []string `json:"triggers"`
}
