package core

import "context"

// ConversationStore keeps the messages of live conversations keyed by session id.
// Implementations are append-only and must return messages in append order.
type ConversationStore interface {
	Append(ctx context.Context, sessionID string, msg Message) error
	List(ctx context.Context, sessionID string) ([]Message, error)
	Close() error
}
