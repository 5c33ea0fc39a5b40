package chat

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/sandevgo/csbot/internal/core"
)

// Conversation is an append-only message log with strictly increasing ids.
// It is seeded with a bot greeting that always gets id 1.
type Conversation struct {
	sessionID string
	store     core.ConversationStore
	clock     Clock

	mu     sync.Mutex
	lastID int64
}

func NewConversation(ctx context.Context, store core.ConversationStore, greeting string, clock Clock) (*Conversation, error) {
	if clock == nil {
		clock = SystemClock
	}
	c := &Conversation{
		sessionID: uuid.NewString(),
		store:     store,
		clock:     clock,
	}
	if _, err := c.Append(ctx, core.SenderBot, greeting, ""); err != nil {
		return nil, fmt.Errorf("failed to seed conversation: %w", err)
	}
	return c, nil
}

func (c *Conversation) SessionID() string {
	return c.sessionID
}

// Append stores a new message. On a store error the built message is still
// returned and its id is burned, so a later message never reuses it.
func (c *Conversation) Append(ctx context.Context, sender core.Sender, text, category string) (core.Message, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	msg := core.Message{
		ID:        c.lastID + 1,
		Text:      text,
		Sender:    sender,
		Timestamp: c.clock.Now(),
		Category:  category,
	}
	c.lastID = msg.ID
	if err := c.store.Append(ctx, c.sessionID, msg); err != nil {
		return msg, fmt.Errorf("failed to append message: %w", err)
	}
	return msg, nil
}

func (c *Conversation) Messages(ctx context.Context) ([]core.Message, error) {
	msgs, err := c.store.List(ctx, c.sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	return msgs, nil
}
