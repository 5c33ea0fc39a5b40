package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/sandevgo/csbot/internal/core"
	"github.com/sandevgo/csbot/internal/storage"
)

// Store keeps conversations in process memory only.
type Store struct {
	mu       sync.RWMutex
	sessions map[string][]core.Message
}

func NewStore() *Store {
	return &Store{
		sessions: make(map[string][]core.Message),
	}
}

func (s *Store) Append(ctx context.Context, sessionID string, msg core.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	msgs := s.sessions[sessionID]
	var lastID int64
	if n := len(msgs); n > 0 {
		lastID = msgs[n-1].ID
	}
	if err := storage.CheckAppend(lastID, msg); err != nil {
		return err
	}

	s.sessions[sessionID] = append(msgs, msg)
	return nil
}

// List returns a copy of the session's messages; unknown sessions are empty.
func (s *Store) List(ctx context.Context, sessionID string) ([]core.Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.sessions[sessionID]), nil
}

func (s *Store) Close() error {
	// Nothing to close for in-memory storage
	return nil
}
