package web

import (
	"sync"

	"github.com/sandevgo/csbot/internal/service/chat"
)

const subscriberBuffer = 16

// Hub fans session updates out to event stream subscribers. Slow
// subscribers miss updates instead of blocking the session.
type Hub struct {
	mu   sync.Mutex
	subs map[chan chat.Update]struct{}
}

func NewHub() *Hub {
	return &Hub{
		subs: make(map[chan chat.Update]struct{}),
	}
}

// Observe is meant to be passed to chat.WithObserver.
func (h *Hub) Observe(u chat.Update) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for ch := range h.subs {
		select {
		case ch <- u:
		default:
		}
	}
}

func (h *Hub) Subscribe() (<-chan chat.Update, func()) {
	ch := make(chan chat.Update, subscriberBuffer)
	h.mu.Lock()
	h.subs[ch] = struct{}{}
	h.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.subs, ch)
			h.mu.Unlock()
			close(ch)
		})
	}
}

func (h *Hub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}
