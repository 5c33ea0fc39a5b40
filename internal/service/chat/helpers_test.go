package chat

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/sandevgo/csbot/internal/core"
	"github.com/sandevgo/csbot/internal/service/topic"
	"github.com/sandevgo/csbot/internal/storage/memory"
	"github.com/stretchr/testify/require"
)

// fakeClock hands every After channel to the test so it can fire it.
type fakeClock struct {
	mu     sync.Mutex
	now    time.Time
	delays []time.Duration
	timers chan chan time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{
		now:    time.Date(2024, 1, 2, 15, 4, 0, 0, time.UTC),
		timers: make(chan chan time.Time, 16),
	}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(time.Second)
	return c.now
}

func (c *fakeClock) After(d time.Duration) <-chan time.Time {
	c.mu.Lock()
	c.delays = append(c.delays, d)
	c.mu.Unlock()

	ch := make(chan time.Time, 1)
	c.timers <- ch
	return ch
}

// fire releases the next pending timer.
func (c *fakeClock) fire(t *testing.T) {
	t.Helper()
	select {
	case ch := <-c.timers:
		ch <- time.Now()
	case <-time.After(time.Second):
		t.Fatal("no timer was armed")
	}
}

func (c *fakeClock) requested() []time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]time.Duration(nil), c.delays...)
}

type fixedRand int

func (f fixedRand) Intn(n int) int {
	if int(f) >= n {
		return n - 1
	}
	return int(f)
}

type recorder struct {
	mu      sync.Mutex
	updates []Update
}

func (r *recorder) observe(u Update) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.updates = append(r.updates, u)
}

func (r *recorder) all() []Update {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Update(nil), r.updates...)
}

// failingStore fails every append after failAfter, or only the failOnly-th
// append when failOnly is set.
type failingStore struct {
	*memory.Store
	failAfter int
	failOnly  int

	mu    sync.Mutex
	calls int
}

func (s *failingStore) Append(ctx context.Context, sessionID string, msg core.Message) error {
	s.mu.Lock()
	s.calls++
	n := s.calls
	s.mu.Unlock()

	if s.failOnly > 0 && n == s.failOnly || s.failOnly == 0 && n > s.failAfter {
		return errors.New("disk full")
	}
	return s.Store.Append(ctx, sessionID, msg)
}

func newTestSession(t *testing.T, opts ...Option) (*Session, *fakeClock) {
	t.Helper()
	clock := newFakeClock()
	conv, err := NewConversation(context.Background(), memory.NewStore(), topic.Greeting, clock)
	require.NoError(t, err)

	responder := topic.NewResponder(topic.MustDefault(), fixedRand(0))
	opts = append([]Option{WithClock(clock)}, opts...)
	return NewSession(conv, responder, FixedDelay(1500*time.Millisecond), opts...), clock
}

func awaitReply(t *testing.T, ch <-chan core.Message) core.Message {
	t.Helper()
	select {
	case msg, ok := <-ch:
		require.True(t, ok, "reply channel closed without a message")
		return msg
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for reply")
	}
	return core.Message{}
}
