package chat

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/sandevgo/csbot/internal/core"
	"github.com/sandevgo/csbot/internal/service/topic"
	"github.com/sandevgo/csbot/pkg/log"
)

type Responder interface {
	Reply(text string) topic.Reply
}

type Delayer interface {
	Next() time.Duration
}

type UpdateKind int

const (
	UpdateMessage UpdateKind = iota
	UpdateTyping
)

// Update is delivered to observers whenever a message is appended or the
// typing indicator flips.
type Update struct {
	Kind    UpdateKind
	Message core.Message
	Typing  bool
}

type Option func(*Session)

func WithObserver(fn func(Update)) Option {
	return func(s *Session) {
		s.observers = append(s.observers, fn)
	}
}

func WithClock(clock Clock) Option {
	return func(s *Session) {
		s.clock = clock
	}
}

// Session sequences user turns and delayed bot replies over one Conversation.
// Only one reply may be pending at a time; further submissions are rejected
// with ErrReplyPending until it resolves.
type Session struct {
	conv      *Conversation
	responder Responder
	delay     Delayer
	clock     Clock
	observers []func(Update)

	mu      sync.Mutex
	pending bool
	typing  bool
	wg      sync.WaitGroup
}

func NewSession(conv *Conversation, responder Responder, delay Delayer, opts ...Option) *Session {
	s := &Session{
		conv:      conv,
		responder: responder,
		delay:     delay,
		clock:     SystemClock,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Session) SessionID() string {
	return s.conv.SessionID()
}

func (s *Session) Messages(ctx context.Context) ([]core.Message, error) {
	return s.conv.Messages(ctx)
}

func (s *Session) IsTyping() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.typing
}

func (s *Session) IsPending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending
}

// Submit appends the user message right away and schedules the bot reply.
// The returned channel yields the bot message once the delay has elapsed and
// is closed afterwards. Cancelling ctx cuts the delay short; the reply is
// still produced.
func (s *Session) Submit(ctx context.Context, text string) (core.Message, <-chan core.Message, error) {
	if strings.TrimSpace(text) == "" {
		return core.Message{}, nil, ErrEmptyInput
	}

	s.mu.Lock()
	if s.pending {
		s.mu.Unlock()
		return core.Message{}, nil, ErrReplyPending
	}
	s.pending = true
	s.mu.Unlock()

	userMsg, err := s.conv.Append(ctx, core.SenderUser, text, "")
	if err != nil {
		s.mu.Lock()
		s.pending = false
		s.mu.Unlock()
		return core.Message{}, nil, err
	}
	s.emit(Update{Kind: UpdateMessage, Message: userMsg})
	s.setTyping(true)

	out := make(chan core.Message, 1)
	s.wg.Add(1)
	go s.compose(ctx, text, out)

	return userMsg, out, nil
}

// Wait blocks until no reply is pending.
func (s *Session) Wait() {
	s.wg.Wait()
}

func (s *Session) compose(ctx context.Context, text string, out chan<- core.Message) {
	defer s.wg.Done()
	defer close(out)
	logger := log.FromCtx(ctx)

	select {
	case <-s.clock.After(s.delay.Next()):
	case <-ctx.Done():
	}

	reply := s.responder.Reply(text)
	var category string
	if reply.Match.Kind == topic.KindCategory {
		category = string(reply.Match.Category)
	}
	logger.Debug().
		Str("session", s.SessionID()).
		Stringer("kind", reply.Match.Kind).
		Str("category", category).
		Str("trigger", reply.Match.Trigger).
		Msg("composed reply")

	botMsg, err := s.conv.Append(context.WithoutCancel(ctx), core.SenderBot, reply.Text, category)
	if err != nil {
		logger.Error().Err(err).Str("session", s.SessionID()).Msg("failed to save bot message")
	}

	// Typing goes off with the pending flag, before anyone sees the reply and
	// submits again.
	s.mu.Lock()
	s.pending = false
	s.typing = false
	s.mu.Unlock()

	s.emit(Update{Kind: UpdateTyping, Typing: false})
	s.emit(Update{Kind: UpdateMessage, Message: botMsg})
	out <- botMsg
}

func (s *Session) setTyping(on bool) {
	s.mu.Lock()
	s.typing = on
	s.mu.Unlock()
	s.emit(Update{Kind: UpdateTyping, Typing: on})
}

func (s *Session) emit(u Update) {
	for _, fn := range s.observers {
		fn(u)
	}
}
