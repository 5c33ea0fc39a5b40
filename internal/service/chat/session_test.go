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
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession_Scenarios(t *testing.T) {
	s, clock := newTestSession(t)
	ctx := context.Background()

	turns := []struct {
		input    string
		want     string
		category string
	}{
		{input: "What is Python?", want: topic.Responses[topic.CatPython], category: "python"},
		{input: "Explain Big O notation", want: topic.Responses[topic.CatAlgorithm], category: "algorithm"},
		{input: "asdkjasd random text", want: topic.OutOfDomainResponse},
		{input: "I love to code", want: topic.FallbackResponses[0]},
		{input: "tell me about git and python", want: topic.Responses[topic.CatPython], category: "python"},
	}

	for _, tt := range turns {
		userMsg, replies, err := s.Submit(ctx, tt.input)
		require.NoError(t, err)
		assert.Equal(t, core.SenderUser, userMsg.Sender)
		assert.Equal(t, tt.input, userMsg.Text)

		clock.fire(t)
		bot := awaitReply(t, replies)
		assert.Equal(t, core.SenderBot, bot.Sender)
		assert.Equal(t, tt.want, bot.Text, "input %q", tt.input)
		assert.Equal(t, tt.category, bot.Category)
		assert.Greater(t, bot.ID, userMsg.ID)
	}

	msgs, err := s.Messages(ctx)
	require.NoError(t, err)
	require.Len(t, msgs, 1+2*len(turns))

	assert.Equal(t, topic.Greeting, msgs[0].Text)
	assert.Equal(t, int64(1), msgs[0].ID)
	for i := 1; i < len(msgs); i++ {
		assert.Greater(t, msgs[i].ID, msgs[i-1].ID)
		assert.False(t, msgs[i].Timestamp.Before(msgs[i-1].Timestamp))
		if i%2 == 1 {
			assert.Equal(t, core.SenderUser, msgs[i].Sender)
		} else {
			assert.Equal(t, core.SenderBot, msgs[i].Sender)
		}
	}
}

func TestSession_EmptyInput(t *testing.T) {
	s, _ := newTestSession(t)

	for _, input := range []string{"", "   ", "\n\t"} {
		_, replies, err := s.Submit(context.Background(), input)
		assert.ErrorIs(t, err, ErrEmptyInput)
		assert.Nil(t, replies)
	}

	msgs, err := s.Messages(context.Background())
	require.NoError(t, err)
	assert.Len(t, msgs, 1)
	assert.False(t, s.IsTyping())
}

func TestSession_RejectsWhilePending(t *testing.T) {
	s, clock := newTestSession(t)
	ctx := context.Background()

	_, replies, err := s.Submit(ctx, "What is Python?")
	require.NoError(t, err)
	assert.True(t, s.IsPending())
	assert.True(t, s.IsTyping())

	_, _, err = s.Submit(ctx, "What is Java?")
	assert.ErrorIs(t, err, ErrReplyPending)

	clock.fire(t)
	awaitReply(t, replies)
	s.Wait()
	assert.False(t, s.IsPending())
	assert.False(t, s.IsTyping())

	_, replies, err = s.Submit(ctx, "What is Java?")
	require.NoError(t, err)
	clock.fire(t)
	assert.Equal(t, topic.Responses[topic.CatJava], awaitReply(t, replies).Text)

	msgs, _ := s.Messages(ctx)
	assert.Len(t, msgs, 5)
}

func TestSession_UpdatesInOrder(t *testing.T) {
	rec := &recorder{}
	s, clock := newTestSession(t, WithObserver(rec.observe))

	_, replies, err := s.Submit(context.Background(), "What is SQL?")
	require.NoError(t, err)
	clock.fire(t)
	awaitReply(t, replies)
	s.Wait()

	got := rec.all()
	require.Len(t, got, 4)

	assert.Equal(t, UpdateMessage, got[0].Kind)
	assert.Equal(t, core.SenderUser, got[0].Message.Sender)

	assert.Equal(t, UpdateTyping, got[1].Kind)
	assert.True(t, got[1].Typing)

	assert.Equal(t, UpdateTyping, got[2].Kind)
	assert.False(t, got[2].Typing)

	assert.Equal(t, UpdateMessage, got[3].Kind)
	assert.Equal(t, core.SenderBot, got[3].Message.Sender)
	assert.Equal(t, "database", got[3].Message.Category)
}

func TestSession_ResubmitOnReplyKeepsTyping(t *testing.T) {
	var (
		s       *Session
		once    sync.Once
		second  = make(chan (<-chan core.Message), 1)
		seenErr = make(chan error, 1)
	)
	s, clock := newTestSession(t, WithObserver(func(u Update) {
		if u.Kind != UpdateMessage || u.Message.Sender != core.SenderBot {
			return
		}
		once.Do(func() {
			_, replies, err := s.Submit(context.Background(), "What is Git?")
			seenErr <- err
			second <- replies
		})
	}))

	_, replies, err := s.Submit(context.Background(), "What is Python?")
	require.NoError(t, err)
	clock.fire(t)
	awaitReply(t, replies)

	require.NoError(t, <-seenErr)
	assert.True(t, s.IsPending())
	assert.True(t, s.IsTyping())

	clock.fire(t)
	bot := awaitReply(t, <-second)
	s.Wait()

	assert.Equal(t, topic.Responses[topic.CatGit], bot.Text)
	assert.False(t, s.IsPending())
	assert.False(t, s.IsTyping())
}

func TestSession_FailedReplyIDNotReused(t *testing.T) {
	clock := newFakeClock()
	store := &failingStore{Store: memory.NewStore(), failOnly: 3}
	conv, err := NewConversation(context.Background(), store, topic.Greeting, clock)
	require.NoError(t, err)
	s := NewSession(conv, topic.NewResponder(topic.MustDefault(), fixedRand(0)), FixedDelay(0), WithClock(clock))

	user, replies, err := s.Submit(context.Background(), "What is Python?")
	require.NoError(t, err)
	clock.fire(t)
	lost := awaitReply(t, replies)
	s.Wait()
	assert.Equal(t, int64(2), user.ID)
	assert.Equal(t, int64(3), lost.ID)

	next, replies, err := s.Submit(context.Background(), "What is Git?")
	require.NoError(t, err)
	clock.fire(t)
	bot := awaitReply(t, replies)
	s.Wait()

	assert.Equal(t, int64(4), next.ID)
	assert.Equal(t, int64(5), bot.ID)

	msgs, err := s.Messages(context.Background())
	require.NoError(t, err)
	ids := make([]int64, len(msgs))
	for i, m := range msgs {
		ids[i] = m.ID
	}
	assert.Equal(t, []int64{1, 2, 4, 5}, ids)
}

func TestSession_UsesDelayPolicy(t *testing.T) {
	s, clock := newTestSession(t)

	_, replies, err := s.Submit(context.Background(), "hello")
	require.NoError(t, err)
	clock.fire(t)
	awaitReply(t, replies)

	assert.Equal(t, []time.Duration{1500 * time.Millisecond}, clock.requested())
}

func TestSession_CancelStillReplies(t *testing.T) {
	s, _ := newTestSession(t)
	ctx, cancel := context.WithCancel(context.Background())

	_, replies, err := s.Submit(ctx, "What is Linux?")
	require.NoError(t, err)
	cancel()

	bot := awaitReply(t, replies)
	assert.Equal(t, topic.Responses[topic.CatOS], bot.Text)

	_, open := <-replies
	assert.False(t, open)

	msgs, err := s.Messages(context.Background())
	require.NoError(t, err)
	require.Len(t, msgs, 3)
	assert.Equal(t, bot, msgs[2])
	assert.False(t, s.IsPending())
}

func TestSession_StoreFailureClearsPending(t *testing.T) {
	clock := newFakeClock()
	store := &failingStore{Store: memory.NewStore(), failAfter: 1}
	conv, err := NewConversation(context.Background(), store, topic.Greeting, clock)
	require.NoError(t, err)
	s := NewSession(conv, topic.NewResponder(topic.MustDefault(), fixedRand(0)), FixedDelay(0), WithClock(clock))

	_, replies, err := s.Submit(context.Background(), "What is Python?")
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrReplyPending))
	assert.Nil(t, replies)
	assert.False(t, s.IsPending())
	assert.False(t, s.IsTyping())
}
