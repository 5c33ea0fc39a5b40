package tui

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandevgo/csbot/internal/core"
	"github.com/sandevgo/csbot/internal/service/chat"
	"github.com/sandevgo/csbot/internal/service/command"
	"github.com/sandevgo/csbot/internal/service/topic"
	"github.com/sandevgo/csbot/internal/storage/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type harness struct {
	model   Model
	session *chat.Session
	updates <-chan chat.Update
}

func newHarness(t *testing.T, ctx context.Context, delay time.Duration) *harness {
	t.Helper()
	conv, err := chat.NewConversation(ctx, memory.NewStore(), topic.Greeting, nil)
	require.NoError(t, err)

	tax := topic.MustDefault()
	observe, updates := Observe()
	session := chat.NewSession(conv, topic.NewResponder(tax, nil), chat.FixedDelay(delay), observe)

	m := New(ctx, session, command.NewDefaultRouter(tax), updates, topic.QuickQuestions)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return &harness{model: next.(Model), session: session, updates: updates}
}

func (h *harness) send(msg tea.Msg) {
	next, _ := h.model.Update(msg)
	h.model = next.(Model)
}

func (h *harness) typeAndEnter(text string) {
	h.model.input.SetValue(text)
	h.send(tea.KeyMsg{Type: tea.KeyEnter})
}

// drain feeds every queued session update into the model.
func (h *harness) drain(t *testing.T, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		select {
		case u := <-h.updates:
			h.send(updateMsg(u))
		case <-time.After(2 * time.Second):
			t.Fatalf("expected %d updates, got %d", n, i)
		}
	}
}

func TestModel_InitialView(t *testing.T) {
	h := newHarness(t, context.Background(), 0)

	view := h.model.View()
	assert.Contains(t, view, core.BotName)
	assert.Contains(t, view, core.BotTagline)
	assert.Contains(t, view, "Hello!")
	for _, q := range topic.QuickQuestions {
		assert.Contains(t, view, q)
	}
	require.Len(t, h.model.entries, 1)
	assert.Contains(t, view, h.model.entries[0].msg.Timestamp.Format(TimeFormat))
}

func TestModel_TabCyclesQuickQuestions(t *testing.T) {
	h := newHarness(t, context.Background(), 0)

	h.send(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, topic.QuickQuestions[0], h.model.input.Value())

	h.send(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, topic.QuickQuestions[1], h.model.input.Value())

	for range topic.QuickQuestions[2:] {
		h.send(tea.KeyMsg{Type: tea.KeyTab})
	}
	h.send(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, topic.QuickQuestions[0], h.model.input.Value(), "wraps around")
}

func TestModel_SubmitAndReply(t *testing.T) {
	h := newHarness(t, context.Background(), 0)

	h.typeAndEnter("What is Python?")
	assert.Empty(t, h.model.input.Value())

	h.session.Wait()
	h.drain(t, 4)

	require.Len(t, h.model.entries, 3)
	assert.Equal(t, core.SenderUser, h.model.entries[1].msg.Sender)
	assert.Equal(t, topic.Responses[topic.CatPython], h.model.entries[2].msg.Text)
	assert.False(t, h.model.typing)

	view := h.model.View()
	assert.Contains(t, view, "You")
	assert.NotContains(t, view, "Quick questions")
}

func TestModel_AltEnterDoesNotSubmit(t *testing.T) {
	h := newHarness(t, context.Background(), 0)

	h.model.input.SetValue("What is Python?")
	h.send(tea.KeyMsg{Type: tea.KeyEnter, Alt: true})

	assert.Equal(t, "What is Python?", h.model.input.Value())
	assert.False(t, h.session.IsPending())
	assert.Len(t, h.model.entries, 1)
}

func TestModel_BlankInputIgnored(t *testing.T) {
	h := newHarness(t, context.Background(), 0)

	h.typeAndEnter("    ")
	assert.False(t, h.session.IsPending())
	assert.Len(t, h.model.entries, 1)
}

func TestModel_InputBlockedWhilePending(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	h := newHarness(t, ctx, time.Hour)

	h.typeAndEnter("What is Java?")
	h.drain(t, 2)
	assert.True(t, h.model.typing)
	assert.Contains(t, h.model.View(), "is typing")

	h.typeAndEnter("What is Git?")
	assert.Equal(t, "What is Git?", h.model.input.Value(), "input is kept for later")
	assert.Contains(t, h.model.status, "wait")

	cancel()
	h.session.Wait()
	h.drain(t, 2)

	require.Len(t, h.model.entries, 3)
	assert.Equal(t, topic.Responses[topic.CatJava], h.model.entries[2].msg.Text)
	assert.False(t, h.model.typing)
}

func TestModel_SlashCommandStaysLocal(t *testing.T) {
	h := newHarness(t, context.Background(), 0)

	h.typeAndEnter("/topics")

	require.Len(t, h.model.entries, 2)
	assert.Contains(t, h.model.entries[1].notice, "python")
	assert.NotContains(t, h.model.entries[1].notice, "**")

	msgs, err := h.session.Messages(context.Background())
	require.NoError(t, err)
	assert.Len(t, msgs, 1)
}

func TestModel_QuitKeys(t *testing.T) {
	h := newHarness(t, context.Background(), 0)

	_, cmd := h.model.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}
