package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sandevgo/csbot/internal/core"
	"github.com/sandevgo/csbot/internal/service/chat"
	"github.com/sandevgo/csbot/internal/service/ui"
	"github.com/sandevgo/csbot/pkg/conv"
	"github.com/sandevgo/csbot/pkg/log"
)

const (
	TimeFormat = "03:04 PM"

	headerHeight = 3
	footerHeight = 5
)

// entry is one rendered block: a conversation message or a local command result.
type entry struct {
	msg    core.Message
	notice string
}

type updateMsg chat.Update

type Model struct {
	ctx     context.Context
	session *chat.Session
	router  core.CmdRouter
	updates <-chan chat.Update
	quick   []string

	viewport viewport.Model
	input    textinput.Model
	spinner  spinner.Model

	entries  []entry
	typing   bool
	quickIdx int
	status   string
	width    int
	height   int
	ready    bool
}

// New builds the chat window over session. updates must be fed by a
// chat.WithObserver hook on the same session, see Observe.
func New(ctx context.Context, session *chat.Session, router core.CmdRouter, updates <-chan chat.Update, quick []string) Model {
	ti := textinput.New()
	ti.Placeholder = "Ask me anything about computer science..."
	ti.Prompt = "› "
	ti.CharLimit = 1000
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = ui.BotNameStyle

	m := Model{
		ctx:      ctx,
		session:  session,
		router:   router,
		updates:  updates,
		quick:    quick,
		input:    ti,
		spinner:  sp,
		viewport: viewport.New(80, 20),
		quickIdx: -1,
	}

	if msgs, err := session.Messages(ctx); err == nil {
		for _, msg := range msgs {
			m.entries = append(m.entries, entry{msg: msg})
		}
	} else {
		log.FromCtx(ctx).Error().Err(err).Msg("failed to load conversation")
	}
	return m
}

// Observe returns a session observer and the channel it feeds.
func Observe() (chat.Option, <-chan chat.Update) {
	ch := make(chan chat.Update, 64)
	return chat.WithObserver(func(u chat.Update) { ch <- u }), ch
}

func waitForUpdate(ch <-chan chat.Update) tea.Cmd {
	return func() tea.Msg {
		u, ok := <-ch
		if !ok {
			return nil
		}
		return updateMsg(u)
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick, waitForUpdate(m.updates))
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height-headerHeight-footerHeight, 3)
		m.input.Width = max(msg.Width-4, 10)
		m.ready = true
		m.refresh()

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			if msg.Alt {
				return m, nil
			}
			m.submit()
			m.refresh()
			return m, nil
		case tea.KeyTab:
			m.nextQuickQuestion()
			return m, nil
		case tea.KeyPgUp, tea.KeyPgDown:
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}

	case updateMsg:
		m.apply(chat.Update(msg))
		m.refresh()
		return m, waitForUpdate(m.updates)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// submit sends the input line. Blank input and input typed while the bot is
// still answering are ignored.
func (m *Model) submit() {
	text := strings.TrimSpace(m.input.Value())
	if text == "" {
		return
	}
	if m.session.IsPending() {
		m.status = "Please wait for the current answer."
		return
	}

	m.status = ""
	m.input.Reset()
	m.quickIdx = -1

	if out, ok := m.router.Execute(m.ctx, m.session.SessionID(), text); ok {
		m.entries = append(m.entries, entry{notice: renderMarkdown(out)})
		return
	}

	_, _, err := m.session.Submit(m.ctx, text)
	switch {
	case errors.Is(err, chat.ErrReplyPending):
		m.input.SetValue(text)
		m.status = "Please wait for the current answer."
	case err != nil:
		log.FromCtx(m.ctx).Error().Err(err).Msg("failed to submit message")
		m.status = fmt.Sprintf("Error: %v", err)
	}
}

func (m *Model) nextQuickQuestion() {
	if len(m.quick) == 0 || m.session.IsPending() {
		return
	}
	m.quickIdx = (m.quickIdx + 1) % len(m.quick)
	m.input.SetValue(m.quick[m.quickIdx])
	m.input.CursorEnd()
}

func (m *Model) apply(u chat.Update) {
	switch u.Kind {
	case chat.UpdateMessage:
		m.entries = append(m.entries, entry{msg: u.Message})
	case chat.UpdateTyping:
		m.typing = u.Typing
	}
}

func (m *Model) refresh() {
	m.viewport.SetContent(m.renderEntries())
	m.viewport.GotoBottom()
}

func (m Model) messageCount() int {
	n := 0
	for _, e := range m.entries {
		if e.notice == "" {
			n++
		}
	}
	return n
}

func (m Model) renderEntries() string {
	width := max(m.viewport.Width-4, 20)
	body := lipgloss.NewStyle().Width(width)

	var sb strings.Builder
	for _, e := range m.entries {
		if e.notice != "" {
			sb.WriteString(ui.NoticeStyle.Render(body.Render(e.notice)))
			sb.WriteString("\n\n")
			continue
		}

		name := ui.BotNameStyle.Render(core.BotName)
		if !e.msg.IsBot() {
			name = ui.UserNameStyle.Render("You")
		}
		sb.WriteString(name + " " + ui.TimeStyle.Render(e.msg.Timestamp.Format(TimeFormat)) + "\n")
		sb.WriteString(ui.BubbleStyle.Render(body.Render(e.msg.Text)))
		sb.WriteString("\n\n")
	}

	if m.typing {
		sb.WriteString(m.spinner.View() + " " + ui.DescStyle.Render(core.BotName+" is typing..."))
		sb.WriteString("\n")
	}

	// Suggestions only make sense before the first question.
	if m.messageCount() == 1 && len(m.quick) > 0 {
		sb.WriteString(ui.DescStyle.Render("Quick questions (Tab to pick):") + "\n")
		for i, q := range m.quick {
			marker := "  "
			if i == m.quickIdx {
				marker = "› "
			}
			sb.WriteString(ui.QuickStyle.Render(marker+q) + "\n")
		}
	}
	return sb.String()
}

func (m Model) View() string {
	if !m.ready {
		return "Loading...\n"
	}

	header := ui.HeaderStyle.Render("🎓 "+core.BotName) + "\n" + ui.TaglineStyle.Render(core.BotTagline) + "\n"

	status := m.status
	if status == "" && m.typing {
		status = ui.DescStyle.Render("Waiting for the answer...")
	} else if status != "" {
		status = ui.StatusStyle.Render(status)
	}

	help := ui.DescStyle.Render("enter send • tab quick question • /help commands • pgup/pgdn scroll • esc quit")

	return header + "\n" + m.viewport.View() + "\n" + status + "\n" + m.input.View() + "\n" + help
}

// renderMarkdown flattens command output for the terminal.
func renderMarkdown(md string) string {
	return strings.TrimSpace(conv.HTMLToText(conv.MarkdownToHTML([]byte(md))))
}
