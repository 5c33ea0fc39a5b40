package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandevgo/csbot/internal/core"
	"github.com/sandevgo/csbot/internal/service/chat"
	"github.com/sandevgo/csbot/pkg/log"
)

// Run blocks until the user quits or ctx is done.
func Run(ctx context.Context, session *chat.Session, router core.CmdRouter, updates <-chan chat.Update, quick []string) error {
	p := tea.NewProgram(
		New(ctx, session, router, updates, quick),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	_, err := p.Run()
	if err != nil && ctx.Err() == nil {
		return err
	}

	// let a reply that is still being composed land in the log
	session.Wait()
	log.FromCtx(ctx).Info().Str("session", session.SessionID()).Msg("chat window closed")
	return nil
}
