package core

import "context"

// CmdRouter handles slash commands typed into any transport. The second result
// reports whether the input was a command at all.
type CmdRouter interface {
	Execute(ctx context.Context, sessionID, input string) (string, bool)
	ListCommands() []Command
}

type Command interface {
	Name() string
	Description() string
	Execute(ctx context.Context, sessionID string, args []string) (string, error)
}
