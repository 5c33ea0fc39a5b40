package command

import (
	"context"
	"fmt"

	"github.com/sandevgo/csbot/internal/core"
)

type lister interface {
	ListCommands() []core.Command
}

type HelpCommand struct {
	router    lister
	formatter *ResponseFormatter
}

func NewHelpCommand(router lister) *HelpCommand {
	return &HelpCommand{
		router:    router,
		formatter: NewResponseFormatter(),
	}
}

func (c *HelpCommand) Name() string {
	return "help"
}

func (c *HelpCommand) Description() string {
	return "List available commands"
}

func (c *HelpCommand) Execute(ctx context.Context, sessionID string, args []string) (string, error) {
	cmds := c.router.ListCommands()
	items := make([]string, 0, len(cmds))
	for _, cmd := range cmds {
		items = append(items, fmt.Sprintf("`/%s` %s", cmd.Name(), cmd.Description()))
	}

	return c.formatter.Join(
		c.formatter.Heading("Commands"),
		c.formatter.Bullets(items),
		c.formatter.Hint("anything that does not start with / is answered as a question"),
	), nil
}
