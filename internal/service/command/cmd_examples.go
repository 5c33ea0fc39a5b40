package command

import (
	"context"
)

type ExamplesCommand struct {
	questions []string
	formatter *ResponseFormatter
}

func NewExamplesCommand(questions []string) *ExamplesCommand {
	return &ExamplesCommand{
		questions: questions,
		formatter: NewResponseFormatter(),
	}
}

func (c *ExamplesCommand) Name() string {
	return "examples"
}

func (c *ExamplesCommand) Description() string {
	return "Suggest questions to start with"
}

func (c *ExamplesCommand) Execute(ctx context.Context, sessionID string, args []string) (string, error) {
	return c.formatter.Join(
		c.formatter.Heading("Try asking"),
		c.formatter.Bullets(c.questions),
	), nil
}
