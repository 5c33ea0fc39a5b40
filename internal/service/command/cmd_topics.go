package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/sandevgo/csbot/internal/service/topic"
)

const sampleTriggers = 3

type TopicsCommand struct {
	tax       *topic.Taxonomy
	formatter *ResponseFormatter
}

func NewTopicsCommand(tax *topic.Taxonomy) *TopicsCommand {
	return &TopicsCommand{
		tax:       tax,
		formatter: NewResponseFormatter(),
	}
}

func (c *TopicsCommand) Name() string {
	return "topics"
}

func (c *TopicsCommand) Description() string {
	return "Show the topics I can explain"
}

func (c *TopicsCommand) Execute(ctx context.Context, sessionID string, args []string) (string, error) {
	cats := c.tax.Categories()
	items := make([]string, 0, len(cats))
	for _, cat := range cats {
		triggers := c.tax.Triggers(cat)
		if len(triggers) > sampleTriggers {
			triggers = triggers[:sampleTriggers]
		}
		items = append(items, fmt.Sprintf("**%s**: %s", cat, strings.Join(triggers, ", ")))
	}

	return c.formatter.Join(
		c.formatter.Heading("Topics"),
		c.formatter.Bullets(items),
		c.formatter.Usage("/topic <name>"),
	), nil
}

type TopicCommand struct {
	tax       *topic.Taxonomy
	formatter *ResponseFormatter
}

func NewTopicCommand(tax *topic.Taxonomy) *TopicCommand {
	return &TopicCommand{
		tax:       tax,
		formatter: NewResponseFormatter(),
	}
}

func (c *TopicCommand) Name() string {
	return "topic"
}

func (c *TopicCommand) Description() string {
	return "Show the overview of one topic"
}

func (c *TopicCommand) Execute(ctx context.Context, sessionID string, args []string) (string, error) {
	if len(args) == 0 {
		return c.formatter.Join(
			c.formatter.Usage("/topic <name>"),
			c.formatter.Hint("see /topics for the names"),
		), nil
	}

	name := topic.Category(strings.ToLower(strings.Join(args, " ")))
	text, ok := c.tax.Response(name)
	if !ok {
		return "", fmt.Errorf("unknown topic %q, see /topics", name)
	}
	return c.formatter.Join(
		c.formatter.Heading(strings.ToUpper(string(name[:1]))+string(name[1:])),
		text+"\n",
		c.formatter.Triggers(c.tax.Triggers(name)),
	), nil
}
