package command

import (
	"github.com/sandevgo/csbot/internal/core"
	"github.com/sandevgo/csbot/internal/service/topic"
)

func NewCommands(tax *topic.Taxonomy, quick []string) []core.Command {
	return []core.Command{
		NewTopicsCommand(tax),
		NewTopicCommand(tax),
		NewExamplesCommand(quick),
	}
}

// NewDefaultRouter wires the stock commands over the default taxonomy.
func NewDefaultRouter(tax *topic.Taxonomy) *Router {
	return New(NewCommands(tax, topic.QuickQuestions))
}
