package installer

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

type choice struct {
	label string
	env   map[string]string
}

// ChoiceStep lets the user pick one option; each option sets a group of env vars.
type ChoiceStep struct {
	title   string
	choices []choice
	cursor  int
}

func NewChannelStep() Step {
	return &ChoiceStep{
		title: "Where should CS Assistant chat?",
		choices: []choice{
			{label: "Web API", env: map[string]string{"CSBOT_ENABLE_WEB": "true", "CSBOT_ENABLE_TELEGRAM": "false"}},
			{label: "Telegram", env: map[string]string{"CSBOT_ENABLE_WEB": "false", "CSBOT_ENABLE_TELEGRAM": "true"}},
			{label: "Web API and Telegram", env: map[string]string{"CSBOT_ENABLE_WEB": "true", "CSBOT_ENABLE_TELEGRAM": "true"}},
			{label: "Terminal only (csbot chat)", env: map[string]string{"CSBOT_ENABLE_WEB": "false", "CSBOT_ENABLE_TELEGRAM": "false"}},
		},
	}
}

func NewStoreStep() Step {
	return &ChoiceStep{
		title: "Where should conversations live while the bot runs?",
		choices: []choice{
			{label: "Process memory", env: map[string]string{"CSBOT_STORE": "memory"}},
			{label: "In-memory SQLite", env: map[string]string{"CSBOT_STORE": "sqlite"}},
		},
	}
}

func (s *ChoiceStep) Init() tea.Cmd {
	return nil
}

func (s *ChoiceStep) Update(msg tea.Msg, state *InstallState, width, height int) (Step, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if s.cursor > 0 {
				s.cursor--
			}
		case "down", "j":
			if s.cursor < len(s.choices)-1 {
				s.cursor++
			}
		case "enter":
			for k, v := range s.choices[s.cursor].env {
				state.EnvVars[k] = v
			}
			return nil, nil
		}
	}
	return s, nil
}

func (s *ChoiceStep) View(state *InstallState) string {
	var b strings.Builder
	b.WriteString(s.title + "\n\n")
	for i, c := range s.choices {
		if s.cursor == i {
			b.WriteString(selStyle.Render(fmt.Sprintf("❯ %s", c.label)) + "\n")
		} else {
			b.WriteString(itemStyle.Render(fmt.Sprintf("  %s", c.label)) + "\n")
		}
	}
	b.WriteString("\n(press ctrl+c to quit)\n")
	return b.String()
}
