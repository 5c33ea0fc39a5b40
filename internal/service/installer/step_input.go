package installer

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// InputStep collects one env var through a text field. A conditional step is
// skipped when its condition does not hold, and an empty answer keeps the default.
type InputStep struct {
	prompt   string
	key      string
	def      string
	when     func(*InstallState) bool
	validate func(string) error

	input textinput.Model
	err   error
}

func newInputStep(prompt, key, def, placeholder string) *InputStep {
	ti := textinput.New()
	ti.Focus()
	ti.CharLimit = 255
	ti.Width = 40
	ti.Placeholder = placeholder
	ti.EchoMode = textinput.EchoNormal

	return &InputStep{
		prompt: prompt,
		key:    key,
		def:    def,
		input:  ti,
	}
}

func (s *InputStep) Init() tea.Cmd {
	if s.when != nil {
		// re-check the condition once the step becomes active
		return func() tea.Msg { return nextMsg{} }
	}
	return textinput.Blink
}

func (s *InputStep) Update(msg tea.Msg, state *InstallState, width, height int) (Step, tea.Cmd) {
	if s.when != nil && !s.when(state) {
		return nil, nil
	}
	if _, ok := msg.(nextMsg); ok {
		return s, textinput.Blink
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)

	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "enter" {
		value := strings.TrimSpace(s.input.Value())
		if value == "" {
			value = s.def
		}
		if s.validate != nil {
			if err := s.validate(value); err != nil {
				s.err = err
				return s, nil
			}
		}
		if value != "" {
			state.EnvVars[s.key] = value
		}
		return nil, nil
	}
	return s, cmd
}

func (s *InputStep) View(state *InstallState) string {
	var b strings.Builder
	b.WriteString(s.prompt + "\n\n")
	b.WriteString(s.input.View() + "\n\n")
	if s.err != nil {
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", s.err)) + "\n\n")
	}
	if s.def != "" {
		b.WriteString(fmt.Sprintf("(press enter to confirm, empty keeps %s)\n", s.def))
	} else {
		b.WriteString("(press enter to confirm)\n")
	}
	return b.String()
}
