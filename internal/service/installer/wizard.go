package installer

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sandevgo/csbot/internal/core"
)

var (
	titleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	itemStyle  = lipgloss.NewStyle().PaddingLeft(2)
	selStyle   = lipgloss.NewStyle().PaddingLeft(2).Foreground(lipgloss.Color("5"))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
)

// Step is one screen of the install wizard.
type Step interface {
	Init() tea.Cmd
	Update(msg tea.Msg, state *InstallState, width, height int) (Step, tea.Cmd)
	View(state *InstallState) string
}

func getSteps() []Step {
	return []Step{
		NewChannelStep(),
		NewWebAddrStep(),
		NewTelegramTokenStep(),
		NewTelegramOwnerStep(),
		NewDelayMinStep(),
		NewDelayJitterStep(),
		NewStoreStep(),
		NewFinalizationStep(),
		NewSaveEnvStep(),
	}
}

type nextMsg struct{}

// model walks the steps in order. A step returning nil from Update is done;
// returning a different Step replaces it in place.
type model struct {
	steps     []Step
	pos       int
	state     *InstallState
	cancelled bool
	width     int
	height    int
}

func initialModel(runtimePath string) model {
	return model{
		steps: getSteps(),
		state: NewInstallState(runtimePath),
	}
}

func (m model) finished() bool {
	return m.pos >= len(m.steps)
}

func (m model) Init() tea.Cmd {
	if m.finished() {
		return nil
	}
	return m.steps[m.pos].Init()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.cancelled = true
			return m, tea.Quit
		}
	}
	if m.cancelled || m.finished() {
		return m, tea.Quit
	}

	next, cmd := m.steps[m.pos].Update(msg, m.state, m.width, m.height)
	if next != nil {
		m.steps[m.pos] = next
		return m, cmd
	}

	m.pos++
	if m.finished() {
		return m, tea.Quit
	}
	return m, m.steps[m.pos].Init()
}

func (m model) View() string {
	switch {
	case m.cancelled:
		return "Installation cancelled.\n"
	case m.finished():
		return "Configuration complete!\n"
	}

	header := titleStyle.Render("Setting up "+core.BotName+" 🎓") +
		itemStyle.Render(fmt.Sprintf("step %d of %d", m.pos+1, len(m.steps)))
	return header + "\n\n" + m.steps[m.pos].View(m.state)
}

// RunWizard starts the TUI and returns the collected answers, already saved
// under runtimePath.
func RunWizard(runtimePath string) (*InstallState, error) {
	final, err := tea.NewProgram(initialModel(runtimePath), tea.WithAltScreen()).Run()
	if err != nil {
		return nil, err
	}

	m := final.(model)
	if m.cancelled {
		return nil, errors.New("installation interrupted")
	}
	if !m.finished() {
		return nil, errors.New("installation did not complete")
	}
	return m.state, nil
}
