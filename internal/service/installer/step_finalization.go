package installer

import (
	tea "github.com/charmbracelet/bubbletea"
)

// FinalizationStep fills derived values and defaults
type FinalizationStep struct{}

func NewFinalizationStep() Step {
	return &FinalizationStep{}
}

func (s *FinalizationStep) Init() tea.Cmd {
	return func() tea.Msg { return nextMsg{} }
}

func (s *FinalizationStep) Update(msg tea.Msg, state *InstallState, width, height int) (Step, tea.Cmd) {
	// Telegram without a token cannot start
	if state.EnvVars["CSBOT_TELEGRAM_TOKEN"] == "" {
		state.EnvVars["CSBOT_ENABLE_TELEGRAM"] = "false"
		delete(state.EnvVars, "CSBOT_TELEGRAM_OWNER_ID")
	}
	if !state.Enabled("CSBOT_ENABLE_WEB") {
		delete(state.EnvVars, "CSBOT_WEB_ADDR")
	}

	if state.EnvVars["CSBOT_STORE"] == "" {
		state.EnvVars["CSBOT_STORE"] = "memory"
	}
	if state.EnvVars["CSBOT_DEBUG"] == "" {
		state.EnvVars["CSBOT_DEBUG"] = "0"
	}

	return nil, nil
}

func (s *FinalizationStep) View(state *InstallState) string {
	return "Finalizing configuration...\n"
}
