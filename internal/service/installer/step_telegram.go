package installer

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
)

func telegramSelected(st *InstallState) bool {
	return st.Enabled("CSBOT_ENABLE_TELEGRAM")
}

// NewTelegramTokenStep collects the Telegram bot token
func NewTelegramTokenStep() Step {
	s := newInputStep("Enter your Telegram Bot Token:", "CSBOT_TELEGRAM_TOKEN", "", "123456789:ABCDEF...")
	s.input.EchoMode = textinput.EchoPassword
	s.input.EchoCharacter = '•'
	s.when = telegramSelected
	s.validate = func(v string) error {
		if !strings.Contains(v, ":") {
			return errors.New("a bot token looks like 123456789:ABCDEF")
		}
		return nil
	}
	return s
}

// NewTelegramOwnerStep collects the only Telegram user the bot answers
func NewTelegramOwnerStep() Step {
	s := newInputStep("Enter your Telegram User ID (Owner):", "CSBOT_TELEGRAM_OWNER_ID", "", "123456789")
	s.when = telegramSelected
	s.validate = func(v string) error {
		if _, err := strconv.ParseInt(v, 10, 64); err != nil {
			return fmt.Errorf("user id must be a number, got %q", v)
		}
		return nil
	}
	return s
}
