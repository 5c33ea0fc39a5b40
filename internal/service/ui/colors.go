package ui

import "github.com/charmbracelet/lipgloss"

var (
	// TitleStyle uses ANSI 6 (Cyan), readable on light and dark terminals
	TitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true).MarginBottom(1)

	// UsageStyle ANSI 2 (Green) for arguments and usage
	UsageStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))

	// DescStyle ANSI 8 (Gray) keeps descriptions quiet
	DescStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	// FlagStyle ANSI 3 (Yellow)
	FlagStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
)

// Chat window styles.
var (
	HeaderStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("4")).Bold(true).Padding(0, 1)
	TaglineStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Italic(true)

	BotNameStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	UserNameStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("5")).Bold(true)
	TimeStyle     = DescStyle
	BubbleStyle   = lipgloss.NewStyle().PaddingLeft(2)
	NoticeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("3")).PaddingLeft(2)

	QuickStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).PaddingLeft(2)
	StatusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)
