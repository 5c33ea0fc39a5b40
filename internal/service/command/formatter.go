package command

import (
	"fmt"
	"strings"
)

// ResponseFormatter renders command output as Markdown. Transports convert it
// further (Telegram HTML, plain text for the terminal).
type ResponseFormatter struct{}

func NewResponseFormatter() *ResponseFormatter {
	return &ResponseFormatter{}
}

func (f *ResponseFormatter) Heading(title string) string {
	return fmt.Sprintf("🎓 **%s**\n", title)
}

func (f *ResponseFormatter) Failure(command string, err error) string {
	return fmt.Sprintf("⚠️ **/%s failed**\n\n%s\n", command, err)
}

func (f *ResponseFormatter) Usage(command string) string {
	return fmt.Sprintf("**Usage**: `%s`\n", command)
}

func (f *ResponseFormatter) Bullets(items []string) string {
	var sb strings.Builder
	for _, item := range items {
		fmt.Fprintf(&sb, "› %s\n", item)
	}
	return sb.String()
}

// Triggers lists the phrases that route a question to one topic.
func (f *ResponseFormatter) Triggers(phrases []string) string {
	quoted := make([]string, len(phrases))
	for i, p := range phrases {
		quoted[i] = "`" + p + "`"
	}
	return "**Triggered by**: " + strings.Join(quoted, ", ") + "\n"
}

func (f *ResponseFormatter) Hint(text string) string {
	return fmt.Sprintf("_%s_\n", text)
}

func (f *ResponseFormatter) Join(sections ...string) string {
	return strings.Join(sections, "\n")
}
