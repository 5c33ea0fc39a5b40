package telegram

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/sandevgo/csbot/pkg/conv"
	"github.com/sandevgo/csbot/pkg/log"
	"github.com/sandevgo/csbot/pkg/retry"
	tele "gopkg.in/telebot.v3"
)

const maxTelegramMsgLen = 4000 // Safety margin below 4096

type messenger interface {
	Send(to tele.Recipient, what interface{}, opts ...interface{}) (*tele.Message, error)
}

type sender struct {
	bot     messenger
	retrier *retry.Retrier
}

func newSender(bot messenger, retrier *retry.Retrier) *sender {
	if retrier == nil {
		retrier = retry.NewDefaultRetrier()
	}
	return &sender{bot: bot, retrier: retrier}
}

// sendMarkdown converts Markdown to Telegram HTML and sends it in chunks if
// needed. A chunk Telegram refuses to parse is resent as plain text.
func (s *sender) sendMarkdown(ctx context.Context, to tele.Recipient, md string, extra ...interface{}) error {
	logger := log.FromCtx(ctx)
	html := strings.TrimSpace(conv.MarkdownToTelegramHTML([]byte(md)))
	if html == "" {
		return nil
	}

	chunks := splitHTML(html, maxTelegramMsgLen)
	for i, chunk := range chunks {
		opts := []interface{}{tele.ModeHTML}
		// keyboards and similar only go with the last chunk
		if i == len(chunks)-1 {
			opts = append(opts, extra...)
		}

		err := s.send(ctx, to, chunk, opts...)
		if isParseError(err) {
			logger.Warn().Err(err).Int("chunk", i).Msg("telegram rejected html, falling back to plain text")
			plain := strings.TrimSpace(conv.HTMLToText(chunk))
			err = s.send(ctx, to, plain, opts[1:]...)
		}
		if err != nil {
			logger.Error().Err(err).Int("chunk", i).Int("len", len(chunk)).Msg("failed to send telegram chunk")
			return err
		}
	}
	return nil
}

func (s *sender) send(ctx context.Context, to tele.Recipient, text string, opts ...interface{}) error {
	return s.retrier.Do(ctx, func() error {
		_, err := s.bot.Send(to, text, opts...)
		return classify(err)
	})
}

// classify tells the retrier which Telegram errors are worth another attempt.
func classify(err error) error {
	if err == nil {
		return nil
	}

	var flood tele.FloodError
	if errors.As(err, &flood) {
		return retry.After(err, time.Duration(flood.RetryAfter)*time.Second)
	}

	var apiErr *tele.Error
	if errors.As(err, &apiErr) && apiErr.Code >= 400 && apiErr.Code < 500 {
		return retry.Permanent(err)
	}
	if isParseError(err) {
		return retry.Permanent(err)
	}
	return err
}

func isParseError(err error) bool {
	return err != nil && strings.Contains(err.Error(), "can't parse entities")
}

// splitHTML splits text into chunks respecting Telegram's limit.
// It tries to split at newlines to preserve formatting.
func splitHTML(text string, maxLen int) []string {
	if len(text) <= maxLen {
		return []string{text}
	}

	var chunks []string
	for len(text) > 0 {
		if len(text) <= maxLen {
			chunks = append(chunks, text)
			break
		}

		cut := maxLen
		// Prefer a newline in the last two thirds of the window
		if idx := strings.LastIndex(text[:maxLen], "\n"); idx > maxLen/3 {
			cut = idx
		}

		chunks = append(chunks, text[:cut])
		text = strings.TrimSpace(text[cut:])
	}
	return chunks
}
