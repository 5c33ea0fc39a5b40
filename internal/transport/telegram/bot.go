package telegram

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sandevgo/csbot/internal/config"
	"github.com/sandevgo/csbot/internal/core"
	"github.com/sandevgo/csbot/internal/service/chat"
	"github.com/sandevgo/csbot/pkg/log"
	"github.com/sandevgo/csbot/pkg/retry"
	tele "gopkg.in/telebot.v3"
)

const baseContextKey = "base_context"

const pendingNotice = "I'm still answering your previous question, one moment please."

type Bot struct {
	bot     *tele.Bot
	cfg     *config.TelegramConfig
	session *chat.Session
	router  core.CmdRouter
	sender  *sender
	quick   []string
	ownerID int64
}

// NewBot connects the owner's private chat to session. Other users are ignored.
func NewBot(
	ctx context.Context,
	cfg *config.TelegramConfig,
	session *chat.Session,
	router core.CmdRouter,
	quick []string,
) (*Bot, error) {
	pref := tele.Settings{
		Token:  cfg.Token,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
		OnError: func(err error, c tele.Context) {
			log.FromCtx(ctx).Error().Err(err).Msg("telegram handler failed")
		},
	}

	b, err := tele.NewBot(pref)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}

	bot := &Bot{
		bot:     b,
		cfg:     cfg,
		session: session,
		router:  router,
		sender:  newSender(b, retry.NewDefaultRetrier()),
		quick:   quick,
		ownerID: cfg.OwnerID,
	}

	// Use context from Signal with logger
	b.Use(func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			c.Set(baseContextKey, ctx)
			return next(c)
		}
	})

	// Middleware: Only allow the owner
	b.Use(func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			if c.Sender() == nil || c.Sender().ID != bot.ownerID {
				return nil // Ignore unauthorized users
			}
			return next(c)
		}
	})

	b.Handle("/start", bot.handleStart)
	b.Handle(tele.OnText, bot.handleMessage)

	return bot, nil
}

func (b *Bot) Start(ctx context.Context) error {
	logger := log.FromCtx(ctx)
	logger.Info().Msg("starting telegram bot")

	if err := b.bot.SetCommands(b.botCommands()); err != nil {
		logger.Warn().Err(err).Msg("failed to register telegram commands")
	}

	b.bot.Start()
	return nil
}

func (b *Bot) Shutdown(ctx context.Context) error {
	b.bot.Stop()
	b.session.Wait()
	return nil
}

func (b *Bot) botCommands() []tele.Command {
	cmds := b.router.ListCommands()
	res := make([]tele.Command, 0, len(cmds))
	for _, cmd := range cmds {
		res = append(res, tele.Command{Text: cmd.Name(), Description: cmd.Description()})
	}
	return res
}

func (b *Bot) baseContext(c tele.Context) context.Context {
	if ctx, ok := c.Get(baseContextKey).(context.Context); ok {
		return ctx
	}
	return context.Background()
}

func (b *Bot) handleStart(c tele.Context) error {
	ctx := b.baseContext(c)

	msgs, err := b.session.Messages(ctx)
	if err != nil || len(msgs) == 0 {
		return c.Send(fmt.Sprintf("%s: %s", core.BotName, core.BotTagline))
	}
	return b.sender.sendMarkdown(ctx, c.Recipient(), msgs[0].Text, quickKeyboard(b.quick))
}

func (b *Bot) handleMessage(c tele.Context) error {
	ctx := b.baseContext(c)
	logger := log.FromCtx(ctx)

	if out, ok := b.router.Execute(ctx, b.session.SessionID(), c.Text()); ok {
		return b.sender.sendMarkdown(ctx, c.Recipient(), out)
	}

	_, replies, err := b.session.Submit(ctx, c.Text())
	switch {
	case errors.Is(err, chat.ErrEmptyInput):
		return nil
	case errors.Is(err, chat.ErrReplyPending):
		return c.Send(pendingNotice)
	case err != nil:
		logger.Error().Err(err).Msg("failed to submit message")
		return c.Send(fmt.Sprintf("error: %v", err))
	}

	// Notify user we are working
	_ = c.Notify(tele.Typing)

	reply, ok := <-replies
	if !ok {
		return nil
	}
	return b.sender.sendMarkdown(ctx, c.Recipient(), reply.Text, &tele.ReplyMarkup{RemoveKeyboard: true})
}

// quickKeyboard offers the suggested questions as one-tap buttons.
func quickKeyboard(questions []string) *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{ResizeKeyboard: true, OneTimeKeyboard: true}
	rows := make([]tele.Row, 0, len(questions))
	for _, q := range questions {
		rows = append(rows, menu.Row(menu.Text(q)))
	}
	menu.Reply(rows...)
	return menu
}
