package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/sandevgo/csbot/internal/config"
	"github.com/sandevgo/csbot/internal/core"
	"github.com/sandevgo/csbot/internal/service/chat"
	"github.com/sandevgo/csbot/internal/service/command"
	"github.com/sandevgo/csbot/internal/service/topic"
	"github.com/sandevgo/csbot/internal/storage/memory"
	"github.com/sandevgo/csbot/internal/storage/sqlite"
	"github.com/sandevgo/csbot/internal/transport/telegram"
	"github.com/sandevgo/csbot/internal/transport/web"
	"github.com/sandevgo/csbot/pkg/log"
	"github.com/sandevgo/csbot/pkg/srv"
)

// app bundles what every command needs.
type app struct {
	cfg     *config.AppConfig
	chatCfg *config.ChatConfig
	store   core.ConversationStore
	tax     *topic.Taxonomy
	router  *command.Router
}

func newApp(ctx context.Context) (*app, error) {
	if err := initEnv(ctx, config.GetRuntimePath()); err != nil {
		return nil, fmt.Errorf("failed to init env: %w", err)
	}

	cfg, err := config.ParseAppConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to parse App config: %w", err)
	}

	tax, err := topic.New(topic.DefaultTables())
	if err != nil {
		return nil, err
	}

	store, err := initStorage(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	return &app{
		cfg:     cfg,
		chatCfg: config.NewChatConfig(ctx),
		store:   store,
		tax:     tax,
		router:  command.NewDefaultRouter(tax),
	}, nil
}

func (a *app) newResponder() *topic.Responder {
	return topic.NewResponder(a.tax, nil)
}

// newSession starts a fresh conversation seeded with the greeting.
func (a *app) newSession(ctx context.Context, opts ...chat.Option) (*chat.Session, error) {
	conv, err := chat.NewConversation(ctx, a.store, topic.Greeting, chat.SystemClock)
	if err != nil {
		return nil, err
	}
	session := chat.NewSession(conv, a.newResponder(), chat.NewDelayPolicyFromConfig(a.chatCfg), opts...)
	log.FromCtx(ctx).Debug().Str("session", session.SessionID()).Msg("conversation started")
	return session, nil
}

func initStorage(ctx context.Context, cfg *config.AppConfig) (core.ConversationStore, error) {
	switch cfg.GetStore() {
	case config.StoreSQLite:
		return sqlite.Open(ctx)
	default:
		return memory.NewStore(), nil
	}
}

// NewServices builds the network transports selected in the config.
func NewServices(ctx context.Context, a *app) ([]srv.Service, error) {
	services := []srv.Service{srv.CloseOnShutdown(a.store)}

	if a.cfg.IsWebSelected() {
		hub := web.NewHub()
		session, err := a.newSession(ctx, chat.WithObserver(hub.Observe))
		if err != nil {
			return nil, err
		}
		webCfg := config.NewWebConfig(ctx)
		services = append(services, web.NewServer(ctx, webCfg, session, a.router, a.tax, hub, topic.QuickQuestions))
	}

	if a.cfg.IsTelegramSelected() {
		session, err := a.newSession(ctx)
		if err != nil {
			return nil, err
		}
		tgCfg := config.NewTelegramConfig(ctx)
		bot, err := telegram.NewBot(ctx, tgCfg, session, a.router, topic.QuickQuestions)
		if err != nil {
			return nil, err
		}
		services = append(services, bot)
	}

	if len(services) == 1 {
		return nil, fmt.Errorf("no transport enabled, set CSBOT_ENABLE_WEB or CSBOT_ENABLE_TELEGRAM, or use 'csbot chat'")
	}
	return services, nil
}

func initEnv(ctx context.Context, runtimePath string) error {
	logger := log.FromCtx(ctx)
	envFile := filepath.Join(runtimePath, ".env")

	if _, err := os.Stat(envFile); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	if err := godotenv.Load(envFile); err != nil {
		logger.Warn().Err(err).Str("path", envFile).Msg("failed to load .env file")
		return err
	}

	logger.Debug().Str("path", envFile).Msg("loaded .env file")
	return nil
}
