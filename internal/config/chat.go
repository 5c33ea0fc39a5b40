package config

import (
	"context"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/csbot/pkg/log"
)

type ChatConfig struct {
	ReplyDelayMin    time.Duration `env:"CSBOT_REPLY_DELAY_MIN" envDefault:"1s"`
	ReplyDelayJitter time.Duration `env:"CSBOT_REPLY_DELAY_JITTER" envDefault:"1s"`
}

func NewChatConfig(ctx context.Context) *ChatConfig {
	c := &ChatConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse Chat config")
	}
	return c
}

func (c ChatConfig) GetReplyDelayMin() time.Duration {
	return max(c.ReplyDelayMin, 0)
}

func (c ChatConfig) GetReplyDelayJitter() time.Duration {
	return max(c.ReplyDelayJitter, 0)
}
