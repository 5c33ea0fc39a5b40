package core

import "time"

type ChatConfig interface {
	GetReplyDelayMin() time.Duration
	GetReplyDelayJitter() time.Duration
}
