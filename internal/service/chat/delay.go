package chat

import (
	"math/rand"
	"sync"
	"time"

	"github.com/sandevgo/csbot/internal/core"
)

const (
	DefaultDelayMin    = time.Second
	DefaultDelayJitter = time.Second
)

// DelayPolicy draws the artificial "thinking" delay as Min + uniform[0, Jitter).
type DelayPolicy struct {
	Min    time.Duration
	Jitter time.Duration

	mu  sync.Mutex
	rnd *rand.Rand
}

func NewDelayPolicy(minDelay, jitter time.Duration, seed int64) *DelayPolicy {
	if minDelay < 0 {
		minDelay = 0
	}
	if jitter < 0 {
		jitter = 0
	}
	return &DelayPolicy{
		Min:    minDelay,
		Jitter: jitter,
		rnd:    rand.New(rand.NewSource(seed)),
	}
}

func NewDelayPolicyFromConfig(cfg core.ChatConfig) *DelayPolicy {
	return NewDelayPolicy(cfg.GetReplyDelayMin(), cfg.GetReplyDelayJitter(), time.Now().UnixNano())
}

// FixedDelay returns a policy without jitter.
func FixedDelay(d time.Duration) *DelayPolicy {
	return NewDelayPolicy(d, 0, 1)
}

func (p *DelayPolicy) Next() time.Duration {
	if p.Jitter <= 0 {
		return p.Min
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.Min + time.Duration(p.rnd.Int63n(int64(p.Jitter)))
}
