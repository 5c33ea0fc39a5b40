package topic

import (
	"math/rand"
	"strings"
	"sync"
	"time"
)

// Rand is the source used to pick a fallback reply. *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

type Kind int

const (
	KindOutOfDomain Kind = iota
	KindFallback
	KindCategory
)

func (k Kind) String() string {
	switch k {
	case KindCategory:
		return "category"
	case KindFallback:
		return "fallback"
	default:
		return "out_of_domain"
	}
}

// Match is the classification of one utterance.
type Match struct {
	Kind     Kind
	Category Category // set only for KindCategory
	Trigger  string   // phrase or generic term that decided the match
}

func (m Match) IsCSRelated() bool {
	return m.Kind != KindOutOfDomain
}

type Reply struct {
	Text  string
	Match Match
}

type Responder struct {
	tax *Taxonomy

	mu  sync.Mutex
	rnd Rand
}

// NewResponder returns a Responder over tax. A nil rnd falls back to a
// time-seeded generator.
func NewResponder(tax *Taxonomy, rnd Rand) *Responder {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Responder{
		tax: tax,
		rnd: rnd,
	}
}

func (r *Responder) Taxonomy() *Taxonomy {
	return r.tax
}

// Classify decides category match, then generic relevance, then out-of-domain.
func (r *Responder) Classify(text string) Match {
	if strings.TrimSpace(text) == "" {
		return Match{Kind: KindOutOfDomain}
	}
	lower := strings.ToLower(text)

	for _, c := range r.tax.order {
		for _, phrase := range r.tax.keywords[c] {
			if strings.Contains(lower, phrase) {
				return Match{Kind: KindCategory, Category: c, Trigger: phrase}
			}
		}
	}

	for _, term := range r.tax.generic {
		if strings.Contains(lower, term) {
			return Match{Kind: KindFallback, Trigger: term}
		}
	}

	return Match{Kind: KindOutOfDomain}
}

func (r *Responder) Reply(text string) Reply {
	m := r.Classify(text)
	switch m.Kind {
	case KindCategory:
		return Reply{Text: r.tax.responses[m.Category], Match: m}
	case KindFallback:
		return Reply{Text: r.pickFallback(), Match: m}
	default:
		return Reply{Text: r.tax.outOfDomain, Match: m}
	}
}

// Respond returns the reply text for a raw user utterance. It never fails.
func (r *Responder) Respond(text string) string {
	return r.Reply(text).Text
}

func (r *Responder) pickFallback() string {
	r.mu.Lock()
	i := r.rnd.Intn(len(r.tax.fallbacks))
	r.mu.Unlock()
	return r.tax.fallbacks[i]
}
