package theme

import (
	"encoding/json"
	"sync"

	"github.com/panoshell/panoshell/log"
)

// Sink receives token writes, e.g. a page's style declaration.
type Sink interface {
	SetToken(name, value string)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(name, value string)

func (f SinkFunc) SetToken(name, value string) {
	f(name, value)
}

// Applier writes token maps to a sink, skipping maps identical to the last one applied.
type Applier struct {
	mu   sync.Mutex
	last string
}

// Apply writes every non-empty token of tokens to sink unless tokens equals the
// previously applied map. It reports whether anything was written.
func (a *Applier) Apply(tokens TokenMap, sink Sink) bool {
	signature, err := json.Marshal(tokens)
	if err != nil {
		log.Warnf("theme: could not serialize tokens: %s", err)
		return false
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if string(signature) == a.last {
		return false
	}

	tokens.Each(func(name, value string) {
		if value != "" {
			sink.SetToken(name, value)
		}
	})
	a.last = string(signature)
	return true
}

// Reset forgets the last applied map so the next Apply always writes.
func (a *Applier) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.last = ""
}
