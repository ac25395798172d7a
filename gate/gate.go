// Package gate implements a reference-counted activity signal.
//
// Interactive surfaces call Enter when a sensitive interaction starts and Leave
// when it ends. Listeners hear only the idle->active and active->idle edges.
package gate

import (
	"sync"

	"github.com/panoshell/panoshell/log"
)

// Listener is told whether the gate just became active or idle.
type Listener func(active bool)

type subscription struct {
	fn   Listener
	live bool
	once sync.Once
}

// Gate is a depth counter with edge notifications. The zero value is ready to use.
//
// Notifications run synchronously on the goroutine whose Enter or Leave caused the
// edge, in registration order, outside the internal lock, so listeners may call
// back into the gate.
type Gate struct {
	mu    sync.Mutex
	depth int
	subs  []*subscription
}

// New returns an idle gate.
func New() *Gate {
	return &Gate{}
}

// Enter increments the depth; the 0->1 edge notifies listeners with true.
func (g *Gate) Enter() {
	g.mu.Lock()
	g.depth++
	edge := g.depth == 1
	g.mu.Unlock()

	if edge {
		g.notify(true)
	}
}

// Leave decrements the depth; the 1->0 edge notifies listeners with false.
// Unmatched calls at depth zero are ignored.
func (g *Gate) Leave() {
	g.mu.Lock()
	if g.depth == 0 {
		g.mu.Unlock()
		log.Debugf("gate: unmatched leave ignored")
		return
	}
	g.depth--
	edge := g.depth == 0
	g.mu.Unlock()

	if edge {
		g.notify(false)
	}
}

// Active reports whether depth > 0.
func (g *Gate) Active() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.depth > 0
}

// Depth returns the current nesting depth.
func (g *Gate) Depth() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.depth
}

// Subscribe registers fn for every edge and returns an idempotent disposer.
func (g *Gate) Subscribe(fn Listener) (unsubscribe func()) {
	sub := g.add(fn)
	return func() { g.remove(sub) }
}

// RunWhenIdle runs fn now if the gate is idle, otherwise exactly once on the next
// active->idle edge.
func (g *Gate) RunWhenIdle(fn func()) {
	if !g.Active() {
		fn()
		return
	}

	var fired sync.Once
	sub := &subscription{live: true}
	run := func() {
		fired.Do(func() {
			g.remove(sub)
			fn()
		})
	}
	sub.fn = func(active bool) {
		if !active {
			run()
		}
	}
	g.register(sub)

	// The edge may have happened between the check above and registration.
	if !g.Active() {
		run()
	}
}

func (g *Gate) add(fn Listener) *subscription {
	sub := &subscription{fn: fn, live: true}
	g.register(sub)
	return sub
}

func (g *Gate) register(sub *subscription) {
	g.mu.Lock()
	g.subs = append(g.subs, sub)
	g.mu.Unlock()
}

func (g *Gate) remove(sub *subscription) {
	sub.once.Do(func() {
		g.mu.Lock()
		defer g.mu.Unlock()
		sub.live = false
		for i, s := range g.subs {
			if s == sub {
				g.subs = append(g.subs[:i:i], g.subs[i+1:]...)
				return
			}
		}
	})
}

func (g *Gate) notify(active bool) {
	g.mu.Lock()
	subs := make([]*subscription, len(g.subs))
	copy(subs, g.subs)
	g.mu.Unlock()

	for _, sub := range subs {
		g.mu.Lock()
		live := sub.live
		g.mu.Unlock()
		if live {
			deliver(sub.fn, active)
		}
	}
}

func deliver(fn Listener, active bool) {
	defer func() {
		if r := recover(); r != nil {
			log.Errorf("gate: listener panicked: %v", r)
		}
	}()
	fn(active)
}
