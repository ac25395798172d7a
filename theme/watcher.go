package theme

import (
	"sync"

	"github.com/panoshell/panoshell/constant"
	"github.com/panoshell/panoshell/gate"
	"github.com/panoshell/panoshell/log"
	"github.com/panoshell/panoshell/store"
	"github.com/samber/mo"
)

// StateSource is the synchronized storage area holding the theme state.
type StateSource interface {
	Get(key string) mo.Option[any]
	Subscribe(fn store.ChangeListener) (unsubscribe func())
}

var _ StateSource = (*store.SyncArea)(nil)

// Watcher reapplies the theme whenever the persisted theme state changes.
// Applications requested while the gate is active run once it goes idle.
type Watcher struct {
	source  StateSource
	sink    Sink
	applier Applier
	run     *gate.Deferred[any]

	mu          sync.Mutex
	unsubscribe func()
}

// NewWatcher builds a watcher applying source's theme state to sink, deferred by g.
func NewWatcher(source StateSource, sink Sink, g *gate.Gate, opts ...gate.DeferredOption) *Watcher {
	w := &Watcher{source: source, sink: sink}
	w.run = gate.NewDeferred(g, w.apply, opts...)
	return w
}

// Start applies the current theme state and subscribes to changes. Calling it twice is a no-op.
func (w *Watcher) Start() {
	w.mu.Lock()
	if w.unsubscribe != nil {
		w.mu.Unlock()
		return
	}
	w.unsubscribe = w.source.Subscribe(w.handle)
	w.mu.Unlock()

	w.run.Call(w.source.Get(constant.ThemeStateKey).OrEmpty())
}

// Stop unsubscribes and runs any application still waiting for the gate.
func (w *Watcher) Stop() {
	w.mu.Lock()
	unsubscribe := w.unsubscribe
	w.unsubscribe = nil
	w.mu.Unlock()

	if unsubscribe != nil {
		unsubscribe()
	}
	w.run.Flush()
}

// Pending reports whether an application is waiting for the gate.
func (w *Watcher) Pending() bool {
	return w.run.Pending()
}

func (w *Watcher) handle(changes store.ChangeSet, area string) {
	if area != constant.AreaSync {
		return
	}
	change, ok := changes[constant.ThemeStateKey]
	if !ok {
		return
	}
	w.run.Call(change.NewValue)
}

func (w *Watcher) apply(raw any) {
	result := Sanitize(raw)
	if w.applier.Apply(Resolve(result.State), w.sink) {
		log.Debugf("theme: applied tokens from %s", result.Source)
	}
}
