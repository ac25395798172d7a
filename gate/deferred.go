package gate

import (
	"sync"

	"github.com/samber/mo"
)

// DeferredOption configures a Deferred runner.
type DeferredOption func(*deferredConfig)

type deferredConfig struct {
	exempt func() bool
}

// WithExempt bypasses deferral while exempt reports true, e.g. in fullscreen.
func WithExempt(exempt func() bool) DeferredOption {
	return func(cfg *deferredConfig) {
		cfg.exempt = exempt
	}
}

// Deferred wraps fn so calls made while the gate is active are coalesced into a
// single trailing call with the latest arguments, run when the gate goes idle.
type Deferred[T any] struct {
	gate   *Gate
	fn     func(T)
	exempt func() bool

	mu          sync.Mutex
	pending     mo.Option[T]
	unsubscribe func()
}

// NewDeferred builds a runner for fn on g.
func NewDeferred[T any](g *Gate, fn func(T), opts ...DeferredOption) *Deferred[T] {
	cfg := deferredConfig{exempt: func() bool { return false }}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Deferred[T]{
		gate:    g,
		fn:      fn,
		exempt:  cfg.exempt,
		pending: mo.None[T](),
	}
}

// Call invokes fn synchronously when the gate is idle or exempt, discarding any
// older pending call. Otherwise it replaces any pending arguments with args.
func (d *Deferred[T]) Call(args T) {
	if !d.gate.Active() || d.exempt() {
		d.drop()
		d.fn(args)
		return
	}

	d.mu.Lock()
	d.pending = mo.Some(args)
	if d.unsubscribe == nil {
		d.unsubscribe = d.gate.Subscribe(func(active bool) {
			if !active {
				d.Flush()
			}
		})
	}
	d.mu.Unlock()

	// The gate may have gone idle before the subscription existed.
	if !d.gate.Active() {
		d.Flush()
	}
}

// Pending reports whether a call is waiting for the gate.
func (d *Deferred[T]) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pending.IsPresent()
}

// drop forgets the pending call and its gate subscription without running it.
func (d *Deferred[T]) drop() {
	d.mu.Lock()
	d.pending = mo.None[T]()
	unsubscribe := d.unsubscribe
	d.unsubscribe = nil
	d.mu.Unlock()

	if unsubscribe != nil {
		unsubscribe()
	}
}

// Flush runs the pending call now, if any, and drops the gate subscription.
func (d *Deferred[T]) Flush() {
	d.mu.Lock()
	args, ok := d.pending.Get()
	d.pending = mo.None[T]()
	unsubscribe := d.unsubscribe
	d.unsubscribe = nil
	d.mu.Unlock()

	if unsubscribe != nil {
		unsubscribe()
	}
	if ok {
		d.fn(args)
	}
}
