package store

import (
	"fmt"
	"path/filepath"
	"reflect"
	"sync"

	"github.com/metafates/gache"
	"github.com/panoshell/panoshell/constant"
	"github.com/panoshell/panoshell/filesystem"
	"github.com/panoshell/panoshell/log"
	"github.com/samber/mo"
)

// Change describes one key's transition inside a storage area.
type Change struct {
	OldValue any `json:"oldValue,omitempty"`
	NewValue any `json:"newValue,omitempty"`
}

// ChangeSet maps changed keys to their transitions.
type ChangeSet map[string]Change

// ChangeListener receives change sets together with the name of the area they happened in.
type ChangeListener func(changes ChangeSet, area string)

type changeSubscription struct {
	fn   ChangeListener
	once sync.Once
	live bool
}

// SyncArea is the synchronized key/value area shared by every page, e.g. the theme state.
// Listeners run synchronously on the goroutine that made the change, in registration order.
type SyncArea struct {
	path string
	name string

	mu        sync.Mutex
	cache     *gache.Cache[map[string]any]
	values    map[string]any
	loaded    bool
	listeners []*changeSubscription
}

// NewSyncArea opens the area stored in dir/sync.json.
func NewSyncArea(dir string) *SyncArea {
	a := &SyncArea{path: filepath.Join(dir, "sync.json"), name: constant.AreaSync}
	a.cache = a.open()
	return a
}

// Name returns the area name reported with change sets.
func (a *SyncArea) Name() string {
	return a.name
}

func (a *SyncArea) open() *gache.Cache[map[string]any] {
	return gache.New[map[string]any](
		&gache.Options{
			Path:       a.path,
			FileSystem: &filesystem.GacheFs{},
		},
	)
}

// read returns the current values from disk. a.mu must be held.
func (a *SyncArea) read() map[string]any {
	data, expired, err := a.cache.Get()
	if err != nil {
		log.Warnf("sync area read: %v", err)
		return map[string]any{}
	}
	if expired || data == nil {
		return map[string]any{}
	}
	return data
}

func (a *SyncArea) ensureLoaded() {
	if !a.loaded {
		a.values = a.read()
		a.loaded = true
	}
}

// Get returns the stored value for key.
func (a *SyncArea) Get(key string) mo.Option[any] {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.ensureLoaded()

	v, ok := a.values[key]
	if !ok {
		return mo.None[any]()
	}
	return mo.Some(v)
}

// Set stores value under key and notifies listeners when the value changed.
func (a *SyncArea) Set(key string, value any) error {
	// Round-trip through JSON shape so listeners see what a reload would see.
	normalized, err := normalizeJSON(value)
	if err != nil {
		return fmt.Errorf("sync area %s: %w", key, err)
	}

	a.mu.Lock()
	a.ensureLoaded()
	old, existed := a.values[key]
	if existed && reflect.DeepEqual(old, normalized) {
		a.mu.Unlock()
		return nil
	}
	next := cloneValues(a.values)
	next[key] = normalized
	if err := a.cache.Set(next); err != nil {
		a.mu.Unlock()
		return fmt.Errorf("sync area %s: %w", key, err)
	}
	a.values = next
	a.mu.Unlock()

	a.notify(ChangeSet{key: {OldValue: old, NewValue: normalized}})
	return nil
}

// Remove deletes key and notifies listeners if it was present.
func (a *SyncArea) Remove(key string) error {
	a.mu.Lock()
	a.ensureLoaded()
	old, existed := a.values[key]
	if !existed {
		a.mu.Unlock()
		return nil
	}
	next := cloneValues(a.values)
	delete(next, key)
	if err := a.cache.Set(next); err != nil {
		a.mu.Unlock()
		return fmt.Errorf("sync area %s: %w", key, err)
	}
	a.values = next
	a.mu.Unlock()

	a.notify(ChangeSet{key: {OldValue: old}})
	return nil
}

// Reload re-reads the backing file, e.g. after another process edited it,
// and notifies listeners about every key that differs.
func (a *SyncArea) Reload() {
	a.mu.Lock()
	a.ensureLoaded()
	a.cache = a.open()
	fresh := a.read()
	changes := diff(a.values, fresh)
	a.values = fresh
	a.mu.Unlock()

	if len(changes) > 0 {
		a.notify(changes)
	}
}

// Subscribe registers fn for change notifications and returns an idempotent disposer.
func (a *SyncArea) Subscribe(fn ChangeListener) func() {
	sub := &changeSubscription{fn: fn, live: true}
	a.mu.Lock()
	a.listeners = append(a.listeners, sub)
	a.mu.Unlock()

	return func() {
		sub.once.Do(func() {
			a.mu.Lock()
			defer a.mu.Unlock()
			sub.live = false
			for i, l := range a.listeners {
				if l == sub {
					a.listeners = append(a.listeners[:i:i], a.listeners[i+1:]...)
					break
				}
			}
		})
	}
}

func (a *SyncArea) notify(changes ChangeSet) {
	a.mu.Lock()
	listeners := make([]*changeSubscription, len(a.listeners))
	copy(listeners, a.listeners)
	a.mu.Unlock()

	for _, l := range listeners {
		a.mu.Lock()
		live := l.live
		a.mu.Unlock()
		if !live {
			continue
		}
		deliver(l.fn, changes, a.name)
	}
}

func deliver(fn ChangeListener, changes ChangeSet, area string) {
	defer func() {
		if r := recover(); r != nil {
			log.Errorf("sync area listener panicked: %v", r)
		}
	}()
	fn(changes, area)
}

func diff(before, after map[string]any) ChangeSet {
	changes := ChangeSet{}
	for k, old := range before {
		next, ok := after[k]
		if !ok {
			changes[k] = Change{OldValue: old}
			continue
		}
		if !reflect.DeepEqual(old, next) {
			changes[k] = Change{OldValue: old, NewValue: next}
		}
	}
	for k, next := range after {
		if _, ok := before[k]; !ok {
			changes[k] = Change{NewValue: next}
		}
	}
	return changes
}

func cloneValues(m map[string]any) map[string]any {
	out := make(map[string]any, len(m)+1)
	for k, v := range m {
		out[k] = v
	}
	return out
}
