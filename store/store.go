package store

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/panoshell/panoshell/log"
	"github.com/samber/mo"
	"golang.org/x/sync/singleflight"
)

// Store is the page-scoped view over a Backend.
//
// The active page's bucket is cached after the first load. Mutations update the
// cache before queuing a durable write of a snapshot, and queued writes run one
// at a time in call order. A failed write is logged and dropped; the cache stays
// authoritative until the next successful write or a new Store.
type Store struct {
	backend Backend
	scope   string

	mu    sync.Mutex
	cache Bucket
	// tail is closed once the most recently queued write has finished.
	tail  chan struct{}
	loads singleflight.Group
}

// New creates a store for one page scope. Nothing is read until first use.
func New(backend Backend, scope string) *Store {
	idle := make(chan struct{})
	close(idle)
	return &Store{backend: backend, scope: scope, tail: idle}
}

// Scope returns the page scope key this store serves.
func (s *Store) Scope() string {
	return s.scope
}

// Backend returns the active backing strategy.
func (s *Store) Backend() Backend {
	return s.backend
}

// Bucket returns a copy of the current page's bucket. It waits for queued writes,
// then serves from cache; concurrent cold calls share a single backend read.
// Bucket never fails: unreadable storage yields an empty bucket.
func (s *Store) Bucket(ctx context.Context) Bucket {
	if err := s.Flush(ctx); err != nil {
		log.Debugf("bucket %s: stopped waiting for writes: %v", s.scope, err)
	}
	return s.warm(ctx).Clone()
}

// warm returns the cached bucket, loading it once if needed. Callers must not mutate the result.
func (s *Store) warm(ctx context.Context) Bucket {
	s.mu.Lock()
	if s.cache != nil {
		b := s.cache
		s.mu.Unlock()
		return b
	}
	s.mu.Unlock()

	// The load is shared, so one caller's cancellation must not fail the others.
	loadCtx := context.WithoutCancel(ctx)
	v, _, _ := s.loads.Do(s.scope, func() (any, error) {
		return s.loadOnce(loadCtx), nil
	})
	return v.(Bucket)
}

// loadOnce reads the backend unless a previous load or write has filled the cache
// since warm last looked.
func (s *Store) loadOnce(ctx context.Context) Bucket {
	s.mu.Lock()
	if s.cache != nil {
		b := s.cache
		s.mu.Unlock()
		return b
	}
	s.mu.Unlock()

	return s.load(ctx)
}

func (s *Store) load(ctx context.Context) Bucket {
	loaded := Bucket{}
	root, err := s.backend.Load(ctx)
	if err != nil {
		log.WithFields(log.Fields{"scope": s.scope, "backend": s.backend.Name()}).Warnf("load bucket: %v", err)
	} else if b, ok := root[s.scope]; ok {
		loaded = b.Clone()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	// A write that landed during the load already owns the cache.
	if s.cache == nil {
		s.cache = loaded
	}
	return s.cache
}

// Cached returns the in-memory bucket without touching storage or waiting for writes.
func (s *Store) Cached() mo.Option[Bucket] {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cache == nil {
		return mo.None[Bucket]()
	}
	return mo.Some(s.cache.Clone())
}

// Get returns a single value from the bucket.
func (s *Store) Get(ctx context.Context, key string) (any, bool) {
	v, ok := s.Bucket(ctx)[key]
	return v, ok
}

// SetKey stores value under key. The cache reflects the change before SetKey returns.
func (s *Store) SetKey(ctx context.Context, key string, value any) {
	s.mutate(ctx, func(b Bucket) {
		b[key] = value
	})
}

// DeleteKeys removes keys from the bucket.
func (s *Store) DeleteKeys(ctx context.Context, keys ...string) {
	if len(keys) == 0 {
		return
	}
	s.mutate(ctx, func(b Bucket) {
		for _, k := range keys {
			delete(b, k)
		}
	})
}

// SetBucket replaces the bucket wholesale. Non-object input becomes an empty bucket.
func (s *Store) SetBucket(_ context.Context, v any) {
	next := AsBucket(v)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache = next
	s.enqueueLocked(next.Clone())
}

// Clear empties the current page's bucket.
func (s *Store) Clear(ctx context.Context) {
	s.SetBucket(ctx, Bucket{})
}

func (s *Store) mutate(ctx context.Context, fn func(Bucket)) {
	s.warm(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	next := s.cache.Clone()
	fn(next)
	s.cache = next
	s.enqueueLocked(next.Clone())
}

// enqueueLocked chains a durable write after the previous one. s.mu must be held,
// which keeps queue order identical to cache mutation order.
func (s *Store) enqueueLocked(snapshot Bucket) {
	prev := s.tail
	done := make(chan struct{})
	s.tail = done

	go func() {
		defer close(done)
		<-prev
		if err := s.persist(snapshot); err != nil {
			log.WithFields(log.Fields{"scope": s.scope, "backend": s.backend.Name()}).Warnf("write dropped: %v", err)
		}
	}()
}

func (s *Store) persist(snapshot Bucket) error {
	ctx := context.Background()
	root, err := s.backend.Load(ctx)
	if err != nil {
		// Writing a root we could not read would erase other pages' buckets.
		return fmt.Errorf("read root: %w", err)
	}
	if len(snapshot) == 0 {
		delete(root, s.scope)
	} else {
		root[s.scope] = snapshot
	}
	return s.backend.Save(ctx, root)
}

// Flush waits until every write queued so far has been applied or dropped.
func (s *Store) Flush(ctx context.Context) error {
	s.mu.Lock()
	tail := s.tail
	s.mu.Unlock()

	select {
	case <-tail:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close drains the write queue and drops the cache, ending the page session.
func (s *Store) Close(ctx context.Context) error {
	err := s.Flush(ctx)
	s.mu.Lock()
	s.cache = nil
	s.mu.Unlock()
	return err
}

// Scopes lists every page scope present in the backing root.
func (s *Store) Scopes(ctx context.Context) ([]string, error) {
	if err := s.Flush(ctx); err != nil {
		return nil, err
	}
	root, err := s.backend.Load(ctx)
	if err != nil {
		return nil, err
	}
	scopes := make([]string, 0, len(root))
	for scope := range root {
		scopes = append(scopes, scope)
	}
	sort.Strings(scopes)
	return scopes, nil
}
