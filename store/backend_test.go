package store

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
)

// memoryBackend records traffic and can hold or fail operations on demand.
type memoryBackend struct {
	mu      sync.Mutex
	root    Root
	history []Bucket
	scope   string

	loads atomic.Int32
	saves atomic.Int32

	loadGate  chan struct{}
	saveGate  chan struct{}
	failSaves atomic.Int32
	failLoads atomic.Bool
}

func newMemoryBackend(scope string) *memoryBackend {
	return &memoryBackend{root: Root{}, scope: scope}
}

func (m *memoryBackend) Name() string { return "memory" }

func (m *memoryBackend) Load(ctx context.Context) (Root, error) {
	m.loads.Add(1)
	if m.loadGate != nil {
		<-m.loadGate
	}
	if m.failLoads.Load() {
		return nil, errors.New("load failed")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return AsRoot(m.root), nil
}

func (m *memoryBackend) Save(ctx context.Context, root Root) error {
	if m.saveGate != nil {
		<-m.saveGate
	}
	m.saves.Add(1)
	if m.failSaves.Load() > 0 {
		m.failSaves.Add(-1)
		return errors.New("save failed")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.root = AsRoot(root)
	m.history = append(m.history, root[m.scope].Clone())
	return nil
}

func (m *memoryBackend) bucket() Bucket {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.root[m.scope].Clone()
}

func (m *memoryBackend) saved() []Bucket {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Bucket(nil), m.history...)
}
