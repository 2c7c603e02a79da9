package store

import (
	"context"
	"sync"

	"pairplay/internal/domain"
)

// MemoryStore keeps sessions in-process. Used by tests and single-node
// deployments; the fanout contract is identical to the Postgres store.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*domain.Session
	subs     map[string]map[int64]ChangeFunc
	nextSub  int64
	locks    sync.Map // session id -> *sync.Mutex
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]*domain.Session),
		subs:     make(map[string]map[int64]ChangeFunc),
	}
}

func (m *MemoryStore) Create(ctx context.Context, s *domain.Session) error {
	m.mu.Lock()
	m.sessions[s.ID] = s.Clone()
	m.mu.Unlock()
	return nil
}

func (m *MemoryStore) Get(ctx context.Context, id string) (*domain.Session, error) {
	m.mu.RLock()
	s, ok := m.sessions[id]
	m.mu.RUnlock()
	if !ok {
		return nil, ErrNotFound
	}
	return s.Clone(), nil
}

func (m *MemoryStore) Replace(ctx context.Context, id string, s *domain.Session) error {
	m.mu.Lock()
	if _, ok := m.sessions[id]; !ok {
		m.mu.Unlock()
		return ErrNotFound
	}
	stored := s.Clone()
	m.sessions[id] = stored

	fns := make([]ChangeFunc, 0, len(m.subs[id]))
	for _, fn := range m.subs[id] {
		fns = append(fns, fn)
	}
	m.mu.Unlock()

	// deliver outside the lock; each subscriber gets its own copy
	for _, fn := range fns {
		fn(stored.Clone())
	}
	return nil
}

// Lock is shared by every coordinator instance holding this store, so two
// instances in one process cannot interleave read-modify-write cycles.
func (m *MemoryStore) Lock(ctx context.Context, id string) (func(), error) {
	v, _ := m.locks.LoadOrStore(id, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock, nil
}

func (m *MemoryStore) Subscribe(ctx context.Context, id string, fn ChangeFunc) (func(), error) {
	m.mu.Lock()
	m.nextSub++
	token := m.nextSub
	if m.subs[id] == nil {
		m.subs[id] = make(map[int64]ChangeFunc)
	}
	m.subs[id][token] = fn
	m.mu.Unlock()

	cancel := func() {
		m.mu.Lock()
		delete(m.subs[id], token)
		if len(m.subs[id]) == 0 {
			delete(m.subs, id)
		}
		m.mu.Unlock()
	}
	return cancel, nil
}
