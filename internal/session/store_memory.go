package session

import (
	"context"
	"sync"
	"time"
)

type memEntry struct {
	id        Identity
	expiresAt time.Time
}

// MemStore is the default single-process session backend.
type MemStore struct {
	mu       sync.Mutex
	sessions map[string]memEntry
	now      func() time.Time
}

func NewMemStore() *MemStore {
	return &MemStore{
		sessions: make(map[string]memEntry),
		now:      time.Now,
	}
}

func (m *MemStore) Put(_ context.Context, sid string, id Identity, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.gc()
	m.sessions[sid] = memEntry{id: id, expiresAt: m.now().Add(ttl)}
	return nil
}

func (m *MemStore) Get(_ context.Context, sid string) (*Identity, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.sessions[sid]
	if !ok || m.now().After(e.expiresAt) {
		return nil, nil
	}
	id := e.id
	return &id, nil
}

func (m *MemStore) Delete(_ context.Context, sid string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, sid)
	return nil
}

// gc drops expired sessions; called under mu.
func (m *MemStore) gc() {
	cut := m.now()
	for sid, e := range m.sessions {
		if cut.After(e.expiresAt) {
			delete(m.sessions, sid)
		}
	}
}
