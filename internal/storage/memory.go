package storage

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"
)

type memObject struct {
	data        []byte
	contentType string
}

// MemStore is an in-process ObjectStorage for development and tests
// (used when storage.endpoint is not configured).
type MemStore struct {
	mu      sync.RWMutex
	buckets map[string]map[string]memObject
}

func NewMemStore() *MemStore {
	return &MemStore{buckets: make(map[string]map[string]memObject)}
}

func (m *MemStore) EnsureBucket(_ context.Context, bucket string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.buckets[bucket] == nil {
		m.buckets[bucket] = make(map[string]memObject)
	}
	return nil
}

func (m *MemStore) Put(_ context.Context, bucket, key string, r io.Reader, _ int64, contentType string) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.buckets[bucket]
	if !ok {
		return fmt.Errorf("bucket %s does not exist", bucket)
	}
	b[key] = memObject{data: data, contentType: contentType}
	return nil
}

func (m *MemStore) PresignGet(_ context.Context, bucket, key string, expiry time.Duration) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	b, ok := m.buckets[bucket]
	if !ok {
		return "", fmt.Errorf("bucket %s does not exist", bucket)
	}
	if _, ok := b[key]; !ok {
		return "", fmt.Errorf("object %s/%s does not exist", bucket, key)
	}
	exp := time.Now().Add(expiry).Unix()
	return fmt.Sprintf("mem://%s/%s?expires=%d", bucket, key, exp), nil
}

// Object returns a stored object's bytes, for tests.
func (m *MemStore) Object(bucket, key string) ([]byte, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	o, ok := m.buckets[bucket][key]
	if !ok {
		return nil, false
	}
	return o.data, true
}
