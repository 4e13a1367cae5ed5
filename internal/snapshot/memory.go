package snapshot

import (
	"sync"

	"github.com/sulta24/feedback-app/internal/board"
)

// MemoryStore is an in-memory implementation of the SnapshotStore interface.
// Nothing survives the process; it exists for tests and for running the CLI
// against a throwaway board. Safe for concurrent use.
type MemoryStore struct {
	mu        sync.RWMutex
	snapshots map[string][]byte
}

// NewMemoryStore creates an empty in-memory snapshot store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{snapshots: make(map[string][]byte)}
}

// Load retrieves the snapshot stored under key.
func (m *MemoryStore) Load(key string) ([]byte, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	data, ok := m.snapshots[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), data...), true, nil
}

// Save stores the snapshot under key, replacing any previous value.
func (m *MemoryStore) Save(key string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.snapshots[key] = append([]byte(nil), data...)
	return nil
}

// Close is a no-op for the in-memory store.
func (m *MemoryStore) Close() error { return nil }

// Compile-time check that MemoryStore implements board.SnapshotStore
var _ board.SnapshotStore = (*MemoryStore)(nil)
