package testutil

import (
	"errors"
	"sync"
)

// SnapshotSpy is an in-memory snapshot store that counts saves, so tests
// can assert the write-through contract (every mutation is followed by a
// snapshot save). FailNext makes the next Save return an error.
type SnapshotSpy struct {
	mu        sync.Mutex
	snapshots map[string][]byte
	saves     int
	failNext  bool
}

// ErrSaveFailed is returned by SnapshotSpy.Save after FailNext.
var ErrSaveFailed = errors.New("simulated snapshot save failure")

func NewSnapshotSpy() *SnapshotSpy {
	return &SnapshotSpy{snapshots: make(map[string][]byte)}
}

func (s *SnapshotSpy) Load(key string) ([]byte, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, ok := s.snapshots[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), data...), true, nil
}

func (s *SnapshotSpy) Save(key string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.failNext {
		s.failNext = false
		return ErrSaveFailed
	}
	s.snapshots[key] = append([]byte(nil), data...)
	s.saves++
	return nil
}

func (s *SnapshotSpy) Close() error { return nil }

// Saves returns the number of successful Save calls.
func (s *SnapshotSpy) Saves() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saves
}

// FailNext makes the next Save call fail.
func (s *SnapshotSpy) FailNext() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failNext = true
}
