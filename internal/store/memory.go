package store

import (
	"errors"
	"slices"
	"sync"

	"github.com/i474232898/temperature-heatmap/internal/heatmap"
)

var (
	// ErrNotFound is returned when no snapshot matches the request.
	ErrNotFound = errors.New("no heat map snapshot available")
)

// MemoryStore is a concurrency-safe in-memory history of built charts, oldest first.
type MemoryStore struct {
	mu sync.RWMutex

	snapshots []heatmap.Snapshot

	// max number of snapshots kept (0 = unlimited)
	maxHistory int
}

// NewMemoryStore creates a new MemoryStore.
// If maxHistory is <= 0, it is treated as unlimited.
func NewMemoryStore(maxHistory int) *MemoryStore {
	return &MemoryStore{
		maxHistory: maxHistory,
	}
}

// Save appends a snapshot and enforces retention.
func (s *MemoryStore) Save(snapshot heatmap.Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshots = append(s.snapshots, snapshot)

	if s.maxHistory > 0 && len(s.snapshots) > s.maxHistory {
		over := len(s.snapshots) - s.maxHistory
		s.snapshots = slices.Clone(s.snapshots[over:])
	}
}

// GetLatest returns the most recently saved snapshot.
func (s *MemoryStore) GetLatest() (heatmap.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.snapshots) == 0 {
		return heatmap.Snapshot{}, ErrNotFound
	}
	return s.snapshots[len(s.snapshots)-1], nil
}

// Get returns the snapshot with the given id.
func (s *MemoryStore) Get(id string) (heatmap.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, snap := range s.snapshots {
		if snap.ID == id {
			return snap, nil
		}
	}
	return heatmap.Snapshot{}, ErrNotFound
}

// List returns all retained snapshots, oldest first.
func (s *MemoryStore) List() []heatmap.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.snapshots)
}
