package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/gurtle/gurtle/internal/domain/model"
)

// MemoryStore is a slice-backed Store used by tests and for running the
// service without a document store. Semantics mirror MongoStore: append-only,
// duplicates allowed, string comparison on datetime bounds.
type MemoryStore struct {
	mu      sync.RWMutex
	entries []model.Entry
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// TopScores implements Store.
func (s *MemoryStore) TopScores(_ context.Context, since string, limit int) ([]model.Entry, error) {
	if limit < 1 {
		return nil, ErrInvalidLimit
	}

	s.mu.RLock()
	matched := make([]model.Entry, 0, len(s.entries))
	for _, e := range s.entries {
		if since == "" || e.Datetime >= since {
			matched = append(matched, e)
		}
	}
	s.mu.RUnlock()

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Score < matched[j].Score
	})
	if len(matched) > limit {
		matched = matched[:limit]
	}
	return matched, nil
}

// CountAtLeast implements Store.
func (s *MemoryStore) CountAtLeast(_ context.Context, score int, since string) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var n int64
	for _, e := range s.entries {
		if e.Score >= score && (since == "" || e.Datetime >= since) {
			n++
		}
	}
	return n, nil
}

// Insert implements Store.
func (s *MemoryStore) Insert(_ context.Context, e model.Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, e)
	return nil
}

// Count returns the total number of stored entries.
func (s *MemoryStore) Count(_ context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.entries)), nil
}
