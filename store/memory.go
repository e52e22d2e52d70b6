// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"sync"

	"github.com/Mayank8528/claimwise-new2/models"
)

// MemoryStore is the process-local ClaimRepository. Claims are held in
// insertion order; a mutex makes each operation atomic with respect to
// concurrent requests.
type MemoryStore struct {
	mu     sync.RWMutex
	claims []models.ClaimDetail
	queues []models.Queue
}

// NewMemoryStore creates a store pre-loaded with the given claims and
// queues. Pass nil slices for an empty store.
func NewMemoryStore(claims []models.ClaimDetail, queues []models.Queue) *MemoryStore {
	s := &MemoryStore{
		claims: make([]models.ClaimDetail, len(claims)),
		queues: queues,
	}
	copy(s.claims, claims)
	return s
}

func (s *MemoryStore) List(ctx context.Context, f ListFilter) ([]models.ClaimSummary, error) {
	f = f.Normalize()

	s.mu.RLock()
	defer s.mu.RUnlock()

	filtered := make([]models.ClaimSummary, 0, len(s.claims))
	for _, c := range s.claims {
		if f.Matches(c) {
			filtered = append(filtered, c.Summary())
		}
	}

	// Pagination applies after filtering. Out-of-range offsets yield an
	// empty result, never an error.
	if f.Offset >= len(filtered) {
		return []models.ClaimSummary{}, nil
	}
	end := f.Offset + f.Limit
	if end > len(filtered) {
		end = len(filtered)
	}
	return filtered[f.Offset:end], nil
}

func (s *MemoryStore) Get(ctx context.Context, id string) (models.ClaimDetail, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.claims {
		if c.ID == id {
			return c, nil
		}
	}
	return models.ClaimDetail{}, ErrNotFound
}

func (s *MemoryStore) Insert(ctx context.Context, claim models.ClaimDetail) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.claims = append(s.claims, claim)
	return nil
}

func (s *MemoryStore) Reassign(ctx context.Context, id, queue, assignee string) (models.ClaimDetail, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.claims {
		if s.claims[i].ID != id {
			continue
		}
		if queue != "" {
			s.claims[i].Queue = queue
		}
		if assignee != "" {
			s.claims[i].Assignee = assignee
		}
		return s.claims[i], nil
	}
	return models.ClaimDetail{}, ErrNotFound
}

func (s *MemoryStore) Queues(ctx context.Context) ([]models.Queue, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.queues, nil
}
