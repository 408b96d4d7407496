package storage

import (
	"context"
	"sync"

	"github.com/cuongbtq/candidate-service/internal/api/model"
)

// MemoryStore is an in-process Gateway for local runs and tests
type MemoryStore struct {
	mu    sync.RWMutex
	items map[string]model.Candidate
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{items: make(map[string]model.Candidate)}
}

func (s *MemoryStore) Put(_ context.Context, candidate *model.Candidate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items[candidate.ID] = *candidate
	return nil
}

func (s *MemoryStore) Get(_ context.Context, id string) (*model.Candidate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	candidate, ok := s.items[id]
	if !ok {
		return nil, nil
	}
	return &candidate, nil
}

func (s *MemoryStore) Scan(_ context.Context) ([]model.CandidateSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	candidates := make([]model.CandidateSummary, 0, len(s.items))
	for _, candidate := range s.items {
		candidates = append(candidates, candidate.Summary())
	}
	return candidates, nil
}
