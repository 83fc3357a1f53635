package store

import (
	"context"
	"sync"

	"fundcore/internal/compliance/models"
	id "fundcore/pkg/domain"
	"fundcore/pkg/platform/sentinel"
)

// InMemory holds compliance records in a map. Suitable for tests and
// single-node development.
type InMemory struct {
	mu      sync.RWMutex
	records map[id.InvestorID]models.Record
}

func NewInMemory() *InMemory {
	return &InMemory{records: make(map[id.InvestorID]models.Record)}
}

func (s *InMemory) Put(_ context.Context, record models.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[record.Investor] = record
	return nil
}

func (s *InMemory) Find(_ context.Context, investor id.InvestorID) (models.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	record, ok := s.records[investor]
	if !ok {
		return models.Record{}, sentinel.ErrNotFound
	}
	return record, nil
}
