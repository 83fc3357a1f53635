package store

import (
	"context"
	"sync"

	"fundcore/internal/amm/models"
	id "fundcore/pkg/domain"
	"fundcore/pkg/platform/sentinel"
)

// poolEntry is one fund's market plus its balance ledger. Each entry carries
// its own lock so trades in different pools never contend.
type poolEntry struct {
	mu       sync.Mutex
	pool     models.Pool
	balances map[id.InvestorID]int64
}

// InMemory holds pools and balances in maps. Suitable for tests and
// single-node development.
type InMemory struct {
	mu    sync.RWMutex
	pools map[id.FundID]*poolEntry
}

func NewInMemory() *InMemory {
	return &InMemory{pools: make(map[id.FundID]*poolEntry)}
}

func (s *InMemory) CreatePool(_ context.Context, pool *models.Pool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.pools[pool.FundID]; exists {
		return sentinel.ErrConflict
	}
	s.pools[pool.FundID] = &poolEntry{
		pool:     *pool,
		balances: make(map[id.InvestorID]int64),
	}
	return nil
}

func (s *InMemory) entry(fundID id.FundID) (*poolEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entry, ok := s.pools[fundID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return entry, nil
}

func (s *InMemory) FindPool(_ context.Context, fundID id.FundID) (*models.Pool, error) {
	entry, err := s.entry(fundID)
	if err != nil {
		return nil, err
	}
	entry.mu.Lock()
	defer entry.mu.Unlock()
	pool := entry.pool
	return &pool, nil
}

func (s *InMemory) UpdatePool(_ context.Context, fundID id.FundID, validate func(*models.Pool) error, mutate func(*models.Pool)) (*models.Pool, error) {
	entry, err := s.entry(fundID)
	if err != nil {
		return nil, err
	}
	entry.mu.Lock()
	defer entry.mu.Unlock()

	working := entry.pool
	if err := validate(&working); err != nil {
		return nil, err
	}
	mutate(&working)
	entry.pool = working

	pool := working
	return &pool, nil
}

func (s *InMemory) ExecuteTrade(_ context.Context, fundID id.FundID, investor id.InvestorID, fn func(pool *models.Pool, balance *int64) error) (*models.Pool, int64, error) {
	entry, err := s.entry(fundID)
	if err != nil {
		return nil, 0, err
	}
	entry.mu.Lock()
	defer entry.mu.Unlock()

	// fn works on copies so a rejected trade leaves nothing behind.
	workingPool := entry.pool
	workingBalance := entry.balances[investor]
	if err := fn(&workingPool, &workingBalance); err != nil {
		return nil, 0, err
	}
	entry.pool = workingPool
	entry.balances[investor] = workingBalance

	pool := workingPool
	return &pool, workingBalance, nil
}

func (s *InMemory) GetBalance(_ context.Context, fundID id.FundID, investor id.InvestorID) (int64, error) {
	entry, err := s.entry(fundID)
	if err != nil {
		return 0, err
	}
	entry.mu.Lock()
	defer entry.mu.Unlock()
	return entry.balances[investor], nil
}
