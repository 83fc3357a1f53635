package store

import (
	"context"
	"sync"

	"fundcore/internal/fund/models"
	id "fundcore/pkg/domain"
	"fundcore/pkg/platform/sentinel"
)

// InMemory is the in-process fund store. Funds are copied on the way in and
// out so callers can never mutate stored state outside Execute.
type InMemory struct {
	mu       sync.RWMutex
	funds    map[id.FundID]*models.Fund
	byMgr    map[id.ManagerID][]id.FundID // append-only creation order
	creation []id.FundID
}

func NewInMemory() *InMemory {
	return &InMemory{
		funds: make(map[id.FundID]*models.Fund),
		byMgr: make(map[id.ManagerID][]id.FundID),
	}
}

func (s *InMemory) Create(_ context.Context, fund *models.Fund) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.funds[fund.ID]; exists {
		return sentinel.ErrConflict
	}
	f := *fund
	s.funds[fund.ID] = &f
	s.byMgr[fund.Manager] = append(s.byMgr[fund.Manager], fund.ID)
	s.creation = append(s.creation, fund.ID)
	return nil
}

func (s *InMemory) FindByID(_ context.Context, fundID id.FundID) (*models.Fund, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fund, ok := s.funds[fundID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	f := *fund
	return &f, nil
}

func (s *InMemory) ListByManager(_ context.Context, manager id.ManagerID) ([]id.FundID, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := s.byMgr[manager]
	out := make([]id.FundID, len(ids))
	copy(out, ids)
	return out, nil
}

func (s *InMemory) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.funds), nil
}

// Execute runs validate then mutate under the store lock so the check and the
// write observe the same fund state. The flag is unchanged when validate
// fails.
func (s *InMemory) Execute(_ context.Context, fundID id.FundID, validate func(*models.Fund) error, mutate func(*models.Fund)) (*models.Fund, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fund, ok := s.funds[fundID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	if err := validate(fund); err != nil {
		return nil, err
	}
	mutate(fund)
	f := *fund
	return &f, nil
}
