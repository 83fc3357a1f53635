package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"fundcore/internal/fund/models"
	id "fundcore/pkg/domain"
	"fundcore/pkg/platform/sentinel"
)

type FundStoreSuite struct {
	suite.Suite
	store *InMemory
	ctx   context.Context
}

func (s *FundStoreSuite) SetupTest() {
	s.store = NewInMemory()
	s.ctx = context.Background()
}

func TestFundStoreSuite(t *testing.T) {
	suite.Run(t, new(FundStoreSuite))
}

func (s *FundStoreSuite) newFund(manager id.ManagerID, name string, at time.Time) *models.Fund {
	fund, err := models.NewFund(manager, name, 1_000_000, 0, 100, 1000, at)
	s.Require().NoError(err)
	return fund
}

func (s *FundStoreSuite) TestCreationAndLookups() {
	at := time.Date(2026, 5, 2, 10, 0, 0, 0, time.UTC)

	s.Run("creates and finds fund by ID", func() {
		fund := s.newFund("mgr-1", "Alpha", at)
		s.Require().NoError(s.store.Create(s.ctx, fund))

		found, err := s.store.FindByID(s.ctx, fund.ID)
		s.Require().NoError(err)
		s.Equal(fund.Name, found.Name)
		s.Equal(fund.Manager, found.Manager)
	})

	s.Run("returns ErrNotFound for unknown ID", func() {
		_, err := s.store.FindByID(s.ctx, "fund_0000000000000000000000000000000000000000")
		s.Require().ErrorIs(err, sentinel.ErrNotFound)
	})

	s.Run("returned funds are copies", func() {
		fund := s.newFund("mgr-1", "Beta", at)
		s.Require().NoError(s.store.Create(s.ctx, fund))

		found, err := s.store.FindByID(s.ctx, fund.ID)
		s.Require().NoError(err)
		found.Active = false

		again, err := s.store.FindByID(s.ctx, fund.ID)
		s.Require().NoError(err)
		s.True(again.Active)
	})
}

func (s *FundStoreSuite) TestIdentifierCollision() {
	at := time.Date(2026, 5, 2, 10, 0, 0, 0, time.UTC)
	fund := s.newFund("mgr-1", "Alpha", at)
	s.Require().NoError(s.store.Create(s.ctx, fund))

	// Same manager, name, and timestamp derive the same identifier.
	dup := s.newFund("mgr-1", "Alpha", at)
	err := s.store.Create(s.ctx, dup)
	s.Require().ErrorIs(err, sentinel.ErrConflict)

	count, err := s.store.Count(s.ctx)
	s.Require().NoError(err)
	s.Equal(1, count)
}

func (s *FundStoreSuite) TestManagerIndexKeepsInsertionOrder() {
	at := time.Date(2026, 5, 2, 10, 0, 0, 0, time.UTC)
	var want []id.FundID
	for i, name := range []string{"First", "Second", "Third"} {
		fund := s.newFund("mgr-1", name, at.Add(time.Duration(i)*time.Second))
		s.Require().NoError(s.store.Create(s.ctx, fund))
		want = append(want, fund.ID)
	}
	other := s.newFund("mgr-2", "Other", at)
	s.Require().NoError(s.store.Create(s.ctx, other))

	got, err := s.store.ListByManager(s.ctx, "mgr-1")
	s.Require().NoError(err)
	s.Equal(want, got)

	empty, err := s.store.ListByManager(s.ctx, "mgr-none")
	s.Require().NoError(err)
	s.Empty(empty)
}

func (s *FundStoreSuite) TestExecute() {
	at := time.Date(2026, 5, 2, 10, 0, 0, 0, time.UTC)
	fund := s.newFund("mgr-1", "Alpha", at)
	s.Require().NoError(s.store.Create(s.ctx, fund))

	s.Run("mutates when validation passes", func() {
		updated, err := s.store.Execute(s.ctx, fund.ID,
			func(*models.Fund) error { return nil },
			func(f *models.Fund) { f.ApplyStatus(false) },
		)
		s.Require().NoError(err)
		s.False(updated.Active)
	})

	s.Run("leaves state unchanged when validation fails", func() {
		_, err := s.store.Execute(s.ctx, fund.ID,
			func(*models.Fund) error { return sentinel.ErrInvalidState },
			func(f *models.Fund) { f.ApplyStatus(true) },
		)
		s.Require().ErrorIs(err, sentinel.ErrInvalidState)

		found, err := s.store.FindByID(s.ctx, fund.ID)
		s.Require().NoError(err)
		s.False(found.Active)
	})

	s.Run("returns ErrNotFound for unknown fund", func() {
		_, err := s.store.Execute(s.ctx, "fund_0000000000000000000000000000000000000000",
			func(*models.Fund) error { return nil },
			func(*models.Fund) {},
		)
		s.Require().ErrorIs(err, sentinel.ErrNotFound)
	})
}
