//go:build integration

package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"fundcore/internal/amm/models"
	"fundcore/internal/amm/store"
	id "fundcore/pkg/domain"
	"fundcore/pkg/platform/sentinel"
	"fundcore/pkg/testutil/containers"
)

const poolsSchema = `
CREATE TABLE IF NOT EXISTS pools (
    fund_id           TEXT        PRIMARY KEY,
    total_liquidity   BIGINT      NOT NULL,
    share_price       BIGINT      NOT NULL,
    reserve_ratio_bps INTEGER     NOT NULL,
    active            BOOLEAN     NOT NULL,
    created_at        TIMESTAMPTZ NOT NULL
);
CREATE TABLE IF NOT EXISTS share_balances (
    fund_id  TEXT   NOT NULL REFERENCES pools (fund_id),
    investor TEXT   NOT NULL,
    shares   BIGINT NOT NULL,
    PRIMARY KEY (fund_id, investor)
);
`

type PostgresPoolStoreSuite struct {
	suite.Suite
	pg    *containers.PostgresContainer
	store *store.Postgres
	ctx   context.Context
}

func TestPostgresPoolStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(PostgresPoolStoreSuite))
}

func (s *PostgresPoolStoreSuite) SetupSuite() {
	s.pg = containers.NewPostgresContainer(s.T(), poolsSchema)
	s.store = store.NewPostgres(s.pg.DB)
	s.ctx = context.Background()
}

func (s *PostgresPoolStoreSuite) SetupTest() {
	s.Require().NoError(s.pg.TruncateTables(s.ctx, "share_balances", "pools"))
}

func (s *PostgresPoolStoreSuite) newPool(name string) *models.Pool {
	createdAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	fundID := id.DeriveFundID(id.ManagerID("mgr-1"), name, createdAt)
	pool, err := models.NewPool(fundID, 100, 2000, createdAt)
	s.Require().NoError(err)
	return pool
}

func (s *PostgresPoolStoreSuite) TestCreateAndFind() {
	pool := s.newPool("Alpha")
	s.Require().NoError(s.store.CreatePool(s.ctx, pool))

	found, err := s.store.FindPool(s.ctx, pool.FundID)
	s.Require().NoError(err)
	s.Equal(pool.FundID, found.FundID)
	s.Equal(pool.SharePrice, found.SharePrice)
	s.True(found.Active)
}

func (s *PostgresPoolStoreSuite) TestCreateDuplicate() {
	pool := s.newPool("Alpha")
	s.Require().NoError(s.store.CreatePool(s.ctx, pool))
	s.ErrorIs(s.store.CreatePool(s.ctx, pool), sentinel.ErrConflict)
}

func (s *PostgresPoolStoreSuite) TestFindUnknownPool() {
	_, err := s.store.FindPool(s.ctx, id.FundID("fund_0000000000000000000000000000000000000000"))
	s.ErrorIs(err, sentinel.ErrNotFound)
}

func (s *PostgresPoolStoreSuite) TestUpdatePool() {
	pool := s.newPool("Alpha")
	s.Require().NoError(s.store.CreatePool(s.ctx, pool))

	updated, err := s.store.UpdatePool(s.ctx, pool.FundID,
		func(p *models.Pool) error { return nil },
		func(p *models.Pool) { p.TotalLiquidity += 1_000_000 },
	)
	s.Require().NoError(err)
	s.Equal(int64(1_000_000), updated.TotalLiquidity)

	found, err := s.store.FindPool(s.ctx, pool.FundID)
	s.Require().NoError(err)
	s.Equal(int64(1_000_000), found.TotalLiquidity)
}

func (s *PostgresPoolStoreSuite) TestExecuteTradeCommitsAtomically() {
	pool := s.newPool("Alpha")
	investor := id.InvestorID("inv-1")
	s.Require().NoError(s.store.CreatePool(s.ctx, pool))

	updated, balance, err := s.store.ExecuteTrade(s.ctx, pool.FundID, investor,
		func(p *models.Pool, balance *int64) error {
			*balance += 10
			p.SharePrice = 101
			return nil
		})
	s.Require().NoError(err)
	s.Equal(int64(10), balance)
	s.Equal(int64(101), updated.SharePrice)

	got, err := s.store.GetBalance(s.ctx, pool.FundID, investor)
	s.Require().NoError(err)
	s.Equal(int64(10), got)
}

func (s *PostgresPoolStoreSuite) TestExecuteTradeRollsBackOnRejection() {
	pool := s.newPool("Alpha")
	investor := id.InvestorID("inv-1")
	s.Require().NoError(s.store.CreatePool(s.ctx, pool))

	_, _, err := s.store.ExecuteTrade(s.ctx, pool.FundID, investor,
		func(p *models.Pool, balance *int64) error {
			*balance += 10
			p.SharePrice = 101
			return sentinel.ErrInvalidState
		})
	s.ErrorIs(err, sentinel.ErrInvalidState)

	found, err := s.store.FindPool(s.ctx, pool.FundID)
	s.Require().NoError(err)
	s.Equal(int64(100), found.SharePrice)

	got, err := s.store.GetBalance(s.ctx, pool.FundID, investor)
	s.Require().NoError(err)
	s.Equal(int64(0), got)
}

func (s *PostgresPoolStoreSuite) TestGetBalanceUnknownPool() {
	_, err := s.store.GetBalance(s.ctx,
		id.FundID("fund_0000000000000000000000000000000000000000"), id.InvestorID("inv-1"))
	s.ErrorIs(err, sentinel.ErrNotFound)
}

func (s *PostgresPoolStoreSuite) TestGetBalanceNeverTraded() {
	pool := s.newPool("Alpha")
	s.Require().NoError(s.store.CreatePool(s.ctx, pool))

	got, err := s.store.GetBalance(s.ctx, pool.FundID, id.InvestorID("inv-1"))
	s.Require().NoError(err)
	s.Equal(int64(0), got)
}
