package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"fundcore/internal/amm/models"
	id "fundcore/pkg/domain"
	"fundcore/pkg/platform/sentinel"
)

// Postgres persists pools and share balances in PostgreSQL.
//
// Schema:
//
//	CREATE TABLE pools (
//	    fund_id           TEXT        PRIMARY KEY,
//	    total_liquidity   BIGINT      NOT NULL,
//	    share_price       BIGINT      NOT NULL,
//	    reserve_ratio_bps INTEGER     NOT NULL,
//	    active            BOOLEAN     NOT NULL,
//	    created_at        TIMESTAMPTZ NOT NULL
//	);
//	CREATE TABLE share_balances (
//	    fund_id  TEXT   NOT NULL REFERENCES pools (fund_id),
//	    investor TEXT   NOT NULL,
//	    shares   BIGINT NOT NULL,
//	    PRIMARY KEY (fund_id, investor)
//	);
type Postgres struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *Postgres {
	return &Postgres{db: db}
}

func (s *Postgres) CreatePool(ctx context.Context, pool *models.Pool) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO pools (fund_id, total_liquidity, share_price, reserve_ratio_bps, active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		pool.FundID.String(), pool.TotalLiquidity, pool.SharePrice,
		pool.ReserveRatioBps, pool.Active, pool.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return sentinel.ErrConflict
		}
		return fmt.Errorf("insert pool: %w", err)
	}
	return nil
}

func (s *Postgres) FindPool(ctx context.Context, fundID id.FundID) (*models.Pool, error) {
	return scanPool(s.db.QueryRowContext(ctx, `
		SELECT fund_id, total_liquidity, share_price, reserve_ratio_bps, active, created_at
		FROM pools WHERE fund_id = $1`, fundID.String()))
}

// UpdatePool locks the pool row for the duration of validate-then-mutate.
func (s *Postgres) UpdatePool(ctx context.Context, fundID id.FundID, validate func(*models.Pool) error, mutate func(*models.Pool)) (*models.Pool, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin pool update: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	pool, err := lockPool(ctx, tx, fundID)
	if err != nil {
		return nil, err
	}

	if err := validate(pool); err != nil {
		return nil, err
	}
	mutate(pool)

	if err := writePool(ctx, tx, pool); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit pool update: %w", err)
	}
	return pool, nil
}

// ExecuteTrade runs fn inside one serializable transaction holding row locks
// on the pool and the investor's balance, so the liquidity check, the balance
// delta, and the price drift commit together or not at all.
func (s *Postgres) ExecuteTrade(ctx context.Context, fundID id.FundID, investor id.InvestorID, fn func(pool *models.Pool, balance *int64) error) (*models.Pool, int64, error) {
	tx, err := s.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return nil, 0, fmt.Errorf("begin trade: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	pool, err := lockPool(ctx, tx, fundID)
	if err != nil {
		return nil, 0, err
	}

	// Materialize the balance row first so FOR UPDATE has something to lock
	// for first-time traders.
	if _, err := tx.ExecContext(ctx, `
		INSERT INTO share_balances (fund_id, investor, shares)
		VALUES ($1, $2, 0)
		ON CONFLICT (fund_id, investor) DO NOTHING`,
		fundID.String(), investor.String()); err != nil {
		return nil, 0, fmt.Errorf("ensure balance row: %w", err)
	}

	var balance int64
	if err := tx.QueryRowContext(ctx, `
		SELECT shares FROM share_balances
		WHERE fund_id = $1 AND investor = $2 FOR UPDATE`,
		fundID.String(), investor.String()).Scan(&balance); err != nil {
		return nil, 0, fmt.Errorf("lock balance: %w", err)
	}

	if err := fn(pool, &balance); err != nil {
		return nil, 0, err
	}

	if err := writePool(ctx, tx, pool); err != nil {
		return nil, 0, err
	}
	if _, err := tx.ExecContext(ctx, `
		UPDATE share_balances SET shares = $3
		WHERE fund_id = $1 AND investor = $2`,
		fundID.String(), investor.String(), balance); err != nil {
		return nil, 0, fmt.Errorf("update balance: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, 0, fmt.Errorf("commit trade: %w", err)
	}
	return pool, balance, nil
}

func (s *Postgres) GetBalance(ctx context.Context, fundID id.FundID, investor id.InvestorID) (int64, error) {
	// Pool existence check first: an absent pool is not_found, an investor who
	// never traded in an existing pool holds zero.
	if _, err := s.FindPool(ctx, fundID); err != nil {
		return 0, err
	}

	var balance int64
	err := s.db.QueryRowContext(ctx, `
		SELECT shares FROM share_balances WHERE fund_id = $1 AND investor = $2`,
		fundID.String(), investor.String()).Scan(&balance)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("load balance: %w", err)
	}
	return balance, nil
}

func lockPool(ctx context.Context, tx *sql.Tx, fundID id.FundID) (*models.Pool, error) {
	return scanPool(tx.QueryRowContext(ctx, `
		SELECT fund_id, total_liquidity, share_price, reserve_ratio_bps, active, created_at
		FROM pools WHERE fund_id = $1 FOR UPDATE`, fundID.String()))
}

func writePool(ctx context.Context, tx *sql.Tx, pool *models.Pool) error {
	if _, err := tx.ExecContext(ctx, `
		UPDATE pools SET total_liquidity = $2, share_price = $3, active = $4
		WHERE fund_id = $1`,
		pool.FundID.String(), pool.TotalLiquidity, pool.SharePrice, pool.Active); err != nil {
		return fmt.Errorf("update pool: %w", err)
	}
	return nil
}

func scanPool(row rowScanner) (*models.Pool, error) {
	var (
		p     models.Pool
		rawID string
	)
	err := row.Scan(&rawID, &p.TotalLiquidity, &p.SharePrice, &p.ReserveRatioBps, &p.Active, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("scan pool: %w", err)
	}
	p.FundID = id.FundID(rawID)
	return &p, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}
