package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"fundcore/internal/fund/models"
	id "fundcore/pkg/domain"
	"fundcore/pkg/platform/sentinel"
)

// Postgres persists funds in PostgreSQL.
//
// Schema:
//
//	CREATE TABLE funds (
//	    seq                 BIGSERIAL PRIMARY KEY,
//	    id                  TEXT        NOT NULL UNIQUE,
//	    manager             TEXT        NOT NULL,
//	    name                TEXT        NOT NULL,
//	    target_size         BIGINT      NOT NULL,
//	    min_investment      BIGINT      NOT NULL,
//	    management_fee_bps  INTEGER     NOT NULL,
//	    performance_fee_bps INTEGER     NOT NULL,
//	    active              BOOLEAN     NOT NULL,
//	    created_at          TIMESTAMPTZ NOT NULL
//	);
//	CREATE INDEX funds_manager_idx ON funds (manager, seq);
//
// The bigserial seq column carries the creation order the manager index
// contract requires.
type Postgres struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *Postgres {
	return &Postgres{db: db}
}

func (s *Postgres) Create(ctx context.Context, fund *models.Fund) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO funds (id, manager, name, target_size, min_investment,
			management_fee_bps, performance_fee_bps, active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		fund.ID.String(), fund.Manager.String(), fund.Name, fund.TargetSize,
		fund.MinInvestment, fund.ManagementFeeBps, fund.PerformanceFeeBps,
		fund.Active, fund.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return sentinel.ErrConflict
		}
		return fmt.Errorf("insert fund: %w", err)
	}
	return nil
}

func (s *Postgres) FindByID(ctx context.Context, fundID id.FundID) (*models.Fund, error) {
	return scanFund(s.db.QueryRowContext(ctx, `
		SELECT id, manager, name, target_size, min_investment,
			management_fee_bps, performance_fee_bps, active, created_at
		FROM funds WHERE id = $1`, fundID.String()))
}

func (s *Postgres) ListByManager(ctx context.Context, manager id.ManagerID) ([]id.FundID, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id FROM funds WHERE manager = $1 ORDER BY seq`, manager.String())
	if err != nil {
		return nil, fmt.Errorf("list manager funds: %w", err)
	}
	defer rows.Close()

	out := []id.FundID{}
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("scan fund id: %w", err)
		}
		out = append(out, id.FundID(raw))
	}
	return out, rows.Err()
}

func (s *Postgres) Count(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM funds`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count funds: %w", err)
	}
	return count, nil
}

// Execute locks the fund row for the duration of validate-then-mutate.
func (s *Postgres) Execute(ctx context.Context, fundID id.FundID, validate func(*models.Fund) error, mutate func(*models.Fund)) (*models.Fund, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin fund update: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	fund, err := scanFund(tx.QueryRowContext(ctx, `
		SELECT id, manager, name, target_size, min_investment,
			management_fee_bps, performance_fee_bps, active, created_at
		FROM funds WHERE id = $1 FOR UPDATE`, fundID.String()))
	if err != nil {
		return nil, err
	}

	if err := validate(fund); err != nil {
		return nil, err
	}
	mutate(fund)

	if _, err := tx.ExecContext(ctx,
		`UPDATE funds SET active = $2 WHERE id = $1`,
		fund.ID.String(), fund.Active); err != nil {
		return nil, fmt.Errorf("update fund: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit fund update: %w", err)
	}
	return fund, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanFund(row rowScanner) (*models.Fund, error) {
	var (
		f       models.Fund
		rawID   string
		rawMgr  string
	)
	err := row.Scan(&rawID, &rawMgr, &f.Name, &f.TargetSize, &f.MinInvestment,
		&f.ManagementFeeBps, &f.PerformanceFeeBps, &f.Active, &f.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("scan fund: %w", err)
	}
	f.ID = id.FundID(rawID)
	f.Manager = id.ManagerID(rawMgr)
	return &f, nil
}
