package events

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
)

// PostgresStore persists the notification trail in PostgreSQL.
//
// Schema:
//
//	CREATE TABLE notification_events (
//	    seq     BIGSERIAL PRIMARY KEY,
//	    id      UUID        NOT NULL,
//	    kind    TEXT        NOT NULL,
//	    at      TIMESTAMPTZ NOT NULL,
//	    payload JSONB       NOT NULL
//	);
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Append(ctx context.Context, event Event) error {
	payload, err := json.Marshal(event.Payload)
	if err != nil {
		return fmt.Errorf("marshal event payload: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO notification_events (id, kind, at, payload) VALUES ($1, $2, $3, $4)`,
		event.ID, string(event.Kind), event.At, payload)
	if err != nil {
		return fmt.Errorf("append event: %w", err)
	}
	return nil
}

// List returns the trail in emission order. Payloads come back as decoded
// JSON maps; consumers needing typed payloads should subscribe, not replay.
func (s *PostgresStore) List(ctx context.Context) ([]Event, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, kind, at, payload FROM notification_events ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var out []Event
	for rows.Next() {
		var (
			e   Event
			raw []byte
		)
		if err := rows.Scan(&e.ID, &e.Kind, &e.At, &raw); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		var payload map[string]any
		if err := json.Unmarshal(raw, &payload); err != nil {
			return nil, fmt.Errorf("decode event payload: %w", err)
		}
		e.Payload = payload
		out = append(out, e)
	}
	return out, rows.Err()
}
