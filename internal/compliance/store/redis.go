package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"fundcore/internal/compliance/models"
	platformredis "fundcore/internal/platform/redis"
	id "fundcore/pkg/domain"
	"fundcore/pkg/platform/sentinel"
)

const recordKeyPrefix = "compliance:record:"

// Redis persists compliance records as JSON values. Records carry their own
// expiry timestamp, so no redis TTL is set: an expired record must stay
// readable to distinguish "expired" from "never submitted".
type Redis struct {
	client *platformredis.Client
}

func NewRedis(client *platformredis.Client) *Redis {
	return &Redis{client: client}
}

func recordKey(investor id.InvestorID) string {
	return recordKeyPrefix + investor.String()
}

func (s *Redis) Put(ctx context.Context, record models.Record) error {
	payload, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("marshal compliance record: %w", err)
	}
	if err := s.client.Set(ctx, recordKey(record.Investor), payload, 0).Err(); err != nil {
		return fmt.Errorf("store compliance record: %w", err)
	}
	return nil
}

func (s *Redis) Find(ctx context.Context, investor id.InvestorID) (models.Record, error) {
	payload, err := s.client.Get(ctx, recordKey(investor)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return models.Record{}, sentinel.ErrNotFound
		}
		return models.Record{}, fmt.Errorf("load compliance record: %w", err)
	}

	var record models.Record
	if err := json.Unmarshal(payload, &record); err != nil {
		return models.Record{}, fmt.Errorf("decode compliance record: %w", err)
	}
	return record, nil
}
