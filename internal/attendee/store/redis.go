package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"summit-connect/internal/attendee/models"
)

// Redis persists one key per attendee under KeyPrefix, value JSON-encoded.
// SET and DEL are atomic per key; List is a SCAN+MGET and therefore not a
// consistent snapshot under concurrent writers, which callers tolerate.
type Redis struct {
	client redis.Cmdable
}

func NewRedis(client redis.Cmdable) *Redis {
	return &Redis{client: client}
}

func (s *Redis) List(ctx context.Context) ([]models.Attendee, error) {
	var keys []string
	var cursor uint64
	for {
		batch, next, err := s.client.Scan(ctx, cursor, KeyPrefix+"*", 100).Result()
		if err != nil {
			return nil, fmt.Errorf("scan attendee keys: %w", err)
		}
		keys = append(keys, batch...)
		cursor = next
		if cursor == 0 {
			break
		}
	}
	if len(keys) == 0 {
		return []models.Attendee{}, nil
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("mget attendees: %w", err)
	}

	out := make([]models.Attendee, 0, len(values))
	for _, v := range values {
		raw, ok := v.(string)
		if !ok {
			// Key expired or was deleted between SCAN and MGET.
			continue
		}
		var a models.Attendee
		if err := json.Unmarshal([]byte(raw), &a); err != nil {
			// Unparseable historical data is the service layer's problem to
			// count; here it is simply not an attendee.
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

func (s *Redis) Put(ctx context.Context, attendee models.Attendee) error {
	raw, err := json.Marshal(attendee)
	if err != nil {
		return fmt.Errorf("marshal attendee %s: %w", attendee.ID, err)
	}
	if err := s.client.Set(ctx, KeyPrefix+attendee.ID, raw, 0).Err(); err != nil {
		return fmt.Errorf("set attendee %s: %w", attendee.ID, err)
	}
	return nil
}

func (s *Redis) Delete(ctx context.Context, id string) error {
	// DEL of a missing key reports zero deletions, not an error, which is
	// exactly the idempotence the repository wants.
	if err := s.client.Del(ctx, KeyPrefix+id).Err(); err != nil {
		return fmt.Errorf("del attendee %s: %w", id, err)
	}
	return nil
}
