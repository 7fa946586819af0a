package cards

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/cardforge/cardforge/internal/sheet"
	"github.com/redis/go-redis/v9"
)

// RedisRepository is the durable tier. Cards are stored as JSON under
// "card:<id>" and expire after Retention.
type RedisRepository struct {
	client *redis.Client
	prefix string
}

// NewRedisRepository creates a Redis-backed card repository. Prefix may be empty.
func NewRedisRepository(client *redis.Client, prefix string) *RedisRepository {
	if prefix == "" {
		prefix = KeyPrefix
	}
	return &RedisRepository{client: client, prefix: prefix}
}

func (r *RedisRepository) key(id string) string {
	return r.prefix + id
}

// Ping checks that the server answers.
func (r *RedisRepository) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *RedisRepository) Put(ctx context.Context, id string, card *sheet.SharedCard) error {
	b, err := json.Marshal(card)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, r.key(id), b, Retention).Err()
}

func (r *RedisRepository) Get(ctx context.Context, id string) (*sheet.SharedCard, error) {
	b, err := r.client.Get(ctx, r.key(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	var c sheet.SharedCard
	if err := json.Unmarshal(b, &c); err != nil {
		return nil, err
	}
	return &c, nil
}
