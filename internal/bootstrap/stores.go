// Package bootstrap opens the configured card stores and decides, once, which
// of them the process will use.
package bootstrap

import (
	"context"
	"time"

	"github.com/cardforge/cardforge/internal/cards"
	"github.com/cardforge/cardforge/internal/config"
	"github.com/cardforge/cardforge/internal/database"
	"github.com/cardforge/cardforge/pkg/logger"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
)

const probeTimeout = 5 * time.Second

// Stores is the storage wiring for one process.
type Stores struct {
	Cards *cards.Tiered
	// Redis is set only when the Redis tier is active, so callers such as the
	// rate limiter can share the connection.
	Redis *redis.Client

	closers []func()
}

// Close releases every connection opened by OpenStores.
func (s *Stores) Close() {
	for i := len(s.closers) - 1; i >= 0; i-- {
		s.closers[i]()
	}
}

// OpenStores connects to the configured backends and probes them. Unconfigured or
// unreachable backends are left out; the in-process tier is always last.
// mongoAttempts bounds the connection retries for MongoDB.
func OpenStores(ctx context.Context, cfg *config.Config, mongoAttempts int) *Stores {
	st := &Stores{}
	var candidates []cards.Candidate
	var rdb *redis.Client

	if cfg.Redis.Host != "" {
		rdb = redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr(), Password: cfg.Redis.Password, DB: cfg.Redis.DB})
		repo := cards.NewRedisRepository(rdb, cards.KeyPrefix)
		candidates = append(candidates, cards.Candidate{Tier: cards.Tier{Name: "redis", Repo: repo}, Ping: repo.Ping})
	}

	if cfg.MongoDB.URI != "" {
		if client := connectMongo(ctx, cfg.MongoDB, mongoAttempts); client != nil {
			st.closers = append(st.closers, func() { _ = client.Disconnect(context.Background()) })
			col := client.Database(cfg.MongoDB.Database).Collection(cfg.MongoDB.Collection)
			ictx, cancel := context.WithTimeout(ctx, cfg.MongoDB.Timeout)
			repo, err := cards.NewMongoRepository(ictx, col)
			cancel()
			if err != nil {
				logger.Warnf("mongo: cannot prepare card collection: %v", err)
			} else {
				candidates = append(candidates, cards.Candidate{Tier: cards.Tier{Name: "mongo", Repo: repo}, Ping: repo.Ping})
			}
		}
	}

	candidates = append(candidates, cards.Candidate{Tier: cards.Tier{Name: "memory", Repo: cards.NewMemoryRepository()}})

	pctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()
	tiers := cards.Probe(pctx, candidates...)
	st.Cards = cards.NewTiered(tiers...)

	if rdb != nil {
		active := false
		for _, name := range st.Cards.Names() {
			if name == "redis" {
				active = true
			}
		}
		if active {
			st.Redis = rdb
			st.closers = append(st.closers, func() { _ = rdb.Close() })
		} else {
			_ = rdb.Close()
		}
	}

	logger.Infof("card storage tiers: %v", st.Cards.Names())
	return st
}

// connectMongo retries with exponential backoff to tolerate startup races.
func connectMongo(ctx context.Context, cfg config.MongoDBConfig, attempts int) *mongo.Client {
	if attempts < 1 {
		attempts = 1
	}
	backoff := time.Second
	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		client, err := database.ConnectMongo(ctx, cfg.URI, cfg.Timeout)
		if err == nil {
			return client
		}
		lastErr = err
		logger.Warnf("attempt %d/%d: failed to connect to MongoDB: %v", attempt, attempts, err)
		if attempt < attempts {
			time.Sleep(backoff)
			backoff *= 2
		}
	}
	logger.Warnf("could not connect to MongoDB after %d attempts, continuing without it: %v", attempts, lastErr)
	return nil
}
