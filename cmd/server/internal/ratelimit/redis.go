package ratelimit

import (
	"context"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore shares one attempt counter between replicas. The window is a
// fixed TTL rather than a sliding log; single-replica deployments should use
// [MemoryStore] for exact window semantics.
type RedisStore struct {
	db         *redis.Client
	limiterKey string
	perWindow  int64
	window     time.Duration
	failOpen   bool
}

type RedisStoreConfig struct {
	RedisClient *redis.Client
	LimiterKey  string
	PerWindow   int64
	Window      time.Duration
	FailOpen    bool
}

func (store *RedisStore) Allow(identifier string) (bool, error) {
	// This method might let N-1 extra requests in due to race condition where N is the possible number of concurrent writers
	// This is a smaller concern than the possibility that we will lose a distributed lock

	ctx := context.Background()

	key := "surveyapi-ratelimit-" + store.limiterKey + "-" + identifier

	attemptsLeftStr, err := store.db.Get(ctx, key).Result()

	if err == nil {
		attemptsLeft := 0

		attemptsLeft, err = strconv.Atoi(attemptsLeftStr)
		if err != nil {
			return store.failOpen, err
		}

		if attemptsLeft == 0 {
			return false, nil
		}
	} else {
		if err != redis.Nil {
			return store.failOpen, err
		}

		store.db.Set(ctx, key, store.perWindow, store.window)
	}

	store.db.Decr(ctx, key)

	return true, nil
}

func NewRedisStore(config RedisStoreConfig) (store *RedisStore) {
	return &RedisStore{
		db:         config.RedisClient,
		limiterKey: config.LimiterKey,
		perWindow:  config.PerWindow,
		window:     config.Window,
		failOpen:   config.FailOpen,
	}
}
