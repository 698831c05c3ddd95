package ratelimit

import (
	"context"
	"sync"
	"time"

	"github.com/labstack/echo/v4/middleware"
)

// MemoryStore is an in-process sliding-window limiter. It keeps, per client
// key, the timestamps of attempts inside the trailing window; a key is
// admitted again only once the window slides past its earliest counted
// attempt. Token buckets re-admit on partial refill, which breaks that rule,
// hence the explicit attempt log.
type MemoryStore struct {
	mu       sync.Mutex
	attempts map[string][]time.Time
	limit    int
	window   time.Duration
	now      func() time.Time
}

type MemoryStoreConfig struct {
	Limit  int
	Window time.Duration
}

var _ middleware.RateLimiterStore = (*MemoryStore)(nil)

func NewMemoryStore(config MemoryStoreConfig) *MemoryStore {
	return &MemoryStore{
		attempts: make(map[string][]time.Time),
		limit:    config.Limit,
		window:   config.Window,
		now:      time.Now,
	}
}

// Allow reports whether one attempt for identifier is admitted. Admitted
// attempts are logged and count whatever happens to the request afterwards;
// denied attempts are not logged, so a saturated key recovers once its
// earliest admitted attempt ages out.
func (store *MemoryStore) Allow(identifier string) (bool, error) {
	now := store.now()
	cutoff := now.Add(-store.window)

	store.mu.Lock()
	defer store.mu.Unlock()

	log := store.attempts[identifier]

	kept := log[:0]
	for _, t := range log {
		if t.After(cutoff) {
			kept = append(kept, t)
		}
	}

	if len(kept) >= store.limit {
		store.attempts[identifier] = kept
		return false, nil
	}

	store.attempts[identifier] = append(kept, now)
	return true, nil
}

// StartJanitor evicts keys whose attempts have all aged out of the window.
// Stop it by cancelling the context.
func (store *MemoryStore) StartJanitor(ctx context.Context, every time.Duration) {
	t := time.NewTicker(every)
	go func() {
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				store.evictIdle()
			}
		}
	}()
}

func (store *MemoryStore) evictIdle() {
	cutoff := store.now().Add(-store.window)

	store.mu.Lock()
	defer store.mu.Unlock()

	for key, log := range store.attempts {
		idle := true
		for _, t := range log {
			if t.After(cutoff) {
				idle = false
				break
			}
		}
		if idle {
			delete(store.attempts, key)
		}
	}
}
