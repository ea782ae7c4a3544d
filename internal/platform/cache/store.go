package cache

import (
	"context"
	"fmt"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/singleflight"
)

const DefaultMaxEntries = 1024

type entry struct {
	value    any
	storedAt time.Time
	ttl      time.Duration
}

// Stats is a point-in-time view of the store.
type Stats struct {
	Entries    int `json:"entries"`
	Fresh      int `json:"fresh"`
	MaxEntries int `json:"max_entries"`
}

// Store memoizes values per key. Freshness is decided by the ttl passed on each
// read; stale entries stay until overwritten or evicted as least recently used.
type Store struct {
	entries    *lru.Cache[string, entry]
	maxEntries int
	now        func() time.Time
	flight     singleflight.Group
}

func NewStore(maxEntries int) *Store {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	entries, err := lru.New[string, entry](maxEntries)
	if err != nil {
		panic(fmt.Sprintf("cache: build lru: %v", err))
	}
	return &Store{
		entries:    entries,
		maxEntries: maxEntries,
		now:        time.Now,
	}
}

// Get returns the value stored under key when it is younger than ttl.
func (s *Store) Get(_ context.Context, key string, ttl time.Duration) (any, bool) {
	if key == "" {
		return nil, false
	}

	e, ok := s.entries.Get(key)
	if !ok || s.now().Sub(e.storedAt) >= ttl {
		return nil, false
	}

	return e.value, true
}

func (s *Store) Set(_ context.Context, key string, value any, ttl time.Duration) {
	if key == "" {
		return
	}

	s.entries.Add(key, entry{
		value:    value,
		storedAt: s.now(),
		ttl:      ttl,
	})
}

// GetOrLoad serves a fresh entry or runs loader once per key across
// concurrent callers and stores its result. Loader errors are not cached.
func (s *Store) GetOrLoad(ctx context.Context, key string, ttl time.Duration, loader func(context.Context) (any, error)) (any, error) {
	if loader == nil {
		return nil, fmt.Errorf("loader is required")
	}
	if key == "" {
		return loader(ctx)
	}

	if value, ok := s.Get(ctx, key, ttl); ok {
		return value, nil
	}

	// The shared load is detached from the caller's cancellation so one
	// departing caller cannot fail the others waiting on the same key.
	loadCtx := context.WithoutCancel(ctx)
	ch := s.flight.DoChan(key, func() (any, error) {
		if cached, ok := s.Get(loadCtx, key, ttl); ok {
			return cached, nil
		}

		loaded, loadErr := loader(loadCtx)
		if loadErr != nil {
			return nil, loadErr
		}
		s.Set(loadCtx, key, loaded, ttl)
		return loaded, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val, nil
	}
}

func (s *Store) Stats() Stats {
	now := s.now()
	stats := Stats{
		Entries:    s.entries.Len(),
		MaxEntries: s.maxEntries,
	}
	for _, key := range s.entries.Keys() {
		e, ok := s.entries.Peek(key)
		if ok && now.Sub(e.storedAt) < e.ttl {
			stats.Fresh++
		}
	}
	return stats
}
