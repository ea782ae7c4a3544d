package cache

import (
	"context"
	"time"

	"github.com/riskibarqy/fut-data/internal/domain/coach"
	"github.com/riskibarqy/fut-data/internal/domain/player"
	basecache "github.com/riskibarqy/fut-data/internal/platform/cache"
)

const (
	playerListKey = "local:player:list"
	coachListKey  = "local:coach:list"
)

// PlayerRepository memoizes the local player list for ttl.
type PlayerRepository struct {
	next  player.Repository
	cache *basecache.Store
	ttl   time.Duration
}

func NewPlayerRepository(next player.Repository, cache *basecache.Store, ttl time.Duration) *PlayerRepository {
	return &PlayerRepository{next: next, cache: cache, ttl: ttl}
}

func (r *PlayerRepository) List(ctx context.Context) ([]player.Player, error) {
	v, err := r.cache.GetOrLoad(ctx, playerListKey, r.ttl, func(ctx context.Context) (any, error) {
		items, err := r.next.List(ctx)
		if err != nil {
			return nil, err
		}
		return append([]player.Player(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]player.Player)
	return append([]player.Player(nil), items...), nil
}

// CoachRepository memoizes the local coach list for ttl.
type CoachRepository struct {
	next  coach.Repository
	cache *basecache.Store
	ttl   time.Duration
}

func NewCoachRepository(next coach.Repository, cache *basecache.Store, ttl time.Duration) *CoachRepository {
	return &CoachRepository{next: next, cache: cache, ttl: ttl}
}

func (r *CoachRepository) List(ctx context.Context) ([]coach.Coach, error) {
	v, err := r.cache.GetOrLoad(ctx, coachListKey, r.ttl, func(ctx context.Context) (any, error) {
		items, err := r.next.List(ctx)
		if err != nil {
			return nil, err
		}
		return append([]coach.Coach(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]coach.Coach)
	return append([]coach.Coach(nil), items...), nil
}
