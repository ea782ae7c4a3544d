package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/fut-data/internal/domain/coach"
)

type CoachRepository struct {
	mu      sync.RWMutex
	coaches []coach.Coach
}

func NewCoachRepository(coaches []coach.Coach) *CoachRepository {
	return &CoachRepository{coaches: append([]coach.Coach(nil), coaches...)}
}

func (r *CoachRepository) List(_ context.Context) ([]coach.Coach, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]coach.Coach, 0, len(r.coaches))
	out = append(out, r.coaches...)
	return out, nil
}
