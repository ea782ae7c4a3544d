package jsonfile

import (
	"context"

	"github.com/riskibarqy/fut-data/internal/domain/coach"
	"github.com/riskibarqy/fut-data/internal/platform/logging"
)

type CoachRepository struct {
	loader loader
}

var _ coach.Repository = (*CoachRepository)(nil)

func NewCoachRepository(dataDir string, logger *logging.Logger) *CoachRepository {
	return &CoachRepository{loader: newLoader(dataDir, CoachesFile, logger)}
}

func (r *CoachRepository) List(ctx context.Context) ([]coach.Coach, error) {
	return loadArray[coach.Coach](ctx, r.loader), nil
}
