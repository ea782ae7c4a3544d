package jsonfile

import (
	"context"

	"github.com/riskibarqy/fut-data/internal/domain/player"
	"github.com/riskibarqy/fut-data/internal/platform/logging"
)

type PlayerRepository struct {
	loader loader
}

var _ player.Repository = (*PlayerRepository)(nil)

func NewPlayerRepository(dataDir string, logger *logging.Logger) *PlayerRepository {
	return &PlayerRepository{loader: newLoader(dataDir, PlayersFile, logger)}
}

func (r *PlayerRepository) List(ctx context.Context) ([]player.Player, error) {
	return loadArray[player.Player](ctx, r.loader), nil
}
