package usecase

import (
	"context"

	"github.com/riskibarqy/fut-data/internal/domain/coach"
	"github.com/riskibarqy/fut-data/internal/domain/player"
	"github.com/riskibarqy/fut-data/internal/domain/team"
)

// PlayerQuery is the upstream players search. Zero TeamID and empty Search
// are omitted from the request.
type PlayerQuery struct {
	League int    `validate:"gt=0"`
	Season int    `validate:"gt=0"`
	Page   int    `validate:"gt=0"`
	Search string `validate:"omitempty,max=100"`
	TeamID int    `validate:"gte=0"`
}

// FootballProvider is the upstream football API, already mapped to domain
// shapes. Failures are *UpstreamError values.
type FootballProvider interface {
	Teams(ctx context.Context, league, season int) ([]team.Team, error)
	Players(ctx context.Context, query PlayerQuery) ([]player.Player, error)
	SearchCoaches(ctx context.Context, search string) ([]coach.Coach, error)
	CoachByID(ctx context.Context, id int) (coach.Coach, bool, error)
}

// Defaults are the league and season used when a request does not name one.
type Defaults struct {
	League int
	Season int
}
