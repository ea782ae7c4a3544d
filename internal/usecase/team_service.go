package usecase

import (
	"context"

	"github.com/riskibarqy/fut-data/internal/domain/datamode"
	"github.com/riskibarqy/fut-data/internal/domain/player"
	"github.com/riskibarqy/fut-data/internal/domain/ranking"
	"github.com/riskibarqy/fut-data/internal/platform/logging"
)

type TeamService struct {
	playerRepo player.Repository
	provider   FootballProvider
	fallback   fallback
	defaults   Defaults
}

func NewTeamService(
	playerRepo player.Repository,
	provider FootballProvider,
	resolver *datamode.Resolver,
	defaults Defaults,
	logger *logging.Logger,
) *TeamService {
	if logger == nil {
		logger = logging.Default()
	}
	return &TeamService{
		playerRepo: playerRepo,
		provider:   provider,
		fallback:   fallback{resolver: resolver, logger: logger},
		defaults:   defaults,
	}
}

// List returns team names with player counts sorted by name. Upstream
// teams always count one.
func (s *TeamService) List(ctx context.Context, league, season string) ([]ranking.NameCount, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.List")
	defer span.End()

	if !s.fallback.upstream() {
		return s.listLocal(ctx)
	}

	leagueID, err := ParseOptionalPositiveInt(league, "league", s.defaults.League)
	if err != nil {
		return nil, err
	}
	seasonYear, err := ParseOptionalPositiveInt(season, "season", s.defaults.Season)
	if err != nil {
		return nil, err
	}

	teams, err := s.provider.Teams(ctx, leagueID, seasonYear)
	if err != nil {
		if s.fallback.absorb(ctx, "teams", err) {
			return s.listLocal(ctx)
		}
		return nil, err
	}
	s.fallback.succeeded(ctx)

	out := make([]ranking.NameCount, 0, len(teams))
	for _, t := range teams {
		if t.Name == "" {
			continue
		}
		out = append(out, ranking.NameCount{Name: t.Name, Count: 1})
	}
	ranking.SortByName(out)
	return out, nil
}

func (s *TeamService) listLocal(ctx context.Context) ([]ranking.NameCount, error) {
	players, err := s.playerRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(players))
	for _, p := range players {
		names = append(names, p.Time)
	}
	counts := ranking.Tally(names)
	ranking.SortByName(counts)
	return counts, nil
}
