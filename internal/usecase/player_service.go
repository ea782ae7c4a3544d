package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/fut-data/internal/domain/datamode"
	"github.com/riskibarqy/fut-data/internal/domain/player"
	"github.com/riskibarqy/fut-data/internal/domain/ranking"
	"github.com/riskibarqy/fut-data/internal/domain/team"
	"github.com/riskibarqy/fut-data/internal/platform/logging"
	"github.com/riskibarqy/fut-data/internal/platform/textnorm"
)

// PlayerFilter carries the raw query values of a players request.
type PlayerFilter struct {
	Posicao string
	Time    string
	Q       string
	League  string
	Season  string
	Page    string
}

type PlayerDetail struct {
	Player     player.Player
	Metrics    player.Metrics
	Percentis  map[string]int
	Comparacao string
	Amostra    int
}

type PlayerRankings struct {
	Pool     int
	ByMetric map[string][]ranking.Entry
}

type PlayerService struct {
	playerRepo player.Repository
	provider   FootballProvider
	fallback   fallback
	defaults   Defaults
}

func NewPlayerService(
	playerRepo player.Repository,
	provider FootballProvider,
	resolver *datamode.Resolver,
	defaults Defaults,
	logger *logging.Logger,
) *PlayerService {
	if logger == nil {
		logger = logging.Default()
	}
	return &PlayerService{
		playerRepo: playerRepo,
		provider:   provider,
		fallback:   fallback{resolver: resolver, logger: logger},
		defaults:   defaults,
	}
}

// List returns the unfiltered players of the active source.
func (s *PlayerService) List(ctx context.Context, filter PlayerFilter) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.List")
	defer span.End()

	if !s.fallback.upstream() {
		return s.listLocal(ctx)
	}

	query, err := s.buildQuery(filter)
	if err != nil {
		return nil, err
	}

	players, err := s.listUpstream(ctx, query, filter.Time)
	if err != nil {
		if s.fallback.absorb(ctx, "players", err) {
			return s.listLocal(ctx)
		}
		return nil, err
	}

	s.fallback.succeeded(ctx)
	return players, nil
}

// Search is List narrowed by position, team and name.
func (s *PlayerService) Search(ctx context.Context, filter PlayerFilter) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Search")
	defer span.End()

	players, err := s.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return ApplyPlayerFilters(players, filter), nil
}

func (s *PlayerService) Get(ctx context.Context, playerID int, filter PlayerFilter) (PlayerDetail, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Get")
	defer span.End()

	players, err := s.List(ctx, filter)
	if err != nil {
		return PlayerDetail{}, err
	}

	idx := -1
	for i := range players {
		if players[i].ID == playerID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return PlayerDetail{}, notFound("Player não encontrado")
	}

	target := players[idx]
	sample := make([]player.Metrics, 0, len(players))
	for _, p := range players {
		if p.Posicao == target.Posicao {
			sample = append(sample, p.EffectiveMetrics())
		}
	}
	metrics := target.EffectiveMetrics()

	return PlayerDetail{
		Player:     target,
		Metrics:    metrics,
		Percentis:  ranking.Percentiles(metrics, sample),
		Comparacao: fmt.Sprintf("Percentis dentro da posição (%s)", target.Posicao),
		Amostra:    len(sample),
	}, nil
}

func (s *PlayerService) Positions(ctx context.Context, filter PlayerFilter) ([]ranking.NameCount, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Positions")
	defer span.End()

	players, err := s.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(players))
	for _, p := range players {
		names = append(names, p.Posicao)
	}
	counts := ranking.Tally(names)
	ranking.SortByName(counts)
	return counts, nil
}

// Rankings ranks the players of one position, or all players when
// posicao is empty, for every ranking metric.
func (s *PlayerService) Rankings(ctx context.Context, posicao string, filter PlayerFilter) (PlayerRankings, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Rankings")
	defer span.End()

	players, err := s.List(ctx, filter)
	if err != nil {
		return PlayerRankings{}, err
	}

	pool := players
	if textnorm.Normalize(posicao) != "" {
		pool = make([]player.Player, 0, len(players))
		for _, p := range players {
			if textnorm.Equal(p.Posicao, posicao) {
				pool = append(pool, p)
			}
		}
	}

	out := PlayerRankings{
		Pool:     len(pool),
		ByMetric: make(map[string][]ranking.Entry, len(ranking.RankingMetrics)),
	}
	for _, metric := range ranking.RankingMetrics {
		out.ByMetric[metric] = ranking.TopByMetric(pool, metric, ranking.DefaultTopLimit)
	}
	return out, nil
}

// ApplyPlayerFilters keeps players matching position and team exactly and
// containing q in their name, all compared normalized. Empty values match all.
func ApplyPlayerFilters(players []player.Player, filter PlayerFilter) []player.Player {
	hasPosicao := textnorm.Normalize(filter.Posicao) != ""
	hasTeam := textnorm.Normalize(filter.Time) != ""
	q := textnorm.Normalize(filter.Q)

	out := make([]player.Player, 0, len(players))
	for _, p := range players {
		if hasPosicao && !textnorm.Equal(p.Posicao, filter.Posicao) {
			continue
		}
		if hasTeam && !textnorm.Equal(p.Time, filter.Time) {
			continue
		}
		if q != "" && !textnorm.Contains(p.Nome, q) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func (s *PlayerService) buildQuery(filter PlayerFilter) (PlayerQuery, error) {
	league, err := ParseOptionalPositiveInt(filter.League, "league", s.defaults.League)
	if err != nil {
		return PlayerQuery{}, err
	}
	season, err := ParseOptionalPositiveInt(filter.Season, "season", s.defaults.Season)
	if err != nil {
		return PlayerQuery{}, err
	}
	page, err := ParseOptionalPositiveInt(filter.Page, "page", 1)
	if err != nil {
		return PlayerQuery{}, err
	}
	return PlayerQuery{League: league, Season: season, Page: page, Search: filter.Q}, nil
}

func (s *PlayerService) listUpstream(ctx context.Context, query PlayerQuery, teamName string) ([]player.Player, error) {
	if textnorm.Normalize(teamName) != "" {
		teams, err := s.provider.Teams(ctx, query.League, query.Season)
		if err != nil {
			return nil, err
		}
		if t, ok := team.NewDirectory(teams).Lookup(teamName); ok {
			query.TeamID = t.ID
		}
	}
	return s.provider.Players(ctx, query)
}

func (s *PlayerService) listLocal(ctx context.Context) ([]player.Player, error) {
	players, err := s.playerRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list local players: %w", err)
	}
	return players, nil
}
