package usecase

import (
	"context"
	"sync"

	"github.com/riskibarqy/fut-data/internal/domain/coach"
	"github.com/riskibarqy/fut-data/internal/domain/player"
	"github.com/riskibarqy/fut-data/internal/domain/team"
)

type fakeProvider struct {
	mu sync.Mutex

	teams   []team.Team
	players []player.Player
	coaches []coach.Coach
	err     error

	playerQueries []PlayerQuery
	coachSearches []string
	calls         int
}

func (f *fakeProvider) fail(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.err = err
}

func (f *fakeProvider) Teams(_ context.Context, _, _ int) ([]team.Team, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.teams, nil
}

func (f *fakeProvider) Players(_ context.Context, query PlayerQuery) ([]player.Player, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.playerQueries = append(f.playerQueries, query)
	if f.err != nil {
		return nil, f.err
	}
	return f.players, nil
}

func (f *fakeProvider) SearchCoaches(_ context.Context, search string) ([]coach.Coach, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.coachSearches = append(f.coachSearches, search)
	if f.err != nil {
		return nil, f.err
	}
	return f.coaches, nil
}

func (f *fakeProvider) CoachByID(_ context.Context, id int) (coach.Coach, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return coach.Coach{}, false, f.err
	}
	for _, c := range f.coaches {
		if c.ID == id {
			return c, true, nil
		}
	}
	return coach.Coach{}, false, nil
}

func networkFailure(msg string) error {
	return &UpstreamError{Kind: UpstreamNetwork, Endpoint: "/players", Message: msg}
}

func intPtr(v int) *int { return &v }

func localPlayers() []player.Player {
	return []player.Player{
		{ID: 1, Nome: "João Silva", Posicao: player.PositionForward, Time: "Flamengo", Idade: intPtr(24)},
		{ID: 2, Nome: "Pedro Souza", Posicao: player.PositionMidfielder, Time: "Palmeiras", Idade: intPtr(27)},
		{ID: 3, Nome: "Álvaro Lima", Posicao: player.PositionForward, Time: "Palmeiras"},
		{ID: 4, Nome: "Bruno Costa", Posicao: player.PositionGoalkeeper, Time: "Flamengo"},
	}
}

func localCoaches() []coach.Coach {
	return []coach.Coach{
		{ID: 10, Nome: "Abel Ferreira", Nacionalidade: "Portugal", UltimoClube: "Palmeiras", Perfil: "Intenso"},
		{ID: 11, Nome: "Tite", Nacionalidade: "Brasil", UltimoClube: "Flamengo", Perfil: "Posicional"},
	}
}
