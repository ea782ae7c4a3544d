package apifootball

import (
	"context"
	"net/http"
	"sync/atomic"
	"testing"

	"github.com/riskibarqy/fut-data/internal/platform/cache"
	"github.com/riskibarqy/fut-data/internal/platform/logging"
	"github.com/riskibarqy/fut-data/internal/usecase"
)

const playersPayload = `{
  "errors": [],
  "response": [
    {
      "player": {"id": 276, "name": "Neymar", "age": 32, "birth": {"place": "Mogi das Cruzes"}},
      "statistics": [
        {
          "team": {"id": 128, "name": "Santos"},
          "games": {"minutes": 1200, "position": "Attacker"},
          "goals": {"total": 9, "assists": 7, "saves": null},
          "shots": {"on": 21},
          "passes": {"key": 30},
          "tackles": {"total": null}
        },
        {
          "team": {"id": 1, "name": "Other"}
        }
      ]
    },
    {
      "player": {"id": 9, "name": "Sem Stats", "age": null, "birth": {"place": null}},
      "statistics": []
    }
  ]
}`

func TestProviderPlayers_MapsFirstStatistics(t *testing.T) {
	t.Parallel()

	var gotQuery atomic.Value
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery.Store(r.URL.RawQuery)
		_, _ = w.Write([]byte(playersPayload))
	})
	provider := NewProvider(client)

	players, err := provider.Players(context.Background(), usecase.PlayerQuery{League: 71, Season: 2024, Page: 1, TeamID: 128, Search: "ney"})
	if err != nil {
		t.Fatalf("players: %v", err)
	}
	if gotQuery.Load() != "league=71&page=1&search=ney&season=2024&team=128" {
		t.Fatalf("unexpected query: %v", gotQuery.Load())
	}
	if len(players) != 2 {
		t.Fatalf("unexpected players count: %d", len(players))
	}

	first := players[0]
	if first.ID != 276 || first.Nome != "Neymar" || first.Posicao != "Attacker" || first.Time != "Santos" || first.Pe != "Mogi das Cruzes" {
		t.Fatalf("unexpected player: %+v", first)
	}
	if first.TeamID == nil || *first.TeamID != 128 || first.Idade == nil || *first.Idade != 32 {
		t.Fatalf("unexpected team id or age: %+v", first)
	}
	if first.Metrics == nil || first.Metrics.Gols != 9 || first.Metrics.ChutesNoAlvo != 21 || first.Metrics.PassesChave != 30 || first.Metrics.Defesas != 0 || first.Metrics.Minutos != 1200 {
		t.Fatalf("unexpected metrics: %+v", first.Metrics)
	}

	second := players[1]
	if second.TeamID != nil || second.Idade != nil || second.Time != "" || second.Metrics == nil || second.Metrics.Minutos != 0 {
		t.Fatalf("missing statistics should map to zero values: %+v", second)
	}
}

func TestProviderPlayers_RejectsInvalidQuery(t *testing.T) {
	t.Parallel()

	client, hits := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"response":[]}`))
	})
	provider := NewProvider(client)

	if _, err := provider.Players(context.Background(), usecase.PlayerQuery{League: 0, Season: 2024, Page: 1}); err == nil {
		t.Fatalf("expected validation error")
	}
	if hits.Load() != 0 {
		t.Fatalf("invalid query must not reach upstream")
	}
}

func TestProviderTeams_NonArrayResponseIsEmpty(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"errors":[],"response":{"unexpected":true}}`))
	})

	teams, err := NewProvider(client).Teams(context.Background(), 71, 2024)
	if err != nil {
		t.Fatalf("teams: %v", err)
	}
	if len(teams) != 0 {
		t.Fatalf("expected no teams, got=%d", len(teams))
	}
}

func TestProviderCoaches(t *testing.T) {
	t.Parallel()

	client, hits := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("id") == "404" {
			_, _ = w.Write([]byte(`{"errors":[],"response":[]}`))
			return
		}
		_, _ = w.Write([]byte(`{"errors":[],"response":[{"id":2,"name":"Dorival","nationality":"Brazil","age":62,"career":[{"team":{"name":"Brazil"}},{"team":{"name":"Sao Paulo"}}]}]}`))
	})
	provider := NewProvider(client)

	found, ok, err := provider.CoachByID(context.Background(), 2)
	if err != nil || !ok {
		t.Fatalf("coach by id: ok=%v err=%v", ok, err)
	}
	if found.UltimoClube != "Brazil" || found.Perfil != "Perfil vindo da API-Football" || found.Idade == nil || *found.Idade != 62 {
		t.Fatalf("unexpected coach: %+v", found)
	}

	if _, ok, err = provider.CoachByID(context.Background(), 404); err != nil || ok {
		t.Fatalf("expected missing coach, ok=%v err=%v", ok, err)
	}

	if _, err := provider.SearchCoaches(context.Background(), "dorival"); err != nil {
		t.Fatalf("search coaches: %v", err)
	}
	if _, err := provider.SearchCoaches(context.Background(), "dorival"); err != nil {
		t.Fatalf("search coaches: %v", err)
	}
	if hits.Load() != 3 {
		t.Fatalf("repeated search should be cached, hits=%d", hits.Load())
	}
}

func TestNewClient_Defaults(t *testing.T) {
	t.Parallel()

	client := NewClient(ClientConfig{Cache: cache.NewStore(1), Logger: logging.NewNop()})
	if client.baseURL != DefaultBaseURL {
		t.Fatalf("unexpected base url: %s", client.baseURL)
	}
	if client.httpClient.Timeout != defaultTimeout {
		t.Fatalf("unexpected timeout: %s", client.httpClient.Timeout)
	}
}
