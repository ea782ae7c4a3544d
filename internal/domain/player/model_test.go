package player

import (
	"strings"
	"testing"

	sonic "github.com/bytedance/sonic"
)

func TestMockMetrics_Goalkeeper(t *testing.T) {
	t.Parallel()

	got := MockMetrics(PositionGoalkeeper)
	want := Metrics{Minutos: 900, Defesas: 32}
	if got != want {
		t.Fatalf("unexpected goalkeeper metrics: %+v", got)
	}
}

func TestMockMetrics_UnknownPositionKeepsBase(t *testing.T) {
	t.Parallel()

	if got := MockMetrics("Volante"); got != (Metrics{Minutos: 900}) {
		t.Fatalf("unexpected metrics for unknown position: %+v", got)
	}
}

func TestMockMetrics_Midfielder(t *testing.T) {
	t.Parallel()

	got := MockMetrics(PositionMidfielder)
	if got.Gols != 2 || got.Assistencias != 6 || got.ChutesNoAlvo != 6 || got.PassesChave != 20 || got.Desarmes != 10 || got.Defesas != 0 {
		t.Fatalf("unexpected midfielder metrics: %+v", got)
	}
}

func TestEffectiveMetrics_PrefersSupplied(t *testing.T) {
	t.Parallel()

	supplied := &Metrics{Minutos: 1200, Gols: 11}
	p := Player{ID: 1, Nome: "Pedro", Posicao: PositionForward, Metrics: supplied}
	if got := p.EffectiveMetrics(); got != *supplied {
		t.Fatalf("expected supplied metrics, got %+v", got)
	}
	p.Metrics = nil
	if got := p.EffectiveMetrics(); got.Gols != 8 {
		t.Fatalf("expected mock metrics, got %+v", got)
	}
}

func TestMetricsValue(t *testing.T) {
	t.Parallel()

	m := Metrics{Minutos: 1, Gols: 2, Assistencias: 3, ChutesNoAlvo: 4, PassesChave: 5, Desarmes: 6, Defesas: 7}
	for i, key := range MetricKeys {
		if got := m.Value(key); got != i+1 {
			t.Fatalf("Value(%s)=%d want=%d", key, got, i+1)
		}
	}
	if m.Value("cartoes") != 0 {
		t.Fatalf("unknown key should be zero")
	}
}

func TestPlayerJSON_AlwaysCarriesTeamID(t *testing.T) {
	t.Parallel()

	raw, err := sonic.Marshal(Player{ID: 10, Nome: "Neymar", Posicao: PositionForward})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(raw), `"team_id":null`) {
		t.Fatalf("expected team_id null in %s", raw)
	}

	teamID := 128
	raw, err = sonic.Marshal(Player{ID: 10, Nome: "Neymar", TeamID: &teamID})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(raw), `"team_id":128`) {
		t.Fatalf("expected team_id 128 in %s", raw)
	}
}
