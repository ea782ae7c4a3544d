package ranking

import (
	"testing"

	"github.com/riskibarqy/fut-data/internal/domain/player"
)

func TestPercentile_EmptyDistribution(t *testing.T) {
	t.Parallel()

	for _, v := range []int{-3, 0, 5, 1000} {
		if got := Percentile(v, nil); got != 0 {
			t.Fatalf("Percentile(%d, nil)=%d want=0", v, got)
		}
	}
}

func TestPercentile_MidRankTies(t *testing.T) {
	t.Parallel()

	if got := Percentile(2, []int{1, 2, 2, 3}); got != 50 {
		t.Fatalf("Percentile(2, [1,2,2,3])=%d want=50", got)
	}
	if got := Percentile(3, []int{3, 1, 2, 2}); got != 88 {
		t.Fatalf("Percentile(3, ...)=%d want=88", got)
	}
	if got := Percentile(7, []int{7, 7, 7}); got != 50 {
		t.Fatalf("full tie should land at 50, got %d", got)
	}
}

func TestPercentile_IsMonotonic(t *testing.T) {
	t.Parallel()

	dist := []int{0, 4, 4, 9, 12, 12, 12, 30}
	prev := -1
	for v := -2; v <= 35; v++ {
		got := Percentile(v, dist)
		if got < prev {
			t.Fatalf("percentile decreased at v=%d: %d < %d", v, got, prev)
		}
		if got < 0 || got > 100 {
			t.Fatalf("percentile out of range at v=%d: %d", v, got)
		}
		prev = got
	}
}

func TestTopByMetric_SortsDescendingAndLimits(t *testing.T) {
	t.Parallel()

	goals := func(n int) *player.Metrics { return &player.Metrics{Gols: n} }
	players := []player.Player{
		{ID: 1, Nome: "A", Metrics: goals(3)},
		{ID: 2, Nome: "B", Metrics: goals(9)},
		{ID: 3, Nome: "C", Metrics: goals(3)},
		{ID: 4, Nome: "D", Posicao: player.PositionForward},
		{ID: 5, Nome: "E", Metrics: goals(1)},
		{ID: 6, Nome: "F", Metrics: goals(0)},
	}

	got := TopByMetric(players, player.MetricGoals, DefaultTopLimit)
	wantIDs := []int{2, 4, 1, 3, 5}
	if len(got) != len(wantIDs) {
		t.Fatalf("expected %d entries, got %d", len(wantIDs), len(got))
	}
	for i, id := range wantIDs {
		if got[i].ID != id {
			t.Fatalf("unexpected order at %d: got=%d want=%d (%+v)", i, got[i].ID, id, got)
		}
	}
	if got[1].Value != 8 {
		t.Fatalf("expected mock metrics for forward without metrics, got %d", got[1].Value)
	}
}

func TestPercentiles_ComparesEveryMetric(t *testing.T) {
	t.Parallel()

	sample := []player.Metrics{
		player.MockMetrics(player.PositionGoalkeeper),
		{Minutos: 450, Defesas: 10},
	}
	got := Percentiles(sample[0], sample)
	if len(got) != len(player.MetricKeys) {
		t.Fatalf("expected one percentile per metric, got %v", got)
	}
	if got[player.MetricSaves] != 75 || got[player.MetricMinutes] != 75 || got[player.MetricGoals] != 50 {
		t.Fatalf("unexpected percentiles: %v", got)
	}
}

func TestTallyAndSortByName(t *testing.T) {
	t.Parallel()

	counts := Tally([]string{"Vasco", " Ávai", "", "Vasco", "Atlético", "  "})
	if len(counts) != 3 || counts[0] != (NameCount{Name: "Vasco", Count: 2}) || counts[1].Name != "Ávai" {
		t.Fatalf("unexpected tally: %+v", counts)
	}

	SortByName(counts)
	if counts[0].Name != "Atlético" || counts[1].Name != "Ávai" || counts[2].Name != "Vasco" {
		t.Fatalf("unexpected sorted order: %+v", counts)
	}
}
