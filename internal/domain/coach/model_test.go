package coach

import (
	"reflect"
	"testing"
)

func TestImpactHistory_IsDeterministic(t *testing.T) {
	t.Parallel()

	for _, id := range []int{1, 7, 42, 9999} {
		first := ImpactHistory(id)
		second := ImpactHistory(id)
		if !reflect.DeepEqual(first, second) {
			t.Fatalf("history differs for id=%d", id)
		}
	}
}

func TestImpactHistory_AccountingIsConsistent(t *testing.T) {
	t.Parallel()

	for id := 1; id <= 200; id++ {
		history := ImpactHistory(id)
		if len(history) != 3 {
			t.Fatalf("expected 3 seasons, got %d", len(history))
		}
		for idx, rec := range history {
			if rec.Temporada != []string{"2023", "2024", "2025"}[idx] {
				t.Fatalf("unexpected season order: %+v", history)
			}
			if rec.Jogos != 38-idx*2 {
				t.Fatalf("unexpected jogos=%d at idx=%d", rec.Jogos, idx)
			}
			if rec.Vitorias+rec.Empates+rec.Derrotas != rec.Jogos {
				t.Fatalf("inconsistent record for id=%d: %+v", id, rec)
			}
			want := roundHalfUp(float64(rec.Vitorias*3+rec.Empates) / float64(rec.Jogos*3) * 100)
			if rec.AproveitamentoPct != want || rec.AproveitamentoPct < 0 || rec.AproveitamentoPct > 100 {
				t.Fatalf("unexpected aproveitamento for id=%d: %+v", id, rec)
			}
		}
	}
}

func TestLastImpact(t *testing.T) {
	t.Parallel()

	history := ImpactHistory(3)
	if got := LastImpact(history); got != history[2].Impact {
		t.Fatalf("expected last season impact, got %+v", got)
	}
	if got := LastImpact(nil); got != (Impact{}) {
		t.Fatalf("expected zero impact for empty history, got %+v", got)
	}
}

func TestRoundHalfUp(t *testing.T) {
	t.Parallel()

	cases := map[float64]int{2.5: 3, 2.49: 2, -2.5: -2, 0: 0, 17.5: 18}
	for in, want := range cases {
		if got := roundHalfUp(in); got != want {
			t.Fatalf("roundHalfUp(%v)=%d want=%d", in, got, want)
		}
	}
}
