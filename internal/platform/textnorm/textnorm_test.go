package textnorm

import "testing"

func TestNormalize_FoldsAccentsAndCase(t *testing.T) {
	t.Parallel()

	if got := Normalize("São Paulo"); got != "sao paulo" {
		t.Fatalf("Normalize(São Paulo)=%q", got)
	}
	if got := Normalize("sao paulo"); got != "sao paulo" {
		t.Fatalf("Normalize(sao paulo)=%q", got)
	}
	if got := Normalize("  GRÊMIO  "); got != "gremio" {
		t.Fatalf("Normalize(GRÊMIO)=%q", got)
	}
	if got := Normalize("Atlético-MG"); got != "atletico-mg" {
		t.Fatalf("Normalize(Atlético-MG)=%q", got)
	}
}

func TestNormalize_IsIdempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"Ñandú", "Çeará", "  Vitória ", "", "plain",
		"a \u0301", "São \u0303", "\u0301 b", " \u0301 ", "\u0301",
	}
	for _, raw := range inputs {
		once := Normalize(raw)
		if twice := Normalize(once); twice != once {
			t.Fatalf("Normalize not idempotent for %q: %q != %q", raw, twice, once)
		}
	}
}

func TestNormalize_TrimsAfterStrippingMarks(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"a \u0301":   "a",
		"São \u0303": "sao",
		"\u0301 b":   "b",
		" \u0301 ":   "",
	}
	for raw, want := range cases {
		if got := Normalize(raw); got != want {
			t.Fatalf("Normalize(%q)=%q want=%q", raw, got, want)
		}
	}
}

func TestContainsAndEqual(t *testing.T) {
	t.Parallel()

	if !Contains("Germán Cano", "german") {
		t.Fatalf("expected accent-insensitive substring match")
	}
	if !Equal("Goleiro", " goleiro") {
		t.Fatalf("expected case-insensitive equality")
	}
	if Equal("Meia", "Meia-atacante") {
		t.Fatalf("did not expect prefix to be equal")
	}
}

func TestSortFunc_UsesPortugueseCollation(t *testing.T) {
	t.Parallel()

	names := []string{"Vasco", "Ávai", "Atlético", "bahia", "Corinthians"}
	SortFunc(names, func(s string) string { return s })

	want := []string{"Atlético", "Ávai", "bahia", "Corinthians", "Vasco"}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("unexpected order: %v", names)
		}
	}
}
