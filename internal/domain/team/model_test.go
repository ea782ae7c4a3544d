package team

import "testing"

func TestDirectory_LookupIsAccentInsensitive(t *testing.T) {
	t.Parallel()

	dir := NewDirectory([]Team{
		{ID: 126, Name: "São Paulo"},
		{ID: 0, Name: "Sem ID"},
		{ID: 127, Name: "  "},
		{ID: 131, Name: "Corinthians"},
	})

	if len(dir) != 2 {
		t.Fatalf("expected 2 indexed teams, got %d", len(dir))
	}
	got, ok := dir.Lookup("sao paulo")
	if !ok || got.ID != 126 || got.Name != "São Paulo" {
		t.Fatalf("unexpected lookup result: %+v ok=%v", got, ok)
	}
	if _, ok := dir.Lookup(""); ok {
		t.Fatalf("empty name must not resolve")
	}
	if _, ok := dir.Lookup("Flamengo"); ok {
		t.Fatalf("unknown team must not resolve")
	}
}
