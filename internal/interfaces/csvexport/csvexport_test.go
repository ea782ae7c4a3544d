package csvexport

import (
	"encoding/csv"
	"strings"
	"testing"

	"github.com/riskibarqy/fut-data/internal/domain/coach"
	"github.com/riskibarqy/fut-data/internal/domain/player"
)

func intPtr(v int) *int { return &v }

func TestEscape(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"Pedro":           "Pedro",
		"":                "",
		"Silva, Jr.":      `"Silva, Jr."`,
		`O"Neil`:          `"O""Neil"`,
		"linha\nquebrada": "\"linha\nquebrada\"",
		"cr\rfield":       "\"cr\rfield\"",
	}
	for in, want := range cases {
		if got := Escape(in); got != want {
			t.Fatalf("Escape(%q)=%q want=%q", in, got, want)
		}
	}
}

func TestEncode_RoundTripsThroughCSVReader(t *testing.T) {
	t.Parallel()

	name := `O'Neil, Jr."`
	table := Players([]player.Player{
		{ID: 7, Nome: name, Posicao: "Meia", Time: "Flamengo", Idade: intPtr(29), Pe: "Canhoto"},
		{ID: 8, Nome: "Sem Idade", Posicao: "Goleiro", Time: "Palmeiras"},
	})

	var sb strings.Builder
	if err := Encode(&sb, table); err != nil {
		t.Fatalf("encode: %v", err)
	}

	out := sb.String()
	if !strings.HasPrefix(out, BOM+"id,nome,posicao,time,idade,pe\n") {
		t.Fatalf("unexpected csv prefix: %q", out)
	}
	if strings.HasSuffix(out, "\n") {
		t.Fatalf("expected no trailing newline: %q", out)
	}

	records, err := csv.NewReader(strings.NewReader(strings.TrimPrefix(out, BOM))).ReadAll()
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d", len(records))
	}
	if records[1][1] != name {
		t.Fatalf("name did not round-trip: got %q want %q", records[1][1], name)
	}
	if records[2][4] != "" {
		t.Fatalf("expected empty idade for nil age, got %q", records[2][4])
	}
}

func TestCoaches_ColumnOrder(t *testing.T) {
	t.Parallel()

	table := Coaches([]coach.Coach{{
		ID:            101,
		Nome:          "Abel Ferreira",
		Nacionalidade: "Portugal",
		Idade:         intPtr(45),
		UltimoClube:   "Palmeiras",
		Perfil:        "Intenso, organizado",
	}})

	var sb strings.Builder
	if err := Encode(&sb, table); err != nil {
		t.Fatalf("encode: %v", err)
	}

	want := BOM + "id,nome,nacionalidade,idade,ultimo_clube,perfil\n" +
		`101,Abel Ferreira,Portugal,45,Palmeiras,"Intenso, organizado"`
	if got := sb.String(); got != want {
		t.Fatalf("unexpected csv:\n%q\nwant:\n%q", got, want)
	}
}
