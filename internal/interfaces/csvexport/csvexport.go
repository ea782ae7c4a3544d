// Package csvexport renders players and coaches as the spreadsheet friendly
// CSV served by the API and written by the export command.
package csvexport

import (
	"io"
	"strconv"
	"strings"

	"github.com/riskibarqy/fut-data/internal/domain/coach"
	"github.com/riskibarqy/fut-data/internal/domain/player"
)

// BOM makes spreadsheet tools read the file as UTF-8.
const BOM = "\uFEFF"

var (
	PlayerHeader = []string{"id", "nome", "posicao", "time", "idade", "pe"}
	CoachHeader  = []string{"id", "nome", "nacionalidade", "idade", "ultimo_clube", "perfil"}
)

// Table is a header plus its rows, already rendered as text.
type Table struct {
	Header []string
	Rows   [][]string
}

func Players(players []player.Player) Table {
	rows := make([][]string, 0, len(players))
	for _, p := range players {
		rows = append(rows, []string{
			strconv.Itoa(p.ID),
			p.Nome,
			p.Posicao,
			p.Time,
			optionalInt(p.Idade),
			p.Pe,
		})
	}
	return Table{Header: PlayerHeader, Rows: rows}
}

func Coaches(coaches []coach.Coach) Table {
	rows := make([][]string, 0, len(coaches))
	for _, c := range coaches {
		rows = append(rows, []string{
			strconv.Itoa(c.ID),
			c.Nome,
			c.Nacionalidade,
			optionalInt(c.Idade),
			c.UltimoClube,
			c.Perfil,
		})
	}
	return Table{Header: CoachHeader, Rows: rows}
}

// Escape quotes a field holding a comma, quote, CR or LF, doubling inner quotes.
func Escape(field string) string {
	if !strings.ContainsAny(field, "\",\n\r") {
		return field
	}
	return `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
}

// Encode writes the BOM, the header and one line per row. Lines are joined by
// LF with no trailing newline.
func Encode(w io.StringWriter, table Table) error {
	if _, err := w.WriteString(BOM + strings.Join(table.Header, ",")); err != nil {
		return err
	}
	for _, row := range table.Rows {
		if _, err := w.WriteString("\n"); err != nil {
			return err
		}
		for i, field := range row {
			if i > 0 {
				if _, err := w.WriteString(","); err != nil {
					return err
				}
			}
			if _, err := w.WriteString(Escape(field)); err != nil {
				return err
			}
		}
	}
	return nil
}

func optionalInt(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}
