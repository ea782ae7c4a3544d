package coach

import (
	"math"
	"strconv"
)

// UpstreamProfile is the perfil text for coaches mapped from the upstream API.
const UpstreamProfile = "Perfil vindo da API-Football"

// Coach is one head coach as served to the dashboard.
type Coach struct {
	ID            int    `json:"id" validate:"gt=0"`
	Nome          string `json:"nome" validate:"required"`
	Nacionalidade string `json:"nacionalidade"`
	Idade         *int   `json:"idade"`
	UltimoClube   string `json:"ultimo_clube"`
	Perfil        string `json:"perfil"`
}

// Impact is a season summary without the season label.
type Impact struct {
	Jogos             int `json:"jogos"`
	Vitorias          int `json:"vitorias"`
	Empates           int `json:"empates"`
	Derrotas          int `json:"derrotas"`
	AproveitamentoPct int `json:"aproveitamento_pct"`
}

// ImpactRecord is a synthesized win/draw/loss line for one season.
type ImpactRecord struct {
	Temporada string `json:"temporada"`
	Impact
}

var impactSeasons = []int{2023, 2024, 2025}

// ImpactHistory synthesizes one record per season, earliest first. The output
// is a pure function of coachID.
func ImpactHistory(coachID int) []ImpactRecord {
	rnd := func(n int) float64 {
		x := math.Sin(float64(coachID*999+n*123)) * 10000
		return x - math.Floor(x)
	}

	out := make([]ImpactRecord, 0, len(impactSeasons))
	for idx, year := range impactSeasons {
		jogos := 38 - idx*2
		winRate := 0.45 + rnd(idx)*0.25
		vitorias := roundHalfUp(float64(jogos) * winRate)
		empates := roundHalfUp(float64(jogos-vitorias) * (0.35 + rnd(idx+10)*0.2))
		derrotas := max(0, jogos-vitorias-empates)

		out = append(out, ImpactRecord{
			Temporada: strconv.Itoa(year),
			Impact: Impact{
				Jogos:             jogos,
				Vitorias:          vitorias,
				Empates:           empates,
				Derrotas:          derrotas,
				AproveitamentoPct: roundHalfUp(float64(vitorias*3+empates) / float64(jogos*3) * 100),
			},
		})
	}
	return out
}

// LastImpact returns the most recent season without its label.
func LastImpact(history []ImpactRecord) Impact {
	if len(history) == 0 {
		return Impact{}
	}
	return history[len(history)-1].Impact
}

// roundHalfUp rounds .5 toward +Inf.
func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}
