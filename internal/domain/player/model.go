package player

// Position labels as they appear in the dataset.
const (
	PositionForward    = "Atacante"
	PositionMidfielder = "Meia"
	PositionDefender   = "Zagueiro"
	PositionFullback   = "Lateral"
	PositionGoalkeeper = "Goleiro"
)

// Metric keys, in the order used by detail percentiles.
const (
	MetricMinutes     = "minutos"
	MetricGoals       = "gols"
	MetricAssists     = "assistencias"
	MetricShotsOnGoal = "chutes_no_alvo"
	MetricKeyPasses   = "passes_chave"
	MetricTackles     = "desarmes"
	MetricSaves       = "defesas"
)

var MetricKeys = []string{
	MetricMinutes,
	MetricGoals,
	MetricAssists,
	MetricShotsOnGoal,
	MetricKeyPasses,
	MetricTackles,
	MetricSaves,
}

// Player is one athlete as served to the dashboard. Metrics is nil for local
// records; callers fill the gap with MockMetrics.
type Player struct {
	ID      int      `json:"id" validate:"gt=0"`
	Nome    string   `json:"nome" validate:"required"`
	Posicao string   `json:"posicao"`
	Time    string   `json:"time"`
	TeamID  *int     `json:"team_id"`
	Idade   *int     `json:"idade"`
	Pe      string   `json:"pe"`
	Metrics *Metrics `json:"metrics,omitempty"`
}

type Metrics struct {
	Minutos      int `json:"minutos"`
	Gols         int `json:"gols"`
	Assistencias int `json:"assistencias"`
	ChutesNoAlvo int `json:"chutes_no_alvo"`
	PassesChave  int `json:"passes_chave"`
	Desarmes     int `json:"desarmes"`
	Defesas      int `json:"defesas"`
}

// EffectiveMetrics returns the supplied metrics or the positional placeholder.
func (p Player) EffectiveMetrics() Metrics {
	if p.Metrics != nil {
		return *p.Metrics
	}
	return MockMetrics(p.Posicao)
}

// Value returns the metric named key, or 0 for an unknown key.
func (m Metrics) Value(key string) int {
	switch key {
	case MetricMinutes:
		return m.Minutos
	case MetricGoals:
		return m.Gols
	case MetricAssists:
		return m.Assistencias
	case MetricShotsOnGoal:
		return m.ChutesNoAlvo
	case MetricKeyPasses:
		return m.PassesChave
	case MetricTackles:
		return m.Desarmes
	case MetricSaves:
		return m.Defesas
	default:
		return 0
	}
}

// MockMetrics is a fixed per-position stat profile for records without metrics.
func MockMetrics(posicao string) Metrics {
	m := Metrics{Minutos: 900}
	switch posicao {
	case PositionForward:
		m.Gols, m.Assistencias, m.ChutesNoAlvo, m.PassesChave, m.Desarmes = 8, 2, 15, 4, 4
	case PositionMidfielder:
		m.Gols, m.Assistencias, m.ChutesNoAlvo, m.PassesChave, m.Desarmes = 2, 6, 6, 20, 10
	case PositionDefender:
		m.Gols, m.Assistencias, m.ChutesNoAlvo, m.PassesChave, m.Desarmes = 1, 0, 1, 2, 18
	case PositionFullback:
		m.Gols, m.Assistencias, m.ChutesNoAlvo, m.PassesChave, m.Desarmes = 1, 3, 3, 8, 16
	case PositionGoalkeeper:
		m.Defesas = 32
	}
	return m
}
