// Package ranking holds the comparison math behind player detail, rankings and
// catalog counts.
package ranking

import (
	"math"
	"slices"
	"strings"

	"github.com/riskibarqy/fut-data/internal/domain/player"
	"github.com/riskibarqy/fut-data/internal/platform/textnorm"
)

const DefaultTopLimit = 5

// RankingMetrics lists the metrics exposed by the rankings endpoint, in order.
var RankingMetrics = []string{
	player.MetricGoals,
	player.MetricAssists,
	player.MetricKeyPasses,
	player.MetricShotsOnGoal,
	player.MetricTackles,
	player.MetricSaves,
}

// Percentile is the mid-rank percentile of value within distribution, 0..100.
// Ties count half, so a value tied with the whole sample lands at 50.
func Percentile(value int, distribution []int) int {
	if len(distribution) == 0 {
		return 0
	}
	below, equal := 0, 0
	for _, v := range distribution {
		switch {
		case v < value:
			below++
		case v == value:
			equal++
		}
	}
	rank := float64(below) + float64(equal)/2
	return int(math.Floor(rank/float64(len(distribution))*100 + 0.5))
}

// Entry is one row of a top-N ranking.
type Entry struct {
	ID      int    `json:"id"`
	Nome    string `json:"nome"`
	Posicao string `json:"posicao"`
	Time    string `json:"time"`
	Value   int    `json:"value"`
}

// TopByMetric returns the limit best players by metric, highest first. Players
// with equal values keep their input order.
func TopByMetric(players []player.Player, metric string, limit int) []Entry {
	entries := make([]Entry, 0, len(players))
	for _, p := range players {
		entries = append(entries, Entry{
			ID:      p.ID,
			Nome:    p.Nome,
			Posicao: p.Posicao,
			Time:    p.Time,
			Value:   p.EffectiveMetrics().Value(metric),
		})
	}
	slices.SortStableFunc(entries, func(a, b Entry) int {
		return b.Value - a.Value
	})
	if limit >= 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}

// Percentiles compares target against every sample, metric by metric.
func Percentiles(target player.Metrics, sample []player.Metrics) map[string]int {
	out := make(map[string]int, len(player.MetricKeys))
	values := make([]int, len(sample))
	for _, key := range player.MetricKeys {
		for i, m := range sample {
			values[i] = m.Value(key)
		}
		out[key] = Percentile(target.Value(key), values)
	}
	return out
}

// NameCount is a label with the number of records carrying it.
type NameCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Tally counts trimmed non-empty names in first-seen order.
func Tally(names []string) []NameCount {
	index := make(map[string]int, len(names))
	out := make([]NameCount, 0, len(names))
	for _, raw := range names {
		name := strings.TrimSpace(raw)
		if name == "" {
			continue
		}
		if i, ok := index[name]; ok {
			out[i].Count++
			continue
		}
		index[name] = len(out)
		out = append(out, NameCount{Name: name, Count: 1})
	}
	return out
}

// SortByName orders counts by pt-BR collation of their names.
func SortByName(items []NameCount) {
	textnorm.SortFunc(items, func(c NameCount) string { return c.Name })
}
