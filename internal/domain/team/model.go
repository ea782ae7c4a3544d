package team

import (
	"strings"

	"github.com/riskibarqy/fut-data/internal/platform/textnorm"
)

// Team is an upstream club entry used to resolve a name filter to an id.
type Team struct {
	ID   int
	Name string
}

// Directory indexes teams by normalized name.
type Directory map[string]Team

// NewDirectory drops entries without id or name. Later duplicates win.
func NewDirectory(teams []Team) Directory {
	out := make(Directory, len(teams))
	for _, t := range teams {
		name := strings.TrimSpace(t.Name)
		if t.ID == 0 || name == "" {
			continue
		}
		out[textnorm.Normalize(name)] = Team{ID: t.ID, Name: name}
	}
	return out
}

// Lookup finds a team by a human-typed name.
func (d Directory) Lookup(name string) (Team, bool) {
	key := textnorm.Normalize(name)
	if key == "" {
		return Team{}, false
	}
	t, ok := d[key]
	return t, ok
}
