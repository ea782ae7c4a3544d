package apifootball

import (
	"github.com/riskibarqy/fut-data/internal/domain/coach"
	"github.com/riskibarqy/fut-data/internal/domain/player"
)

type teamItem struct {
	Team struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	} `json:"team"`
}

type playerItem struct {
	Player struct {
		ID    int    `json:"id"`
		Name  string `json:"name"`
		Age   int    `json:"age"`
		Birth struct {
			Place string `json:"place"`
		} `json:"birth"`
	} `json:"player"`
	Statistics []playerStatistics `json:"statistics"`
}

type playerStatistics struct {
	Team struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	} `json:"team"`
	Games struct {
		Minutes  int    `json:"minutes"`
		Position string `json:"position"`
	} `json:"games"`
	Goals struct {
		Total   int `json:"total"`
		Assists int `json:"assists"`
		Saves   int `json:"saves"`
	} `json:"goals"`
	Shots struct {
		On int `json:"on"`
	} `json:"shots"`
	Passes struct {
		Key int `json:"key"`
	} `json:"passes"`
	Tackles struct {
		Total int `json:"total"`
	} `json:"tackles"`
}

type coachItem struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Nationality string `json:"nationality"`
	Age         int    `json:"age"`
	Career      []struct {
		Team struct {
			Name string `json:"name"`
		} `json:"team"`
	} `json:"career"`
}

// mapPlayer reads the first statistics block; missing numbers become zero
// and missing team id or age become null.
func mapPlayer(item playerItem) player.Player {
	var stats playerStatistics
	if len(item.Statistics) > 0 {
		stats = item.Statistics[0]
	}

	return player.Player{
		ID:      item.Player.ID,
		Nome:    item.Player.Name,
		Posicao: stats.Games.Position,
		Time:    stats.Team.Name,
		TeamID:  nonZero(stats.Team.ID),
		Idade:   nonZero(item.Player.Age),
		Pe:      item.Player.Birth.Place,
		Metrics: &player.Metrics{
			Minutos:      stats.Games.Minutes,
			Gols:         stats.Goals.Total,
			Assistencias: stats.Goals.Assists,
			ChutesNoAlvo: stats.Shots.On,
			PassesChave:  stats.Passes.Key,
			Desarmes:     stats.Tackles.Total,
			Defesas:      stats.Goals.Saves,
		},
	}
}

func mapCoach(item coachItem) coach.Coach {
	lastClub := ""
	if len(item.Career) > 0 {
		lastClub = item.Career[0].Team.Name
	}
	return coach.Coach{
		ID:            item.ID,
		Nome:          item.Name,
		Nacionalidade: item.Nationality,
		Idade:         nonZero(item.Age),
		UltimoClube:   lastClub,
		Perfil:        coach.UpstreamProfile,
	}
}

func nonZero(v int) *int {
	if v == 0 {
		return nil
	}
	return &v
}
