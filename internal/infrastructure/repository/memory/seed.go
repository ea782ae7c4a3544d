package memory

import (
	"github.com/riskibarqy/fut-data/internal/domain/coach"
	"github.com/riskibarqy/fut-data/internal/domain/player"
)

func age(v int) *int { return &v }

// SeedPlayers is a small Brasileirão sample matching data/players.json.
func SeedPlayers() []player.Player {
	return []player.Player{
		{ID: 1, Nome: "Pedro Guilherme", Posicao: player.PositionForward, Time: "Flamengo", Idade: age(27), Pe: "Direito"},
		{ID: 2, Nome: "Giorgian De Arrascaeta", Posicao: player.PositionMidfielder, Time: "Flamengo", Idade: age(30), Pe: "Direito"},
		{ID: 3, Nome: "Léo Ortiz", Posicao: player.PositionDefender, Time: "Flamengo", Idade: age(29), Pe: "Direito"},
		{ID: 4, Nome: "Agustín Rossi", Posicao: player.PositionGoalkeeper, Time: "Flamengo", Idade: age(29), Pe: "Direito"},
		{ID: 5, Nome: "Raphael Veiga", Posicao: player.PositionMidfielder, Time: "Palmeiras", Idade: age(29), Pe: "Esquerdo"},
		{ID: 6, Nome: "Flaco López", Posicao: player.PositionForward, Time: "Palmeiras", Idade: age(24), Pe: "Esquerdo"},
		{ID: 7, Nome: "Gustavo Gómez", Posicao: player.PositionDefender, Time: "Palmeiras", Idade: age(31), Pe: "Direito"},
		{ID: 8, Nome: "Weverton", Posicao: player.PositionGoalkeeper, Time: "Palmeiras", Idade: age(37), Pe: "Direito"},
		{ID: 9, Nome: "Hulk", Posicao: player.PositionForward, Time: "Atlético Mineiro", Idade: age(38), Pe: "Esquerdo"},
		{ID: 10, Nome: "Guilherme Arana", Posicao: player.PositionFullback, Time: "Atlético Mineiro", Idade: age(28), Pe: "Esquerdo"},
		{ID: 11, Nome: "Éverton Ribeiro", Posicao: player.PositionMidfielder, Time: "Bahia", Idade: age(36), Pe: "Esquerdo"},
		{ID: 12, Nome: "Cauly", Posicao: player.PositionMidfielder, Time: "Bahia", Idade: age(29), Pe: "Esquerdo"},
		{ID: 13, Nome: "Germán Cano", Posicao: player.PositionForward, Time: "Fluminense", Idade: age(37), Pe: "Esquerdo"},
		{ID: 14, Nome: "Samuel Xavier", Posicao: player.PositionFullback, Time: "Fluminense", Idade: age(35), Pe: "Direito"},
	}
}

// SeedCoaches matches data/coaches.json.
func SeedCoaches() []coach.Coach {
	return []coach.Coach{
		{ID: 101, Nome: "Abel Ferreira", Nacionalidade: "Portugal", Idade: age(46), UltimoClube: "Palmeiras", Perfil: "Pressão alta e transições rápidas"},
		{ID: 102, Nome: "Filipe Luís", Nacionalidade: "Brasil", Idade: age(40), UltimoClube: "Flamengo", Perfil: "Posse de bola e jogo posicional"},
		{ID: 103, Nome: "Rogério Ceni", Nacionalidade: "Brasil", Idade: age(52), UltimoClube: "Bahia", Perfil: "Construção curta desde o goleiro"},
		{ID: 104, Nome: "Renato Gaúcho", Nacionalidade: "Brasil", Idade: age(62), UltimoClube: "Fluminense", Perfil: "Gestão de grupo e contra-ataque"},
	}
}
