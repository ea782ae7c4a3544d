package httpapi

import (
	"net/http"
	"strconv"

	"github.com/riskibarqy/fut-data/internal/domain/datamode"
	"github.com/riskibarqy/fut-data/internal/domain/player"
	"github.com/riskibarqy/fut-data/internal/domain/ranking"
	"github.com/riskibarqy/fut-data/internal/interfaces/csvexport"
	"github.com/riskibarqy/fut-data/internal/usecase"
)

type playerFiltersDTO struct {
	Posicao string `json:"posicao"`
	Time    string `json:"time"`
	Q       string `json:"q"`
	League  string `json:"league"`
	Season  string `json:"season"`
	Page    string `json:"page"`
}

type playersResponse struct {
	Count   int              `json:"count"`
	Filters playerFiltersDTO `json:"filters"`
	Source  datamode.Mode    `json:"source"`
	Players []player.Player  `json:"players"`
}

type playerDetailResponse struct {
	Player    player.Player    `json:"player"`
	Metrics   player.Metrics   `json:"metrics"`
	Percentis map[string]int   `json:"percentis"`
	Context   playerContextDTO `json:"context"`
	Source    datamode.Mode    `json:"source"`
}

type playerContextDTO struct {
	Comparacao string `json:"comparacao"`
	Amostra    int    `json:"amostra"`
}

type teamsResponse struct {
	Count  int                 `json:"count"`
	Teams  []ranking.NameCount `json:"teams"`
	Source datamode.Mode       `json:"source"`
}

type positionsResponse struct {
	Count     int                 `json:"count"`
	Positions []ranking.NameCount `json:"positions"`
	Source    datamode.Mode       `json:"source"`
}

type rankingsResponse struct {
	Filters   rankingFiltersDTO          `json:"filters"`
	Rankings  map[string][]ranking.Entry `json:"rankings"`
	CountPool int                        `json:"count_pool"`
	Source    datamode.Mode              `json:"source"`
}

type rankingFiltersDTO struct {
	Posicao string `json:"posicao"`
}

func playerFilterFromRequest(r *http.Request) usecase.PlayerFilter {
	query := r.URL.Query()
	return usecase.PlayerFilter{
		Posicao: query.Get("posicao"),
		Time:    query.Get("time"),
		Q:       query.Get("q"),
		League:  query.Get("league"),
		Season:  query.Get("season"),
		Page:    query.Get("page"),
	}
}

func (h *Handler) echoPlayerFilters(filter usecase.PlayerFilter) playerFiltersDTO {
	out := playerFiltersDTO{
		Posicao: filter.Posicao,
		Time:    filter.Time,
		Q:       filter.Q,
		League:  filter.League,
		Season:  filter.Season,
		Page:    filter.Page,
	}
	if out.League == "" {
		out.League = strconv.Itoa(h.info.DefaultLeague)
	}
	if out.Season == "" {
		out.Season = strconv.Itoa(h.info.DefaultSeason)
	}
	if out.Page == "" {
		out.Page = "1"
	}
	return out
}

func (h *Handler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayers")
	defer span.End()

	filter := playerFilterFromRequest(r)
	players, err := h.playerService.Search(ctx, filter)
	if err != nil {
		writeError(ctx, w, h.logger, err)
		return
	}
	if players == nil {
		players = []player.Player{}
	}

	writeJSON(ctx, w, http.StatusOK, playersResponse{
		Count:   len(players),
		Filters: h.echoPlayerFilters(filter),
		Source:  h.source(),
		Players: players,
	})
}

func (h *Handler) ExportPlayersCSV(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ExportPlayersCSV")
	defer span.End()

	players, err := h.playerService.Search(ctx, playerFilterFromRequest(r))
	if err != nil {
		writeError(ctx, w, h.logger, err)
		return
	}

	writeCSV(ctx, w, h.logger, "players", h.now(), csvexport.Players(players))
}

func (h *Handler) GetPlayerByID(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayerByID")
	defer span.End()

	playerID, err := usecase.ParsePositiveInt(r.PathValue("id"), "ID do jogador")
	if err != nil {
		writeError(ctx, w, h.logger, err)
		return
	}

	detail, err := h.playerService.Get(ctx, playerID, playerFilterFromRequest(r))
	if err != nil {
		writeError(ctx, w, h.logger, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, playerDetailResponse{
		Player:    detail.Player,
		Metrics:   detail.Metrics,
		Percentis: detail.Percentis,
		Context: playerContextDTO{
			Comparacao: detail.Comparacao,
			Amostra:    detail.Amostra,
		},
		Source: h.source(),
	})
}

func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeams")
	defer span.End()

	query := r.URL.Query()
	teams, err := h.teamService.List(ctx, query.Get("league"), query.Get("season"))
	if err != nil {
		writeError(ctx, w, h.logger, err)
		return
	}
	if teams == nil {
		teams = []ranking.NameCount{}
	}

	writeJSON(ctx, w, http.StatusOK, teamsResponse{
		Count:  len(teams),
		Teams:  teams,
		Source: h.source(),
	})
}

func (h *Handler) ListPositions(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPositions")
	defer span.End()

	positions, err := h.playerService.Positions(ctx, playerFilterFromRequest(r))
	if err != nil {
		writeError(ctx, w, h.logger, err)
		return
	}
	if positions == nil {
		positions = []ranking.NameCount{}
	}

	writeJSON(ctx, w, http.StatusOK, positionsResponse{
		Count:     len(positions),
		Positions: positions,
		Source:    h.source(),
	})
}

func (h *Handler) GetRankings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetRankings")
	defer span.End()

	filter := playerFilterFromRequest(r)
	rankings, err := h.playerService.Rankings(ctx, filter.Posicao, filter)
	if err != nil {
		writeError(ctx, w, h.logger, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, rankingsResponse{
		Filters:   rankingFiltersDTO{Posicao: filter.Posicao},
		Rankings:  rankings.ByMetric,
		CountPool: rankings.Pool,
		Source:    h.source(),
	})
}
