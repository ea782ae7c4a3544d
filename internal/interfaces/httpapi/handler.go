package httpapi

import (
	"net/http"
	"strconv"
	"time"

	"github.com/riskibarqy/fut-data/internal/domain/datamode"
	"github.com/riskibarqy/fut-data/internal/platform/cache"
	"github.com/riskibarqy/fut-data/internal/platform/logging"
	"github.com/riskibarqy/fut-data/internal/platform/resilience"
	"github.com/riskibarqy/fut-data/internal/usecase"
)

// ServiceInfo is the static part of the /health report.
type ServiceInfo struct {
	ServiceName    string
	DatasetPlayers string
	DatasetCoaches string
	CORSAllowed    []string
	BaseURL        string
	DefaultLeague  int
	DefaultSeason  int
	// Breaker reports the upstream circuit breaker; nil omits it.
	Breaker func() resilience.Snapshot
}

type Handler struct {
	playerService *usecase.PlayerService
	teamService   *usecase.TeamService
	coachService  *usecase.CoachService
	resolver      *datamode.Resolver
	cache         *cache.Store
	info          ServiceInfo
	logger        *logging.Logger
	now           func() time.Time
}

func NewHandler(
	playerService *usecase.PlayerService,
	teamService *usecase.TeamService,
	coachService *usecase.CoachService,
	resolver *datamode.Resolver,
	cacheStore *cache.Store,
	info ServiceInfo,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	if info.CORSAllowed == nil {
		info.CORSAllowed = []string{}
	}

	return &Handler{
		playerService: playerService,
		teamService:   teamService,
		coachService:  coachService,
		resolver:      resolver,
		cache:         cacheStore,
		info:          info,
		logger:        logger,
		now:           time.Now,
	}
}

type healthResponse struct {
	OK             bool           `json:"ok"`
	Service        string         `json:"service"`
	Time           string         `json:"time"`
	DatasetPlayers string         `json:"dataset_players"`
	DatasetCoaches string         `json:"dataset_coaches"`
	CORSAllowed    []string       `json:"cors_allowed"`
	DataMode       datamode.Mode  `json:"data_mode"`
	APIFootball    apiFootballDTO `json:"api_football"`
	Cache          *cache.Stats   `json:"cache,omitempty"`
}

type apiFootballDTO struct {
	Enabled       bool   `json:"enabled"`
	HasKey        bool   `json:"has_key"`
	BaseURL       string `json:"base_url"`
	DefaultLeague string `json:"default_league"`
	DefaultSeason string `json:"default_season"`
	ModeReason    string `json:"mode_reason"`

	CircuitBreaker *resilience.Snapshot `json:"circuit_breaker,omitempty"`
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Health")
	defer span.End()

	resp := healthResponse{
		OK:             true,
		Service:        h.info.ServiceName,
		Time:           h.now().UTC().Format("2006-01-02T15:04:05.000Z07:00"),
		DatasetPlayers: h.info.DatasetPlayers,
		DatasetCoaches: h.info.DatasetCoaches,
		CORSAllowed:    h.info.CORSAllowed,
		DataMode:       h.resolver.EffectiveMode(),
		APIFootball: apiFootballDTO{
			Enabled:       h.resolver.LiveEnabled(),
			HasKey:        h.resolver.HasKey(),
			BaseURL:       h.info.BaseURL,
			DefaultLeague: strconv.Itoa(h.info.DefaultLeague),
			DefaultSeason: strconv.Itoa(h.info.DefaultSeason),
			ModeReason:    h.resolver.Reason(),
		},
	}
	if h.info.Breaker != nil {
		snap := h.info.Breaker()
		resp.APIFootball.CircuitBreaker = &snap
	}
	if h.cache != nil {
		stats := h.cache.Stats()
		resp.Cache = &stats
	}

	writeJSON(ctx, w, http.StatusOK, resp)
}

func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.NotFound")
	defer span.End()

	writeJSON(ctx, w, http.StatusNotFound, errorBody{Error: routeNotFoundMessage})
}

// source is read after the service call so a fallback during the call is reported.
func (h *Handler) source() datamode.Mode {
	return h.resolver.EffectiveMode()
}
