package app

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"

	"github.com/riskibarqy/fut-data/external/apifootball"
	"github.com/riskibarqy/fut-data/internal/config"
	"github.com/riskibarqy/fut-data/internal/domain/coach"
	"github.com/riskibarqy/fut-data/internal/domain/datamode"
	"github.com/riskibarqy/fut-data/internal/domain/player"
	repocache "github.com/riskibarqy/fut-data/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/fut-data/internal/infrastructure/repository/jsonfile"
	"github.com/riskibarqy/fut-data/internal/interfaces/httpapi"
	"github.com/riskibarqy/fut-data/internal/platform/cache"
	"github.com/riskibarqy/fut-data/internal/platform/logging"
	"github.com/riskibarqy/fut-data/internal/platform/resilience"
	"github.com/riskibarqy/fut-data/internal/usecase"
)

const warmupWorkers = 2

// App holds the wired services shared by the HTTP server and the export CLI.
type App struct {
	Config        config.Config
	Logger        *logging.Logger
	Resolver      *datamode.Resolver
	Cache         *cache.Store
	Upstream      *apifootball.Client
	PlayerService *usecase.PlayerService
	TeamService   *usecase.TeamService
	CoachService  *usecase.CoachService
	Warmer        *usecase.CatalogWarmer
}

func New(cfg config.Config, logger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.DataDir == "" {
		return nil, fmt.Errorf("data dir cannot be empty")
	}

	store := cache.NewStore(cfg.CacheMaxEntries)
	resolver := datamode.NewResolver(cfg.APIFootballUseLive, cfg.APIFootballKey)

	var playerRepo player.Repository = jsonfile.NewPlayerRepository(cfg.DataDir, logger)
	var coachRepo coach.Repository = jsonfile.NewCoachRepository(cfg.DataDir, logger)
	if cfg.LocalCacheTTL > 0 {
		playerRepo = repocache.NewPlayerRepository(playerRepo, store, cfg.LocalCacheTTL)
		coachRepo = repocache.NewCoachRepository(coachRepo, store, cfg.LocalCacheTTL)
	}

	client := apifootball.NewClient(apifootball.ClientConfig{
		BaseURL: cfg.APIFootballBaseURL,
		APIKey:  cfg.APIFootballKey,
		Timeout: cfg.APIFootballTimeout,
		Cache:   store,
		Logger:  logger,
		CircuitBreaker: resilience.BreakerConfig{
			Enabled:          cfg.APIFootballCircuitEnabled,
			FailureThreshold: cfg.APIFootballCircuitFailureCount,
			OpenTimeout:      cfg.APIFootballCircuitOpenTimeout,
			Probes:           cfg.APIFootballCircuitHalfOpenMaxReq,
		},
	})
	provider := apifootball.NewProvider(client)

	defaults := usecase.Defaults{
		League: cfg.APIFootballDefaultLeague,
		Season: cfg.APIFootballDefaultSeason,
	}

	logger.Info("data mode resolved",
		"mode", resolver.Mode(),
		"reason", resolver.Reason(),
		"data_dir", cfg.DataDir,
	)

	return &App{
		Config:        cfg,
		Logger:        logger,
		Resolver:      resolver,
		Cache:         store,
		Upstream:      client,
		PlayerService: usecase.NewPlayerService(playerRepo, provider, resolver, defaults, logger),
		TeamService:   usecase.NewTeamService(playerRepo, provider, resolver, defaults, logger),
		CoachService:  usecase.NewCoachService(coachRepo, provider, resolver, logger),
		Warmer:        usecase.NewCatalogWarmer(provider, resolver, defaults, warmupWorkers, logger),
	}, nil
}

// Router builds the HTTP handler tree.
func (a *App) Router() http.Handler {
	handler := httpapi.NewHandler(
		a.PlayerService,
		a.TeamService,
		a.CoachService,
		a.Resolver,
		a.Cache,
		httpapi.ServiceInfo{
			ServiceName:    a.Config.ServiceName,
			DatasetPlayers: filepath.Join(a.Config.DataDir, jsonfile.PlayersFile),
			DatasetCoaches: filepath.Join(a.Config.DataDir, jsonfile.CoachesFile),
			CORSAllowed:    a.Config.CORSAllowedOrigins,
			BaseURL:        a.Config.APIFootballBaseURL,
			DefaultLeague:  a.Config.APIFootballDefaultLeague,
			DefaultSeason:  a.Config.APIFootballDefaultSeason,
			Breaker:        a.Upstream.Breaker,
		},
		a.Logger,
	)

	return httpapi.NewRouter(handler, a.Logger, httpapi.RouterOptions{
		SwaggerEnabled:     a.Config.SwaggerEnabled,
		CORSAllowedOrigins: a.Config.CORSAllowedOrigins,
		RateLimitEnabled:   a.Config.RateLimitEnabled,
		RateLimitRequests:  a.Config.RateLimitRequests,
		RateLimitWindow:    a.Config.RateLimitWindow,
	})
}

// WarmUp preloads the upstream cache when API_FOOTBALL_WARMUP_ENABLED is set.
func (a *App) WarmUp(ctx context.Context) {
	if !a.Config.APIFootballWarmupEnabled {
		return
	}

	results, err := a.Warmer.Warm(ctx)
	if err != nil {
		a.Logger.WarnContext(ctx, "cache warm-up failed", "error", err)
		return
	}
	for _, result := range results {
		a.Logger.InfoContext(ctx, "cache warm-up",
			"target", result.Target,
			"status", result.Status,
			"records", result.Records,
			"duration_ms", result.DurationMs,
			"message", result.Message,
		)
	}
}

func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, *App, error) {
	application, err := New(cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      application.Router(),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, application, nil
}
