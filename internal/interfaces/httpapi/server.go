package httpapi

import (
	"net/http"
	"time"

	"github.com/riskibarqy/fut-data/internal/platform/logging"
)

type RouterOptions struct {
	SwaggerEnabled     bool
	CORSAllowedOrigins []string
	RateLimitEnabled   bool
	RateLimitRequests  int
	RateLimitWindow    time.Duration
}

func NewRouter(handler *Handler, logger *logging.Logger, opts RouterOptions) http.Handler {
	if logger == nil {
		logger = logging.Default()
	}

	mux := http.NewServeMux()
	registerSystemRoutes(mux, handler, opts.SwaggerEnabled)
	registerPlayerRoutes(mux, handler)
	registerCoachRoutes(mux, handler)
	mux.HandleFunc("/", handler.NotFound)

	var root http.Handler = recoverPanic(logger, mux)
	if opts.RateLimitEnabled && opts.RateLimitRequests > 0 {
		root = RateLimit(opts.RateLimitRequests, opts.RateLimitWindow, logger, root)
	}

	return RequestTracing(RequestLogging(logger, CORS(opts.CORSAllowedOrigins, logger, root)))
}

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, swaggerEnabled bool) {
	mux.HandleFunc("GET /health", handler.Health)
	if swaggerEnabled {
		mux.HandleFunc("GET /openapi.yaml", handler.OpenAPI)
		mux.HandleFunc("GET /docs", handler.SwaggerUI)
	}
}

func registerPlayerRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /api/players", handler.ListPlayers)
	mux.HandleFunc("GET /api/players.csv", handler.ExportPlayersCSV)
	mux.HandleFunc("GET /api/players/{id}", handler.GetPlayerByID)
	mux.HandleFunc("GET /api/teams", handler.ListTeams)
	mux.HandleFunc("GET /api/positions", handler.ListPositions)
	mux.HandleFunc("GET /api/rankings", handler.GetRankings)
}

func registerCoachRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /api/coaches", handler.ListCoaches)
	mux.HandleFunc("GET /api/coaches.csv", handler.ExportCoachesCSV)
	mux.HandleFunc("GET /api/coaches/{id}", handler.GetCoachByID)
}

func recoverPanic(logger *logging.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := startSpan(r.Context(), "httpapi.recoverPanic")
		defer span.End()

		defer func() {
			if rec := recover(); rec != nil {
				logger.ErrorContext(ctx, "panic recovered", "panic", rec, "path", r.URL.Path)
				writeInternalError(ctx, w)
			}
		}()
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
