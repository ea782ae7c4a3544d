// Package observability starts the optional tracing and profiling sidecars:
// Uptrace (OpenTelemetry), Pyroscope and a private pprof listener.
package observability

import (
	"context"
	"net/http"
	"net/http/pprof"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/grafana/pyroscope-go"
	"github.com/uptrace/uptrace-go/uptrace"
	"go.opentelemetry.io/otel/attribute"

	"github.com/riskibarqy/fut-data/internal/config"
	"github.com/riskibarqy/fut-data/internal/platform/logging"
)

const pprofStopTimeout = 5 * time.Second

// Stack holds whatever was started. Its zero value shuts down cleanly.
type Stack struct {
	logger   *logging.Logger
	tracing  func(context.Context) error
	profiler *pyroscope.Profiler
	pprof    *http.Server
}

// Start brings up every sidecar enabled in cfg. On error, anything already
// started is stopped before returning.
func Start(cfg config.Config, logger *logging.Logger) (*Stack, error) {
	if logger == nil {
		logger = logging.Default()
	}
	stack := &Stack{logger: logger}

	stack.tracing = startTracing(cfg, logger)

	profiler, err := startProfiling(cfg, logger)
	if err != nil {
		_ = stack.Shutdown(context.Background())
		return nil, errors.Wrap(err, "start pyroscope")
	}
	stack.profiler = profiler

	stack.pprof = startPprof(cfg, logger)
	return stack, nil
}

// Shutdown stops pprof, flushes profiles, then flushes spans.
func (s *Stack) Shutdown(ctx context.Context) error {
	if s == nil {
		return nil
	}
	logger := s.logger
	if logger == nil {
		logger = logging.Default()
	}

	var errs error
	if s.pprof != nil {
		stopCtx, cancel := context.WithTimeout(ctx, pprofStopTimeout)
		if err := s.pprof.Shutdown(stopCtx); err != nil {
			errs = errors.CombineErrors(errs, errors.Wrap(err, "stop pprof"))
		} else {
			logger.Info("pprof server stopped")
		}
		cancel()
	}
	if s.profiler != nil {
		if err := s.profiler.Stop(); err != nil {
			errs = errors.CombineErrors(errs, errors.Wrap(err, "stop pyroscope"))
		}
	}
	if s.tracing != nil {
		if err := s.tracing(ctx); err != nil {
			errs = errors.CombineErrors(errs, errors.Wrap(err, "shutdown uptrace"))
		}
	}
	return errs
}

func startTracing(cfg config.Config, logger *logging.Logger) func(context.Context) error {
	switch {
	case !cfg.UptraceEnabled:
		logger.Info("uptrace disabled", "reason", "UPTRACE_ENABLED=false")
		return nil
	case strings.TrimSpace(cfg.UptraceDSN) == "":
		logger.Info("uptrace disabled", "reason", "UPTRACE_DSN empty")
		return nil
	}

	uptrace.ConfigureOpentelemetry(
		uptrace.WithDSN(cfg.UptraceDSN),
		uptrace.WithServiceName(cfg.ServiceName),
		uptrace.WithServiceVersion(cfg.ServiceVersion),
		uptrace.WithDeploymentEnvironment(cfg.AppEnv),
		uptrace.WithResourceAttributes(
			attribute.Bool("fut_data.api_football.live", cfg.APIFootballUseLive),
			attribute.Int("fut_data.api_football.default_league", cfg.APIFootballDefaultLeague),
			attribute.Int("fut_data.api_football.default_season", cfg.APIFootballDefaultSeason),
		),
	)
	logger.Info("uptrace enabled", "environment", cfg.AppEnv)

	return uptrace.Shutdown
}

func startProfiling(cfg config.Config, logger *logging.Logger) (*pyroscope.Profiler, error) {
	if !cfg.PyroscopeEnabled {
		logger.Info("pyroscope disabled", "reason", "PYROSCOPE_ENABLED=false")
		return nil, nil
	}

	profiler, err := pyroscope.Start(pyroscope.Config{
		ApplicationName:   cfg.PyroscopeAppName,
		ServerAddress:     cfg.PyroscopeServerAddress,
		AuthToken:         cfg.PyroscopeAuthToken,
		BasicAuthUser:     cfg.PyroscopeBasicAuthUser,
		BasicAuthPassword: cfg.PyroscopeBasicAuthPassword,
		UploadRate:        cfg.PyroscopeUploadRate,
		Tags:              profileTags(cfg),
		ProfileTypes: []pyroscope.ProfileType{
			pyroscope.ProfileCPU,
			pyroscope.ProfileAllocSpace,
			pyroscope.ProfileInuseSpace,
			pyroscope.ProfileGoroutines,
		},
	})
	if err != nil {
		return nil, err
	}
	logger.Info("pyroscope enabled", "server_address", cfg.PyroscopeServerAddress, "application", cfg.PyroscopeAppName)

	return profiler, nil
}

func profileTags(cfg config.Config) map[string]string {
	mode := "local"
	if cfg.APIFootballUseLive {
		mode = "api-football"
	}
	return map[string]string{
		"env":       cfg.AppEnv,
		"service":   cfg.ServiceName,
		"version":   cfg.ServiceVersion,
		"data_mode": mode,
	}
}

// startPprof serves runtime profiles on PPROF_ADDR, apart from the public API.
func startPprof(cfg config.Config, logger *logging.Logger) *http.Server {
	if !cfg.PprofEnabled {
		logger.Info("pprof disabled", "reason", "PPROF_ENABLED=false")
		return nil
	}

	srv := &http.Server{
		Addr:              cfg.PprofAddr,
		Handler:           pprofMux(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		logger.Info("pprof server starting", "addr", cfg.PprofAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("pprof server failed", "addr", cfg.PprofAddr, "error", err)
		}
	}()
	return srv
}

func pprofMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /debug/pprof/", pprof.Index)
	mux.HandleFunc("GET /debug/pprof/cmdline", pprof.Cmdline)
	mux.HandleFunc("GET /debug/pprof/profile", pprof.Profile)
	mux.HandleFunc("GET /debug/pprof/symbol", pprof.Symbol)
	mux.HandleFunc("GET /debug/pprof/trace", pprof.Trace)
	return mux
}
