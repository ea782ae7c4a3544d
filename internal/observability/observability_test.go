package observability

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/riskibarqy/fut-data/internal/config"
	"github.com/riskibarqy/fut-data/internal/platform/logging"
)

func TestStart_AllDisabled(t *testing.T) {
	cfg := config.Config{
		ServiceName:    "fut-data-mvp-backend",
		ServiceVersion: "dev",
		AppEnv:         config.EnvDev,
	}

	stack, err := Start(cfg, logging.NewNop())
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if stack.tracing != nil || stack.profiler != nil || stack.pprof != nil {
		t.Fatalf("expected nothing started, got %+v", stack)
	}
	if err := stack.Shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown: %v", err)
	}
}

func TestStart_UptraceWithoutDSNIsNoop(t *testing.T) {
	stack, err := Start(config.Config{UptraceEnabled: true, AppEnv: config.EnvDev}, nil)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if stack.tracing != nil {
		t.Fatalf("expected tracing to stay off without a DSN")
	}
}

func TestStack_NilAndZeroShutdown(t *testing.T) {
	var nilStack *Stack
	if err := nilStack.Shutdown(context.Background()); err != nil {
		t.Fatalf("nil stack shutdown: %v", err)
	}
	if err := (&Stack{}).Shutdown(context.Background()); err != nil {
		t.Fatalf("zero stack shutdown: %v", err)
	}
}

func TestProfileTags_ReportDataMode(t *testing.T) {
	tags := profileTags(config.Config{AppEnv: config.EnvDev, ServiceName: "fut-data", APIFootballUseLive: true})
	if tags["data_mode"] != "api-football" || tags["env"] != config.EnvDev {
		t.Fatalf("unexpected tags: %v", tags)
	}
	if got := profileTags(config.Config{})["data_mode"]; got != "local" {
		t.Fatalf("expected local data mode tag, got %q", got)
	}
}

func TestPprofMux_ServesIndex(t *testing.T) {
	rec := httptest.NewRecorder()
	pprofMux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/debug/pprof/", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected pprof index, got %d", rec.Code)
	}
}
