package logging

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	cases := map[string]Level{
		"debug":   LevelDebug,
		" WARN ":  LevelWarn,
		"warning": LevelWarn,
		"error":   LevelError,
		"":        LevelInfo,
		"verbose": LevelInfo,
	}
	for raw, want := range cases {
		if got := ParseLevel(raw); got != want {
			t.Fatalf("ParseLevel(%q)=%s want=%s", raw, got, want)
		}
	}
}

func TestNewJSONWriter_WritesKeyValues(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := NewJSONWriter(&buf, LevelInfo)

	logger.With("service", "fut-data").WarnContext(context.Background(), "upstream fallback",
		"endpoint", "/players",
		"error", errors.New("dial tcp: connection refused"),
	)
	logger.Debug("dropped", "k", "v")
	_ = logger.Sync()

	out := buf.String()
	for _, want := range []string{`"level":"WARN"`, `"msg":"upstream fallback"`, `"service":"fut-data"`, `"endpoint":"/players"`, `connection refused`} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %s in log output: %s", want, out)
		}
	}
	if strings.Contains(out, "dropped") {
		t.Fatalf("debug entry should be filtered at info level: %s", out)
	}
}

func TestLogger_RedactsSecretKeys(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := NewJSONWriter(&buf, LevelInfo)

	logger.Info("upstream configured", "api_football_api_key", "abc123", "UPTRACE_DSN", "https://token@uptrace.dev/1", "league", 71)

	out := buf.String()
	if strings.Contains(out, "abc123") || strings.Contains(out, "token@") {
		t.Fatalf("secret leaked into log output: %s", out)
	}
	if !strings.Contains(out, `"api_football_api_key":"REDACTED"`) || !strings.Contains(out, `"league":71`) {
		t.Fatalf("unexpected log output: %s", out)
	}
}

func TestLogger_ChildrenShareSync(t *testing.T) {
	t.Parallel()

	parent := NewJSONWriter(&bytes.Buffer{}, LevelInfo)
	child := parent.With("component", "apifootball")
	if parent.syncOnce != child.syncOnce {
		t.Fatalf("expected child logger to share the sync guard")
	}
	if err := child.Sync(); err != nil {
		t.Fatalf("unexpected sync error: %v", err)
	}
	if err := parent.Sync(); err != nil {
		t.Fatalf("second sync should be a no-op, got %v", err)
	}
}

func TestNilLoggerFallsBackToDefault(t *testing.T) {
	var logger *Logger
	logger.Info("no panic")
}
