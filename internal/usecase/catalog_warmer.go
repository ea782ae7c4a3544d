package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/sourcegraph/conc/panics"

	"github.com/riskibarqy/fut-data/internal/domain/datamode"
	"github.com/riskibarqy/fut-data/internal/platform/logging"
)

// WarmResult reports one catalog warm-up task.
type WarmResult struct {
	Target     string `json:"target"`
	Status     string `json:"status"`
	Message    string `json:"message,omitempty"`
	Records    int    `json:"records"`
	DurationMs int64  `json:"duration_ms"`
}

const (
	warmStatusSuccess = "success"
	warmStatusFailed  = "failed"
	warmStatusSkipped = "skipped"
)

// CatalogWarmer preloads the upstream cache for the default league and season.
type CatalogWarmer struct {
	provider FootballProvider
	fallback fallback
	defaults Defaults
	workers  int
}

func NewCatalogWarmer(provider FootballProvider, resolver *datamode.Resolver, defaults Defaults, workers int, logger *logging.Logger) *CatalogWarmer {
	if logger == nil {
		logger = logging.Default()
	}
	if workers <= 0 {
		workers = 2
	}
	return &CatalogWarmer{
		provider: provider,
		fallback: fallback{resolver: resolver, logger: logger},
		defaults: defaults,
		workers:  workers,
	}
}

type warmTask struct {
	target string
	run    func(ctx context.Context) (int, error)
}

// Warm runs every warm-up task once. It is a no-op outside upstream mode.
func (w *CatalogWarmer) Warm(ctx context.Context) ([]WarmResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CatalogWarmer.Warm")
	defer span.End()

	tasks := w.tasks()
	if !w.fallback.upstream() {
		out := make([]WarmResult, 0, len(tasks))
		for _, task := range tasks {
			out = append(out, WarmResult{Target: task.target, Status: warmStatusSkipped, Message: "modo local"})
		}
		return out, nil
	}

	pool, err := ants.NewPool(w.workers)
	if err != nil {
		return nil, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	results := make([]WarmResult, len(tasks))
	var workers sync.WaitGroup
	for i, task := range tasks {
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()
			results[i] = w.runTask(ctx, task)
		}); err != nil {
			workers.Done()
			return nil, fmt.Errorf("submit warm task: %w", err)
		}
	}
	workers.Wait()

	return results, nil
}

func (w *CatalogWarmer) tasks() []warmTask {
	return []warmTask{
		{
			target: "teams",
			run: func(ctx context.Context) (int, error) {
				teams, err := w.provider.Teams(ctx, w.defaults.League, w.defaults.Season)
				return len(teams), err
			},
		},
		{
			target: "players",
			run: func(ctx context.Context) (int, error) {
				players, err := w.provider.Players(ctx, PlayerQuery{League: w.defaults.League, Season: w.defaults.Season, Page: 1})
				return len(players), err
			},
		},
	}
}

func (w *CatalogWarmer) runTask(ctx context.Context, task warmTask) WarmResult {
	start := time.Now()
	row := WarmResult{Target: task.target}

	var (
		records int
		err     error
	)
	var catcher panics.Catcher
	catcher.Try(func() {
		records, err = task.run(ctx)
	})
	if recovered := catcher.Recovered(); recovered != nil {
		err = recovered.AsError()
	}

	row.DurationMs = time.Since(start).Milliseconds()
	switch {
	case err == nil:
		w.fallback.succeeded(ctx)
		row.Status = warmStatusSuccess
		row.Records = records
	default:
		if !w.fallback.absorb(ctx, task.target, err) {
			w.fallback.logger.WarnContext(ctx, "catalog warm task failed", "target", task.target, "error", err)
		}
		row.Status = warmStatusFailed
		row.Message = err.Error()
	}
	return row
}
