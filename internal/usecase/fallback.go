package usecase

import (
	"context"

	"github.com/riskibarqy/fut-data/internal/domain/datamode"
	"github.com/riskibarqy/fut-data/internal/platform/logging"
)

// fallback applies the shared upstream outcome policy: success clears the
// recorded failure, a network failure is recorded and absorbed, anything else
// propagates.
type fallback struct {
	resolver *datamode.Resolver
	logger   *logging.Logger
}

func (f fallback) upstream() bool {
	return f.resolver.Mode() == datamode.ModeUpstream
}

func (f fallback) succeeded(ctx context.Context) {
	f.resolver.Clear()
	annotateSource(ctx, datamode.ModeUpstream)
}

// absorb reports whether err was a network failure that the caller should
// answer with local data.
func (f fallback) absorb(ctx context.Context, entity string, err error) bool {
	if !IsNetworkFailure(err) {
		return false
	}
	f.resolver.RecordFailure(err.Error())
	annotateFallback(ctx, entity, err)
	f.logger.WarnContext(ctx, "upstream network failure, serving local data",
		"entity", entity,
		"error", err,
	)
	return true
}
