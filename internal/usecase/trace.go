package usecase

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/riskibarqy/fut-data/internal/domain/datamode"
)

var (
	usecaseTracer = otel.Tracer("fut-data/internal/usecase")
	noopSpan      = trace.SpanFromContext(context.Background())
)

// startUsecaseSpan only creates child spans; untraced requests stay untraced.
func startUsecaseSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	parent := trace.SpanFromContext(ctx)
	if name == "" || !parent.SpanContext().IsValid() {
		return ctx, noopSpan
	}
	return usecaseTracer.Start(ctx, name)
}

// annotateSource tags the current span with the data source that answered.
func annotateSource(ctx context.Context, mode datamode.Mode) {
	trace.SpanFromContext(ctx).SetAttributes(attribute.String("fut_data.source", string(mode)))
}

func annotateFallback(ctx context.Context, entity string, err error) {
	trace.SpanFromContext(ctx).AddEvent("fallback.local", trace.WithAttributes(
		attribute.String("fut_data.entity", entity),
		attribute.String("error", err.Error()),
	))
	annotateSource(ctx, datamode.ModeLocal)
}
