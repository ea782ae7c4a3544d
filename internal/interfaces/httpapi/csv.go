package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/riskibarqy/fut-data/internal/interfaces/csvexport"
	"github.com/riskibarqy/fut-data/internal/platform/logging"
	"github.com/valyala/bytebufferpool"
)

func csvFilename(prefix string, now time.Time) string {
	return fmt.Sprintf("%s_%d.csv", prefix, now.UnixMilli())
}

func writeCSV(ctx context.Context, w http.ResponseWriter, logger *logging.Logger, prefix string, now time.Time, table csvexport.Table) {
	ctx, span := startSpan(ctx, "httpapi.writeCSV")
	defer span.End()

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if err := csvexport.Encode(buf, table); err != nil {
		writeError(ctx, w, logger, fmt.Errorf("encode %s csv: %w", prefix, err))
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, csvFilename(prefix, now)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.B)
}
