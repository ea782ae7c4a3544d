// Package jsonfile serves the local dataset from JSON array files. Files are
// read on every call so edits show up without a restart.
package jsonfile

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"

	"github.com/riskibarqy/fut-data/internal/platform/logging"
)

const (
	PlayersFile = "players.json"
	CoachesFile = "coaches.json"
)

type loader struct {
	path      string
	label     string
	validator *validator.Validate
	logger    *logging.Logger
}

func newLoader(dataDir, file string, logger *logging.Logger) loader {
	if logger == nil {
		logger = logging.Default()
	}
	return loader{
		path:      filepath.Join(dataDir, file),
		label:     file,
		validator: validator.New(),
		logger:    logger,
	}
}

// loadArray decodes the file as a JSON array of T. A missing, unreadable or
// non-array file yields an empty list; records that fail validation are
// skipped.
func loadArray[T any](ctx context.Context, l loader) []T {
	raw, err := os.ReadFile(l.path)
	if err != nil {
		l.logger.ErrorContext(ctx, "read local dataset failed", "file", l.label, "error", err)
		return []T{}
	}

	var records []json.RawMessage
	if err := sonic.Unmarshal(raw, &records); err != nil {
		l.logger.ErrorContext(ctx, "decode local dataset failed", "file", l.label, "error", err)
		return []T{}
	}

	out := make([]T, 0, len(records))
	for i, rec := range records {
		var item T
		if err := sonic.Unmarshal(rec, &item); err != nil {
			l.logger.WarnContext(ctx, "skip malformed local record", "file", l.label, "index", i, "error", err)
			continue
		}
		if err := l.validator.StructCtx(ctx, item); err != nil {
			l.logger.WarnContext(ctx, "skip invalid local record", "file", l.label, "index", i, "error", err)
			continue
		}
		out = append(out, item)
	}
	return out
}
