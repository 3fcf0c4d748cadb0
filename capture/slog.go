package capture

import (
	"log/slog"
	"math"

	"github.com/philipp01105/logcollector/collector"
)

// slogAll enables every level, including custom ones below slog.LevelDebug
const slogAll = slog.Level(math.MinInt)

// Slog returns a slog.Logger writing to s through slog's text or JSON handler.
func Slog(s *collector.Shared, cfg Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: slogAll}
	if !cfg.Timestamps {
		opts.ReplaceAttr = dropTime
	}
	if cfg.JSON {
		return slog.New(slog.NewJSONHandler(s, opts))
	}
	return slog.New(slog.NewTextHandler(s, opts))
}

// dropTime removes the top-level time attribute
func dropTime(groups []string, a slog.Attr) slog.Attr {
	if len(groups) == 0 && a.Key == slog.TimeKey {
		return slog.Attr{}
	}
	return a
}
