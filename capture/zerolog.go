package capture

import (
	"io"
	"time"

	"github.com/rs/zerolog"

	"github.com/philipp01105/logcollector/collector"
)

// Zerolog returns a logger writing to s with no level of its own, so only
// zerolog.GlobalLevel filters its events. Text output goes through a
// colorless zerolog.ConsoleWriter.
func Zerolog(s *collector.Shared, cfg Config) zerolog.Logger {
	var w io.Writer = s
	if !cfg.JSON {
		cw := zerolog.ConsoleWriter{Out: s, NoColor: true, TimeFormat: time.RFC3339}
		if !cfg.Timestamps {
			cw.PartsExclude = []string{zerolog.TimestampFieldName}
		}
		w = cw
	}

	ctx := zerolog.New(w).Level(zerolog.TraceLevel).With()
	if cfg.Timestamps {
		ctx = ctx.Timestamp()
	}
	return ctx.Logger()
}
