package capture

import (
	"log"

	"github.com/philipp01105/logcollector/collector"
)

// Std returns a standard library logger writing to s. JSON is ignored.
func Std(s *collector.Shared, cfg Config) *log.Logger {
	flags := 0
	if cfg.Timestamps {
		flags = log.LstdFlags
	}
	return log.New(s, "", flags)
}
