package capture

import (
	"testing"

	"github.com/philipp01105/logcollector/collector"
)

// NewT returns an empty collector tied to tb. If tb has failed by the time
// its cleanup runs, the captured lines, including any pending fragment, are
// replayed through tb.Log so they show up next to the failure.
func NewT(tb testing.TB) *collector.Shared {
	tb.Helper()
	s := collector.NewShared()
	tb.Cleanup(func() {
		if !tb.Failed() {
			return
		}
		_ = s.Flush()
		tb.Logf("captured %d log lines:", s.Count())
		for line := range s.Lines() {
			tb.Log(line)
		}
	})
	return s
}
