// Package capture points common Go loggers at a collector.Shared so tests can
// assert on the exact lines a component logged.
//
// Each constructor returns a logger that emits every level, writes one line
// per call into the collector and, by default, leaves timestamps out so the
// captured lines are stable across runs:
//
//	lines := collector.NewShared()
//	log := capture.Zap(lines, capture.Config{})
//	log.Info("ready", zap.Int("port", 8080))
//	lines.CloneLines() // ["INFO\tready\t{\"port\": 8080}"]
//
// Supported producers:
//
//   - Zap builds a *zap.Logger on a zapcore.Core whose WriteSyncer is the collector.
//   - ZapFromConfig builds a zap.Config with its output redirected to the
//     collector. ZapOutputPath gives a collector:// URL for configs built
//     elsewhere.
//   - Zerolog, Logrus, Slog and Std cover rs/zerolog, sirupsen/logrus,
//     log/slog and the standard log package.
//
// NewT returns a collector bound to a test that replays the captured lines
// through t.Log when the test fails.
package capture
