package capture

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/logcollector/collector"
)

// ZapScheme is the URL scheme RegisterZapSink installs in zap's sink registry.
const ZapScheme = "collector"

var (
	_ zapcore.WriteSyncer = (*collector.Collector)(nil)
	_ zap.Sink            = (*collector.Shared)(nil)
)

var (
	registerOnce sync.Once
	registerErr  error

	zapOutputsMu sync.RWMutex
	zapOutputs   = map[string]*collector.Shared{}

	configSeq atomic.Uint64
)

// Zap returns a logger that writes every entry of every level to s.
// Text output uses zap's console encoder, JSON output its production encoder.
func Zap(s *collector.Shared, cfg Config, opts ...zap.Option) *zap.Logger {
	return zap.New(zapcore.NewCore(zapEncoder(cfg), s, zapcore.DebugLevel), opts...)
}

func zapEncoder(cfg Config) zapcore.Encoder {
	if cfg.JSON {
		ec := zap.NewProductionEncoderConfig()
		if !cfg.Timestamps {
			ec.TimeKey = ""
		}
		return zapcore.NewJSONEncoder(ec)
	}

	ec := zap.NewDevelopmentEncoderConfig()
	if !cfg.Timestamps {
		ec.TimeKey = ""
	}
	return zapcore.NewConsoleEncoder(ec)
}

// RegisterZapSink registers the collector:// scheme with zap. It is safe to
// call more than once; every call returns the result of the first.
func RegisterZapSink() error {
	registerOnce.Do(func() {
		if err := zap.RegisterSink(ZapScheme, openZapSink); err != nil {
			registerErr = fmt.Errorf("capture: register zap sink: %w", err)
		}
	})
	return registerErr
}

// ZapOutputPath binds s to name and returns the matching collector:// URL for
// use in zap.Config.OutputPaths, along with a func that removes the binding.
// Any name is allowed, including ones with '/' such as subtest names. Binding
// a name again replaces the previous collector. RegisterZapSink must have been
// called before zap opens the path; loggers already built keep their sink
// after unbind.
func ZapOutputPath(name string, s *collector.Shared) (path string, unbind func()) {
	zapOutputsMu.Lock()
	zapOutputs[name] = s
	zapOutputsMu.Unlock()

	u := url.URL{Scheme: ZapScheme, Path: "/" + name}
	return u.String(), func() {
		zapOutputsMu.Lock()
		if zapOutputs[name] == s {
			delete(zapOutputs, name)
		}
		zapOutputsMu.Unlock()
	}
}

// ZapFromConfig builds zcfg with its output redirected to s.
// zcfg's other settings, including its level and sampling, are kept.
func ZapFromConfig(zcfg zap.Config, s *collector.Shared, opts ...zap.Option) (*zap.Logger, error) {
	if err := RegisterZapSink(); err != nil {
		return nil, err
	}

	// zap resolves the sink during Build, so the binding only has to live that long
	path, unbind := ZapOutputPath("config-"+strconv.FormatUint(configSeq.Add(1), 10), s)
	defer unbind()
	zcfg.OutputPaths = []string{path}

	l, err := zcfg.Build(opts...)
	if err != nil {
		return nil, fmt.Errorf("capture: build zap logger: %w", err)
	}
	return l, nil
}

// zapOutputName recovers the bound name from both collector:///name and the
// hand-written collector://name forms.
func zapOutputName(u *url.URL) string {
	return strings.TrimPrefix(u.Host+u.Path, "/")
}

func openZapSink(u *url.URL) (zap.Sink, error) {
	name := zapOutputName(u)
	zapOutputsMu.RLock()
	s, ok := zapOutputs[name]
	zapOutputsMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("capture: no collector bound to %q", name)
	}
	return s, nil
}
