package capture

import (
	"github.com/sirupsen/logrus"

	"github.com/philipp01105/logcollector/collector"
)

// Logrus returns a new logrus.Logger writing to s at trace level and above
func Logrus(s *collector.Shared, cfg Config) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(s)
	l.SetLevel(logrus.TraceLevel)
	if cfg.JSON {
		l.SetFormatter(&logrus.JSONFormatter{DisableTimestamp: !cfg.Timestamps})
	} else {
		l.SetFormatter(&logrus.TextFormatter{
			DisableColors:    true,
			DisableTimestamp: !cfg.Timestamps,
			FullTimestamp:    true,
		})
	}
	return l
}
