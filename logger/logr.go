package logger

import (
	"fmt"

	"github.com/go-logr/logr"
)

// LogrLogger forwards the messages to a logr sink at
// verbosity 0. Warnings carry a severity key, since logr
// has no warning level of its own.
type LogrLogger struct {
	logger logr.Logger
}

func NewLogrLogger(l logr.Logger) *LogrLogger {
	return &LogrLogger{logger: l}
}

func (l *LogrLogger) Info(format string, args ...interface{}) {
	l.logger.Info(fmt.Sprintf(format, args...))
}

func (l *LogrLogger) Warning(format string, args ...interface{}) {
	l.logger.Info(fmt.Sprintf(format, args...), "severity", "warning")
}

var _ Logger = (*LogrLogger)(nil)
