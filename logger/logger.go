package logger

import (
	"fmt"
	"log"
	"sync"
)

// Logger receives printf style messages.
type Logger interface {
	Info(format string, args ...interface{})
	Warning(format string, args ...interface{})
}

// StandardLogger writes to a *log.Logger with a prefix
// telling the level.
type StandardLogger struct {
	logger *log.Logger
}

func NewStandardLogger(l *log.Logger) *StandardLogger {
	return &StandardLogger{logger: l}
}

func (s *StandardLogger) Info(format string, args ...interface{}) {
	s.logger.Printf("[INFO] "+format, args...)
}

func (s *StandardLogger) Warning(format string, args ...interface{}) {
	s.logger.Printf("[WARNING] "+format, args...)
}

// NopLogger discards all messages.
type NopLogger struct{}

func NewNopLogger() *NopLogger {
	return &NopLogger{}
}

func (*NopLogger) Info(format string, args ...interface{}) {}

func (*NopLogger) Warning(format string, args ...interface{}) {}

// MultiLogger forwards every message to all of its loggers
// in order.
type MultiLogger struct {
	loggers []Logger
}

func NewMultiLogger(loggers ...Logger) *MultiLogger {
	return &MultiLogger{loggers: loggers}
}

func (m *MultiLogger) Info(format string, args ...interface{}) {
	for _, l := range m.loggers {
		l.Info(format, args...)
	}
}

func (m *MultiLogger) Warning(format string, args ...interface{}) {
	for _, l := range m.loggers {
		l.Warning(format, args...)
	}
}

// Level of a recorded message.
type Level int

const (
	LevelInfo Level = iota
	LevelWarning
)

func (l Level) String() string {
	switch l {
	case LevelInfo:
		return "INFO"
	case LevelWarning:
		return "WARNING"
	default:
		return fmt.Sprintf("Level(%d)", int(l))
	}
}

// Entry is a message kept by the Recorder.
type Entry struct {
	Level   Level
	Message string
}

// Recorder keeps the formatted messages in memory, so that
// tests can inspect what has been logged.
type Recorder struct {
	mtx     sync.Mutex
	entries []Entry
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) record(level Level, format string, args []interface{}) {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	r.entries = append(r.entries, Entry{
		Level:   level,
		Message: fmt.Sprintf(format, args...),
	})
}

func (r *Recorder) Info(format string, args ...interface{}) {
	r.record(LevelInfo, format, args)
}

func (r *Recorder) Warning(format string, args ...interface{}) {
	r.record(LevelWarning, format, args)
}

// Entries returns a copy of all messages so far.
func (r *Recorder) Entries() []Entry {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	return append([]Entry(nil), r.entries...)
}

// Messages returns the messages of the level so far.
func (r *Recorder) Messages(level Level) []string {
	var result []string
	for _, entry := range r.Entries() {
		if entry.Level == level {
			result = append(result, entry.Message)
		}
	}
	return result
}

// Reset forgets all messages.
func (r *Recorder) Reset() {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	r.entries = nil
}

var (
	_ Logger = (*StandardLogger)(nil)
	_ Logger = (*NopLogger)(nil)
	_ Logger = (*MultiLogger)(nil)
	_ Logger = (*Recorder)(nil)
)
