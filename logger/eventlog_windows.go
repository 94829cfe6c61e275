package logger

import (
	"fmt"

	"github.com/pkg/errors"
	"golang.org/x/sys/windows/svc/eventlog"
)

const (
	EventIDInfo    uint32 = 1
	EventIDWarning uint32 = 2
)

// EventLogger writes to the windows event log. The source
// must have been registered, e.g. by InstallSource.
type EventLogger struct {
	log *eventlog.Log
}

// InstallSource registers the event source name, which
// requires administrative privileges.
func InstallSource(name string) error {
	err := eventlog.InstallAsEventCreate(
		name, eventlog.Info|eventlog.Warning)
	return errors.Wrapf(err, "install event source %q", name)
}

func NewEventLogger(source string) (*EventLogger, error) {
	elog, err := eventlog.Open(source)
	if err != nil {
		return nil, errors.Wrapf(err, "open event log %q", source)
	}
	return &EventLogger{log: elog}, nil
}

func (e *EventLogger) Info(format string, args ...interface{}) {
	// XXX: failing to log must not fail the operation.
	_ = e.log.Info(EventIDInfo, fmt.Sprintf(format, args...))
}

func (e *EventLogger) Warning(format string, args ...interface{}) {
	_ = e.log.Warning(EventIDWarning, fmt.Sprintf(format, args...))
}

func (e *EventLogger) Close() error {
	if e.log == nil {
		return nil
	}
	return e.log.Close()
}

var _ Logger = (*EventLogger)(nil)
