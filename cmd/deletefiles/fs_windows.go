package main

import (
	"github.com/aegistudio/go-longpath/ioapi"
	"github.com/aegistudio/go-longpath/logger"
)

func newFS() ioapi.FS {
	return ioapi.Native()
}

func openEventLog(source string) (logger.Logger, func() error, error) {
	l, err := logger.NewEventLogger(source)
	if err != nil {
		return nil, nil, err
	}
	return l, l.Close, nil
}

func installEventLog(source string) error {
	return logger.InstallSource(source)
}
