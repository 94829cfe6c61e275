//go:build !windows

package main

import (
	"github.com/pkg/errors"
	"github.com/spf13/afero"

	"github.com/aegistudio/go-longpath/aferofs"
	"github.com/aegistudio/go-longpath/ioapi"
	"github.com/aegistudio/go-longpath/logger"
)

func newFS() ioapi.FS {
	return aferofs.New(afero.NewOsFs())
}

func openEventLog(source string) (logger.Logger, func() error, error) {
	return nil, nil, errors.Errorf(
		"event log source %q: only available on windows", source)
}

func installEventLog(source string) error {
	return errors.Errorf(
		"event log source %q: only available on windows", source)
}
