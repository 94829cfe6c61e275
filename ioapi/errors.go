package ioapi

import (
	"os"

	"github.com/pkg/errors"
)

var (
	// ErrSharingViolation is reported when the path is in
	// use by another open handle.
	ErrSharingViolation = errors.New("the process cannot access the file because it is being used by another process")

	// ErrNotSupported is reported by implementations which
	// cannot serve a call at all.
	ErrNotSupported = errors.New("operation not supported")
)

// Error records a failure of the underlying OS call together
// with the operation and the path that caused it.
type Error struct {
	Op   string
	Path string
	Err  error
}

func (e *Error) Error() string {
	return e.Op + " " + e.Path + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewError wraps err as an OS failure of op on path. A nil
// err yields nil.
func NewError(op, path string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Op: op, Path: path, Err: err}
}

// IsAccessDenied tells whether err reports missing access
// rights, ERROR_ACCESS_DENIED included.
func IsAccessDenied(err error) bool {
	return errors.Is(err, os.ErrPermission)
}

// IsNotExist tells whether err reports a missing file, path
// or directory.
func IsNotExist(err error) bool {
	return errors.Is(err, os.ErrNotExist)
}

// IsSystemError tells whether err originates from a failed
// call into the OS layer.
func IsSystemError(err error) bool {
	var target *Error
	return errors.As(err, &target)
}
