// Package ioapi defines the OS access layer consumed by the
// file and directory handles and by the safe operations.
//
// The FS interface is path-string based, every call talks to
// the underlying file system directly and nothing is cached.
// On windows, Native returns the implementation on top of the
// Win32 API, which puts every path into the extended-length
// namespace so that MAX_PATH does not apply.
//
// Failures of the underlying calls are reported as *Error, so
// that callers can tell OS failures apart from anything else.
package ioapi
