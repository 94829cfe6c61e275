// Package longpath provides file and directory handles whose
// operations are not limited by MAX_PATH on windows.
//
// A handle is nothing more than a path string and the OS
// access layer it lives on. The path is kept exactly as the
// caller has spelled it, and every query goes down to the
// file system, nothing is cached in the handle. With the
// native access layer from ioapi.Native, paths are put into
// the extended-length namespace right before calling into
// the Win32 API.
//
// The error tolerant operations built on top of the access
// layer live in the safeops subpackage.
package longpath
