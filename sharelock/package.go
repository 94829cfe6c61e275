// Package sharelock emulates the sharing rules that Windows
// enforces between open file handles.
//
// Every handle records the access it was opened for and the
// access it lets other handles have. A new handle is granted
// only when it shares the access of every handle already
// open on the path, and they all share the access it asks
// for.
//
// Deleting or renaming a path takes it exclusively. That
// fails when a handle on the path does not share deletion,
// or when anything below the path is open, and nothing can
// be opened on or below the path until it is released.
//
// Paths are compared case insensitively and both separators
// are accepted, following the Windows conventions.
package sharelock
