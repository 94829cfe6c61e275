// Package aferofs implements the OS access layer on top of
// an afero file system.
//
// It backs the tests with an in-memory file system, and the
// command line tool on platforms other than windows. The
// behaviours the safe operations depend on are emulated the
// way windows shows them:
//
// A file whose permission misses the owner write bit is
// read-only, deleting it is denied until the attribute is
// cleared. A handle opened by CreateFile without delete
// sharing pins the path and all of its ancestors, so that
// deleting or renaming any of them fails with a sharing
// violation until the handle is closed.
//
// Attributes and timestamps that afero cannot record are
// kept in a side table of the file system, following the
// entries on rename and forgotten on removal.
package aferofs
