// Package safeops provides error tolerant file operations,
// meant for cleanup jobs that must not be aborted by a file
// somebody else keeps open.
//
// Every operation is a no-op when its input is missing. A
// file or directory that cannot be deleted, because access
// is denied or the OS call fails otherwise, is renamed aside
// to a uniquely suffixed name ending with ".deleted" instead,
// and when even that fails the failure is only logged. Only
// errors not originating from the OS access layer reach the
// caller of a delete.
//
// Each step is traced through the logger, so that it can be
// found out afterwards why a file has gone.
package safeops
