// Package filetime provides support for converting between
// golang's timestamps and the file timestamps of Windows.
//
// A file timestamp fits in an uint64 number counting 100ns
// intervals since 1601-01-01 UTC. The zero value is reserved
// to mean "no timestamp", which the native APIs interpret as
// "leave this timestamp unchanged".
package filetime
