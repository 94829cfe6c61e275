// Package lpath provides the pure string functions for
// manipulating Windows style paths, including the long
// path prefixes accepted by the native file APIs.
//
// No function in this package touches the file system.
// Both backslash and forward slash are accepted as the
// separator, and the functions that produce new paths
// keep the separator style of their input.
package lpath
