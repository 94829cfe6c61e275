// Package secdesc is the helper package for retrieving the
// security descriptor of a file under windows, and for
// resolving its owner into an account name.
//
// The descriptor is loaded on every call, since the owner
// of a file may be changed at any time by other processes.
package secdesc
