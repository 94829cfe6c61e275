// Package logger defines the logging collaborator used by
// the safe operations, together with its implementations.
//
// Only two levels are known: informational messages trace
// what an operation is about to do or has skipped, warnings
// report failures which have been tolerated.
package logger
