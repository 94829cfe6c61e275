package ioapi

import (
	"path/filepath"
	"strings"
)

// MatchPattern matches a file name against a wildcard pattern
// the way FindFirstFile does for the common cases: the match
// is case insensitive, and "", "*" and "*.*" match anything.
func MatchPattern(pattern, name string) bool {
	switch pattern {
	case "", "*", "*.*":
		return true
	}
	matched, err := filepath.Match(
		strings.ToLower(pattern), strings.ToLower(name))
	return err == nil && matched
}
