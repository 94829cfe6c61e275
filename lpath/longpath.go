package lpath

import (
	"path/filepath"
	"strings"
)

const (
	// MaxPath is the classic path length limit of the
	// Win32 API without the long path prefix.
	MaxPath = 260

	// LongPathPrefix marks an extended-length local path.
	LongPathPrefix = `\\?\`

	// UNCLongPathPrefix marks an extended-length UNC path.
	UNCLongPathPrefix = `\\?\UNC\`

	// DevicePathPrefix marks a Win32 device namespace path.
	DevicePathPrefix = `\\.\`

	uncPrefix = `\\`
)

// HasLongPathPrefix tells whether the path has already been
// put into the extended-length or device namespace.
func HasLongPathPrefix(p string) bool {
	return strings.HasPrefix(p, LongPathPrefix) ||
		strings.HasPrefix(p, DevicePathPrefix)
}

// ToLongPath converts an absolute path into the form that
// is not subject to MaxPath.
//
// Prefixed paths are returned untouched. Relative paths are
// returned untouched too, since the prefix disables the
// relative path parsing of the API, callers must absolutize
// them before. Forward slashes are converted, but the path
// is not cleaned: "." and ".." components are passed down
// literally under the prefix.
func ToLongPath(p string) string {
	if p == "" || HasLongPathPrefix(p) {
		return p
	}
	converted := strings.ReplaceAll(p, "/", `\`)
	switch {
	case strings.HasPrefix(converted, uncPrefix):
		return UNCLongPathPrefix + converted[len(uncPrefix):]
	case isDriveAbsolute(converted):
		return LongPathPrefix + converted
	default:
		return p
	}
}

// FromLongPath strips the extended-length prefix, which is
// useful for presenting the path back to users.
func FromLongPath(p string) string {
	switch {
	case strings.HasPrefix(p, UNCLongPathPrefix):
		return uncPrefix + p[len(UNCLongPathPrefix):]
	case strings.HasPrefix(p, LongPathPrefix):
		return p[len(LongPathPrefix):]
	default:
		return p
	}
}

// NeedsLongPath tells whether the path exceeds MaxPath once
// the terminating null character is accounted.
func NeedsLongPath(p string) bool {
	return len(p) >= MaxPath
}

// Absolute resolves the path against the working directory
// of the process and cleans it, which is what the API would
// have done before the long path prefix disables it. Paths
// already prefixed are returned untouched.
func Absolute(p string) (string, error) {
	if HasLongPathPrefix(p) {
		return p, nil
	}
	return filepath.Abs(p)
}
