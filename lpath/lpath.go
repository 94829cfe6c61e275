package lpath

import "strings"

// IsSeparator tells whether the byte separates path elements.
func IsSeparator(c byte) bool {
	return c == '\\' || c == '/'
}

func isDriveLetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func isDriveAbsolute(p string) bool {
	return len(p) >= 3 && isDriveLetter(p[0]) &&
		p[1] == ':' && IsSeparator(p[2])
}

// separatorOf picks the separator to use when extending p.
func separatorOf(p string) string {
	if strings.ContainsRune(p, '/') && !strings.ContainsRune(p, '\\') {
		return "/"
	}
	return `\`
}

// VolumeLength returns the length of the leading root of
// the path, separator included, e.g. `C:\`, `\\server\share\`,
// `\\?\C:\`, `\\?\UNC\server\share\` or `/`.
func VolumeLength(p string) int {
	switch {
	case strings.HasPrefix(p, UNCLongPathPrefix):
		return len(UNCLongPathPrefix) + shareLength(p[len(UNCLongPathPrefix):])
	case strings.HasPrefix(p, LongPathPrefix), strings.HasPrefix(p, DevicePathPrefix):
		rest := p[len(LongPathPrefix):]
		if isDriveAbsolute(rest) {
			return len(LongPathPrefix) + 3
		}
		if len(rest) == 2 && isDriveLetter(rest[0]) && rest[1] == ':' {
			return len(p)
		}
		return len(LongPathPrefix) + segmentLength(rest)
	case len(p) >= 2 && IsSeparator(p[0]) && IsSeparator(p[1]):
		return 2 + shareLength(p[2:])
	case len(p) >= 2 && isDriveLetter(p[0]) && p[1] == ':':
		if len(p) >= 3 && IsSeparator(p[2]) {
			return 3
		}
		return 2
	case len(p) >= 1 && IsSeparator(p[0]):
		return 1
	}
	return 0
}

// segmentLength is the length of the first element of p
// with its trailing separator.
func segmentLength(p string) int {
	i := strings.IndexAny(p, `\/`)
	if i < 0 {
		return len(p)
	}
	return i + 1
}

// shareLength is the length of "server\share\" in p.
func shareLength(p string) int {
	n := segmentLength(p)
	return n + segmentLength(p[n:])
}

// IsAbsolute tells whether the path is rooted at a drive,
// a UNC share, a prefixed namespace or a slash.
func IsAbsolute(p string) bool {
	n := VolumeLength(p)
	if n == 0 {
		return false
	}
	// "C:foo" is drive relative.
	return IsSeparator(p[n-1]) || n == len(p) && n > 2
}

// TrimTrailingSeparators removes the separators at the end
// of the path, but never those belonging to its root.
func TrimTrailingSeparators(p string) string {
	root := VolumeLength(p)
	end := len(p)
	for end > root && IsSeparator(p[end-1]) {
		end--
	}
	return p[:end]
}

// Combine joins two paths. An absolute second path wins,
// empty elements are skipped.
func Combine(one, two string) string {
	switch {
	case two == "":
		return one
	case one == "":
		return two
	case IsAbsolute(two):
		return two
	case IsSeparator(one[len(one)-1]):
		return one + two
	default:
		return one + separatorOf(one) + two
	}
}

// CombineAll folds Combine over all elements.
func CombineAll(elems ...string) string {
	result := ""
	for _, elem := range elems {
		result = Combine(result, elem)
	}
	return result
}

// lastSeparator is the index of the last separator outside
// the root of the path, or -1.
func lastSeparator(p string) int {
	root := VolumeLength(p)
	for i := len(p) - 1; i >= root; i-- {
		if IsSeparator(p[i]) {
			return i
		}
	}
	return -1
}

// FileName returns the last element of the path. A path
// ending with a separator has an empty file name.
func FileName(p string) string {
	root := VolumeLength(p)
	if i := lastSeparator(p); i >= 0 {
		return p[i+1:]
	}
	return p[root:]
}

// Extension returns the extension of the last element,
// dot included, or "" when there is none.
func Extension(p string) string {
	name := FileName(p)
	i := strings.LastIndexByte(name, '.')
	if i < 0 || i == len(name)-1 {
		return ""
	}
	return name[i:]
}

// FileNameWithoutExtension returns the last element with
// its extension stripped.
func FileNameWithoutExtension(p string) string {
	name := FileName(p)
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		return name[:i]
	}
	return name
}

// DirectoryPath returns the path of the directory holding
// the last element, or "" for a root or a bare name.
func DirectoryPath(p string) string {
	root := VolumeLength(p)
	if root == len(p) {
		return ""
	}
	i := lastSeparator(p)
	if i < 0 {
		return p[:root]
	}
	// Collapse runs of separators before the last element.
	for i > root && IsSeparator(p[i-1]) {
		i--
	}
	if i <= root {
		return p[:root]
	}
	return p[:i]
}

// DirectoryNameOnly returns the name of the directory that
// the path designates, tolerating a trailing separator.
func DirectoryNameOnly(p string) string {
	return FileName(TrimTrailingSeparators(p))
}

// ChangeExtension replaces the extension of the last element.
// An empty ext removes the extension, a missing leading dot
// is added.
func ChangeExtension(p, ext string) string {
	if p == "" {
		return p
	}
	base := p
	name := FileName(p)
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		base = p[:len(p)-len(name)+i]
	}
	if ext == "" {
		return base
	}
	if ext[0] != '.' {
		ext = "." + ext
	}
	return base + ext
}
