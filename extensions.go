package longpath

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/aegistudio/go-longpath/ioapi"
	"github.com/aegistudio/go-longpath/lpath"
)

var (
	// ErrFileNotFound is reported by File.CheckExists.
	ErrFileNotFound = errors.New("file not found")

	// ErrDirectoryNotFound is reported by Directory.CheckExists.
	ErrDirectoryNotFound = errors.New("directory not found")
)

// CombineDirectory returns the handle of the directory at
// two relative to one.
func CombineDirectory(fs ioapi.FS, one, two string) *Directory {
	return NewDirectory(fs, lpath.Combine(one, two))
}

// CombineFile returns the handle of the file at two relative
// to one.
func CombineFile(fs ioapi.FS, one, two string) *File {
	return NewFile(fs, lpath.Combine(one, two))
}

// Combine returns the handle of the directory reached by
// descending through elems.
func (d *Directory) Combine(elems ...string) *Directory {
	return NewDirectory(d.fs, lpath.CombineAll(append([]string{d.path}, elems...)...))
}

// CombineFile returns the handle of the file reached by
// descending through elems, the last one naming the file.
func (d *Directory) CombineFile(elems ...string) *File {
	return NewFile(d.fs, lpath.CombineAll(append([]string{d.path}, elems...)...))
}

// CreateSubdirectory creates the directory name inside this
// one and returns its handle.
func (d *Directory) CreateSubdirectory(name string) (*Directory, error) {
	result := d.Combine(name)
	if err := result.Create(); err != nil {
		return nil, err
	}
	return result, nil
}

// ChangeExtension returns the handle of the sibling file
// with ext as extension. An empty ext removes it.
func (f *File) ChangeExtension(ext string) *File {
	return NewFile(f.fs, lpath.ChangeExtension(f.path, ext))
}

// equalsNoCase compares two paths ignoring the case and any
// trailing separator.
func equalsNoCase(a, b string) bool {
	return strings.EqualFold(
		strings.TrimRight(a, `\/`), strings.TrimRight(b, `\/`))
}

// EqualsNoCase tells whether both handles designate the same
// path, two nil handles are equal.
func (f *File) EqualsNoCase(other *File) bool {
	if f == nil || other == nil {
		return f == nil && other == nil
	}
	return equalsNoCase(f.path, other.path)
}

// EqualsNoCasePath compares the handle with a path string.
func (f *File) EqualsNoCasePath(p string) bool {
	return f != nil && equalsNoCase(f.path, p)
}

// EqualsNoCase tells whether both handles designate the same
// path, two nil handles are equal.
func (d *Directory) EqualsNoCase(other *Directory) bool {
	if d == nil || other == nil {
		return d == nil && other == nil
	}
	return equalsNoCase(d.path, other.path)
}

// EqualsNoCasePath compares the handle with a path string.
func (d *Directory) EqualsNoCasePath(p string) bool {
	return d != nil && equalsNoCase(d.path, p)
}

// CheckExists returns the handle itself when the file exists,
// or ErrFileNotFound.
func (f *File) CheckExists() (*File, error) {
	if f == nil {
		return nil, ErrFileNotFound
	}
	if !f.Exists() {
		return nil, errors.Wrapf(ErrFileNotFound, "check %q", f.path)
	}
	return f, nil
}

// CheckExists returns the handle itself when the directory
// exists, or ErrDirectoryNotFound.
func (d *Directory) CheckExists() (*Directory, error) {
	if d == nil {
		return nil, ErrDirectoryNotFound
	}
	if !d.Exists() {
		return nil, errors.Wrapf(ErrDirectoryNotFound, "check %q", d.path)
	}
	return d, nil
}

// CheckCreate creates the directory unless it exists.
func (d *Directory) CheckCreate() (*Directory, error) {
	if d == nil {
		return nil, ErrDirectoryNotFound
	}
	if !d.Exists() {
		if err := d.Create(); err != nil {
			return nil, err
		}
	}
	return d, nil
}
