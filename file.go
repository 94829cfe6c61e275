package longpath

import (
	"github.com/pkg/errors"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/aegistudio/go-longpath/ioapi"
	"github.com/aegistudio/go-longpath/lpath"
)

// File is the handle of a file at a path.
//
// A nil handle stands for no file: its names are empty and
// it never exists. The other methods need a non-nil handle.
type File struct {
	entry
}

// NewFile creates the handle of the file at path.
func NewFile(fs ioapi.FS, path string) *File {
	return &File{entry: entry{fs: fs, path: path}}
}

// FullName returns the path of the file, or "" for a nil
// handle.
func (f *File) FullName() string {
	if f == nil {
		return ""
	}
	return f.path
}

// OriginalPath returns the path as passed on creation.
func (f *File) OriginalPath() string {
	return f.FullName()
}

func (f *File) String() string {
	return f.FullName()
}

// Name returns the last element of the path.
func (f *File) Name() string {
	if f == nil {
		return ""
	}
	return lpath.FileName(f.path)
}

// Extension returns the extension with its leading dot.
func (f *File) Extension() string {
	if f == nil {
		return ""
	}
	return lpath.Extension(f.path)
}

// DirectoryName returns the path of the holding directory.
func (f *File) DirectoryName() string {
	if f == nil {
		return ""
	}
	return lpath.DirectoryPath(f.path)
}

// Directory returns the handle of the holding directory,
// nil for a nil handle.
func (f *File) Directory() *Directory {
	if f == nil {
		return nil
	}
	return NewDirectory(f.fs, f.DirectoryName())
}

func (f *File) Exists() bool {
	if f == nil {
		return false
	}
	return f.fs.FileExists(f.path)
}

func (f *File) Delete() error {
	return f.fs.DeleteFile(f.path)
}

// MoveTo moves the file, the handle keeps designating the
// original path afterwards.
func (f *File) MoveTo(target string) error {
	return f.fs.MoveFile(f.path, target)
}

func (f *File) CopyTo(target string, overwrite bool) error {
	return f.fs.CopyFile(f.path, target, overwrite)
}

func (f *File) CopyToFile(target *File, overwrite bool) error {
	return f.CopyTo(target.FullName(), overwrite)
}

// CreateHandle opens the file, the caller owns the returned
// handle and must close it.
func (f *File) CreateHandle(
	disposition ioapi.CreationDisposition,
	access ioapi.FileAccess, share ioapi.FileShare,
) (ioapi.File, error) {
	return f.fs.CreateFile(f.path, disposition, access, share)
}

// Owner returns the account owning the file.
func (f *File) Owner() (string, error) {
	return f.fs.GetFileOwner(f.path)
}

func (f *File) Length() (uint64, error) {
	return f.fs.GetFileLength(f.path)
}

func (f *File) ReadAllBytes() ([]byte, error) {
	return f.fs.ReadAllBytes(f.path)
}

// ReadAllText reads the whole file as text, UTF-8 unless a
// byte order mark tells otherwise.
func (f *File) ReadAllText() (string, error) {
	return f.ReadAllTextEncoding(unicode.UTF8)
}

// ReadAllTextEncoding reads the whole file as text in enc,
// a leading byte order mark still takes precedence.
func (f *File) ReadAllTextEncoding(enc encoding.Encoding) (string, error) {
	data, err := f.ReadAllBytes()
	if err != nil {
		return "", err
	}
	decoded, _, err := transform.Bytes(
		unicode.BOMOverride(enc.NewDecoder()), data)
	if err != nil {
		return "", errors.Wrapf(err, "decode text of %q", f.path)
	}
	return string(decoded), nil
}
