package longpath

import (
	"github.com/aegistudio/go-longpath/ioapi"
	"github.com/aegistudio/go-longpath/lpath"
)

// Directory is the handle of a directory at a path.
//
// A nil handle stands for no directory: its names are empty
// and it never exists. The other methods need a non-nil
// handle.
type Directory struct {
	entry
}

// NewDirectory creates the handle of the directory at path.
func NewDirectory(fs ioapi.FS, path string) *Directory {
	return &Directory{entry: entry{fs: fs, path: path}}
}

// FullName returns the path of the directory, or "" for a
// nil handle.
func (d *Directory) FullName() string {
	if d == nil {
		return ""
	}
	return d.path
}

// OriginalPath returns the path as passed on creation.
func (d *Directory) OriginalPath() string {
	return d.FullName()
}

func (d *Directory) String() string {
	return d.FullName()
}

// Name returns the last element of the path, a trailing
// separator is tolerated.
func (d *Directory) Name() string {
	if d == nil {
		return ""
	}
	return lpath.DirectoryNameOnly(d.path)
}

// Parent returns the handle of the directory holding this
// one, or nil when the path has no parent.
func (d *Directory) Parent() *Directory {
	if d == nil {
		return nil
	}
	parent := lpath.DirectoryPath(lpath.TrimTrailingSeparators(d.path))
	if parent == "" {
		return nil
	}
	return NewDirectory(d.fs, parent)
}

func (d *Directory) Exists() bool {
	if d == nil {
		return false
	}
	return d.fs.DirectoryExists(d.path)
}

// Create creates the directory and its missing parents.
func (d *Directory) Create() error {
	return d.fs.CreateDirectory(d.path)
}

func (d *Directory) Delete(recursive bool) error {
	return d.fs.DeleteDirectory(d.path, recursive)
}

// Files lists the files directly inside the directory.
func (d *Directory) Files() ([]*File, error) {
	return d.FilesMatching(ioapi.AllPattern, ioapi.TopDirectoryOnly)
}

// FilesMatching lists the files matching the wildcard
// pattern, descending into subdirectories when asked to.
func (d *Directory) FilesMatching(
	pattern string, option ioapi.SearchOption,
) ([]*File, error) {
	paths, err := d.fs.GetFiles(d.path, pattern, option)
	if err != nil {
		return nil, err
	}
	result := make([]*File, 0, len(paths))
	for _, p := range paths {
		result = append(result, NewFile(d.fs, p))
	}
	return result, nil
}

// Directories lists the subdirectories directly inside the
// directory.
func (d *Directory) Directories() ([]*Directory, error) {
	return d.DirectoriesMatching(ioapi.AllPattern, ioapi.TopDirectoryOnly)
}

func (d *Directory) DirectoriesMatching(
	pattern string, option ioapi.SearchOption,
) ([]*Directory, error) {
	paths, err := d.fs.GetDirectories(d.path, pattern, option)
	if err != nil {
		return nil, err
	}
	result := make([]*Directory, 0, len(paths))
	for _, p := range paths {
		result = append(result, NewDirectory(d.fs, p))
	}
	return result, nil
}
