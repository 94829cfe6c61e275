package aferofs

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/afero"

	"github.com/aegistudio/go-longpath/ioapi"
	"github.com/aegistudio/go-longpath/sharelock"
)

// file is an open handle, releasing its entry in the lock
// table when closed.
type file struct {
	afero.File
	lock *sharelock.Handle
}

func (f *file) Close() error {
	err := f.File.Close()
	f.lock.Release()
	return err
}

// openFlags maps the disposition and the access of a
// CreateFile call into the flags of os.OpenFile.
func openFlags(
	disposition ioapi.CreationDisposition, access ioapi.FileAccess,
) (int, error) {
	flags := os.O_RDONLY
	read := access&(ioapi.GenericRead|ioapi.GenericAll) != 0
	write := access&(ioapi.GenericWrite|ioapi.GenericAll) != 0
	switch {
	case read && write:
		flags = os.O_RDWR
	case write:
		flags = os.O_WRONLY
	}
	switch disposition {
	case ioapi.CreateNew:
		flags |= os.O_CREATE | os.O_EXCL
	case ioapi.CreateAlways:
		flags |= os.O_CREATE | os.O_TRUNC
	case ioapi.OpenExisting:
	case ioapi.OpenAlways:
		flags |= os.O_CREATE
	case ioapi.TruncateExisting:
		if !write {
			return 0, errors.Errorf(
				"truncate existing without write access")
		}
		flags |= os.O_TRUNC
	default:
		return 0, errors.Errorf("invalid disposition %d", disposition)
	}
	return flags, nil
}

// lockModes maps the access and the sharing of a CreateFile
// call into the modes recorded by the lock table.
func lockModes(
	access ioapi.FileAccess, share ioapi.FileShare,
) (sharelock.Mode, sharelock.Mode) {
	wants := sharelock.None
	if access&(ioapi.GenericRead|ioapi.GenericExecute) != 0 {
		wants |= sharelock.Read
	}
	if access&ioapi.GenericWrite != 0 {
		wants |= sharelock.Write
	}
	if access&ioapi.GenericAll != 0 {
		wants = sharelock.All
	}
	grants := sharelock.None
	if share&ioapi.ShareRead != 0 {
		grants |= sharelock.Read
	}
	if share&ioapi.ShareWrite != 0 {
		grants |= sharelock.Write
	}
	if share&ioapi.ShareDelete != 0 {
		grants |= sharelock.Delete
	}
	return wants, grants
}

// requireWrite tells whether the flags alter the content.
func requireWrite(flags int) bool {
	return flags&(os.O_WRONLY|os.O_RDWR|os.O_TRUNC) != 0
}

func (fs *fileSystem) CreateFile(
	p string, disposition ioapi.CreationDisposition,
	access ioapi.FileAccess, share ioapi.FileShare,
) (ioapi.File, error) {
	flags, err := openFlags(disposition, access)
	if err != nil {
		return nil, ioapi.NewError("open", p, err)
	}
	info, statErr := fs.inner.Stat(clean(p))
	switch {
	case statErr == nil && info.IsDir():
		return nil, ioapi.NewError("open", p, os.ErrPermission)
	case statErr == nil && requireWrite(flags) && isReadOnly(info.Mode()):
		return nil, ioapi.NewError("open", p, os.ErrPermission)
	case statErr != nil && !fs.parentExists(p):
		return nil, ioapi.NewError("open", p, os.ErrNotExist)
	}
	wants, grants := lockModes(access, share)
	lock := fs.locks.Open(p, wants, grants)
	if lock == nil {
		return nil, sharingViolation("open", p)
	}
	f, err := fs.inner.OpenFile(clean(p), flags, 0666)
	if err != nil {
		lock.Release()
		return nil, ioapi.NewError("open", p, err)
	}
	if statErr != nil {
		fs.forgetMeta(p)
	}
	return &file{File: f, lock: lock}, nil
}

func (fs *fileSystem) ReadAllBytes(p string) ([]byte, error) {
	f, err := fs.CreateFile(
		p, ioapi.OpenExisting, ioapi.GenericRead, ioapi.ShareRead)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()
	data, err := io.ReadAll(f)
	if err != nil {
		return nil, ioapi.NewError("read", p, err)
	}
	return data, nil
}

// collect gathers the matching entries of dir, which afero
// lists sorted by name, descending when asked to.
func (fs *fileSystem) collect(
	dir, pattern string, option ioapi.SearchOption, wantDir bool,
) ([]string, error) {
	children, err := afero.ReadDir(fs.inner, clean(dir))
	if err != nil {
		return nil, ioapi.NewError("enumerate", dir, err)
	}
	var result []string
	for _, child := range children {
		if child.IsDir() == wantDir &&
			ioapi.MatchPattern(pattern, child.Name()) {
			result = append(result, childPath(dir, child.Name()))
		}
	}
	if option != ioapi.AllDirectories {
		return result, nil
	}
	for _, child := range children {
		if !child.IsDir() {
			continue
		}
		nested, err := fs.collect(
			childPath(dir, child.Name()), pattern, option, wantDir)
		if err != nil {
			return nil, err
		}
		result = append(result, nested...)
	}
	return result, nil
}

func (fs *fileSystem) GetFiles(
	p, pattern string, option ioapi.SearchOption,
) ([]string, error) {
	return fs.collect(p, pattern, option, false)
}

func (fs *fileSystem) GetDirectories(
	p, pattern string, option ioapi.SearchOption,
) ([]string, error) {
	return fs.collect(p, pattern, option, true)
}
