package aferofs

import (
	"io"
	"os"

	"github.com/spf13/afero"

	"github.com/aegistudio/go-longpath/ioapi"
	"github.com/aegistudio/go-longpath/lpath"
	"github.com/aegistudio/go-longpath/sharelock"
)

func (fs *fileSystem) DeleteFile(p string) error {
	info, err := fs.stat("delete", p)
	if err != nil {
		return err
	}
	if info.IsDir() || isReadOnly(info.Mode()) {
		return ioapi.NewError("delete", p, os.ErrPermission)
	}
	lock := fs.locks.Exclusive(p)
	if lock == nil {
		return sharingViolation("delete", p)
	}
	defer lock.Release()
	if err := fs.inner.Remove(clean(p)); err != nil {
		return ioapi.NewError("delete", p, err)
	}
	fs.forgetMeta(p)
	return nil
}

// rename moves the entry after checking what afero would
// not check: the target is free and its parent exists.
func (fs *fileSystem) rename(op, source, target string) error {
	if _, err := fs.inner.Stat(clean(target)); err == nil {
		return ioapi.NewError(op, target, os.ErrExist)
	}
	if !fs.parentExists(target) {
		return ioapi.NewError(op, target, os.ErrNotExist)
	}
	from := fs.locks.Exclusive(source)
	if from == nil {
		return sharingViolation(op, source)
	}
	defer from.Release()
	to := fs.locks.Exclusive(target)
	if to == nil {
		return sharingViolation(op, target)
	}
	defer to.Release()
	if err := fs.inner.Rename(clean(source), clean(target)); err != nil {
		return ioapi.NewError(op, source, err)
	}
	fs.renameMeta(source, target)
	return nil
}

func (fs *fileSystem) MoveFile(source, target string) error {
	info, err := fs.stat("move", source)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return ioapi.NewError("move", source, os.ErrPermission)
	}
	return fs.rename("move", source, target)
}

func (fs *fileSystem) MoveDirectory(source, target string) error {
	info, err := fs.stat("movedir", source)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return ioapi.NewError("movedir", source, errInvalidDirectory)
	}
	return fs.rename("movedir", source, target)
}

// CopyFile copies the content together with the attributes
// and the last write time, as CopyFile on windows does. The
// source is read sharing reading only, and the target is
// written sharing nothing.
func (fs *fileSystem) CopyFile(source, target string, overwrite bool) error {
	info, err := fs.stat("copy", source)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return ioapi.NewError("copy", source, os.ErrPermission)
	}
	if existing, err := fs.inner.Stat(clean(target)); err == nil {
		switch {
		case !overwrite:
			return ioapi.NewError("copy", target, os.ErrExist)
		case existing.IsDir(), isReadOnly(existing.Mode()):
			return ioapi.NewError("copy", target, os.ErrPermission)
		}
	} else if !fs.parentExists(target) {
		return ioapi.NewError("copy", target, os.ErrNotExist)
	}
	from := fs.locks.Open(source, sharelock.Read, sharelock.Read)
	if from == nil {
		return sharingViolation("copy", source)
	}
	defer from.Release()
	to := fs.locks.Open(target, sharelock.Write, sharelock.None)
	if to == nil {
		return sharingViolation("copy", target)
	}
	defer to.Release()
	if err := fs.copyContent(source, target); err != nil {
		return ioapi.NewError("copy", source, err)
	}
	if err := fs.inner.Chmod(clean(target), info.Mode().Perm()); err != nil {
		return ioapi.NewError("copy", target, err)
	}
	if err := fs.inner.Chtimes(
		clean(target), info.ModTime(), info.ModTime()); err != nil {
		return ioapi.NewError("copy", target, err)
	}
	fs.copyMeta(source, target)
	return nil
}

func (fs *fileSystem) copyContent(source, target string) error {
	src, err := fs.inner.Open(clean(source))
	if err != nil {
		return err
	}
	defer func() { _ = src.Close() }()
	dst, err := fs.inner.OpenFile(clean(target),
		os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0666)
	if err != nil {
		return err
	}
	if _, err := io.Copy(dst, src); err != nil {
		_ = dst.Close()
		return err
	}
	return dst.Close()
}

// DeleteDirectory removes the directory. A recursive removal
// walks the tree and stops at the first entry that cannot be
// removed, leaving what has been removed so far removed.
func (fs *fileSystem) DeleteDirectory(p string, recursive bool) error {
	info, err := fs.stat("rmdir", p)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return ioapi.NewError("rmdir", p, errInvalidDirectory)
	}
	children, err := afero.ReadDir(fs.inner, clean(p))
	if err != nil {
		return ioapi.NewError("rmdir", p, err)
	}
	if len(children) > 0 && !recursive {
		return ioapi.NewError("rmdir", p, errDirectoryNotEmpty)
	}
	for _, child := range children {
		sub := childPath(p, child.Name())
		if child.IsDir() {
			err = fs.DeleteDirectory(sub, true)
		} else {
			err = fs.DeleteFile(sub)
		}
		if err != nil {
			return err
		}
	}
	if isReadOnly(info.Mode()) {
		return ioapi.NewError("rmdir", p, os.ErrPermission)
	}
	lock := fs.locks.Exclusive(p)
	if lock == nil {
		return sharingViolation("rmdir", p)
	}
	defer lock.Release()
	if err := fs.inner.Remove(clean(p)); err != nil {
		return ioapi.NewError("rmdir", p, err)
	}
	fs.forgetMeta(p)
	return nil
}

func (fs *fileSystem) CreateDirectory(p string) error {
	if info, err := fs.inner.Stat(clean(p)); err == nil {
		if !info.IsDir() {
			return ioapi.NewError("mkdir", p, os.ErrExist)
		}
		return nil
	}
	if parent := lpath.DirectoryPath(p); parent != "" {
		if err := fs.CreateDirectory(parent); err != nil {
			return err
		}
	}
	if err := fs.inner.Mkdir(clean(p), 0777); err != nil {
		return ioapi.NewError("mkdir", p, err)
	}
	return nil
}
