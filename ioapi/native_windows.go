package ioapi

import (
	"io"
	"os"
	"runtime"
	"sort"
	"syscall"
	"unsafe"

	"github.com/Microsoft/go-winio"
	"github.com/pkg/errors"
	"golang.org/x/sys/windows"

	"github.com/aegistudio/go-longpath/filetime"
	"github.com/aegistudio/go-longpath/lpath"
	"github.com/aegistudio/go-longpath/secdesc"
)

var (
	modkernel32   = windows.NewLazySystemDLL("kernel32.dll")
	procCopyFileW = modkernel32.NewProc("CopyFileW")
)

type nativeFS struct{}

// Native returns the OS access layer on top of the Win32
// API, with every path put into the extended-length form.
func Native() FS {
	return nativeFS{}
}

var _ FS = nativeFS{}

// longPath resolves the path and adds the extended-length
// prefix, so that the path is passed to the API literally.
func longPath(p string) (string, error) {
	abs, err := lpath.Absolute(p)
	if err != nil {
		return "", errors.Wrapf(err, "resolve path %q", p)
	}
	return lpath.ToLongPath(abs), nil
}

func longPathPtr(p string) (*uint16, error) {
	long, err := longPath(p)
	if err != nil {
		return nil, err
	}
	ptr, err := windows.UTF16PtrFromString(long)
	if err != nil {
		return nil, errors.Wrapf(err, "string %q convert utf16", p)
	}
	return ptr, nil
}

func (nativeFS) getAttributes(p string) (uint32, error) {
	ptr, err := longPathPtr(p)
	if err != nil {
		return 0, err
	}
	attributes, err := windows.GetFileAttributes(ptr)
	if err != nil {
		return 0, NewError("getattributes", p, err)
	}
	return attributes, nil
}

func (fs nativeFS) FileExists(p string) bool {
	attributes, err := fs.getAttributes(p)
	return err == nil &&
		attributes&windows.FILE_ATTRIBUTE_DIRECTORY == 0
}

func (fs nativeFS) DirectoryExists(p string) bool {
	attributes, err := fs.getAttributes(p)
	return err == nil &&
		attributes&windows.FILE_ATTRIBUTE_DIRECTORY != 0
}

func (nativeFS) DeleteFile(p string) error {
	ptr, err := longPathPtr(p)
	if err != nil {
		return err
	}
	return NewError("delete", p, windows.DeleteFile(ptr))
}

func (nativeFS) move(op, source, target string, flags uint32) error {
	src, err := longPathPtr(source)
	if err != nil {
		return err
	}
	dst, err := longPathPtr(target)
	if err != nil {
		return err
	}
	return NewError(op, source, windows.MoveFileEx(src, dst, flags))
}

// MoveFile moves the file, across volumes if needed. The
// target must not exist.
func (fs nativeFS) MoveFile(source, target string) error {
	return fs.move("move", source, target, windows.MOVEFILE_COPY_ALLOWED)
}

// MoveDirectory renames the directory, which only works
// within the same volume.
func (fs nativeFS) MoveDirectory(source, target string) error {
	return fs.move("movedir", source, target, 0)
}

func (nativeFS) CopyFile(source, target string, overwrite bool) error {
	if err := procCopyFileW.Find(); err != nil {
		return errors.Wrap(err, "kernel32 cannot find proc CopyFileW")
	}
	src, err := longPathPtr(source)
	if err != nil {
		return err
	}
	dst, err := longPathPtr(target)
	if err != nil {
		return err
	}
	failIfExists := uintptr(1)
	if overwrite {
		failIfExists = 0
	}
	result, _, err := procCopyFileW.Call(
		uintptr(unsafe.Pointer(src)),
		uintptr(unsafe.Pointer(dst)),
		failIfExists,
	)
	runtime.KeepAlive(src)
	runtime.KeepAlive(dst)
	if result != 0 {
		return nil
	}
	if err == syscall.Errno(0) {
		err = syscall.EINVAL
	}
	return NewError("copy", source, err)
}

// entry is a directory entry found by enumeration.
type entry struct {
	path       string
	attributes uint32
}

func (e entry) isDir() bool {
	return e.attributes&windows.FILE_ATTRIBUTE_DIRECTORY != 0
}

func (e entry) isReparsePoint() bool {
	return e.attributes&windows.FILE_ATTRIBUTE_REPARSE_POINT != 0
}

// enumerate lists the entries of dir matching pattern, with
// the paths built upon dir as the caller has spelled it.
func (nativeFS) enumerate(dir, pattern string) ([]entry, error) {
	if pattern == "" {
		pattern = AllPattern
	}
	ptr, err := longPathPtr(lpath.Combine(dir, pattern))
	if err != nil {
		return nil, err
	}
	var data windows.Win32finddata
	handle, err := windows.FindFirstFile(ptr, &data)
	if err != nil {
		if errors.Is(err, windows.ERROR_FILE_NOT_FOUND) {
			return nil, nil
		}
		return nil, NewError("enumerate", dir, err)
	}
	defer func() { _ = windows.FindClose(handle) }()
	var result []entry
	for {
		name := windows.UTF16ToString(data.FileName[:])
		if name != "." && name != ".." {
			result = append(result, entry{
				path:       lpath.Combine(dir, name),
				attributes: data.FileAttributes,
			})
		}
		if err := windows.FindNextFile(handle, &data); err != nil {
			if errors.Is(err, windows.ERROR_NO_MORE_FILES) {
				break
			}
			return nil, NewError("enumerate", dir, err)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].path < result[j].path
	})
	return result, nil
}

// collect gathers the matching entries of dir, descending
// into subdirectories when asked to. Reparse points are
// never descended into.
func (fs nativeFS) collect(
	dir, pattern string, option SearchOption, wantDir bool,
) ([]string, error) {
	matched, err := fs.enumerate(dir, pattern)
	if err != nil {
		return nil, err
	}
	var result []string
	for _, e := range matched {
		if e.isDir() == wantDir {
			result = append(result, e.path)
		}
	}
	if option != AllDirectories {
		return result, nil
	}
	children, err := fs.enumerate(dir, AllPattern)
	if err != nil {
		return nil, err
	}
	for _, child := range children {
		if !child.isDir() || child.isReparsePoint() {
			continue
		}
		nested, err := fs.collect(child.path, pattern, option, wantDir)
		if err != nil {
			return nil, err
		}
		result = append(result, nested...)
	}
	return result, nil
}

func (fs nativeFS) GetFiles(
	p, pattern string, option SearchOption,
) ([]string, error) {
	return fs.collect(p, pattern, option, false)
}

func (fs nativeFS) GetDirectories(
	p, pattern string, option SearchOption,
) ([]string, error) {
	return fs.collect(p, pattern, option, true)
}

func (fs nativeFS) DeleteDirectory(p string, recursive bool) error {
	if recursive {
		children, err := fs.enumerate(p, AllPattern)
		if err != nil {
			return err
		}
		for _, child := range children {
			switch {
			case !child.isDir():
				err = fs.DeleteFile(child.path)
			case child.isReparsePoint():
				// XXX: a junction or a directory symlink is
				// removed itself, its target is left alone.
				err = fs.DeleteDirectory(child.path, false)
			default:
				err = fs.DeleteDirectory(child.path, true)
			}
			if err != nil {
				return err
			}
		}
	}
	ptr, err := longPathPtr(p)
	if err != nil {
		return err
	}
	return NewError("rmdir", p, windows.RemoveDirectory(ptr))
}

func (fs nativeFS) CreateDirectory(p string) error {
	if fs.DirectoryExists(p) {
		return nil
	}
	if parent := lpath.DirectoryPath(p); parent != "" {
		if err := fs.CreateDirectory(parent); err != nil {
			return err
		}
	}
	ptr, err := longPathPtr(p)
	if err != nil {
		return err
	}
	err = windows.CreateDirectory(ptr, nil)
	if errors.Is(err, windows.ERROR_ALREADY_EXISTS) && fs.DirectoryExists(p) {
		err = nil
	}
	return NewError("mkdir", p, err)
}

func (fs nativeFS) GetFileAttributes(p string) (FileAttributes, error) {
	attributes, err := fs.getAttributes(p)
	return FileAttributes(attributes), err
}

func (nativeFS) SetFileAttributes(p string, attributes FileAttributes) error {
	ptr, err := longPathPtr(p)
	if err != nil {
		return err
	}
	return NewError("setattributes", p,
		windows.SetFileAttributes(ptr, uint32(attributes)))
}

func (nativeFS) attributeData(p string) (*windows.Win32FileAttributeData, error) {
	ptr, err := longPathPtr(p)
	if err != nil {
		return nil, err
	}
	data := &windows.Win32FileAttributeData{}
	if err := windows.GetFileAttributesEx(
		ptr, windows.GetFileExInfoStandard,
		(*byte)(unsafe.Pointer(data)),
	); err != nil {
		return nil, NewError("stat", p, err)
	}
	return data, nil
}

func (fs nativeFS) GetFileTimes(p string) (FileTimes, error) {
	data, err := fs.attributeData(p)
	if err != nil {
		return FileTimes{}, err
	}
	return FileTimes{
		Creation:   filetime.Time(data.CreationTime),
		LastAccess: filetime.Time(data.LastAccessTime),
		LastWrite:  filetime.Time(data.LastWriteTime),
	}, nil
}

// SetFileTimes updates the timestamps through a handle opened
// with backup semantics, so that directories work as well.
func (nativeFS) SetFileTimes(p string, times FileTimes) error {
	ptr, err := longPathPtr(p)
	if err != nil {
		return err
	}
	handle, err := windows.CreateFile(
		ptr,
		windows.FILE_READ_ATTRIBUTES|windows.FILE_WRITE_ATTRIBUTES,
		windows.FILE_SHARE_READ|windows.FILE_SHARE_WRITE|windows.FILE_SHARE_DELETE,
		nil, windows.OPEN_EXISTING,
		windows.FILE_FLAG_BACKUP_SEMANTICS, 0,
	)
	if err != nil {
		return NewError("settimes", p, err)
	}
	f := os.NewFile(uintptr(handle), p)
	defer func() { _ = f.Close() }()
	info, err := winio.GetFileBasicInfo(f)
	if err != nil {
		return NewError("settimes", p, errors.Cause(err))
	}
	if !times.Creation.IsZero() {
		info.CreationTime = filetime.Timestamp(times.Creation)
	}
	if !times.LastAccess.IsZero() {
		info.LastAccessTime = filetime.Timestamp(times.LastAccess)
	}
	if !times.LastWrite.IsZero() {
		info.LastWriteTime = filetime.Timestamp(times.LastWrite)
	}
	if err := winio.SetFileBasicInfo(f, info); err != nil {
		return NewError("settimes", p, errors.Cause(err))
	}
	return nil
}

func (fs nativeFS) GetFileLength(p string) (uint64, error) {
	data, err := fs.attributeData(p)
	if err != nil {
		return 0, err
	}
	return uint64(data.FileSizeHigh)<<32 | uint64(data.FileSizeLow), nil
}

func (nativeFS) GetFileOwner(p string) (string, error) {
	long, err := longPath(p)
	if err != nil {
		return "", err
	}
	owner, err := secdesc.Owner(long)
	if err != nil {
		return "", NewError("owner", p, err)
	}
	return owner, nil
}

func (nativeFS) CreateFile(
	p string, disposition CreationDisposition,
	access FileAccess, share FileShare,
) (File, error) {
	ptr, err := longPathPtr(p)
	if err != nil {
		return nil, err
	}
	handle, err := windows.CreateFile(
		ptr, uint32(access), uint32(share), nil,
		uint32(disposition), windows.FILE_ATTRIBUTE_NORMAL, 0,
	)
	if err != nil {
		return nil, NewError("open", p, err)
	}
	return os.NewFile(uintptr(handle), p), nil
}

func (fs nativeFS) ReadAllBytes(p string) ([]byte, error) {
	f, err := fs.CreateFile(p, OpenExisting, GenericRead, ShareRead)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()
	data, err := io.ReadAll(f)
	if err != nil {
		return nil, NewError("read", p, err)
	}
	return data, nil
}
