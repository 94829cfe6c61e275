package safeops

import (
	"sync"

	"github.com/aegistudio/go-longpath/ioapi"
)

// faultFS injects failures into the wrapped access layer and
// records the calls that would mutate the file system.
type faultFS struct {
	ioapi.FS

	mtx    sync.Mutex
	faults map[string]error
	calls  []string
}

func newFaultFS(fs ioapi.FS) *faultFS {
	return &faultFS{FS: fs, faults: make(map[string]error)}
}

// inject makes the call of op on path fail with err.
func (f *faultFS) inject(op, path string, err error) {
	f.mtx.Lock()
	defer f.mtx.Unlock()
	f.faults[op+" "+path] = err
}

func (f *faultFS) mutations() []string {
	f.mtx.Lock()
	defer f.mtx.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *faultFS) call(op, path string) error {
	f.mtx.Lock()
	defer f.mtx.Unlock()
	f.calls = append(f.calls, op+" "+path)
	return f.faults[op+" "+path]
}

func (f *faultFS) DeleteFile(path string) error {
	if err := f.call("delete", path); err != nil {
		return err
	}
	return f.FS.DeleteFile(path)
}

func (f *faultFS) MoveFile(source, target string) error {
	if err := f.call("move", source); err != nil {
		return err
	}
	return f.FS.MoveFile(source, target)
}

func (f *faultFS) CopyFile(source, target string, overwrite bool) error {
	if err := f.call("copy", source); err != nil {
		return err
	}
	return f.FS.CopyFile(source, target, overwrite)
}

func (f *faultFS) DeleteDirectory(path string, recursive bool) error {
	if err := f.call("rmdir", path); err != nil {
		return err
	}
	return f.FS.DeleteDirectory(path, recursive)
}

func (f *faultFS) MoveDirectory(source, target string) error {
	if err := f.call("movedir", source); err != nil {
		return err
	}
	return f.FS.MoveDirectory(source, target)
}

func (f *faultFS) CreateDirectory(path string) error {
	if err := f.call("mkdir", path); err != nil {
		return err
	}
	return f.FS.CreateDirectory(path)
}

func (f *faultFS) SetFileAttributes(
	path string, attributes ioapi.FileAttributes,
) error {
	if err := f.call("setattributes", path); err != nil {
		return err
	}
	return f.FS.SetFileAttributes(path, attributes)
}
