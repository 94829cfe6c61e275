package longpath

import (
	"time"

	"github.com/aegistudio/go-longpath/ioapi"
)

// entry carries what files and directories have in common,
// the accessors of attributes and timestamps.
type entry struct {
	fs   ioapi.FS
	path string
}

// FS returns the access layer the entry lives on.
func (e entry) FS() ioapi.FS {
	return e.fs
}

func (e entry) Attributes() (ioapi.FileAttributes, error) {
	return e.fs.GetFileAttributes(e.path)
}

func (e entry) SetAttributes(attributes ioapi.FileAttributes) error {
	return e.fs.SetFileAttributes(e.path, attributes)
}

func (e entry) LastWriteTime() (time.Time, error) {
	times, err := e.fs.GetFileTimes(e.path)
	return times.LastWrite, err
}

func (e entry) SetLastWriteTime(t time.Time) error {
	return e.fs.SetFileTimes(e.path, ioapi.FileTimes{LastWrite: t})
}

func (e entry) LastAccessTime() (time.Time, error) {
	times, err := e.fs.GetFileTimes(e.path)
	return times.LastAccess, err
}

func (e entry) SetLastAccessTime(t time.Time) error {
	return e.fs.SetFileTimes(e.path, ioapi.FileTimes{LastAccess: t})
}

func (e entry) CreationTime() (time.Time, error) {
	times, err := e.fs.GetFileTimes(e.path)
	return times.Creation, err
}

func (e entry) SetCreationTime(t time.Time) error {
	return e.fs.SetFileTimes(e.path, ioapi.FileTimes{Creation: t})
}
