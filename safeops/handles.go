package safeops

import (
	"github.com/aegistudio/go-longpath"
)

// The handle variants take the path of the handle, where a
// nil handle stands for the empty path.

func (o *Operations) DeleteFileHandle(file *longpath.File) error {
	return o.DeleteFile(file.FullName())
}

func (o *Operations) DeleteDirectoryHandle(dir *longpath.Directory) error {
	return o.DeleteDirectory(dir.FullName())
}

func (o *Operations) DeleteDirectoryContentsHandle(dir *longpath.Directory) error {
	return o.DeleteDirectoryContents(dir.FullName())
}

func (o *Operations) MoveFileHandle(source, target *longpath.File) error {
	return o.MoveFile(source.FullName(), target.FullName())
}

func (o *Operations) CopyFileHandle(
	source, target *longpath.File, overwrite bool,
) error {
	return o.CopyFile(source.FullName(), target.FullName(), overwrite)
}

func (o *Operations) FileHandleExists(file *longpath.File) bool {
	return o.FileExists(file.FullName())
}

func (o *Operations) DirectoryHandleExists(dir *longpath.Directory) bool {
	return o.DirectoryExists(dir.FullName())
}
