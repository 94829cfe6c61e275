package safeops

import (
	"strings"

	"github.com/aegistudio/go-longpath/lpath"
)

// MoveFile moves the file, replacing whatever file is at
// the target and creating the directory holding it. Missing
// inputs make it a no-op, while failures of the move itself
// are returned.
func (o *Operations) MoveFile(source, target string) error {
	o.log.Info("About to safe-move file from %q to %q.", source, target)
	if source == "" || target == "" {
		o.log.Info("Source file path or destination file path " +
			"is empty. Not moving.")
		return nil
	}
	if !o.FileExists(source) {
		o.log.Info("Source file path to move does not exist: %q.", source)
		return nil
	}
	if err := o.DeleteFile(target); err != nil {
		return err
	}
	if err := o.createParent(target); err != nil {
		return err
	}
	return o.fs.MoveFile(source, target)
}

// CopyFile copies the file, creating the directory holding
// the target. The existing target is deleted first when
// overwriting, otherwise copying onto it fails. Copying a
// file onto itself, compared case insensitively, is a no-op.
func (o *Operations) CopyFile(source, target string, overwrite bool) error {
	o.log.Info("About to safe-copy file from %q to %q "+
		"with overwrite = %t.", source, target, overwrite)
	if source == "" || target == "" {
		o.log.Info("Source file path or destination file path " +
			"is empty. Not copying.")
		return nil
	}
	if strings.EqualFold(source, target) {
		o.log.Info("Source path and destination path are the same: "+
			"%q is %q. Not copying.", source, target)
		return nil
	}
	if !o.FileExists(source) {
		o.log.Info("Source file path to copy does not exist: %q.", source)
		return nil
	}
	if overwrite {
		if err := o.DeleteFile(target); err != nil {
			return err
		}
	}
	if err := o.createParent(target); err != nil {
		return err
	}
	return o.fs.CopyFile(source, target, overwrite)
}

// CopyFileDefault is CopyFile with DefaultOverwrite.
func (o *Operations) CopyFileDefault(source, target string) error {
	return o.CopyFile(source, target, DefaultOverwrite)
}

func (o *Operations) createParent(path string) error {
	parent := lpath.DirectoryPath(path)
	if parent == "" || o.fs.DirectoryExists(parent) {
		return nil
	}
	o.log.Info("Creating non-existing folder %q.", parent)
	return o.fs.CreateDirectory(parent)
}
