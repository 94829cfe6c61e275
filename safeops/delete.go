package safeops

import (
	"github.com/pkg/errors"

	"github.com/aegistudio/go-longpath/ioapi"
)

// DeleteFile deletes the file if it exists, clearing its
// read-only attribute first. A file that still cannot be
// deleted is renamed aside.
func (o *Operations) DeleteFile(path string) error {
	o.log.Info("About to safe-delete file %q.", path)
	if !o.FileExists(path) {
		o.log.Info("Not safe-deleting file %q, "+
			"because the file does not exist.", path)
		return nil
	}
	err := o.deleteFile(path)
	if err == nil || !tolerable(err) {
		return err
	}
	target := DeletedFileName(path, o.token())
	o.log.Warning("Failed deleting file %q, renaming now to %q: %v",
		path, target, err)
	if err := o.fs.MoveFile(path, target); err != nil {
		if !tolerable(err) {
			return err
		}
		o.log.Warning("Failed renaming file %q to %q upon failed "+
			"deleting, giving up: %v", path, target, err)
	}
	return nil
}

func (o *Operations) deleteFile(path string) error {
	attributes, err := o.fs.GetFileAttributes(path)
	if err != nil {
		return err
	}
	if attributes.Has(ioapi.AttributeReadOnly) {
		attributes &^= ioapi.AttributeReadOnly
		if attributes == 0 {
			attributes = ioapi.AttributeNormal
		}
		if err := o.fs.SetFileAttributes(path, attributes); err != nil {
			return err
		}
	}
	return o.fs.DeleteFile(path)
}

// DeleteDirectory deletes the directory with all of its
// content if it exists. A directory that cannot be deleted
// is renamed aside as a whole.
func (o *Operations) DeleteDirectory(path string) error {
	o.log.Info("About to safe-delete directory %q.", path)
	if !o.DirectoryExists(path) {
		o.log.Info("Not safe-deleting directory %q, "+
			"because the directory does not exist.", path)
		return nil
	}
	err := o.fs.DeleteDirectory(path, true)
	if err == nil || !tolerable(err) {
		return err
	}
	target := DeletedDirectoryName(path, o.token())
	o.log.Warning("Failed deleting directory %q, renaming now to %q: %v",
		path, target, err)
	if err := o.fs.MoveDirectory(path, target); err != nil {
		if !tolerable(err) {
			return err
		}
		o.log.Warning("Failed renaming directory %q to %q upon failed "+
			"deleting, giving up: %v", path, target, err)
	}
	return nil
}

// DeleteDirectoryContents deletes everything inside the
// directory but keeps the directory itself.
//
// Files are deleted by DeleteFile. Subdirectories are
// emptied the same way, and those left with no entry at
// all are deleted right away, without renaming them aside
// on failure.
func (o *Operations) DeleteDirectoryContents(path string) error {
	o.log.Info("About to safe-delete contents of directory %q.", path)
	if !o.DirectoryExists(path) {
		o.log.Info("Not safe-deleting contents of directory %q, "+
			"because the directory does not exist.", path)
		return nil
	}
	files, err := o.fs.GetFiles(path, ioapi.AllPattern, ioapi.TopDirectoryOnly)
	if err != nil {
		return errors.Wrapf(err, "list files of %q", path)
	}
	for _, file := range files {
		if err := o.DeleteFile(file); err != nil {
			return err
		}
	}
	dirs, err := o.fs.GetDirectories(path, ioapi.AllPattern, ioapi.TopDirectoryOnly)
	if err != nil {
		return errors.Wrapf(err, "list directories of %q", path)
	}
	for _, dir := range dirs {
		if err := o.DeleteDirectoryContents(dir); err != nil {
			return err
		}
		empty, err := o.isEmpty(dir)
		if err != nil {
			return err
		}
		if !empty {
			o.log.Info("Keeping directory %q, "+
				"because it is not empty.", dir)
			continue
		}
		o.log.Info("Deleting emptied directory %q.", dir)
		if err := o.fs.DeleteDirectory(dir, true); err != nil {
			return err
		}
	}
	return nil
}

func (o *Operations) isEmpty(path string) (bool, error) {
	files, err := o.fs.GetFiles(path, ioapi.AllPattern, ioapi.TopDirectoryOnly)
	if err != nil {
		return false, errors.Wrapf(err, "list files of %q", path)
	}
	dirs, err := o.fs.GetDirectories(path, ioapi.AllPattern, ioapi.TopDirectoryOnly)
	if err != nil {
		return false, errors.Wrapf(err, "list directories of %q", path)
	}
	return len(files) == 0 && len(dirs) == 0, nil
}
