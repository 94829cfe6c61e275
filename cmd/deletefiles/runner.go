package main

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"

	"github.com/aegistudio/go-longpath/ioapi"
	"github.com/aegistudio/go-longpath/safeops"
)

// runner executes the tasks and reports on out.
type runner struct {
	fs  ioapi.FS
	ops *safeops.Operations
	out io.Writer
}

// usage sums up the files below a directory.
type usage struct {
	files int
	bytes uint64
}

func (u usage) String() string {
	return fmt.Sprintf("%s files, %s",
		humanize.Comma(int64(u.files)), humanize.Bytes(u.bytes))
}

// removed is what is gone between the two measurements,
// entries that have grown meanwhile count as nothing removed.
func (u usage) removed(after usage) usage {
	var result usage
	if u.files > after.files {
		result.files = u.files - after.files
	}
	if u.bytes > after.bytes {
		result.bytes = u.bytes - after.bytes
	}
	return result
}

func (r *runner) measure(dir string) (usage, error) {
	files, err := r.fs.GetFiles(dir, ioapi.AllPattern, ioapi.AllDirectories)
	if err != nil {
		return usage{}, errors.Wrapf(err, "measure %q", dir)
	}
	result := usage{files: len(files)}
	for _, file := range files {
		length, err := r.fs.GetFileLength(file)
		if err != nil {
			// Gone or unreadable meanwhile, not worth failing.
			continue
		}
		result.bytes += length
	}
	return result, nil
}

func (r *runner) contents(dir string) error {
	if !r.ops.DirectoryExists(dir) {
		return r.ops.DeleteDirectoryContents(dir)
	}
	before, err := r.measure(dir)
	if err != nil {
		return err
	}
	if err := r.ops.DeleteDirectoryContents(dir); err != nil {
		return err
	}
	after, err := r.measure(dir)
	if err != nil {
		return err
	}
	fmt.Fprintf(r.out, "%s: removed %s, left %s\n",
		dir, before.removed(after), after)
	return nil
}

func (r *runner) delete(path string) error {
	if r.ops.DirectoryExists(path) {
		return r.ops.DeleteDirectory(path)
	}
	return r.ops.DeleteFile(path)
}

func (r *runner) execute(task Task) error {
	var err error
	switch task.Action {
	case actionContents:
		err = r.contents(task.Path)
	case actionDelete:
		err = r.delete(task.Path)
	case actionMove:
		err = r.ops.MoveFile(task.Path, task.Target)
	case actionCopy:
		overwrite := safeops.DefaultOverwrite
		if task.Overwrite != nil {
			overwrite = *task.Overwrite
		}
		err = r.ops.CopyFile(task.Path, task.Target, overwrite)
	default:
		err = errors.Wrapf(errUnknownAction, "%q", task.Action)
	}
	return errors.Wrapf(err, "%s %q", task.Action, task.Path)
}

// run executes every task, a failed task does not stop the
// following ones. All failures are returned together.
func (r *runner) run(tasks []Task) error {
	var result *multierror.Error
	for _, task := range tasks {
		if err := r.execute(task); err != nil {
			result = multierror.Append(result, err)
		}
	}
	return result.ErrorOrNil()
}
