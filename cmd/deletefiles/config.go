package main

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/aegistudio/go-longpath/safeops"
)

const (
	actionContents = "contents"
	actionDelete   = "delete"
	actionMove     = "move"
	actionCopy     = "copy"
)

// Task is a single operation of a job file.
type Task struct {
	Action    string `yaml:"action"`
	Path      string `yaml:"path"`
	Target    string `yaml:"target"`
	Overwrite *bool  `yaml:"overwrite"`
}

// Job is the content of a job file, whose tasks are run in
// order.
type Job struct {
	Tasks []Task `yaml:"tasks"`
}

var (
	errNoTasks       = errors.New("job must specify tasks")
	errUnknownAction = errors.New("unknown action")
	errNoPath        = errors.New("task must specify path")
	errNoTarget      = errors.New("task must specify target")
)

func Load(path string) (*Job, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open job")
	}
	defer func() { _ = f.Close() }()
	job, err := decode(f)
	if err != nil {
		return nil, err
	}
	if err := job.validateAndDefault(); err != nil {
		return nil, err
	}
	return job, nil
}

func decode(r io.Reader) (*Job, error) {
	job := &Job{}
	if err := yaml.NewDecoder(r).Decode(job); err != nil {
		return nil, errors.Wrap(err, "decode yaml")
	}
	return job, nil
}

func (j *Job) validateAndDefault() error {
	if len(j.Tasks) == 0 {
		return errNoTasks
	}
	for i := range j.Tasks {
		task := &j.Tasks[i]
		switch task.Action {
		case actionContents, actionDelete:
		case actionMove, actionCopy:
			if task.Target == "" {
				return errors.Wrapf(errNoTarget, "task %d", i)
			}
		default:
			return errors.Wrapf(errUnknownAction, "task %d: %q", i, task.Action)
		}
		if task.Path == "" {
			return errors.Wrapf(errNoPath, "task %d", i)
		}
		if task.Action == actionCopy && task.Overwrite == nil {
			overwrite := safeops.DefaultOverwrite
			task.Overwrite = &overwrite
		}
	}
	return nil
}
