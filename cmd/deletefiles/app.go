package main

import (
	"log"
	"os"

	"github.com/pkg/errors"
	"github.com/urfave/cli"

	"github.com/aegistudio/go-longpath/ioapi"
	"github.com/aegistudio/go-longpath/logger"
	"github.com/aegistudio/go-longpath/safeops"
)

const (
	flagQuiet       = "quiet, q"
	flagEventLog    = "eventlog"
	flagConfig      = "config, c"
	flagNoOverwrite = "no-overwrite"
)

// newApp creates the command line application operating on
// the access layer.
func newApp(fs ioapi.FS) *cli.App {
	app := cli.NewApp()
	app.Name = "deletefiles"
	app.Usage = "deletes files and directories, renaming aside what cannot be deleted"
	app.UsageText = "deletefiles [global options] <command> [arguments...]"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  flagQuiet,
			Usage: "do not trace the operations",
		},
		cli.StringFlag{
			Name:  flagEventLog,
			Usage: "trace the operations into the windows event log of `SOURCE`",
		},
	}
	withRunner := func(
		action func(*runner, *cli.Context) error,
	) func(*cli.Context) error {
		return func(ctx *cli.Context) error {
			r, closer, err := setup(ctx, fs)
			if err != nil {
				return err
			}
			defer func() { _ = closer() }()
			return action(r, ctx)
		}
	}
	app.Commands = []cli.Command{
		{
			Name:      actionContents,
			Usage:     "deletes everything inside the directories but keeps them",
			ArgsUsage: "DIR...",
			Action: withRunner(func(r *runner, ctx *cli.Context) error {
				return r.run(tasksOf(actionContents, ctx.Args()))
			}),
		},
		{
			Name:      actionDelete,
			Usage:     "deletes the files or directories",
			ArgsUsage: "PATH...",
			Action: withRunner(func(r *runner, ctx *cli.Context) error {
				return r.run(tasksOf(actionDelete, ctx.Args()))
			}),
		},
		{
			Name:      actionMove,
			Usage:     "moves the file, replacing the target",
			ArgsUsage: "SOURCE TARGET",
			Action: withRunner(func(r *runner, ctx *cli.Context) error {
				if ctx.NArg() != 2 {
					return errors.New("move requires SOURCE and TARGET")
				}
				return r.run([]Task{{
					Action: actionMove,
					Path:   ctx.Args().Get(0),
					Target: ctx.Args().Get(1),
				}})
			}),
		},
		{
			Name:      actionCopy,
			Usage:     "copies the file",
			ArgsUsage: "SOURCE TARGET",
			Flags: []cli.Flag{
				cli.BoolFlag{
					Name:  flagNoOverwrite,
					Usage: "fail instead of replacing an existing target",
				},
			},
			Action: withRunner(func(r *runner, ctx *cli.Context) error {
				if ctx.NArg() != 2 {
					return errors.New("copy requires SOURCE and TARGET")
				}
				overwrite := !ctx.Bool(flagNoOverwrite)
				return r.run([]Task{{
					Action:    actionCopy,
					Path:      ctx.Args().Get(0),
					Target:    ctx.Args().Get(1),
					Overwrite: &overwrite,
				}})
			}),
		},
		{
			Name:      "install-eventlog",
			Usage:     "registers the windows event log source used by --eventlog",
			ArgsUsage: "SOURCE",
			Action: func(ctx *cli.Context) error {
				if ctx.NArg() != 1 {
					return errors.New("install-eventlog requires SOURCE")
				}
				return installEventLog(ctx.Args().Get(0))
			},
		},
		{
			Name:  "run",
			Usage: "runs the tasks of a job file",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  flagConfig,
					Usage: "load the job from `FILE`",
				},
			},
			Action: withRunner(func(r *runner, ctx *cli.Context) error {
				path := ctx.String("config")
				if path == "" {
					return errors.New("run requires --config")
				}
				job, err := Load(path)
				if err != nil {
					return err
				}
				return r.run(job.Tasks)
			}),
		},
	}
	return app
}

func tasksOf(action string, args cli.Args) []Task {
	tasks := make([]Task, 0, len(args))
	for _, arg := range args {
		tasks = append(tasks, Task{Action: action, Path: arg})
	}
	return tasks
}

// setup creates the runner according to the global flags,
// the returned closer releases the logger.
func setup(ctx *cli.Context, fs ioapi.FS) (*runner, func() error, error) {
	var l logger.Logger = logger.NewStandardLogger(
		log.New(os.Stderr, "", log.LstdFlags))
	closer := func() error { return nil }
	if ctx.GlobalBool("quiet") {
		l = logger.NewNopLogger()
	}
	if source := ctx.GlobalString(flagEventLog); source != "" {
		eventLog, closeEventLog, err := openEventLog(source)
		if err != nil {
			return nil, nil, err
		}
		l = logger.NewMultiLogger(l, eventLog)
		closer = closeEventLog
	}
	return &runner{
		fs:  fs,
		ops: safeops.New(fs, safeops.Logger(l)),
		out: ctx.App.Writer,
	}, closer, nil
}
