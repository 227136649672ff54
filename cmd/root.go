// Package cmd implements the CLI command structure for taskline.
package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/taskline/taskline/internal/config"
	"github.com/taskline/taskline/internal/logging"
	"github.com/taskline/taskline/internal/loop"
	"github.com/taskline/taskline/internal/report"
	"github.com/taskline/taskline/internal/task"
	"github.com/taskline/taskline/internal/ui"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Run executes the taskline CLI.
func Run(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("taskline", flag.ContinueOnError)
	fs.Usage = func() {
		printUsage(fs, os.Stderr)
	}
	help := fs.Bool("help", false, "Show help")
	fs.BoolVar(help, "h", false, "Show help")
	showVersion := fs.Bool("version", false, "Show version")
	fs.BoolVar(showVersion, "v", false, "Show version")

	cfg, err := config.Load(fs, args)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if *help {
		printUsage(fs, os.Stdout)
		return nil
	}
	if *showVersion {
		fmt.Println("taskline " + Version)
		return nil
	}

	// Determine the subcommand; no args means the interactive loop.
	subcommand := "run"
	remaining := fs.Args()
	if len(remaining) > 0 && !strings.HasPrefix(remaining[0], "-") {
		subcommand = remaining[0]
		// Flags may follow the subcommand; parse the rest with the
		// same flag set.
		if err := fs.Parse(remaining[1:]); err != nil {
			return err
		}
		remaining = fs.Args()
	}
	if len(remaining) > 0 {
		return fmt.Errorf("unexpected arguments: %s", strings.Join(remaining, " "))
	}

	switch subcommand {
	case "run":
		return runCommand(ctx, cfg)
	case "check":
		return checkCommand(cfg, os.Stdout)
	case "config":
		fmt.Print(config.ExampleConfig())
		return nil
	case "version":
		fmt.Println("taskline " + Version)
		return nil
	case "help":
		printUsage(fs, os.Stdout)
		return nil
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", subcommand)
		printUsage(fs, os.Stderr)
		return fmt.Errorf("unknown command: %s", subcommand)
	}
}

// runCommand runs the interactive menu loop: load, loop, save on quit.
func runCommand(ctx context.Context, cfg *config.Config) error {
	logger := logging.New(cfg)

	if !ui.IsTTY(os.Stdout) {
		return fmt.Errorf("interactive mode requires a terminal")
	}

	tasks, err := startupTasks(cfg)
	if err != nil {
		return err
	}

	store := task.NewStore()
	if len(tasks) == 0 && cfg.SeedDefaults {
		tasks = task.Seed()
		logger.Debug("seeded default tasks", "count", len(tasks))
	}
	for _, t := range tasks {
		store.Add(t)
	}
	logger.Debug("loaded tasks", "file", cfg.TasksFile, "count", store.Len())

	prompter := ui.NewPrompter(os.Stdin, os.Stdout, cfg.NoColor)
	console := ui.NewConsole(os.Stdout, cfg.NoColor)
	exporter := report.NewPDFExporter(cfg.ExportFile)

	l := loop.New(store, prompter, console,
		loop.WithExporter(exporter),
		loop.WithLogger(logger),
	)
	if err := l.Run(ctx); err != nil {
		return err
	}

	// Save once, after Quit. An abnormal exit before this point loses
	// the session's changes.
	all := store.All()
	out := make([]task.Task, len(all))
	for i, kt := range all {
		out[i] = kt.Task
	}
	if err := task.SaveFile(cfg.TasksFile, out); err != nil {
		return err
	}
	logger.Debug("saved tasks", "file", cfg.TasksFile, "count", len(out))
	return nil
}

// checkCommand validates the tasks file and reports the result.
func checkCommand(cfg *config.Config, w io.Writer) error {
	tasks, err := task.LoadFile(cfg.TasksFile)
	if err != nil {
		return err
	}

	result := task.Validate(tasks, cfg.SchemaFile)
	for _, warning := range result.Warnings {
		fmt.Fprintf(w, "warning: %s\n", warning)
	}
	if !result.Valid {
		for _, e := range result.Errors {
			fmt.Fprintf(w, "error: %s\n", e)
		}
		return fmt.Errorf("%s: %d validation errors", cfg.TasksFile, len(result.Errors))
	}

	fmt.Fprintf(w, "%s: %d tasks, valid\n", cfg.TasksFile, len(tasks))
	return nil
}

// startupTasks loads and validates the persisted list. Malformed or
// schema-invalid content is fatal before the loop starts.
func startupTasks(cfg *config.Config) ([]task.Task, error) {
	tasks, err := task.LoadFile(cfg.TasksFile)
	if err != nil {
		return nil, err
	}
	result := task.Validate(tasks, cfg.SchemaFile)
	if !result.Valid {
		return nil, fmt.Errorf("%s: invalid tasks file: %s", cfg.TasksFile, result.Errors[0])
	}
	return tasks, nil
}

func printUsage(fs *flag.FlagSet, w io.Writer) {
	fmt.Fprintf(w, `taskline - terminal task list manager

Usage:
  taskline [flags]            Start the interactive menu loop
  taskline check [flags]      Validate the tasks file
  taskline config             Print an example configuration file
  taskline version            Show version
  taskline help               Show this help

Flags:
`)
	fs.SetOutput(w)
	fs.PrintDefaults()
}
