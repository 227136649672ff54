// Package cmd provides tests for CLI command handlers.
package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/taskline/taskline/internal/config"
)

func TestRun(t *testing.T) {
	t.Run("shows help with --help flag", func(t *testing.T) {
		if err := Run(context.Background(), []string{"--help"}); err != nil {
			t.Errorf("expected no error with --help, got %v", err)
		}
	})

	t.Run("shows version with --version flag", func(t *testing.T) {
		if err := Run(context.Background(), []string{"--version"}); err != nil {
			t.Errorf("expected no error with --version, got %v", err)
		}
	})

	t.Run("help command", func(t *testing.T) {
		if err := Run(context.Background(), []string{"help"}); err != nil {
			t.Errorf("expected no error with help command, got %v", err)
		}
	})

	t.Run("config command", func(t *testing.T) {
		if err := Run(context.Background(), []string{"config"}); err != nil {
			t.Errorf("expected no error with config command, got %v", err)
		}
	})

	t.Run("unknown command returns error", func(t *testing.T) {
		err := Run(context.Background(), []string{"frobnicate"})
		if err == nil {
			t.Error("expected error for unknown command")
		}
	})

	t.Run("run refuses without a TTY", func(t *testing.T) {
		tasksFile := filepath.Join(t.TempDir(), "tasks.json")
		t.Setenv("TASKLINE_TASKS", tasksFile)
		err := Run(context.Background(), []string{"run"})
		if err == nil || !strings.Contains(err.Error(), "terminal") {
			t.Errorf("expected TTY error under test harness, got %v", err)
		}
	})
}

func TestCheckCommand(t *testing.T) {
	t.Run("missing file is valid and empty", func(t *testing.T) {
		cfg := &config.Config{TasksFile: filepath.Join(t.TempDir(), "tasks.json")}
		var buf bytes.Buffer
		if err := checkCommand(cfg, &buf); err != nil {
			t.Fatalf("checkCommand: %v", err)
		}
		if !strings.Contains(buf.String(), "0 tasks") {
			t.Errorf("output: %q", buf.String())
		}
	})

	t.Run("valid file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "tasks.json")
		content := `[{"name": "Fix bug", "priority": "High"}]`
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
		cfg := &config.Config{TasksFile: path}
		var buf bytes.Buffer
		if err := checkCommand(cfg, &buf); err != nil {
			t.Fatalf("checkCommand: %v", err)
		}
		if !strings.Contains(buf.String(), "1 tasks, valid") {
			t.Errorf("output: %q", buf.String())
		}
	})

	t.Run("malformed file fails", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "tasks.json")
		if err := os.WriteFile(path, []byte(`{"oops"`), 0644); err != nil {
			t.Fatal(err)
		}
		cfg := &config.Config{TasksFile: path}
		var buf bytes.Buffer
		if err := checkCommand(cfg, &buf); err == nil {
			t.Error("expected error for malformed tasks file")
		}
	})
}

func TestStartupTasks(t *testing.T) {
	t.Run("missing file loads empty", func(t *testing.T) {
		cfg := &config.Config{TasksFile: filepath.Join(t.TempDir(), "tasks.json")}
		tasks, err := startupTasks(cfg)
		if err != nil {
			t.Fatalf("startupTasks: %v", err)
		}
		if len(tasks) != 0 {
			t.Errorf("got %d tasks, want 0", len(tasks))
		}
	})

	t.Run("malformed file is fatal", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "tasks.json")
		if err := os.WriteFile(path, []byte(`[{]`), 0644); err != nil {
			t.Fatal(err)
		}
		cfg := &config.Config{TasksFile: path}
		if _, err := startupTasks(cfg); err == nil {
			t.Error("expected fatal error for malformed file")
		}
	})
}
