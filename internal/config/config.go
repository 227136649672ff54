// Package config handles configuration loading and defaults.
package config

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

// Default values.
const (
	DefaultTasksFile  = "tasks.json"
	DefaultExportFile = "tasks.pdf"
	DefaultLogLevel   = "info"
	DefaultLogFormat  = "text"
)

// Config holds the full configuration for taskline.
type Config struct {
	// Paths
	TasksFile  string `toml:"tasks_file"`
	SchemaFile string `toml:"schema_file"`
	ExportFile string `toml:"export_file"`

	// Seed the store with the default tasks when the loaded list is empty.
	SeedDefaults bool `toml:"seed_defaults"`

	// Output
	NoColor bool `toml:"no_color"`

	// Logging
	LogLevel      string `toml:"log_level"`
	LogFormat     string `toml:"log_format"`
	LogTimestamps bool   `toml:"log_timestamps"`
	LogCaller     bool   `toml:"log_caller"`
}

// Load loads configuration from multiple sources in priority order:
// 1. Defaults
// 2. User config file (~/.config/taskline/taskline.toml or ~/.taskline/taskline.toml)
// 3. Project config file (taskline.toml or .taskline.toml in current directory)
// 4. Environment variables (TASKLINE_*)
// 5. CLI flags registered on fs
func Load(fs *flag.FlagSet, args []string) (*Config, error) {
	cfg := &Config{}
	setDefaults(cfg)

	if userFile := findUserConfigFile(); userFile != "" {
		if err := loadConfigFile(cfg, userFile); err != nil {
			return nil, fmt.Errorf("loading user config file %s: %w", userFile, err)
		}
	}

	if projectFile := findProjectConfigFile(); projectFile != "" {
		if err := loadConfigFile(cfg, projectFile); err != nil {
			return nil, fmt.Errorf("loading project config file %s: %w", projectFile, err)
		}
	}

	loadFromEnv(cfg)

	registerFlags(fs, cfg)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg.TasksFile = expandPath(cfg.TasksFile)
	cfg.SchemaFile = expandPath(cfg.SchemaFile)
	cfg.ExportFile = expandPath(cfg.ExportFile)

	return cfg, nil
}

func setDefaults(cfg *Config) {
	cfg.TasksFile = DefaultTasksFile
	cfg.SchemaFile = ""
	cfg.ExportFile = DefaultExportFile
	cfg.SeedDefaults = true
	cfg.NoColor = false
	cfg.LogLevel = DefaultLogLevel
	cfg.LogFormat = DefaultLogFormat
	cfg.LogTimestamps = false
	cfg.LogCaller = false
}

func loadConfigFile(cfg *Config, path string) error {
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return err
	}
	return nil
}

func findUserConfigFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	candidates := []string{
		filepath.Join(home, ".config", "taskline", "taskline.toml"),
		filepath.Join(home, ".taskline", "taskline.toml"),
	}
	for _, path := range candidates {
		if fi, err := os.Stat(path); err == nil && !fi.IsDir() {
			return path
		}
	}
	return ""
}

func findProjectConfigFile() string {
	for _, name := range []string{"taskline.toml", ".taskline.toml"} {
		if fi, err := os.Stat(name); err == nil && !fi.IsDir() {
			return name
		}
	}
	return ""
}

// loadFromEnv overrides config from environment variables.
func loadFromEnv(cfg *Config) {
	if v := os.Getenv("TASKLINE_TASKS"); v != "" {
		cfg.TasksFile = v
	}
	if v := os.Getenv("TASKLINE_SCHEMA"); v != "" {
		cfg.SchemaFile = v
	}
	if v := os.Getenv("TASKLINE_EXPORT"); v != "" {
		cfg.ExportFile = v
	}
	if v := os.Getenv("TASKLINE_SEED"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.SeedDefaults = b
		}
	}
	if v := os.Getenv("TASKLINE_NO_COLOR"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.NoColor = b
		}
	}
	if v := os.Getenv("TASKLINE_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("TASKLINE_LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
	}
}

// registerFlags binds CLI flags to cfg fields. Flag defaults are the
// already-merged values, so an unset flag changes nothing.
func registerFlags(fs *flag.FlagSet, cfg *Config) {
	fs.StringVar(&cfg.TasksFile, "tasks", cfg.TasksFile, "Path to the tasks file")
	fs.StringVar(&cfg.SchemaFile, "schema", cfg.SchemaFile, "Path to a JSON Schema for the tasks file (empty disables)")
	fs.StringVar(&cfg.ExportFile, "export", cfg.ExportFile, "Path for the PDF report written by the Export action")
	fs.BoolVar(&cfg.SeedDefaults, "seed", cfg.SeedDefaults, "Seed default tasks when the tasks file is empty or missing")
	fs.BoolVar(&cfg.NoColor, "no-color", cfg.NoColor, "Disable colored output")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug|info|warn|error)")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Log format (text|json|logfmt)")
}

// expandPath expands a leading ~/ and environment variables in paths.
func expandPath(p string) string {
	if p == "" {
		return p
	}
	expanded := os.ExpandEnv(p)
	if expanded == "~" {
		if home, err := os.UserHomeDir(); err == nil {
			return home
		}
		return expanded
	}
	if strings.HasPrefix(expanded, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, expanded[2:])
		}
	}
	return expanded
}
