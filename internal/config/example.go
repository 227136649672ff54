package config

// ExampleConfig returns an example configuration showing all available
// options.
func ExampleConfig() string {
	return `# taskline configuration file
# Values can be overridden by TASKLINE_* environment variables or CLI flags

# Tasks file (a JSON array of {name, priority} objects)
tasks_file = "tasks.json"

# Optional JSON Schema the tasks file is validated against at startup.
# Empty disables schema validation; minimal checks still run.
schema_file = ""

# Path for the PDF report written by the Export action
export_file = "tasks.pdf"

# Seed the two default tasks when the tasks file is empty or missing
seed_defaults = true

# Disable colored output
no_color = false

# Logging (diagnostics on stderr)
log_level = "info"
log_format = "text"
log_timestamps = false
log_caller = false
`
}
