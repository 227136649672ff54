package task

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

// LoadFile reads tasks from path. A missing file is not an error and
// yields an empty list; malformed content is an error and is treated as
// fatal by callers at startup.
func LoadFile(path string) ([]Task, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read tasks file: %w", err)
	}

	var tasks []Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		return nil, fmt.Errorf("parse tasks file: %w", err)
	}

	return tasks, nil
}

// SaveFile writes the full task list to path with 2-space indentation,
// overwriting unconditionally. The write is a plain overwrite, not a
// temp-file-then-rename.
func SaveFile(path string, tasks []Task) error {
	if tasks == nil {
		tasks = []Task{}
	}

	data, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal tasks: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write tasks file: %w", err)
	}

	return nil
}

// Seed returns the default tasks used when the loaded list is empty.
func Seed() []Task {
	return []Task{
		{Name: "Learn Rust", Priority: PriorityHigh},
		{Name: "Learn NeoVim", Priority: PriorityMedium},
	}
}

// ValidationError is a validation failure with the JSON path that
// triggered it.
type ValidationError struct {
	Path string
	Err  error
}

func (e *ValidationError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s", e.Path, e.Err)
	}
	return e.Err.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// ValidationResult collects validation errors and warnings.
type ValidationResult struct {
	Valid      bool
	Errors     []error
	Warnings   []string
	UsedSchema bool
}

// Validate checks a task list. When schemaPath names a readable JSON
// Schema file the list is validated against it; otherwise minimal
// checks run (priority must be a known level). An unreadable or
// invalid schema degrades to the minimal checks with a warning rather
// than failing the program.
func Validate(tasks []Task, schemaPath string) *ValidationResult {
	result := &ValidationResult{Valid: true}

	if schemaPath != "" {
		validateWithSchema(tasks, schemaPath, result)
		if result.UsedSchema {
			return result
		}
		result.Warnings = append(result.Warnings, "schema validation not available, using minimal checks")
	}

	for i, t := range tasks {
		if !t.Priority.Valid() {
			result.Valid = false
			result.Errors = append(result.Errors, &ValidationError{
				Path: fmt.Sprintf("[%d].priority", i),
				Err:  fmt.Errorf("invalid priority %q", t.Priority),
			})
		}
	}

	return result
}

func validateWithSchema(tasks []Task, schemaPath string, result *ValidationResult) {
	absPath, err := filepath.Abs(schemaPath)
	if err != nil {
		result.Warnings = append(result.Warnings, fmt.Sprintf("invalid schema path: %v", err))
		return
	}
	if _, err := os.Stat(absPath); err != nil {
		if os.IsNotExist(err) {
			result.Warnings = append(result.Warnings, fmt.Sprintf("schema file not found: %s", absPath))
		} else {
			result.Warnings = append(result.Warnings, fmt.Sprintf("failed to read schema file: %v", err))
		}
		return
	}

	compiler := jsonschema.NewCompiler()
	compiler.AssertFormat = true
	schema, err := compiler.Compile(absPath)
	if err != nil {
		result.Warnings = append(result.Warnings, fmt.Sprintf("invalid schema file: %v", err))
		return
	}

	result.UsedSchema = true

	if tasks == nil {
		tasks = []Task{}
	}
	data, err := json.Marshal(tasks)
	if err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Errorf("marshal tasks for validation: %w", err))
		return
	}
	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Errorf("unmarshal tasks for validation: %w", err))
		return
	}

	if err := schema.Validate(doc); err != nil {
		result.Valid = false
		if ve, ok := err.(*jsonschema.ValidationError); ok {
			collectSchemaErrors(result, ve)
		} else {
			result.Errors = append(result.Errors, err)
		}
	}
}

func collectSchemaErrors(result *ValidationResult, err *jsonschema.ValidationError) {
	if err == nil {
		return
	}
	if len(err.Causes) == 0 {
		result.Errors = append(result.Errors, &ValidationError{
			Path: err.InstanceLocation,
			Err:  fmt.Errorf("%s", err.Message),
		})
		return
	}
	for _, cause := range err.Causes {
		collectSchemaErrors(result, cause)
	}
}
