package task

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/google/uuid"
)

// Priority is a task priority level.
type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

// Priorities returns all priority levels, highest first. The slice is
// freshly allocated on each call so menu code may reorder it.
func Priorities() []Priority {
	return []Priority{PriorityHigh, PriorityMedium, PriorityLow}
}

// Valid returns true if p is one of the known priority levels.
func (p Priority) Valid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// Rank returns the sort rank of the priority. High sorts first.
// Unknown priorities rank after Low.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	case PriorityLow:
		return 2
	}
	return 3
}

func (p Priority) String() string {
	return string(p)
}

// UnmarshalJSON decodes a priority and rejects unknown values, so a
// tasks file carrying a bad priority fails to parse instead of loading
// silently corrupted.
func (p *Priority) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	v := Priority(s)
	if !v.Valid() {
		return fmt.Errorf("invalid priority %q, must be one of: High, Medium, Low", s)
	}
	*p = v
	return nil
}

// Task is a single task. Tasks are immutable once created: there is no
// edit operation, only add and remove. Empty names are accepted.
type Task struct {
	Name     string   `json:"name"`
	Priority Priority `json:"priority"`
}

func (t Task) String() string {
	return fmt.Sprintf("[%s]%s", t.Priority, t.Name)
}

// KeyedTask pairs a task with its store identifier. It is a view over
// the store, not a storage entity; it exists so a task can be shown
// with its identity and removed by it.
type KeyedTask struct {
	ID   uuid.UUID
	Task Task
}

func (kt KeyedTask) String() string {
	return fmt.Sprintf("%s - %s", kt.Task, kt.ID)
}

// SortByPriority orders tasks in place, highest priority first. The
// sort is stable so ties keep their enumeration order, but enumeration
// order itself is unspecified across runs.
func SortByPriority(tasks []KeyedTask) {
	sort.SliceStable(tasks, func(i, j int) bool {
		return tasks[i].Task.Priority.Rank() < tasks[j].Task.Priority.Rank()
	})
}
