package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/taskline/taskline/internal/task"
)

func TestFormatTaskPlain(t *testing.T) {
	got := FormatTask(task.Task{Name: "Fix bug", Priority: task.PriorityHigh}, false)
	want := "[      High] Fix bug"
	if got != want {
		t.Errorf("FormatTask: got %q, want %q", got, want)
	}
}

func TestFormatTaskColorKeepsText(t *testing.T) {
	got := FormatTask(task.Task{Name: "Buy milk", Priority: task.PriorityLow}, true)
	if !strings.Contains(got, "Low") || !strings.Contains(got, "Buy milk") {
		t.Errorf("colored line lost its text: %q", got)
	}
}

func TestConsoleTaskList(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf, true)

	c.TaskList([]task.KeyedTask{
		{ID: uuid.New(), Task: task.Task{Name: "Fix bug", Priority: task.PriorityHigh}},
		{ID: uuid.New(), Task: task.Task{Name: "Buy milk", Priority: task.PriorityLow}},
	})

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2: %q", len(lines), buf.String())
	}
	if !strings.Contains(lines[0], "Fix bug") || !strings.Contains(lines[1], "Buy milk") {
		t.Errorf("list order lost: %v", lines)
	}
}

func TestConsoleTaskListEmpty(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf, true)

	c.TaskList(nil)

	if strings.TrimSpace(buf.String()) != "No tasks" {
		t.Errorf("empty list placeholder: got %q", buf.String())
	}
}

func TestConsoleClear(t *testing.T) {
	var buf bytes.Buffer
	NewConsole(&buf, true).Clear()
	if buf.String() != "\x1b[2J\x1b[H" {
		t.Errorf("Clear wrote %q", buf.String())
	}
}

func TestIsTTYOnBuffer(t *testing.T) {
	if IsTTY(&bytes.Buffer{}) {
		t.Error("a buffer is not a TTY")
	}
}
