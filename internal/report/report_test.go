package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/taskline/taskline/internal/task"
)

func TestExportWritesPDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.pdf")
	e := NewPDFExporter(path)

	got, err := e.Export([]task.KeyedTask{
		{ID: uuid.New(), Task: task.Task{Name: "Fix bug", Priority: task.PriorityHigh}},
		{ID: uuid.New(), Task: task.Task{Name: "Buy milk", Priority: task.PriorityLow}},
	})
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if got != path {
		t.Errorf("Export returned %q, want %q", got, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	if !strings.HasPrefix(string(data), "%PDF") {
		t.Errorf("report is not a PDF, starts with %q", data[:min(8, len(data))])
	}
}

func TestExportEmptyList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.pdf")
	if _, err := NewPDFExporter(path).Export(nil); err != nil {
		t.Fatalf("Export of empty list: %v", err)
	}
	if fi, err := os.Stat(path); err != nil || fi.Size() == 0 {
		t.Errorf("empty-list report not written: %v", err)
	}
}

func TestExportBadPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing-dir", "tasks.pdf")
	if _, err := NewPDFExporter(path).Export(nil); err == nil {
		t.Error("expected an error for an unwritable path")
	}
}
