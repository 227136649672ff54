// Package report writes the task list to a PDF file.
package report

import (
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/taskline/taskline/internal/task"
)

// PDFExporter writes a PDF report of the task list to a fixed path.
type PDFExporter struct {
	path string
}

// NewPDFExporter creates an exporter writing to path.
func NewPDFExporter(path string) *PDFExporter {
	return &PDFExporter{path: path}
}

// Export writes tasks to the report file and returns its path. Tasks
// are written in the order given; callers pass the listing sorted.
func (e *PDFExporter) Export(tasks []task.KeyedTask) (string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(40, 10, "Task List")
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 10)
	if len(tasks) == 0 {
		pdf.MultiCell(0, 6, "No tasks", "0", "L", false)
	}
	counts := make(map[task.Priority]int)
	for _, kt := range tasks {
		counts[kt.Task.Priority]++
		line := fmt.Sprintf("[%s] %s", kt.Task.Priority, kt.Task.Name)
		pdf.MultiCell(0, 6, line, "0", "L", false)
	}

	pdf.Ln(6)
	pdf.SetFont("Arial", "I", 9)
	summary := fmt.Sprintf("%d tasks (High: %d, Medium: %d, Low: %d)",
		len(tasks),
		counts[task.PriorityHigh],
		counts[task.PriorityMedium],
		counts[task.PriorityLow],
	)
	pdf.MultiCell(0, 5, summary, "0", "L", false)

	if err := pdf.OutputFileAndClose(e.path); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}
	return e.path, nil
}
