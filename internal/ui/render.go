// Package ui implements the terminal prompts and rendering used by the
// interactive loop.
package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"

	"github.com/taskline/taskline/internal/task"
)

var (
	styleHigh   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	styleMedium = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	styleLow    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	styleName   = lipgloss.NewStyle().Foreground(lipgloss.Color("13"))
	styleEmpty  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	styleCursor = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
)

func priorityStyle(p task.Priority) lipgloss.Style {
	switch p {
	case task.PriorityHigh:
		return styleHigh
	case task.PriorityMedium:
		return styleMedium
	}
	return styleLow
}

// FormatTask renders one task line: the priority right-aligned in a
// color-coded cell, the name in magenta.
func FormatTask(t task.Task, color bool) string {
	cell := fmt.Sprintf("[%10s]", t.Priority)
	if !color {
		return fmt.Sprintf("%s %s", cell, t.Name)
	}
	return fmt.Sprintf("%s %s", priorityStyle(t.Priority).Render(cell), styleName.Render(t.Name))
}

// Console renders loop output to a terminal.
type Console struct {
	out   io.Writer
	color bool
}

// NewConsole creates a console renderer. noColor disables all escape
// styling except the screen clear.
func NewConsole(w io.Writer, noColor bool) *Console {
	return &Console{out: w, color: !noColor}
}

// Clear clears the screen and homes the cursor.
func (c *Console) Clear() {
	fmt.Fprint(c.out, "\x1b[2J\x1b[H")
}

// TaskList prints tasks one per line, or a placeholder when empty.
// Callers pass the list already sorted.
func (c *Console) TaskList(tasks []task.KeyedTask) {
	if len(tasks) == 0 {
		msg := "No tasks"
		if c.color {
			msg = styleEmpty.Render(msg)
		}
		fmt.Fprintln(c.out, msg)
		return
	}
	for _, kt := range tasks {
		fmt.Fprintln(c.out, FormatTask(kt.Task, c.color))
	}
}

// Message prints a plain line.
func (c *Console) Message(msg string) {
	fmt.Fprintln(c.out, msg)
}

// IsTTY returns true if w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}
