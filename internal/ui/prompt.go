package ui

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/taskline/taskline/internal/loop"
	"github.com/taskline/taskline/internal/task"
)

// ErrCanceled reports a prompt dismissed with esc or ctrl+c. The loop
// recovers from it locally.
var ErrCanceled = errors.New("prompt canceled")

// Prompter implements loop.Prompter with one small bubbletea program
// per prompt, so each question renders inline and returns control to
// the loop, instead of one long-lived alt-screen TUI.
type Prompter struct {
	in    io.Reader
	out   io.Writer
	color bool
}

// NewPrompter creates a prompter reading from in and rendering to out.
func NewPrompter(in io.Reader, out io.Writer, noColor bool) *Prompter {
	return &Prompter{in: in, out: out, color: !noColor}
}

// Action asks the user to pick one of the menu actions.
func (p *Prompter) Action(options []loop.Action) (loop.Action, error) {
	labels := make([]string, len(options))
	for i, a := range options {
		labels[i] = a.Kind.String()
	}
	i, err := p.selectOne("Select action: ", labels)
	if err != nil {
		return loop.Action{}, err
	}
	return options[i], nil
}

// Text asks for one line of free text. Empty input is accepted.
func (p *Prompter) Text(label string) (string, error) {
	ti := textinput.New()
	ti.Prompt = label
	ti.CharLimit = 256
	ti.Focus()

	m := &textModel{input: ti}
	final, err := p.run(m)
	if err != nil {
		return "", err
	}
	tm := final.(*textModel)
	if tm.canceled {
		return "", ErrCanceled
	}
	return tm.input.Value(), nil
}

// Priority asks the user to pick one priority level.
func (p *Prompter) Priority(label string, options []task.Priority) (task.Priority, error) {
	labels := make([]string, len(options))
	for i, prio := range options {
		labels[i] = prio.String()
	}
	i, err := p.selectOne(label, labels)
	if err != nil {
		return "", err
	}
	return options[i], nil
}

// Task asks the user to pick one task, formatted with color exactly
// like the listing.
func (p *Prompter) Task(label string, options []task.KeyedTask) (task.KeyedTask, error) {
	if len(options) == 0 {
		return task.KeyedTask{}, fmt.Errorf("no tasks to select from")
	}
	labels := make([]string, len(options))
	for i, kt := range options {
		labels[i] = FormatTask(kt.Task, p.color)
	}
	i, err := p.selectOne(label, labels)
	if err != nil {
		return task.KeyedTask{}, err
	}
	return options[i], nil
}

func (p *Prompter) selectOne(title string, labels []string) (int, error) {
	m := &selectModel{title: title, options: labels, choice: -1, color: p.color}
	final, err := p.run(m)
	if err != nil {
		return 0, err
	}
	sm := final.(*selectModel)
	if sm.choice < 0 {
		return 0, ErrCanceled
	}
	return sm.choice, nil
}

func (p *Prompter) run(m tea.Model) (tea.Model, error) {
	program := tea.NewProgram(m, tea.WithInput(p.in), tea.WithOutput(p.out))
	return program.Run()
}

// selectModel is a minimal cursor-driven list prompt.
type selectModel struct {
	title   string
	options []string
	cursor  int
	choice  int
	color   bool
}

func (m *selectModel) Init() tea.Cmd {
	return nil
}

func (m *selectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.choice = -1
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.options)-1 {
				m.cursor++
			}
		case "enter":
			m.choice = m.cursor
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m *selectModel) View() string {
	var b strings.Builder
	b.WriteString(m.title + "\n")
	for i, opt := range m.options {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
			if m.color {
				cursor = styleCursor.Render("> ")
			}
		}
		b.WriteString(cursor + opt + "\n")
	}
	return b.String()
}

// textModel wraps a bubbles textinput in a one-shot program.
type textModel struct {
	input    textinput.Model
	canceled bool
}

func (m *textModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *textModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.canceled = true
			return m, tea.Quit
		case tea.KeyEnter:
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *textModel) View() string {
	return m.input.View() + "\n"
}
