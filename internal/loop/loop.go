// Package loop drives the interactive action cycle over the task store.
package loop

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/taskline/taskline/internal/task"
)

// ActionKind identifies one of the fixed menu actions.
type ActionKind int

const (
	ActionQuit ActionKind = iota
	ActionList
	ActionAdd
	ActionRemove
	ActionExport
	ActionUnknown
)

func (k ActionKind) String() string {
	switch k {
	case ActionQuit:
		return "Quit"
	case ActionList:
		return "List"
	case ActionAdd:
		return "Add"
	case ActionRemove:
		return "Remove"
	case ActionExport:
		return "Export"
	}
	return "Unknown"
}

// Action is a user action. Message carries the failure text for
// ActionUnknown, which stands in for any prompt error so dispatch
// stays a single exhaustive switch.
type Action struct {
	Kind    ActionKind
	Message string
}

// Actions returns the menu entries in presentation order.
func Actions() []Action {
	return []Action{
		{Kind: ActionQuit},
		{Kind: ActionList},
		{Kind: ActionAdd},
		{Kind: ActionRemove},
		{Kind: ActionExport},
	}
}

// State carries loop state across cycles. At most one (Remove, task)
// pair may be pending; it is committed at the start of the next cycle,
// never carried further.
type State struct {
	Continue      bool
	PendingAction *Action
	PendingTask   *task.KeyedTask
}

// InitialState returns the state the loop starts in.
func InitialState() State {
	return State{Continue: true}
}

// Prompter asks the user for input. Implementations return an error on
// cancellation or input failure; the loop recovers locally and never
// crashes on a failed prompt.
type Prompter interface {
	Action(options []Action) (Action, error)
	Text(label string) (string, error)
	Priority(label string, options []task.Priority) (task.Priority, error)
	Task(label string, options []task.KeyedTask) (task.KeyedTask, error)
}

// Renderer displays output to the user.
type Renderer interface {
	Clear()
	TaskList(tasks []task.KeyedTask)
	Message(msg string)
}

// Exporter writes a report of the task list and returns the path it
// was written to.
type Exporter interface {
	Export(tasks []task.KeyedTask) (string, error)
}

// Loop is the interactive action loop.
type Loop struct {
	store    *task.Store
	prompts  Prompter
	out      Renderer
	exporter Exporter
	logger   *log.Logger
}

// Option configures a Loop.
type Option func(*Loop)

// WithExporter sets the report exporter backing the Export action.
func WithExporter(e Exporter) Option {
	return func(l *Loop) {
		l.exporter = e
	}
}

// WithLogger sets the diagnostic logger.
func WithLogger(logger *log.Logger) Option {
	return func(l *Loop) {
		l.logger = logger
	}
}

// New creates a loop over the given store and collaborators.
func New(store *task.Store, prompts Prompter, out Renderer, opts ...Option) *Loop {
	l := &Loop{
		store:   store,
		prompts: prompts,
		out:     out,
		logger:  log.Default(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Run drives action cycles until the terminal state is reached via
// Quit, or ctx is cancelled between cycles.
func (l *Loop) Run(ctx context.Context) error {
	state := InitialState()
	for state.Continue {
		if err := ctx.Err(); err != nil {
			return err
		}
		state = l.Execute(l.nextAction(), state)
	}
	return nil
}

// nextAction presents the action menu. A prompt failure folds into
// Unknown so the loop keeps running.
func (l *Loop) nextAction() Action {
	a, err := l.prompts.Action(Actions())
	if err != nil {
		return Action{Kind: ActionUnknown, Message: err.Error()}
	}
	return a
}

// Execute commits any pending removal from the previous cycle, then
// applies a to the store and returns the next state.
func (l *Loop) Execute(a Action, state State) State {
	if state.PendingAction != nil && state.PendingTask != nil && state.PendingAction.Kind == ActionRemove {
		l.store.Remove(*state.PendingTask)
		l.logger.Debug("removed task", "id", state.PendingTask.ID, "name", state.PendingTask.Task.Name)
		state.PendingAction = nil
		state.PendingTask = nil
	}

	switch a.Kind {
	case ActionQuit:
		l.out.Clear()
		state.Continue = false
	case ActionList:
		l.listTasks()
	case ActionAdd:
		l.addTask()
	case ActionRemove:
		if kt, ok := l.selectTask(); ok {
			pending := a
			state.PendingAction = &pending
			state.PendingTask = &kt
		}
	case ActionExport:
		l.exportTasks()
	case ActionUnknown:
		l.out.Message("Action undefined: " + a.Message)
	}

	return state
}

func (l *Loop) listTasks() {
	l.out.Clear()
	all := l.store.All()
	task.SortByPriority(all)
	l.out.TaskList(all)
}

func (l *Loop) addTask() {
	name, err := l.prompts.Text("Task: ")
	if err != nil {
		l.out.Message("Error reading task")
		return
	}
	prio, err := l.prompts.Priority("Priority: ", task.Priorities())
	if err != nil {
		l.out.Message("Error reading priority")
		return
	}
	id := l.store.Add(task.Task{Name: name, Priority: prio})
	l.logger.Debug("added task", "id", id, "name", name, "priority", prio)
}

func (l *Loop) selectTask() (task.KeyedTask, bool) {
	all := l.store.All()
	task.SortByPriority(all)
	kt, err := l.prompts.Task("Select one of tasks: ", all)
	if err != nil {
		return task.KeyedTask{}, false
	}
	return kt, true
}

func (l *Loop) exportTasks() {
	if l.exporter == nil {
		l.out.Message("Export is not configured")
		return
	}
	all := l.store.All()
	task.SortByPriority(all)
	path, err := l.exporter.Export(all)
	if err != nil {
		l.out.Message("Export failed: " + err.Error())
		l.logger.Error("export failed", "err", err)
		return
	}
	l.out.Message(fmt.Sprintf("Exported %d tasks to %s", len(all), path))
}
