package ui

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"tada/internal/config"
	"tada/internal/quote"
	"tada/internal/theme"
	"tada/internal/todo"
)

// Backend is the remote task endpoint.
type Backend interface {
	List(ctx context.Context) ([]todo.Task, error)
	Create(ctx context.Context, title string) (todo.Task, error)
	SetCompleted(ctx context.Context, id todo.ID, completed bool) (todo.Task, error)
	Delete(ctx context.Context, id todo.ID) error
}

type mode int

const (
	modeList mode = iota
	modeAdd
)

type (
	tasksLoadedMsg struct{ tasks []todo.Task }
	taskCreatedMsg struct{ task todo.Task }
	taskToggledMsg struct {
		task         todo.Task
		wasCompleted bool
	}
	taskDeletedMsg   struct{ id todo.ID }
	requestFailedMsg struct {
		op  string
		err error
	}
	quoteResolvedMsg struct {
		quote string
		err   error
	}
	copiedMsg struct {
		title string
		err   error
	}
)

// TaskCompletedMsg is emitted when a toggle moves a task from open to done.
// The confetti burst is driven by it.
type TaskCompletedMsg struct {
	Task   todo.Task
	Points int
}

// Options carries the collaborators a Model needs besides the config.
type Options struct {
	Backend Backend
	Store   quote.Store
	Logger  *log.Logger
	Now     func() time.Time
	Pick    quote.Picker
	Copy    func(string) error
}

type Model struct {
	backend Backend
	store   quote.Store
	logger  *log.Logger
	now     func() time.Time
	pick    quote.Picker
	copy    func(string) error

	keys     keyMap
	help     help.Model
	form     Form
	list     ListView
	confetti Confetti
	mode     mode

	tasks   []todo.Task
	score   todo.Score
	quote   string
	theme   theme.Name
	palette theme.Palette
	status  string
	failed  bool
}

func New(cfg config.Config, opts Options) Model {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Pick == nil {
		opts.Pick = quote.RandomPicker
	}
	if opts.Store == nil {
		opts.Store = quote.NewMemoryStore()
	}
	if opts.Copy == nil {
		opts.Copy = clipboard.WriteAll
	}
	name := theme.Select(nil)
	return Model{
		backend: opts.Backend,
		store:   opts.Store,
		logger:  opts.Logger,
		now:     opts.Now,
		pick:    opts.Pick,
		copy:    opts.Copy,
		keys:    newKeyMap(cfg.Keys),
		help:    help.New(),
		form:    NewForm(),
		mode:    modeList,
		theme:   name,
		palette: theme.PaletteFor(name),
		status:  fmt.Sprintf("Press '%s' to add, %s to toggle, '%s' to delete.", cfg.Keys.Add, keyLabel(cfg.Keys.Toggle), cfg.Keys.Delete),
	}
}

func (m Model) Tasks() []todo.Task { return m.tasks }

func (m Model) Points() int { return m.score.Points }

func (m Model) Level() int { return m.score.Level() }

func (m Model) Theme() theme.Name { return m.theme }

func (m Model) Quote() string { return m.quote }

func (m Model) FormValue() string { return m.form.Value() }

func (m Model) Celebrating() bool { return m.confetti.Active() }

func (m Model) Status() string { return m.status }

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadAll(), m.resolveQuote(), m.applyTheme())
}

func (m Model) loadAll() tea.Cmd {
	backend := m.backend
	return func() tea.Msg {
		tasks, err := backend.List(context.Background())
		if err != nil {
			return requestFailedMsg{op: "load", err: err}
		}
		return tasksLoadedMsg{tasks: tasks}
	}
}

func (m Model) create(title string) tea.Cmd {
	backend := m.backend
	return func() tea.Msg {
		t, err := backend.Create(context.Background(), title)
		if err != nil {
			return requestFailedMsg{op: "create", err: err}
		}
		return taskCreatedMsg{task: t}
	}
}

// toggle reads the current completion flag from the collection and asks
// the server for its negation. Unknown ids send nothing.
func (m Model) toggle(id todo.ID) tea.Cmd {
	current, ok := todo.Find(m.tasks, id)
	if !ok {
		return nil
	}
	backend := m.backend
	return func() tea.Msg {
		t, err := backend.SetCompleted(context.Background(), id, !current.Completed)
		if err != nil {
			return requestFailedMsg{op: "toggle", err: err}
		}
		return taskToggledMsg{task: t, wasCompleted: current.Completed}
	}
}

func (m Model) delete(id todo.ID) tea.Cmd {
	backend := m.backend
	return func() tea.Msg {
		if err := backend.Delete(context.Background(), id); err != nil {
			return requestFailedMsg{op: "delete", err: err}
		}
		return taskDeletedMsg{id: id}
	}
}

func (m Model) resolveQuote() tea.Cmd {
	store, now, pick := m.store, m.now, m.pick
	return func() tea.Msg {
		q, err := quote.Resolve(now(), store, quote.Pool, pick)
		return quoteResolvedMsg{quote: q, err: err}
	}
}

func (m Model) copyTitle() tea.Cmd {
	t, ok := m.list.Selected(m.tasks)
	if !ok {
		return nil
	}
	write := m.copy
	return func() tea.Msg {
		return copiedMsg{title: t.Title, err: write(t.Title)}
	}
}

// applyTheme recomputes the theme from the collection and pushes it to the
// terminal title.
func (m *Model) applyTheme() tea.Cmd {
	m.theme = theme.Select(m.tasks)
	m.palette = theme.PaletteFor(m.theme)
	return tea.SetWindowTitle("tada · " + string(m.theme))
}

// setTasks is the only place the collection changes.
func (m *Model) setTasks(tasks []todo.Task) tea.Cmd {
	m.tasks = tasks
	m.list = m.list.Clamp(len(tasks))
	return m.applyTheme()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.mode == modeAdd {
			return m.updateAddMode(msg)
		}
		return m.updateListMode(msg)
	case tea.WindowSizeMsg:
		m.form = m.form.SetWidth(msg.Width - 10)
		m.help.Width = msg.Width
		return m, nil

	case CreateIntent:
		return m, m.create(msg.Title)
	case ToggleIntent:
		return m, m.toggle(msg.ID)
	case DeleteIntent:
		return m, m.delete(msg.ID)

	case tasksLoadedMsg:
		m.logger.Info("tasks loaded", "count", len(msg.tasks))
		m.setStatus(fmt.Sprintf("Loaded %d tasks", len(msg.tasks)), false)
		return m, m.setTasks(msg.tasks)
	case taskCreatedMsg:
		m.logger.Info("task created", "id", msg.task.ID)
		m.setStatus("Added task", false)
		cmd := m.setTasks(append(append([]todo.Task(nil), m.tasks...), msg.task))
		m.list = ListView{cursor: len(m.tasks) - 1}
		return m, cmd
	case taskToggledMsg:
		return m.reconcileToggle(msg)
	case taskDeletedMsg:
		m.logger.Info("task deleted", "id", msg.id)
		m.setStatus("Deleted task", false)
		return m, m.setTasks(todo.Remove(m.tasks, msg.id))
	case requestFailedMsg:
		// Failures are only logged; the screen keeps its pre-request state.
		m.logger.Error("request failed", "op", msg.op, "err", msg.err)
		return m, nil

	case TaskCompletedMsg:
		var cmd tea.Cmd
		m.confetti, cmd = m.confetti.Start()
		return m, cmd
	case confettiTickMsg:
		var cmd tea.Cmd
		m.confetti, cmd = m.confetti.Update(msg)
		return m, cmd

	case quoteResolvedMsg:
		if msg.err != nil {
			m.logger.Warn("daily quote cache", "err", msg.err)
		}
		m.quote = msg.quote
		return m, nil
	case copiedMsg:
		if msg.err != nil {
			m.logger.Warn("copy to clipboard", "err", msg.err)
			m.setStatus(fmt.Sprintf("copy failed: %v", msg.err), true)
			return m, nil
		}
		m.setStatus(fmt.Sprintf("Copied %q", msg.title), false)
		return m, nil
	}
	return m, nil
}

func (m Model) reconcileToggle(msg taskToggledMsg) (tea.Model, tea.Cmd) {
	m.logger.Info("task toggled", "id", msg.task.ID, "completed", msg.task.Completed)
	cmds := []tea.Cmd{m.setTasks(todo.Replace(m.tasks, msg.task))}
	if m.score.Record(msg.wasCompleted, msg.task.Completed) {
		m.setStatus(fmt.Sprintf("Nice! +%d points", todo.PointsPerCompletion), false)
		done := TaskCompletedMsg{Task: msg.task, Points: m.score.Points}
		cmds = append(cmds, func() tea.Msg { return done })
	} else {
		m.setStatus("Toggled task", false)
	}
	return m, tea.Batch(cmds...)
}

func (m Model) updateAddMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.mode = modeList
		m.form = m.form.SetValue("").Blur()
		m.setStatus("Cancelled", false)
		return m, nil
	case key.Matches(msg, m.keys.Confirm):
		var cmd tea.Cmd
		m.form, cmd = m.form.Submit()
		if cmd == nil {
			return m, nil
		}
		m.mode = modeList
		m.form = m.form.Blur()
		return m, cmd
	default:
		var cmd tea.Cmd
		m.form, cmd = m.form.Update(msg)
		return m, cmd
	}
}

func (m Model) updateListMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Add):
		m.mode = modeAdd
		m.setStatus("Add mode: type a title and press Enter", false)
		var cmd tea.Cmd
		m.form, cmd = m.form.Focus()
		return m, cmd
	case key.Matches(msg, m.keys.Copy):
		return m, m.copyTitle()
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg, m.keys, m.tasks)
	return m, cmd
}

func (m *Model) setStatus(s string, failed bool) {
	m.status = s
	m.failed = failed
}

func (m Model) View() string {
	p := m.palette
	var b strings.Builder

	b.WriteString(p.Title.Render("Todo List"))
	b.WriteString("\n")
	if m.quote != "" {
		b.WriteString(p.Quote.Render("“" + m.quote + "”"))
		b.WriteString("\n")
	}
	b.WriteString(p.Score.Render(fmt.Sprintf("Points: %d · Level %d · %d left",
		m.score.Points, m.score.Level(), todo.Remaining(m.tasks))))
	b.WriteString("\n\n")

	b.WriteString(m.list.View(m.tasks, p, m.mode == modeList))
	b.WriteString("\n")

	if m.mode == modeAdd {
		b.WriteString("\nAdd Task: ")
		b.WriteString(m.form.View())
		b.WriteString("\n")
	}
	if c := m.confetti.View(p.Confetti); c != "" {
		b.WriteString("\n")
		b.WriteString(c)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.failed {
		b.WriteString(p.Error.Render(m.status))
	} else {
		b.WriteString(p.Status.Render(m.status))
	}
	b.WriteString("\n")
	if m.mode == modeAdd {
		b.WriteString(m.help.View(formKeys{m.keys}))
	} else {
		b.WriteString(m.help.View(m.keys))
	}
	return b.String()
}
