package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// CreateIntent asks the controller to create a task with Title.
type CreateIntent struct {
	Title string
}

// Form is the single-line "new task" input.
type Form struct {
	input textinput.Model
}

func NewForm() Form {
	ti := textinput.New()
	ti.Placeholder = "New todo"
	ti.CharLimit = 256
	ti.Width = 40
	return Form{input: ti}
}

func (f Form) Value() string {
	return f.input.Value()
}

func (f Form) SetValue(v string) Form {
	f.input.SetValue(v)
	return f
}

func (f Form) Focus() (Form, tea.Cmd) {
	cmd := f.input.Focus()
	return f, cmd
}

func (f Form) Blur() Form {
	f.input.Blur()
	return f
}

func (f Form) SetWidth(w int) Form {
	if w > 0 {
		f.input.Width = w
	}
	return f
}

// Submit emits a CreateIntent with the trimmed value and clears the input.
// A blank value emits nothing and leaves the input untouched.
func (f Form) Submit() (Form, tea.Cmd) {
	title := strings.TrimSpace(f.input.Value())
	if title == "" {
		return f, nil
	}
	f.input.SetValue("")
	return f, func() tea.Msg { return CreateIntent{Title: title} }
}

func (f Form) Update(msg tea.Msg) (Form, tea.Cmd) {
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	return f, cmd
}

func (f Form) View() string {
	return f.input.View()
}
