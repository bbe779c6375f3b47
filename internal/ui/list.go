package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"tada/internal/theme"
	"tada/internal/todo"
)

const emptyPlaceholder = "No tasks."

type ToggleIntent struct {
	ID todo.ID
}

type DeleteIntent struct {
	ID todo.ID
}

// ListView renders the collection it is handed. It keeps only the cursor;
// completion state always comes from the tasks themselves.
type ListView struct {
	cursor int
}

func (l ListView) Cursor() int {
	return l.cursor
}

func (l ListView) Selected(tasks []todo.Task) (todo.Task, bool) {
	if len(tasks) == 0 {
		return todo.Task{}, false
	}
	return tasks[clampCursor(l.cursor, len(tasks))], true
}

// Clamp keeps the cursor on a row after the collection shrinks.
func (l ListView) Clamp(n int) ListView {
	l.cursor = clampCursor(l.cursor, n)
	return l
}

func (l ListView) Update(msg tea.KeyMsg, keys keyMap, tasks []todo.Task) (ListView, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Down):
		l.cursor = clampCursor(l.cursor+1, len(tasks))
	case key.Matches(msg, keys.Up):
		l.cursor = clampCursor(l.cursor-1, len(tasks))
	case key.Matches(msg, keys.Toggle):
		if t, ok := l.Selected(tasks); ok {
			return l, func() tea.Msg { return ToggleIntent{ID: t.ID} }
		}
	case key.Matches(msg, keys.Delete):
		if t, ok := l.Selected(tasks); ok {
			return l, func() tea.Msg { return DeleteIntent{ID: t.ID} }
		}
	}
	return l, nil
}

func (l ListView) View(tasks []todo.Task, p theme.Palette, focused bool) string {
	if len(tasks) == 0 {
		return p.Empty.Render(emptyPlaceholder)
	}
	cur := clampCursor(l.cursor, len(tasks))
	var b strings.Builder
	for i, t := range tasks {
		cursor := " "
		if focused && i == cur {
			cursor = p.Cursor.Render(">")
		}
		checkbox := "[ ]"
		title := p.Task.Render(t.Title)
		if t.Completed {
			checkbox = "[x]"
			title = p.Done.Render(t.Title)
		}
		b.WriteString(fmt.Sprintf("%s %s %s\n", cursor, checkbox, title))
	}
	return strings.TrimRight(b.String(), "\n")
}

func clampCursor(cur, n int) int {
	if n <= 0 {
		return 0
	}
	if cur < 0 {
		return 0
	}
	if cur >= n {
		return n - 1
	}
	return cur
}
