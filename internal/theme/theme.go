package theme

import (
	"github.com/charmbracelet/lipgloss"

	"tada/internal/todo"
)

type Name string

const (
	Happy   Name = "happy"
	Neutral Name = "neutral"
)

// happyThreshold is the largest number of open tasks that still counts as
// a good day.
const happyThreshold = 3

// Select derives the theme from the number of open tasks.
func Select(tasks []todo.Task) Name {
	if todo.Remaining(tasks) <= happyThreshold {
		return Happy
	}
	return Neutral
}

// Palette is the set of styles the view renders with.
type Palette struct {
	Title    lipgloss.Style
	Quote    lipgloss.Style
	Cursor   lipgloss.Style
	Task     lipgloss.Style
	Done     lipgloss.Style
	Empty    lipgloss.Style
	Score    lipgloss.Style
	Status   lipgloss.Style
	Error    lipgloss.Style
	Confetti []lipgloss.Color
}

var (
	muted  = lipgloss.Color("8")
	danger = lipgloss.Color("1")
)

func PaletteFor(name Name) Palette {
	switch name {
	case Happy:
		return Palette{
			Title:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2")),
			Quote:  lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("6")),
			Cursor: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3")),
			Task:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
			Done:   lipgloss.NewStyle().Strikethrough(true).Foreground(muted),
			Empty:  lipgloss.NewStyle().Foreground(muted),
			Score:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("5")),
			Status: lipgloss.NewStyle().Foreground(muted),
			Error:  lipgloss.NewStyle().Bold(true).Foreground(danger),
			Confetti: []lipgloss.Color{
				lipgloss.Color("1"), lipgloss.Color("2"), lipgloss.Color("3"),
				lipgloss.Color("4"), lipgloss.Color("5"), lipgloss.Color("6"),
			},
		}
	default:
		return Palette{
			Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("4")),
			Quote:    lipgloss.NewStyle().Italic(true).Foreground(muted),
			Cursor:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("4")),
			Task:     lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
			Done:     lipgloss.NewStyle().Strikethrough(true).Foreground(muted),
			Empty:    lipgloss.NewStyle().Foreground(muted),
			Score:    lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
			Status:   lipgloss.NewStyle().Foreground(muted),
			Error:    lipgloss.NewStyle().Bold(true).Foreground(danger),
			Confetti: []lipgloss.Color{lipgloss.Color("7"), lipgloss.Color("4"), lipgloss.Color("6")},
		}
	}
}
