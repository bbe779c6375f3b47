package ui

import (
	"math/rand"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	confettiFrames   = 12
	confettiInterval = 80 * time.Millisecond
	confettiWidth    = 32
)

var confettiGlyphs = []string{"*", "+", "•", "✦", "°", "·"}

type confettiTickMsg struct {
	burst int
}

// Confetti is a short celebratory burst drawn above the status line.
// Each Start begins a new burst; ticks from an older burst are ignored.
type Confetti struct {
	burst  int
	frames int
}

func (c Confetti) Active() bool {
	return c.frames > 0
}

func (c Confetti) Start() (Confetti, tea.Cmd) {
	c.burst++
	c.frames = confettiFrames
	return c, confettiTick(c.burst)
}

func (c Confetti) Update(msg tea.Msg) (Confetti, tea.Cmd) {
	tick, ok := msg.(confettiTickMsg)
	if !ok || tick.burst != c.burst || c.frames == 0 {
		return c, nil
	}
	c.frames--
	if c.frames == 0 {
		return c, nil
	}
	return c, confettiTick(c.burst)
}

func (c Confetti) View(colors []lipgloss.Color) string {
	if !c.Active() || len(colors) == 0 {
		return ""
	}
	var b strings.Builder
	for i := 0; i < confettiWidth; i++ {
		if rand.Intn(3) != 0 {
			b.WriteString(" ")
			continue
		}
		glyph := confettiGlyphs[rand.Intn(len(confettiGlyphs))]
		color := colors[rand.Intn(len(colors))]
		b.WriteString(lipgloss.NewStyle().Foreground(color).Render(glyph))
	}
	return b.String()
}

func confettiTick(burst int) tea.Cmd {
	return tea.Tick(confettiInterval, func(time.Time) tea.Msg {
		return confettiTickMsg{burst: burst}
	})
}
