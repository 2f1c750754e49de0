package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	Brand   = "Dial-a-Stocktaker"
	Tagline = "South Africa's #1 Stocktaking Workforce Solution"
)

// splashTickMsg advances the loading bar
type splashTickMsg struct{}

// splashDoneMsg is emitted once when the splash is finished or skipped
type splashDoneMsg struct{}

// splashModel is the timed loading screen shown before login
type splashModel struct {
	seconds  int // Seconds until the bar is full
	ticks    int
	progress int // 0..100
	done     bool

	interval time.Duration // Time between ticks

	keys KeyMap
}

func newSplashModel(seconds int) splashModel {
	if seconds < 1 {
		seconds = 1
	}
	return splashModel{
		seconds:  seconds,
		interval: time.Second,
		keys:     DefaultKeyMap(),
	}
}

// Init starts the ticker
func (s splashModel) Init() tea.Cmd {
	return s.tickCmd()
}

func (s splashModel) tickCmd() tea.Cmd {
	return tea.Tick(s.interval, func(time.Time) tea.Msg {
		return splashTickMsg{}
	})
}

// finish marks the splash done and returns the completion command. A
// second call yields nil so completion can only be announced once.
func (s *splashModel) finish() tea.Cmd {
	if s.done {
		return nil
	}
	s.done = true
	return func() tea.Msg { return splashDoneMsg{} }
}

// Progress returns the loading percentage
func (s splashModel) Progress() int {
	return s.progress
}

// Done reports whether completion has been announced
func (s splashModel) Done() bool {
	return s.done
}

func (s splashModel) Update(msg tea.Msg) (splashModel, tea.Cmd) {
	switch msg := msg.(type) {
	case splashTickMsg:
		if s.done {
			return s, nil
		}
		s.ticks++
		s.progress = min(100, s.ticks*100/s.seconds)
		// The tick that fills the bar ends the splash, seconds after Init
		if s.progress >= 100 {
			return s, s.finish()
		}
		return s, s.tickCmd()

	case tea.KeyMsg:
		if key.Matches(msg, s.keys.Skip) {
			return s, s.finish()
		}
	}
	return s, nil
}

func (s splashModel) View(width, height int) string {
	logo := LogoStyle.Render(
		"╭──────╮\n" +
			"│ ▁▃▅▇ │\n" +
			"╰──────╯")

	name := lipgloss.NewStyle().Bold(true).Foreground(ColorFgBright).Render(Brand)
	tagline := TaglineStyle.Render(Tagline)

	bar := progressBar(float64(s.progress), 40)
	loading := DimStyle.Render(fmt.Sprintf("Loading... %d%%", s.progress))
	skip := DimStyle.Underline(true).Render("Skip") + DimStyle.Render("  (enter)")

	content := lipgloss.JoinVertical(lipgloss.Center,
		logo,
		"",
		name,
		tagline,
		"",
		bar,
		loading,
		"",
		skip,
	)

	if width <= 0 || height <= 0 {
		return content
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
