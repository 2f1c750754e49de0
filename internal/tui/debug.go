package tui

import (
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

const debugTimeLayout = "15:04:05.000"

// uiEvent is one recorded screen, tab, toast or session change
type uiEvent struct {
	at      time.Time
	kind    string
	details string
	mode    ViewMode
}

func (e uiEvent) String() string {
	line := e.at.Format(debugTimeLayout) + " [" + e.kind + "]"
	if e.details != "" {
		line += " " + e.details
	}
	return line
}

// DebugPanel logs every UI event and, when enabled, keeps the most recent
// ones for the ctrl+g side panel.
type DebugPanel struct {
	enabled bool
	events  []uiEvent
	limit   int
	now     func() time.Time
	logger  *slog.Logger
}

// NewDebugPanel creates the panel. A nil logger discards records.
func NewDebugPanel(enabled bool, logger *slog.Logger) DebugPanel {
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return DebugPanel{
		enabled: enabled,
		limit:   100,
		now:     time.Now,
		logger:  logger,
	}
}

func (d *DebugPanel) IsEnabled() bool {
	return d.enabled
}

// Record logs an event at debug level and buffers it for the panel
func (d *DebugPanel) Record(mode ViewMode, kind, details string) {
	e := uiEvent{at: d.now(), kind: kind, details: details, mode: mode}
	d.logger.Debug("ui event", "event", e.kind, "details", e.details, "mode", e.mode.String())

	if !d.enabled {
		return
	}
	d.events = append(d.events, e)
	if len(d.events) > d.limit {
		d.events = d.events[len(d.events)-d.limit:]
	}
}

// Lines returns the buffered events, oldest first
func (d *DebugPanel) Lines() []string {
	lines := make([]string, len(d.events))
	for i, e := range d.events {
		lines[i] = e.String()
	}
	return lines
}

// Render draws the newest events that fit in a width x height box
func (d *DebugPanel) Render(width, height int) string {
	if !d.enabled {
		return ""
	}

	// Border, title and padding
	rows := max(height-4, 1)
	textWidth := max(width-4, 10)

	visible := d.events
	if len(visible) > rows {
		visible = visible[len(visible)-rows:]
	}

	body := make([]string, rows)
	for i, e := range visible {
		body[i] = truncate(e.String(), textWidth)
	}

	title := lipgloss.NewStyle().Foreground(ColorYellow).Bold(true).Render("DEBUG")
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorYellow).
		Padding(0, 1).
		Render(title + "\n" + strings.Join(body, "\n"))
}
