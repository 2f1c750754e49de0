package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// isoDate is the layout of dates in the mock data
const isoDate = "2006-01-02"

// calendar is a single-date picker over a month grid. Entries are keyed
// by ISO date and listed when their day is selected. Dates are civil days
// held at UTC midnight so day arithmetic never meets a DST gap.
type calendar struct {
	selected time.Time
	now      func() time.Time
	entries  map[string][]string
	heading  string // "Jobs" or "Bookings"
	empty    string
	keys     KeyMap
}

func newCalendar(now func() time.Time, heading, empty string) calendar {
	if now == nil {
		now = time.Now
	}
	return calendar{
		selected: dateOnly(now()),
		now:      now,
		entries:  make(map[string][]string),
		heading:  heading,
		empty:    empty,
		keys:     DefaultKeyMap(),
	}
}

// civil is the calendar day y-m-d, normalised like time.Date
func civil(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// dateOnly is the calendar day t falls on in its own location
func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return civil(y, m, d)
}

// add attaches an entry line to an ISO date. Unparseable dates are dropped.
func (c *calendar) add(iso, line string) {
	if _, err := time.ParseInLocation(isoDate, iso, time.UTC); err != nil {
		return
	}
	c.entries[iso] = append(c.entries[iso], line)
}

// Selected returns the chosen date
func (c *calendar) Selected() time.Time {
	return c.selected
}

// Entries returns the lines for the chosen date
func (c *calendar) Entries() []string {
	return c.entries[c.selected.Format(isoDate)]
}

// Select jumps to a specific date
func (c *calendar) Select(t time.Time) {
	c.selected = dateOnly(t)
}

// addMonths moves by n months, clamping the day to the target month's length
func (c *calendar) addMonths(n int) {
	y, m, d := c.selected.Date()
	first := civil(y, m+time.Month(n), 1)
	last := first.AddDate(0, 1, -1).Day()
	if d > last {
		d = last
	}
	c.selected = civil(first.Year(), first.Month(), d)
}

// handleKey moves the selection and reports whether the key was consumed
func (c *calendar) handleKey(msg tea.KeyMsg) bool {
	switch {
	case key.Matches(msg, c.keys.Left):
		c.selected = c.selected.AddDate(0, 0, -1)
	case key.Matches(msg, c.keys.Right):
		c.selected = c.selected.AddDate(0, 0, 1)
	case key.Matches(msg, c.keys.Up):
		c.selected = c.selected.AddDate(0, 0, -7)
	case key.Matches(msg, c.keys.Down):
		c.selected = c.selected.AddDate(0, 0, 7)
	case key.Matches(msg, c.keys.PrevMonth):
		c.addMonths(-1)
	case key.Matches(msg, c.keys.NextMonth):
		c.addMonths(1)
	case key.Matches(msg, c.keys.Today):
		c.selected = dateOnly(c.now())
	default:
		return false
	}
	return true
}

// grid renders the month of the selected date, Sunday first
func (c *calendar) grid() string {
	y, m, _ := c.selected.Date()
	first := civil(y, m, 1)
	days := first.AddDate(0, 1, -1).Day()
	today := dateOnly(c.now())

	title := lipgloss.NewStyle().Bold(true).Foreground(ColorFgBright).
		Render(first.Format("January 2006"))

	var sb strings.Builder
	sb.WriteString(title + "\n")
	sb.WriteString(DimStyle.Render("Su Mo Tu We Th Fr Sa") + "\n")

	cell := lipgloss.NewStyle().Width(2).Align(lipgloss.Right)
	col := int(first.Weekday())
	sb.WriteString(strings.Repeat("   ", col))
	for day := 1; day <= days; day++ {
		date := civil(y, m, day)
		style := cell.Foreground(ColorFgPrimary)
		if len(c.entries[date.Format(isoDate)]) > 0 {
			style = style.Foreground(ColorBrand).Bold(true)
		}
		if date.Equal(today) {
			style = style.Underline(true)
		}
		if date.Equal(c.selected) {
			style = style.Background(ColorBrand).Foreground(ColorFgBright)
		}
		sb.WriteString(style.Render(itoa(day)))

		col++
		if col == 7 && day < days {
			sb.WriteString("\n")
			col = 0
		} else if day < days {
			sb.WriteString(" ")
		}
	}
	return sb.String()
}

// View renders the grid and the entries of the selected date
func (c *calendar) View(width int) string {
	heading := c.heading + " for " + c.selected.Format(displayDate)

	var body string
	if lines := c.Entries(); len(lines) > 0 {
		body = joinItems(lines)
	} else {
		body = DimStyle.Render(c.empty)
	}

	hint := DimStyle.Render("←/→ day • ↑/↓ week • [/] month • t today")
	grid := card("Calendar", c.grid()+"\n\n"+hint, min(width, 32))
	list := card(heading, body, width)
	if width >= 80 {
		list = card(heading, body, width-32)
		return lipgloss.JoinHorizontal(lipgloss.Top, grid, list)
	}
	return grid + "\n" + list
}
