package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/bubbles/key"
	"github.com/dialastocktaker/stocktaker-tui/internal/model"
)

// Tab is one navigation entry of a dashboard
type Tab struct {
	ID    string
	Label string
}

// Dashboard is a role's view: a fixed set of tabs over read-only mock data
type Dashboard interface {
	// Role returns the role this dashboard serves
	Role() model.Role

	// UserName returns the signed-in display name
	UserName() string

	// Tabs returns the navigation items in display order
	Tabs() []Tab

	// ActiveTab returns the index of the visible tab
	ActiveTab() int

	// SelectTab switches to tab i; out-of-range indexes are ignored
	SelectTab(i int) bool

	// Capturing reports whether a text field currently owns the keyboard
	Capturing() bool

	// Update handles keys and component messages for the active tab
	Update(msg tea.Msg) tea.Cmd

	// View renders the active tab at the given content width
	View(width int) string
}

// tabSet is the shared tab and cursor bookkeeping embedded by every dashboard
type tabSet struct {
	role     model.Role
	userName string
	tabs     []Tab
	active   int
	cursor   int // Selected action row within the active tab
	keys     KeyMap
}

func newTabSet(role model.Role, userName string, tabs ...Tab) tabSet {
	return tabSet{
		role:     role,
		userName: userName,
		tabs:     tabs,
		keys:     DefaultKeyMap(),
	}
}

func (t *tabSet) Role() model.Role { return t.role }

func (t *tabSet) UserName() string { return t.userName }

func (t *tabSet) Tabs() []Tab { return t.tabs }

func (t *tabSet) ActiveTab() int { return t.active }

func (t *tabSet) SelectTab(i int) bool {
	if i < 0 || i >= len(t.tabs) {
		return false
	}
	if i != t.active {
		t.active = i
		t.cursor = 0
	}
	return true
}

// activeID returns the id of the visible tab
func (t *tabSet) activeID() string {
	return t.tabs[t.active].ID
}

// moveCursor handles up/down over n action rows and reports whether the
// key was consumed
func (t *tabSet) moveCursor(msg tea.KeyMsg, n int) bool {
	switch {
	case key.Matches(msg, t.keys.Up):
		if t.cursor > 0 {
			t.cursor--
		}
		return true
	case key.Matches(msg, t.keys.Down):
		if t.cursor < n-1 {
			t.cursor++
		}
		return true
	}
	return false
}

// selected reports whether the cursor is on row i
func (t *tabSet) selected(i int) bool {
	return t.cursor == i
}
