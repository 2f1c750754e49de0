package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dialastocktaker/stocktaker-tui/internal/config"
	"github.com/dialastocktaker/stocktaker-tui/internal/mockdata"
	"github.com/dialastocktaker/stocktaker-tui/internal/model"
)

// fixedNow is the clock used by calendar and report tests
var fixedNow = time.Date(2024, time.January, 15, 10, 30, 0, 0, time.Local)

func fixedClock() time.Time { return fixedNow }

// keyPress builds a key message for a binding name or literal runes
func keyPress(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "space":
		return tea.KeyMsg{Type: tea.KeySpace}
	case "pgdown":
		return tea.KeyMsg{Type: tea.KeyPgDown}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "ctrl+d":
		return tea.KeyMsg{Type: tea.KeyCtrlD}
	case "ctrl+g":
		return tea.KeyMsg{Type: tea.KeyCtrlG}
	case "ctrl+r":
		return tea.KeyMsg{Type: tea.KeyCtrlR}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

// createTestModel returns a root model with defaults, real mock data and a fixed clock
func createTestModel(t *testing.T, mutate func(*config.Config)) Model {
	t.Helper()
	cfg := config.DefaultConfig()
	if mutate != nil {
		mutate(cfg)
	}
	m := NewRootModel(cfg, mockdata.MustLoad(), nil)
	m.now = fixedClock
	m.splash.interval = time.Millisecond
	return update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
}

// update feeds msg to the root model and returns the new model
func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(Model)
}

// updateCmd feeds msg to the root model and returns the new model and its command
func updateCmd(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

// press sends a sequence of keys to the root model
func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		m = update(t, m, keyPress(k))
	}
	return m
}

// isQuit reports whether cmd is tea.Quit
func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

// toastFrom runs cmd and returns the toast it announces
func toastFrom(t *testing.T, cmd tea.Cmd) Toast {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a toast command, got nil")
	}
	msg, ok := cmd().(toastMsg)
	if !ok {
		t.Fatalf("expected toastMsg, got %T", cmd())
	}
	return msg.toast
}

// loginAs drives a root model from the login screen into role's dashboard
func loginAs(t *testing.T, m Model, role string) Model {
	t.Helper()
	m.login.selectRole(mustRole(t, role))
	m.login.code.SetValue("CODE-1")
	m.login.password.SetValue("secret")
	cmd := m.login.submit()
	if cmd == nil {
		t.Fatalf("login for %q is disabled", role)
	}
	return update(t, m, cmd())
}

func mustRole(t *testing.T, s string) model.Role {
	t.Helper()
	r, ok := model.ParseRole(s)
	if !ok {
		t.Fatalf("unknown role %q", s)
	}
	return r
}

func contains(s, substr string) bool {
	return strings.Contains(s, substr)
}
