package tui

import (
	"testing"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dialastocktaker/stocktaker-tui/internal/model"
)

func sendLogin(l loginModel, keys ...string) (loginModel, tea.Cmd) {
	var cmd tea.Cmd
	for _, k := range keys {
		l, cmd = l.Update(keyPress(k))
	}
	return l, cmd
}

// loggedInRole runs cmd and returns the role it logs in as
func loggedInRole(t *testing.T, cmd tea.Cmd) model.Role {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected login command, got nil")
	}
	msg, ok := cmd().(loggedInMsg)
	if !ok {
		t.Fatalf("expected loggedInMsg, got %T", cmd())
	}
	return msg.role
}

func TestLoginDisabledUntilComplete(t *testing.T) {
	tests := []struct {
		name     string
		role     model.Role
		code     string
		password string
		want     bool
	}{
		{"all empty", "", "", "", false},
		{"role only", model.RoleAdmin, "", "", false},
		{"no role", "", "ADM-1", "pw", false},
		{"no code", model.RoleAdmin, "", "pw", false},
		{"no password", model.RoleAdmin, "ADM-1", "", false},
		{"complete", model.RoleAdmin, "ADM-1", "pw", true},
		{"whitespace counts as input", model.RoleClient, " ", " ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := newLoginModel()
			if tt.role != "" {
				l.selectRole(tt.role)
			}
			l.code.SetValue(tt.code)
			l.password.SetValue(tt.password)

			if got := l.canSubmit(); got != tt.want {
				t.Errorf("canSubmit() = %v, want %v", got, tt.want)
			}

			cmd := l.submit()
			if !tt.want {
				if cmd != nil {
					t.Error("submit() should be nil while the form is incomplete")
				}
				return
			}
			if got := loggedInRole(t, cmd); got != tt.role {
				t.Errorf("logged in as %q, want %q", got, tt.role)
			}
		})
	}
}

func TestLoginKeyboardFlow(t *testing.T) {
	l := newLoginModel()
	if l.focus != fieldRole {
		t.Fatalf("expected initial focus on role, got %d", l.focus)
	}
	if _, ok := l.Role(); ok {
		t.Fatal("expected no role selected initially")
	}

	// First step down selects the first role
	l, _ = sendLogin(l, "down", "down", "down")
	if r, _ := l.Role(); r != model.RoleCoordinator {
		t.Fatalf("role = %q, want coordinator", r)
	}

	l, _ = sendLogin(l, "enter")
	if l.focus != fieldCode {
		t.Fatalf("focus = %d, want code", l.focus)
	}
	l, _ = sendLogin(l, "CRD-001")

	// Enter on the password field with an empty password does nothing
	l, cmd := sendLogin(l, "enter", "enter")
	if cmd != nil {
		if _, ok := cmd().(loggedInMsg); ok {
			t.Fatal("login fired with an empty password")
		}
	}

	l, _ = sendLogin(l, "coord123")
	_, cmd = sendLogin(l, "enter")
	if got := loggedInRole(t, cmd); got != model.RoleCoordinator {
		t.Errorf("logged in as %q, want coordinator", got)
	}
}

func TestLoginRoleCycling(t *testing.T) {
	tests := []struct {
		name string
		keys []string
		want model.Role
	}{
		{"up from unselected picks last", []string{"up"}, model.RoleClient},
		{"left from unselected picks last", []string{"left"}, model.RoleClient},
		{"right picks first", []string{"right"}, model.RoleAdmin},
		{"wraps forward", []string{"up", "down"}, model.RoleAdmin},
		{"wraps backward", []string{"down", "up"}, model.RoleClient},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, _ := sendLogin(newLoginModel(), tt.keys...)
			if r, _ := l.Role(); r != tt.want {
				t.Errorf("role = %q, want %q", r, tt.want)
			}
		})
	}
}

func TestLoginFocusRing(t *testing.T) {
	l := newLoginModel()
	l, _ = sendLogin(l, "tab")
	if l.focus != fieldCode {
		t.Errorf("tab: focus = %d, want code", l.focus)
	}
	l, _ = sendLogin(l, "tab", "tab")
	if l.focus != fieldRole {
		t.Errorf("tab wraps: focus = %d, want role", l.focus)
	}
	l, _ = sendLogin(l, "shift+tab")
	if l.focus != fieldPassword {
		t.Errorf("shift+tab wraps: focus = %d, want password", l.focus)
	}
	if !l.Capturing() {
		t.Error("password field should capture keys")
	}
}

func TestLoginDemoCredentials(t *testing.T) {
	l := newLoginModel()
	l, _ = sendLogin(l, "ctrl+d")
	if !l.showDemo {
		t.Fatal("ctrl+d should open the demo panel")
	}

	// Entries follow the demo order: admin, manager, stocktaker...
	l, _ = sendLogin(l, "down", "down", "enter")
	if l.showDemo {
		t.Error("choosing an entry should close the panel")
	}
	if r, _ := l.Role(); r != model.RoleStocktaker {
		t.Errorf("role = %q, want stocktaker", r)
	}
	if l.code.Value() != "STK-123456790" || l.password.Value() != "stock123" {
		t.Errorf("credentials = %q/%q", l.code.Value(), l.password.Value())
	}

	_, cmd := sendLogin(l, "ctrl+s")
	if got := loggedInRole(t, cmd); got != model.RoleStocktaker {
		t.Errorf("logged in as %q, want stocktaker", got)
	}
}

func TestLoginRevealPassword(t *testing.T) {
	l := newLoginModel()
	if l.password.EchoMode != textinput.EchoPassword {
		t.Fatal("password should start masked")
	}
	l, _ = sendLogin(l, "ctrl+r")
	if l.password.EchoMode != textinput.EchoNormal {
		t.Error("ctrl+r should reveal the password")
	}
	l, _ = sendLogin(l, "ctrl+r")
	if l.password.EchoMode != textinput.EchoPassword {
		t.Error("second ctrl+r should mask the password")
	}
}

func TestLoginCodeLabel(t *testing.T) {
	l := newLoginModel()
	if got := l.codeLabel(); got != "Login Code" {
		t.Errorf("codeLabel() = %q, want %q", got, "Login Code")
	}
	l.selectRole(model.RoleGroupLeader)
	if got := l.codeLabel(); got != "Groupleader Login Code" {
		t.Errorf("codeLabel() = %q, want %q", got, "Groupleader Login Code")
	}
}

func TestLoginView(t *testing.T) {
	l := newLoginModel()
	view := l.View(100, 40)
	for _, want := range []string{"Welcome Back", "Choose your role", "Login", "Register"} {
		if !contains(view, want) {
			t.Errorf("login view missing %q", want)
		}
	}

	l, _ = sendLogin(l, "ctrl+d")
	if !contains(l.View(100, 60), "ADM-00000001") {
		t.Error("demo panel should list the admin code")
	}
}
