package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dialastocktaker/stocktaker-tui/internal/model"
)

// loginField identifies the focused login control
type loginField int

const (
	fieldRole loginField = iota
	fieldCode
	fieldPassword
	fieldCount
)

// loggedInMsg is sent when the login form is submitted
type loggedInMsg struct {
	role model.Role
}

// loginModel is the role picker plus code and password fields. Any
// non-empty values are accepted.
type loginModel struct {
	roles   []model.Role
	roleIdx int // -1 until a role is chosen

	code     textinput.Model
	password textinput.Model
	focus    loginField
	reveal   bool

	showDemo bool
	demos    []model.DemoCredential
	demoIdx  int

	keys KeyMap
	help help.Model
}

func newLoginModel() loginModel {
	code := textinput.New()
	code.Placeholder = "Enter your login code"
	code.Prompt = ""
	code.CharLimit = 32
	code.Width = 36

	pw := textinput.New()
	pw.Placeholder = "Enter your password"
	pw.Prompt = ""
	pw.EchoMode = textinput.EchoPassword
	pw.EchoCharacter = '•'
	pw.CharLimit = 64
	pw.Width = 36

	return loginModel{
		roles:    model.AllRoles(),
		roleIdx:  -1,
		code:     code,
		password: pw,
		demos:    model.DemoCredentials(),
		keys:     DefaultKeyMap(),
		help:     help.New(),
	}
}

func (l loginModel) Init() tea.Cmd {
	return textinput.Blink
}

// Role returns the chosen role, if any
func (l loginModel) Role() (model.Role, bool) {
	if l.roleIdx < 0 || l.roleIdx >= len(l.roles) {
		return "", false
	}
	return l.roles[l.roleIdx], true
}

// Capturing reports whether a text field owns the keyboard
func (l loginModel) Capturing() bool {
	return l.focus != fieldRole && !l.showDemo
}

// canSubmit reports whether role, code and password are all present
func (l loginModel) canSubmit() bool {
	_, ok := l.Role()
	return ok && l.code.Value() != "" && l.password.Value() != ""
}

// submit returns the login command, or nil while the form is incomplete
func (l loginModel) submit() tea.Cmd {
	if !l.canSubmit() {
		return nil
	}
	role, _ := l.Role()
	return func() tea.Msg {
		return loggedInMsg{role: role}
	}
}

// setFocus moves focus to f, blurring the other field
func (l *loginModel) setFocus(f loginField) tea.Cmd {
	l.focus = (f + fieldCount) % fieldCount
	l.code.Blur()
	l.password.Blur()
	switch l.focus {
	case fieldCode:
		return l.code.Focus()
	case fieldPassword:
		return l.password.Focus()
	}
	return nil
}

func (l *loginModel) selectRole(r model.Role) {
	for i, candidate := range l.roles {
		if candidate == r {
			l.roleIdx = i
			return
		}
	}
}

func (l *loginModel) cycleRole(delta int) {
	n := len(l.roles)
	if l.roleIdx < 0 {
		if delta > 0 {
			l.roleIdx = 0
		} else {
			l.roleIdx = n - 1
		}
		return
	}
	l.roleIdx = (l.roleIdx + delta + n) % n
}

// fillDemo copies a demo credential into the form
func (l *loginModel) fillDemo(c model.DemoCredential) {
	l.selectRole(c.Role)
	l.code.SetValue(c.Code)
	l.password.SetValue(c.Password)
}

func (l *loginModel) toggleReveal() {
	l.reveal = !l.reveal
	if l.reveal {
		l.password.EchoMode = textinput.EchoNormal
	} else {
		l.password.EchoMode = textinput.EchoPassword
	}
}

func (l loginModel) Update(msg tea.Msg) (loginModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		switch l.focus {
		case fieldCode:
			l.code, cmd = l.code.Update(msg)
		case fieldPassword:
			l.password, cmd = l.password.Update(msg)
		}
		return l, cmd
	}

	if key.Matches(keyMsg, l.keys.Demo) {
		l.showDemo = !l.showDemo
		return l, nil
	}

	if l.showDemo {
		switch {
		case key.Matches(keyMsg, l.keys.Up):
			if l.demoIdx > 0 {
				l.demoIdx--
			}
		case key.Matches(keyMsg, l.keys.Down):
			if l.demoIdx < len(l.demos)-1 {
				l.demoIdx++
			}
		case key.Matches(keyMsg, l.keys.Enter):
			l.fillDemo(l.demos[l.demoIdx])
			l.showDemo = false
			return l, l.setFocus(fieldPassword)
		case key.Matches(keyMsg, l.keys.Escape):
			l.showDemo = false
		}
		return l, nil
	}

	switch {
	case key.Matches(keyMsg, l.keys.Reveal):
		l.toggleReveal()
		return l, nil

	case key.Matches(keyMsg, l.keys.Submit):
		return l, l.submit()

	case key.Matches(keyMsg, l.keys.NextTab):
		return l, l.setFocus(l.focus + 1)

	case key.Matches(keyMsg, l.keys.PrevTab):
		return l, l.setFocus(l.focus - 1)

	case key.Matches(keyMsg, l.keys.Enter):
		if l.focus == fieldPassword {
			return l, l.submit()
		}
		return l, l.setFocus(l.focus + 1)
	}

	var cmd tea.Cmd
	switch l.focus {
	case fieldRole:
		switch {
		case key.Matches(keyMsg, l.keys.Up), key.Matches(keyMsg, l.keys.Left):
			l.cycleRole(-1)
		case key.Matches(keyMsg, l.keys.Down), key.Matches(keyMsg, l.keys.Right):
			l.cycleRole(1)
		}
	case fieldCode:
		l.code, cmd = l.code.Update(msg)
	case fieldPassword:
		l.password, cmd = l.password.Update(msg)
	}
	return l, cmd
}

// codeLabel names the login code after the chosen role
func (l loginModel) codeLabel() string {
	if r, ok := l.Role(); ok {
		return r.Title() + " Login Code"
	}
	return "Login Code"
}

func (l loginModel) View(width, height int) string {
	const formWidth = 44

	field := func(label string, focused bool, body string) string {
		box := InputStyle
		if focused {
			box = InputFocusedStyle
		}
		return LabelStyle.Render(label) + "\n" + box.Width(formWidth).Render(body)
	}

	picker := DimStyle.Render("Choose your role")
	if r, ok := l.Role(); ok {
		picker = roleBadge(r) + " " + r.Label()
	}
	if l.focus == fieldRole {
		picker = DimStyle.Render("◂ ") + picker + DimStyle.Render(" ▸")
	}

	pwLabel := "Password"
	if l.reveal {
		pwLabel += DimStyle.Render("  (visible)")
	}

	header := lipgloss.JoinVertical(lipgloss.Center,
		LogoStyle.Render("▁▃▅▇"),
		lipgloss.NewStyle().Bold(true).Foreground(ColorFgBright).Render("Welcome Back"),
		DimStyle.Render("Login to your account"),
	)

	sections := []string{
		lipgloss.PlaceHorizontal(formWidth+4, lipgloss.Center, header),
		"",
		field("Select Your Role", l.focus == fieldRole, picker),
		field(l.codeLabel(), l.focus == fieldCode, l.code.View()),
		field(pwLabel, l.focus == fieldPassword, l.password.View()),
		"",
		button("Login", l.canSubmit()) + "  " + button("Demo Credentials ▾", true),
	}

	if l.showDemo {
		sections = append(sections, "", DimStyle.Render("Choose a role to auto-fill credentials:"))
		for i, c := range l.demos {
			line := lipgloss.NewStyle().Width(14).Render(roleBadge(c.Role)) + " " + c.Code
			sections = append(sections, actionRow(line, i == l.demoIdx))
		}
	}

	sections = append(sections,
		"",
		DimStyle.Render("Don't have an account? ")+lipgloss.NewStyle().Foreground(ColorBrand).Render("Register"),
		"",
		l.help.ShortHelpView(l.keys.loginHelp()),
	)

	form := CardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
	if width <= 0 || height <= 0 {
		return form
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, form)
}
