package tui

import (
	"io"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dialastocktaker/stocktaker-tui/internal/config"
	"github.com/dialastocktaker/stocktaker-tui/internal/mockdata"
)

// ViewMode represents the current view
type ViewMode int

const (
	ViewModeSplash    ViewMode = iota // Loading screen
	ViewModeLogin                     // Role and credentials form
	ViewModeDashboard                 // Role dashboard or the invalid role fallback
	ViewModeHelp                      // Help overlay
)

func (v ViewMode) String() string {
	switch v {
	case ViewModeSplash:
		return "splash"
	case ViewModeLogin:
		return "login"
	case ViewModeDashboard:
		return "dashboard"
	case ViewModeHelp:
		return "help"
	default:
		return "unknown"
	}
}

// Model is the root Bubble Tea model
type Model struct {
	// Terminal dimensions
	width  int
	height int
	ready  bool

	// View state
	viewMode ViewMode

	cfg     *config.Config
	catalog *mockdata.Catalog
	logger  *slog.Logger
	now     func() time.Time

	// Screens
	splash splashModel
	login  loginModel

	// Session
	role      string
	dashboard Dashboard
	routeErr  error // Set when the router rejected role

	// Dashboard chrome
	viewport    viewport.Model
	sidebarOpen bool
	toasts      toastStack

	// Debug panel
	debug     DebugPanel
	showDebug bool

	// Key bindings
	keys KeyMap
	help help.Model
}

// NewRootModel creates the root model. A nil cfg uses the defaults and a
// nil logger discards records.
func NewRootModel(cfg *config.Config, catalog *mockdata.Catalog, logger *slog.Logger) Model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	m := Model{
		viewMode:    ViewModeSplash,
		cfg:         cfg,
		catalog:     catalog,
		logger:      logger,
		now:         time.Now,
		splash:      newSplashModel(cfg.SplashSeconds),
		login:       newLoginModel(),
		viewport:    viewport.New(80, 20),
		sidebarOpen: true,
		toasts:      newToastStack(1),
		debug:       NewDebugPanel(cfg.Debug, logger),
		keys:        DefaultKeyMap(),
		help:        help.New(),
	}
	if cfg.SkipSplash {
		m.viewMode = ViewModeLogin
	}
	return m
}

// WithRole starts the model signed in as role, skipping splash and login.
// A role the router rejects opens the invalid role screen.
func (m Model) WithRole(role string) Model {
	m.enterDashboard(role)
	return m
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	switch m.viewMode {
	case ViewModeSplash:
		return m.splash.Init()
	case ViewModeLogin:
		return m.login.Init()
	}
	return nil
}

// ViewMode returns the active screen
func (m Model) ViewMode() ViewMode {
	return m.viewMode
}

// Dashboard returns the active dashboard, nil outside a session or for an invalid role
func (m Model) Dashboard() Dashboard {
	return m.dashboard
}

// trace records a UI event in the debug panel and the log
func (m *Model) trace(event, details string) {
	m.debug.Record(m.viewMode, event, details)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.resize()
		return m, nil

	case splashTickMsg:
		// The ticker dies once the splash is no longer on screen
		if m.viewMode != ViewModeSplash {
			return m, nil
		}
		var cmd tea.Cmd
		m.splash, cmd = m.splash.Update(msg)
		return m, cmd

	case splashDoneMsg:
		if m.viewMode != ViewModeSplash {
			return m, nil
		}
		m.viewMode = ViewModeLogin
		m.trace("splash", "complete")
		return m, m.login.Init()

	case loggedInMsg:
		if m.viewMode != ViewModeLogin {
			return m, nil
		}
		return m, m.enterDashboard(string(msg.role))

	case toastMsg:
		if m.viewMode != ViewModeDashboard {
			return m, nil
		}
		m.toasts.push(msg.toast)
		m.resize()
		m.trace("toast", msg.toast.Title)
		return m, expireToastCmd(msg.toast.ID, time.Duration(m.cfg.ToastSeconds)*time.Second)

	case toastExpiredMsg:
		if m.toasts.dismiss(msg.id) {
			m.resize()
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	// Cursor blink and other component messages
	var cmd tea.Cmd
	switch m.viewMode {
	case ViewModeLogin:
		m.login, cmd = m.login.Update(msg)
	case ViewModeDashboard:
		if m.dashboard != nil {
			cmd = m.dashboard.Update(msg)
			m.refreshContent()
		}
	}
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Interrupt) {
		return m, tea.Quit
	}
	if key.Matches(msg, m.keys.Debug) && m.debug.IsEnabled() {
		m.showDebug = !m.showDebug
		m.resize()
		return m, nil
	}

	var cmd tea.Cmd
	switch m.viewMode {
	case ViewModeSplash:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		m.splash, cmd = m.splash.Update(msg)
		return m, cmd

	case ViewModeLogin:
		if !m.login.Capturing() && key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		m.login, cmd = m.login.Update(msg)
		return m, cmd

	case ViewModeHelp:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help), key.Matches(msg, m.keys.Escape):
			m.viewMode = ViewModeDashboard
		}
		return m, nil
	}

	return m.handleDashboardKey(msg)
}

func (m Model) handleDashboardKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Invalid role fallback: only leaving is possible
	if m.dashboard == nil {
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Escape), key.Matches(msg, m.keys.Logout):
			return m, m.logout()
		}
		return m, nil
	}

	// A focused text field gets every key
	if m.dashboard.Capturing() {
		cmd := m.dashboard.Update(msg)
		m.refreshContent()
		return m, cmd
	}

	n := len(m.dashboard.Tabs())
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.viewMode = ViewModeHelp
		return m, nil

	case key.Matches(msg, m.keys.Logout):
		return m, m.logout()

	case key.Matches(msg, m.keys.Menu):
		m.sidebarOpen = !m.sidebarOpen
		m.resize()
		return m, nil

	case key.Matches(msg, m.keys.NextTab):
		m.selectTab((m.dashboard.ActiveTab() + 1) % n)
		return m, nil

	case key.Matches(msg, m.keys.PrevTab):
		m.selectTab((m.dashboard.ActiveTab() - 1 + n) % n)
		return m, nil

	case key.Matches(msg, m.keys.PageUp):
		m.viewport.SetYOffset(m.viewport.YOffset - m.viewport.Height)
		return m, nil

	case key.Matches(msg, m.keys.PageDown):
		m.viewport.SetYOffset(m.viewport.YOffset + m.viewport.Height)
		return m, nil

	case key.Matches(msg, m.keys.Home):
		m.viewport.GotoTop()
		return m, nil

	case key.Matches(msg, m.keys.End):
		m.viewport.GotoBottom()
		return m, nil
	}

	if i, ok := tabDigit(msg); ok && m.selectTab(i) {
		return m, nil
	}

	cmd := m.dashboard.Update(msg)
	m.refreshContent()
	return m, cmd
}

// tabDigit maps the keys 1..9 to tab indexes 0..8
func tabDigit(msg tea.KeyMsg) (int, bool) {
	s := msg.String()
	if len(s) != 1 || s[0] < '1' || s[0] > '9' {
		return 0, false
	}
	return int(s[0] - '1'), true
}

// selectTab switches the dashboard tab and scrolls back to the top
func (m *Model) selectTab(i int) bool {
	if !m.dashboard.SelectTab(i) {
		return false
	}
	m.trace("tab", m.dashboard.Tabs()[i].Label)
	m.viewport.GotoTop()
	m.refreshContent()
	return true
}

// enterDashboard routes role to its dashboard, or to the invalid role screen
func (m *Model) enterDashboard(role string) tea.Cmd {
	m.role = role
	m.viewMode = ViewModeDashboard
	m.toasts.clear()

	d, err := NewDashboard(role, m.catalog, m.now)
	if err != nil {
		m.dashboard = nil
		m.routeErr = err
		m.logger.Warn("dashboard routing failed", "role", role, "error", err)
		m.trace("route", err.Error())
		return nil
	}

	m.dashboard = d
	m.routeErr = nil
	m.sidebarOpen = true
	m.logger.Info("logged in", "role", role)
	m.trace("login", role)
	m.resize()
	m.viewport.GotoTop()
	return nil
}

// logout drops the session and shows a fresh login form
func (m *Model) logout() tea.Cmd {
	m.trace("logout", m.role)
	m.logger.Info("logged out", "role", m.role)

	m.role = ""
	m.dashboard = nil
	m.routeErr = nil
	m.toasts.clear()
	m.login = newLoginModel()
	m.viewMode = ViewModeLogin
	return m.login.Init()
}

// View renders the model
func (m Model) View() string {
	switch m.viewMode {
	case ViewModeSplash:
		return m.splash.View(m.width, m.height)
	case ViewModeLogin:
		return m.login.View(m.width, m.height)
	}

	if !m.ready {
		return "Loading..."
	}

	if m.viewMode == ViewModeHelp {
		return m.helpView()
	}
	return m.dashboardView()
}
