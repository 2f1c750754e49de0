package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

const (
	sidebarWidth = 30
	debugWidth   = 40
)

func placeCenter(width, height int, content string) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// contentWidth is the outer width left for the content box
func (m Model) contentWidth() int {
	w := m.width
	if m.sidebarOpen {
		w -= sidebarWidth
	}
	if m.showDebug {
		w -= debugWidth
	}
	return max(w, 20)
}

// resize fits the viewport to the content box
func (m *Model) resize() {
	// ContentStyle adds a border and two columns of padding on each side
	m.viewport.Width = max(m.contentWidth()-6, 10)
	// Box border and the tab header
	m.viewport.Height = max(m.bodyHeight()-2-2, 1)
	m.refreshContent()
}

// bodyHeight is the row count above the toast and the one-line status bar
func (m Model) bodyHeight() int {
	h := m.height - 1
	if toast := m.toasts.render(m.contentWidth()); toast != "" {
		h -= lipgloss.Height(toast)
	}
	return max(h, 5)
}

// refreshContent re-renders the active dashboard into the viewport
func (m *Model) refreshContent() {
	if m.dashboard == nil {
		return
	}
	m.viewport.SetContent(m.dashboard.View(m.viewport.Width))
}

// dashboardView renders sidebar, content, optional debug panel, toast and status bar
func (m Model) dashboardView() string {
	if m.dashboard == nil {
		return invalidRoleView(m.routeErr, m.width, m.height)
	}

	status := m.renderStatusBar()
	toast := m.toasts.render(m.contentWidth())
	bodyHeight := m.bodyHeight()

	var columns []string
	if m.sidebarOpen {
		columns = append(columns, m.renderSidebar(sidebarWidth, bodyHeight))
	}
	columns = append(columns, m.renderContent(m.contentWidth(), bodyHeight))
	if m.showDebug {
		columns = append(columns, m.debug.Render(debugWidth-2, bodyHeight-2))
	}

	rows := []string{lipgloss.JoinHorizontal(lipgloss.Top, columns...)}
	if toast != "" {
		rows = append(rows, lipgloss.PlaceHorizontal(m.width, lipgloss.Right, toast))
	}
	rows = append(rows, status)
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m Model) renderSidebar(width, height int) string {
	inner := width - 4

	brand := LogoStyle.Render("▁▃▅▇ ") + lipgloss.NewStyle().Bold(true).Foreground(ColorFgBright).Render(Brand)
	tagline := TaglineStyle.Render("Workforce Solution")

	user := ItemTitleStyle.Render(truncate(m.dashboard.UserName(), inner)) + "\n" + roleBadge(m.dashboard.Role())

	var nav []string
	for i, t := range m.dashboard.Tabs() {
		label := itoa(i+1) + " " + truncate(t.Label, inner-4)
		if i == m.dashboard.ActiveTab() {
			nav = append(nav, NavActiveStyle.Width(inner).Render(label))
		} else {
			nav = append(nav, NavItemStyle.Width(inner).Render(label))
		}
	}

	top := brand + "\n" + tagline + "\n\n" + user + "\n\n" + strings.Join(nav, "\n")
	footer := NavItemStyle.Render("◔ Notifications") + "\n" +
		NavItemStyle.Render("⚙ Settings") + "\n" +
		lipgloss.NewStyle().Foreground(ColorRed).Padding(0, 1).Render("L Logout")

	// Pin the footer to the bottom of the sidebar
	gap := height - 2 - lipgloss.Height(top) - lipgloss.Height(footer)
	content := top + "\n" + strings.Repeat("\n", max(gap, 1)) + footer

	return SidebarStyle.
		Width(width - 2).
		Height(height - 2).
		Render(content)
}

func (m Model) renderContent(width, height int) string {
	tab := m.dashboard.Tabs()[m.dashboard.ActiveTab()]
	header := ContentHeaderStyle.Render(tab.Label)
	if !m.sidebarOpen {
		header = LogoStyle.Render("▁▃▅▇ ") + header
	}

	return ContentStyle.
		Width(width - 2).
		Height(height - 2).
		Render(header + "\n\n" + m.viewport.View())
}

// statusHelp picks the key hints for the current screen
func (m Model) statusHelp() []key.Binding {
	switch {
	case m.viewMode == ViewModeLogin:
		return m.keys.loginHelp()
	case m.dashboard != nil && m.dashboard.Capturing():
		return m.keys.formHelp()
	default:
		return m.keys.ShortHelp()
	}
}

func (m Model) renderStatusBar() string {
	role := lipgloss.NewStyle().Foreground(RoleColor(m.dashboard.Role())).Render("● " + m.dashboard.Role().Label())
	scroll := ""
	if m.viewport.TotalLineCount() > m.viewport.Height {
		scroll = " │ " + itoa(int(m.viewport.ScrollPercent()*100)) + "%"
	}
	return StatusBarStyle.Render(role + scroll + " │ " + m.help.ShortHelpView(m.statusHelp()))
}

// helpView renders the key reference overlay
func (m Model) helpView() string {
	title := HelpTitleStyle.Render("Keyboard Shortcuts")
	full := m.help.FullHelpView(m.keys.FullHelp())
	tabs := DimStyle.Render("1-9 jump to a tab")
	content := title + "\n\n" + full + "\n\n" + tabs + "\n" + DimStyle.Render("Press ? or Esc to close")
	return placeCenter(m.width, m.height, HelpStyle.Render(content))
}
