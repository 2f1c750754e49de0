package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/dialastocktaker/stocktaker-tui/internal/model"
)

// One Dark Pro color palette
var (
	// Background colors
	ColorBgPrimary   = lipgloss.Color("#282C34")
	ColorBgSecondary = lipgloss.Color("#21252B")
	ColorBgHighlight = lipgloss.Color("#2C313C")

	// Foreground colors
	ColorFgPrimary   = lipgloss.Color("#ABB2BF")
	ColorFgSecondary = lipgloss.Color("#828997")
	ColorFgMuted     = lipgloss.Color("#636B78")
	ColorFgComment   = lipgloss.Color("#5C6370")
	ColorFgBright    = lipgloss.Color("#FFFFFF")

	// Syntax colors
	ColorRed     = lipgloss.Color("#E06C75")
	ColorGreen   = lipgloss.Color("#98C379")
	ColorYellow  = lipgloss.Color("#E5C07B")
	ColorBlue    = lipgloss.Color("#61AFEF")
	ColorMagenta = lipgloss.Color("#C678DD")
	ColorCyan    = lipgloss.Color("#56B6C2")
	ColorOrange  = lipgloss.Color("#D19A66")
	ColorIndigo  = lipgloss.Color("#7C83FD")
	ColorPink    = lipgloss.Color("#F78FB3")

	// Brand
	ColorBrand = lipgloss.Color("#EF4444")

	// UI colors
	ColorBorder = lipgloss.Color("#3F4451")
)

// roleColors mirrors the badge colours of the login and sidebar
var roleColors = map[model.Role]lipgloss.Color{
	model.RoleAdmin:        ColorRed,
	model.RoleManager:      ColorBlue,
	model.RoleStocktaker:   ColorGreen,
	model.RoleScanner:      ColorMagenta,
	model.RoleCoordinator:  ColorOrange,
	model.RoleGroupLeader:  ColorIndigo,
	model.RoleReceptionist: ColorPink,
	model.RoleClient:       ColorFgSecondary,
}

// RoleColor returns the badge colour for a role, grey for anything unknown
func RoleColor(r model.Role) lipgloss.Color {
	if c, ok := roleColors[r]; ok {
		return c
	}
	return ColorFgSecondary
}

// Component styles
var (
	// Brand mark
	LogoStyle = lipgloss.NewStyle().
			Foreground(ColorBrand).
			Bold(true)

	TaglineStyle = lipgloss.NewStyle().
			Foreground(ColorFgMuted)

	// Sidebar styles
	SidebarStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	SidebarTitleStyle = lipgloss.NewStyle().
				Foreground(ColorMagenta).
				Bold(true)

	NavItemStyle = lipgloss.NewStyle().
			Foreground(ColorFgPrimary).
			Padding(0, 1)

	NavActiveStyle = lipgloss.NewStyle().
			Background(ColorBrand).
			Foreground(ColorFgBright).
			Bold(true).
			Padding(0, 1)

	// Content area styles
	ContentStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 2)

	ContentHeaderStyle = lipgloss.NewStyle().
				Foreground(ColorMagenta).
				Bold(true)

	// Cards
	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	CardTitleStyle = lipgloss.NewStyle().
			Foreground(ColorBlue).
			Bold(true)

	StatValueStyle = lipgloss.NewStyle().
			Foreground(ColorFgBright).
			Bold(true)

	StatNoteStyle = lipgloss.NewStyle().
			Foreground(ColorFgMuted)

	ItemTitleStyle = lipgloss.NewStyle().
			Foreground(ColorFgPrimary).
			Bold(true)

	ItemMetaStyle = lipgloss.NewStyle().
			Foreground(ColorFgSecondary)

	// Selectable rows
	SelectedRowStyle = lipgloss.NewStyle().
				Background(ColorBgHighlight).
				Foreground(ColorFgPrimary).
				Bold(true).
				Padding(0, 1)

	RowStyle = lipgloss.NewStyle().
			Foreground(ColorFgPrimary).
			Padding(0, 1)

	// Buttons
	ButtonStyle = lipgloss.NewStyle().
			Background(ColorBrand).
			Foreground(ColorFgBright).
			Bold(true).
			Padding(0, 2)

	ButtonDisabledStyle = lipgloss.NewStyle().
				Background(ColorBgHighlight).
				Foreground(ColorFgMuted).
				Padding(0, 2)

	// Status bar styles
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(ColorFgMuted).
			PaddingLeft(1).
			PaddingRight(1)

	// Input styles
	InputStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	InputFocusedStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorBrand).
				Padding(0, 1)

	InputPromptStyle = lipgloss.NewStyle().
				Foreground(ColorGreen)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorFgPrimary).
			Bold(true)

	// Help overlay styles
	HelpStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(1, 2)

	HelpTitleStyle = lipgloss.NewStyle().
			Foreground(ColorBlue).
			Bold(true)

	// Toast styles
	ToastStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorGreen).
			Padding(0, 1)

	ToastTitleStyle = lipgloss.NewStyle().
			Foreground(ColorFgPrimary).
			Bold(true)

	// Error styles
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorRed)

	// Success styles
	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorGreen)

	// Warning styles
	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorYellow)

	// Dimmed/info style for less important messages
	DimStyle = lipgloss.NewStyle().
			Foreground(ColorFgComment)
)
