package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
	"github.com/dialastocktaker/stocktaker-tui/internal/model"
)

// displayDate is the layout used wherever a calendar date is shown to the user
const displayDate = "2 January 2006"

type badgeVariant int

const (
	badgeDefault badgeVariant = iota
	badgeSecondary
	badgeOutline
	badgeDestructive
)

func badge(label string, variant badgeVariant) string {
	style := lipgloss.NewStyle().Padding(0, 1)
	switch variant {
	case badgeDefault:
		style = style.Background(ColorGreen).Foreground(ColorBgPrimary).Bold(true)
	case badgeSecondary:
		style = style.Background(ColorBgHighlight).Foreground(ColorYellow)
	case badgeDestructive:
		style = style.Background(ColorRed).Foreground(ColorFgBright).Bold(true)
	default:
		return lipgloss.NewStyle().Foreground(ColorFgSecondary).Render("[" + label + "]")
	}
	return style.Render(label)
}

// statusVariant picks the badge look for a status label
func statusVariant(s model.Status) badgeVariant {
	switch s {
	case model.StatusCompleted, model.StatusActive, model.StatusAvailable,
		model.StatusConfirmed, model.StatusResolved, model.StatusSubmitted, model.StatusScheduled:
		return badgeDefault
	case model.StatusInProgress, model.StatusOnBreak, model.StatusBusy:
		return badgeSecondary
	case model.StatusUnread:
		return badgeDestructive
	default:
		return badgeOutline
	}
}

func statusBadge(s model.Status) string {
	return badge(string(s), statusVariant(s))
}

func priorityBadge(p model.Priority) string {
	switch p {
	case model.PriorityHigh:
		return badge(string(p), badgeDestructive)
	case model.PriorityMedium:
		return badge(string(p), badgeDefault)
	default:
		return badge(string(p), badgeSecondary)
	}
}

func roleBadge(r model.Role) string {
	return lipgloss.NewStyle().
		Background(RoleColor(r)).
		Foreground(ColorBgPrimary).
		Bold(true).
		Padding(0, 1).
		Render(r.Title())
}

// progressBar renders a static bar for percent in [0, 100]
func progressBar(percent float64, width int) string {
	if width < 4 {
		width = 4
	}
	bar := progress.New(
		progress.WithSolidFill(string(ColorBrand)),
		progress.WithoutPercentage(),
		progress.WithWidth(width),
	)
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	return bar.ViewAs(percent / 100)
}

// labelledProgress renders "label ... value" above a progress bar
func labelledProgress(label, value string, percent float64, width int) string {
	gap := width - lipgloss.Width(label) - lipgloss.Width(value)
	if gap < 1 {
		gap = 1
	}
	head := ItemMetaStyle.Render(label) + strings.Repeat(" ", gap) + ItemMetaStyle.Render(value)
	return head + "\n" + progressBar(percent, width)
}

func card(title, body string, width int) string {
	inner := CardTitleStyle.Render(title)
	if body != "" {
		inner += "\n\n" + body
	}
	return CardStyle.Width(max(width-2, 10)).Render(inner)
}

// statCards lays cards out side by side, wrapping to rows when narrow
func statCards(cards []model.StatCard, width int) string {
	if len(cards) == 0 {
		return ""
	}
	const minCard = 20
	perRow := len(cards)
	for perRow > 1 && width/perRow < minCard {
		perRow--
	}
	cardWidth := width / perRow

	var rows []string
	for start := 0; start < len(cards); start += perRow {
		end := min(start+perRow, len(cards))
		var boxes []string
		for _, c := range cards[start:end] {
			body := ItemMetaStyle.Render(c.Title) + "\n" +
				StatValueStyle.Render(c.Value) + "\n" +
				StatNoteStyle.Render(truncate(c.Note, cardWidth-6))
			boxes = append(boxes, CardStyle.Width(max(cardWidth-2, 10)).Render(body))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, boxes...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// actionRow renders a selectable button line
func actionRow(label string, selected bool) string {
	if selected {
		return SelectedRowStyle.Render("▸ " + label)
	}
	return RowStyle.Render("  " + label)
}

// button renders an inline button that may be disabled
func button(label string, enabled bool) string {
	if enabled {
		return ButtonStyle.Render(label)
	}
	return ButtonDisabledStyle.Render(label)
}

func stars(rating int) string {
	filled := lipgloss.NewStyle().Foreground(ColorYellow)
	empty := lipgloss.NewStyle().Foreground(ColorFgComment)
	var sb strings.Builder
	for i := 1; i <= 5; i++ {
		if i <= rating {
			sb.WriteString(filled.Render("★"))
		} else {
			sb.WriteString(empty.Render("☆"))
		}
		if i < 5 {
			sb.WriteString(" ")
		}
	}
	return sb.String()
}

// itemBlock joins an item header with its detail lines
func itemBlock(lines ...string) string {
	var kept []string
	for _, l := range lines {
		if l != "" {
			kept = append(kept, l)
		}
	}
	return strings.Join(kept, "\n")
}

// joinItems separates list items with a blank line
func joinItems(items []string) string {
	return strings.Join(items, "\n\n")
}

func percentLabel(p int) string {
	return fmt.Sprintf("%d%%", p)
}

// Helper functions
func truncate(s string, max int) string {
	if max < 1 {
		return ""
	}
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}

func itoa(i int) string {
	return fmt.Sprintf("%d", i)
}

// spread puts left and right on one line, right-aligned to width
func spread(left, right string, width int) string {
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

// cardInner is the text width available inside a card of the given outer width
func cardInner(width int) int {
	return max(width-4, 8)
}

// heading renders a tab's page title
func heading(title string) string {
	return ContentHeaderStyle.Render(title)
}
