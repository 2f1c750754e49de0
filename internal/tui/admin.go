package tui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dialastocktaker/stocktaker-tui/internal/mockdata"
	"github.com/dialastocktaker/stocktaker-tui/internal/model"
)

// adminDashboard is the system overview: stats, users, jobs and reports
type adminDashboard struct {
	tabSet
	data mockdata.Admin
	now  func() time.Time
}

func newAdminDashboard(data mockdata.Admin, now func() time.Time) *adminDashboard {
	return &adminDashboard{
		tabSet: newTabSet(model.RoleAdmin, data.UserName,
			Tab{ID: "dashboard", Label: "Dashboard"},
			Tab{ID: "users", Label: "Users"},
			Tab{ID: "jobs", Label: "Jobs"},
			Tab{ID: "reports", Label: "Reports"},
		),
		data: data,
		now:  now,
	}
}

func (d *adminDashboard) Capturing() bool { return false }

func (d *adminDashboard) Update(tea.Msg) tea.Cmd { return nil }

func (d *adminDashboard) View(width int) string {
	switch d.activeID() {
	case "users":
		return d.usersView(width)
	case "jobs":
		return d.jobsView(width)
	case "reports":
		return d.reportsView(width)
	default:
		return d.overviewView(width)
	}
}

func (d *adminDashboard) overviewView(width int) string {
	inner := cardInner(width)
	var items []string
	for _, j := range d.data.Jobs {
		head := spread(ItemTitleStyle.Render(j.ID)+" "+statusBadge(j.Status), ItemTitleStyle.Render(percentLabel(j.Progress)), inner)
		items = append(items, itemBlock(
			head,
			ItemMetaStyle.Render(j.Client+" • "+j.Team),
			progressBar(float64(j.Progress), inner),
		))
	}
	return statCards(d.data.Stats, width) + "\n" + card("Recent Jobs", joinItems(items), width)
}

func (d *adminDashboard) usersView(width int) string {
	inner := cardInner(width)
	var items []string
	for _, u := range d.data.Users {
		variant := badgeSecondary
		if u.Status == model.StatusActive {
			variant = badgeDefault
		}
		items = append(items, itemBlock(
			spread(ItemTitleStyle.Render(u.Name)+" "+badge(u.Role, badgeOutline), badge(string(u.Status), variant), inner),
			ItemMetaStyle.Render(u.ID+" • "+itoa(u.Jobs)+" jobs completed"),
		))
	}
	return card("User Management", joinItems(items), width)
}

func (d *adminDashboard) jobsView(width int) string {
	inner := cardInner(width)
	var items []string
	for _, j := range d.data.Jobs {
		items = append(items, itemBlock(
			spread(ItemTitleStyle.Render(j.ID)+" "+statusBadge(j.Status), badge("View Details", badgeOutline), inner),
			ItemMetaStyle.Render(j.Client+" • "+j.Team),
			labelledProgress("Progress", percentLabel(j.Progress), float64(j.Progress), inner),
		))
	}
	return card("Job Management", joinItems(items), width)
}

// reportDescription fills the generation date into a report description
func (d *adminDashboard) reportDescription(r model.Report) string {
	return strings.ReplaceAll(r.Description, mockdata.TodayPlaceholder, d.now().Format(displayDate))
}

func (d *adminDashboard) reportsView(width int) string {
	var items []string
	for _, r := range d.data.Reports {
		items = append(items, itemBlock(
			ItemTitleStyle.Render(r.Title),
			ItemMetaStyle.Render(d.reportDescription(r)),
			button(r.Action, true),
		))
	}
	return card("System Reports", joinItems(items), width)
}
