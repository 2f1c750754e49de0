package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dialastocktaker/stocktaker-tui/internal/mockdata"
	"github.com/dialastocktaker/stocktaker-tui/internal/model"
)

type managerDashboard struct {
	tabSet
	data mockdata.Manager
}

func newManagerDashboard(data mockdata.Manager) *managerDashboard {
	return &managerDashboard{
		tabSet: newTabSet(model.RoleManager, data.UserName,
			Tab{ID: "team", Label: "Team Overview"},
			Tab{ID: "jobs", Label: "Job Management"},
			Tab{ID: "reports", Label: "Reports"},
		),
		data: data,
	}
}

func (d *managerDashboard) Capturing() bool { return false }

func (d *managerDashboard) Update(tea.Msg) tea.Cmd { return nil }

func (d *managerDashboard) View(width int) string {
	switch d.activeID() {
	case "jobs":
		return d.jobsView(width)
	case "reports":
		return d.reportsView(width)
	default:
		return d.teamView(width)
	}
}

func (d *managerDashboard) teamView(width int) string {
	inner := cardInner(width)
	var items []string
	for _, m := range d.data.Members {
		job := "No current job"
		if m.CurrentJob != "" {
			job = "Working on " + m.CurrentJob
		}
		items = append(items, itemBlock(
			spread(ItemTitleStyle.Render(m.Name)+" "+badge(m.Role, badgeOutline), statusBadge(m.Status), inner),
			ItemMetaStyle.Render(job),
		))
	}
	return statCards(d.data.Stats, width) + "\n" + card("Team Members", joinItems(items), width)
}

func (d *managerDashboard) jobsView(width int) string {
	inner := cardInner(width)
	var items []string
	for _, j := range d.data.Jobs {
		items = append(items, itemBlock(
			spread(ItemTitleStyle.Render(j.ID)+" "+statusBadge(j.Status), badge("Manage", badgeOutline), inner),
			ItemMetaStyle.Render(j.Client+" • "+j.Team),
			labelledProgress("Progress", percentLabel(j.Progress), float64(j.Progress), inner),
		))
	}
	return card("Job Management", joinItems(items), width)
}

func (d *managerDashboard) reportsView(width int) string {
	var items []string
	for _, r := range d.data.Reports {
		items = append(items, itemBlock(
			ItemTitleStyle.Render(r.Title),
			ItemMetaStyle.Render(r.Description),
			button(r.Action, true),
		))
	}
	return card("Team Reports", joinItems(items), width)
}
