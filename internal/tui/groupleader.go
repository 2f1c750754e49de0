package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dialastocktaker/stocktaker-tui/internal/mockdata"
	"github.com/dialastocktaker/stocktaker-tui/internal/model"
)

type groupLeaderDashboard struct {
	tabSet
	data   mockdata.GroupLeader
	report form
}

func newGroupLeaderDashboard(data mockdata.GroupLeader) *groupLeaderDashboard {
	return &groupLeaderDashboard{
		tabSet: newTabSet(model.RoleGroupLeader, data.UserName,
			Tab{ID: "team", Label: "Team Members"},
			Tab{ID: "progress", Label: "Job Progress"},
			Tab{ID: "report", Label: "Submit Report"},
		),
		data: data,
		report: newForm("Team Performance Report",
			"Provide a summary of your team's performance, any issues encountered, and recommendations...",
			"Submit Report", 8),
	}
}

func (d *groupLeaderDashboard) SelectTab(i int) bool {
	d.report.Blur()
	return d.tabSet.SelectTab(i)
}

func (d *groupLeaderDashboard) Capturing() bool {
	return d.activeID() == "report" && d.report.Focused()
}

func (d *groupLeaderDashboard) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return d.report.passThrough(msg)
	}
	if d.activeID() != "report" {
		return nil
	}
	cmd, _ := d.report.handleKey(keyMsg, d.keys, d.report.Ready(), func() tea.Cmd {
		return showToast("Report Submitted", "Your team report has been submitted to management.")
	})
	return cmd
}

func (d *groupLeaderDashboard) View(width int) string {
	switch d.activeID() {
	case "progress":
		return d.progressView(width)
	case "report":
		return d.reportView(width)
	default:
		return d.teamView(width)
	}
}

// stats derives the headline counts from the member list
func (d *groupLeaderDashboard) stats() []model.StatCard {
	return []model.StatCard{
		{Title: "Team Size", Value: itoa(len(d.data.Members)), Note: "Active members"},
		{Title: "Currently Active", Value: itoa(d.data.CountMembers(model.StatusActive)), Note: "Working now"},
		{Title: "On Break", Value: itoa(d.data.CountMembers(model.StatusOnBreak)), Note: "Taking break"},
	}
}

func (d *groupLeaderDashboard) teamView(width int) string {
	inner := cardInner(width)
	var items []string
	for _, m := range d.data.Members {
		items = append(items, itemBlock(
			spread(ItemTitleStyle.Render(m.Name)+" "+badge(m.Role, badgeOutline), statusBadge(m.Status), inner),
			ItemMetaStyle.Render(m.CurrentTask),
			labelledProgress("Task Progress", percentLabel(m.Progress), float64(m.Progress), inner),
		))
	}
	return statCards(d.stats(), width) + "\n" + card("Team Members", joinItems(items), width)
}

func (d *groupLeaderDashboard) progressView(width int) string {
	inner := cardInner(width)
	jp := d.data.JobProgress

	overall := itemBlock(
		spread(ItemTitleStyle.Render(jp.JobID), StatValueStyle.Render(percentLabel(jp.OverallProgress)), inner),
		spread(ItemMetaStyle.Render(jp.Client+" • "+jp.Location), ItemMetaStyle.Render("Complete"), inner),
		progressBar(float64(jp.OverallProgress), inner),
	)

	var sections []string
	for _, s := range jp.Sections {
		sections = append(sections, itemBlock(
			spread(ItemTitleStyle.Render(s.Name), ItemTitleStyle.Render(percentLabel(s.Progress)), inner),
			ItemMetaStyle.Render("Assigned to: "+s.Assigned),
			progressBar(float64(s.Progress), inner),
		))
	}

	return card("Overall Job Progress", overall, width) + "\n" +
		card("Section Progress", joinItems(sections), width)
}

func (d *groupLeaderDashboard) reportView(width int) string {
	inner := cardInner(width)
	var recent []string
	for _, r := range d.data.RecentReports {
		recent = append(recent, itemBlock(
			spread(ItemTitleStyle.Render(r.Title), statusBadge(r.Status), inner),
			DimStyle.Render(r.Submitted),
		))
	}
	body := d.report.View(inner, d.report.Ready()) + "\n\n" +
		LabelStyle.Render("Recent Reports") + "\n" + joinItems(recent)
	return card("Submit Team Report", body, width)
}
