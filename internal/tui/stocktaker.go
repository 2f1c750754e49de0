package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dialastocktaker/stocktaker-tui/internal/mockdata"
	"github.com/dialastocktaker/stocktaker-tui/internal/model"
)

type stocktakerDashboard struct {
	tabSet
	data  mockdata.Stocktaker
	issue form
}

func newStocktakerDashboard(data mockdata.Stocktaker) *stocktakerDashboard {
	return &stocktakerDashboard{
		tabSet: newTabSet(model.RoleStocktaker, data.UserName,
			Tab{ID: "tasks", Label: "My Tasks"},
			Tab{ID: "completed", Label: "Mark Completed"},
			Tab{ID: "issues", Label: "Report Issues"},
		),
		data: data,
		issue: newForm("Describe the issue",
			"Please describe any issues you've encountered during your stocktaking tasks...",
			"Submit Issue Report", 6),
	}
}

func (d *stocktakerDashboard) SelectTab(i int) bool {
	d.issue.Blur()
	return d.tabSet.SelectTab(i)
}

func (d *stocktakerDashboard) Capturing() bool {
	return d.activeID() == "issues" && d.issue.Focused()
}

func (d *stocktakerDashboard) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return d.issue.passThrough(msg)
	}

	switch d.activeID() {
	case "tasks", "completed":
		open := d.data.InProgressTasks()
		if d.moveCursor(keyMsg, len(open)) {
			return nil
		}
		if key.Matches(keyMsg, d.keys.Enter) && d.cursor < len(open) {
			return showToast("Task Completed", "Task "+open[d.cursor].ID+" has been marked as completed.")
		}
	case "issues":
		cmd, _ := d.issue.handleKey(keyMsg, d.keys, d.issue.Ready(), func() tea.Cmd {
			return showToast("Issue Reported", "Your issue has been submitted to the coordinator.")
		})
		return cmd
	}
	return nil
}

func (d *stocktakerDashboard) View(width int) string {
	switch d.activeID() {
	case "completed":
		return d.completedView(width)
	case "issues":
		return d.issuesView(width)
	default:
		return d.tasksView(width)
	}
}

func (d *stocktakerDashboard) tasksView(width int) string {
	inner := cardInner(width)
	var items []string
	row := 0
	for _, t := range d.data.Tasks {
		lines := []string{
			spread(ItemTitleStyle.Render(t.Title)+" "+priorityBadge(t.Priority), statusBadge(t.Status), inner),
			ItemMetaStyle.Render("⌖ " + t.Location),
			ItemMetaStyle.Render("◷ Due: " + t.Deadline),
			labelledProgress("Progress", percentLabel(t.Progress), float64(t.Progress), inner),
		}
		if t.Status != model.StatusCompleted {
			actions := badge("View Details", badgeOutline)
			if t.Status == model.StatusInProgress {
				actions += "  " + actionRow("Mark Complete", d.selected(row))
				row++
			}
			lines = append(lines, actions)
		}
		items = append(items, itemBlock(lines...))
	}
	return statCards(d.data.Stats, width) + "\n" + card("My Tasks", joinItems(items), width)
}

func (d *stocktakerDashboard) completedView(width int) string {
	inner := cardInner(width)
	var items []string
	for i, t := range d.data.InProgressTasks() {
		items = append(items, itemBlock(
			spread(ItemTitleStyle.Render(t.Title), actionRow("Mark Complete", d.selected(i)), inner),
			ItemMetaStyle.Render(t.Location),
			progressBar(float64(t.Progress), inner),
		))
	}
	if len(items) == 0 {
		items = append(items, DimStyle.Render("No tasks in progress"))
	}
	return card("Mark Tasks as Completed", joinItems(items), width)
}

func (d *stocktakerDashboard) issuesView(width int) string {
	inner := cardInner(width)
	var recent []string
	for _, r := range d.data.RecentIssues {
		recent = append(recent, itemBlock(
			spread(ItemTitleStyle.Render(r.Title), statusBadge(r.Status), inner),
			DimStyle.Render(r.Submitted),
		))
	}
	body := d.issue.View(inner, d.issue.Ready()) + "\n\n" +
		LabelStyle.Render("Recent Reports") + "\n" + joinItems(recent)
	return card("Report Issues", body, width)
}
