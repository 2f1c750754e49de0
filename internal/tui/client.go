package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dialastocktaker/stocktaker-tui/internal/mockdata"
	"github.com/dialastocktaker/stocktaker-tui/internal/model"
)

const maxRating = 5

type clientDashboard struct {
	tabSet
	data     mockdata.Client
	feedback form
	rating   int // 0 until the client picks 1..5 stars
}

func newClientDashboard(data mockdata.Client) *clientDashboard {
	return &clientDashboard{
		tabSet: newTabSet(model.RoleClient, data.UserName,
			Tab{ID: "jobs", Label: "View Jobs"},
			Tab{ID: "reports", Label: "Download Reports"},
			Tab{ID: "feedback", Label: "Send Feedback"},
		),
		data: data,
		feedback: newForm("Your feedback",
			"Please share your experience with our stocktaking service...",
			"Submit Feedback", 6),
	}
}

func (d *clientDashboard) SelectTab(i int) bool {
	d.feedback.Blur()
	return d.tabSet.SelectTab(i)
}

func (d *clientDashboard) Capturing() bool {
	return d.activeID() == "feedback" && d.feedback.Focused()
}

// canSubmitFeedback requires both text and a star rating
func (d *clientDashboard) canSubmitFeedback() bool {
	return d.feedback.Ready() && d.rating > 0
}

func (d *clientDashboard) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return d.feedback.passThrough(msg)
	}

	switch d.activeID() {
	case "reports":
		if d.moveCursor(keyMsg, len(d.data.Reports)) {
			return nil
		}
		if key.Matches(keyMsg, d.keys.Enter) && d.cursor < len(d.data.Reports) {
			return showToast("Download Started", "Report "+d.data.Reports[d.cursor].ID+" is being downloaded.")
		}
	case "feedback":
		if !d.feedback.Focused() {
			switch {
			case key.Matches(keyMsg, d.keys.Left):
				d.rating = max(d.rating-1, 0)
				return nil
			case key.Matches(keyMsg, d.keys.Right):
				d.rating = min(d.rating+1, maxRating)
				return nil
			}
		}
		cmd, _ := d.feedback.handleKey(keyMsg, d.keys, d.canSubmitFeedback(), func() tea.Cmd {
			d.rating = 0
			return showToast("Feedback Submitted", "Thank you for your feedback. We appreciate your input!")
		})
		return cmd
	}
	return nil
}

func (d *clientDashboard) View(width int) string {
	switch d.activeID() {
	case "reports":
		return d.reportsView(width)
	case "feedback":
		return d.feedbackView(width)
	default:
		return d.jobsView(width)
	}
}

func (d *clientDashboard) stats() []model.StatCard {
	return []model.StatCard{
		{Title: "Active Jobs", Value: itoa(d.data.CountJobs(model.StatusInProgress)), Note: "Currently running"},
		{Title: "Scheduled", Value: itoa(d.data.CountJobs(model.StatusScheduled)), Note: "Upcoming jobs"},
		{Title: "Completed", Value: itoa(d.data.CountJobs(model.StatusCompleted)), Note: "This month"},
	}
}

func (d *clientDashboard) jobsView(width int) string {
	inner := cardInner(width)
	var items []string
	for _, j := range d.data.Jobs {
		variant := badgeOutline
		switch j.Status {
		case model.StatusCompleted:
			variant = badgeDefault
		case model.StatusInProgress:
			variant = badgeSecondary
		}
		when := "Estimated completion"
		if j.Status == model.StatusCompleted {
			when = "Completed"
		}
		lines := []string{
			spread(ItemTitleStyle.Render(j.ID)+" "+badge(string(j.Status), variant), badge("View Details", badgeOutline), inner),
			ItemMetaStyle.Render(j.Location),
			ItemMetaStyle.Render("Team: " + j.Team),
			ItemMetaStyle.Render(when + ": " + j.EstimatedCompletion),
		}
		if j.Status != model.StatusScheduled {
			lines = append(lines, labelledProgress("Progress", percentLabel(j.Progress), float64(j.Progress), inner))
		}
		items = append(items, itemBlock(lines...))
	}
	return statCards(d.stats(), width) + "\n" + card("Your Stocktaking Jobs", joinItems(items), width)
}

func (d *clientDashboard) reportsView(width int) string {
	inner := cardInner(width)
	var items []string
	for i, r := range d.data.Reports {
		items = append(items, itemBlock(
			spread(ItemTitleStyle.Render(r.Title), actionRow("⇩ Download", d.selected(i)), inner),
			ItemMetaStyle.Render(r.JobID+" • "+r.Date+" • "+r.Size),
			badge(r.Type, badgeOutline),
		))
	}
	return card("Available Reports", joinItems(items), width)
}

func (d *clientDashboard) feedbackView(width int) string {
	inner := cardInner(width)

	rating := LabelStyle.Render("Rate our service") + "\n" + stars(d.rating)
	if !d.feedback.Focused() {
		rating += DimStyle.Render("  ←/→ to rate")
	}

	var previous []string
	for _, f := range d.data.PreviousFeedback {
		previous = append(previous, itemBlock(
			spread(ItemTitleStyle.Render(f.Title), stars(f.Rating), inner),
			DimStyle.Render(f.Submitted),
		))
	}

	body := rating + "\n\n" +
		d.feedback.View(inner, d.canSubmitFeedback()) + "\n\n" +
		LabelStyle.Render("Previous Feedback") + "\n" + joinItems(previous)
	return card("Send Feedback", body, width)
}
