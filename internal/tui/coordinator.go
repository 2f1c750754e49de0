package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dialastocktaker/stocktaker-tui/internal/mockdata"
	"github.com/dialastocktaker/stocktaker-tui/internal/model"
)

// assignment is one "Assign <team>" button on an unassigned job
type assignment struct {
	job  model.Job
	team model.Team
}

type coordinatorDashboard struct {
	tabSet
	data     mockdata.Coordinator
	calendar calendar
}

func newCoordinatorDashboard(data mockdata.Coordinator, now func() time.Time) *coordinatorDashboard {
	cal := newCalendar(now, "Jobs", "No jobs scheduled for this date")
	for _, j := range data.Jobs {
		team := badge("No Team", badgeOutline)
		if j.HasTeam() {
			team = badge(j.Team, badgeDefault)
		}
		cal.add(j.Date, itemBlock(
			ItemTitleStyle.Render(j.Client)+" "+team,
			ItemMetaStyle.Render(j.Time+" • "+j.Location),
		))
	}

	return &coordinatorDashboard{
		tabSet: newTabSet(model.RoleCoordinator, data.UserName,
			Tab{ID: "schedule", Label: "Schedule Jobs"},
			Tab{ID: "assign", Label: "Assign Teams"},
			Tab{ID: "calendar", Label: "Calendar"},
		),
		data:     data,
		calendar: cal,
	}
}

// assignments lists every available team for every job still needing one
func (d *coordinatorDashboard) assignments() []assignment {
	var out []assignment
	for _, j := range d.data.UnassignedJobs() {
		for _, t := range d.data.AvailableTeams() {
			out = append(out, assignment{job: j, team: t})
		}
	}
	return out
}

func (d *coordinatorDashboard) Capturing() bool { return false }

func (d *coordinatorDashboard) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	switch d.activeID() {
	case "assign":
		options := d.assignments()
		if d.moveCursor(keyMsg, len(options)) {
			return nil
		}
		if key.Matches(keyMsg, d.keys.Enter) && d.cursor < len(options) {
			a := options[d.cursor]
			return showToast("Team Assigned", a.team.Name+" has been assigned to "+a.job.ID)
		}
	case "calendar":
		d.calendar.handleKey(keyMsg)
	}
	return nil
}

func (d *coordinatorDashboard) View(width int) string {
	switch d.activeID() {
	case "assign":
		return d.assignView(width)
	case "calendar":
		return heading("Calendar View") + "\n\n" + d.calendar.View(width)
	default:
		return d.scheduleView(width)
	}
}

func (d *coordinatorDashboard) scheduleView(width int) string {
	inner := cardInner(width)
	var items []string
	for _, j := range d.data.Jobs {
		variant := badgeOutline
		if j.Status == model.StatusScheduled {
			variant = badgeDefault
		}
		team := ""
		if j.HasTeam() {
			team = badge(j.Team, badgeSecondary)
		}
		items = append(items, itemBlock(
			spread(ItemTitleStyle.Render(j.ID)+" "+badge(string(j.Status), variant), badge("Edit", badgeOutline), inner),
			ItemMetaStyle.Render(j.Client),
			ItemMetaStyle.Render("⌖ "+j.Location+"   ◷ "+j.Date+" at "+j.Time),
			team,
		))
	}

	header := spread(heading("Job Scheduling"), button("+ Schedule New Job", true), width)
	return header + "\n\n" + card("Upcoming Jobs", joinItems(items), width)
}

func (d *coordinatorDashboard) assignView(width int) string {
	inner := cardInner(width)
	teams := d.data.AvailableTeams()

	var jobs []string
	row := 0
	for _, j := range d.data.UnassignedJobs() {
		lines := []string{
			spread(ItemTitleStyle.Render(j.ID+" - "+j.Client), badge("Needs Team", badgeOutline), inner),
			ItemMetaStyle.Render(j.Location + " • " + j.Date + " at " + j.Time),
		}
		for _, t := range teams {
			lines = append(lines, actionRow("Assign "+t.Name, d.selected(row)))
			row++
		}
		jobs = append(jobs, itemBlock(lines...))
	}
	if len(jobs) == 0 {
		jobs = append(jobs, DimStyle.Render("Every job has a team"))
	}

	var all []string
	for _, t := range d.data.Teams {
		variant := badgeSecondary
		if t.Status == model.StatusAvailable {
			variant = badgeDefault
		}
		all = append(all, itemBlock(
			spread(ItemTitleStyle.Render(t.Name)+" "+badge(string(t.Status), variant), badge("View Details", badgeOutline), inner),
			ItemMetaStyle.Render(itoa(t.Members)+" members • Led by "+t.Leader),
		))
	}

	return heading("Team Assignment") + "\n\n" +
		card("Jobs Needing Team Assignment", joinItems(jobs), width) + "\n" +
		card("Available Teams", joinItems(all), width)
}
