package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dialastocktaker/stocktaker-tui/internal/mockdata"
	"github.com/dialastocktaker/stocktaker-tui/internal/model"
)

type receptionistDashboard struct {
	tabSet
	data     mockdata.Receptionist
	calendar calendar
	message  form
}

func newReceptionistDashboard(data mockdata.Receptionist, now func() time.Time) *receptionistDashboard {
	cal := newCalendar(now, "Bookings", "No bookings for this date")
	for _, r := range data.Requests {
		variant := badgeOutline
		if r.Status == model.StatusConfirmed {
			variant = badgeDefault
		}
		cal.add(r.PreferredDate, itemBlock(
			ItemTitleStyle.Render(r.Client)+" "+badge(string(r.Status), variant),
			ItemMetaStyle.Render(r.Contact),
		))
	}

	return &receptionistDashboard{
		tabSet: newTabSet(model.RoleReceptionist, data.UserName,
			Tab{ID: "bookings", Label: "Booking Requests"},
			Tab{ID: "calendar", Label: "Schedule Calendar"},
			Tab{ID: "messages", Label: "Client Messages"},
		),
		data:     data,
		calendar: cal,
		message:  newForm("Message", "Type your message to the client...", "Send Message", 4),
	}
}

func (d *receptionistDashboard) SelectTab(i int) bool {
	d.message.Blur()
	return d.tabSet.SelectTab(i)
}

func (d *receptionistDashboard) Capturing() bool {
	return d.activeID() == "messages" && d.message.Focused()
}

func (d *receptionistDashboard) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return d.message.passThrough(msg)
	}

	switch d.activeID() {
	case "bookings":
		pending := d.data.PendingRequests()
		if d.moveCursor(keyMsg, len(pending)) {
			return nil
		}
		if key.Matches(keyMsg, d.keys.Enter) && d.cursor < len(pending) {
			return showToast("Request Approved", "Booking request "+pending[d.cursor].ID+" has been approved and scheduled.")
		}
	case "calendar":
		d.calendar.handleKey(keyMsg)
	case "messages":
		cmd, _ := d.message.handleKey(keyMsg, d.keys, d.message.Ready(), func() tea.Cmd {
			return showToast("Message Sent", "Your message has been sent to the client.")
		})
		return cmd
	}
	return nil
}

func (d *receptionistDashboard) View(width int) string {
	switch d.activeID() {
	case "calendar":
		return heading("Schedule Calendar") + "\n\n" + d.calendar.View(width)
	case "messages":
		return d.messagesView(width)
	default:
		return d.bookingsView(width)
	}
}

func (d *receptionistDashboard) stats() []model.StatCard {
	return []model.StatCard{
		{Title: "Pending Requests", Value: itoa(d.data.CountRequests(model.StatusPending)), Note: "Awaiting response"},
		{Title: "Confirmed Today", Value: itoa(d.data.CountRequests(model.StatusConfirmed)), Note: "Bookings confirmed"},
		{Title: "High Priority", Value: itoa(d.data.CountPriority(model.PriorityHigh)), Note: "Urgent requests"},
	}
}

func (d *receptionistDashboard) bookingsView(width int) string {
	inner := cardInner(width)
	var items []string
	row := 0
	for _, r := range d.data.Requests {
		variant := badgeOutline
		if r.Status == model.StatusConfirmed {
			variant = badgeDefault
		}
		lines := []string{
			spread(ItemTitleStyle.Render(r.Client)+" "+priorityBadge(r.Priority), badge(string(r.Status), variant), inner),
			ItemMetaStyle.Render("Contact: " + r.Contact),
			ItemMetaStyle.Render("Phone: " + r.Phone),
			ItemMetaStyle.Render("Email: " + r.Email),
			ItemMetaStyle.Render("Preferred Date: " + r.PreferredDate),
		}
		if r.Status == model.StatusPending {
			lines = append(lines, actionRow("Approve", d.selected(row)))
			row++
		}
		items = append(items, itemBlock(lines...))
	}
	return statCards(d.stats(), width) + "\n" + card("Recent Booking Requests", joinItems(items), width)
}

func (d *receptionistDashboard) messagesView(width int) string {
	inner := cardInner(width)
	var items []string
	for _, m := range d.data.Messages {
		variant := badgeOutline
		if m.Status == model.StatusUnread {
			variant = badgeDestructive
		}
		items = append(items, itemBlock(
			spread(ItemTitleStyle.Render(m.Client)+" "+badge(string(m.Status), variant), DimStyle.Render(m.Timestamp), inner),
			LabelStyle.Render(m.Subject),
			ItemMetaStyle.Width(inner).Render(m.Body),
			badge("Reply", badgeOutline),
		))
	}

	return card("Client Messages", joinItems(items), width) + "\n" +
		card("Send Message to Client", d.message.View(inner, d.message.Ready()), width)
}
