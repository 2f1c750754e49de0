package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dialastocktaker/stocktaker-tui/internal/mockdata"
	"github.com/dialastocktaker/stocktaker-tui/internal/model"
)

type scannerDashboard struct {
	tabSet
	data mockdata.Scanner
}

func newScannerDashboard(data mockdata.Scanner) *scannerDashboard {
	return &scannerDashboard{
		tabSet: newTabSet(model.RoleScanner, data.UserName,
			Tab{ID: "scan", Label: "Scan Items"},
			Tab{ID: "upload", Label: "Upload Data"},
			Tab{ID: "status", Label: "Task Status"},
		),
		data: data,
	}
}

func (d *scannerDashboard) Capturing() bool { return false }

func (d *scannerDashboard) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || d.activeID() != "upload" {
		return nil
	}

	ready := d.data.UploadableTasks()
	if d.moveCursor(keyMsg, len(ready)) {
		return nil
	}
	if key.Matches(keyMsg, d.keys.Enter) && d.cursor < len(ready) {
		return showToast("Data Uploaded", "Scan data for "+ready[d.cursor].ID+" has been uploaded successfully.")
	}
	return nil
}

func (d *scannerDashboard) View(width int) string {
	switch d.activeID() {
	case "upload":
		return d.uploadView(width)
	case "status":
		return d.statusView(width)
	default:
		return d.scanView(width)
	}
}

func scannedLabel(t model.ScanTask) string {
	return fmt.Sprintf("%d/%d", t.Scanned, t.Total)
}

func (d *scannerDashboard) scanView(width int) string {
	inner := cardInner(width)
	var items []string
	for _, t := range d.data.Tasks {
		lines := []string{
			spread(ItemTitleStyle.Render(t.ID)+" "+statusBadge(t.Status), ItemMetaStyle.Render(scannedLabel(t)), inner),
			ItemMetaStyle.Render(t.Location),
			progressBar(t.Percent(), inner),
		}
		if t.Status == model.StatusInProgress {
			lines = append(lines, badge("▣ Continue Scanning", badgeOutline))
		}
		items = append(items, itemBlock(lines...))
	}
	return statCards(d.data.Stats, width) + "\n" + card("Active Scanning Tasks", joinItems(items), width)
}

func (d *scannerDashboard) uploadView(width int) string {
	inner := cardInner(width)
	var items []string
	for i, t := range d.data.UploadableTasks() {
		items = append(items, itemBlock(
			spread(ItemTitleStyle.Render(t.ID+" - "+t.Location), actionRow("⇪ Upload", d.selected(i)), inner),
			ItemMetaStyle.Render(itoa(t.Scanned)+" items scanned"),
		))
	}
	if len(items) == 0 {
		items = append(items, DimStyle.Render("No scan data ready to upload"))
	}
	return card("Upload Scan Data", joinItems(items), width)
}

func (d *scannerDashboard) statusView(width int) string {
	inner := cardInner(width)
	var items []string
	for _, t := range d.data.Tasks {
		items = append(items, itemBlock(
			spread(ItemTitleStyle.Render(t.Status.Icon()+" "+t.ID), statusBadge(t.Status), inner),
			ItemMetaStyle.Render(t.Location+" • "+scannedLabel(t)+" items"),
		))
	}
	return card("Task Status Overview", joinItems(items), width)
}
