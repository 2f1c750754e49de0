package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
)

// ToastVariant selects the toast colour
type ToastVariant int

const (
	ToastDefault ToastVariant = iota
	ToastDestructive
)

// Toast is a transient notification shown above the status bar
type Toast struct {
	ID          uuid.UUID
	Title       string
	Description string
	Variant     ToastVariant
}

// toastMsg asks the root model to display a toast
type toastMsg struct {
	toast Toast
}

// toastExpiredMsg is sent when a toast's display time is over
type toastExpiredMsg struct {
	id uuid.UUID
}

// showToast returns a command announcing a new toast
func showToast(title, description string) tea.Cmd {
	t := Toast{
		ID:          uuid.New(),
		Title:       title,
		Description: description,
	}
	return func() tea.Msg {
		return toastMsg{toast: t}
	}
}

// expireToastCmd fires toastExpiredMsg for id after d
func expireToastCmd(id uuid.UUID, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return toastExpiredMsg{id: id}
	})
}

// toastStack holds the visible toasts, newest last
type toastStack struct {
	items []Toast
	limit int
}

func newToastStack(limit int) toastStack {
	if limit < 1 {
		limit = 1
	}
	return toastStack{limit: limit}
}

// push adds t, dropping the oldest toasts beyond the limit
func (s *toastStack) push(t Toast) {
	s.items = append(s.items, t)
	if len(s.items) > s.limit {
		s.items = s.items[len(s.items)-s.limit:]
	}
}

// dismiss removes the toast with the given id and reports whether it was visible
func (s *toastStack) dismiss(id uuid.UUID) bool {
	for i, t := range s.items {
		if t.ID == id {
			s.items = append(s.items[:i:i], s.items[i+1:]...)
			return true
		}
	}
	return false
}

func (s *toastStack) clear() {
	s.items = nil
}

func (s *toastStack) visible() []Toast {
	return s.items
}

// render draws the visible toasts stacked vertically
func (s *toastStack) render(width int) string {
	if len(s.items) == 0 {
		return ""
	}
	var boxes []string
	for _, t := range s.items {
		style := ToastStyle
		if t.Variant == ToastDestructive {
			style = style.BorderForeground(ColorRed)
		}
		body := ToastTitleStyle.Render(t.Title)
		if t.Description != "" {
			body += "\n" + ItemMetaStyle.Render(t.Description)
		}
		boxes = append(boxes, style.Width(min(width-2, 60)).Render(body))
	}
	return lipgloss.JoinVertical(lipgloss.Right, boxes...)
}
