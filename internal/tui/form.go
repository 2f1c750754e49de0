package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
)

// form is a labelled free-text field with a submit button
type form struct {
	area        textarea.Model
	label       string
	submitLabel string
}

func newForm(label, placeholder, submitLabel string, height int) form {
	ta := textarea.New()
	ta.Placeholder = placeholder
	ta.ShowLineNumbers = false
	ta.CharLimit = 2000
	ta.SetHeight(height)
	ta.SetWidth(60)
	ta.Blur()

	return form{
		area:        ta,
		label:       label,
		submitLabel: submitLabel,
	}
}

// Focused reports whether the field owns the keyboard
func (f *form) Focused() bool {
	return f.area.Focused()
}

// Ready reports whether there is non-blank text to submit
func (f *form) Ready() bool {
	return strings.TrimSpace(f.area.Value()) != ""
}

func (f *form) Blur() {
	f.area.Blur()
}

func (f *form) Reset() {
	f.area.Reset()
	f.area.Blur()
}

// passThrough forwards non-key messages (cursor blink) to a focused field
func (f *form) passThrough(msg tea.Msg) tea.Cmd {
	if !f.area.Focused() {
		return nil
	}
	var cmd tea.Cmd
	f.area, cmd = f.area.Update(msg)
	return cmd
}

// handleKey routes a key for a form tab. ctrl+s submits when canSubmit
// holds, esc releases focus, enter takes focus. The bool result reports
// whether the key was consumed.
func (f *form) handleKey(msg tea.KeyMsg, keys KeyMap, canSubmit bool, onSubmit func() tea.Cmd) (tea.Cmd, bool) {
	switch {
	case key.Matches(msg, keys.Submit):
		if !canSubmit {
			return nil, true
		}
		cmd := onSubmit()
		f.Reset()
		return cmd, true

	case f.area.Focused():
		if key.Matches(msg, keys.Escape) {
			f.area.Blur()
			return nil, true
		}
		var cmd tea.Cmd
		f.area, cmd = f.area.Update(msg)
		return cmd, true

	case key.Matches(msg, keys.Enter):
		return f.area.Focus(), true
	}
	return nil, false
}

// View renders the label, field and submit button
func (f *form) View(width int, canSubmit bool) string {
	f.area.SetWidth(max(width-4, 20))

	box := InputStyle
	if f.area.Focused() {
		box = InputFocusedStyle
	}

	hint := DimStyle.Render("enter to type • esc to stop • ctrl+s to submit")
	return LabelStyle.Render(f.label) + "\n" +
		box.Render(f.area.View()) + "\n" +
		button(f.submitLabel, canSubmit) + "  " + hint
}
