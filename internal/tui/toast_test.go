package tui

import (
	"testing"

	"github.com/google/uuid"
)

func TestToastStackLimit(t *testing.T) {
	s := newToastStack(1)
	first := Toast{ID: uuid.New(), Title: "first"}
	second := Toast{ID: uuid.New(), Title: "second"}

	s.push(first)
	s.push(second)

	visible := s.visible()
	if len(visible) != 1 {
		t.Fatalf("expected 1 visible toast, got %d", len(visible))
	}
	if visible[0].Title != "second" {
		t.Errorf("expected newest toast to win, got %q", visible[0].Title)
	}

	// Expiry of the replaced toast must not hide the newer one
	if s.dismiss(first.ID) {
		t.Error("dismissing a replaced toast should report false")
	}
	if len(s.visible()) != 1 {
		t.Error("newer toast was removed by an older expiry")
	}

	if !s.dismiss(second.ID) {
		t.Error("dismissing the visible toast should report true")
	}
	if len(s.visible()) != 0 {
		t.Error("expected no visible toasts")
	}
}

func TestToastStackMinimumLimit(t *testing.T) {
	s := newToastStack(0)
	s.push(Toast{ID: uuid.New()})
	if len(s.visible()) != 1 {
		t.Error("a zero limit should still show one toast")
	}
}

func TestShowToast(t *testing.T) {
	toast := toastFrom(t, showToast("Message Sent", "Your message has been sent to the client."))
	if toast.ID == uuid.Nil {
		t.Error("expected a generated id")
	}
	if toast.Title != "Message Sent" || toast.Description != "Your message has been sent to the client." {
		t.Errorf("unexpected toast %+v", toast)
	}

	other := toastFrom(t, showToast("Message Sent", ""))
	if other.ID == toast.ID {
		t.Error("each toast needs its own id")
	}
}

func TestToastRender(t *testing.T) {
	s := newToastStack(1)
	if s.render(80) != "" {
		t.Error("empty stack should render nothing")
	}
	s.push(Toast{ID: uuid.New(), Title: "Data Uploaded", Description: "Scan data for TSK-001 has been uploaded successfully."})
	view := s.render(120)
	if !contains(view, "Data Uploaded") || !contains(view, "TSK-001") {
		t.Errorf("toast view missing content: %q", view)
	}
}
