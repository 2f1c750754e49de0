package mockdata

import (
	"strings"
	"testing"

	"github.com/dialastocktaker/stocktaker-tui/internal/model"
)

func TestLoad(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	counts := []struct {
		name string
		got  int
		want int
	}{
		{"admin stats", len(c.Admin.Stats), 4},
		{"admin jobs", len(c.Admin.Jobs), 4},
		{"admin users", len(c.Admin.Users), 4},
		{"admin reports", len(c.Admin.Reports), 3},
		{"manager jobs", len(c.Manager.Jobs), 3},
		{"manager members", len(c.Manager.Members), 4},
		{"coordinator jobs", len(c.Coordinator.Jobs), 3},
		{"coordinator teams", len(c.Coordinator.Teams), 4},
		{"stocktaker tasks", len(c.Stocktaker.Tasks), 3},
		{"stocktaker issues", len(c.Stocktaker.RecentIssues), 2},
		{"scanner tasks", len(c.Scanner.Tasks), 3},
		{"groupleader members", len(c.GroupLeader.Members), 4},
		{"groupleader sections", len(c.GroupLeader.JobProgress.Sections), 4},
		{"receptionist requests", len(c.Receptionist.Requests), 3},
		{"receptionist messages", len(c.Receptionist.Messages), 2},
		{"client jobs", len(c.Client.Jobs), 3},
		{"client reports", len(c.Client.Reports), 3},
	}
	for _, tt := range counts {
		if tt.got != tt.want {
			t.Errorf("%s: got %d, want %d", tt.name, tt.got, tt.want)
		}
	}
}

func TestLoadUserNames(t *testing.T) {
	c := MustLoad()
	names := map[string]string{
		"admin":        c.Admin.UserName,
		"manager":      c.Manager.UserName,
		"coordinator":  c.Coordinator.UserName,
		"stocktaker":   c.Stocktaker.UserName,
		"scanner":      c.Scanner.UserName,
		"groupleader":  c.GroupLeader.UserName,
		"receptionist": c.Receptionist.UserName,
		"client":       c.Client.UserName,
	}
	want := map[string]string{
		"admin":        "Admin User",
		"manager":      "Manager User",
		"coordinator":  "Coordinator User",
		"stocktaker":   "John Stocktaker",
		"scanner":      "Scanner User",
		"groupleader":  "Group Leader",
		"receptionist": "Receptionist User",
		"client":       "Client User",
	}
	for role, name := range want {
		if names[role] != name {
			t.Errorf("%s user name = %q, want %q", role, names[role], name)
		}
	}
}

func TestDecodedFields(t *testing.T) {
	c := MustLoad()

	job := c.Coordinator.Jobs[0]
	if job.Date != "2024-01-15" || job.Time != "09:00" || job.Team != "Team Alpha" {
		t.Errorf("unexpected coordinator job: %+v", job)
	}
	if c.Coordinator.Jobs[1].HasTeam() {
		t.Errorf("JOB-002 should have no team")
	}

	req := c.Receptionist.Requests[0]
	if req.Phone != "+27 11 123 4567" || req.Priority != model.PriorityHigh {
		t.Errorf("unexpected booking request: %+v", req)
	}

	msg := c.Receptionist.Messages[0]
	if !strings.HasPrefix(msg.Subject, "Urgent:") || msg.Status != model.StatusUnread {
		t.Errorf("unexpected message: %+v", msg)
	}

	if c.Stocktaker.Tasks[0].Deadline != "2024-01-15 18:00" {
		t.Errorf("deadline = %q", c.Stocktaker.Tasks[0].Deadline)
	}
	if c.GroupLeader.JobProgress.Sections[3].Name != "Home & Garden" {
		t.Errorf("section name = %q", c.GroupLeader.JobProgress.Sections[3].Name)
	}
	if !strings.Contains(c.Admin.Reports[0].Description, TodayPlaceholder) {
		t.Errorf("admin monthly report should carry the date placeholder")
	}
}

func TestDerivedViews(t *testing.T) {
	c := MustLoad()

	if got := len(c.Coordinator.UnassignedJobs()); got != 1 {
		t.Errorf("UnassignedJobs() = %d, want 1", got)
	}
	if got := len(c.Coordinator.AvailableTeams()); got != 3 {
		t.Errorf("AvailableTeams() = %d, want 3", got)
	}
	if got := len(c.Stocktaker.InProgressTasks()); got != 1 {
		t.Errorf("InProgressTasks() = %d, want 1", got)
	}
	if got := len(c.Scanner.UploadableTasks()); got != 2 {
		t.Errorf("UploadableTasks() = %d, want 2", got)
	}
	if got := c.GroupLeader.CountMembers(model.StatusActive); got != 3 {
		t.Errorf("active members = %d, want 3", got)
	}
	if got := c.GroupLeader.CountMembers(model.StatusOnBreak); got != 1 {
		t.Errorf("members on break = %d, want 1", got)
	}
	if got := c.Receptionist.CountRequests(model.StatusPending); got != 2 {
		t.Errorf("pending requests = %d, want 2", got)
	}
	if got := c.Receptionist.CountPriority(model.PriorityHigh); got != 1 {
		t.Errorf("high priority requests = %d, want 1", got)
	}
	if got := c.Client.CountJobs(model.StatusScheduled); got != 1 {
		t.Errorf("scheduled client jobs = %d, want 1", got)
	}
}

func TestDecodeError(t *testing.T) {
	var out Admin
	err := decode("broken", []byte("stats: [unterminated"), &out)
	if err == nil {
		t.Fatal("expected error for malformed fixture")
	}
	if !strings.Contains(err.Error(), "decode fixture broken") {
		t.Errorf("error should name the fixture, got: %v", err)
	}
}
