// Package mockdata holds the literal records every dashboard renders. The
// records are embedded YAML fixtures decoded once at startup and never
// modified afterwards.
package mockdata

import (
	"embed"
	"fmt"

	"github.com/dialastocktaker/stocktaker-tui/internal/model"
	"gopkg.in/yaml.v3"
)

//go:embed fixtures/*.yaml
var fixtures embed.FS

// TodayPlaceholder is substituted with the current date when a report
// description is rendered.
const TodayPlaceholder = "{{today}}"

// Admin is the admin dashboard data
type Admin struct {
	UserName string           `yaml:"user_name"`
	Stats    []model.StatCard `yaml:"stats"`
	Jobs     []model.Job      `yaml:"jobs"`
	Users    []model.User     `yaml:"users"`
	Reports  []model.Report   `yaml:"reports"`
}

// Manager is the manager dashboard data
type Manager struct {
	UserName string             `yaml:"user_name"`
	Stats    []model.StatCard   `yaml:"stats"`
	Jobs     []model.Job        `yaml:"jobs"`
	Members  []model.TeamMember `yaml:"members"`
	Reports  []model.Report     `yaml:"reports"`
}

// Coordinator is the coordinator dashboard data
type Coordinator struct {
	UserName string       `yaml:"user_name"`
	Jobs     []model.Job  `yaml:"jobs"`
	Teams    []model.Team `yaml:"teams"`
}

// UnassignedJobs returns jobs with no team yet
func (c Coordinator) UnassignedJobs() []model.Job {
	var out []model.Job
	for _, j := range c.Jobs {
		if !j.HasTeam() {
			out = append(out, j)
		}
	}
	return out
}

// AvailableTeams returns teams free to take a job
func (c Coordinator) AvailableTeams() []model.Team {
	var out []model.Team
	for _, t := range c.Teams {
		if t.Status == model.StatusAvailable {
			out = append(out, t)
		}
	}
	return out
}

// Stocktaker is the stocktaker dashboard data
type Stocktaker struct {
	UserName     string               `yaml:"user_name"`
	Stats        []model.StatCard     `yaml:"stats"`
	Tasks        []model.Task         `yaml:"tasks"`
	RecentIssues []model.RecentReport `yaml:"recent_issues"`
}

// InProgressTasks returns the tasks that can be marked complete
func (s Stocktaker) InProgressTasks() []model.Task {
	var out []model.Task
	for _, t := range s.Tasks {
		if t.Status == model.StatusInProgress {
			out = append(out, t)
		}
	}
	return out
}

// Scanner is the scanner dashboard data
type Scanner struct {
	UserName string           `yaml:"user_name"`
	Stats    []model.StatCard `yaml:"stats"`
	Tasks    []model.ScanTask `yaml:"tasks"`
}

// UploadableTasks returns tasks with scan data ready to upload
func (s Scanner) UploadableTasks() []model.ScanTask {
	var out []model.ScanTask
	for _, t := range s.Tasks {
		if t.Uploadable() {
			out = append(out, t)
		}
	}
	return out
}

// GroupLeader is the group leader dashboard data
type GroupLeader struct {
	UserName      string               `yaml:"user_name"`
	Members       []model.TeamMember   `yaml:"members"`
	JobProgress   model.JobProgress    `yaml:"job_progress"`
	RecentReports []model.RecentReport `yaml:"recent_reports"`
}

// CountMembers returns how many members have the given status
func (g GroupLeader) CountMembers(status model.Status) int {
	n := 0
	for _, m := range g.Members {
		if m.Status == status {
			n++
		}
	}
	return n
}

// Receptionist is the receptionist dashboard data
type Receptionist struct {
	UserName string                 `yaml:"user_name"`
	Requests []model.BookingRequest `yaml:"requests"`
	Messages []model.Message        `yaml:"messages"`
}

// CountRequests returns how many requests have the given status
func (r Receptionist) CountRequests(status model.Status) int {
	n := 0
	for _, req := range r.Requests {
		if req.Status == status {
			n++
		}
	}
	return n
}

// CountPriority returns how many requests have the given priority
func (r Receptionist) CountPriority(p model.Priority) int {
	n := 0
	for _, req := range r.Requests {
		if req.Priority == p {
			n++
		}
	}
	return n
}

// PendingRequests returns requests awaiting approval
func (r Receptionist) PendingRequests() []model.BookingRequest {
	var out []model.BookingRequest
	for _, req := range r.Requests {
		if req.Status == model.StatusPending {
			out = append(out, req)
		}
	}
	return out
}

// Client is the client dashboard data
type Client struct {
	UserName         string               `yaml:"user_name"`
	Jobs             []model.Job          `yaml:"jobs"`
	Reports          []model.Report       `yaml:"reports"`
	PreviousFeedback []model.RecentReport `yaml:"previous_feedback"`
}

// CountJobs returns how many jobs have the given status
func (c Client) CountJobs(status model.Status) int {
	n := 0
	for _, j := range c.Jobs {
		if j.Status == status {
			n++
		}
	}
	return n
}

// Catalog collects the mock data of every dashboard
type Catalog struct {
	Admin        Admin
	Manager      Manager
	Coordinator  Coordinator
	Stocktaker   Stocktaker
	Scanner      Scanner
	GroupLeader  GroupLeader
	Receptionist Receptionist
	Client       Client
}

// Load decodes every embedded fixture
func Load() (*Catalog, error) {
	var c Catalog
	targets := []struct {
		name string
		out  interface{}
	}{
		{"admin", &c.Admin},
		{"manager", &c.Manager},
		{"coordinator", &c.Coordinator},
		{"stocktaker", &c.Stocktaker},
		{"scanner", &c.Scanner},
		{"groupleader", &c.GroupLeader},
		{"receptionist", &c.Receptionist},
		{"client", &c.Client},
	}

	for _, t := range targets {
		data, err := fixtures.ReadFile("fixtures/" + t.name + ".yaml")
		if err != nil {
			return nil, fmt.Errorf("read fixture %s: %w", t.name, err)
		}
		if err := decode(t.name, data, t.out); err != nil {
			return nil, err
		}
	}

	return &c, nil
}

// MustLoad is Load for tests and tools; it panics on error
func MustLoad() *Catalog {
	c, err := Load()
	if err != nil {
		panic(err)
	}
	return c
}

func decode(name string, data []byte, out interface{}) error {
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode fixture %s: %w", name, err)
	}
	return nil
}
