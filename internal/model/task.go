package model

// Status is the display label shared by jobs, tasks, people and requests
type Status string

const (
	StatusInProgress Status = "In Progress"
	StatusPending    Status = "Pending"
	StatusCompleted  Status = "Completed"
	StatusScheduled  Status = "Scheduled"
	StatusConfirmed  Status = "Confirmed"
	StatusActive     Status = "Active"
	StatusBusy       Status = "Busy"
	StatusOnBreak    Status = "On Break"
	StatusAvailable  Status = "Available"
	StatusUnread     Status = "Unread"
	StatusRead       Status = "Read"
	StatusResolved   Status = "Resolved"
	StatusSubmitted  Status = "Submitted"
)

// Icon returns the glyph for the status
func (s Status) Icon() string {
	switch s {
	case StatusPending, StatusScheduled, StatusUnread:
		return "○"
	case StatusInProgress, StatusActive, StatusBusy:
		return "●"
	case StatusCompleted, StatusConfirmed, StatusResolved, StatusSubmitted, StatusRead:
		return "✓"
	case StatusOnBreak:
		return "◐"
	case StatusAvailable:
		return "◇"
	default:
		return "○"
	}
}

// Priority ranks tasks and booking requests
type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

// Task is a stocktaker's counting assignment
type Task struct {
	ID       string   `yaml:"id"`
	Title    string   `yaml:"title"`
	Location string   `yaml:"location"`
	Status   Status   `yaml:"status"`
	Progress int      `yaml:"progress"`
	Deadline string   `yaml:"deadline"`
	Priority Priority `yaml:"priority"`
}

// ScanTask is a scanner's barcode run over one location
type ScanTask struct {
	ID       string `yaml:"id"`
	Location string `yaml:"location"`
	Scanned  int    `yaml:"scanned"`
	Total    int    `yaml:"total"`
	Status   Status `yaml:"status"`
}

// Percent returns scanned/total as a 0-100 value
func (t ScanTask) Percent() float64 {
	if t.Total <= 0 {
		return 0
	}
	return float64(t.Scanned) / float64(t.Total) * 100
}

// Uploadable reports whether there is scan data to upload
func (t ScanTask) Uploadable() bool {
	return t.Status == StatusCompleted || t.Scanned > 0
}
