package model

// StatCard is a headline number on a dashboard overview
type StatCard struct {
	Title string `yaml:"title"`
	Value string `yaml:"value"`
	Note  string `yaml:"note"`
}

// Job is a stocktaking engagement at a client site. Not every dashboard
// fills every field.
type Job struct {
	ID                  string `yaml:"id"`
	Client              string `yaml:"client,omitempty"`
	Location            string `yaml:"location,omitempty"`
	Date                string `yaml:"date,omitempty"`
	Time                string `yaml:"time,omitempty"`
	Team                string `yaml:"team,omitempty"`
	Status              Status `yaml:"status"`
	Progress            int    `yaml:"progress"`
	EstimatedCompletion string `yaml:"estimated_completion,omitempty"`
}

// HasTeam reports whether a team is assigned
func (j Job) HasTeam() bool {
	return j.Team != ""
}

// User is an account listed in admin user management
type User struct {
	ID     string `yaml:"id"`
	Name   string `yaml:"name"`
	Role   string `yaml:"role"`
	Status Status `yaml:"status"`
	Jobs   int    `yaml:"jobs"`
}

// TeamMember is a worker as seen by a manager or group leader
type TeamMember struct {
	Name        string `yaml:"name"`
	Role        string `yaml:"role"`
	Status      Status `yaml:"status"`
	CurrentJob  string `yaml:"current_job,omitempty"`
	CurrentTask string `yaml:"current_task,omitempty"`
	Progress    int    `yaml:"progress,omitempty"`
}

// Team is a crew that can be assigned to jobs
type Team struct {
	Name    string `yaml:"name"`
	Members int    `yaml:"members"`
	Leader  string `yaml:"leader"`
	Status  Status `yaml:"status"`
}

// Report is a downloadable or viewable document
type Report struct {
	ID          string `yaml:"id,omitempty"`
	JobID       string `yaml:"job_id,omitempty"`
	Title       string `yaml:"title"`
	Description string `yaml:"description,omitempty"`
	Date        string `yaml:"date,omitempty"`
	Type        string `yaml:"type,omitempty"`
	Size        string `yaml:"size,omitempty"`
	Action      string `yaml:"action,omitempty"`
}

// RecentReport is a previously submitted issue, report or feedback entry
type RecentReport struct {
	Title     string `yaml:"title"`
	Status    Status `yaml:"status,omitempty"`
	Submitted string `yaml:"submitted"`
	Rating    int    `yaml:"rating,omitempty"`
}

// Section is one area of a job being counted
type Section struct {
	Name     string `yaml:"name"`
	Progress int    `yaml:"progress"`
	Assigned string `yaml:"assigned"`
}

// JobProgress is the group leader's view of a single job
type JobProgress struct {
	JobID           string    `yaml:"job_id"`
	Client          string    `yaml:"client"`
	Location        string    `yaml:"location"`
	OverallProgress int       `yaml:"overall_progress"`
	Sections        []Section `yaml:"sections"`
}

// BookingRequest is an inbound client request handled by reception
type BookingRequest struct {
	ID            string   `yaml:"id"`
	Client        string   `yaml:"client"`
	Contact       string   `yaml:"contact"`
	Phone         string   `yaml:"phone"`
	Email         string   `yaml:"email"`
	RequestDate   string   `yaml:"request_date"`
	PreferredDate string   `yaml:"preferred_date"`
	Status        Status   `yaml:"status"`
	Priority      Priority `yaml:"priority"`
}

// Message is a client message in the receptionist inbox
type Message struct {
	ID        string `yaml:"id"`
	Client    string `yaml:"client"`
	Subject   string `yaml:"subject"`
	Body      string `yaml:"message"`
	Timestamp string `yaml:"timestamp"`
	Status    Status `yaml:"status"`
}
