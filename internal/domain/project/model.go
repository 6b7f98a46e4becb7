package project

import "time"

// Status represents the delivery state of a project
type Status string

const (
	StatusPlanning   Status = "planning"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
	StatusOnHold     Status = "on-hold"
)

// Valid reports whether the status is one of the known values.
func (s Status) Valid() bool {
	switch s {
	case StatusPlanning, StatusInProgress, StatusCompleted, StatusOnHold:
		return true
	}
	return false
}

// Project represents a client engagement with a budget and schedule
type Project struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	ClientID    int       `json:"client_id"`
	Budget      float64   `json:"budget"`
	ActualCost  float64   `json:"actual_cost"`
	Progress    float64   `json:"progress"`
	StartDate   string    `json:"start_date,omitempty"`
	EndDate     string    `json:"end_date,omitempty"`
	Status      Status    `json:"status"`
	Notes       string    `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
