package appointment

import "time"

// Status represents the scheduling state of an appointment
type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// Valid reports whether the status is one of the known values.
func (s Status) Valid() bool {
	switch s {
	case StatusScheduled, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Appointment represents a scheduled visit for a client or project
type Appointment struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Title        string    `json:"title"`
	ClientID     int       `json:"client_id"`
	ProjectID    int       `json:"project_id,omitempty"`
	Type         string    `json:"type,omitempty"`
	Date         string    `json:"date"`
	Duration     int       `json:"duration,omitempty"`
	AssignedCrew string    `json:"assigned_crew,omitempty"`
	Location     string    `json:"location,omitempty"`
	Status       Status    `json:"status"`
	Notes        string    `json:"notes,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}
