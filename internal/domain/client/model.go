package client

import "time"

// Status represents the business relationship state of a client
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// Valid reports whether the status is one of the known values.
func (s Status) Valid() bool {
	return s == StatusActive || s == StatusInactive
}

// Client represents a customer account
type Client struct {
	ID            int       `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone,omitempty"`
	Address       string    `json:"address,omitempty"`
	PropertySize  string    `json:"property_size,omitempty"`
	Notes         string    `json:"notes,omitempty"`
	LastContact   string    `json:"last_contact,omitempty"`
	Status        Status    `json:"status"`
	ProjectsCount int       `json:"projects_count"`
	TotalRevenue  float64   `json:"total_revenue"`
	CreatedAt     time.Time `json:"created_at"`
}
