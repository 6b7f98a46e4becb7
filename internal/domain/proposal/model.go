package proposal

import (
	"time"

	"github.com/rpggio/fieldbook/internal/domain/signing"
)

// Status represents the review state of a proposal
type Status string

const (
	StatusPending  Status = "pending"
	StatusAccepted Status = "accepted"
	StatusRejected Status = "rejected"
)

// Valid reports whether the status is one of the known values.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusAccepted, StatusRejected:
		return true
	}
	return false
}

// Proposal represents an offer sent to a client for acceptance. The signing
// fields exist together or not at all: a link is never stored without its
// token.
type Proposal struct {
	ID            int            `json:"id"`
	Name          string         `json:"name"`
	Title         string         `json:"title"`
	Description   string         `json:"description,omitempty"`
	ClientID      int            `json:"client_id"`
	Subtotal      float64        `json:"subtotal"`
	Tax           float64        `json:"tax"`
	Total         float64        `json:"total"`
	Status        Status         `json:"status"`
	ValidUntil    string         `json:"valid_until,omitempty"`
	AcceptedDate  *string        `json:"accepted_date"`
	Notes         string         `json:"notes,omitempty"`
	SigningToken  *string        `json:"signing_token,omitempty"`
	SigningLink   *string        `json:"signing_link,omitempty"`
	SigningStatus signing.Status `json:"signing_status"`
	LinkCreatedAt *time.Time     `json:"link_created_at,omitempty"`
	SignedAt      *time.Time     `json:"signed_at,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
}
