package proposal

import "errors"

var (
	// ErrProposalNotFound indicates the proposal doesn't exist.
	ErrProposalNotFound = errors.New("proposal not found")
	// ErrInvalidStatus indicates an unknown proposal status value.
	ErrInvalidStatus = errors.New("invalid proposal status")
	// ErrInvalidToken indicates a signing token that resolves to no proposal.
	ErrInvalidToken = errors.New("invalid signing token")
)
