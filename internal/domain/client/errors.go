package client

import "errors"

var (
	// ErrClientNotFound indicates the client doesn't exist.
	ErrClientNotFound = errors.New("client not found")
	// ErrInvalidStatus indicates an unknown client status value.
	ErrInvalidStatus = errors.New("invalid client status")
)
