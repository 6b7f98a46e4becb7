package project

import "errors"

var (
	// ErrProjectNotFound indicates the project doesn't exist.
	ErrProjectNotFound = errors.New("project not found")
	// ErrInvalidStatus indicates an unknown project status value.
	ErrInvalidStatus = errors.New("invalid project status")
)
