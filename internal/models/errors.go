package models

import "errors"

// Domain-specific validation errors
var (
	// ErrInvalidPriority indicates a priority outside High, Medium, Low
	ErrInvalidPriority = errors.New("invalid priority")

	// ErrInvalidStatus indicates a status outside Pending, Completed
	ErrInvalidStatus = errors.New("invalid status")
)
