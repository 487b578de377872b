package models

import (
	"fmt"
	"strings"
)

// Priority represents a task priority level
type Priority string

// Priority levels, highest first
const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

// DefaultPriority is assigned when none is given
const DefaultPriority = PriorityMedium

// Priorities lists all priority levels in display order
var Priorities = []Priority{PriorityHigh, PriorityMedium, PriorityLow}

// ParsePriority maps a case-insensitive name to a Priority
func ParsePriority(s string) (Priority, error) {
	for _, p := range Priorities {
		if strings.EqualFold(strings.TrimSpace(s), string(p)) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w '%s' (must be: high, medium, low)", ErrInvalidPriority, s)
}

// Valid reports whether p is one of the known levels
func (p Priority) Valid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// Next cycles High -> Medium -> Low -> High
func (p Priority) Next() Priority {
	switch p {
	case PriorityHigh:
		return PriorityMedium
	case PriorityMedium:
		return PriorityLow
	default:
		return PriorityHigh
	}
}

// Status represents the completion state of a task
type Status string

const (
	StatusPending   Status = "Pending"
	StatusCompleted Status = "Completed"
)

// ParseStatus maps a case-insensitive name to a Status.
// "done" and "open" are accepted as shorthands.
func ParseStatus(s string) (Status, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pending", "open":
		return StatusPending, nil
	case "completed", "done":
		return StatusCompleted, nil
	}
	return "", fmt.Errorf("%w '%s' (must be: pending, completed)", ErrInvalidStatus, s)
}

// Valid reports whether s is one of the known states
func (s Status) Valid() bool {
	return s == StatusPending || s == StatusCompleted
}

// Toggle flips Pending and Completed
func (s Status) Toggle() Status {
	if s == StatusCompleted {
		return StatusPending
	}
	return StatusCompleted
}
