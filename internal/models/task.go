package models

import (
	"strings"
	"time"
)

// TimestampLayout is the fixed creation-time format stored in the first field
const TimestampLayout = "2006-01-02 15:04:05"

// Task represents a single to-do record
type Task struct {
	Timestamp   string
	Priority    Priority
	Status      Status
	Description string
}

// CreatedAt parses the stored timestamp. The zero time is returned when the
// field does not follow TimestampLayout.
func (t Task) CreatedAt() time.Time {
	ts, err := time.ParseInLocation(TimestampLayout, t.Timestamp, time.Local)
	if err != nil {
		return time.Time{}
	}
	return ts
}

// IsCompleted reports whether the task has been marked done
func (t Task) IsCompleted() bool {
	return t.Status == StatusCompleted
}

// Matches reports whether the description contains term, ignoring case
func (t Task) Matches(term string) bool {
	return strings.Contains(strings.ToLower(t.Description), strings.ToLower(term))
}

// IndexedTask pairs a task with its position in the store file.
// Positions are the only identifier a record has, so filtered views
// carry them along to address the record later.
type IndexedTask struct {
	Index int
	Task
}

// Statistics holds counts derived from the full task list
type Statistics struct {
	Total     int `json:"total"`
	Pending   int `json:"pending"`
	Completed int `json:"completed"`

	// Pending tasks broken down by priority
	HighPriority   int `json:"high_priority"`
	MediumPriority int `json:"medium_priority"`
	LowPriority    int `json:"low_priority"`
}

// CompletionRate returns the completed share as a percentage
func (s Statistics) CompletionRate() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Completed) / float64(s.Total) * 100
}
