package models

import (
	"errors"
	"testing"
	"time"
)

// ============================================================================
// Priority Tests
// ============================================================================

func TestParsePriority(t *testing.T) {
	tests := []struct {
		input   string
		want    Priority
		wantErr bool
	}{
		{"High", PriorityHigh, false},
		{"high", PriorityHigh, false},
		{" MEDIUM ", PriorityMedium, false},
		{"low", PriorityLow, false},
		{"critical", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		got, err := ParsePriority(tt.input)
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidPriority) {
				t.Errorf("ParsePriority(%q) error = %v, want ErrInvalidPriority", tt.input, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParsePriority(%q) unexpected error: %v", tt.input, err)
		}
		if got != tt.want {
			t.Errorf("ParsePriority(%q) = %s, want %s", tt.input, got, tt.want)
		}
	}
}

func TestPriority_Next(t *testing.T) {
	if PriorityHigh.Next() != PriorityMedium {
		t.Error("High should cycle to Medium")
	}
	if PriorityMedium.Next() != PriorityLow {
		t.Error("Medium should cycle to Low")
	}
	if PriorityLow.Next() != PriorityHigh {
		t.Error("Low should cycle to High")
	}
}

func TestPriority_Valid(t *testing.T) {
	for _, p := range Priorities {
		if !p.Valid() {
			t.Errorf("Expected %s to be valid", p)
		}
	}
	if Priority("Urgent").Valid() {
		t.Error("Expected Urgent to be invalid")
	}
}

// ============================================================================
// Status Tests
// ============================================================================

func TestParseStatus(t *testing.T) {
	tests := []struct {
		input string
		want  Status
	}{
		{"Pending", StatusPending},
		{"open", StatusPending},
		{"completed", StatusCompleted},
		{"DONE", StatusCompleted},
	}

	for _, tt := range tests {
		got, err := ParseStatus(tt.input)
		if err != nil {
			t.Errorf("ParseStatus(%q) unexpected error: %v", tt.input, err)
		}
		if got != tt.want {
			t.Errorf("ParseStatus(%q) = %s, want %s", tt.input, got, tt.want)
		}
	}

	if _, err := ParseStatus("archived"); !errors.Is(err, ErrInvalidStatus) {
		t.Errorf("Expected ErrInvalidStatus, got %v", err)
	}
}

func TestStatus_Toggle(t *testing.T) {
	if StatusPending.Toggle() != StatusCompleted {
		t.Error("Pending should toggle to Completed")
	}
	if StatusCompleted.Toggle() != StatusPending {
		t.Error("Completed should toggle to Pending")
	}
}

// ============================================================================
// Task Tests
// ============================================================================

func TestTask_CreatedAt(t *testing.T) {
	task := Task{Timestamp: "2025-03-14 09:26:53"}
	got := task.CreatedAt()
	want := time.Date(2025, 3, 14, 9, 26, 53, 0, time.Local)
	if !got.Equal(want) {
		t.Errorf("CreatedAt() = %v, want %v", got, want)
	}

	bad := Task{Timestamp: "yesterday"}
	if !bad.CreatedAt().IsZero() {
		t.Error("Expected zero time for malformed timestamp")
	}
}

func TestTask_Matches(t *testing.T) {
	task := Task{Description: "Pay Rent"}
	if !task.Matches("rent") {
		t.Error("Expected case-insensitive match on 'rent'")
	}
	if task.Matches("milk") {
		t.Error("Did not expect match on 'milk'")
	}
}

// ============================================================================
// Statistics Tests
// ============================================================================

func TestStatistics_CompletionRate(t *testing.T) {
	if (Statistics{}).CompletionRate() != 0 {
		t.Error("Expected 0% for empty statistics")
	}
	s := Statistics{Total: 4, Completed: 1}
	if s.CompletionRate() != 25 {
		t.Errorf("Expected 25%%, got %v", s.CompletionRate())
	}
}
