package store

import (
	"github.com/thenoetrevino/lista/internal/models"
)

// Search returns tasks whose description contains term, ignoring case.
// Results keep file order and carry their store index.
func (s *Store) Search(term string) ([]models.IndexedTask, error) {
	tasks, err := s.ReadAll()
	if err != nil {
		return nil, err
	}
	return Select(tasks, "", term), nil
}

// Filter returns tasks with the given status, keeping file order
func (s *Store) Filter(status models.Status) ([]models.IndexedTask, error) {
	tasks, err := s.ReadAll()
	if err != nil {
		return nil, err
	}
	return Select(tasks, status, ""), nil
}

// Statistics returns counts over the full task list
func (s *Store) Statistics() (models.Statistics, error) {
	tasks, err := s.ReadAll()
	if err != nil {
		return models.Statistics{}, err
	}
	return Summarize(tasks), nil
}

// Select narrows tasks by status and search term. An empty status or term
// does not filter.
func Select(tasks []models.Task, status models.Status, term string) []models.IndexedTask {
	out := []models.IndexedTask{}
	for i, t := range tasks {
		if status != "" && t.Status != status {
			continue
		}
		if term != "" && !t.Matches(term) {
			continue
		}
		out = append(out, models.IndexedTask{Index: i, Task: t})
	}
	return out
}

// Summarize counts tasks by status, and pending tasks by priority
func Summarize(tasks []models.Task) models.Statistics {
	var stats models.Statistics
	stats.Total = len(tasks)
	for _, t := range tasks {
		switch t.Status {
		case models.StatusCompleted:
			stats.Completed++
		case models.StatusPending:
			stats.Pending++
			switch t.Priority {
			case models.PriorityHigh:
				stats.HighPriority++
			case models.PriorityMedium:
				stats.MediumPriority++
			case models.PriorityLow:
				stats.LowPriority++
			}
		}
	}
	return stats
}
