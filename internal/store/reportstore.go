package store

import (
	"sync"

	"evalio/internal/assessment"
)

// ReportStore is the append-only archive of generated reports.
type ReportStore struct {
	mu      sync.RWMutex
	reports []assessment.Report
}

// NewReportStore creates a store, optionally seeded with pre-existing reports.
func NewReportStore(seed []assessment.Report) *ReportStore {
	s := &ReportStore{}
	s.reports = append(s.reports, seed...)
	return s
}

// Add appends a report. Reports are immutable once added.
func (s *ReportStore) Add(r assessment.Report) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reports = append(s.reports, r)
}

// List returns a copy of all reports in insertion order.
func (s *ReportStore) List() []assessment.Report {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]assessment.Report, len(s.reports))
	copy(out, s.reports)
	return out
}

// ByTask returns all reports generated for the given task id.
func (s *ReportStore) ByTask(taskID string) []assessment.Report {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []assessment.Report
	for _, r := range s.reports {
		if r.TaskID == taskID {
			out = append(out, r)
		}
	}
	return out
}
