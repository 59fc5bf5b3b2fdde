// Package store holds the shared, process-wide state of one login session:
// the task set and the append-only report archive. All mutation goes through
// the narrow contracts here; callers never write Task fields directly.
package store

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"evalio/internal/assessment"
)

var (
	// ErrNotFound is returned for unknown task ids.
	ErrNotFound = errors.New("task not found")
	// ErrInvalidTransition is returned when a patch would move a status backward.
	ErrInvalidTransition = errors.New("invalid status transition")
)

// Patch describes a partial task update. Nil fields are left untouched.
type Patch struct {
	Status       *assessment.TaskStatus
	ReportStatus *assessment.ReportStatus
	CompletedAt  *time.Time
}

// TaskStore is the single source of truth for task state. It is initialized
// at login with the user's assigned tasks and dropped at logout.
type TaskStore struct {
	mu    sync.RWMutex
	tasks map[string]assessment.Task
	order []string
}

// NewTaskStore creates a store seeded with the given tasks. List order
// follows seed order.
func NewTaskStore(seed []assessment.Task) *TaskStore {
	s := &TaskStore{
		tasks: make(map[string]assessment.Task, len(seed)),
		order: make([]string, 0, len(seed)),
	}
	for _, t := range seed {
		s.tasks[t.ID] = t
		s.order = append(s.order, t.ID)
	}
	return s
}

// List returns snapshot copies of all tasks in seed order.
func (s *TaskStore) List() []assessment.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]assessment.Task, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.tasks[id])
	}
	return out
}

// Get returns a snapshot copy of the task with the given id.
func (s *TaskStore) Get(id string) (assessment.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	task, ok := s.tasks[id]
	if !ok {
		return assessment.Task{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return task, nil
}

// Update applies a patch to the task with the given id, permitting only
// monotonic status changes. Writing the current state again is a no-op, so a
// process that resolves late can re-apply its result harmlessly. The updated
// task is visible to all readers once Update returns.
func (s *TaskStore) Update(id string, patch Patch) (assessment.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	task, ok := s.tasks[id]
	if !ok {
		return assessment.Task{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	if patch.Status != nil && !task.Status.CanTransitionTo(*patch.Status) {
		return assessment.Task{}, fmt.Errorf("%w: status %s -> %s", ErrInvalidTransition, task.Status, *patch.Status)
	}
	if patch.ReportStatus != nil && !task.ReportStatus.CanTransitionTo(*patch.ReportStatus) {
		return assessment.Task{}, fmt.Errorf("%w: report status %s -> %s", ErrInvalidTransition, task.ReportStatus, *patch.ReportStatus)
	}

	if patch.Status != nil {
		task.Status = *patch.Status
	}
	if patch.ReportStatus != nil {
		task.ReportStatus = *patch.ReportStatus
	}
	if patch.CompletedAt != nil && task.CompletedAt == nil {
		completedAt := *patch.CompletedAt
		task.CompletedAt = &completedAt
	}

	s.tasks[id] = task
	return task, nil
}

// StatusOf is a convenience wrapper for callers that only need the statuses.
func (s *TaskStore) StatusOf(id string) (assessment.TaskStatus, assessment.ReportStatus, error) {
	task, err := s.Get(id)
	if err != nil {
		return "", "", err
	}
	return task.Status, task.ReportStatus, nil
}
