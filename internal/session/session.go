// Package session tracks one active assessment run: the task being taken,
// its question set, and the answers collected so far. A session is owned by
// exactly one user flow and never survives it.
package session

import (
	"errors"
	"time"

	"evalio/internal/answers"
	"evalio/internal/assessment"
	"evalio/internal/util"
)

// Status represents the session lifecycle.
type Status string

const (
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

// ErrNotActive is returned when finishing or answering a session that has
// already ended.
var ErrNotActive = errors.New("session is not active")

// Session is the exclusive owner of the in-progress answer set.
type Session struct {
	ID        string
	Task      assessment.Task
	Questions []assessment.Question
	StartedAt time.Time

	status    Status
	collector *answers.Collector
}

// Begin starts a session for the given task and question set.
func Begin(task assessment.Task, questions []assessment.Question) *Session {
	id, err := util.GenerateShortID()
	if err != nil {
		// crypto/rand failing is not recoverable in any useful way here; fall
		// back to a timestamp id so the session can still run.
		id = time.Now().Format("150405.000")
	}

	return &Session{
		ID:        id,
		Task:      task,
		Questions: questions,
		StartedAt: time.Now(),
		status:    StatusInProgress,
		collector: answers.NewCollector(),
	}
}

// Status returns the current lifecycle state.
func (s *Session) Status() Status {
	return s.status
}

// Select records an answer for a question. Selections after the session has
// ended are dropped with ErrNotActive.
func (s *Session) Select(questionID string, value int) error {
	if s.status != StatusInProgress {
		return ErrNotActive
	}
	s.collector.Select(questionID, value)
	return nil
}

// Answered returns the recorded value for a question, if any.
func (s *Session) Answered(questionID string) (int, bool) {
	return s.collector.Value(questionID)
}

// Complete reports whether every question in the session has an answer.
func (s *Session) Complete() bool {
	required := make([]string, len(s.Questions))
	for i, q := range s.Questions {
		required[i] = q.ID
	}
	return s.collector.IsComplete(required)
}

// Progress returns answered and total question counts for display.
func (s *Session) Progress() (answered, total int) {
	return s.collector.Len(), len(s.Questions)
}

// Finish ends the session and hands back the answers for submission.
func (s *Session) Finish() (assessment.AnswerSet, error) {
	if s.status != StatusInProgress {
		return nil, ErrNotActive
	}
	s.status = StatusCompleted
	snapshot := s.collector.Snapshot()
	s.collector = answers.NewCollector()
	return snapshot, nil
}

// Abandon ends the session and discards all partial answers. Navigating away
// mid-assessment does not preserve progress.
func (s *Session) Abandon() {
	if s.status != StatusInProgress {
		return
	}
	s.status = StatusCancelled
	s.collector = answers.NewCollector()
}
