package session

import (
	"errors"
	"testing"

	"evalio/internal/assessment"
)

func testQuestions() []assessment.Question {
	return []assessment.Question{
		{ID: "q1", Text: "I am a talkative person", Type: assessment.QuestionTypeLikert},
		{ID: "q2", Text: "I stay calm under pressure", Type: assessment.QuestionTypeLikert},
	}
}

func beginTestSession() *Session {
	task := assessment.Task{ID: "task-001", Title: "Leadership Assessment", Status: assessment.TaskStatusPending}
	return Begin(task, testQuestions())
}

func TestBeginStartsInProgress(t *testing.T) {
	s := beginTestSession()

	if s.Status() != StatusInProgress {
		t.Errorf("got %s, want in_progress", s.Status())
	}
	if s.ID == "" {
		t.Error("session id not assigned")
	}
	if answered, total := s.Progress(); answered != 0 || total != 2 {
		t.Errorf("progress: got %d/%d, want 0/2", answered, total)
	}
}

func TestSelectAndComplete(t *testing.T) {
	s := beginTestSession()

	if s.Complete() {
		t.Error("fresh session should not be complete")
	}

	if err := s.Select("q1", 2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.Select("q1", 5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v, _ := s.Answered("q1"); v != 5 {
		t.Errorf("re-selection should overwrite: got %d, want 5", v)
	}

	if err := s.Select("q2", 3); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !s.Complete() {
		t.Error("all questions answered, session should be complete")
	}
}

func TestFinishReturnsSnapshot(t *testing.T) {
	s := beginTestSession()
	s.Select("q1", 5)
	s.Select("q2", 3)

	snapshot, err := s.Finish()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if snapshot["q1"] != 5 || snapshot["q2"] != 3 {
		t.Errorf("unexpected snapshot: %v", snapshot)
	}
	if s.Status() != StatusCompleted {
		t.Errorf("got %s, want completed", s.Status())
	}

	if _, err := s.Finish(); !errors.Is(err, ErrNotActive) {
		t.Errorf("double finish: expected ErrNotActive, got %v", err)
	}
}

func TestAbandonDiscardsAnswers(t *testing.T) {
	s := beginTestSession()
	s.Select("q1", 4)

	s.Abandon()

	if s.Status() != StatusCancelled {
		t.Errorf("got %s, want cancelled", s.Status())
	}
	if _, ok := s.Answered("q1"); ok {
		t.Error("partial answers must be discarded on abandon")
	}
	if err := s.Select("q2", 1); !errors.Is(err, ErrNotActive) {
		t.Errorf("selecting after abandon: expected ErrNotActive, got %v", err)
	}
}
