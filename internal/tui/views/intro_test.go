package views

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"evalio/internal/assessment"
	"evalio/internal/tui/msgs"
)

func TestIntroModel_StartPendingTask(t *testing.T) {
	m := NewIntroModel(assessment.Task{
		ID:     "task-001",
		Title:  "Annual Leadership Assessment",
		Status: assessment.TaskStatusPending,
	})

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected start command")
	}
	start, ok := cmd().(msgs.StartAssessmentMsg)
	if !ok {
		t.Fatalf("expected StartAssessmentMsg, got %T", cmd())
	}
	if start.TaskID != "task-001" {
		t.Errorf("got %s, want task-001", start.TaskID)
	}
}

func TestIntroModel_CompletedTaskCannotStart(t *testing.T) {
	m := NewIntroModel(assessment.Task{
		ID:     "task-003",
		Title:  "Q1 Performance Self Review",
		Status: assessment.TaskStatusCompleted,
	})

	if _, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter}); cmd != nil {
		t.Error("completed task should not be startable")
	}
	if !strings.Contains(m.View(), "already completed") {
		t.Error("view should explain why the task cannot start")
	}
	if strings.Contains(m.View(), "enter: start") {
		t.Error("start hint should be hidden for a completed task")
	}
}

func TestIntroModel_EscReturnsToDashboard(t *testing.T) {
	m := NewIntroModel(assessment.Task{ID: "task-001", Status: assessment.TaskStatusPending})

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("expected dashboard transition")
	}
	if _, ok := cmd().(msgs.GoToDashboardMsg); !ok {
		t.Fatalf("expected GoToDashboardMsg, got %T", cmd())
	}
}

func TestIntroModel_ViewShowsTaskDetails(t *testing.T) {
	m := NewIntroModel(assessment.Task{
		ID:              "task-001",
		Title:           "Annual Leadership Assessment",
		Description:     "Evaluate your leadership style.",
		DurationMinutes: 15,
		QuestionCount:   8,
		Status:          assessment.TaskStatusPending,
	})

	view := m.View()
	for _, want := range []string{"Annual Leadership Assessment", "Evaluate your leadership style.", "15 minutes", "Questions: 8"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}
