package assessment

import "testing"

func TestTaskStatusCanTransitionTo(t *testing.T) {
	tests := []struct {
		name string
		from TaskStatus
		to   TaskStatus
		want bool
	}{
		{"pending to in_progress", TaskStatusPending, TaskStatusInProgress, true},
		{"pending to completed", TaskStatusPending, TaskStatusCompleted, true},
		{"in_progress to completed", TaskStatusInProgress, TaskStatusCompleted, true},
		{"completed to completed", TaskStatusCompleted, TaskStatusCompleted, true},
		{"completed to pending", TaskStatusCompleted, TaskStatusPending, false},
		{"completed to in_progress", TaskStatusCompleted, TaskStatusInProgress, false},
		{"in_progress to pending", TaskStatusInProgress, TaskStatusPending, false},
		{"unknown status", TaskStatus("ARCHIVED"), TaskStatusCompleted, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.from.CanTransitionTo(tt.to); got != tt.want {
				t.Errorf("%s -> %s: got %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestReportStatusCanTransitionTo(t *testing.T) {
	tests := []struct {
		name string
		from ReportStatus
		to   ReportStatus
		want bool
	}{
		{"none to generating", ReportStatusNone, ReportStatusGenerating, true},
		{"generating to ready", ReportStatusGenerating, ReportStatusReady, true},
		{"generating to failed", ReportStatusGenerating, ReportStatusFailed, true},
		{"ready to ready", ReportStatusReady, ReportStatusReady, true},
		{"generating to none", ReportStatusGenerating, ReportStatusNone, false},
		{"ready to generating", ReportStatusReady, ReportStatusGenerating, false},
		{"ready to failed", ReportStatusReady, ReportStatusFailed, false},
		{"failed to ready", ReportStatusFailed, ReportStatusReady, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.from.CanTransitionTo(tt.to); got != tt.want {
				t.Errorf("%s -> %s: got %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestAnswerSetClone(t *testing.T) {
	original := AnswerSet{"q1": 5, "q2": 3}
	clone := original.Clone()

	clone["q1"] = 1
	clone["q3"] = 6

	if original["q1"] != 5 {
		t.Errorf("mutating clone changed original: got %d, want 5", original["q1"])
	}
	if _, ok := original["q3"]; ok {
		t.Error("adding to clone changed original")
	}
}

func TestTaskSubmittable(t *testing.T) {
	if !(Task{Status: TaskStatusPending}).Submittable() {
		t.Error("pending task should be submittable")
	}
	if !(Task{Status: TaskStatusInProgress}).Submittable() {
		t.Error("in-progress task should be submittable")
	}
	if (Task{Status: TaskStatusCompleted}).Submittable() {
		t.Error("completed task should not be submittable")
	}
}
