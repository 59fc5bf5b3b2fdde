// Package questionbank serves the seeded catalog of assigned tasks, questions
// and archived reports. Question-bank management lives server-side and is out
// of scope; this package only exposes immutable copies of the fixture data a
// freshly logged-in user would receive.
package questionbank

import (
	"time"

	"evalio/internal/assessment"
)

var seedQuestions = []assessment.Question{
	{ID: "q1", Text: "I am a talkative person", Type: assessment.QuestionTypeLikert},
	{ID: "q2", Text: "I am good at influencing others' decisions through different approaches", Type: assessment.QuestionTypeLikert},
	{ID: "q3", Text: "I prefer to work methodically and dislike surprises", Type: assessment.QuestionTypeLikert},
	{ID: "q4", Text: "In a team, I tend to listen more than I speak", Type: assessment.QuestionTypeLikert},
	{ID: "q5", Text: "I stay calm when facing pressure", Type: assessment.QuestionTypeLikert},
	{ID: "q6", Text: "I enjoy helping colleagues solve difficult problems", Type: assessment.QuestionTypeLikert},
	{ID: "q7", Text: "I often think about my future career path", Type: assessment.QuestionTypeLikert},
	{ID: "q8", Text: "I prefer working independently over collaborating", Type: assessment.QuestionTypeLikert},
}

// Tasks returns the user's assigned tasks for seeding the task store.
func Tasks() []assessment.Task {
	completedAt := time.Date(2026, 4, 5, 14, 30, 0, 0, time.UTC)
	return []assessment.Task{
		{
			ID:              "task-001",
			Title:           "Annual Leadership Assessment",
			Description:     "A comprehensive annual review created by your assessment supervisor, evaluating leadership potential and team collaboration.",
			DurationMinutes: 30,
			QuestionCount:   12,
			Status:          assessment.TaskStatusPending,
			ReportStatus:    assessment.ReportStatusNone,
			Tags:            []string{"medium priority"},
			CreatedAt:       time.Date(2026, 5, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:              "task-002",
			Title:           "Career Personality Profile (Short Form)",
			Description:     "Understand your occupational personality tendencies to plan your career development.",
			DurationMinutes: 15,
			QuestionCount:   8,
			Status:          assessment.TaskStatusInProgress,
			ReportStatus:    assessment.ReportStatusNone,
			Tags:            []string{"high priority"},
			CreatedAt:       time.Date(2026, 5, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:              "task-003",
			Title:           "Q1 Performance Self Review",
			Description:     "Complete a self evaluation based on your first-quarter performance.",
			DurationMinutes: 45,
			QuestionCount:   20,
			Status:          assessment.TaskStatusCompleted,
			ReportStatus:    assessment.ReportStatusReady,
			Tags:            []string{"archived"},
			CreatedAt:       time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
			CompletedAt:     &completedAt,
		},
	}
}

// Questions returns the question set for a task. Every task currently shares
// the standard catalog; per-task banks are a server concern.
func Questions(taskID string) []assessment.Question {
	out := make([]assessment.Question, len(seedQuestions))
	copy(out, seedQuestions)
	return out
}

// Reports returns the pre-existing archived reports.
func Reports() []assessment.Report {
	return []assessment.Report{
		{
			ID:          "rpt-001",
			TaskID:      "task-003",
			TaskTitle:   "Q1 Performance Self Review",
			GeneratedAt: time.Date(2026, 4, 5, 14, 30, 0, 0, time.UTC),
			FileSize:    2516582, // ~2.4 MB
			DownloadURL: "/reports/task-003.pdf",
		},
	}
}
