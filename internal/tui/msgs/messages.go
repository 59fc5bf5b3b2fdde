// Package msgs defines shared message types for TUI view transitions.
package msgs

// LoggedInMsg is sent when the login view accepts credentials.
type LoggedInMsg struct{}

// LogoutMsg signals teardown of the engine and return to login.
type LogoutMsg struct{}

// GoToDashboardMsg signals transition to the dashboard view.
type GoToDashboardMsg struct{}

// GoToReportsMsg signals transition to the reports view.
type GoToReportsMsg struct{}

// OpenTaskMsg is sent when a task is selected on the dashboard.
type OpenTaskMsg struct {
	TaskID string
}

// StartAssessmentMsg is sent from the task detail view to begin answering.
type StartAssessmentMsg struct {
	TaskID string
}

// SubmittedMsg is sent when the runner submits an answer set.
type SubmittedMsg struct {
	TaskID string
	Err    error
}

// RefreshMsg is the periodic tick that re-reads engine state (task statuses
// and the current notification) so background changes reach the screen.
type RefreshMsg struct{}
