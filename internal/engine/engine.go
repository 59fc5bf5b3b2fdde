// Package engine wires the task store, report archive, notification channel,
// generator and coordinator into one explicitly constructed unit with a
// login/logout lifecycle. Both the CLI and the TUI talk to the engine; neither
// holds task state of its own.
package engine

import (
	"errors"
	"fmt"
	"time"

	"evalio/internal/analysis"
	"evalio/internal/assessment"
	"evalio/internal/config"
	"evalio/internal/notify"
	"evalio/internal/questionbank"
	"evalio/internal/report"
	"evalio/internal/session"
	"evalio/internal/store"
	"evalio/internal/submit"
)

// ErrTaskCompleted is returned when starting a session on a finished task.
var ErrTaskCompleted = errors.New("task already completed")

// Engine is the composition root for one login session.
type Engine struct {
	tasks       *store.TaskStore
	reports     *store.ReportStore
	channel     *notify.Channel
	generator   *report.Generator
	coordinator *submit.Coordinator
}

// New constructs an engine from configuration, seeded with the logged-in
// user's assigned tasks and archived reports.
func New(cfg *config.Config) *Engine {
	tasks := store.NewTaskStore(questionbank.Tasks())
	reports := store.NewReportStore(questionbank.Reports())
	channel := notify.NewChannel(cfg.NotificationTTL)

	var analyzer analysis.Analyzer
	if cfg.AnalysisKey != "" {
		analyzer = analysis.NewClient(cfg.AnalysisURL, cfg.AnalysisKey)
	}

	generator := report.NewGenerator(tasks, reports, channel, analyzer, cfg.GenerationDelay)
	coordinator := submit.NewCoordinator(tasks, generator, channel)

	return &Engine{
		tasks:       tasks,
		reports:     reports,
		channel:     channel,
		generator:   generator,
		coordinator: coordinator,
	}
}

// Tasks returns all assigned tasks with live status.
func (e *Engine) Tasks() []assessment.Task {
	return e.tasks.List()
}

// Task returns one task by id.
func (e *Engine) Task(id string) (assessment.Task, error) {
	return e.tasks.Get(id)
}

// Reports returns the report archive.
func (e *Engine) Reports() []assessment.Report {
	return e.reports.List()
}

// Submit validates and submits a finished answer set for the task.
func (e *Engine) Submit(taskID string, answers assessment.AnswerSet) error {
	return e.coordinator.Submit(taskID, answers)
}

// BeginSession starts an assessment session for the task, moving a PENDING
// task to IN_PROGRESS.
func (e *Engine) BeginSession(taskID string) (*session.Session, error) {
	task, err := e.tasks.Get(taskID)
	if err != nil {
		return nil, err
	}
	if task.Status == assessment.TaskStatusCompleted {
		return nil, fmt.Errorf("%w: %s", ErrTaskCompleted, taskID)
	}

	if task.Status == assessment.TaskStatusPending {
		inProgress := assessment.TaskStatusInProgress
		task, err = e.tasks.Update(taskID, store.Patch{Status: &inProgress})
		if err != nil {
			return nil, err
		}
	}

	return session.Begin(task, questionbank.Questions(taskID)), nil
}

// Notification returns the current toast, if any.
func (e *Engine) Notification() (notify.Event, bool) {
	return e.channel.Current()
}

// DismissNotification clears the toast. Safe to call at any time.
func (e *Engine) DismissNotification() {
	e.channel.Clear()
}

// ReportInFlight reports whether generation is still running for the task.
func (e *Engine) ReportInFlight(taskID string) bool {
	return e.generator.InFlight(taskID)
}

// WaitForReport blocks until the task's generation process resolves, or fails
// with report.ErrStalledGeneration after the timeout. State is never
// corrupted by an overrun; a late process still lands its update.
func (e *Engine) WaitForReport(taskID string, timeout time.Duration) error {
	return e.generator.Wait(taskID, timeout)
}

// Close tears the engine down at logout. In-flight generation processes run
// to completion; their updates land in stores nothing reads anymore, and the
// closed channel drops their notifications.
func (e *Engine) Close() {
	e.channel.Close()
}
