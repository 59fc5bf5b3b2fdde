// Package submit validates a finished assessment session and hands it over
// to report generation. Submission commits synchronously; generation runs on
// its own and never extends user-facing latency.
package submit

import (
	"errors"
	"fmt"
	"time"

	"evalio/internal/assessment"
	"evalio/internal/logger"
	"evalio/internal/notify"
	"evalio/internal/report"
	"evalio/internal/store"
)

// ErrInvalidState is returned when the task cannot accept a submission.
var ErrInvalidState = errors.New("task not submittable")

// Coordinator transitions a task to COMPLETED and starts its generation
// process.
type Coordinator struct {
	tasks     *store.TaskStore
	generator *report.Generator
	channel   *notify.Channel
	now       func() time.Time
}

// NewCoordinator creates a coordinator over the given store and generator.
func NewCoordinator(tasks *store.TaskStore, generator *report.Generator, channel *notify.Channel) *Coordinator {
	return &Coordinator{
		tasks:     tasks,
		generator: generator,
		channel:   channel,
		now:       time.Now,
	}
}

// Submit completes the task and kicks off report generation. It returns once
// the COMPLETED/GENERATING transition has committed; the caller never waits
// for the report.
//
// Failure modes: store.ErrNotFound for an unknown id,
// report.ErrAlreadyInProgress when a duplicate submission races an unresolved
// process, and ErrInvalidState for a task whose generation already resolved.
// The in-flight check runs first: a duplicate submit finds the task COMPLETED
// because the first submit flipped it, and must still report the in-flight
// condition rather than the state.
func (c *Coordinator) Submit(taskID string, answers assessment.AnswerSet) error {
	task, err := c.tasks.Get(taskID)
	if err != nil {
		return err
	}
	if c.generator.InFlight(taskID) {
		return fmt.Errorf("%w: %s", report.ErrAlreadyInProgress, taskID)
	}
	if !task.Submittable() {
		return fmt.Errorf("%w: %s is already %s", ErrInvalidState, taskID, task.Status)
	}

	completed := assessment.TaskStatusCompleted
	generating := assessment.ReportStatusGenerating
	completedAt := c.now()

	updated, err := c.tasks.Update(taskID, store.Patch{
		Status:       &completed,
		ReportStatus: &generating,
		CompletedAt:  &completedAt,
	})
	if err != nil {
		return fmt.Errorf("failed to complete task %s: %w", taskID, err)
	}

	if err := c.generator.Start(updated, answers); err != nil {
		return err
	}

	c.channel.PublishTTL(notify.Event{
		Message: "Submitted. Your responses are being analyzed...",
		Kind:    notify.KindInfo,
	}, 3*time.Second)

	logger.Info("Task %s submitted with %d answers", taskID, len(answers))
	return nil
}
