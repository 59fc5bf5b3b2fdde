// Package report runs the asynchronous report-generation process. Submission
// hands a completed task to the Generator and returns immediately; the
// process resolves later, commits the report, flips the task's report status
// to READY and raises a notification.
package report

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"evalio/internal/analysis"
	"evalio/internal/assessment"
	"evalio/internal/logger"
	"evalio/internal/notify"
	"evalio/internal/store"
)

var (
	// ErrAlreadyInProgress is returned when a generation process for the same
	// task id has not yet resolved.
	ErrAlreadyInProgress = errors.New("report generation already in progress")
	// ErrStalledGeneration is returned by Wait when a caller-imposed timeout
	// elapses before the process resolves.
	ErrStalledGeneration = errors.New("report generation stalled")
)

// DefaultDelay models the latency of the remote render job.
const DefaultDelay = 5 * time.Second

const (
	reportSizeBase      = int64(2 << 20) // ~2 MB baseline PDF
	reportSizePerAnswer = int64(48 << 10)
)

// Generator owns the in-flight bookkeeping for report generation. At most one
// process per task id runs at a time.
type Generator struct {
	tasks    *store.TaskStore
	reports  *store.ReportStore
	channel  *notify.Channel
	analyzer analysis.Analyzer
	delay    time.Duration

	mu       sync.Mutex
	inFlight map[string]chan struct{}
}

// NewGenerator creates a generator writing into the given stores and channel.
// A non-positive delay falls back to DefaultDelay.
func NewGenerator(tasks *store.TaskStore, reports *store.ReportStore, channel *notify.Channel, analyzer analysis.Analyzer, delay time.Duration) *Generator {
	if delay <= 0 {
		delay = DefaultDelay
	}
	return &Generator{
		tasks:    tasks,
		reports:  reports,
		channel:  channel,
		analyzer: analyzer,
		delay:    delay,
		inFlight: make(map[string]chan struct{}),
	}
}

// Start launches the generation process for a submitted task. It returns
// ErrAlreadyInProgress if a process for the same id is still unresolved, and
// returns immediately otherwise; the process runs in the background and
// applies its result through the task store.
func (g *Generator) Start(task assessment.Task, answers assessment.AnswerSet) error {
	g.mu.Lock()
	if _, exists := g.inFlight[task.ID]; exists {
		g.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrAlreadyInProgress, task.ID)
	}
	done := make(chan struct{})
	g.inFlight[task.ID] = done
	g.mu.Unlock()

	logger.Debug("Starting report generation for task %s", task.ID)
	go g.run(task, answers.Clone(), done)
	return nil
}

// InFlight reports whether a generation process for the task is unresolved.
func (g *Generator) InFlight(taskID string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	_, exists := g.inFlight[taskID]
	return exists
}

// Wait blocks until the process for taskID resolves or the timeout elapses.
// A task with no in-flight process resolves immediately. The overrun error is
// advisory: the process keeps running and will still apply its idempotent
// update when it eventually resolves.
func (g *Generator) Wait(taskID string, timeout time.Duration) error {
	g.mu.Lock()
	done, exists := g.inFlight[taskID]
	g.mu.Unlock()

	if !exists {
		return nil
	}

	select {
	case <-done:
		return nil
	case <-time.After(timeout):
		return fmt.Errorf("%w: task %s exceeded %s", ErrStalledGeneration, taskID, timeout)
	}
}

// run is the background process body. It never panics and never leaves the
// task stuck without resolving its done channel: every exit path deregisters
// the id so a later submission cycle could start fresh.
func (g *Generator) run(task assessment.Task, answers assessment.AnswerSet, done chan struct{}) {
	defer func() {
		g.mu.Lock()
		delete(g.inFlight, task.ID)
		g.mu.Unlock()
		close(done)
	}()

	// Simulated/remote render latency.
	time.Sleep(g.delay)

	summary := g.summarize(task, answers)

	rpt := assessment.Report{
		ID:          uuid.NewString(),
		TaskID:      task.ID,
		TaskTitle:   task.Title,
		GeneratedAt: time.Now(),
		FileSize:    reportSizeBase + int64(len(answers))*reportSizePerAnswer,
		DownloadURL: fmt.Sprintf("/reports/%s.pdf", task.ID),
		Summary:     summary,
	}
	g.reports.Add(rpt)

	ready := assessment.ReportStatusReady
	if _, err := g.tasks.Update(task.ID, store.Patch{ReportStatus: &ready}); err != nil {
		// The store may have been torn down (logout) or the state already
		// applied; either way the process must not raise.
		logger.Warn("Report ready for task %s but store update failed: %v", task.ID, err)
	}

	g.channel.Publish(notify.Event{
		Message: fmt.Sprintf("Your report for %q is ready", task.Title),
		Kind:    notify.KindSuccess,
	})
	logger.Info("Report %s generated for task %s", rpt.ID, task.ID)
}

// summarize runs the optional external analysis, degrading to placeholder
// text on any failure. An analysis failure never fails the report.
func (g *Generator) summarize(task assessment.Task, answers assessment.AnswerSet) string {
	if g.analyzer == nil {
		return analysis.PlaceholderSummary
	}

	summary, err := g.analyzer.Analyze(context.Background(), task, answers)
	if err != nil {
		if !errors.Is(err, analysis.ErrDisabled) {
			logger.Warn("Analysis failed for task %s, using placeholder: %v", task.ID, err)
		}
		return analysis.PlaceholderSummary
	}
	return summary
}
