package report

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"evalio/internal/assessment"
	"evalio/internal/notify"
	"evalio/internal/store"
	"evalio/internal/testutil"
)

// fakeAnalyzer is a test double for analysis.Analyzer.
type fakeAnalyzer struct {
	mu      sync.Mutex
	summary string
	err     error
	calls   int
}

func (f *fakeAnalyzer) Analyze(ctx context.Context, task assessment.Task, answers assessment.AnswerSet) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	return f.summary, f.err
}

func (f *fakeAnalyzer) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

type fixture struct {
	tasks    *store.TaskStore
	reports  *store.ReportStore
	channel  *notify.Channel
	analyzer *fakeAnalyzer
	gen      *Generator
}

func newFixture(t *testing.T, delay time.Duration) *fixture {
	t.Helper()

	f := &fixture{
		tasks: store.NewTaskStore([]assessment.Task{{
			ID:           "task-001",
			Title:        "Leadership Assessment",
			Status:       assessment.TaskStatusCompleted,
			ReportStatus: assessment.ReportStatusGenerating,
		}}),
		reports:  store.NewReportStore(nil),
		channel:  notify.NewChannel(time.Minute),
		analyzer: &fakeAnalyzer{summary: "A balanced profile."},
	}
	t.Cleanup(f.channel.Close)
	f.gen = NewGenerator(f.tasks, f.reports, f.channel, f.analyzer, delay)
	return f
}

func (f *fixture) task(t *testing.T) assessment.Task {
	t.Helper()
	task, err := f.tasks.Get("task-001")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return task
}

func TestGeneratorSuccess(t *testing.T) {
	f := newFixture(t, 20*time.Millisecond)
	answers := assessment.AnswerSet{"q1": 5, "q2": 3}

	if err := f.gen.Start(f.task(t), answers); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !f.gen.InFlight("task-001") {
		t.Error("process should be in flight right after Start")
	}

	if err := f.gen.Wait("task-001", time.Second); err != nil {
		t.Fatalf("wait failed: %v", err)
	}

	if got := f.task(t).ReportStatus; got != assessment.ReportStatusReady {
		t.Errorf("report status: got %s, want READY", got)
	}

	reports := f.reports.ByTask("task-001")
	if len(reports) != 1 {
		t.Fatalf("expected exactly one report, got %d", len(reports))
	}
	rpt := reports[0]
	if rpt.ID == "" {
		t.Error("report id not assigned")
	}
	if rpt.TaskTitle != "Leadership Assessment" {
		t.Errorf("unexpected task title: %q", rpt.TaskTitle)
	}
	if rpt.Summary != "A balanced profile." {
		t.Errorf("unexpected summary: %q", rpt.Summary)
	}
	if rpt.FileSize <= 0 {
		t.Errorf("file size should be positive, got %d", rpt.FileSize)
	}

	event, ok := f.channel.Current()
	if !ok {
		t.Fatal("expected a notification")
	}
	if event.Kind != notify.KindSuccess {
		t.Errorf("got kind %s, want SUCCESS", event.Kind)
	}
	if !strings.Contains(event.Message, "ready") {
		t.Errorf("message should announce readiness: %q", event.Message)
	}

	if f.gen.InFlight("task-001") {
		t.Error("process should be deregistered after resolving")
	}
}

func TestGeneratorDuplicateStart(t *testing.T) {
	f := newFixture(t, 50*time.Millisecond)

	if err := f.gen.Start(f.task(t), nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	err := f.gen.Start(f.task(t), nil)
	if !errors.Is(err, ErrAlreadyInProgress) {
		t.Errorf("expected ErrAlreadyInProgress, got %v", err)
	}

	// Once resolved, the single-in-flight slot frees up again.
	if err := f.gen.Wait("task-001", time.Second); err != nil {
		t.Fatalf("wait failed: %v", err)
	}
	if f.gen.InFlight("task-001") {
		t.Error("slot still occupied after resolution")
	}
}

func TestGeneratorDecoupling(t *testing.T) {
	f := newFixture(t, 60*time.Millisecond)

	if err := f.gen.Start(f.task(t), nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Strictly before resolution: still GENERATING, no notification yet.
	if got := f.task(t).ReportStatus; got != assessment.ReportStatusGenerating {
		t.Errorf("got %s, want GENERATING while in flight", got)
	}
	testutil.Never(t, 30*time.Millisecond, func() bool {
		_, ok := f.channel.Current()
		return ok
	}, "notification appeared before the process resolved")

	testutil.Eventually(t, time.Second, func() bool {
		_, ok := f.channel.Current()
		return ok
	}, "report-ready notification published")

	if got := f.task(t).ReportStatus; got != assessment.ReportStatusReady {
		t.Errorf("got %s, want READY after resolution", got)
	}
}

func TestGeneratorWaitTimeout(t *testing.T) {
	f := newFixture(t, 80*time.Millisecond)

	if err := f.gen.Start(f.task(t), nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err := f.gen.Wait("task-001", 10*time.Millisecond)
	if !errors.Is(err, ErrStalledGeneration) {
		t.Fatalf("expected ErrStalledGeneration, got %v", err)
	}

	// The caller gave up but the process still resolves and applies READY.
	testutil.Eventually(t, time.Second, func() bool {
		return f.task(t).ReportStatus == assessment.ReportStatusReady
	}, "late resolution still lands READY")
}

func TestGeneratorWaitWithNothingInFlight(t *testing.T) {
	f := newFixture(t, 10*time.Millisecond)

	if err := f.gen.Wait("task-001", 10*time.Millisecond); err != nil {
		t.Errorf("wait with no in-flight process should resolve immediately, got %v", err)
	}
}

func TestGeneratorAnalysisFailureDegrades(t *testing.T) {
	f := newFixture(t, 10*time.Millisecond)
	f.analyzer.err = errors.New("service unavailable")

	if err := f.gen.Start(f.task(t), assessment.AnswerSet{"q1": 4}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := f.gen.Wait("task-001", time.Second); err != nil {
		t.Fatalf("wait failed: %v", err)
	}

	reports := f.reports.ByTask("task-001")
	if len(reports) != 1 {
		t.Fatalf("report must still be produced, got %d", len(reports))
	}
	if reports[0].Summary == "A balanced profile." || reports[0].Summary == "" {
		t.Errorf("expected placeholder summary, got %q", reports[0].Summary)
	}
	if got := f.task(t).ReportStatus; got != assessment.ReportStatusReady {
		t.Errorf("analysis failure must not block READY, got %s", got)
	}
	if f.analyzer.callCount() != 1 {
		t.Errorf("analyzer called %d times, want 1", f.analyzer.callCount())
	}
}

func TestGeneratorNilAnalyzer(t *testing.T) {
	f := newFixture(t, 10*time.Millisecond)
	f.gen = NewGenerator(f.tasks, f.reports, f.channel, nil, 10*time.Millisecond)

	if err := f.gen.Start(f.task(t), nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := f.gen.Wait("task-001", time.Second); err != nil {
		t.Fatalf("wait failed: %v", err)
	}

	reports := f.reports.ByTask("task-001")
	if len(reports) != 1 || reports[0].Summary == "" {
		t.Error("nil analyzer should still yield a report with placeholder text")
	}
}

func TestGeneratorSurvivesDefunctStore(t *testing.T) {
	f := newFixture(t, 10*time.Millisecond)

	// Model a store torn down before resolution: the task the process holds
	// no longer exists. The update must be dropped, never raised.
	orphan := assessment.Task{
		ID:           "task-gone",
		Title:        "Departed Assessment",
		Status:       assessment.TaskStatusCompleted,
		ReportStatus: assessment.ReportStatusGenerating,
	}
	if err := f.gen.Start(orphan, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := f.gen.Wait("task-gone", time.Second); err != nil {
		t.Fatalf("wait failed: %v", err)
	}

	// The report itself still lands in the archive.
	if len(f.reports.ByTask("task-gone")) != 1 {
		t.Error("report should be committed even when the task store update is a no-op")
	}
}
