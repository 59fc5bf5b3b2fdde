package assessment

import "time"

// TaskStatus is the lifecycle state of an assessment task.
type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "PENDING"
	TaskStatusInProgress TaskStatus = "IN_PROGRESS"
	TaskStatusCompleted  TaskStatus = "COMPLETED"
)

// ReportStatus tracks the report lifecycle of a submitted task.
type ReportStatus string

const (
	ReportStatusNone       ReportStatus = "NONE"
	ReportStatusGenerating ReportStatus = "GENERATING"
	ReportStatusReady      ReportStatus = "READY"
	// ReportStatusFailed is a terminal state reserved for callers that park a
	// stalled generation. The shipped generator never sets it on its own.
	ReportStatusFailed ReportStatus = "FAILED"
)

// taskStatusRank orders task statuses along the only permitted direction.
var taskStatusRank = map[TaskStatus]int{
	TaskStatusPending:    0,
	TaskStatusInProgress: 1,
	TaskStatusCompleted:  2,
}

// reportStatusRank orders report statuses along the only permitted direction.
var reportStatusRank = map[ReportStatus]int{
	ReportStatusNone:       0,
	ReportStatusGenerating: 1,
	ReportStatusReady:      2,
	ReportStatusFailed:     2,
}

// CanTransitionTo reports whether moving from s to next is a monotonic change.
// Staying in the same state is allowed so that late, duplicate writes are no-ops.
// Skipping ahead (PENDING directly to COMPLETED) is allowed; going back never is.
func (s TaskStatus) CanTransitionTo(next TaskStatus) bool {
	from, okFrom := taskStatusRank[s]
	to, okTo := taskStatusRank[next]
	if !okFrom || !okTo {
		return false
	}
	return to >= from
}

// CanTransitionTo reports whether moving from s to next is a monotonic change.
// READY and FAILED are both terminal; a task never revisits GENERATING.
func (s ReportStatus) CanTransitionTo(next ReportStatus) bool {
	from, okFrom := reportStatusRank[s]
	to, okTo := reportStatusRank[next]
	if !okFrom || !okTo {
		return false
	}
	if s != next && from == to {
		// READY <-> FAILED share a rank but are distinct terminal states.
		return false
	}
	return to >= from
}

// Task is a single assigned assessment with its lifecycle state.
type Task struct {
	ID              string       `json:"id"`
	Title           string       `json:"title"`
	Description     string       `json:"description"`
	DurationMinutes int          `json:"durationMinutes"`
	QuestionCount   int          `json:"questionCount"`
	Status          TaskStatus   `json:"status"`
	ReportStatus    ReportStatus `json:"reportStatus"`
	Tags            []string     `json:"tags,omitempty"`
	CreatedAt       time.Time    `json:"createdAt"`
	CompletedAt     *time.Time   `json:"completedAt,omitempty"`
}

// Submittable reports whether the task can still accept a submission.
func (t Task) Submittable() bool {
	return t.Status != TaskStatusCompleted
}
