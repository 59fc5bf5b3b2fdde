package assessment

import "time"

// AnswerSet maps question id to the selected numeric value (1..6 for Likert).
// It exists only between session start and submission.
type AnswerSet map[string]int

// Clone returns an independent copy of the set.
func (a AnswerSet) Clone() AnswerSet {
	out := make(AnswerSet, len(a))
	for id, v := range a {
		out[id] = v
	}
	return out
}

// Report is the terminal artifact of a successful generation process.
// Immutable once created.
type Report struct {
	ID          string    `json:"id"`
	TaskID      string    `json:"taskId"`
	TaskTitle   string    `json:"taskTitle"`
	GeneratedAt time.Time `json:"generatedAt"`
	FileSize    int64     `json:"fileSize"` // bytes
	DownloadURL string    `json:"downloadUrl"`
	Summary     string    `json:"summary,omitempty"`
}
