// Package answers accumulates per-question responses during a single
// assessment session. A collector is owned exclusively by its session and is
// discarded on submission or abandonment.
package answers

import "evalio/internal/assessment"

// Collector records the selected value for each answered question. The last
// selection for a question id wins.
type Collector struct {
	set assessment.AnswerSet
}

// NewCollector creates an empty collector.
func NewCollector() *Collector {
	return &Collector{set: make(assessment.AnswerSet)}
}

// Select records the choice for a question, overwriting any earlier one.
// Range validation is a presentation concern; any numeric value is accepted.
func (c *Collector) Select(questionID string, value int) {
	c.set[questionID] = value
}

// Value returns the recorded value for a question, if any.
func (c *Collector) Value(questionID string) (int, bool) {
	v, ok := c.set[questionID]
	return v, ok
}

// Len returns the number of answered questions.
func (c *Collector) Len() int {
	return len(c.set)
}

// IsComplete reports whether every required question id has a recorded value.
// It gates submission but is not enforced here; the presentation layer decides
// what to do with an incomplete set.
func (c *Collector) IsComplete(required []string) bool {
	for _, id := range required {
		if _, ok := c.set[id]; !ok {
			return false
		}
	}
	return true
}

// Snapshot returns an independent copy of the answer set for handoff.
func (c *Collector) Snapshot() assessment.AnswerSet {
	return c.set.Clone()
}
