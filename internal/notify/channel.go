// Package notify implements the single-slot notification channel that
// surfaces one user-visible event at a time. A new publish replaces whatever
// is showing; events expire on their own after a deadline.
package notify

import (
	"sync"
	"time"
)

// Kind classifies a notification for rendering.
type Kind string

const (
	KindSuccess Kind = "SUCCESS"
	KindInfo    Kind = "INFO"
	KindError   Kind = "ERROR"
)

// DefaultTTL is how long an event stays visible without an explicit dismiss.
const DefaultTTL = 4 * time.Second

// Event is a transient user-facing message describing a background outcome.
type Event struct {
	Message     string
	Kind        Kind
	PublishedAt time.Time
}

// Channel holds at most one live event. Publish is last-write-wins; Clear is
// idempotent, so a user dismiss racing the expiry timer is harmless.
type Channel struct {
	mu     sync.Mutex
	event  *Event
	seq    uint64
	timer  *time.Timer
	ttl    time.Duration
	closed bool
}

// NewChannel creates a channel with the given default TTL. A non-positive ttl
// falls back to DefaultTTL.
func NewChannel(ttl time.Duration) *Channel {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Channel{ttl: ttl}
}

// Publish replaces the current event and reschedules expiry with the default
// TTL.
func (c *Channel) Publish(event Event) {
	c.PublishTTL(event, c.ttl)
}

// PublishTTL replaces the current event and schedules it to expire after ttl.
// The previous expiry timer is invalidated: if it fires late it finds a newer
// sequence number and clears nothing.
func (c *Channel) PublishTTL(event Event, ttl time.Duration) {
	if ttl <= 0 {
		ttl = c.ttl
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	if event.PublishedAt.IsZero() {
		event.PublishedAt = time.Now()
	}

	c.seq++
	seq := c.seq
	c.event = &event

	if c.timer != nil {
		c.timer.Stop()
	}
	c.timer = time.AfterFunc(ttl, func() {
		c.expire(seq)
	})
}

// expire clears the slot only if the event that scheduled it is still showing.
func (c *Channel) expire(seq uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.seq == seq {
		c.event = nil
	}
}

// Clear empties the slot. Clearing an already-empty or already-replaced slot
// is a no-op, never an error.
func (c *Channel) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.event = nil
	c.seq++
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}

// Current returns the live event, if any.
func (c *Channel) Current() (Event, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.event == nil {
		return Event{}, false
	}
	return *c.event, true
}

// Close stops the expiry timer and drops any pending event. Publishing to a
// closed channel is a no-op; the engine closes the channel at logout while a
// generation process may still be running.
func (c *Channel) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.closed = true
	c.event = nil
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}
