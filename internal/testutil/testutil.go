// Package testutil provides shared helpers for evalio tests.
package testutil

import (
	"testing"
	"time"
)

// Eventually polls cond until it returns true or the timeout elapses, failing
// the test on overrun. Used to observe background processes without fixed
// sleeps.
func Eventually(t *testing.T, timeout time.Duration, cond func() bool, msg string) {
	t.Helper()

	deadline := time.Now().Add(timeout)
	for {
		if cond() {
			return
		}
		if time.Now().After(deadline) {
			t.Fatalf("condition not met within %s: %s", timeout, msg)
		}
		time.Sleep(5 * time.Millisecond)
	}
}

// Never asserts cond stays false for the whole window.
func Never(t *testing.T, window time.Duration, cond func() bool, msg string) {
	t.Helper()

	deadline := time.Now().Add(window)
	for time.Now().Before(deadline) {
		if cond() {
			t.Fatalf("condition unexpectedly became true: %s", msg)
		}
		time.Sleep(5 * time.Millisecond)
	}
}
