package components

import (
	"strings"
	"testing"
)

func TestProgress_View_ZeroPercent(t *testing.T) {
	p := NewProgress(0, 8, 8)
	result := p.View()

	if !strings.HasPrefix(result, "░░░░░░░░") {
		t.Errorf("expected an empty bar, got: %s", result)
	}
	if !strings.HasSuffix(result, "0%") {
		t.Errorf("expected 0%%, got: %s", result)
	}
}

func TestProgress_View_HalfAnswered(t *testing.T) {
	p := NewProgress(4, 8, 8)
	result := p.View()

	if !strings.HasPrefix(result, "████░░░░") {
		t.Errorf("expected half filled bar, got: %s", result)
	}
	if !strings.HasSuffix(result, "50%") {
		t.Errorf("expected 50%%, got: %s", result)
	}
}

func TestProgress_View_AllAnswered(t *testing.T) {
	p := NewProgress(8, 8, 8)
	result := p.View()

	if !strings.HasPrefix(result, "████████") {
		t.Errorf("expected a full bar, got: %s", result)
	}
	if !strings.HasSuffix(result, "100%") {
		t.Errorf("expected 100%%, got: %s", result)
	}
}

func TestProgress_View_ZeroTotal(t *testing.T) {
	p := NewProgress(5, 0, 8)

	if result := p.View(); result != "" {
		t.Errorf("expected empty string for zero total, got: %s", result)
	}
}

func TestProgress_View_ClampsOverflow(t *testing.T) {
	p := NewProgress(12, 8, 8)
	result := p.View()

	if !strings.HasSuffix(result, "100%") {
		t.Errorf("overflow should clamp to 100%%, got: %s", result)
	}
}
