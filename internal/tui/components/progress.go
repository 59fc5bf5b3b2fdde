package components

import (
	"fmt"
	"strings"
)

// Progress renders the answered-question bar shown in the assessment runner,
// e.g. "████░░░░ 50%".
type Progress struct {
	Answered int
	Total    int
	Width    int // character width of the bar portion
}

// NewProgress creates a bar for answered out of total questions.
func NewProgress(answered, total, width int) Progress {
	return Progress{
		Answered: answered,
		Total:    total,
		Width:    width,
	}
}

// View returns the rendered bar. A session with no questions renders nothing.
func (p Progress) View() string {
	if p.Total <= 0 || p.Width <= 0 {
		return ""
	}

	answered := p.Answered
	if answered < 0 {
		answered = 0
	}
	if answered > p.Total {
		answered = p.Total
	}

	filled := answered * p.Width / p.Total
	var b strings.Builder
	for i := 0; i < p.Width; i++ {
		if i < filled {
			b.WriteString("█")
		} else {
			b.WriteString("░")
		}
	}

	return fmt.Sprintf("%s %d%%", b.String(), answered*100/p.Total)
}
