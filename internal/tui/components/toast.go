package components

import (
	"github.com/charmbracelet/lipgloss"

	"evalio/internal/notify"
	"evalio/internal/tui/styles"
)

// Toast renders the single current notification as a one-line banner. An
// empty slot renders to an empty string so layouts collapse cleanly.
type Toast struct{}

// NewToast creates a new Toast instance.
func NewToast() Toast {
	return Toast{}
}

// Render returns the banner for the given event.
func (t Toast) Render(event notify.Event, ok bool) string {
	if !ok {
		return ""
	}

	var style lipgloss.Style
	switch event.Kind {
	case notify.KindSuccess:
		style = styles.SuccessStyle
	case notify.KindError:
		style = styles.ErrorStyle
	default:
		style = styles.InfoStyle
	}

	return styles.ToastStyle.Render(style.Render(event.Message))
}
