package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"evalio/internal/assessment"
	"evalio/internal/engine"
	"evalio/internal/tui/components"
	"evalio/internal/tui/msgs"
	"evalio/internal/tui/styles"
)

// refreshInterval paces the engine re-reads that surface background progress
// (report generation, toast expiry) on screen.
const refreshInterval = 250 * time.Millisecond

// DashboardModel is the model for the task list screen. The engine is the
// single source of truth; the model re-reads it on every refresh tick instead
// of keeping its own task copies.
type DashboardModel struct {
	engine *engine.Engine
	cursor int
	spin   spinner.Model
	toast  components.Toast
	bar    components.StatusBar
	width  int
	height int
}

// NewDashboardModel creates a dashboard over the given engine.
func NewDashboardModel(eng *engine.Engine) DashboardModel {
	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = styles.InfoStyle

	return DashboardModel{
		engine: eng,
		spin:   spin,
		toast:  components.NewToast(),
		bar:    components.NewStatusBar(),
	}
}

func refreshTick() tea.Cmd {
	return tea.Tick(refreshInterval, func(time.Time) tea.Msg {
		return msgs.RefreshMsg{}
	})
}

// Init implements tea.Model.
func (m DashboardModel) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, refreshTick())
}

// Update implements tea.Model.
func (m DashboardModel) Update(msg tea.Msg) (DashboardModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case msgs.RefreshMsg:
		// Nothing to mutate: View reads the engine directly. Rescheduling the
		// tick is what keeps background changes flowing to the screen.
		return m, refreshTick()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		tasks := m.engine.Tasks()
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(tasks)-1 {
				m.cursor++
			}
		case "enter":
			if m.cursor < len(tasks) {
				id := tasks[m.cursor].ID
				return m, func() tea.Msg { return msgs.OpenTaskMsg{TaskID: id} }
			}
		case "r":
			return m, func() tea.Msg { return msgs.GoToReportsMsg{} }
		case "x":
			m.engine.DismissNotification()
		case "l":
			return m, func() tea.Msg { return msgs.LogoutMsg{} }
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m DashboardModel) View() string {
	var b strings.Builder

	b.WriteString(styles.TitleStyle.Render("My Assessments"))
	b.WriteString("\n")

	if banner := m.toast.Render(m.engine.Notification()); banner != "" {
		b.WriteString(banner)
		b.WriteString("\n\n")
	}

	for i, task := range m.engine.Tasks() {
		b.WriteString(m.renderTask(task, i == m.cursor))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.bar.Render(m.width, []string{
		"↑/↓: navigate", "enter: open", "r: reports", "x: dismiss toast", "l: log out", "q: quit",
	}))

	return b.String()
}

// renderTask formats one task row with its status badge and report marker.
func (m DashboardModel) renderTask(task assessment.Task, selected bool) string {
	prefix := "  "
	title := task.Title
	if selected {
		prefix = "> "
		title = styles.SelectedStyle.Render(title)
	}

	line := fmt.Sprintf("%s%s  %s%s", prefix, statusBadge(task.Status), title, m.reportMarker(task))
	meta := fmt.Sprintf("    %dm · %d questions", task.DurationMinutes, task.QuestionCount)

	return line + "\n" + styles.SubtleStyle.Render(meta)
}

func (m DashboardModel) reportMarker(task assessment.Task) string {
	switch task.ReportStatus {
	case assessment.ReportStatusGenerating:
		return "  " + m.spin.View() + styles.InfoStyle.Render("generating report")
	case assessment.ReportStatusReady:
		return "  " + styles.SuccessStyle.Render("report ready")
	default:
		return ""
	}
}

func statusBadge(status assessment.TaskStatus) string {
	switch status {
	case assessment.TaskStatusPending:
		return styles.BadgePending.Render("[PENDING]    ")
	case assessment.TaskStatusInProgress:
		return styles.BadgeInProgress.Render("[IN PROGRESS]")
	case assessment.TaskStatusCompleted:
		return styles.BadgeCompleted.Render("[COMPLETED]  ")
	default:
		return string(status)
	}
}
