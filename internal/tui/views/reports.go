package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"

	"evalio/internal/engine"
	"evalio/internal/tui/components"
	"evalio/internal/tui/msgs"
	"evalio/internal/tui/styles"
)

// ReportsModel lists the generated reports. Like the dashboard it reads the
// engine on every render, so a report that lands while the view is open
// appears on the next refresh tick.
type ReportsModel struct {
	engine *engine.Engine
	spin   spinner.Model
	toast  components.Toast
	bar    components.StatusBar
	width  int
	height int
}

// NewReportsModel creates a reports view over the given engine.
func NewReportsModel(eng *engine.Engine) ReportsModel {
	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = styles.InfoStyle

	return ReportsModel{
		engine: eng,
		spin:   spin,
		toast:  components.NewToast(),
		bar:    components.NewStatusBar(),
	}
}

// Init implements tea.Model.
func (m ReportsModel) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, refreshTick())
}

// Update implements tea.Model.
func (m ReportsModel) Update(msg tea.Msg) (ReportsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case msgs.RefreshMsg:
		return m, refreshTick()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "esc", "b":
			return m, func() tea.Msg { return msgs.GoToDashboardMsg{} }
		case "x":
			m.engine.DismissNotification()
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m ReportsModel) View() string {
	var b strings.Builder

	b.WriteString(styles.TitleStyle.Render("My Reports"))
	b.WriteString("\n")

	if banner := m.toast.Render(m.engine.Notification()); banner != "" {
		b.WriteString(banner)
		b.WriteString("\n\n")
	}

	reports := m.engine.Reports()
	if len(reports) == 0 {
		b.WriteString(styles.SubtleStyle.Render("No reports yet. Complete an assessment to generate one."))
		b.WriteString("\n")
	}

	for _, r := range reports {
		b.WriteString(fmt.Sprintf("  %s\n", styles.SelectedStyle.Render(r.TaskTitle)))
		meta := fmt.Sprintf("    %s · %s · %s",
			r.GeneratedAt.Format("2006-01-02 15:04"), humanize.Bytes(uint64(r.FileSize)), r.DownloadURL)
		b.WriteString(styles.SubtleStyle.Render(meta))
		b.WriteString("\n")
	}

	if m.anyGenerating() {
		b.WriteString("\n" + m.spin.View() + styles.InfoStyle.Render("a report is being generated..."))
		b.WriteString("\n")
	}

	b.WriteString("\n" + m.bar.Render(m.width, []string{"esc: back", "x: dismiss toast", "q: quit"}))

	return b.String()
}

func (m ReportsModel) anyGenerating() bool {
	for _, task := range m.engine.Tasks() {
		if m.engine.ReportInFlight(task.ID) {
			return true
		}
	}
	return false
}
