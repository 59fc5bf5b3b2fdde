package views

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"evalio/internal/assessment"
	"evalio/internal/tui/components"
	"evalio/internal/tui/msgs"
	"evalio/internal/tui/styles"
)

// IntroModel is the task detail screen shown before starting an assessment.
type IntroModel struct {
	task   assessment.Task
	bar    components.StatusBar
	width  int
	height int
}

// NewIntroModel creates an intro view for the given task.
func NewIntroModel(task assessment.Task) IntroModel {
	return IntroModel{
		task: task,
		bar:  components.NewStatusBar(),
	}
}

// Init implements tea.Model.
func (m IntroModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m IntroModel) Update(msg tea.Msg) (IntroModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc", "b":
			return m, func() tea.Msg { return msgs.GoToDashboardMsg{} }
		case "enter", "s":
			if m.task.Status != assessment.TaskStatusCompleted {
				id := m.task.ID
				return m, func() tea.Msg { return msgs.StartAssessmentMsg{TaskID: id} }
			}
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m IntroModel) View() string {
	var b strings.Builder

	b.WriteString(styles.TitleStyle.Render(m.task.Title))
	b.WriteString("\n")
	b.WriteString(m.task.Description)
	b.WriteString("\n\n")
	b.WriteString(styles.SubtleStyle.Render(fmt.Sprintf("Estimated time: %d minutes", m.task.DurationMinutes)))
	b.WriteString("\n")
	b.WriteString(styles.SubtleStyle.Render(fmt.Sprintf("Questions: %d", m.task.QuestionCount)))
	b.WriteString("\n")

	if m.task.Status == assessment.TaskStatusCompleted {
		b.WriteString("\n" + styles.SuccessStyle.Render("You have already completed this assessment."))
	}

	content := styles.BoxStyle.Render(b.String())

	hints := []string{"esc: back"}
	if m.task.Status != assessment.TaskStatusCompleted {
		hints = append([]string{"enter: start"}, hints...)
	}

	return content + "\n\n" + m.bar.Render(m.width, hints)
}
