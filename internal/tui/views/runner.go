package views

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"evalio/internal/assessment"
	"evalio/internal/engine"
	"evalio/internal/logger"
	"evalio/internal/session"
	"evalio/internal/tui/components"
	"evalio/internal/tui/msgs"
	"evalio/internal/tui/styles"
)

// RunnerModel steps through the questions of one assessment session. The
// session owns the answers; the model only tracks which question is showing.
type RunnerModel struct {
	engine  *engine.Engine
	session *session.Session
	index   int
	bar     components.StatusBar
	width   int
	height  int
}

// NewRunnerModel creates a runner over an active session.
func NewRunnerModel(eng *engine.Engine, s *session.Session) RunnerModel {
	return RunnerModel{
		engine:  eng,
		session: s,
		bar:     components.NewStatusBar(),
	}
}

// Init implements tea.Model.
func (m RunnerModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m RunnerModel) Update(msg tea.Msg) (RunnerModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch key := msg.String(); key {
		case "ctrl+c":
			m.session.Abandon()
			return m, tea.Quit
		case "esc":
			// Abandoning discards partial answers; the task keeps its status.
			m.session.Abandon()
			return m, func() tea.Msg { return msgs.GoToDashboardMsg{} }
		case "left", "h":
			if m.index > 0 {
				m.index--
			}
		case "right", "l":
			if m.index < len(m.session.Questions)-1 {
				m.index++
			}
		case "enter":
			if m.session.Complete() {
				return m, m.submit()
			}
		default:
			if value, ok := optionForKey(m.question(), key); ok {
				if err := m.session.Select(m.question().ID, value); err != nil {
					// Only possible once the session has ended; the keypress
					// raced the transition away from this view.
					logger.Warn("Selection for %s dropped: %v", m.question().ID, err)
					return m, nil
				}
				if m.index < len(m.session.Questions)-1 {
					m.index++
				}
			}
		}
	}
	return m, nil
}

// submit finishes the session and hands the answers to the coordinator. The
// result comes back as a message so the root model can route to the
// dashboard, where the toast and the GENERATING badge take over.
func (m RunnerModel) submit() tea.Cmd {
	eng := m.engine
	s := m.session
	taskID := s.Task.ID

	return func() tea.Msg {
		answers, err := s.Finish()
		if err == nil {
			err = eng.Submit(taskID, answers)
		}
		return msgs.SubmittedMsg{TaskID: taskID, Err: err}
	}
}

func (m RunnerModel) question() assessment.Question {
	return m.session.Questions[m.index]
}

// optionForKey maps a number key to an answer value for the question type.
func optionForKey(q assessment.Question, key string) (int, bool) {
	if len(key) != 1 || key[0] < '1' || key[0] > '9' {
		return 0, false
	}
	n := int(key[0] - '0')

	if q.Type == assessment.QuestionTypeChoice {
		if n > len(q.Options) {
			return 0, false
		}
		return n, true
	}
	if n > len(assessment.LikertOptions) {
		return 0, false
	}
	return n, true
}

// View implements tea.Model.
func (m RunnerModel) View() string {
	var b strings.Builder

	answered, total := m.session.Progress()
	q := m.question()

	b.WriteString(styles.SubtleStyle.Render(fmt.Sprintf("Question %d/%d", m.index+1, total)))
	b.WriteString("  ")
	b.WriteString(components.NewProgress(answered, total, 20).View())
	b.WriteString("\n\n")
	b.WriteString(styles.TitleStyle.Render(q.Text))
	b.WriteString("\n")

	b.WriteString(m.renderOptions(q))
	b.WriteString("\n")

	if m.session.Complete() {
		b.WriteString(styles.SuccessStyle.Render("All questions answered."))
		b.WriteString("\n")
	}

	hints := []string{"1-6: answer", "←/→: navigate", "esc: abandon"}
	if m.session.Complete() {
		hints = append([]string{"enter: submit"}, hints...)
	}
	b.WriteString("\n" + m.bar.Render(m.width, hints))

	return b.String()
}

func (m RunnerModel) renderOptions(q assessment.Question) string {
	var b strings.Builder
	selected, hasAnswer := m.session.Answered(q.ID)

	if q.Type == assessment.QuestionTypeChoice {
		for i, opt := range q.Options {
			b.WriteString(renderOption(i+1, opt, hasAnswer && selected == i+1))
		}
		return b.String()
	}

	for _, opt := range assessment.LikertOptions {
		b.WriteString(renderOption(opt.Value, opt.Label, hasAnswer && selected == opt.Value))
	}
	return b.String()
}

func renderOption(value int, label string, selected bool) string {
	line := fmt.Sprintf("  %d. %s", value, label)
	if selected {
		line = styles.SelectedStyle.Render(fmt.Sprintf("> %d. %s", value, label))
	}
	return line + "\n"
}
