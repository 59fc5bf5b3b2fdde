package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"evalio/internal/tui/components"
	"evalio/internal/tui/msgs"
	"evalio/internal/tui/styles"
)

// LoginModel is the model for the login screen. Authentication is a server
// concern; any non-empty phone and password pair is accepted here.
type LoginModel struct {
	phone    textinput.Model
	password textinput.Model
	focus    int
	errorMsg string
	bar      components.StatusBar
	width    int
	height   int
}

// NewLoginModel creates a login model with the phone field focused.
func NewLoginModel() LoginModel {
	phone := textinput.New()
	phone.Placeholder = "Phone number"
	phone.CharLimit = 20
	phone.Focus()

	password := textinput.New()
	password.Placeholder = "Password"
	password.CharLimit = 64
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'

	return LoginModel{
		phone:    phone,
		password: password,
		bar:      components.NewStatusBar(),
	}
}

// Init implements tea.Model.
func (m LoginModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m LoginModel) Update(msg tea.Msg) (LoginModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "tab", "shift+tab", "up", "down":
			m.focus = (m.focus + 1) % 2
			if m.focus == 0 {
				m.phone.Focus()
				m.password.Blur()
			} else {
				m.phone.Blur()
				m.password.Focus()
			}
			return m, textinput.Blink
		case "enter":
			if strings.TrimSpace(m.phone.Value()) == "" || m.password.Value() == "" {
				m.errorMsg = "Enter both phone number and password"
				return m, nil
			}
			m.errorMsg = ""
			return m, func() tea.Msg { return msgs.LoggedInMsg{} }
		}
	}

	var cmd tea.Cmd
	if m.focus == 0 {
		m.phone, cmd = m.phone.Update(msg)
	} else {
		m.password, cmd = m.password.Update(msg)
	}
	return m, cmd
}

// View implements tea.Model.
func (m LoginModel) View() string {
	var b strings.Builder

	b.WriteString(styles.TitleStyle.Render("evalio"))
	b.WriteString("\n")
	b.WriteString(styles.SubtleStyle.Render("Sign in to see your assigned assessments"))
	b.WriteString("\n\n")
	b.WriteString(m.phone.View())
	b.WriteString("\n")
	b.WriteString(m.password.View())
	b.WriteString("\n")

	if m.errorMsg != "" {
		b.WriteString("\n" + styles.ErrorStyle.Render(m.errorMsg) + "\n")
	}

	content := styles.BoxStyle.Render(b.String())
	bar := m.bar.Render(m.width, []string{"tab: switch field", "enter: sign in", "ctrl+c: quit"})

	return lipgloss.JoinVertical(lipgloss.Left, content, "", bar)
}
