// Package tui implements the interactive interface: login, dashboard, task
// intro, assessment runner and report browser, all driven by one engine.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"evalio/internal/config"
	"evalio/internal/engine"
	"evalio/internal/logger"
	"evalio/internal/tui/msgs"
	"evalio/internal/tui/views"
)

// View represents the different screens in the TUI.
type View int

const (
	ViewLogin View = iota
	ViewDashboard
	ViewIntro
	ViewRunner
	ViewReports
)

// Model is the main Bubble Tea model that orchestrates all views. The engine
// exists only between login and logout.
type Model struct {
	cfg         *config.Config
	currentView View
	engine      *engine.Engine

	login     views.LoginModel
	dashboard views.DashboardModel
	intro     views.IntroModel
	runner    views.RunnerModel
	reports   views.ReportsModel

	width  int
	height int
}

// Run starts the TUI application.
func Run(cfg *config.Config) error {
	p := tea.NewProgram(
		NewModel(cfg),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}

// NewModel creates the root model showing the login screen.
func NewModel(cfg *config.Config) Model {
	return Model{
		cfg:         cfg,
		currentView: ViewLogin,
		login:       views.NewLoginModel(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return m.login.Init()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		// Fall through to the current view so it can adopt the new size.

	case msgs.LoggedInMsg:
		m.engine = engine.New(m.cfg)
		m.dashboard = views.NewDashboardModel(m.engine)
		m.currentView = ViewDashboard
		return m.resizeCurrent(m.dashboard.Init())

	case msgs.LogoutMsg:
		if m.engine != nil {
			m.engine.Close()
			m.engine = nil
		}
		m.login = views.NewLoginModel()
		m.currentView = ViewLogin
		return m.resizeCurrent(m.login.Init())

	case msgs.GoToDashboardMsg:
		m.dashboard = views.NewDashboardModel(m.engine)
		m.currentView = ViewDashboard
		return m.resizeCurrent(m.dashboard.Init())

	case msgs.GoToReportsMsg:
		m.reports = views.NewReportsModel(m.engine)
		m.currentView = ViewReports
		return m.resizeCurrent(m.reports.Init())

	case msgs.OpenTaskMsg:
		task, err := m.engine.Task(msg.TaskID)
		if err != nil {
			logger.Error("Failed to open task %s: %v", msg.TaskID, err)
			return m, nil
		}
		m.intro = views.NewIntroModel(task)
		m.currentView = ViewIntro
		return m.resizeCurrent(m.intro.Init())

	case msgs.StartAssessmentMsg:
		s, err := m.engine.BeginSession(msg.TaskID)
		if err != nil {
			logger.Error("Failed to begin session for task %s: %v", msg.TaskID, err)
			return m, nil
		}
		m.runner = views.NewRunnerModel(m.engine, s)
		m.currentView = ViewRunner
		return m.resizeCurrent(m.runner.Init())

	case msgs.SubmittedMsg:
		if msg.Err != nil {
			logger.Error("Submission failed for task %s: %v", msg.TaskID, msg.Err)
		}
		// Either way the user lands on the dashboard; on success the toast
		// and the GENERATING badge carry the feedback from there.
		m.dashboard = views.NewDashboardModel(m.engine)
		m.currentView = ViewDashboard
		return m.resizeCurrent(m.dashboard.Init())
	}

	return m.updateCurrent(msg)
}

// updateCurrent forwards a message to the active view's model.
func (m Model) updateCurrent(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.currentView {
	case ViewLogin:
		m.login, cmd = m.login.Update(msg)
	case ViewDashboard:
		m.dashboard, cmd = m.dashboard.Update(msg)
	case ViewIntro:
		m.intro, cmd = m.intro.Update(msg)
	case ViewRunner:
		m.runner, cmd = m.runner.Update(msg)
	case ViewReports:
		m.reports, cmd = m.reports.Update(msg)
	}
	return m, cmd
}

// resizeCurrent replays the last window size into a freshly created view and
// batches its init command.
func (m Model) resizeCurrent(init tea.Cmd) (tea.Model, tea.Cmd) {
	if m.width == 0 && m.height == 0 {
		return m, init
	}
	resized, _ := m.updateCurrent(tea.WindowSizeMsg{Width: m.width, Height: m.height})
	return resized, init
}

// View implements tea.Model.
func (m Model) View() string {
	switch m.currentView {
	case ViewLogin:
		return m.login.View()
	case ViewDashboard:
		return m.dashboard.View()
	case ViewIntro:
		return m.intro.View()
	case ViewRunner:
		return m.runner.View()
	case ViewReports:
		return m.reports.View()
	}
	return ""
}
