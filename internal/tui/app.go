package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"fitness-tracker/internal/config"
	"fitness-tracker/internal/service"
)

// Screen identifiers
type Screen int

const (
	ScreenWorkouts Screen = iota
	ScreenDetail
	ScreenStats
	ScreenHelp
)

// App is the root Bubble Tea model
type App struct {
	screen     Screen
	prevScreen Screen

	// Screen models
	workouts WorkoutsModel
	detail   DetailModel
	stats    StatsModel
	help     HelpModel

	session *service.Session

	// Window dimensions
	width  int
	height int
}

// NewApp creates a new App over an already processed session
func NewApp(session *service.Session, display config.DisplayConfig) *App {
	return &App{
		screen:   ScreenWorkouts,
		session:  session,
		workouts: NewWorkoutsModel(session),
		stats:    NewStatsModel(session, display.ChartHeight),
		help:     NewHelpModel(),
	}
}

// Screen returns the active screen
func (a *App) Screen() Screen {
	return a.screen
}

// Init initializes the app
func (a *App) Init() tea.Cmd {
	return a.workouts.Init()
}

// Update handles messages
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return a, tea.Quit
		case "1":
			a.screen = ScreenWorkouts
			return a, nil
		case "2":
			a.screen = ScreenStats
			return a, nil
		case "?":
			if a.screen != ScreenHelp {
				a.prevScreen = a.screen
				a.screen = ScreenHelp
			}
			return a, nil
		case "esc":
			switch a.screen {
			case ScreenHelp:
				a.screen = a.prevScreen
				return a, nil
			case ScreenDetail:
				a.screen = ScreenWorkouts
				return a, nil
			}
		}

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height

	case OpenWorkoutDetailMsg:
		if msg.Index >= 0 && msg.Index < len(a.session.Results) {
			a.detail = NewDetailModel(a.session.Results[msg.Index], a.width, a.height)
			a.screen = ScreenDetail
			return a, a.detail.Init()
		}
		return a, nil
	}

	// Delegate to current screen
	var cmd tea.Cmd
	switch a.screen {
	case ScreenWorkouts:
		var m tea.Model
		m, cmd = a.workouts.Update(msg)
		a.workouts = m.(WorkoutsModel)
	case ScreenDetail:
		var m tea.Model
		m, cmd = a.detail.Update(msg)
		a.detail = m.(DetailModel)
	case ScreenStats:
		var m tea.Model
		m, cmd = a.stats.Update(msg)
		a.stats = m.(StatsModel)
	case ScreenHelp:
		var m tea.Model
		m, cmd = a.help.Update(msg)
		a.help = m.(HelpModel)
	}

	return a, cmd
}

// View renders the app
func (a *App) View() string {
	header := a.renderHeader()
	nav := a.renderNav()

	var content string
	switch a.screen {
	case ScreenWorkouts:
		content = a.workouts.View()
	case ScreenDetail:
		content = a.detail.View()
	case ScreenStats:
		content = a.stats.View()
	case ScreenHelp:
		content = a.help.View()
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, nav, content, a.renderFooter())
}

func (a *App) renderHeader() string {
	return headerStyle.Render("Fitness Tracker")
}

func (a *App) renderNav() string {
	items := []struct {
		key    string
		label  string
		screen Screen
	}{
		{"1", "Workouts", ScreenWorkouts},
		{"2", "Stats", ScreenStats},
		{"?", "Help", ScreenHelp},
	}

	var nav string
	for i, item := range items {
		if i > 0 {
			nav += "  "
		}

		label := "[" + item.key + "] " + item.label
		if a.screen == item.screen {
			nav += navActiveStyle.Render(label)
		} else {
			nav += navInactiveStyle.Render(label)
		}
	}

	nav += "  " + navInactiveStyle.Render("[q] Quit")

	return navStyle.Render(nav)
}

func (a *App) renderFooter() string {
	return statusStyle.Render("run " + a.session.RunID.String())
}
