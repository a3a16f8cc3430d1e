package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"fitness-tracker/internal/service"
)

// WorkoutsModel is the workouts list screen model
type WorkoutsModel struct {
	session *service.Session
	cursor  int
}

// NewWorkoutsModel creates a new workouts list model
func NewWorkoutsModel(session *service.Session) WorkoutsModel {
	return WorkoutsModel{session: session}
}

// OpenWorkoutDetailMsg asks the app to show one result
type OpenWorkoutDetailMsg struct {
	Index int
}

// Init initializes the workouts screen
func (m WorkoutsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m WorkoutsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.session.Results)-1 {
				m.cursor++
			}
		case "home", "g":
			m.cursor = 0
		case "end", "G":
			if n := len(m.session.Results); n > 0 {
				m.cursor = n - 1
			}
		case "enter":
			if m.cursor < len(m.session.Results) {
				index := m.cursor
				return m, func() tea.Msg {
					return OpenWorkoutDetailMsg{Index: index}
				}
			}
		}
	}
	return m, nil
}

// View renders the workouts list
func (m WorkoutsModel) View() string {
	if len(m.session.Results) == 0 {
		return "\n  No workout packages. Pass -config with a batch file."
	}

	var sections []string

	title := cardTitleStyle.Render(fmt.Sprintf("Workouts (%d processed, %d rejected)",
		len(m.session.Results), len(m.session.Failed())))
	sections = append(sections, title)

	header := tableHeaderStyle.Render(fmt.Sprintf("   %-3s  %-14s  %8s  %9s  %10s  %10s",
		"#", "Type", "Duration", "Distance", "Speed", "Calories"))
	sections = append(sections, header)

	for i, r := range m.session.Results {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}

		var row string
		if r.OK() {
			s := r.Summary
			row = fmt.Sprintf("%s%-3d  %-14s  %7.3fh  %7.3fkm  %5.3fkm/h  %10.3f",
				cursor, r.Index+1, s.Label, s.Duration, s.Distance, s.MeanSpeed, s.Calories)
		} else {
			row = fmt.Sprintf("%s%-3d  %-14s  %s",
				cursor, r.Index+1, truncate(r.Package.Kind, 14), "rejected")
		}

		switch {
		case i == m.cursor:
			sections = append(sections, tableSelectedStyle.Render(row))
		case !r.OK():
			sections = append(sections, tableRowStyle.Inherit(errorStyle).Render(row))
		default:
			sections = append(sections, tableRowStyle.Render(row))
		}
	}

	help := statusStyle.Render("\n  enter: view details  j/k: navigate  g/G: first/last")
	sections = append(sections, help)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}
