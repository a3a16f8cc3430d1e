package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/guptarohit/asciigraph"

	"fitness-tracker/internal/service"
	"fitness-tracker/internal/workout"
)

// StatsModel is the session totals screen model
type StatsModel struct {
	session     *service.Session
	chartHeight int
}

// NewStatsModel creates a new stats model
func NewStatsModel(session *service.Session, chartHeight int) StatsModel {
	if chartHeight <= 0 {
		chartHeight = 8
	}
	return StatsModel{session: session, chartHeight: chartHeight}
}

// Init initializes the stats screen
func (m StatsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m StatsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return m, nil
}

// View renders the stats screen
func (m StatsModel) View() string {
	totals := m.session.Totals()
	if totals.Count == 0 {
		return "\n  No successful workouts to summarise."
	}

	var sections []string

	topRow := lipgloss.JoinHorizontal(lipgloss.Top, m.renderTotalsCard(totals), "  ", m.renderKindsCard(totals))
	sections = append(sections, topRow)

	// asciigraph needs at least two points to draw a line
	if series := m.session.CalorieSeries(); len(series) > 1 {
		sections = append(sections, m.renderChart(series))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m StatsModel) renderTotalsCard(t service.Totals) string {
	title := cardTitleStyle.Render("Session Totals")

	lines := []string{
		RenderMetric("Workouts", fmt.Sprintf("%d", t.Count)),
		RenderMetric("Duration", humanize.FormatFloat("#,###.###", t.Duration)+" h"),
		RenderMetric("Distance", humanize.FormatFloat("#,###.###", t.Distance)+" km"),
		RenderMetric("Mean speed", humanize.FormatFloat("#,###.###", t.MeanSpeed)+" km/h"),
		RenderMetric("Calories", humanize.FormatFloat("#,###.###", t.Calories)),
		RenderMetric("Best session", humanize.FormatFloat("#,###.###", t.MaxCalories)),
	}

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return cardStyle.Width(42).Render(lipgloss.JoinVertical(lipgloss.Left, title, content))
}

func (m StatsModel) renderKindsCard(t service.Totals) string {
	title := cardTitleStyle.Render("By Type")

	var lines []string
	for _, k := range workout.Kinds() {
		lines = append(lines, RenderMetric(k.String(), fmt.Sprintf("%d", t.ByKind[k])))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return cardStyle.Width(34).Render(lipgloss.JoinVertical(lipgloss.Left, title, content))
}

func (m StatsModel) renderChart(series []float64) string {
	title := cardTitleStyle.Render("Calories per Workout")

	graph := asciigraph.Plot(series,
		asciigraph.Height(m.chartHeight),
		asciigraph.Width(60),
		asciigraph.Precision(1),
	)

	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, graph))
}
