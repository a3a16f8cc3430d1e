package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"fitness-tracker/internal/service"
	"fitness-tracker/internal/workout"
)

// DetailModel shows one processed package
type DetailModel struct {
	result   service.Result
	viewport viewport.Model
	width    int
	height   int
	ready    bool
}

// NewDetailModel creates a new detail model
func NewDetailModel(result service.Result, width, height int) DetailModel {
	m := DetailModel{
		result: result,
		width:  width,
		height: height,
	}

	if width > 0 && height > 0 {
		m.viewport = viewport.New(width, height-6) // Reserve space for header/footer
		m.viewport.SetContent(m.renderContent())
		m.ready = true
	}

	return m
}

// Init initializes the detail screen
func (m DetailModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m DetailModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-6)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - 6
		}
		m.viewport.SetContent(m.renderContent())
	}

	// Handle viewport scrolling
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the detail screen
func (m DetailModel) View() string {
	footer := statusStyle.Render("  esc: back to list  j/k or arrows: scroll")

	if !m.ready {
		return lipgloss.JoinVertical(lipgloss.Left, m.renderContent(), footer)
	}

	return lipgloss.JoinVertical(lipgloss.Left, m.viewport.View(), footer)
}

func (m DetailModel) renderContent() string {
	r := m.result
	var sections []string

	title := cardTitleStyle.Render(fmt.Sprintf("Package %d: %s", r.Index+1, r.Package.Kind))
	sections = append(sections, title)

	sections = append(sections, m.renderInputs())

	if !r.OK() {
		sections = append(sections, errorStyle.Render("Rejected: "+r.Err.Error()))
		return lipgloss.JoinVertical(lipgloss.Left, sections...)
	}

	s := r.Summary
	metrics := lipgloss.JoinVertical(lipgloss.Left,
		RenderMetric("Type", s.Label),
		RenderMetric("Duration", fmt.Sprintf("%.3f h", s.Duration)),
		RenderMetric("Distance", fmt.Sprintf("%.3f km", s.Distance)),
		RenderMetric("Mean speed", fmt.Sprintf("%.3f km/h", s.MeanSpeed)),
		RenderMetric("Calories", fmt.Sprintf("%.3f kcal", s.Calories)),
		RenderMetric("Step length", fmt.Sprintf("%.2f m", r.Workout.Kind().StepLength())),
	)
	sections = append(sections, cardStyle.Render(metrics))

	sections = append(sections, "", successStyle.Render(s.Message()))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m DetailModel) renderInputs() string {
	var lines []string
	lines = append(lines, sectionStyle.Render("Sensor fields"))

	if m.result.OK() {
		rec := m.result.Workout.Record()
		lines = append(lines,
			"  "+RenderMetric("Actions", fmt.Sprintf("%d", rec.Actions())),
			"  "+RenderMetric("Duration", fmt.Sprintf("%g h", rec.Duration())),
			"  "+RenderMetric("Weight", fmt.Sprintf("%g kg", rec.Weight())),
		)
		switch m.result.Workout.Kind() {
		case workout.Walking:
			lines = append(lines, "  "+RenderMetric("Height", fmt.Sprintf("%g cm", rec.Height())))
		case workout.Swimming:
			lines = append(lines,
				"  "+RenderMetric("Pool length", fmt.Sprintf("%g m", rec.LengthPool())),
				"  "+RenderMetric("Pool laps", fmt.Sprintf("%d", rec.CountPool())),
			)
		}
		return strings.Join(lines, "\n") + "\n"
	}

	// rejected packages only have the raw values
	for i, v := range m.result.Package.Fields {
		lines = append(lines, "  "+RenderMetric(fmt.Sprintf("field %d", i+1), fmt.Sprintf("%g", v)))
	}
	if len(m.result.Package.Fields) == 0 {
		lines = append(lines, "  (none)")
	}

	return strings.Join(lines, "\n") + "\n"
}
