// Package tui holds the interactive chart viewer.
package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/paw-lu/charter/charts"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	helpStyle  = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("252")).
			Padding(0, 1)
)

// Model renders a chart that follows the terminal size.
type Model struct {
	series []charts.Series
	title  string

	width  int
	height int
}

// NewModel creates a viewer for the parsed series.
func NewModel(series []charts.Series, title string) Model {
	return Model{
		series: series,
		title:  title,
	}
}

func (Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m Model) View() string {
	if m.width == 0 {
		return "Measuring terminal..."
	}

	var s strings.Builder
	if m.title != "" {
		s.WriteString(titleStyle.Render(m.title))
		s.WriteString("\n")
	}

	// Leave room for the title, the legend, and the help bar.
	chartHeight := m.height - len(m.series) - 4
	if m.title != "" {
		chartHeight--
	}
	chart, err := charts.Scatter(m.series, m.width-2, chartHeight)
	if err != nil {
		s.WriteString(errorStyle.Render("Error: ") + err.Error())
		s.WriteString("\n")
	} else {
		s.WriteString(chart)
		s.WriteString("\n")
		s.WriteString(charts.Legend(m.series))
		s.WriteString("\n")
	}

	s.WriteString(helpStyle.Width(m.width).Render("q: quit"))
	return s.String()
}
