package tables

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	teatable "github.com/evertras/bubble-table/table"

	"github.com/paw-lu/charter/axis"
)

// Model wraps a filterable table of computed tick values and labels.
type Model struct {
	table           teatable.Model
	filterTextInput textinput.Model
}

// New builds the tick table for a computed tick set.
func New(ticks *axis.Ticks) Model {
	longestValue := len("Value")
	longestLabel := len("Label")
	rows := make([]teatable.Row, 0, len(ticks.Values))
	for i, value := range ticks.Values {
		formatted := strconv.FormatFloat(value, 'g', -1, 64)
		if len(formatted) > longestValue {
			longestValue = len(formatted)
		}
		if len(ticks.Labels[i]) > longestLabel {
			longestLabel = len(ticks.Labels[i])
		}
		rows = append(rows, teatable.NewRow(teatable.RowData{
			"tick":  strconv.Itoa(i),
			"value": formatted,
			"label": ticks.Labels[i],
		}))
	}

	columns := []teatable.Column{
		teatable.NewColumn("tick", "Tick", 6),
		teatable.NewColumn("value", "Value", longestValue+1).WithFiltered(true),
		teatable.NewColumn("label", "Label", longestLabel+1).WithFiltered(true),
	}

	return Model{
		table: teatable.
			New(columns).
			Filtered(true).
			Focused(true).
			WithFooterVisibility(true).
			WithPageSize(10).
			WithRows(rows),
		filterTextInput: textinput.New(),
	}
}

// Show runs the tick table as its own program until the user quits.
func Show(ticks *axis.Ticks) error {
	_, err := tea.NewProgram(New(ticks)).Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		cmd  tea.Cmd
		cmds []tea.Cmd
	)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		// global
		if msg.String() == "ctrl+c" {
			cmds = append(cmds, tea.Quit)

			return m, tea.Batch(cmds...)
		}
		// event to filter
		if m.filterTextInput.Focused() {
			if msg.String() == "enter" {
				m.filterTextInput.Blur()
			} else {
				m.filterTextInput, _ = m.filterTextInput.Update(msg)
			}
			m.table = m.table.WithFilterInput(m.filterTextInput)

			return m, tea.Batch(cmds...)
		}

		// others component
		switch msg.String() {
		case "/":
			m.filterTextInput.Focus()
		case "q":
			cmds = append(cmds, tea.Quit)
			return m, tea.Batch(cmds...)
		default:
			m.table, cmd = m.table.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	body := strings.Builder{}

	body.WriteString(m.table.View())
	body.WriteString("\nPress / + letters to start filtering, and q or ctrl+c to quit")

	return body.String()
}
