package commands

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/paw-lu/charter/charts"
	"github.com/paw-lu/charter/internal/tui"
)

type ChartCmd struct {
	File        string `arg:"" optional:"" help:"Data file; defaults to stdin. One y value per line, or \"x y\" pairs, with \"# name\" starting a new series."`
	Width       int    `help:"Chart width in columns; defaults to the terminal width." short:"w"`
	Height      int    `help:"Chart height in rows; defaults to width/4." short:"H"`
	Title       string `help:"Title printed above the chart." short:"t"`
	Interactive bool   `help:"Open the chart in an interactive viewer." short:"i"`
}

func (c *ChartCmd) Run(ctx *Context) error {
	var reader io.Reader = os.Stdin
	if c.File != "" {
		f, err := os.Open(c.File)
		if err != nil {
			return fmt.Errorf("opening data file: %w", err)
		}
		defer f.Close()
		reader = f
	}
	series, err := ReadSeries(reader)
	if err != nil {
		return fmt.Errorf("reading data: %w", err)
	}
	ctx.Log.Debugf("parsed %d series", len(series))

	if c.Interactive {
		program := tea.NewProgram(tui.NewModel(series, c.Title), tea.WithAltScreen())
		if _, err := program.Run(); err != nil {
			return fmt.Errorf("running viewer: %w", err)
		}
		return nil
	}

	width := c.Width
	if width == 0 {
		if termWidth, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && termWidth > 0 {
			width = termWidth
		} else {
			ctx.Log.Debugf("terminal size unavailable: %v", err)
			width = charts.DefaultWidth
		}
	}
	chart, err := charts.Scatter(series, width, c.Height)
	if err != nil {
		return err
	}
	if c.Title != "" {
		fmt.Println(lipgloss.NewStyle().Bold(true).Render(c.Title))
	}
	fmt.Println(chart)
	fmt.Println(charts.Legend(series))
	return nil
}
