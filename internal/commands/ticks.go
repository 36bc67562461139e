package commands

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v2"

	"github.com/paw-lu/charter/axis"
	"github.com/paw-lu/charter/internal/tables"
)

type TicksCmd struct {
	Min      float64 `arg:"" help:"Minimum of the data range."`
	Max      float64 `arg:"" help:"Maximum of the data range."`
	MaxTicks int     `help:"Upper bound on the number of ticks." default:"10"`
	Width    int     `help:"Axis width in columns for graph output." default:"80"`
	Output   string  `name:"output" short:"o" help:"Output format." default:"graph" enum:"graph,json,yaml,table"`
}

// tickReport is the serializable view of a computed tick set.
type tickReport struct {
	Values          []float64 `json:"values" yaml:"values"`
	Labels          []string  `json:"labels" yaml:"labels"`
	AxisPower       int       `json:"axis_power" yaml:"axis_power"`
	Subtractor      float64   `json:"subtractor" yaml:"subtractor"`
	DivisorPower    int       `json:"divisor_power" yaml:"divisor_power"`
	SubtractorLabel string    `json:"subtractor_label,omitempty" yaml:"subtractor_label,omitempty"`
}

func (t *TicksCmd) Run(ctx *Context) error {
	if t.Output == "graph" {
		return t.renderGraph(ctx)
	}
	ticks, err := axis.NewTicks(t.Min, t.Max, t.MaxTicks, axis.TickOverrides{})
	if err != nil {
		return err
	}
	ctx.Log.Debugf("computed %d ticks", len(ticks.Values))
	report := tickReport{
		Values:          ticks.Values,
		Labels:          ticks.Labels,
		AxisPower:       ticks.AxisPower,
		Subtractor:      ticks.Subtractor,
		DivisorPower:    ticks.DivisorPower,
		SubtractorLabel: ticks.SubtractorLabel,
	}
	switch t.Output {
	case "json":
		out, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
	case "yaml":
		out, err := yaml.Marshal(report)
		if err != nil {
			return err
		}
		fmt.Print(string(out))
	case "table":
		return tables.Show(ticks)
	}
	return nil
}

// renderGraph prints the tick row and label row of a horizontal axis
// sized to the requested width. The tick budget comes from the width,
// not --max-ticks.
func (t *TicksCmd) renderGraph(ctx *Context) error {
	xaxis, err := axis.NewXAxis(axis.XAxisConfig{
		MinData:       t.Min,
		MaxData:       t.Max,
		TickPadding:   3,
		MinTickMargin: 1,
		Width:         t.Width,
		Styles:        axis.DefaultStyles(),
	})
	if err != nil {
		return err
	}
	ctx.Log.Debugf("laid out %d ticks across %d columns", len(xaxis.Ticks.Values), t.Width)
	for _, segment := range xaxis.Line() {
		fmt.Print(segment.Render())
	}
	fmt.Println()
	for _, segment := range xaxis.LabelRow() {
		fmt.Print(segment.Render())
	}
	fmt.Println()
	if label := xaxis.Ticks.SubtractorLabel; label != "" {
		fmt.Printf("offset: %s\n", label)
	}
	return nil
}
