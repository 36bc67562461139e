// Package charts composes axis layouts into full terminal charts.
package charts

import (
	"fmt"
	"math"
	"strings"

	"github.com/NimbleMarkets/ntcharts/canvas/runes"

	"github.com/paw-lu/charter/axis"
)

// Series is one named sequence of points. When XS is empty, the YS
// values plot against their indices.
type Series struct {
	Name string
	XS   []float64
	YS   []float64
}

func (s Series) x(i int) float64 {
	if len(s.XS) == 0 {
		return float64(i)
	}
	return s.XS[i]
}

// Scatter renders the series as a width x height block of text with a
// left y-axis and a bottom x-axis. The returned string has height+2
// lines, plus one line per nonzero axis offset.
func Scatter(series []Series, width, height int) (string, error) {
	minX, maxX, minY, maxY, ok := bounds(series)
	if !ok {
		return "", fmt.Errorf("charts: no data points to plot")
	}
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = max(width/HeightRatio, MinHeight)
	}
	styles := axis.DefaultStyles()

	// First pass learns the label lengths so the label field can be
	// sized to fit them.
	probe, err := axis.NewYAxis(axis.YAxisConfig{
		MinData:       minY,
		MaxData:       maxY,
		MinTickMargin: YAxisMinTickMargin,
		Length:        height,
		Width:         1,
		Position:      axis.Left,
	})
	if err != nil {
		return "", err
	}
	labelWidth := 0
	for _, label := range probe.Ticks.Labels {
		if n := len([]rune(label)); n > labelWidth {
			labelWidth = n
		}
	}
	yaxis, err := axis.NewYAxis(axis.YAxisConfig{
		MinData:       minY,
		MaxData:       maxY,
		MinTickMargin: YAxisMinTickMargin,
		Length:        height,
		Width:         labelWidth + 1,
		Position:      axis.Left,
		Styles:        styles,
	})
	if err != nil {
		return "", err
	}

	plotWidth := width - yaxis.Width
	if plotWidth < 1 {
		return "", fmt.Errorf("%w: width %d leaves no plot area beside the y labels",
			axis.ErrGeometry, width)
	}
	padding := XAxisTickPadding
	if plotWidth < 2*padding+1 {
		padding = (plotWidth - 1) / 2
	}
	xaxis, err := axis.NewXAxis(axis.XAxisConfig{
		MinData:       minX,
		MaxData:       maxX,
		TickPadding:   padding,
		MinTickMargin: XAxisMinTickMargin,
		Width:         plotWidth,
		Styles:        styles,
	})
	if err != nil {
		return "", err
	}

	grid := make([][]string, height)
	for row := range grid {
		grid[row] = make([]string, plotWidth)
		for col := range grid[row] {
			grid[row][col] = " "
		}
	}
	point := string(runes.FullBlock)
	for i, s := range series {
		styled := SeriesStyle(i).Render(point)
		for j := range s.YS {
			col := columnFor(s.x(j), xaxis)
			row := rowFor(s.YS[j], yaxis)
			if col >= 0 && col < plotWidth && row >= 0 && row < height {
				grid[row][col] = styled
			}
		}
	}

	var b strings.Builder
	yrows := yaxis.Rows()
	for row := 0; row < height; row++ {
		for _, segment := range yrows[row] {
			b.WriteString(segment.Render())
		}
		b.WriteString(strings.Join(grid[row], ""))
		b.WriteString("\n")
	}
	gutter := strings.Repeat(" ", yaxis.Width)
	b.WriteString(gutter)
	for _, segment := range xaxis.Line() {
		b.WriteString(segment.Render())
	}
	b.WriteString("\n")
	b.WriteString(gutter)
	for _, segment := range xaxis.LabelRow() {
		b.WriteString(segment.Render())
	}
	if label := yaxis.Ticks.SubtractorLabel; label != "" {
		b.WriteString("\n")
		b.WriteString(styles.Label.Render("y offset: " + label))
	}
	if label := xaxis.Ticks.SubtractorLabel; label != "" {
		b.WriteString("\n")
		b.WriteString(styles.Label.Render("x offset: " + label))
	}
	return b.String(), nil
}

// Legend returns one line per series, a colored point glyph followed
// by the series name.
func Legend(series []Series) string {
	var b strings.Builder
	for i, s := range series {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(SeriesStyle(i).Render(fmt.Sprintf("%c %s", runes.FullBlock, s.Name)))
	}
	return b.String()
}

// bounds sweeps every point for the data extents.
func bounds(series []Series) (minX, maxX, minY, maxY float64, ok bool) {
	minX, maxX = math.MaxFloat64, -math.MaxFloat64
	minY, maxY = math.MaxFloat64, -math.MaxFloat64
	for _, s := range series {
		for i, y := range s.YS {
			x := s.x(i)
			if x < minX {
				minX = x
			}
			if x > maxX {
				maxX = x
			}
			if y < minY {
				minY = y
			}
			if y > maxY {
				maxY = y
			}
			ok = true
		}
	}
	return minX, maxX, minY, maxY, ok
}

// columnFor interpolates a data value between the first and last tick
// columns.
func columnFor(value float64, xaxis *axis.XAxis) int {
	values := xaxis.Ticks.Values
	first, last := values[0], values[len(values)-1]
	positions := xaxis.TickPositions
	firstCol, lastCol := positions[0], positions[len(positions)-1]
	if last == first {
		return firstCol
	}
	return firstCol + int(math.Round((value-first)/(last-first)*float64(lastCol-firstCol)))
}

// rowFor interpolates a data value between the top and bottom tick
// rows; the top row holds the largest tick value.
func rowFor(value float64, yaxis *axis.YAxis) int {
	values := yaxis.Ticks.Values
	bottom, top := values[0], values[len(values)-1]
	positions := yaxis.TickPositions
	topRow, bottomRow := positions[0], positions[len(positions)-1]
	if top == bottom {
		return topRow
	}
	return topRow + int(math.Round((top-value)/(top-bottom)*float64(bottomRow-topRow)))
}
