package axis

import (
	"fmt"
	"strings"
)

// YAxisConfig configures NewYAxis. Length is the axis height in rows;
// Width is the total character columns, one of which holds the tick
// glyph and the rest the label field.
type YAxisConfig struct {
	MinData       float64
	MaxData       float64
	MinTickMargin int
	Length        int
	Width         int
	Position      Position
	TickValues    []float64 // optional, computed when empty
	TickLabels    []string  // optional, computed when empty
	Chars         Chars
	Styles        Styles
	HideTicks     bool
}

// YAxis lays out a vertical axis top to bottom, with the largest tick
// value on the top row. Immutable after construction.
type YAxis struct {
	Ticks         *Ticks
	Length        int
	Width         int
	Position      Position
	TickMargin    int
	TopPadding    int
	BottomPadding int
	// TickPositions are row indices, top to bottom. The first entry is
	// the row of the largest tick value.
	TickPositions []int

	chars     Chars
	styles    Styles
	hideTicks bool
}

// NewYAxis validates the geometry, computes the tick set for the
// derived tick budget, and solves the row spacing.
func NewYAxis(cfg YAxisConfig) (*YAxis, error) {
	if cfg.MinTickMargin < 0 || cfg.Width < 0 || cfg.Length < 0 {
		return nil, fmt.Errorf(
			"%w: min tick margin %d, width %d, and length %d must not be negative",
			ErrGeometry, cfg.MinTickMargin, cfg.Width, cfg.Length)
	}
	if cfg.Position != Left && cfg.Position != Right {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidPosition, cfg.Position)
	}
	maxTicks := 1 + (cfg.Length-1)/(1+cfg.MinTickMargin)
	if maxTicks < 1 {
		maxTicks = 1
	}
	ticks, err := NewTicks(cfg.MinData, cfg.MaxData, maxTicks, TickOverrides{
		Values: cfg.TickValues,
		Labels: cfg.TickLabels,
	})
	if err != nil {
		return nil, err
	}
	count := len(ticks.Values)
	margin := 0
	if count > 1 {
		margin = (cfg.Length - count) / (count - 1)
	}
	if margin < 0 {
		margin = 0
	}
	taken := count + margin*(count-1)
	top := (cfg.Length - taken) / 2
	if top < 0 {
		top = 0
	}
	bottom := cfg.Length - taken - top
	if bottom < 0 {
		bottom = 0
	}
	positions := make([]int, count)
	for i := range positions {
		positions[i] = top + i*(margin+1)
	}
	return &YAxis{
		Ticks:         ticks,
		Length:        cfg.Length,
		Width:         cfg.Width,
		Position:      cfg.Position,
		TickMargin:    margin,
		TopPadding:    top,
		BottomPadding: bottom,
		TickPositions: positions,
		chars:         cfg.Chars,
		styles:        cfg.Styles,
		hideTicks:     cfg.HideTicks,
	}, nil
}

// tickChar returns the glyph for tick rows, honoring edge and
// HideTicks.
func (y *YAxis) tickChar() string {
	if y.hideTicks {
		return y.chars.yLine()
	}
	if y.Position == Right {
		return y.chars.rightYTick()
	}
	return y.chars.leftYTick()
}

// tickRows returns a lookup of row index to tick presence.
func (y *YAxis) tickRows() map[int]bool {
	rows := make(map[int]bool, len(y.TickPositions))
	for _, row := range y.TickPositions {
		rows[row] = true
	}
	return rows
}

// Column returns the axis line as one segment per row, Length rows in
// total. Rows holding a tick get the tick glyph, all others the plain
// line glyph.
func (y *YAxis) Column() []Segment {
	lineChar := y.chars.yLine()
	tickChar := y.tickChar()
	ticks := y.tickRows()
	segments := make([]Segment, y.Length)
	for row := range segments {
		char := lineChar
		if ticks[row] {
			char = tickChar
		}
		segments[row] = Segment{Text: char, Style: y.styles.Line}
	}
	return segments
}

// LabelColumn returns the label field as one segment per row, each
// Width-1 columns wide. Labels are placed top to bottom in descending
// value order at their tick rows; a label that overflows the field
// carries its remainder into following rows until a new tick row
// preempts it.
func (y *YAxis) LabelColumn() []Segment {
	fill := y.chars.yTickSpacing()
	field := y.Width - 1
	if field < 0 {
		field = 0
	}
	ticks := y.tickRows()
	labels := y.Ticks.Labels
	next := len(labels) - 1
	leftover := ""
	segments := make([]Segment, y.Length)
	for row := range segments {
		active := leftover
		if ticks[row] && next >= 0 {
			active = labels[next]
			next--
		}
		runes := []rune(active)
		if len(runes) > field {
			active = string(runes[:field])
			leftover = string(runes[field:])
		} else {
			leftover = ""
		}
		style := y.styles.Label
		if active == "" {
			style = y.styles.Spacing
		}
		segments[row] = Segment{
			Text:  active + strings.Repeat(fill, field-len([]rune(active))),
			Style: style,
		}
	}
	return segments
}

// Rows pairs the label field and tick column per row, ordered
// [label, tick] for a left axis and [tick, label] for a right axis.
func (y *YAxis) Rows() [][]Segment {
	line := y.Column()
	labels := y.LabelColumn()
	rows := make([][]Segment, y.Length)
	for row := range rows {
		if y.Position == Right {
			rows[row] = []Segment{line[row], labels[row]}
		} else {
			rows[row] = []Segment{labels[row], line[row]}
		}
	}
	return rows
}
