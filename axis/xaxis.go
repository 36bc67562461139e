package axis

import (
	"fmt"
	"strings"
)

// XAxisConfig configures NewXAxis. MinData, MaxData, and Width are
// required; the rest default to their zero values. HideTicks replaces
// tick glyphs with plain line characters.
type XAxisConfig struct {
	MinData       float64
	MaxData       float64
	TickPadding   int
	MinTickMargin int
	Width         int
	TickValues    []float64 // optional, computed when empty
	TickLabels    []string  // optional, computed when empty
	Chars         Chars
	Styles        Styles
	HideTicks     bool
}

// XAxis lays out a horizontal axis as a row of character columns whose
// widths sum exactly to the requested width. Immutable after
// construction.
type XAxis struct {
	Ticks         *Ticks
	Width         int
	TickPadding   int
	TickMargin    int
	LeftPadding   int
	RightPadding  int
	TickPositions []int

	chars     Chars
	styles    Styles
	hideTicks bool
}

// NewXAxis validates the geometry, computes the tick set for the
// derived tick budget, and solves the column spacing.
func NewXAxis(cfg XAxisConfig) (*XAxis, error) {
	if cfg.TickPadding < 0 || cfg.MinTickMargin < 0 || cfg.Width < 0 {
		return nil, fmt.Errorf(
			"%w: tick padding %d, min tick margin %d, and width %d must not be negative",
			ErrGeometry, cfg.TickPadding, cfg.MinTickMargin, cfg.Width)
	}
	block := 2*cfg.TickPadding + 1
	if cfg.Width < block {
		return nil, fmt.Errorf("%w: width %d cannot fit a tick block of %d columns",
			ErrGeometry, cfg.Width, block)
	}
	maxTicks := 1 + (cfg.Width-block)/(block+cfg.MinTickMargin)
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
	totalTickSpace := count * block
	margin := 0
	if count > 1 {
		margin = (cfg.Width - totalTickSpace) / (count - 1)
	}
	if margin < 0 {
		margin = 0
	}
	taken := totalTickSpace + margin*(count-1)
	extra := cfg.Width - taken
	if extra < 0 {
		extra = 0
	}
	left := extra / 2
	right := extra - left
	positions := make([]int, count)
	for i := range positions {
		positions[i] = cfg.TickPadding + left + i*(margin+block)
	}
	return &XAxis{
		Ticks:         ticks,
		Width:         cfg.Width,
		TickPadding:   cfg.TickPadding,
		TickMargin:    margin,
		LeftPadding:   left,
		RightPadding:  right,
		TickPositions: positions,
		chars:         cfg.Chars,
		styles:        cfg.Styles,
		hideTicks:     cfg.HideTicks,
	}, nil
}

// Line returns the axis line as one segment per column: left padding,
// alternating tick blocks and margins, right padding.
func (x *XAxis) Line() []Segment {
	lineChar := x.chars.xLine()
	tickChar := x.chars.xTick()
	if x.hideTicks {
		tickChar = lineChar
	}
	pad := strings.Repeat(lineChar, x.TickPadding)
	margin := strings.Repeat(lineChar, x.TickMargin)
	segments := make([]Segment, 0, 2*len(x.TickPositions)+1)
	segments = append(segments, Segment{
		Text:  strings.Repeat(lineChar, x.LeftPadding),
		Style: x.styles.Line,
	})
	for i := range x.TickPositions {
		if i > 0 {
			segments = append(segments, Segment{Text: margin, Style: x.styles.Line})
		}
		segments = append(segments, Segment{Text: pad + tickChar + pad, Style: x.styles.Line})
	}
	return append(segments, Segment{
		Text:  strings.Repeat(lineChar, x.RightPadding),
		Style: x.styles.Line,
	})
}

// LabelRow returns the label row beneath the line: each tick block
// carries its label center-justified (truncated with an ellipsis when
// it overflows), every other column is filler.
func (x *XAxis) LabelRow() []Segment {
	fill := x.chars.xTickSpacing()
	block := 2*x.TickPadding + 1
	margin := strings.Repeat(fill, x.TickMargin)
	segments := make([]Segment, 0, 2*len(x.TickPositions)+1)
	segments = append(segments, Segment{
		Text:  strings.Repeat(fill, x.LeftPadding),
		Style: x.styles.Spacing,
	})
	for i := range x.TickPositions {
		if i > 0 {
			segments = append(segments, Segment{Text: margin, Style: x.styles.Spacing})
		}
		segments = append(segments, Segment{
			Text:  centerText(x.Ticks.Labels[i], block),
			Style: x.styles.Label,
		})
	}
	return append(segments, Segment{
		Text:  strings.Repeat(fill, x.RightPadding),
		Style: x.styles.Spacing,
	})
}

// centerText center-justifies s in width columns, truncating with an
// ellipsis when it does not fit.
func centerText(s string, width int) string {
	runes := []rune(s)
	if len(runes) > width {
		if width < 1 {
			return ""
		}
		return string(runes[:width-1]) + "…"
	}
	left := (width - len(runes)) / 2
	right := width - len(runes) - left
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
}
