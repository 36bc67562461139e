// Package axis computes tick positions and labels for terminal chart
// axes and lays them out as fixed-width rows of styled text. Tick
// values fall on powers-of-ten multiples of 1, 2, or 5, and labels are
// shortened with SI metric prefixes when the data calls for it.
package axis

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Validation errors returned by the constructors. All of them indicate
// a configuration mistake by the caller; none are transient.
var (
	ErrInvalidRange    = errors.New("axis: min data must be less than or equal to max data")
	ErrInvalidCount    = errors.New("axis: max ticks must be at least 1")
	ErrOrdering        = errors.New("axis: tick values must be in ascending order")
	ErrLabelMismatch   = errors.New("axis: tick values and tick labels differ in length")
	ErrGeometry        = errors.New("axis: geometry does not fit")
	ErrInvalidPosition = errors.New("axis: position must be left or right")
)

// Segment is one styled run of characters within an axis row. A row is
// a sequence of segments whose widths sum to the axis width.
type Segment struct {
	Text  string
	Style lipgloss.Style
}

// Render applies the segment's style to its text.
func (s Segment) Render() string {
	return s.Style.Render(s.Text)
}

// Width returns the number of terminal cells the segment occupies.
func (s Segment) Width() int {
	return lipgloss.Width(s.Text)
}

// Styles carries the lipgloss styles applied to emitted segments. The
// zero value renders unstyled text.
type Styles struct {
	Line    lipgloss.Style // axis lines and tick glyphs
	Label   lipgloss.Style // tick labels
	Spacing lipgloss.Style // filler between labels
}

// DefaultStyles returns the styles used by the charter CLI.
func DefaultStyles() Styles {
	return Styles{
		Line:  lipgloss.NewStyle().Foreground(lipgloss.Color("#CCBB44")),
		Label: lipgloss.NewStyle().Foreground(lipgloss.Color("#66CCEE")),
	}
}

// Chars overrides the glyphs used when drawing an axis. Zero-value
// fields fall back to the documented defaults.
type Chars struct {
	XLine        string // horizontal axis line, default "━"
	XTick        string // horizontal axis tick, default "┳"
	XTickSpacing string // filler between x labels, default " "
	YLine        string // vertical axis line, default "┃"
	LeftYTick    string // tick on a left-edge axis, default "┫"
	RightYTick   string // tick on a right-edge axis, default "┣"
	YTickSpacing string // filler around y labels, default " "
}

func (c Chars) xLine() string {
	if c.XLine == "" {
		return "━"
	}
	return c.XLine
}

func (c Chars) xTick() string {
	if c.XTick == "" {
		return "┳"
	}
	return c.XTick
}

func (c Chars) xTickSpacing() string {
	if c.XTickSpacing == "" {
		return " "
	}
	return c.XTickSpacing
}

func (c Chars) yLine() string {
	if c.YLine == "" {
		return "┃"
	}
	return c.YLine
}

func (c Chars) leftYTick() string {
	if c.LeftYTick == "" {
		return "┫"
	}
	return c.LeftYTick
}

func (c Chars) rightYTick() string {
	if c.RightYTick == "" {
		return "┣"
	}
	return c.RightYTick
}

func (c Chars) yTickSpacing() string {
	if c.YTickSpacing == "" {
		return " "
	}
	return c.YTickSpacing
}

// Position places a vertical axis on the left or right edge of a chart.
type Position int

const (
	Left Position = iota
	Right
)

func (p Position) String() string {
	switch p {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "invalid"
	}
}

// ParsePosition converts "left" or "right" into a Position.
func ParsePosition(s string) (Position, error) {
	switch s {
	case "left":
		return Left, nil
	case "right":
		return Right, nil
	default:
		return Left, fmt.Errorf("%w: %q", ErrInvalidPosition, s)
	}
}
