package charts

const (
	// HeightRatio determines chart height as width/HeightRatio.
	HeightRatio = 4

	// MinHeight is the floor for chart height.
	MinHeight = 8

	// DefaultWidth is used when the terminal size is unknown.
	DefaultWidth = 80

	// XAxisTickPadding reserves columns on either side of an x tick
	// for its label.
	XAxisTickPadding = 3

	// XAxisMinTickMargin is the minimum spacing between x tick blocks.
	XAxisMinTickMargin = 1

	// YAxisMinTickMargin is the minimum spacing between y tick rows.
	YAxisMinTickMargin = 2
)
