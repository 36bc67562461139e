package axis

import (
	"fmt"
	"math"
	"strconv"
)

// Ticks holds the tick positions and labels for one axis dimension.
// Every derived field is computed once at construction; the value is
// immutable afterwards.
type Ticks struct {
	// MinData and MaxData are the data bounds the ticks cover.
	MinData float64
	MaxData float64
	// MaxTicks is the caller's upper bound on the tick count.
	MaxTicks int
	// Values are the tick positions in ascending order.
	Values []float64
	// AxisPower is the nearest multiple-of-3 power of ten of the
	// largest tick, used to pick its SI prefix.
	AxisPower int
	// Subtractor is subtracted from every tick before formatting. It
	// is nonzero when the ticks share many leading digits.
	Subtractor float64
	// DivisorPower is the power of ten ticks are divided by after
	// subtraction.
	DivisorPower int
	// Labels are the formatted tick labels, one per value.
	Labels []string
	// SubtractorLabel renders the subtracted amount with its own
	// metric prefix. Empty when Subtractor is zero.
	SubtractorLabel string
}

// TickOverrides supplies precomputed tick values or labels to NewTicks
// in place of the generated ones. When both are set they must have
// equal length.
type TickOverrides struct {
	Values []float64
	Labels []string
}

// NewTicks computes the ticks for the range [minData, maxData] with at
// most maxTicks positions.
func NewTicks(minData, maxData float64, maxTicks int, overrides TickOverrides) (*Ticks, error) {
	values := overrides.Values
	if len(values) == 0 {
		var err error
		values, err = GenerateTickValues(minData, maxData, maxTicks)
		if err != nil {
			return nil, err
		}
	} else {
		if minData > maxData {
			return nil, fmt.Errorf("%w: %v > %v", ErrInvalidRange, minData, maxData)
		}
		if maxTicks < 1 {
			return nil, fmt.Errorf("%w: got %d", ErrInvalidCount, maxTicks)
		}
	}
	subtractor, divisorPower, err := LabelScale(values)
	if err != nil {
		return nil, err
	}
	labels := overrides.Labels
	if len(labels) == 0 {
		labels = FormatTickLabels(values, subtractor, divisorPower)
	}
	if len(values) != len(labels) {
		return nil, fmt.Errorf("%w: %d values and %d labels",
			ErrLabelMismatch, len(values), len(labels))
	}
	axisPower := ClosestPrefixPower(values[len(values)-1])
	t := &Ticks{
		MinData:      minData,
		MaxData:      maxData,
		MaxTicks:     maxTicks,
		Values:       values,
		AxisPower:    axisPower,
		Subtractor:   subtractor,
		DivisorPower: divisorPower,
		Labels:       labels,
	}
	if subtractor != 0 {
		t.SubtractorLabel = strconv.FormatFloat(
			subtractor/math.Pow(10, float64(axisPower)), 'f', 2, 64,
		) + MetricPrefix(axisPower)
	}
	return t, nil
}

// Breakpoint tables for rounding data ranges and tick steps to
// intuitive 1-2-5 magnitudes.
var (
	rangeLimits = []float64{1.5, 3, 7}
	stepLimits  = []float64{1, 2, 5}
	roundTerms  = []float64{1, 2, 5}
)

// GenerateTickValues returns ascending tick positions covering
// [minData, maxData] with at most maxTicks entries. Ticks land on
// powers-of-ten multiples of 1, 2, or 5 and bracket the data bounds,
// except in the fallback case where the padded range would need more
// ticks than allowed and the data bounds are split evenly instead.
func GenerateTickValues(minData, maxData float64, maxTicks int) ([]float64, error) {
	if minData > maxData {
		return nil, fmt.Errorf("%w: %v > %v", ErrInvalidRange, minData, maxData)
	}
	if maxTicks < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCount, maxTicks)
	}
	if minData == maxData {
		return []float64{minData}, nil
	}
	if maxTicks == 1 {
		return []float64{(minData + maxData) / 2}, nil
	}
	dataRange := maxData - minData
	roundedRange := roundNumber(dataRange, rangeLimits, roundTerms, false)
	spacing := roundedRange / float64(maxTicks-1)
	tickSpacing := roundNumber(spacing, stepLimits, roundTerms, true)
	firstTick := math.Floor(minData/tickSpacing) * tickSpacing
	lastTick := math.Ceil(maxData/tickSpacing) * tickSpacing
	count := int(math.Ceil((lastTick-firstTick)/tickSpacing)) + 1
	if count > maxTicks {
		firstTick = minData
		count = maxTicks
		tickSpacing = dataRange / float64(maxTicks-1)
	}
	values := make([]float64, count)
	for i := range values {
		values[i] = firstTick + float64(i)*tickSpacing
	}
	return values, nil
}

// roundNumber rounds number to an intuitive magnitude. The leading
// digit of number is matched against limits (ascending); the first
// limit greater than the lead (greater-or-equal when allowEqual)
// selects the corresponding term. A lead beyond every limit rounds to
// 10. number must be positive.
func roundNumber(number float64, limits, terms []float64, allowEqual bool) float64 {
	power := math.Floor(math.Log10(number))
	lead := number / math.Pow(10, power)
	rounded := 10.0
	for i, limit := range limits {
		if lead < limit || (allowEqual && lead == limit) {
			rounded = terms[i]
			break
		}
	}
	return rounded * math.Pow(10, power)
}
