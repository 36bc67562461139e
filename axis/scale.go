package axis

import (
	"fmt"
	"math"
	"strconv"
)

// metricPrefixes maps multiple-of-3 powers of ten to SI prefixes.
var metricPrefixes = map[int]string{
	24:  "Y",
	21:  "Z",
	18:  "E",
	15:  "P",
	12:  "T",
	9:   "G",
	6:   "M",
	3:   "k",
	-3:  "m",
	-6:  "μ",
	-9:  "n",
	-12: "p",
	-15: "f",
	-18: "a",
	-21: "z",
	-24: "y",
}

// MetricPrefix returns the SI prefix for a power of ten, or the empty
// string when the power has none.
func MetricPrefix(power int) string {
	return metricPrefixes[power]
}

// ClosestPrefixPower returns the nearest multiple-of-3 power of ten at
// or below the magnitude of x, clamped to the SI prefix range
// [-24, 24]. Zero maps to power 0.
func ClosestPrefixPower(x float64) int {
	if x == 0 {
		return 0
	}
	power := floorDiv(int(math.Floor(math.Log10(math.Abs(x)))), 3) * 3
	if power > 24 {
		return 24
	}
	if power < -24 {
		return -24
	}
	return power
}

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// minStepSize returns the smallest gap between adjacent tick values,
// snapping to a neighboring power of ten when within 0.1% to absorb
// floating-point noise. A zero gap between duplicate ticks is legal.
func minStepSize(values []float64) (float64, error) {
	minStep := math.Inf(1)
	left, right := values[0], values[0]
	for i := 1; i < len(values); i++ {
		if step := values[i] - values[i-1]; step < minStep {
			minStep = step
			left, right = values[i-1], values[i]
		}
	}
	if minStep < 0 {
		return 0, fmt.Errorf("%w: %v is greater than %v", ErrOrdering, left, right)
	}
	if minStep != 0 {
		place := math.Floor(math.Log10(minStep))
		if up := math.Pow(10, place+1); (up-minStep)/minStep < 0.001 {
			minStep = up
		} else if down := math.Pow(10, place-1); (minStep-down)/minStep < 0.001 {
			minStep = down
		}
	}
	return minStep, nil
}

// LabelScale decides the shared subtractor and divisor power for a set
// of ascending tick values. Labels render as
// (tick - subtractor) / 10^divisorPower. The subtractor is nonzero
// only when the ticks are large relative to their spacing, that is,
// when they share several leading digits.
func LabelScale(values []float64) (subtractor float64, divisorPower int, err error) {
	if len(values) == 0 {
		return 0, 0, nil
	}
	last := values[len(values)-1]
	axisPower := ClosestPrefixPower(last)
	if len(values) == 1 {
		return 0, axisPower, nil
	}
	minStep, err := minStepSize(values)
	if err != nil {
		return 0, 0, err
	}
	if minStep == 0 {
		// Duplicate ticks leave no spacing to compare magnitudes
		// against; keep the labels unsubtracted.
		return 0, axisPower, nil
	}
	stepPlace := int(math.Floor(math.Log10(minStep)))
	if axisPower-stepPlace <= 2 {
		return 0, axisPower, nil
	}
	rangePlace := int(math.Floor(math.Log10(last - values[0])))
	tickPlace := rangePlace
	if rangePlace-stepPlace > 2 {
		tickPlace = stepPlace
	}
	nextPlace := math.Pow(10, float64(tickPlace+1))
	subtractor = math.Floor(last/nextPlace) * nextPlace
	divisorPower = ClosestPrefixPower(math.Pow(10, float64(tickPlace)))
	return subtractor, divisorPower, nil
}

// FormatTickLabels renders each tick as a two-decimal value with the
// metric prefix for divisorPower appended.
func FormatTickLabels(values []float64, subtractor float64, divisorPower int) []string {
	prefix := MetricPrefix(divisorPower)
	divisor := math.Pow(10, float64(divisorPower))
	labels := make([]string, len(values))
	for i, value := range values {
		labels[i] = strconv.FormatFloat((value-subtractor)/divisor, 'f', 2, 64) + prefix
	}
	return labels
}
