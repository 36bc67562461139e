package axis

import (
	"errors"
	"math"
	"testing"
)

func TestClosestPrefixPower(t *testing.T) {
	tests := []struct {
		number float64
		want   int
	}{
		{1e3, 3},
		{200e6, 6},
		{0.1, -3},
		{1e-3, -3},
		{0, 0},
		{-999_997, 3},
		{1, 0},
		{1e30, 24},
		{1e-30, -24},
	}
	for _, tt := range tests {
		if got := ClosestPrefixPower(tt.number); got != tt.want {
			t.Errorf("ClosestPrefixPower(%v) = %d, want %d", tt.number, got, tt.want)
		}
	}
}

func TestMetricPrefix(t *testing.T) {
	tests := []struct {
		power int
		want  string
	}{
		{3, "k"},
		{6, "M"},
		{-6, "μ"},
		{0, ""},
		{1, ""},
		{24, "Y"},
		{-24, "y"},
	}
	for _, tt := range tests {
		if got := MetricPrefix(tt.power); got != tt.want {
			t.Errorf("MetricPrefix(%d) = %q, want %q", tt.power, got, tt.want)
		}
	}
}

func TestLabelScale(t *testing.T) {
	rangeValues := func(start, stop, step float64) []float64 {
		var values []float64
		for v := start; v < stop; v += step {
			values = append(values, v)
		}
		return values
	}
	tests := []struct {
		name         string
		values       []float64
		subtractor   float64
		divisorPower int
	}{
		{"small integers", []float64{1, 2, 3}, 0, 0},
		{"even spread", []float64{2, 4, 6, 8, 10}, 0, 0},
		{"thousands", []float64{2e3, 4e3, 6e3, 8e3, 10e3}, 0, 3},
		{"micros", []float64{0, 5e-6, 10e-6, 15e-6}, 0, -6},
		{"fractional steps", []float64{1.00, 1.20, 1.40, 1.60, 1.80, 2.00}, 0, 0},
		{"millions with unit steps", []float64{1e6 + 3, 1e6 + 4, 1e6 + 5}, 1e6, 0},
		{"millions with fractional steps", rangeValues(1e6+3, 1e6+5, 0.5), 1e6, 0},
		{"billions with kilo steps", []float64{1e9 + 300e3, 1e9 + 400e3, 1e9 + 500e3}, 1e9, 3},
		{"ones with micro steps", []float64{1 + 10e-6, 1 + 20e-6, 1 + 30e-6}, 1, -6},
		{"wide range of thousands", rangeValues(500, 10_001, 280), 0, 3},
		{"tenth steps", rangeValues(1.0, 2.05, 0.1), 0, 0},
		{"single tick in the millions", []float64{5_000_003}, 0, 6},
		{"awkward millions", []float64{5_561_943, 5_561_944, 5_561_945, 5_561_946, 5_561_947, 5_561_948}, 5_561_940, 0},
		{"negative millions", []float64{-1e6 + 1, -1e6 + 2, -1e6 + 3}, -1e6, 0},
		{"hundredth steps", rangeValues(0, 1.005, 0.01), 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			subtractor, divisorPower, err := LabelScale(tt.values)
			if err != nil {
				t.Fatalf("LabelScale() error = %v", err)
			}
			if !approxEqual(subtractor, tt.subtractor) {
				t.Errorf("subtractor = %v, want %v", subtractor, tt.subtractor)
			}
			if divisorPower != tt.divisorPower {
				t.Errorf("divisor power = %d, want %d", divisorPower, tt.divisorPower)
			}
		})
	}
}

func TestLabelScaleOrderingError(t *testing.T) {
	_, _, err := LabelScale([]float64{1, 2, 3, 6, 5})
	if !errors.Is(err, ErrOrdering) {
		t.Errorf("error = %v, want ErrOrdering", err)
	}
}

func TestMinStepSize(t *testing.T) {
	t.Run("duplicate ticks give a zero step", func(t *testing.T) {
		got, err := minStepSize([]float64{10, 10})
		if err != nil {
			t.Fatalf("minStepSize() error = %v", err)
		}
		if got != 0 {
			t.Errorf("minStepSize() = %v, want 0", got)
		}
	})
	t.Run("snaps floating point noise to a power of ten", func(t *testing.T) {
		values := make([]float64, 10)
		for i := range values {
			values[i] = 100 + float64(i+1)*1e-6
		}
		got, err := minStepSize(values)
		if err != nil {
			t.Fatalf("minStepSize() error = %v", err)
		}
		if got != 1e-6 {
			t.Errorf("minStepSize() = %v, want 1e-6", got)
		}
	})
}

func TestFormatTickLabels(t *testing.T) {
	tests := []struct {
		name         string
		values       []float64
		subtractor   float64
		divisorPower int
		want         []string
	}{
		{
			"plain values",
			[]float64{1.00, 1.20, 1.40, 1.60, 1.80, 2.00},
			0, 0,
			[]string{"1.00", "1.20", "1.40", "1.60", "1.80", "2.00"},
		},
		{
			"subtracted millions",
			[]float64{1e6 + 3, 1e6 + 4, 1e6 + 5},
			1e6, 0,
			[]string{"3.00", "4.00", "5.00"},
		},
		{
			"mega prefix",
			[]float64{5_000_003},
			0, 6,
			[]string{"5.00M"},
		},
		{
			"kilo prefix after subtraction",
			[]float64{1e9 + 300e3, 1e9 + 400e3, 1e9 + 500e3},
			1e9, 3,
			[]string{"300.00k", "400.00k", "500.00k"},
		},
		{
			"negative values",
			[]float64{-10, 0, 10},
			0, 0,
			[]string{"-10.00", "0.00", "10.00"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatTickLabels(tt.values, tt.subtractor, tt.divisorPower)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d labels, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("label[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestFloorDiv(t *testing.T) {
	tests := []struct {
		a, b, want int
	}{
		{6, 3, 2},
		{5, 3, 1},
		{-1, 3, -1},
		{-3, 3, -1},
		{-4, 3, -2},
	}
	for _, tt := range tests {
		if got := floorDiv(tt.a, tt.b); got != tt.want {
			t.Errorf("floorDiv(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

// The subtractor arithmetic runs through math.Log10 and math.Floor;
// make sure it stays exact at representable boundaries.
func TestLabelScaleBoundaries(t *testing.T) {
	values := make([]float64, 11)
	for i := range values {
		values[i] = float64(123457 + i)
	}
	subtractor, divisorPower, err := LabelScale(values)
	if err != nil {
		t.Fatalf("LabelScale() error = %v", err)
	}
	if subtractor != 123400 {
		t.Errorf("subtractor = %v, want 123400", subtractor)
	}
	if divisorPower != 0 {
		t.Errorf("divisor power = %d, want 0", divisorPower)
	}
	if math.Mod(subtractor, 100) != 0 {
		t.Errorf("subtractor %v is not a multiple of 100", subtractor)
	}
}
