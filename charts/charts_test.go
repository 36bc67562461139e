package charts

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestScatter(t *testing.T) {
	series := []Series{
		{Name: "a", YS: []float64{0, 1, 2, 3, 4, 5}},
		{Name: "b", YS: []float64{5, 4, 3, 2, 1, 0}},
	}

	t.Run("fills the requested frame", func(t *testing.T) {
		const width, height = 40, 8
		chart, err := Scatter(series, width, height)
		if err != nil {
			t.Fatalf("Scatter() error = %v", err)
		}
		lines := strings.Split(chart, "\n")
		if len(lines) != height+2 {
			t.Fatalf("got %d lines, want %d", len(lines), height+2)
		}
		for i, line := range lines {
			if got := lipgloss.Width(line); got != width {
				t.Errorf("line %d width = %d, want %d", i, got, width)
			}
		}
	})

	t.Run("draws both axes", func(t *testing.T) {
		chart, err := Scatter(series, 40, 8)
		if err != nil {
			t.Fatalf("Scatter() error = %v", err)
		}
		if !strings.Contains(chart, "┫") {
			t.Error("chart has no y tick glyphs")
		}
		if !strings.Contains(chart, "┳") {
			t.Error("chart has no x tick glyphs")
		}
		if !strings.Contains(chart, "0.00") {
			t.Error("chart has no tick labels")
		}
	})

	t.Run("defaults width and height", func(t *testing.T) {
		chart, err := Scatter(series, 0, 0)
		if err != nil {
			t.Fatalf("Scatter() error = %v", err)
		}
		lines := strings.Split(chart, "\n")
		wantHeight := max(DefaultWidth/HeightRatio, MinHeight)
		if len(lines) != wantHeight+2 {
			t.Errorf("got %d lines, want %d", len(lines), wantHeight+2)
		}
	})

	t.Run("reports the y offset for compact large values", func(t *testing.T) {
		offset := []Series{
			{Name: "drift", YS: []float64{1e6 + 3, 1e6 + 4, 1e6 + 5}},
		}
		chart, err := Scatter(offset, 40, 8)
		if err != nil {
			t.Fatalf("Scatter() error = %v", err)
		}
		if !strings.Contains(chart, "y offset: 1.00M") {
			t.Errorf("chart is missing the y offset key:\n%s", chart)
		}
	})

	t.Run("no data points", func(t *testing.T) {
		if _, err := Scatter([]Series{{Name: "empty"}}, 40, 8); err == nil {
			t.Error("Scatter() error = nil, want error")
		}
	})
}

func TestScatterWithXValues(t *testing.T) {
	series := []Series{
		{Name: "walk", XS: []float64{0, 10, 20, 30}, YS: []float64{1, 3, 2, 4}},
	}
	chart, err := Scatter(series, 60, 10)
	if err != nil {
		t.Fatalf("Scatter() error = %v", err)
	}
	if !strings.Contains(chart, "30.00") {
		t.Errorf("x labels missing from chart:\n%s", chart)
	}
}

func TestLegend(t *testing.T) {
	series := []Series{
		{Name: "metric_a", YS: []float64{1}},
		{Name: "metric_b", YS: []float64{2}},
	}
	legend := Legend(series)
	lines := strings.Split(legend, "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d legend lines, want 2", len(lines))
	}
	for i, name := range []string{"metric_a", "metric_b"} {
		if !strings.Contains(lines[i], name) {
			t.Errorf("legend line %d = %q, want it to contain %q", i, lines[i], name)
		}
	}
	if Legend(nil) != "" {
		t.Error("empty series should produce an empty legend")
	}
}
