package commands

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/paw-lu/charter/charts"
)

// ReadSeries parses chart data from r. Each line holds either a single
// y value or an "x y" pair; a line starting with "#" names a new
// series. Lines before the first "#" go into a series called "data".
func ReadSeries(r io.Reader) ([]charts.Series, error) {
	scanner := bufio.NewScanner(r)
	var series []charts.Series
	current := -1
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "#") {
			name := strings.TrimSpace(strings.TrimPrefix(line, "#"))
			if name == "" {
				name = fmt.Sprintf("series %d", len(series)+1)
			}
			series = append(series, charts.Series{Name: name})
			current = len(series) - 1
			continue
		}
		if current == -1 {
			series = append(series, charts.Series{Name: "data"})
			current = 0
		}
		fields := strings.Fields(line)
		switch len(fields) {
		case 1:
			y, err := strconv.ParseFloat(fields[0], 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: parsing %q: %w", lineNumber, fields[0], err)
			}
			series[current].YS = append(series[current].YS, y)
		case 2:
			x, err := strconv.ParseFloat(fields[0], 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: parsing %q: %w", lineNumber, fields[0], err)
			}
			y, err := strconv.ParseFloat(fields[1], 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: parsing %q: %w", lineNumber, fields[1], err)
			}
			series[current].XS = append(series[current].XS, x)
			series[current].YS = append(series[current].YS, y)
		default:
			return nil, fmt.Errorf("line %d: expected \"y\" or \"x y\", got %q", lineNumber, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	for _, s := range series {
		if len(s.XS) != 0 && len(s.XS) != len(s.YS) {
			return nil, fmt.Errorf("series %q mixes single values and x y pairs", s.Name)
		}
	}
	return series, nil
}
