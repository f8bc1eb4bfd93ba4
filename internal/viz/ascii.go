package viz

import (
	"math"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/forcelab/internal/force"
)

type PlotOptions struct {
	Width  int
	Height int
}

func DefaultPlotOptions() PlotOptions {
	return PlotOptions{Width: 80, Height: 12}
}

// Plot draws the force samples of s against their index, captioned with
// the chart title and axis range.
func Plot(s *force.Series, opts PlotOptions) string {
	if s.Len() == 0 {
		return Subtle.Render("(no samples)")
	}

	// asciigraph leaves gaps at NaN; infinities become gaps too.
	data := make([]float64, len(s.Y))
	finite := 0
	for i, y := range s.Y {
		if math.IsInf(y, 0) || math.IsNaN(y) {
			data[i] = math.NaN()
			continue
		}
		data[i] = y
		finite++
	}
	if finite == 0 {
		return Subtle.Render("(no finite samples)")
	}
	if len(data) == 1 {
		data = []float64{data[0], data[0]}
	}

	caption := s.Chart.Title
	if s.Chart.XLabel != "" {
		caption += "  |  " + s.Chart.XLabel + " " + rangeLabel(s)
	}

	return asciigraph.Plot(data,
		asciigraph.Height(opts.Height),
		asciigraph.Width(opts.Width),
		asciigraph.Precision(2),
		asciigraph.Caption(caption),
	)
}

func rangeLabel(s *force.Series) string {
	return "[" + formatFloat(s.X[0]) + " .. " + formatFloat(s.X[len(s.X)-1]) + "]"
}
