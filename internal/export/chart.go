package export

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/san-kum/forcelab/internal/force"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

type ChartOptions struct {
	Width  float64 // inches
	Height float64 // inches
	Format string  // png or svg
}

func DefaultChartOptions() ChartOptions {
	return ChartOptions{Width: 8, Height: 5, Format: "png"}
}

var namedColors = map[string]color.RGBA{
	"blue":  {R: 0x00, G: 0x00, B: 0xff, A: 0xff},
	"teal":  {R: 0x00, G: 0x80, B: 0x80, A: 0xff},
	"black": {A: 0xff},
	"gray":  {R: 0x80, G: 0x80, B: 0x80, A: 0xff},
}

// parseColor accepts a name from namedColors or #rrggbb; anything else is blue.
func parseColor(s string) color.RGBA {
	if c, ok := namedColors[s]; ok {
		return c
	}
	if len(s) == 7 && strings.HasPrefix(s, "#") {
		v, err := strconv.ParseUint(s[1:], 16, 32)
		if err == nil {
			return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}
		}
	}
	return namedColors["blue"]
}

// NewChart builds a line chart of s with its title, labels, legend, grid
// and dashed reference lines. NaN and infinite samples are left out of the
// line.
func NewChart(s *force.Series) (*plot.Plot, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	p := plot.New()
	p.Title.Text = s.Chart.Title
	p.X.Label.Text = s.Chart.XLabel
	p.Y.Label.Text = s.Chart.YLabel
	p.Add(plotter.NewGrid())

	pts := finitePoints(s)
	if len(pts) == 0 {
		return nil, fmt.Errorf("%s: %w", s.Name, force.ErrNoFiniteSamples)
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.Name, err)
	}
	line.LineStyle.Width = vg.Points(1.5)
	line.LineStyle.Color = parseColor(s.Chart.Color)

	xmin, xmax, ymin, ymax := plotter.XYRange(pts)
	dashes := []vg.Length{vg.Points(4), vg.Points(4)}
	for _, ref := range s.Chart.RefLines {
		var guide plotter.XYs
		if ref.Horizontal {
			guide = plotter.XYs{{X: xmin, Y: ref.Value}, {X: xmax, Y: ref.Value}}
		} else {
			guide = plotter.XYs{{X: ref.Value, Y: ymin}, {X: ref.Value, Y: ymax}}
		}
		gl, err := plotter.NewLine(guide)
		if err != nil {
			return nil, err
		}
		gl.LineStyle.Width = vg.Points(1)
		gl.LineStyle.Dashes = dashes
		gl.LineStyle.Color = namedColors["gray"]
		if ref.Horizontal {
			gl.LineStyle.Color = namedColors["black"]
		}
		p.Add(gl)
	}

	p.Add(line)
	if s.Chart.Legend != "" {
		p.Legend.Add(s.Chart.Legend, line)
		p.Legend.Top = true
	}

	return p, nil
}

func finitePoints(s *force.Series) plotter.XYs {
	pts := make(plotter.XYs, 0, s.Len())
	for i := range s.X {
		x, y := s.X[i], s.Y[i]
		if math.IsNaN(x) || math.IsInf(x, 0) || math.IsNaN(y) || math.IsInf(y, 0) {
			continue
		}
		pts = append(pts, plotter.XY{X: x, Y: y})
	}
	return pts
}

// WriteChart renders s to w in the requested format.
func WriteChart(w io.Writer, s *force.Series, opts ChartOptions) error {
	p, err := NewChart(s)
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(vg.Length(opts.Width)*vg.Inch, vg.Length(opts.Height)*vg.Inch, opts.Format)
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}

// SaveChart writes s to dir/<name>.<format> and returns the path.
func SaveChart(dir string, s *force.Series, opts ChartOptions) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("cannot create directory: %w", err)
	}
	path := filepath.Join(dir, s.Name+"."+opts.Format)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("cannot create chart: %w", err)
	}
	defer f.Close()

	if err := WriteChart(f, s, opts); err != nil {
		return "", err
	}
	return path, nil
}
