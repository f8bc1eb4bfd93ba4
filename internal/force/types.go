package force

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

type Domain struct {
	Start   float64 `json:"start" yaml:"start"`
	Stop    float64 `json:"stop" yaml:"stop"`
	Samples int     `json:"samples" yaml:"samples"`
}

// Values returns Samples evenly spaced points from Start to Stop inclusive.
// One sample yields [Start]; zero or negative yields an empty slice.
func (d Domain) Values() []float64 {
	switch {
	case d.Samples <= 0:
		return []float64{}
	case d.Samples == 1:
		return []float64{d.Start}
	}
	return floats.Span(make([]float64, d.Samples), d.Start, d.Stop)
}

// RefLine is a dashed guide drawn across the chart, e.g. the F = 0 equilibrium.
type RefLine struct {
	Value      float64 `json:"value"`
	Horizontal bool    `json:"horizontal"`
}

type ChartSpec struct {
	Title    string    `json:"title"`
	XLabel   string    `json:"x_label"`
	YLabel   string    `json:"y_label"`
	Legend   string    `json:"legend"`
	Color    string    `json:"color"`
	RefLines []RefLine `json:"ref_lines,omitempty"`
}

type Diagnostic struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
}

type Curve interface {
	Name() string
	Domain() Domain
	Evaluate(x float64) float64
	Diagnostics() []Diagnostic
	Chart() ChartSpec
}

// Configurable curves expose their physical constants by name.
type Configurable interface {
	GetParams() map[string]float64
	SetParam(name string, value float64) error
}

// Warner curves report parameter combinations that are computed but suspect.
type Warner interface {
	Warnings() []string
}

// Retargetable curves accept a replacement sweep domain.
type Retargetable interface {
	SetDomain(d Domain)
}

type Series struct {
	Name  string    `json:"name"`
	X     []float64 `json:"x"`
	Y     []float64 `json:"y"`
	Chart ChartSpec `json:"chart"`
}

func (s *Series) Len() int {
	return len(s.X)
}

func (s *Series) Clone() *Series {
	c := &Series{
		Name:  s.Name,
		X:     make([]float64, len(s.X)),
		Y:     make([]float64, len(s.Y)),
		Chart: s.Chart,
	}
	copy(c.X, s.X)
	copy(c.Y, s.Y)
	c.Chart.RefLines = append([]RefLine(nil), s.Chart.RefLines...)
	return c
}

func (s *Series) IsValid() bool {
	if len(s.X) != len(s.Y) {
		return false
	}
	for i := range s.Y {
		if math.IsNaN(s.Y[i]) || math.IsInf(s.Y[i], 0) {
			return false
		}
		if math.IsNaN(s.X[i]) || math.IsInf(s.X[i], 0) {
			return false
		}
	}
	return true
}

func (s *Series) Validate() error {
	if len(s.X) != len(s.Y) {
		return ErrLengthMismatch
	}
	if len(s.X) == 0 {
		return ErrEmptySeries
	}
	return nil
}
