package force

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

type Summary struct {
	Min       float64   `json:"min"`
	MinAt     float64   `json:"min_at"`
	Max       float64   `json:"max"`
	MaxAt     float64   `json:"max_at"`
	Mean      float64   `json:"mean"`
	Crossings []float64 `json:"crossings,omitempty"`
}

// Summarize reports the extremes of s and where it crosses F = 0.
// Crossings are linearly interpolated between neighbouring samples; a sample
// that is exactly zero counts once. NaN samples are ignored by the extremes
// and non-finite samples never produce a crossing.
func Summarize(s *Series) (Summary, error) {
	if err := s.Validate(); err != nil {
		return Summary{}, err
	}

	minIdx := floats.MinIdx(s.Y)
	maxIdx := floats.MaxIdx(s.Y)

	sum := Summary{
		Min:   s.Y[minIdx],
		MinAt: s.X[minIdx],
		Max:   s.Y[maxIdx],
		MaxAt: s.X[maxIdx],
		Mean:  floats.Sum(s.Y) / float64(len(s.Y)),
	}

	for i := 0; i < len(s.Y); i++ {
		y := s.Y[i]
		if y == 0 {
			sum.Crossings = append(sum.Crossings, s.X[i])
			continue
		}
		if i == 0 {
			continue
		}
		prev := s.Y[i-1]
		if !finite(y) || !finite(prev) {
			continue
		}
		if prev == 0 || (prev < 0) == (y < 0) {
			continue
		}
		x0, x1 := s.X[i-1], s.X[i]
		sum.Crossings = append(sum.Crossings, x0+(x1-x0)*(-prev)/(y-prev))
	}

	return sum, nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
