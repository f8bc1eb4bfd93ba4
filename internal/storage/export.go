package storage

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"io"
	"strconv"

	"github.com/san-kum/forcelab/internal/experiment"
	"github.com/san-kum/forcelab/internal/force"
)

// ParamSet is a run's named constants. Its JSON form keeps non-finite
// values, which odd constants can produce.
type ParamSet map[string]float64

func (p ParamSet) MarshalJSON() ([]byte, error) {
	if p == nil {
		return []byte("null"), nil
	}
	out := make(map[string]force.Float, len(p))
	for k, v := range p {
		out[k] = force.Float(v)
	}
	return json.Marshal(out)
}

func (p *ParamSet) UnmarshalJSON(b []byte) error {
	var in map[string]force.Float
	if err := json.Unmarshal(b, &in); err != nil {
		return err
	}
	if in == nil {
		*p = nil
		return nil
	}
	*p = make(ParamSet, len(in))
	for k, v := range in {
		(*p)[k] = float64(v)
	}
	return nil
}

type ExportData struct {
	RunMetadata
	Samples int           `json:"samples"`
	X       []force.Float `json:"x"`
	Force   []force.Float `json:"force"`
}

// WriteCSV writes x,force rows. Values use the shortest representation that
// parses back to the same float64.
func WriteCSV(w io.Writer, s *force.Series) error {
	if err := s.Validate(); err != nil && !errors.Is(err, force.ErrEmptySeries) {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"x", "force"}); err != nil {
		return err
	}
	for i := range s.X {
		row := []string{
			strconv.FormatFloat(s.X[i], 'g', -1, 64),
			strconv.FormatFloat(s.Y[i], 'g', -1, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func ExportJSON(w io.Writer, meta *RunMetadata, s *force.Series) error {
	data := ExportData{
		RunMetadata: *meta,
		Samples:     s.Len(),
		X:           force.Floats(s.X),
		Force:       force.Floats(s.Y),
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

// Result rebuilds the evaluated curve of a stored run.
func (m *RunMetadata) Result(s *force.Series) *experiment.Result {
	return &experiment.Result{
		Curve:       m.Curve,
		Domain:      m.Domain,
		Params:      m.Params,
		Series:      s,
		Diagnostics: m.Diagnostics,
		Summary:     m.Summary,
		Warnings:    m.Warnings,
	}
}
