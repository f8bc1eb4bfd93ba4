package force

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// Float is a float64 whose JSON form keeps non-finite values as the strings
// "NaN", "+Inf" and "-Inf". Odd constants propagate into diagnostics and
// samples and must still round-trip through the run store.
type Float float64

func (f Float) MarshalJSON() ([]byte, error) {
	v := float64(f)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return json.Marshal(strconv.FormatFloat(v, 'g', -1, 64))
	}
	return json.Marshal(v)
}

func (f *Float) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("force: invalid number %q: %w", s, err)
		}
		*f = Float(v)
		return nil
	}
	var v float64
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*f = Float(v)
	return nil
}

// Floats converts vs for JSON encoding.
func Floats(vs []float64) []Float {
	if vs == nil {
		return nil
	}
	out := make([]Float, len(vs))
	for i, v := range vs {
		out[i] = Float(v)
	}
	return out
}

func float64s(vs []Float) []float64 {
	if vs == nil {
		return nil
	}
	out := make([]float64, len(vs))
	for i, v := range vs {
		out[i] = float64(v)
	}
	return out
}

func (d Domain) MarshalJSON() ([]byte, error) {
	type plain Domain
	return json.Marshal(struct {
		plain
		Start Float `json:"start"`
		Stop  Float `json:"stop"`
	}{plain(d), Float(d.Start), Float(d.Stop)})
}

func (d *Domain) UnmarshalJSON(b []byte) error {
	type plain Domain
	aux := struct {
		*plain
		Start Float `json:"start"`
		Stop  Float `json:"stop"`
	}{plain: (*plain)(d)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	d.Start, d.Stop = float64(aux.Start), float64(aux.Stop)
	return nil
}

func (d Diagnostic) MarshalJSON() ([]byte, error) {
	type plain Diagnostic
	return json.Marshal(struct {
		plain
		Value Float `json:"value"`
	}{plain(d), Float(d.Value)})
}

func (d *Diagnostic) UnmarshalJSON(b []byte) error {
	type plain Diagnostic
	aux := struct {
		*plain
		Value Float `json:"value"`
	}{plain: (*plain)(d)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	d.Value = float64(aux.Value)
	return nil
}

type summaryJSON struct {
	Min       Float   `json:"min"`
	MinAt     Float   `json:"min_at"`
	Max       Float   `json:"max"`
	MaxAt     Float   `json:"max_at"`
	Mean      Float   `json:"mean"`
	Crossings []Float `json:"crossings,omitempty"`
}

func (s Summary) MarshalJSON() ([]byte, error) {
	return json.Marshal(summaryJSON{
		Min:       Float(s.Min),
		MinAt:     Float(s.MinAt),
		Max:       Float(s.Max),
		MaxAt:     Float(s.MaxAt),
		Mean:      Float(s.Mean),
		Crossings: Floats(s.Crossings),
	})
}

func (s *Summary) UnmarshalJSON(b []byte) error {
	var aux summaryJSON
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	*s = Summary{
		Min:       float64(aux.Min),
		MinAt:     float64(aux.MinAt),
		Max:       float64(aux.Max),
		MaxAt:     float64(aux.MaxAt),
		Mean:      float64(aux.Mean),
		Crossings: float64s(aux.Crossings),
	}
	return nil
}
