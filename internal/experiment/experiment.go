package experiment

import (
	"context"
	"fmt"
	"sort"

	"github.com/san-kum/forcelab/internal/force"
)

type Config struct {
	Curve  string
	Domain *force.Domain
	Params map[string]float64
}

type Result struct {
	Curve       string
	Domain      force.Domain
	Params      map[string]float64
	Series      *force.Series
	Diagnostics []force.Diagnostic
	Summary     force.Summary
	Warnings    []string
}

type Experiment struct {
	cfg   Config
	curve force.Curve
}

func New(cfg Config) *Experiment {
	return &Experiment{cfg: cfg}
}

// Setup applies the configured domain and parameter overrides to c.
// Parameters are applied in name order so failures are reproducible.
func (e *Experiment) Setup(c force.Curve) error {
	if e.cfg.Domain != nil {
		rt, ok := c.(force.Retargetable)
		if !ok {
			return fmt.Errorf("curve %s does not accept a domain override", c.Name())
		}
		rt.SetDomain(*e.cfg.Domain)
	}

	if len(e.cfg.Params) > 0 {
		cfgable, ok := c.(force.Configurable)
		if !ok {
			return fmt.Errorf("curve %s has no parameters", c.Name())
		}
		names := make([]string, 0, len(e.cfg.Params))
		for name := range e.cfg.Params {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			if err := cfgable.SetParam(name, e.cfg.Params[name]); err != nil {
				return err
			}
		}
	}

	e.curve = c
	return nil
}

func (e *Experiment) Run(ctx context.Context) (*Result, error) {
	if e.curve == nil {
		return nil, fmt.Errorf("experiment not setup")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	series := force.Sample(e.curve)
	result := &Result{
		Curve:       e.curve.Name(),
		Domain:      e.curve.Domain(),
		Series:      series,
		Diagnostics: e.curve.Diagnostics(),
	}
	if cfgable, ok := e.curve.(force.Configurable); ok {
		result.Params = cfgable.GetParams()
	}
	if w, ok := e.curve.(force.Warner); ok {
		result.Warnings = w.Warnings()
	}
	if series.Len() > 0 {
		sum, err := force.Summarize(series)
		if err != nil {
			return nil, err
		}
		result.Summary = sum
	}

	return result, nil
}
