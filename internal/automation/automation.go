// Package automation runs batches of force curves: scripted scenarios
// loaded from YAML and one-parameter sweeps.
package automation

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/san-kum/forcelab/internal/config"
	"github.com/san-kum/forcelab/internal/experiment"
	"github.com/san-kum/forcelab/internal/force"
	"gonum.org/v1/gonum/floats"
	"gopkg.in/yaml.v3"
)

// Scenario is a named list of curve evaluations.
type Scenario struct {
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	Steps       []ScenarioStep `yaml:"steps"`
}

// ScenarioStep evaluates one curve. Preset values are applied first, then
// the step's own domain and params.
type ScenarioStep struct {
	Curve  string             `yaml:"curve"`
	Preset string             `yaml:"preset,omitempty"`
	Domain *force.Domain      `yaml:"domain,omitempty"`
	Params map[string]float64 `yaml:"params,omitempty"`
}

func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if len(scenario.Steps) == 0 {
		return nil, fmt.Errorf("%s: scenario has no steps", path)
	}

	return &scenario, nil
}

// RunScenario evaluates every step in order and stops at the first failure,
// returning the results gathered so far.
func RunScenario(ctx context.Context, scenario *Scenario, registry *experiment.Registry) ([]*experiment.Result, error) {
	results := make([]*experiment.Result, 0, len(scenario.Steps))

	for i, step := range scenario.Steps {
		slog.Debug("scenario step", "scenario", scenario.Name, "step", i+1, "of", len(scenario.Steps), "curve", step.Curve)

		var layered config.CurveConfig
		if step.Preset != "" {
			p := config.GetPreset(step.Curve, step.Preset)
			if p == nil {
				return results, fmt.Errorf("step %d: unknown preset %s for %s", i+1, step.Preset, step.Curve)
			}
			layered = *p
		}
		layered = config.Merge(layered, config.CurveConfig{Domain: step.Domain, Params: step.Params})

		result, err := evaluate(ctx, registry, experiment.Config{
			Curve:  step.Curve,
			Domain: layered.Domain,
			Params: layered.Params,
		})
		if err != nil {
			return results, fmt.Errorf("step %d: %w", i+1, err)
		}
		results = append(results, result)
	}

	return results, nil
}

// ParameterSweep evaluates Curve once per value of Param, spread evenly
// from Min to Max inclusive.
type ParameterSweep struct {
	Curve  string
	Param  string
	Min    float64
	Max    float64
	Steps  int
	Domain *force.Domain
	Params map[string]float64
}

type SweepResult struct {
	ParamValue float64
	Result     *experiment.Result
}

func RunSweep(ctx context.Context, sweep *ParameterSweep, registry *experiment.Registry) ([]SweepResult, error) {
	if sweep.Steps < 1 {
		return nil, fmt.Errorf("sweep needs at least one step, got %d", sweep.Steps)
	}

	values := []float64{sweep.Min}
	if sweep.Steps > 1 {
		values = floats.Span(make([]float64, sweep.Steps), sweep.Min, sweep.Max)
	}

	results := make([]SweepResult, 0, len(values))
	for i, v := range values {
		params := make(map[string]float64, len(sweep.Params)+1)
		for k, pv := range sweep.Params {
			params[k] = pv
		}
		params[sweep.Param] = v

		result, err := evaluate(ctx, registry, experiment.Config{
			Curve:  sweep.Curve,
			Domain: sweep.Domain,
			Params: params,
		})
		if err != nil {
			return nil, fmt.Errorf("%s=%g: %w", sweep.Param, v, err)
		}
		results = append(results, SweepResult{ParamValue: v, Result: result})

		slog.Debug("sweep step", "curve", sweep.Curve, "step", i+1, "of", len(values), sweep.Param, v)
	}

	return results, nil
}

// evaluate runs cfg against a fresh curve so steps never share state.
func evaluate(ctx context.Context, registry *experiment.Registry, cfg experiment.Config) (*experiment.Result, error) {
	c, err := registry.GetCurve(cfg.Curve)
	if err != nil {
		return nil, err
	}
	exp := experiment.New(cfg)
	if err := exp.Setup(c); err != nil {
		return nil, err
	}
	return exp.Run(ctx)
}
