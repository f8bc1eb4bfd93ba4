package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/san-kum/forcelab/internal/experiment"
	"github.com/san-kum/forcelab/internal/force"
	"gopkg.in/yaml.v3"
)

const (
	DefaultDataDir   = ".forcelab"
	DefaultOutputDir = "charts"
	DefaultFormat    = "png"
	DefaultWidth     = 8.0
	DefaultHeight    = 5.0
)

// Config holds chart output settings and per-curve overrides. The run store
// location is not part of it; every command takes it from --data.
type Config struct {
	OutputDir string                 `yaml:"output_dir"`
	Format    string                 `yaml:"format"`
	Width     float64                `yaml:"width"`
	Height    float64                `yaml:"height"`
	Curves    map[string]CurveConfig `yaml:"curves,omitempty"`
}

type CurveConfig struct {
	Domain *force.Domain       `yaml:"domain,omitempty"`
	Params map[string]float64 `yaml:"params,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		OutputDir: DefaultOutputDir,
		Format:    DefaultFormat,
		Width:     DefaultWidth,
		Height:    DefaultHeight,
		Curves:    map[string]CurveConfig{},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	// Unknown keys are rejected so a misspelt or retired setting is not
	// silently ignored.
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	cfg := DefaultConfig()
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	switch c.Format {
	case "png", "svg":
	default:
		return fmt.Errorf("unsupported chart format %q (png, svg)", c.Format)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("chart size must be positive, got %gx%g", c.Width, c.Height)
	}
	return nil
}

// ExperimentConfig returns the overrides configured for curve, or an empty
// configuration when the file does not mention it.
func (c *Config) ExperimentConfig(curve string) experiment.Config {
	cc := c.Curves[curve]
	params := make(map[string]float64, len(cc.Params))
	for k, v := range cc.Params {
		params[k] = v
	}
	var domain *force.Domain
	if cc.Domain != nil {
		d := *cc.Domain
		domain = &d
	}
	return experiment.Config{
		Curve:  curve,
		Domain: domain,
		Params: params,
	}
}

// Merge layers overlay on top of base: overlay's domain wins when set and
// overlay's params replace base params of the same name.
func Merge(base, overlay CurveConfig) CurveConfig {
	out := CurveConfig{
		Domain: base.Domain,
		Params: make(map[string]float64, len(base.Params)+len(overlay.Params)),
	}
	if overlay.Domain != nil {
		out.Domain = overlay.Domain
	}
	for k, v := range base.Params {
		out.Params[k] = v
	}
	for k, v := range overlay.Params {
		out.Params[k] = v
	}
	return out
}
