package experiment

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/san-kum/forcelab/internal/force"
)

func TestRegistry_ListCurves(t *testing.T) {
	r := NewRegistry()
	names := r.ListCurves()

	want := []string{
		"body_ecomapper", "body_vr2c", "cable_drag", "cable_vertical",
		"fin", "float", "float_drag", "umbilical", "umbilical_drag",
	}
	if len(names) != len(want) {
		t.Fatalf("expected %d curves, got %d: %v", len(want), len(names), names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("curve %d: expected %s, got %s", i, want[i], names[i])
		}
	}
}

func TestRegistry_GetCurve(t *testing.T) {
	r := NewRegistry()
	for _, name := range r.ListCurves() {
		c, err := r.GetCurve(name)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if c.Name() != name {
			t.Errorf("registered as %s but named %s", name, c.Name())
		}
	}
}

func TestRegistry_GetCurve_Unknown(t *testing.T) {
	_, err := NewRegistry().GetCurve("anchor")
	if !errors.Is(err, force.ErrUnknownCurve) {
		t.Errorf("expected ErrUnknownCurve, got %v", err)
	}
}

func TestRegistry_FreshInstances(t *testing.T) {
	r := NewRegistry()
	a, _ := r.GetCurve("float")
	if err := a.(force.Configurable).SetParam("mass", 1); err != nil {
		t.Fatal(err)
	}
	b, _ := r.GetCurve("float")
	if b.(force.Configurable).GetParams()["mass"] != 155 {
		t.Error("override leaked into a new instance")
	}
}

func TestExperiment_Run(t *testing.T) {
	r := NewRegistry()
	c, _ := r.GetCurve("float")

	exp := New(Config{
		Curve:  "float",
		Domain: &force.Domain{Start: 0, Stop: 2, Samples: 3},
		Params: map[string]float64{"mass": 100},
	})
	if err := exp.Setup(c); err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	result, err := exp.Run(context.Background())
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if result.Series.Len() != 3 {
		t.Errorf("expected 3 samples, got %d", result.Series.Len())
	}
	if result.Params["mass"] != 100 {
		t.Errorf("expected mass 100, got %v", result.Params["mass"])
	}
	if math.Abs(result.Series.Y[0]+980) > 1e-9 {
		t.Errorf("expected -980 at zero draft, got %v", result.Series.Y[0])
	}
	if len(result.Summary.Crossings) != 1 {
		t.Errorf("expected one equilibrium crossing, got %v", result.Summary.Crossings)
	}
	if len(result.Diagnostics) == 0 {
		t.Error("expected diagnostics")
	}
}

func TestExperiment_UnknownParam(t *testing.T) {
	c, _ := NewRegistry().GetCurve("fin")
	exp := New(Config{Params: map[string]float64{"keel": 1}})
	if err := exp.Setup(c); !errors.Is(err, force.ErrUnknownParam) {
		t.Errorf("expected ErrUnknownParam, got %v", err)
	}
}

func TestExperiment_Warnings(t *testing.T) {
	c, _ := NewRegistry().GetCurve("fin")
	exp := New(Config{})
	if err := exp.Setup(c); err != nil {
		t.Fatal(err)
	}
	result, err := exp.Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(result.Warnings) != 1 {
		t.Errorf("expected an attack angle warning, got %v", result.Warnings)
	}
}

func TestExperiment_NotSetup(t *testing.T) {
	if _, err := New(Config{}).Run(context.Background()); err == nil {
		t.Error("expected error for experiment without setup")
	}
}

func TestExperiment_Canceled(t *testing.T) {
	c, _ := NewRegistry().GetCurve("float")
	exp := New(Config{})
	_ = exp.Setup(c)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := exp.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}
