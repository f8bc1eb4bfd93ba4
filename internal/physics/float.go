package physics

import (
	"github.com/san-kum/forcelab/internal/force"
)

// Float is the vertical force on the surface float, weight against the
// buoyancy of the immersed slab: -m g + rho A (y + y1) g.
type Float struct {
	sweep
	Mass         float64
	Gravity      float64
	Density      float64
	Area         float64
	InitialDraft float64
}

func NewFloat() *Float {
	return &Float{
		sweep:        sweep{domain: force.Domain{Start: 0, Stop: 15, Samples: 400}},
		Mass:         155,
		Gravity:      9.8,
		Density:      SeawaterDensity,
		Area:         0.19,
		InitialDraft: 0,
	}
}

func (f *Float) Name() string { return "float" }

func (f *Float) Evaluate(y1 float64) float64 {
	return -f.Mass*f.Gravity + f.Density*f.Area*(f.InitialDraft+y1)*f.Gravity
}

// EquilibriumDraft is the draft offset at which the float force vanishes.
func (f *Float) EquilibriumDraft() float64 {
	return f.Mass/(f.Density*f.Area) - f.InitialDraft
}

func (f *Float) Diagnostics() []force.Diagnostic {
	return []force.Diagnostic{
		{Name: "weight", Value: force.Weight(f.Mass, f.Gravity), Unit: "N"},
		{Name: "equilibrium_draft", Value: f.EquilibriumDraft(), Unit: "m"},
	}
}

func (f *Float) Chart() force.ChartSpec {
	return force.ChartSpec{
		Title:  "(1) F(Float)",
		XLabel: "Variation in draft, y1 (m)",
		YLabel: "Float force, F_float (N)",
		Legend: "F_float = -mg + ρA(y + y1)g",
		Color:  "blue",
		RefLines: []force.RefLine{
			{Value: 0, Horizontal: true},
			{Value: 0},
		},
	}
}

func (f *Float) GetParams() map[string]float64 {
	return map[string]float64{
		"mass":          f.Mass,
		"gravity":       f.Gravity,
		"density":       f.Density,
		"area":          f.Area,
		"initial_draft": f.InitialDraft,
	}
}

func (f *Float) SetParam(name string, value float64) error {
	switch name {
	case "mass":
		f.Mass = value
	case "gravity":
		f.Gravity = value
	case "density":
		f.Density = value
	case "area":
		f.Area = value
	case "initial_draft":
		f.InitialDraft = value
	default:
		return unknownParam(f.Name(), name)
	}
	return nil
}

// FloatDrag is the Morison drag of the float's immersed hull.
type FloatDrag struct {
	sweep
	DragCoeff float64
	Density   float64
	Area      float64
}

func NewFloatDrag() *FloatDrag {
	return &FloatDrag{
		sweep:     velocityDomain(10, 50),
		DragCoeff: 0.0030, // between a kayak and a keelboat
		Density:   SeawaterDensity,
		Area:      1,
	}
}

func (d *FloatDrag) Name() string { return "float_drag" }

func (d *FloatDrag) Evaluate(u float64) float64 {
	return force.MorisonDrag(d.DragCoeff, d.Density, d.Area, u)
}

func (d *FloatDrag) Diagnostics() []force.Diagnostic { return nil }

func (d *FloatDrag) Chart() force.ChartSpec {
	return force.ChartSpec{
		Title:  "(2) F(Drag)",
		XLabel: "Variation in velocity, u_x (m/s)",
		YLabel: "Drag force, F_drag (N)",
		Legend: "F_drag = 1/2 Cd ρ S u|u|",
		Color:  "blue",
		RefLines: []force.RefLine{
			{Value: 0, Horizontal: true},
			{Value: 0},
		},
	}
}

func (d *FloatDrag) GetParams() map[string]float64 {
	return map[string]float64{
		"cd":      d.DragCoeff,
		"density": d.Density,
		"area":    d.Area,
	}
}

func (d *FloatDrag) SetParam(name string, value float64) error {
	switch name {
	case "cd":
		d.DragCoeff = value
	case "density":
		d.Density = value
	case "area":
		d.Area = value
	default:
		return unknownParam(d.Name(), name)
	}
	return nil
}
