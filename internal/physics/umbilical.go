package physics

import (
	"github.com/san-kum/forcelab/internal/force"
)

// Umbilical is the tether between float and glider. With DragOnly set the
// curve reports the hydrodynamic drag alone; otherwise it reports the net
// force -m1 g + Fb1 + Fd1(u).
type Umbilical struct {
	sweep
	Mass      float64
	Length    float64
	Diameter  float64
	DragCoeff float64
	Density   float64
	Gravity   float64
	DragOnly  bool
}

func NewUmbilical() *Umbilical {
	return &Umbilical{
		sweep:     velocityDomain(10, 50),
		Mass:      50,
		Length:    10,
		Diameter:  0.05,
		DragCoeff: 1.1,
		Density:   1025,
		Gravity:   Gravity,
	}
}

func NewUmbilicalDrag() *Umbilical {
	u := NewUmbilical()
	u.DragOnly = true
	return u
}

func (u *Umbilical) Name() string {
	if u.DragOnly {
		return "umbilical_drag"
	}
	return "umbilical"
}

func (u *Umbilical) Buoyancy() float64 {
	return cylinderBuoyancy(u.Density, u.Diameter/2, u.Length, u.Gravity)
}

func (u *Umbilical) Drag(v float64) float64 {
	area := force.ProjectedArea(u.Diameter, u.Length)
	return force.MorisonDrag(u.DragCoeff, u.Density, area, v)
}

func (u *Umbilical) Evaluate(v float64) float64 {
	if u.DragOnly {
		return u.Drag(v)
	}
	return -u.Mass*u.Gravity + u.Buoyancy() + u.Drag(v)
}

func (u *Umbilical) Diagnostics() []force.Diagnostic {
	return []force.Diagnostic{
		{Name: "buoyancy_fb1", Value: u.Buoyancy(), Unit: "N"},
		{Name: "weight", Value: force.Weight(u.Mass, u.Gravity), Unit: "N"},
	}
}

func (u *Umbilical) Chart() force.ChartSpec {
	if u.DragOnly {
		return force.ChartSpec{
			Title:  "Hydrodynamic Drag Force on Umbilical",
			XLabel: "Current velocity (m/s)",
			YLabel: "Drag force (N)",
			Legend: "Drag force F(D)",
			Color:  "teal",
		}
	}
	return force.ChartSpec{
		Title:    "(3) F(Umbilical)",
		XLabel:   "Variation in velocity, u_x (m/s)",
		YLabel:   "Umbilical force, F_umbilical (N)",
		Legend:   "F(umbilical)",
		Color:    "blue",
		RefLines: []force.RefLine{{Value: 0, Horizontal: true}},
	}
}

func (u *Umbilical) GetParams() map[string]float64 {
	return map[string]float64{
		"mass":     u.Mass,
		"length":   u.Length,
		"diameter": u.Diameter,
		"cd":       u.DragCoeff,
		"density":  u.Density,
		"gravity":  u.Gravity,
	}
}

func (u *Umbilical) SetParam(name string, value float64) error {
	switch name {
	case "mass":
		u.Mass = value
	case "length":
		u.Length = value
	case "diameter":
		u.Diameter = value
	case "cd":
		u.DragCoeff = value
	case "density":
		u.Density = value
	case "gravity":
		u.Gravity = value
	default:
		return unknownParam(u.Name(), name)
	}
	return nil
}
