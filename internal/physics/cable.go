package physics

import (
	"github.com/san-kum/forcelab/internal/force"
)

// CableSegment is one 100 mm element of the 6 m towed-body cable, which is
// discretised as 60 daisy-chained segments. With Vertical set the curve is
// the velocity-independent vertical force Fc = -m4 g + Fb4; otherwise it is
// the segment drag Fd4(u).
type CableSegment struct {
	sweep
	Mass      float64
	Radius    float64
	Length    float64
	DragCoeff float64
	Density   float64
	Gravity   float64
	Vertical  bool
}

func NewCableSegment() *CableSegment {
	return &CableSegment{
		sweep:     velocityDomain(5, 100),
		Mass:      0.05,
		Radius:    0.01,
		Length:    0.1,
		DragCoeff: 1,
		Density:   SeawaterDensity,
		Gravity:   Gravity,
	}
}

func NewCableVertical() *CableSegment {
	c := NewCableSegment()
	c.Vertical = true
	return c
}

func (c *CableSegment) Name() string {
	if c.Vertical {
		return "cable_vertical"
	}
	return "cable_drag"
}

func (c *CableSegment) Buoyancy() float64 {
	return cylinderBuoyancy(c.Density, c.Radius, c.Length, c.Gravity)
}

func (c *CableSegment) VerticalForce() float64 {
	return (-c.Mass * c.Gravity) + c.Buoyancy()
}

func (c *CableSegment) Drag(u float64) float64 {
	return force.MorisonDrag(c.DragCoeff, c.Density, force.ProjectedArea(2*c.Radius, c.Length), u)
}

func (c *CableSegment) Evaluate(u float64) float64 {
	if c.Vertical {
		return c.VerticalForce()
	}
	return c.Drag(u)
}

func (c *CableSegment) Diagnostics() []force.Diagnostic {
	return []force.Diagnostic{
		{Name: "buoyancy_fb4", Value: c.Buoyancy(), Unit: "N"},
		{Name: "vertical_fc", Value: c.VerticalForce(), Unit: "N"},
	}
}

func (c *CableSegment) Chart() force.ChartSpec {
	if c.Vertical {
		return force.ChartSpec{
			Title:    "(9) F(c) - vertical force on cable segment",
			XLabel:   "Current velocity (m/s)",
			YLabel:   "Vertical force (N)",
			Legend:   "F(c) = -m4 g + Fb4",
			Color:    "teal",
			RefLines: []force.RefLine{{Value: 0, Horizontal: true}},
		}
	}
	return force.ChartSpec{
		Title:  "(8) Hydrodynamic force on cable segment",
		XLabel: "Current velocity (m/s)",
		YLabel: "Drag force (N)",
		Legend: "Drag force on cable segment F(D)",
		Color:  "teal",
	}
}

func (c *CableSegment) GetParams() map[string]float64 {
	return map[string]float64{
		"mass":    c.Mass,
		"radius":  c.Radius,
		"length":  c.Length,
		"cd":      c.DragCoeff,
		"density": c.Density,
		"gravity": c.Gravity,
	}
}

func (c *CableSegment) SetParam(name string, value float64) error {
	switch name {
	case "mass":
		c.Mass = value
	case "radius":
		c.Radius = value
	case "length":
		c.Length = value
	case "cd":
		c.DragCoeff = value
	case "density":
		c.Density = value
	case "gravity":
		c.Gravity = value
	default:
		return unknownParam(c.Name(), name)
	}
	return nil
}
