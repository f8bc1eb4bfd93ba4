package physics

import (
	"github.com/san-kum/forcelab/internal/force"
)

// TowedBody models a torpedo-shaped vehicle as a submerged cylinder:
// F = -m2 g + Fb2 + Fd2(u).
type TowedBody struct {
	sweep
	ID        string
	Vehicle   string
	Mass      float64
	Diameter  float64
	Length    float64
	DragCoeff float64
	Density   float64
	Gravity   float64
}

// NewEcoMapper returns the YSI Eco-mapper: 70 lb, 14.7 cm by 70 in.
func NewEcoMapper() *TowedBody {
	return &TowedBody{
		sweep:     velocityDomain(5, 100),
		ID:        "body_ecomapper",
		Vehicle:   "Eco-mapper vehicle",
		Mass:      31.75,
		Diameter:  0.147,
		Length:    1.778,
		DragCoeff: 0.133,
		Density:   SeawaterDensity,
		Gravity:   Gravity,
	}
}

// NewVR2C returns the Liquid Robotics Mini VR2C.
func NewVR2C() *TowedBody {
	return &TowedBody{
		sweep:     velocityDomain(5, 100),
		ID:        "body_vr2c",
		Vehicle:   "VR2C vehicle",
		Mass:      0.7,
		Diameter:  0.054,
		Length:    0.317,
		DragCoeff: 0.3, // provisional, override with cd
		Density:   SeawaterDensity,
		Gravity:   Gravity,
	}
}

func (b *TowedBody) Name() string { return b.ID }

func (b *TowedBody) Buoyancy() float64 {
	return cylinderBuoyancy(b.Density, b.Diameter/2, b.Length, b.Gravity)
}

func (b *TowedBody) Drag(u float64) float64 {
	return force.MorisonDrag(b.DragCoeff, b.Density, force.ProjectedArea(b.Diameter, b.Length), u)
}

func (b *TowedBody) Evaluate(u float64) float64 {
	return (-b.Mass * b.Gravity) + b.Buoyancy() + b.Drag(u)
}

func (b *TowedBody) Diagnostics() []force.Diagnostic {
	return []force.Diagnostic{
		{Name: "buoyancy_fb2", Value: b.Buoyancy(), Unit: "N"},
		{Name: "weight", Value: force.Weight(b.Mass, b.Gravity), Unit: "N"},
	}
}

func (b *TowedBody) Chart() force.ChartSpec {
	return force.ChartSpec{
		Title:  "(4) F(body) - " + b.Vehicle,
		XLabel: "Variation in velocity, u_x (m/s)",
		YLabel: "Body force, F_body (N)",
		Legend: "F(body)",
		Color:  "teal",
	}
}

func (b *TowedBody) GetParams() map[string]float64 {
	return map[string]float64{
		"mass":     b.Mass,
		"diameter": b.Diameter,
		"length":   b.Length,
		"cd":       b.DragCoeff,
		"density":  b.Density,
		"gravity":  b.Gravity,
	}
}

func (b *TowedBody) SetParam(name string, value float64) error {
	switch name {
	case "mass":
		b.Mass = value
	case "diameter":
		b.Diameter = value
	case "length":
		b.Length = value
	case "cd":
		b.DragCoeff = value
	case "density":
		b.Density = value
	case "gravity":
		b.Gravity = value
	default:
		return unknownParam(b.Name(), name)
	}
	return nil
}
