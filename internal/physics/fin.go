package physics

import (
	"fmt"
	"math"

	"github.com/san-kum/forcelab/internal/force"
)

// Fin is the combined hydrodynamic force of the raft's control fins
// (Wang et al., 2018):
//
//	F = N * 1/2 Cd rho S (u cos a)|u cos a| + 1/2 Cl rho S (u sin a)|u sin a|
//
// The drag term is scaled by the fin count, the lift term is not.
//
// AttackAngle is handed to sin and cos unchanged unless AngleDegrees is
// set, so the default of 18 is read as 18 rad. The lift and drag
// coefficients always use the raw AttackAngle. Warnings reports the
// ambiguity instead of guessing a unit.
type Fin struct {
	sweep
	Density      float64
	Area         float64
	Sweep        float64 // chi, rad
	AspectRatio  float64 // lambda
	AttackAngle  float64
	CrossDrag    float64 // Cdc
	ZeroLiftDrag float64 // Cd0
	Pi           float64
	Count        float64
	AngleDegrees bool
}

func NewFin() *Fin {
	return &Fin{
		sweep:        velocityDomain(5, 100),
		Density:      SeawaterDensity,
		Area:         0.06,
		Sweep:        0.25,
		AspectRatio:  2,
		AttackAngle:  18,
		CrossDrag:    0.6,
		ZeroLiftDrag: 0.008,
		Pi:           3.14,
		Count:        6,
	}
}

func (f *Fin) Name() string { return "fin" }

type FinCoefficients struct {
	SqrtDenom float64
	LiftFront float64
	LiftBack  float64
	Lift      float64
	DragBack  float64
	Drag      float64
}

func (f *Fin) Coefficients() FinCoefficients {
	cosChi := math.Cos(f.Sweep)
	cos4Chi := math.Pow(cosChi, 4)
	lambda := f.AspectRatio
	alpha := f.AttackAngle

	var c FinCoefficients
	c.SqrtDenom = cosChi * math.Sqrt(lambda*lambda/cos4Chi+4)
	c.LiftFront = (1.8 * f.Pi * lambda) / (cosChi*c.SqrtDenom + 1.8)
	c.LiftBack = (f.CrossDrag / lambda) * alpha * alpha
	c.Lift = c.LiftFront * alpha * c.LiftBack
	c.DragBack = c.Lift * c.Lift / 0.9 * f.Pi * lambda
	c.Drag = f.ZeroLiftDrag + c.DragBack
	return c
}

// trigAngle is the angle fed to sin and cos, in radians.
func (f *Fin) trigAngle() float64 {
	if f.AngleDegrees {
		return f.AttackAngle * math.Pi / 180
	}
	return f.AttackAngle
}

func (f *Fin) Evaluate(u float64) float64 {
	c := f.Coefficients()
	sin, cos := math.Sincos(f.trigAngle())

	drag := force.MorisonDrag(c.Drag, f.Density, f.Area, u*cos)
	lift := force.MorisonDrag(c.Lift, f.Density, f.Area, u*sin)
	return f.Count*drag + lift
}

func (f *Fin) Diagnostics() []force.Diagnostic {
	c := f.Coefficients()
	return []force.Diagnostic{
		{Name: "sqrt_denom", Value: c.SqrtDenom},
		{Name: "lift_front", Value: c.LiftFront},
		{Name: "lift_back", Value: c.LiftBack},
		{Name: "c_lift", Value: c.Lift},
		{Name: "drag_back", Value: c.DragBack},
		{Name: "c_drag", Value: c.Drag},
		{Name: "trig_angle", Value: f.trigAngle(), Unit: "rad"},
	}
}

// Warnings flags an attack angle that only makes sense in degrees but is
// being fed to the trig terms as radians.
func (f *Fin) Warnings() []string {
	if f.AngleDegrees || math.Abs(f.AttackAngle) <= 2*math.Pi {
		return nil
	}
	return []string{fmt.Sprintf(
		"attack angle %g exceeds 2π but is used as radians; set angle_degrees=1 to convert",
		f.AttackAngle,
	)}
}

func (f *Fin) Chart() force.ChartSpec {
	return force.ChartSpec{
		Title:  "(5,6) F(Fin)",
		XLabel: "Variation in velocity, u_x (m/s)",
		YLabel: "Fin force (N)",
		Legend: "Hydrodynamic force of fin F(fin)",
		Color:  "teal",
	}
}

func (f *Fin) GetParams() map[string]float64 {
	deg := 0.0
	if f.AngleDegrees {
		deg = 1
	}
	return map[string]float64{
		"density":        f.Density,
		"area":           f.Area,
		"sweep":          f.Sweep,
		"aspect_ratio":   f.AspectRatio,
		"attack_angle":   f.AttackAngle,
		"cross_drag":     f.CrossDrag,
		"zero_lift_drag": f.ZeroLiftDrag,
		"pi":             f.Pi,
		"count":          f.Count,
		"angle_degrees":  deg,
	}
}

func (f *Fin) SetParam(name string, value float64) error {
	switch name {
	case "density":
		f.Density = value
	case "area":
		f.Area = value
	case "sweep":
		f.Sweep = value
	case "aspect_ratio":
		f.AspectRatio = value
	case "attack_angle":
		f.AttackAngle = value
	case "cross_drag":
		f.CrossDrag = value
	case "zero_lift_drag":
		f.ZeroLiftDrag = value
	case "pi":
		f.Pi = value
	case "count":
		f.Count = value
	case "angle_degrees":
		f.AngleDegrees = value != 0
	default:
		return unknownParam(f.Name(), name)
	}
	return nil
}
