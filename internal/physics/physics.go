package physics

import "github.com/san-kum/forcelab/internal/force"

const (
	SeawaterDensity = 1026.0
	Gravity         = 9.81
)

type sweep struct {
	domain force.Domain
}

func (s *sweep) Domain() force.Domain     { return s.domain }
func (s *sweep) SetDomain(d force.Domain) { s.domain = d }

func velocityDomain(stop float64, samples int) sweep {
	return sweep{domain: force.Domain{Start: 0, Stop: stop, Samples: samples}}
}

func unknownParam(curve, name string) error {
	return &force.ParamError{Curve: curve, Param: name}
}

// cylinderBuoyancy is rho * (pi r^2 L) * g for a fully submerged cylinder.
func cylinderBuoyancy(rho, radius, length, g float64) float64 {
	return force.Buoyancy(rho, force.CylinderVolume(radius, length), g)
}
