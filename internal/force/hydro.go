package force

import "math"

// Buoyancy is Archimedes' force of a fully submerged volume.
func Buoyancy(rho, volume, g float64) float64 {
	return rho * volume * g
}

func Weight(mass, g float64) float64 {
	return mass * g
}

func CylinderVolume(radius, length float64) float64 {
	return math.Pi * radius * radius * length
}

// ProjectedArea of a cylinder seen broadside to the flow.
func ProjectedArea(diameter, length float64) float64 {
	return diameter * length
}

// MorisonDrag is the drag term of the Morison equation, 1/2 Cd rho S u|u|.
// It is odd in u.
func MorisonDrag(cd, rho, area, u float64) float64 {
	return 0.5 * cd * rho * area * u * math.Abs(u)
}
