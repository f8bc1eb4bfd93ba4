// Package force provides the primitives shared by every force curve.
//
// A force curve is a closed-form expression sampled over an evenly spaced
// one-dimensional domain:
//
//   - [Domain]: start, stop and sample count of the independent variable
//   - [Curve]: interface every component model implements
//   - [Series]: the sampled (x, force) pairs plus chart metadata
//   - [Sample]: evaluates a curve over its domain
//
// The hydrostatic and hydrodynamic building blocks ([Buoyancy],
// [MorisonDrag], [CylinderVolume]) live here so component models stay
// one-line expressions.
//
// # Example
//
//	c := physics.NewFloat()
//	s := force.Sample(c)
//	fmt.Println(s.Y[0]) // -1519
//
// # Determinism
//
// Curves are pure functions of their parameters. Sampling the same curve
// twice yields bit-identical arrays.
package force
