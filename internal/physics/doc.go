// Package physics provides the force models of a towed underwater vehicle
// system: surface float, umbilical, towed body, towed-body cable segment
// and control fins.
//
// Each model implements [force.Curve] and [force.Configurable]:
//
//   - [Float]: net vertical force of the float over draft offset
//   - [FloatDrag]: Morison drag of the float over horizontal velocity
//   - [Umbilical]: net force (or drag alone) of the umbilical
//   - [TowedBody]: net force of a towed vehicle (Eco-mapper, VR2C)
//   - [CableSegment]: drag and vertical force of one cable segment
//   - [Fin]: combined drag and lift of the control fins
//
// Defaults are the measured or datasheet constants of each component;
// override them with SetParam.
package physics
