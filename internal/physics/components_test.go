package physics_test

import (
	"errors"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/forcelab/internal/force"
	"github.com/san-kum/forcelab/internal/physics"
)

type component interface {
	force.Curve
	force.Configurable
}

func allComponents() []component {
	return []component{
		physics.NewFloat(),
		physics.NewFloatDrag(),
		physics.NewUmbilical(),
		physics.NewUmbilicalDrag(),
		physics.NewEcoMapper(),
		physics.NewVR2C(),
		physics.NewCableSegment(),
		physics.NewCableVertical(),
		physics.NewFin(),
	}
}

func diagnostic(c force.Curve, name string) float64 {
	for _, d := range c.Diagnostics() {
		if d.Name == name {
			return d.Value
		}
	}
	Fail("missing diagnostic " + name)
	return 0
}

var _ = Describe("Float", func() {
	It("equals -mg at zero draft offset", func() {
		f := physics.NewFloat()
		Expect(f.Evaluate(0)).To(Equal(-1519.0))
	})

	It("grows linearly with draft", func() {
		f := physics.NewFloat()
		slope := f.Density * f.Area * f.Gravity
		Expect(f.Evaluate(1) - f.Evaluate(0)).To(BeNumerically("~", slope, 1e-9))
	})

	It("vanishes at the equilibrium draft", func() {
		f := physics.NewFloat()
		Expect(f.Evaluate(f.EquilibriumDraft())).To(BeNumerically("~", 0, 1e-9))
		Expect(f.EquilibriumDraft()).To(BeNumerically("~", 0.7951, 1e-4))
	})

	It("samples 400 draft offsets from 0 to 15 m", func() {
		s := force.Sample(physics.NewFloat())
		Expect(s.Len()).To(Equal(400))
		Expect(s.X[0]).To(Equal(0.0))
		Expect(s.X[399]).To(BeNumerically("~", 15, 1e-12))
	})
})

var _ = Describe("Umbilical", func() {
	It("reports Archimedes buoyancy of the submerged cylinder", func() {
		u := physics.NewUmbilical()
		want := 1025 * math.Pi * 0.025 * 0.025 * 10 * 9.81
		Expect(u.Buoyancy()).To(BeNumerically("~", want, 1e-9))
		Expect(diagnostic(u, "buoyancy_fb1")).To(BeNumerically("~", 197.43, 0.01))
	})

	It("is weight plus buoyancy at rest", func() {
		u := physics.NewUmbilical()
		Expect(u.Evaluate(0)).To(BeNumerically("~", -50*9.81+u.Buoyancy(), 1e-9))
	})

	It("reports drag alone in drag mode", func() {
		d := physics.NewUmbilicalDrag()
		Expect(d.Name()).To(Equal("umbilical_drag"))
		Expect(d.Evaluate(2)).To(BeNumerically("~", 0.5*1.1*1025*0.5*4, 1e-9))
	})
})

var _ = Describe("TowedBody", func() {
	It("carries the Eco-mapper constants", func() {
		b := physics.NewEcoMapper()
		Expect(b.Name()).To(Equal("body_ecomapper"))
		Expect(b.Chart().Title).To(ContainSubstring("Eco-mapper"))
		Expect(b.Buoyancy()).To(BeNumerically("~", 303.72, 0.01))
	})

	It("is positively buoyant for the VR2C at rest", func() {
		b := physics.NewVR2C()
		Expect(b.Evaluate(0)).To(BeNumerically(">", 0))
	})
})

var _ = Describe("CableSegment", func() {
	It("has a velocity independent vertical force", func() {
		c := physics.NewCableVertical()
		Expect(c.Evaluate(0)).To(Equal(c.Evaluate(4.2)))
		Expect(c.Evaluate(0)).To(BeNumerically("~", -0.05*9.81+c.Buoyancy(), 1e-12))
	})

	It("uses the diameter times length as projected area", func() {
		c := physics.NewCableSegment()
		Expect(c.Evaluate(1)).To(BeNumerically("~", 0.5*1*1026*0.002, 1e-12))
	})
})

var _ = Describe("Fin", func() {
	It("feeds the attack angle to trig functions unchanged by default", func() {
		f := physics.NewFin()
		Expect(diagnostic(f, "trig_angle")).To(Equal(18.0))
		Expect(f.Warnings()).To(HaveLen(1))
	})

	It("converts degrees only when asked to", func() {
		f := physics.NewFin()
		Expect(f.SetParam("angle_degrees", 1)).To(Succeed())
		Expect(diagnostic(f, "trig_angle")).To(BeNumerically("~", 18*math.Pi/180, 1e-12))
		Expect(f.Warnings()).To(BeEmpty())
	})

	It("keeps the raw angle in the coefficients", func() {
		deg := physics.NewFin()
		deg.AngleDegrees = true
		rad := physics.NewFin()
		Expect(deg.Coefficients()).To(Equal(rad.Coefficients()))
	})

	It("builds the lift coefficient as a product of its terms", func() {
		c := physics.NewFin().Coefficients()
		Expect(c.Lift).To(BeNumerically("~", c.LiftFront*18*c.LiftBack, 1e-6))
		Expect(c.LiftBack).To(BeNumerically("~", 0.3*18*18, 1e-9))
		Expect(c.Drag).To(BeNumerically("~", 0.008+c.DragBack, 1e-6))
	})

	It("does not warn for small radian angles", func() {
		f := physics.NewFin()
		f.AttackAngle = 0.3
		Expect(f.Warnings()).To(BeEmpty())
	})
})

var _ = Describe("all components", func() {
	It("are deterministic", func() {
		for _, c := range allComponents() {
			a := force.Sample(c)
			b := force.Sample(c)
			for i := range a.Y {
				Expect(math.Float64bits(a.Y[i])).To(Equal(math.Float64bits(b.Y[i])), c.Name())
			}
		}
	})

	It("have odd drag terms", func() {
		drags := []force.Curve{
			physics.NewFloatDrag(),
			physics.NewUmbilicalDrag(),
			physics.NewCableSegment(),
			physics.NewFin(),
		}
		for _, c := range drags {
			for _, v := range []float64{0.25, 1, 3.3, 5} {
				Expect(c.Evaluate(-v)).To(Equal(-c.Evaluate(v)), c.Name())
			}
		}

		u := physics.NewUmbilical()
		b := physics.NewEcoMapper()
		Expect(u.Drag(-2)).To(Equal(-u.Drag(2)))
		Expect(b.Drag(-2)).To(Equal(-b.Drag(2)))
	})

	It("have zero drag on a single zero-velocity sample", func() {
		zero := force.Domain{Start: 0, Stop: 0, Samples: 1}
		drags := []force.Curve{
			physics.NewFloatDrag(),
			physics.NewUmbilicalDrag(),
			physics.NewCableSegment(),
			physics.NewFin(),
		}
		for _, c := range drags {
			s := force.SampleOver(c, zero)
			Expect(s.Y).To(Equal([]float64{0}), c.Name())
		}
	})

	It("round-trip every parameter through SetParam", func() {
		for _, c := range allComponents() {
			for name, v := range c.GetParams() {
				Expect(c.SetParam(name, v)).To(Succeed(), c.Name()+"."+name)
			}
		}
	})

	It("reject unknown parameters", func() {
		for _, c := range allComponents() {
			err := c.SetParam("bogus", 1)
			Expect(errors.Is(err, force.ErrUnknownParam)).To(BeTrue(), c.Name())
		}
	})

	It("have unique names", func() {
		seen := map[string]bool{}
		for _, c := range allComponents() {
			Expect(seen).NotTo(HaveKey(c.Name()))
			seen[c.Name()] = true
		}
	})
})
