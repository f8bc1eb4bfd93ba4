package experiment

import (
	"fmt"
	"sort"

	"github.com/san-kum/forcelab/internal/force"
	"github.com/san-kum/forcelab/internal/physics"
)

type Registry struct {
	curves map[string]func() force.Curve
}

func NewRegistry() *Registry {
	r := &Registry{
		curves: make(map[string]func() force.Curve),
	}

	r.curves["float"] = func() force.Curve { return physics.NewFloat() }
	r.curves["float_drag"] = func() force.Curve { return physics.NewFloatDrag() }
	r.curves["umbilical"] = func() force.Curve { return physics.NewUmbilical() }
	r.curves["umbilical_drag"] = func() force.Curve { return physics.NewUmbilicalDrag() }
	r.curves["body_ecomapper"] = func() force.Curve { return physics.NewEcoMapper() }
	r.curves["body_vr2c"] = func() force.Curve { return physics.NewVR2C() }
	r.curves["cable_drag"] = func() force.Curve { return physics.NewCableSegment() }
	r.curves["cable_vertical"] = func() force.Curve { return physics.NewCableVertical() }
	r.curves["fin"] = func() force.Curve { return physics.NewFin() }

	return r
}

// GetCurve returns a fresh instance, so parameter overrides never leak
// between runs.
func (r *Registry) GetCurve(name string) (force.Curve, error) {
	fn, ok := r.curves[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", force.ErrUnknownCurve, name)
	}
	return fn(), nil
}

func (r *Registry) ListCurves() []string {
	names := make([]string, 0, len(r.curves))
	for name := range r.curves {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
