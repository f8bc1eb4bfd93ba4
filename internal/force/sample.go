package force

// Sample evaluates c over its own domain.
func Sample(c Curve) *Series {
	return SampleOver(c, c.Domain())
}

func SampleOver(c Curve, d Domain) *Series {
	xs := d.Values()
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = c.Evaluate(x)
	}
	return &Series{
		Name:  c.Name(),
		X:     xs,
		Y:     ys,
		Chart: c.Chart(),
	}
}
