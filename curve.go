package sprite

// CubicBez represents a cubic Bezier curve with control points P0, P1, P2, P3.
// P0 is the start point, P1 and P2 are control points, P3 is the end point.
type CubicBez struct {
	P0, P1, P2, P3 Point
}

// NewCubicBez creates a new cubic Bezier curve.
func NewCubicBez(p0, p1, p2, p3 Point) CubicBez {
	return CubicBez{P0: p0, P1: p1, P2: p2, P3: p3}
}

// Eval evaluates the curve at parameter t (0 to 1).
func (c CubicBez) Eval(t float64) Point {
	mt := 1.0 - t
	mt2 := mt * mt
	mt3 := mt2 * mt
	t2 := t * t
	t3 := t2 * t

	// (1-t)^3 * P0 + 3(1-t)^2*t * P1 + 3(1-t)*t^2 * P2 + t^3 * P3
	return Point{
		X: mt3*c.P0.X + 3*mt2*t*c.P1.X + 3*mt*t2*c.P2.X + t3*c.P3.X,
		Y: mt3*c.P0.Y + 3*mt2*t*c.P1.Y + 3*mt*t2*c.P2.Y + t3*c.P3.Y,
	}
}

// Start returns the starting point of the curve.
func (c CubicBez) Start() Point {
	return c.P0
}

// End returns the ending point of the curve.
func (c CubicBez) End() Point {
	return c.P3
}

// Scaled returns the curve with all control points multiplied by s.
func (c CubicBez) Scaled(s float64) CubicBez {
	return CubicBez{
		P0: c.P0.Mul(s),
		P1: c.P1.Mul(s),
		P2: c.P2.Mul(s),
		P3: c.P3.Mul(s),
	}
}

// Polyline samples the curve at n uniformly spaced parameter values,
// inclusive of both endpoints: t = i/(n-1) for i in [0, n).
// n must be at least 2; smaller values return the two endpoints.
func (c CubicBez) Polyline(n int) []Point {
	if n < 2 {
		return []Point{c.P0, c.P3}
	}
	pts := make([]Point, n)
	// Dividing per sample keeps the endpoints exact: i/(n-1) is 0 at the
	// first sample and exactly 1 at the last.
	for i := range pts {
		pts[i] = c.Eval(float64(i) / float64(n-1))
	}
	return pts
}
