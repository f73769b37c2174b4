package raster

import "math"

// arcTolerance is the maximum sagitta error, in pixels, allowed when
// flattening cap arcs to chords.
const arcTolerance = 0.25

// Outline is a closed polygonal ring enclosing the stroked area,
// ready for coverage filling.
type Outline struct {
	pts []Point
}

// IsEmpty reports whether the outline contains no geometry.
func (o Outline) IsEmpty() bool {
	return len(o.pts) == 0
}

// Stroke expands a polyline into the closed outline of its stroke with
// the given width and round caps.
//
// Offsets use per-vertex normals from central differences. For densely
// sampled polylines the angle between adjacent segments is tiny, so the
// offset error stays far below a pixel; this is the polyline counterpart
// of per-segment offsetting with round joins.
//
// A polyline whose points all coincide degenerates to the cap disk: a
// full circle of radius width/2 around the point.
func Stroke(pts []Point, width float64) Outline {
	if width <= 0 || len(pts) == 0 {
		return Outline{}
	}
	radius := width / 2

	pts = dedupe(pts)
	if len(pts) == 1 {
		return Outline{pts: circle(pts[0], radius)}
	}

	m := len(pts)
	normals := vertexNormals(pts)

	ring := make([]Point, 0, 2*m+2*arcSteps(radius, math.Pi))

	// Left side, forward.
	for i := 0; i < m; i++ {
		ring = append(ring, pts[i].Add(normals[i].Scale(radius)))
	}

	// End cap: half turn from +normal to -normal, bulging through the
	// forward tangent direction.
	endAngle := normals[m-1].Angle()
	ring = appendArc(ring, pts[m-1], radius, endAngle, endAngle-math.Pi)

	// Right side, reversed.
	for i := m - 2; i >= 0; i-- {
		ring = append(ring, pts[i].Add(normals[i].Scale(-radius)))
	}

	// Start cap, continuing in the same rotational direction to keep the
	// ring's winding consistent.
	startAngle := normals[0].Angle()
	ring = appendArc(ring, pts[0], radius, startAngle-math.Pi, startAngle-2*math.Pi)

	return Outline{pts: ring}
}

// dedupe removes consecutive coincident points without touching the
// caller's slice.
func dedupe(pts []Point) []Point {
	out := make([]Point, 1, len(pts))
	out[0] = pts[0]
	for _, p := range pts[1:] {
		if p.Sub(out[len(out)-1]).LengthSquared() > 1e-12 {
			out = append(out, p)
		}
	}
	return out
}

// vertexNormals computes a unit normal per vertex from the central
// difference of the neighboring points. The first and last vertex use the
// one-sided difference.
func vertexNormals(pts []Point) []Vec2 {
	m := len(pts)
	normals := make([]Vec2, m)
	for i := 0; i < m; i++ {
		var dir Vec2
		switch i {
		case 0:
			dir = pts[1].Sub(pts[0])
		case m - 1:
			dir = pts[m-1].Sub(pts[m-2])
		default:
			dir = pts[i+1].Sub(pts[i-1])
		}
		normals[i] = dir.Normalize().Perp()
	}

	// A zero central difference means the curve folds back on itself
	// exactly; reuse the previous normal to keep the sides continuous.
	for i := 1; i < m; i++ {
		if normals[i].LengthSquared() < 0.5 {
			normals[i] = normals[i-1]
		}
	}
	return normals
}

// circle returns a full circular ring around center.
func circle(center Point, radius float64) []Point {
	start := Point{X: center.X + radius, Y: center.Y}
	return appendArc([]Point{start}, center, radius, 0, 2*math.Pi)
}

// appendArc flattens the arc from angle a0 to a1 around center into
// chords and appends the points to dst. The point at a0 is assumed to be
// already present; the point at a1 is included.
func appendArc(dst []Point, center Point, radius, a0, a1 float64) []Point {
	delta := a1 - a0
	steps := arcSteps(radius, math.Abs(delta))
	for i := 1; i <= steps; i++ {
		a := a0 + delta*float64(i)/float64(steps)
		dst = append(dst, Point{
			X: center.X + radius*math.Cos(a),
			Y: center.Y + radius*math.Sin(a),
		})
	}
	return dst
}

// arcSteps returns the number of chords needed to keep the sagitta error
// of a flattened arc within arcTolerance.
func arcSteps(radius, angle float64) int {
	if angle <= 0 || radius <= 0 {
		return 1
	}
	if radius <= arcTolerance {
		return 4
	}
	maxAngle := 2 * math.Acos(1-arcTolerance/radius)
	steps := int(math.Ceil(angle / maxAngle))
	if steps < 1 {
		steps = 1
	}
	return steps
}
