package sprite

import (
	"math"
	"testing"
)

const epsilon = 1e-10

func pointsEqual(p1, p2 Point, eps float64) bool {
	return math.Abs(p1.X-p2.X) < eps && math.Abs(p1.Y-p2.Y) < eps
}

func TestCubicBez_Eval(t *testing.T) {
	c := NewCubicBez(Pt(0, 0), Pt(0, 10), Pt(10, 10), Pt(10, 0))

	tests := []struct {
		name   string
		t      float64
		expect Point
	}{
		{"t=0", 0, Pt(0, 0)},
		{"t=1", 1, Pt(10, 0)},
		// B(0.5) = (P0 + 3*P1 + 3*P2 + P3) / 8
		{"t=0.5", 0.5, Pt(5, 7.5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := c.Eval(tt.t)
			if !pointsEqual(result, tt.expect, epsilon) {
				t.Errorf("Eval(%v) = %v, want %v", tt.t, result, tt.expect)
			}
		})
	}
}

func TestCubicBez_StartEnd(t *testing.T) {
	c := NewCubicBez(Pt(1, 2), Pt(3, 4), Pt(5, 6), Pt(7, 8))

	if !pointsEqual(c.Start(), Pt(1, 2), epsilon) {
		t.Errorf("Start() = %v, want (1, 2)", c.Start())
	}
	if !pointsEqual(c.End(), Pt(7, 8), epsilon) {
		t.Errorf("End() = %v, want (7, 8)", c.End())
	}
}

func TestCubicBez_Scaled(t *testing.T) {
	c := NewCubicBez(Pt(1, 2), Pt(3, 4), Pt(5, 6), Pt(7, 8))
	s := c.Scaled(10)

	if !pointsEqual(s.P0, Pt(10, 20), epsilon) {
		t.Errorf("P0 = %v, want (10, 20)", s.P0)
	}
	if !pointsEqual(s.P3, Pt(70, 80), epsilon) {
		t.Errorf("P3 = %v, want (70, 80)", s.P3)
	}

	// Scaling control points scales every point on the curve
	orig := c.Eval(0.37).Mul(10)
	got := s.Eval(0.37)
	if !pointsEqual(got, orig, 1e-9) {
		t.Errorf("scaled Eval = %v, want %v", got, orig)
	}
}

func TestCubicBez_Polyline(t *testing.T) {
	c := NewCubicBez(Pt(0, 0), Pt(0, 10), Pt(10, 10), Pt(10, 0))

	pts := c.Polyline(5)
	if len(pts) != 5 {
		t.Fatalf("expected 5 points, got %d", len(pts))
	}

	// The first and last samples are the exact curve endpoints
	if pts[0] != c.P0 {
		t.Errorf("first sample = %v, want %v", pts[0], c.P0)
	}
	if pts[4] != c.P3 {
		t.Errorf("last sample = %v, want %v", pts[4], c.P3)
	}

	// Middle sample is the curve midpoint
	if !pointsEqual(pts[2], Pt(5, 7.5), epsilon) {
		t.Errorf("middle sample = %v, want (5, 7.5)", pts[2])
	}
}

func TestCubicBez_PolylineSmallN(t *testing.T) {
	c := NewCubicBez(Pt(0, 0), Pt(1, 1), Pt(2, 1), Pt(3, 0))

	for _, n := range []int{-1, 0, 1, 2} {
		pts := c.Polyline(n)
		if len(pts) != 2 {
			t.Errorf("Polyline(%d): expected 2 points, got %d", n, len(pts))
			continue
		}
		if pts[0] != c.P0 || pts[1] != c.P3 {
			t.Errorf("Polyline(%d): expected endpoints, got %v, %v", n, pts[0], pts[1])
		}
	}
}

func TestCubicBez_PolylineMonotonicX(t *testing.T) {
	// Control points with non-decreasing X give a polyline with
	// non-decreasing X; the stroker depends on ordered samples.
	c := NewCubicBez(Pt(160, 560), Pt(360, 560), Pt(664, 250), Pt(864, 535))

	pts := c.Polyline(100)
	for i := 1; i < len(pts); i++ {
		if pts[i].X < pts[i-1].X {
			t.Fatalf("X decreased at sample %d: %v -> %v", i, pts[i-1].X, pts[i].X)
		}
	}
}
