package shape

import "testing"

func TestSolveForCoordinateAtSampledPoints(t *testing.T) {
	const eps = 1e-3
	for _, seg := range testSegments() {
		for _, u := range []float64{0.01, 0.2, 0.5, 0.7, 0.99} {
			p := seg.Eval(u)

			if ts := seg.SolveTForX(p.X); !approxEqFloats(ts, []float64{u}, eps) {
				t.Errorf("SolveTForX(%v) = %v, want [%v]", p.X, ts, u)
			}
			if ts := seg.SolveTForY(p.Y); !approxEqFloats(ts, []float64{u}, eps) {
				t.Errorf("SolveTForY(%v) = %v, want [%v]", p.Y, ts, u)
			}
			if ys := seg.SolveYForX(p.X); !approxEqFloats(ys, []float64{p.Y}, eps) {
				t.Errorf("SolveYForX(%v) = %v, want [%v]", p.X, ys, p.Y)
			}
			if xs := seg.SolveXForY(p.Y); !approxEqFloats(xs, []float64{p.X}, eps) {
				t.Errorf("SolveXForY(%v) = %v, want [%v]", p.Y, xs, p.X)
			}
		}
	}
}

func TestSolveForCoordinateOutOfBounds(t *testing.T) {
	for _, seg := range testSegments() {
		if xs := seg.SolveXForY(-10); len(xs) != 0 {
			t.Errorf("SolveXForY(-10) = %v, want empty", xs)
		}
		if xs := seg.SolveXForY(100); len(xs) != 0 {
			t.Errorf("SolveXForY(100) = %v, want empty", xs)
		}
		if ys := seg.SolveYForX(-20); len(ys) != 0 {
			t.Errorf("SolveYForX(-20) = %v, want empty", ys)
		}
		if ys := seg.SolveYForX(100); len(ys) != 0 {
			t.Errorf("SolveYForX(100) = %v, want empty", ys)
		}
	}
}

func TestSolveFlatCubicKeepsEndpointRoot(t *testing.T) {
	// The x-polynomial of this cubic has a vanishing leading coefficient.
	// Without degrading to a quadratic, the root near the start is lost.
	c := CubicBez{
		P0: Pt(0, 0),
		P1: Pt(10, 25),
		P2: Pt(20, 50),
		P3: Pt(30.0000000001, 100),
	}.Seg()

	ts := c.SolveTForX(0.001)
	if len(ts) != 1 {
		t.Fatalf("SolveTForX near start = %v, want one root", ts)
	}
	if ts[0] < -solveEpsilon || ts[0] > 0.01 {
		t.Errorf("root %v not near 0", ts[0])
	}
}

func TestIntersectLineWithSegments(t *testing.T) {
	diag := NewLine(Pt(0, 0), Pt(100, 100))

	tests := []struct {
		name   string
		seg    Segment
		points []Point
	}{
		{
			name:   "crossing line",
			seg:    Line{P0: Pt(0, 50), P1: Pt(100, 50)}.Seg(),
			points: []Point{Pt(50, 50)},
		},
		{
			name:   "parallel line",
			seg:    Line{P0: Pt(0, 10), P1: Pt(90, 100)}.Seg(),
			points: nil,
		},
		{
			name:   "quad crossing once",
			seg:    QuadBez{P0: Pt(0, 60), P1: Pt(50, 60), P2: Pt(100, 60)}.Seg(),
			points: []Point{Pt(60, 60)},
		},
		{
			name: "cubic crossing once",
			seg: CubicBez{
				P0: Pt(0, 20), P1: Pt(40, 100),
				P2: Pt(60, -20), P3: Pt(100, 80),
			}.Seg(),
			// The diagonal y=x crosses this wavy cubic once, near t=0.44.
			points: nil, // count and position checked separately
		},
	}

	for _, tt := range tests[:3] {
		t.Run(tt.name, func(t *testing.T) {
			sects := tt.seg.IntersectLine(diag)
			got := make([]Point, 0, len(sects))
			for _, s := range sects {
				got = append(got, diag.Eval(s.LineT))
			}
			if !approxEqPoints(got, tt.points, 1e-6) {
				t.Errorf("intersections = %v, want %v", got, tt.points)
			}
		})
	}

	t.Run("intersection points lie on both curves", func(t *testing.T) {
		seg := tests[3].seg
		sects := seg.IntersectLine(diag)
		if len(sects) != 1 {
			t.Errorf("got %d intersections, want 1", len(sects))
		}
		for _, s := range sects {
			onLine := diag.Eval(s.LineT)
			onSeg := seg.Eval(s.SegmentT)
			if !onLine.Approx(onSeg, 1e-6) {
				t.Errorf("mismatch: line %v vs segment %v", onLine, onSeg)
			}
		}
	})
}
