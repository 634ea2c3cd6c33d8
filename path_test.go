package shape

import "testing"

func TestPathSegmentsClosesSubpaths(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 0)
	p.LineTo(10, 0)
	p.LineTo(10, 10)
	p.Close()

	segs := p.Segments()
	if len(segs) != 3 {
		t.Fatalf("got %d segments, want 3", len(segs))
	}
	closing := segs[2].Line()
	if closing.P0 != Pt(10, 10) || closing.P1 != Pt(0, 0) {
		t.Errorf("closing segment = %v", closing)
	}
}

func TestPathSegmentsSkipsRedundantClose(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 0)
	p.LineTo(10, 0)
	p.LineTo(0, 0)
	p.Close()

	if segs := p.Segments(); len(segs) != 2 {
		t.Errorf("got %d segments, want 2", len(segs))
	}
}

func TestPathRectangle(t *testing.T) {
	p := NewPath()
	p.Rectangle(1, 2, 10, 20)

	segs := p.Segments()
	if len(segs) != 4 {
		t.Fatalf("got %d segments, want 4", len(segs))
	}
	bbox := p.BoundingBox()
	if !bbox.Approx(Rect{X0: 1, Y0: 2, X1: 11, Y1: 22}, 1e-9) {
		t.Errorf("bounding box = %v", bbox)
	}
}

func TestPathCircleApproximation(t *testing.T) {
	p := NewPath()
	p.Circle(50, 50, 30)

	for _, seg := range p.Segments() {
		for i := 0; i <= 10; i++ {
			pt := seg.Eval(float64(i) / 10)
			dist := pt.Distance(Pt(50, 50))
			if !almostEqual(dist, 30, 0.1) {
				t.Errorf("point %v at distance %v from center, want 30", pt, dist)
			}
		}
	}
}

func TestPathArcEmitsCubics(t *testing.T) {
	p := NewPath()
	p.MoveTo(100, 50)
	p.Arc(50, 50, 50, 0, 3)

	segs := p.Segments()
	if len(segs) == 0 {
		t.Fatal("no segments")
	}
	for _, seg := range segs {
		if seg.Kind() != KindCubic {
			t.Errorf("arc produced %v, want only cubics", seg.Kind())
		}
	}
}

func TestPathExtendAndClone(t *testing.T) {
	a := NewPath()
	a.Rectangle(0, 0, 5, 5)

	b := a.Clone()
	b.Rectangle(10, 10, 5, 5)

	if len(a.Segments()) != 4 {
		t.Errorf("clone mutated the original")
	}

	c := NewPath()
	c.Extend(a)
	c.Extend(b)
	if len(c.Segments()) != 12 {
		t.Errorf("got %d segments, want 12", len(c.Segments()))
	}
}

func TestPathTranslated(t *testing.T) {
	p := NewPath()
	p.Rectangle(0, 0, 10, 10)

	moved := p.Translated(V2(5, -3))
	bbox := moved.BoundingBox()
	if !bbox.Approx(Rect{X0: 5, Y0: -3, X1: 15, Y1: 7}, 1e-9) {
		t.Errorf("bounding box = %v", bbox)
	}
}
