package shape

// Monotone wraps a segment that is monotone in both dimensions.
//
// The wrapper carries no extra data; it is a witness that allows bounding-box
// computation and inversion to take the fast path. Constructors that produce
// Monotone values are exactly the ones that split on ExtremaRanges.
type Monotone struct {
	Seg Segment
}

// Points returns the start and end point of the segment.
func (m Monotone) Points() (Point, Point) {
	return m.Seg.Start(), m.Seg.End()
}

// LeftPoint returns the endpoint which is more to the left.
func (m Monotone) LeftPoint() Point {
	start, end := m.Points()
	if start.X < end.X {
		return start
	}
	return end
}

// RightPoint returns the endpoint which is more to the right.
func (m Monotone) RightPoint() Point {
	start, end := m.Points()
	if start.X > end.X {
		return start
	}
	return end
}

// TopPoint returns the endpoint which is more to the top.
func (m Monotone) TopPoint() Point {
	start, end := m.Points()
	if start.Y < end.Y {
		return start
	}
	return end
}

// BotPoint returns the endpoint which is more to the bottom.
func (m Monotone) BotPoint() Point {
	start, end := m.Points()
	if start.Y > end.Y {
		return start
	}
	return end
}

// Eval evaluates the segment at parameter t.
func (m Monotone) Eval(t float64) Point {
	return m.Seg.Eval(t)
}

// Start returns the starting point of the segment.
func (m Monotone) Start() Point {
	return m.Seg.Start()
}

// End returns the ending point of the segment.
func (m Monotone) End() Point {
	return m.Seg.End()
}

// Subsegment returns the wrapped segment restricted to [t0, t1].
// A subsegment of a monotone segment is monotone again.
func (m Monotone) Subsegment(t0, t1 float64) Monotone {
	return Monotone{Seg: m.Seg.Subsegment(t0, t1)}
}

// Subdivide splits the segment at t=0.5 into two monotone halves.
func (m Monotone) Subdivide() (Monotone, Monotone) {
	a, b := m.Seg.Subdivide()
	return Monotone{Seg: a}, Monotone{Seg: b}
}

// Reversed returns the segment with opposite orientation.
func (m Monotone) Reversed() Monotone {
	return Monotone{Seg: m.Seg.Reversed()}
}

// Translated returns the segment moved by the given vector.
func (m Monotone) Translated(v Vec2) Monotone {
	return Monotone{Seg: m.Seg.Translated(v)}
}

// ExtremaRanges returns the single range [0, 1]: a monotone segment has no
// interior extrema by construction.
func (m Monotone) ExtremaRanges() []Range {
	return []Range{{Start: 0, End: 1}}
}

// BoundingBox returns the bounding box of the segment. Since the segment is
// monotone in both axes, the box is spanned by the endpoints alone.
func (m Monotone) BoundingBox() Rect {
	return RectFromPoints(m.Seg.Start(), m.Seg.End())
}

// Approx returns true if the wrapped segments are approximately equal.
func (m Monotone) Approx(other Monotone, tolerance float64) bool {
	return m.Seg.Approx(other.Seg, tolerance)
}

// SolveOneTForX finds the t value corresponding to an x value, clamped
// to [0, 1].
func (m Monotone) SolveOneTForX(x float64) float64 {
	start, end := m.Points()
	inc := start.X < end.X
	if (x <= start.X) == inc {
		return 0
	}
	if (x >= end.X) == inc {
		return 1
	}
	return singleRoot(m.Seg.SolveTForX(x))
}

// SolveOneTForY finds the t value corresponding to a y value, clamped
// to [0, 1].
func (m Monotone) SolveOneTForY(y float64) float64 {
	start, end := m.Points()
	inc := start.Y < end.Y
	if (y <= start.Y) == inc {
		return 0
	}
	if (y >= end.Y) == inc {
		return 1
	}
	return singleRoot(m.Seg.SolveTForY(y))
}

// SolveOneYForX finds the y value corresponding to an x value, clamped to
// the segment's vertical range.
func (m Monotone) SolveOneYForX(x float64) float64 {
	left, right := m.LeftPoint(), m.RightPoint()
	if x <= left.X {
		return left.Y
	}
	if x >= right.X {
		return right.Y
	}
	return singleRoot(m.Seg.SolveYForX(x))
}

// SolveOneXForY finds the x value corresponding to a y value, clamped to
// the segment's horizontal range.
func (m Monotone) SolveOneXForY(y float64) float64 {
	top, bot := m.TopPoint(), m.BotPoint()
	if y <= top.Y {
		return top.X
	}
	if y >= bot.Y {
		return bot.X
	}
	return singleRoot(m.Seg.SolveXForY(y))
}

// SolveMinX finds the minimal x value of the segment in the given vertical
// range. Monotonicity pins the minimum to one end of the range, selected by
// the endpoint configuration.
func (m Monotone) SolveMinX(vr Range) float64 {
	start, end := m.Points()
	if (start.X < end.X) == (start.Y < end.Y) {
		return m.SolveOneXForY(vr.Start)
	}
	return m.SolveOneXForY(vr.End)
}

// SolveMaxX finds the maximal x value of the segment in the given vertical
// range.
func (m Monotone) SolveMaxX(vr Range) float64 {
	return m.SolveMinX(vr.Reversed())
}

// Intersect intersects two monotone path segments, solving analytically if
// one of them is a line and falling back to bounding-box search if not.
// At most max points are reported.
func (m Monotone) Intersect(other Monotone, accuracy float64, max int) []Point {
	var seg Segment
	var line Line
	switch {
	case other.Seg.Kind() == KindLine:
		seg, line = m.Seg, other.Seg.Line()
	case m.Seg.Kind() == KindLine:
		seg, line = other.Seg, m.Seg.Line()
	default:
		return FindIntersectionsBBox(m, other, accuracy, max)
	}

	if !m.BoundingBox().Overlaps(other.BoundingBox()) {
		return nil
	}

	sects := seg.IntersectLine(line)
	out := make([]Point, 0, len(sects))
	for _, sect := range sects {
		if len(out) == max {
			break
		}
		out = append(out, line.Eval(sect.LineT))
	}
	return out
}

// singleRoot extracts exactly one root or panics. Zero or multiple roots on
// a monotone segment inside its coordinate range indicate a violated
// invariant of the decomposition.
func singleRoot(roots []float64) float64 {
	switch len(roots) {
	case 1:
		return roots[0]
	case 0:
		panic("shape: expected at least one root on monotone segment")
	default:
		panic("shape: expected at most one root on monotone segment")
	}
}
