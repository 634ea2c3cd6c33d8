package shape

// SegmentKind discriminates the three curve variants of a Segment.
type SegmentKind uint8

const (
	// KindLine is a straight line segment.
	KindLine SegmentKind = iota
	// KindQuad is a quadratic Bezier segment.
	KindQuad
	// KindCubic is a cubic Bezier segment.
	KindCubic
)

// Segment is one segment of a path: a line, a quadratic Bezier or a cubic
// Bezier. It is a tagged variant rather than an interface so that the hot
// evaluation and inversion paths stay free of dynamic dispatch.
type Segment struct {
	kind SegmentKind
	p    [4]Point
}

// Kind returns the variant of the segment.
func (s Segment) Kind() SegmentKind {
	return s.kind
}

// Line returns the line representation. Only valid for KindLine.
func (s Segment) Line() Line {
	return Line{P0: s.p[0], P1: s.p[1]}
}

// Quad returns the quadratic representation. Only valid for KindQuad.
func (s Segment) Quad() QuadBez {
	return QuadBez{P0: s.p[0], P1: s.p[1], P2: s.p[2]}
}

// Cubic returns the cubic representation. Only valid for KindCubic.
func (s Segment) Cubic() CubicBez {
	return CubicBez{P0: s.p[0], P1: s.p[1], P2: s.p[2], P3: s.p[3]}
}

// Eval evaluates the segment at parameter t (0 to 1).
func (s Segment) Eval(t float64) Point {
	switch s.kind {
	case KindLine:
		return s.Line().Eval(t)
	case KindQuad:
		return s.Quad().Eval(t)
	default:
		return s.Cubic().Eval(t)
	}
}

// Start returns the starting point of the segment.
func (s Segment) Start() Point {
	return s.p[0]
}

// End returns the ending point of the segment.
func (s Segment) End() Point {
	switch s.kind {
	case KindLine:
		return s.p[1]
	case KindQuad:
		return s.p[2]
	default:
		return s.p[3]
	}
}

// Subsegment returns the segment restricted to [t0, t1], re-parameterized
// to [0, 1].
func (s Segment) Subsegment(t0, t1 float64) Segment {
	switch s.kind {
	case KindLine:
		return s.Line().Subsegment(t0, t1).Seg()
	case KindQuad:
		return s.Quad().Subsegment(t0, t1).Seg()
	default:
		return s.Cubic().Subsegment(t0, t1).Seg()
	}
}

// Subdivide splits the segment at t=0.5 into two halves.
func (s Segment) Subdivide() (Segment, Segment) {
	switch s.kind {
	case KindLine:
		a, b := s.Line().Subdivide()
		return a.Seg(), b.Seg()
	case KindQuad:
		a, b := s.Quad().Subdivide()
		return a.Seg(), b.Seg()
	default:
		a, b := s.Cubic().Subdivide()
		return a.Seg(), b.Seg()
	}
}

// Extrema returns interior parameter values where the x- or y-derivative
// vanishes, in ascending order.
func (s Segment) Extrema() []float64 {
	switch s.kind {
	case KindLine:
		return nil
	case KindQuad:
		return s.Quad().Extrema()
	default:
		return s.Cubic().Extrema()
	}
}

// ExtremaRanges returns the closed cover of [0, 1] between consecutive
// extrema. On each of the up to 5 returned sub-intervals the segment is
// monotone in both axes.
func (s Segment) ExtremaRanges() []Range {
	return extremaRanges(s.Extrema())
}

// BoundingBox returns the tight axis-aligned bounding box of the segment.
func (s Segment) BoundingBox() Rect {
	switch s.kind {
	case KindLine:
		return s.Line().BoundingBox()
	case KindQuad:
		return s.Quad().BoundingBox()
	default:
		return s.Cubic().BoundingBox()
	}
}

// Reversed returns the segment with opposite orientation.
func (s Segment) Reversed() Segment {
	switch s.kind {
	case KindLine:
		return s.Line().Reversed().Seg()
	case KindQuad:
		return s.Quad().Reversed().Seg()
	default:
		return s.Cubic().Reversed().Seg()
	}
}

// Translated returns the segment moved by the given vector.
func (s Segment) Translated(v Vec2) Segment {
	switch s.kind {
	case KindLine:
		return s.Line().Translated(v).Seg()
	case KindQuad:
		return s.Quad().Translated(v).Seg()
	default:
		return s.Cubic().Translated(v).Seg()
	}
}

// Approx returns true if the segments have the same kind and approximately
// equal control points.
func (s Segment) Approx(other Segment, tolerance float64) bool {
	if s.kind != other.kind {
		return false
	}
	n := 2 + int(s.kind)
	for i := 0; i < n; i++ {
		if !s.p[i].Approx(other.p[i], tolerance) {
			return false
		}
	}
	return true
}

// LineIntersection describes one crossing of a segment with a line, giving
// the parameter on the line and on the segment.
type LineIntersection struct {
	LineT    float64
	SegmentT float64
}

// IntersectLine finds the intersections of the segment with a line,
// analytically. Parallel co-linear overlaps report no intersections.
func (s Segment) IntersectLine(l Line) []LineIntersection {
	d := l.P1.Sub(l.P0)
	lenSq := d.LengthSq()
	if lenSq == 0 {
		return nil
	}

	// Power-basis coefficients of the segment relative to the line origin.
	// The signed area cross(q(t)-l.P0, d) vanishes exactly on the line.
	a0, a1, a2, a3 := s.powerBasis(l.P0)

	var roots []float64
	switch s.kind {
	case KindLine:
		roots = SolveLinear(a1.Cross(d), a0.Cross(d))
	case KindQuad:
		roots = SolveQuadratic(a2.Cross(d), a1.Cross(d), a0.Cross(d))
	default:
		c3 := a3.Cross(d)
		c2 := a2.Cross(d)
		c1 := a1.Cross(d)
		c0 := a0.Cross(d)
		if approxEq(c3, 0, solveEpsilon) {
			// Degrade to a quadratic to keep precision for flat cubics.
			roots = SolveQuadratic(c2, c1, c0)
		} else {
			roots = SolveCubic(c3, c2, c1, c0)
		}
	}

	result := make([]LineIntersection, 0, MaxSolve)
	for _, t := range roots {
		if t < -solveEpsilon || t > 1+solveEpsilon {
			continue
		}
		p := s.Eval(clampUnit(t))
		lineT := p.Sub(l.P0).Dot(d) / lenSq
		if lineT < -solveEpsilon || lineT > 1+solveEpsilon {
			continue
		}
		result = append(result, LineIntersection{
			LineT:    clampUnit(lineT),
			SegmentT: clampUnit(t),
		})
	}
	return result
}

// powerBasis returns the vector coefficients of the segment's polynomial
// q(t) - origin = a0 + a1*t + a2*t^2 + a3*t^3. Unused higher coefficients
// are zero.
func (s Segment) powerBasis(origin Point) (a0, a1, a2, a3 Vec2) {
	switch s.kind {
	case KindLine:
		l := s.Line()
		a0 = l.P0.Sub(origin)
		a1 = l.P1.Sub(l.P0)
	case KindQuad:
		q := s.Quad()
		a0 = q.P0.Sub(origin)
		a1 = q.P1.Sub(q.P0).Mul(2)
		a2 = Vec2{
			X: q.P0.X - 2*q.P1.X + q.P2.X,
			Y: q.P0.Y - 2*q.P1.Y + q.P2.Y,
		}
	default:
		c := s.Cubic()
		a0 = c.P0.Sub(origin)
		a1 = c.P1.Sub(c.P0).Mul(3)
		a2 = Vec2{
			X: 3 * (c.P0.X - 2*c.P1.X + c.P2.X),
			Y: 3 * (c.P0.Y - 2*c.P1.Y + c.P2.Y),
		}
		a3 = Vec2{
			X: c.P3.X - 3*c.P2.X + 3*c.P1.X - c.P0.X,
			Y: c.P3.Y - 3*c.P2.Y + 3*c.P1.Y - c.P0.Y,
		}
	}
	return a0, a1, a2, a3
}

// clampUnit clamps t to [0, 1].
func clampUnit(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
