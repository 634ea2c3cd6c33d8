package shape

import (
	"slices"
	"sort"
)

// Curve types for 2D geometry operations.
// Based on kurbo patterns, adapted for Go idioms.

// MaxExtrema is the maximum number of interior parameter values at which the
// x- or y-derivative of a segment can vanish. Two per axis for a cubic.
const MaxExtrema = 4

// -------------------------------------------------------------------
// Line
// -------------------------------------------------------------------

// Line represents a line segment from P0 to P1.
type Line struct {
	P0, P1 Point
}

// NewLine creates a new line segment.
func NewLine(p0, p1 Point) Line {
	return Line{P0: p0, P1: p1}
}

// Eval evaluates the line at parameter t (0 to 1).
// t=0 returns P0, t=1 returns P1.
func (l Line) Eval(t float64) Point {
	return l.P0.Lerp(l.P1, t)
}

// Start returns the starting point of the line.
func (l Line) Start() Point {
	return l.P0
}

// End returns the ending point of the line.
func (l Line) End() Point {
	return l.P1
}

// Subdivide splits the line at t=0.5 into two halves.
func (l Line) Subdivide() (Line, Line) {
	mid := l.Eval(0.5)
	return Line{P0: l.P0, P1: mid}, Line{P0: mid, P1: l.P1}
}

// Subsegment returns the portion of the line from t0 to t1.
func (l Line) Subsegment(t0, t1 float64) Line {
	return Line{
		P0: l.Eval(t0),
		P1: l.Eval(t1),
	}
}

// BoundingBox returns the axis-aligned bounding box of the line.
func (l Line) BoundingBox() Rect {
	return RectFromPoints(l.P0, l.P1)
}

// Length returns the length of the line segment.
func (l Line) Length() float64 {
	return l.P0.Distance(l.P1)
}

// Reversed returns a copy of the line with endpoints swapped.
func (l Line) Reversed() Line {
	return Line{P0: l.P1, P1: l.P0}
}

// Translated returns the line moved by the given vector.
func (l Line) Translated(v Vec2) Line {
	return Line{P0: l.P0.Add(v), P1: l.P1.Add(v)}
}

// Approx returns true if two lines are approximately equal within tolerance.
func (l Line) Approx(other Line, tolerance float64) bool {
	return l.P0.Approx(other.P0, tolerance) && l.P1.Approx(other.P1, tolerance)
}

// Seg wraps the line into a Segment.
func (l Line) Seg() Segment {
	return Segment{kind: KindLine, p: [4]Point{l.P0, l.P1}}
}

// -------------------------------------------------------------------
// QuadBez - Quadratic Bezier Curve
// -------------------------------------------------------------------

// QuadBez represents a quadratic Bezier curve with control points P0, P1, P2.
// P0 is the start point, P1 is the control point, P2 is the end point.
type QuadBez struct {
	P0, P1, P2 Point
}

// NewQuadBez creates a new quadratic Bezier curve.
func NewQuadBez(p0, p1, p2 Point) QuadBez {
	return QuadBez{P0: p0, P1: p1, P2: p2}
}

// Eval evaluates the curve at parameter t (0 to 1).
func (q QuadBez) Eval(t float64) Point {
	mt := 1.0 - t
	// (1-t)^2 * P0 + 2(1-t)t * P1 + t^2 * P2
	return Point{
		X: mt*mt*q.P0.X + 2*mt*t*q.P1.X + t*t*q.P2.X,
		Y: mt*mt*q.P0.Y + 2*mt*t*q.P1.Y + t*t*q.P2.Y,
	}
}

// Start returns the starting point of the curve.
func (q QuadBez) Start() Point {
	return q.P0
}

// End returns the ending point of the curve.
func (q QuadBez) End() Point {
	return q.P2
}

// Subdivide splits the curve at t=0.5 into two halves using de Casteljau.
func (q QuadBez) Subdivide() (QuadBez, QuadBez) {
	mid := q.Eval(0.5)
	return QuadBez{
			P0: q.P0,
			P1: q.P0.Lerp(q.P1, 0.5),
			P2: mid,
		}, QuadBez{
			P0: mid,
			P1: q.P1.Lerp(q.P2, 0.5),
			P2: q.P2,
		}
}

// Subsegment returns the portion of the curve from t0 to t1.
func (q QuadBez) Subsegment(t0, t1 float64) QuadBez {
	p0 := q.Eval(t0)
	p2 := q.Eval(t1)

	// The control point follows from the tangent at t0: the derivative of
	// the control polygon edges, scaled to the new parameter interval.
	d0 := q.P1.Sub(q.P0)
	d1 := q.P2.Sub(q.P1)
	dt := t1 - t0

	tan := d0.Add(d1.Sub(d0).Mul(t0))
	p1 := p0.Add(tan.Mul(dt))

	return QuadBez{P0: p0, P1: p1, P2: p2}
}

// Extrema returns interior parameter values where the x- or y-derivative
// vanishes, in ascending order. Used for computing tight bounding boxes and
// monotone splitting.
func (q QuadBez) Extrema() []float64 {
	var result []float64

	// For a quadratic Bezier, the derivative is linear:
	// B'(t) = 2[(P1-P0) + t(P2-2P1+P0)]
	// Setting to zero: t = (P0-P1) / (P0-2P1+P2)
	d0 := q.P1.Sub(q.P0)
	d1 := q.P2.Sub(q.P1)
	dd := d1.Sub(d0)

	if dd.X != 0 {
		if t := -d0.X / dd.X; t > 0 && t < 1 {
			result = append(result, t)
		}
	}
	if dd.Y != 0 {
		if t := -d0.Y / dd.Y; t > 0 && t < 1 {
			result = append(result, t)
		}
	}

	sort.Float64s(result)
	return result
}

// BoundingBox returns the tight axis-aligned bounding box of the curve.
func (q QuadBez) BoundingBox() Rect {
	bbox := RectFromPoints(q.P0, q.P2)
	for _, t := range q.Extrema() {
		p := q.Eval(t)
		bbox = bbox.Union(RectFromPoints(p, p))
	}
	return bbox
}

// Raise elevates the quadratic to a cubic Bezier curve.
// Returns an exact cubic representation of this quadratic.
func (q QuadBez) Raise() CubicBez {
	// C1 = P0 + 2/3 * (P1 - P0), C2 = P2 + 2/3 * (P1 - P2)
	return CubicBez{
		P0: q.P0,
		P1: q.P0.Add(q.P1.Sub(q.P0).Mul(2.0 / 3.0)),
		P2: q.P2.Add(q.P1.Sub(q.P2).Mul(2.0 / 3.0)),
		P3: q.P2,
	}
}

// Reversed returns the curve with opposite orientation.
func (q QuadBez) Reversed() QuadBez {
	return QuadBez{P0: q.P2, P1: q.P1, P2: q.P0}
}

// Translated returns the curve moved by the given vector.
func (q QuadBez) Translated(v Vec2) QuadBez {
	return QuadBez{P0: q.P0.Add(v), P1: q.P1.Add(v), P2: q.P2.Add(v)}
}

// Approx returns true if two curves are approximately equal within tolerance.
func (q QuadBez) Approx(other QuadBez, tolerance float64) bool {
	return q.P0.Approx(other.P0, tolerance) &&
		q.P1.Approx(other.P1, tolerance) &&
		q.P2.Approx(other.P2, tolerance)
}

// Seg wraps the curve into a Segment.
func (q QuadBez) Seg() Segment {
	return Segment{kind: KindQuad, p: [4]Point{q.P0, q.P1, q.P2}}
}

// -------------------------------------------------------------------
// CubicBez - Cubic Bezier Curve
// -------------------------------------------------------------------

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

// Subdivide splits the curve at t=0.5 into two halves using de Casteljau.
func (c CubicBez) Subdivide() (CubicBez, CubicBez) {
	p01 := c.P0.Lerp(c.P1, 0.5)
	p12 := c.P1.Lerp(c.P2, 0.5)
	p23 := c.P2.Lerp(c.P3, 0.5)
	p012 := p01.Lerp(p12, 0.5)
	p123 := p12.Lerp(p23, 0.5)
	mid := p012.Lerp(p123, 0.5)

	return CubicBez{P0: c.P0, P1: p01, P2: p012, P3: mid},
		CubicBez{P0: mid, P1: p123, P2: p23, P3: c.P3}
}

// Subsegment returns the portion of the curve from t0 to t1.
func (c CubicBez) Subsegment(t0, t1 float64) CubicBez {
	p0 := c.Eval(t0)
	p3 := c.Eval(t1)

	// Control points follow from the derivative at the new endpoints:
	// B'(t) = 3[(P1-P0)(1-t)^2 + 2(P2-P1)(1-t)t + (P3-P2)t^2]
	d0 := c.P1.Sub(c.P0)
	d1 := c.P2.Sub(c.P1)
	d2 := c.P3.Sub(c.P2)

	scale := (t1 - t0) / 3.0

	mt0 := 1.0 - t0
	deriv0 := d0.Mul(3 * mt0 * mt0).Add(d1.Mul(6 * mt0 * t0)).Add(d2.Mul(3 * t0 * t0))
	p1 := p0.Add(deriv0.Mul(scale))

	mt1 := 1.0 - t1
	deriv1 := d0.Mul(3 * mt1 * mt1).Add(d1.Mul(6 * mt1 * t1)).Add(d2.Mul(3 * t1 * t1))
	p2 := p3.Add(deriv1.Mul(-scale))

	return CubicBez{P0: p0, P1: p1, P2: p2, P3: p3}
}

// Extrema returns interior parameter values where the x- or y-derivative
// vanishes, in ascending order. A cubic has up to 4 (two per axis).
func (c CubicBez) Extrema() []float64 {
	result := make([]float64, 0, MaxExtrema)

	// The derivative is a quadratic in each axis: a*t^2 + b*t + c, with
	// coefficients from differentiating the Bernstein form.
	d0 := c.P1.Sub(c.P0)
	d1 := c.P2.Sub(c.P1)
	d2 := c.P3.Sub(c.P2)

	ax := d0.X - 2*d1.X + d2.X
	bx := 2 * (d1.X - d0.X)
	cx := d0.X
	result = appendInterior(result, SolveQuadraticInUnitInterval(ax, bx, cx))

	ay := d0.Y - 2*d1.Y + d2.Y
	by := 2 * (d1.Y - d0.Y)
	cy := d0.Y
	result = appendInterior(result, SolveQuadraticInUnitInterval(ay, by, cy))

	sort.Float64s(result)
	return result
}

// appendInterior appends the roots that lie strictly inside (0, 1).
func appendInterior(dst, roots []float64) []float64 {
	for _, t := range roots {
		if t > 0 && t < 1 {
			dst = append(dst, t)
		}
	}
	return dst
}

// BoundingBox returns the tight axis-aligned bounding box of the curve.
func (c CubicBez) BoundingBox() Rect {
	bbox := RectFromPoints(c.P0, c.P3)
	for _, t := range c.Extrema() {
		p := c.Eval(t)
		bbox = bbox.Union(RectFromPoints(p, p))
	}
	return bbox
}

// Deriv returns the derivative curve (a quadratic Bezier).
// The derivative gives the tangent direction at any point.
func (c CubicBez) Deriv() QuadBez {
	return QuadBez{
		P0: Point{X: 3 * (c.P1.X - c.P0.X), Y: 3 * (c.P1.Y - c.P0.Y)},
		P1: Point{X: 3 * (c.P2.X - c.P1.X), Y: 3 * (c.P2.Y - c.P1.Y)},
		P2: Point{X: 3 * (c.P3.X - c.P2.X), Y: 3 * (c.P3.Y - c.P2.Y)},
	}
}

// Tangent returns the tangent vector at parameter t.
func (c CubicBez) Tangent(t float64) Vec2 {
	return c.Deriv().Eval(t).ToVec2()
}

// Reversed returns the curve with opposite orientation.
func (c CubicBez) Reversed() CubicBez {
	return CubicBez{P0: c.P3, P1: c.P2, P2: c.P1, P3: c.P0}
}

// Translated returns the curve moved by the given vector.
func (c CubicBez) Translated(v Vec2) CubicBez {
	return CubicBez{
		P0: c.P0.Add(v), P1: c.P1.Add(v),
		P2: c.P2.Add(v), P3: c.P3.Add(v),
	}
}

// Approx returns true if two curves are approximately equal within tolerance.
func (c CubicBez) Approx(other CubicBez, tolerance float64) bool {
	return c.P0.Approx(other.P0, tolerance) &&
		c.P1.Approx(other.P1, tolerance) &&
		c.P2.Approx(other.P2, tolerance) &&
		c.P3.Approx(other.P3, tolerance)
}

// Seg wraps the curve into a Segment.
func (c CubicBez) Seg() Segment {
	return Segment{kind: KindCubic, p: [4]Point{c.P0, c.P1, c.P2, c.P3}}
}

// extremaRanges converts a sorted list of interior extrema into the closed
// cover of [0, 1] on which the curve is monotone in both axes.
func extremaRanges(extrema []float64) []Range {
	ranges := make([]Range, 0, MaxExtrema+1)
	t0 := 0.0
	for _, t := range extrema {
		if t-t0 < 1e-12 {
			continue
		}
		ranges = append(ranges, Range{Start: t0, End: t})
		t0 = t
	}
	return append(ranges, Range{Start: t0, End: 1})
}

// dedupSorted removes consecutive values closer than tolerance from a sorted
// slice, in place.
func dedupSorted(values []float64, tolerance float64) []float64 {
	return slices.CompactFunc(values, func(a, b float64) bool {
		return approxEq(a, b, tolerance)
	})
}
