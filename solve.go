package shape

// Inversion of parametric curves: given a coordinate value, recover the
// parameter values that map to it.

// MaxSolve is the maximum number of t values that inversion can report for a
// single coordinate value.
const MaxSolve = 3

// solveEpsilon slightly extends the unit interval when filtering roots so
// that values on the parameter boundary survive rounding.
const solveEpsilon = 1e-6

// SolveTForX finds the t values at which the segment has the given x value.
func (s Segment) SolveTForX(x float64) []float64 {
	switch s.kind {
	case KindLine:
		return solveLineTForV(s.p[0].X, s.p[1].X, x)
	case KindQuad:
		return solveQuadTForV(s.p[0].X, s.p[1].X, s.p[2].X, x)
	default:
		return solveCubicTForV(s.p[0].X, s.p[1].X, s.p[2].X, s.p[3].X, x)
	}
}

// SolveTForY finds the t values at which the segment has the given y value.
func (s Segment) SolveTForY(y float64) []float64 {
	switch s.kind {
	case KindLine:
		return solveLineTForV(s.p[0].Y, s.p[1].Y, y)
	case KindQuad:
		return solveQuadTForV(s.p[0].Y, s.p[1].Y, s.p[2].Y, y)
	default:
		return solveCubicTForV(s.p[0].Y, s.p[1].Y, s.p[2].Y, s.p[3].Y, y)
	}
}

// SolveYForX finds the y values corresponding to an x value.
func (s Segment) SolveYForX(x float64) []float64 {
	ts := s.SolveTForX(x)
	out := make([]float64, 0, MaxSolve)
	for _, t := range ts {
		out = append(out, s.Eval(clampUnit(t)).Y)
	}
	return out
}

// SolveXForY finds the x values corresponding to a y value.
func (s Segment) SolveXForY(y float64) []float64 {
	ts := s.SolveTForY(y)
	out := make([]float64, 0, MaxSolve)
	for _, t := range ts {
		out = append(out, s.Eval(clampUnit(t)).X)
	}
	return out
}

// solveCubicTForV finds all t values where the cubic has value v in the
// dimension for which the control ordinates are given.
func solveCubicTForV(p0, p1, p2, p3, v float64) []float64 {
	c3 := -p0 + 3*p1 - 3*p2 + p3
	c2 := 3*p0 - 6*p1 + 3*p2
	c1 := -3*p0 + 3*p1
	c0 := p0 - v

	// Solve a quadratic instead to prevent loss of precision when the cubic
	// coefficient is very small. Otherwise a genuine root near the endpoints
	// of flat segments can be lost.
	if approxEq(c3, 0, solveEpsilon) {
		return filterT(SolveQuadratic(c2, c1, c0))
	}
	return filterT(SolveCubic(c3, c2, c1, c0))
}

// solveQuadTForV finds all t values matching v for a quadratic curve.
func solveQuadTForV(p0, p1, p2, v float64) []float64 {
	c2 := p0 - 2*p1 + p2
	c1 := -2*p0 + 2*p1
	c0 := p0 - v
	return filterT(SolveQuadratic(c2, c1, c0))
}

// solveLineTForV finds all t values matching v for a linear curve.
func solveLineTForV(p0, p1, v float64) []float64 {
	c1 := -p0 + p1
	c0 := p0 - v
	return filterT(SolveLinear(c1, c0))
}

// filterT keeps the roots that lie in the slightly extended unit interval.
func filterT(roots []float64) []float64 {
	out := make([]float64, 0, MaxSolve)
	for _, t := range roots {
		if -solveEpsilon <= t && t <= 1+solveEpsilon {
			out = append(out, t)
		}
	}
	return out
}
