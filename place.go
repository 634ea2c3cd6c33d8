package shape

import (
	"math"
	"slices"
)

// Place tries to place an object into the shape group.
//
// It finds the top-most and then left-most position at which an object of
// the given size does not collide with any shape in the group and lies to
// the right of and below min. The returned point is the top-left corner of
// the object; the second return value reports whether any position was
// found.
func (g *Group) Place(min Point, size Size) (Point, bool) {
	// Find out at which row we need to start our search.
	start, ok := g.findFirstRow(min.Y)
	if !ok {
		return Point{}, false
	}

	for i := start; i < len(g.rows); i++ {
		topRow := g.rows[i]
		minTop := max(topRow.top, min.Y)

		for j := i; j < len(g.rows); j++ {
			botRow := g.rows[j]

			// Too far to the top - is a middle row.
			if minTop+size.Height > botRow.bot {
				continue
			}

			// Too far to the bottom - cannot end here.
			if topRow.bot+size.Height < botRow.top {
				break
			}

			// The topmost solution found in this row combination.
			var topmost Point
			found := false

			for _, c := range g.combinations(i, j) {
				// Ensure that the object is placed to the right and bottom
				// of min.
				top := max(min.Y, c.top.top())
				r := Range{Start: max(min.X, c.mid.Start), End: c.mid.End}

				// Shrink the range when we have a middle row because we then
				// know that the bottom end of the top region and the top end
				// of the bottom region are tight.
				if i != j {
					r = Range{
						Start: max(r.Start, c.top.left.End().X, c.bot.left.Start().X),
						End:   math.Min(r.End, math.Min(c.top.right.End().X, c.bot.right.Start().X)),
					}
				}

				if p, ok := g.tryPlace(top, r, c.top, c.bot, size); ok {
					if !found || p.Y < topmost.Y {
						topmost, found = p, true
					}
				}
			}

			if found {
				return topmost, true
			}
		}
	}

	return Point{}, false
}

// PlaceDim places a baselined object with the given dimensions. On success
// it returns the left end of the object's baseline.
func (g *Group) PlaceDim(min Point, dim Dim) (Point, bool) {
	p, ok := g.Place(min, dim.Size())
	if !ok {
		return Point{}, false
	}
	return Point{X: p.X, Y: p.Y + dim.Height}, true
}

// tryPlace tries to place the object into the given combination of regions.
func (g *Group) tryPlace(top float64, r Range, t, b *region, size Size) (Point, bool) {
	// Ensure that the range is wide enough to hold the object.
	if r.End-r.Start+g.accuracy < size.Width {
		return Point{}, false
	}

	// The rectangle occupied by the object when placed at p, shrunk a bit
	// horizontally so that positions grazing a border survive verification.
	bounds := func(p Point) Rect {
		return RectFromPoints(p, p.Add(size.ToVec2())).Inset(-2*g.accuracy, 0)
	}

	// Check placing directly at the top.
	vr := Range{Start: top, End: top + size.Height}
	topX := max(r.Start, t.left.SolveMaxX(vr), b.left.SolveMaxX(vr))
	topPoint := Point{X: topX, Y: top}

	if rect := bounds(topPoint); t.fitsRight(rect) && b.fitsRight(rect) {
		return topPoint, true
	}

	// If it does not fit at the top, we have to try all ways in which the
	// object could hit the borders and find the topmost one.
	points := make([]Point, 0, 11)

	// Check placing such that the object touches one of the curves at the
	// top and one at the bottom: shift the right/bottom borders left/up by
	// the object's size and intersect.
	mx := V2(-size.Width, 0)
	my := V2(0, -size.Height)
	pairs := [3][2]Monotone{
		{t.left, t.right.Translated(mx)},
		{t.left, b.right.Translated(mx.Add(my))},
		{b.left.Translated(my), t.right.Translated(mx)},
	}

	for _, pair := range pairs {
		left, right := pair[0], pair[1]
		// Skip left segments which are completely to the left of min.
		if left.RightPoint().X > r.Start {
			points = append(points, left.Intersect(right, g.accuracy, MaxSolve)...)
		}
	}

	// Check placing such that the object touches one of the curves at the
	// top and one end of the range in the middle.
	x1 := r.End - size.Width
	points = append(points, Point{X: x1, Y: t.left.SolveOneYForX(x1)})

	x2 := r.Start
	points = append(points, Point{X: x2, Y: t.right.SolveOneYForX(x2 + size.Width)})

	// Check the points from top to bottom and left to right.
	slices.SortFunc(points, func(a, b Point) int {
		if c := cmpApprox(a.Y, b.Y, g.accuracy); c != 0 {
			return c
		}
		return cmpNoNaNs(a.X, b.X)
	})

	// Find and verify the best position.
	for _, p := range points {
		rect := bounds(p)
		fits := top < rect.Y0+g.accuracy &&
			rect.Y1 < b.bot()+g.accuracy &&
			rect.X0 > r.Start &&
			rect.X1 < r.End &&
			t.fits(rect) &&
			b.fits(rect)

		if fits {
			return p, true
		}
	}

	return Point{}, false
}

// combination is one compatible region combination for a row pair: a top
// region, a bottom region and the horizontal range that is inside the shape
// for the top region, every middle row and the bottom region.
type combination struct {
	top, bot *region
	mid      Range
}

// combinations enumerates all overlapping combinations of top regions in
// row i, middle ranges and bottom regions in row j which are inside the
// shape. Returns nothing if the rows i..j are not contiguous.
func (g *Group) combinations(i, j int) []combination {
	topRegions := g.regionsIn(i)
	botRegions := g.regionsIn(j)
	midRegions := make([][]region, 0, j-i)
	for m := i + 1; m < j; m++ {
		midRegions = append(midRegions, g.regionsIn(m))
	}

	// Ensure that the rows are contiguous.
	lastBot := g.rows[i].bot
	for _, r := range g.rows[i : j+1] {
		if r.top > lastBot+g.accuracy {
			return nil
		}
		lastBot = r.bot
	}

	// Compute the subranges which are inside the shape: the intersection of
	// the top and bottom regions' outer ranges with the middle regions'
	// inner ranges. Advance whichever list currently ends first.
	var out []combination
	for {
		t := &topRegions[0]
		b := &botRegions[0]
		tr, br := t.maxRange(), b.maxRange()

		start := max(tr.Start, br.Start)
		end := min(tr.End, br.End)
		minList := &botRegions
		if tr.End < br.End {
			minList = &topRegions
		}

		for mi := range midRegions {
			m := &midRegions[mi]
			rng := (*m)[0].minRange()
			if rng.End < end {
				minList = m
			}
			start = max(start, rng.Start)
			end = min(end, rng.End)
		}

		*minList = (*minList)[1:]
		done := len(*minList) == 0

		if start < end {
			out = append(out, combination{top: t, bot: b, mid: Range{Start: start, End: end}})
		}
		if done {
			return out
		}
	}
}
