package shape

import "slices"

// Group is a data structure for fast, collisionless placement of objects
// into a group of Bezier shapes.
//
// Free areas and blocked areas can be added to the group. Objects can then be
// placed into the union of the free areas minus the union of the blocked
// areas.
//
// A Group is not safe for concurrent mutation; queries may run concurrently
// as long as Add is not called at the same time.
type Group struct {
	// The rows, which own subslice ranges of the regions.
	rows []row
	// The regions row-by-row.
	regions []region
	// The accuracy used to construct this group.
	accuracy float64
}

// row is a top- and bot-bounded row of regions.
type row struct {
	// The y-coordinate of the top end of the row.
	top float64
	// The y-coordinate of the bottom end of the row.
	bot float64
	// Which subslice of the group's regions belongs to this row.
	start, end int
}

// region is an area delimited by a left and a right border.
type region struct {
	left  Monotone
	right Monotone
}

// taggedSeg is a monotone border together with its provenance during
// construction: re-ingested old border or segment of the newly added path.
type taggedSeg struct {
	seg Monotone
	old bool
}

// NewGroup creates a new, empty shape group.
//
// The accuracy drives every approximate comparison inside the group and must
// be positive. A value of 1e-2 works well in pt-space.
func NewGroup(accuracy float64) *Group {
	if accuracy <= 0 {
		panic("shape: accuracy must be positive")
	}
	return &Group{accuracy: accuracy}
}

// Accuracy returns the accuracy the group was constructed with.
func (g *Group) Accuracy() float64 {
	return g.accuracy
}

// Add inserts a new area into which objects can be placed (blocks = false)
// or which objects need to evade (blocks = true). The whole decomposition is
// rebuilt from the existing borders and the new path.
//
// Orientation of the path is irrelevant and self-intersections are allowed,
// but every subpath must be closed and all coordinates finite.
//
// Note: When a blocking path is added, all of its segments which do not fall
// into previously added non-blocking paths are discarded because they have
// no immediate effect. Adding a non-blocking path later will not bring them
// back. It is recommended to add non-blocking paths first and blocking ones
// later.
func (g *Group) Add(path *Path, blocks bool) {
	// Split the path into monotone subsegments and combine these with the
	// old border segments (which are already monotone). Accumulates all y
	// values at which curves need to be split such that all regions have two
	// non-intersecting borders in the same vertical range.
	monotone, splits := g.splitMonotone(path)

	// Apply the splits, producing rows of borders which then need to be
	// coalesced into regions.
	borderRows := g.applySplits(monotone, splits)

	// Combine borders into pairs, forming all regions of the shape.
	g.createRegions(borderRows, blocks)

	Logger().Debug("shape: rebuilt group",
		"splits", len(splits),
		"rows", len(g.rows),
		"regions", len(g.regions),
		"blocks", blocks,
	)
}

// splitMonotone splits the old borders and the new path into monotone
// segments and collects the y-split candidates.
func (g *Group) splitMonotone(path *Path) ([]taggedSeg, []float64) {
	var splits []float64
	var monotone []taggedSeg

	// Re-add the splits for the existing rows.
	for _, r := range g.rows {
		splits = append(splits, r.top, r.bot)
	}

	// Re-add the existing monotone segments.
	for _, r := range g.regions {
		monotone = append(monotone,
			taggedSeg{seg: r.left, old: true},
			taggedSeg{seg: r.right, old: true},
		)
	}

	oldCurves := len(monotone)

	// Split the new path into monotone subsegments, oriented so that the
	// start has the smaller y-coordinate.
	for _, seg := range path.Segments() {
		for _, er := range seg.ExtremaRanges() {
			sub := Monotone{Seg: seg.Subsegment(er.Start, er.End)}
			y1, y2 := sub.Start().Y, sub.End().Y
			if y1 > y2 {
				sub = sub.Reversed()
			}
			monotone = append(monotone, taggedSeg{seg: sub})
			splits = append(splits, y1, y2)
		}
	}

	// Split at intersection points. Pairs of old borders cannot intersect,
	// the previous rebuild has already split them apart.
	for i := oldCurves; i < len(monotone); i++ {
		a := monotone[i].seg
		for j := 0; j < i; j++ {
			for _, p := range a.Intersect(monotone[j].seg, g.accuracy, MaxSolve) {
				splits = append(splits, p.Y)
			}
		}
	}

	// Make the splits unique.
	slices.SortFunc(splits, cmpNoNaNs)
	splits = dedupSorted(splits, g.accuracy)

	return monotone, splits
}

// applySplits cuts every monotone segment at the split lines it spans and
// sorts the pieces into rows.
func (g *Group) applySplits(monotone []taggedSeg, splits []float64) [][]taggedSeg {
	n := len(splits) - 1
	if n < 0 {
		n = 0
	}
	borders := make([][]taggedSeg, n)

	for _, ts := range monotone {
		top := ts.seg.Start().Y
		bot := ts.seg.End().Y

		// Find out in which row the segment starts and in which it ends.
		i := g.findSplit(splits, top)
		j := g.findSplit(splits, bot)

		switch j - i {
		case 0:
			// The segment is horizontal and thus uninteresting.

		case 1:
			// The segment falls into a single row.
			borders[i] = append(borders[i], ts)

		default:
			// The segment spans multiple rows. Cut it at each interior
			// split, adding one subsegment per row.
			t0 := 0.0
			for k := i + 1; k < j; k++ {
				t := ts.seg.SolveOneTForY(splits[k])
				borders[k-1] = append(borders[k-1], taggedSeg{
					seg: ts.seg.Subsegment(t0, t),
					old: ts.old,
				})
				t0 = t
			}
			borders[j-1] = append(borders[j-1], taggedSeg{
				seg: ts.seg.Subsegment(t0, 1),
				old: ts.old,
			})
		}
	}

	return borders
}

// findSplit locates y in the split list with the tolerance-aware comparator.
func (g *Group) findSplit(splits []float64, y float64) int {
	i, found := slices.BinarySearchFunc(splits, y, func(v, y float64) int {
		return cmpApprox(v, y, g.accuracy)
	})
	if !found {
		panic("shape: split list is missing an expected y value")
	}
	return i
}

// createRegions coalesces the rows of borders into regions and stores them.
func (g *Group) createRegions(borderRows [][]taggedSeg, newBlocks bool) {
	g.rows = g.rows[:0]
	g.regions = g.regions[:0]

	for _, borders := range borderRows {
		if len(borders) == 0 {
			continue
		}

		start := len(g.regions)
		top := borders[0].seg.Start().Y
		bot := borders[0].seg.End().Y

		// Sort the borders from left to right.
		//
		// Use the midpoints of the curves because the x-coordinates can be
		// equal at start and end; in the middle they must differ because
		// an intersection would have been found otherwise.
		slices.SortFunc(borders, func(a, b taggedSeg) int {
			return cmpNoNaNs(a.seg.Eval(0.5).X, b.seg.Eval(0.5).X)
		})

		var left Monotone
		haveLeft := false
		inOld, inNew := false, false

		for _, ts := range borders {
			if ts.old {
				inOld = !inOld
			} else {
				inNew = !inNew
			}

			// Between this border and the next one, are we inside the
			// allowed area? Union with the new path if it is free,
			// difference if it blocks.
			inside := (!newBlocks && inNew) || (!inNew && inOld)

			if inside {
				if !haveLeft {
					left = ts.seg
					haveLeft = true
				}
			} else if haveLeft {
				haveLeft = false
				if !left.Approx(ts.seg, g.accuracy) {
					g.regions = append(g.regions, region{left: left, right: ts.seg})
				}
			}
		}

		if end := len(g.regions); end > start {
			g.rows = append(g.rows, row{top: top, bot: bot, start: start, end: end})
		}
	}
}

// findRow finds the row which contains the y-coordinate.
func (g *Group) findRow(y float64) (int, bool) {
	return g.binarySearchRow(y)
}

// findFirstRow finds the row which contains the y-coordinate or the topmost
// one below it.
func (g *Group) findFirstRow(y float64) (int, bool) {
	if i, found := g.binarySearchRow(y); found {
		return i, true
	} else if i < len(g.rows) {
		return i, true
	}
	return 0, false
}

// binarySearchRow searches for the row which contains the y position.
func (g *Group) binarySearchRow(y float64) (int, bool) {
	return slices.BinarySearchFunc(g.rows, y, func(r row, y float64) int {
		return position(Range{Start: r.top, End: r.bot}, y)
	})
}

// regionsIn returns all regions contained in row i.
func (g *Group) regionsIn(i int) []region {
	r := g.rows[i]
	return g.regions[r.start:r.end]
}

// top returns the region's top end.
func (r *region) top() float64 {
	return r.left.Start().Y
}

// bot returns the region's bottom end.
func (r *region) bot() float64 {
	return r.left.End().Y
}

// rangeIn returns the free horizontal range at the given vertical range.
func (r *region) rangeIn(vr Range) Range {
	return Range{
		Start: r.left.SolveMaxX(vr),
		End:   r.right.SolveMinX(vr),
	}
}

// maxRange returns the maximal horizontal range, which surrounds the borders.
func (r *region) maxRange() Range {
	return Range{
		Start: r.left.LeftPoint().X,
		End:   r.right.RightPoint().X,
	}
}

// minRange returns the minimal horizontal range, which is surrounded by the
// borders.
func (r *region) minRange() Range {
	return Range{
		Start: r.left.RightPoint().X,
		End:   r.right.LeftPoint().X,
	}
}

// fits reports whether the rectangle lies in between the two borders.
func (r *region) fits(rect Rect) bool {
	return r.fitsLeft(rect) && r.fitsRight(rect)
}

// fitsLeft reports whether the rectangle is to the right of the left border.
func (r *region) fitsLeft(rect Rect) bool {
	return rect.X0 > r.left.SolveMaxX(Range{Start: rect.Y0, End: rect.Y1})
}

// fitsRight reports whether the rectangle is to the left of the right border.
func (r *region) fitsRight(rect Rect) bool {
	return rect.X1 < r.right.SolveMinX(Range{Start: rect.Y0, End: rect.Y1})
}
