package shape

// boxCurve constrains curves that can report a bounding box and subdivide
// into two curves of the same type.
type boxCurve[C any] interface {
	BoundingBox() Rect
	Subdivide() (C, C)
}

// FindIntersectionsBBox finds the intersections of two curves recursively
// using bounding boxes.
//
// The points are in no particular order. No guarantees are made about which
// points are returned when the curves have coinciding sub-segments.
//
// At most max points are reported; the caller chooses the bound from what it
// knows about the curves. To be safe in a cubic Bezier situation, use 9. For
// monotone curves, use 3. Points within twice the accuracy of an already
// collected point are not reported again.
//
// This function computes many bounding boxes of curves. Since that operation
// is very fast for monotone curves, consider the Monotone wrapper if your
// curves are monotone.
func FindIntersectionsBBox[C boxCurve[C]](a, b C, accuracy float64, max int) []Point {
	result := make([]Point, 0, max)

	ba := a.BoundingBox()
	bb := b.BoundingBox()

	// When the bounding boxes don't overlap we have no intersection.
	if !ba.Overlaps(bb) {
		return result
	}

	// When the bounding boxes do overlap, but one of the curves is smaller
	// than the accuracy, any point inside that curve is fine as our
	// intersection, so we just pick the center of its bounding box.
	if ba.Width() < accuracy && ba.Height() < accuracy {
		return append(result, ba.Center())
	}
	if bb.Width() < accuracy && bb.Height() < accuracy {
		return append(result, bb.Center())
	}

	// When we are not at the accuracy level, we continue by subdividing both
	// curves and intersecting each pair.
	a1, a2 := a.Subdivide()
	b1, b2 := b.Subdivide()

	double := 2 * accuracy
	extend := func(points []Point) {
	next:
		for _, point := range points {
			if len(result) == max {
				return
			}
			// We don't want to count intersections twice.
			for _, p := range result {
				if p.Approx(point, double) {
					continue next
				}
			}
			result = append(result, point)
		}
	}

	extend(FindIntersectionsBBox(a1, b1, accuracy, max))
	extend(FindIntersectionsBBox(a1, b2, accuracy, max))
	extend(FindIntersectionsBBox(a2, b1, accuracy, max))
	extend(FindIntersectionsBBox(a2, b2, accuracy, max))

	return result
}
