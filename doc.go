// Package shape provides a collisionless shape-placement engine for closed
// planar regions defined by cubic Bezier paths.
//
// # Overview
//
// Given one or more free and blocking paths, a [Group] decomposes the
// allowed area - the union of the free paths minus the union of the blocking
// paths - into rows of regions whose borders are monotone, intersection-free
// curve segments. On top of that decomposition it answers two questions
// quickly and precisely:
//
//   - Placement: for a rectangle of a given size, where is the top-most and
//     then left-most position inside the allowed area such that the
//     rectangle does not collide with any shape and lies to the right of and
//     below a given minimum point?
//   - Horizontal ranges: for a vertical band, which maximal horizontal
//     intervals lie entirely inside the allowed area throughout the band?
//
// # Quick Start
//
//	import "github.com/gogpu/shape"
//
//	path, _ := shape.ParsePath("M20 100 L40 20 H80 L100 100 Z")
//
//	group := shape.NewGroup(1e-2)
//	group.Add(path, false)
//
//	if p, ok := group.Place(shape.Pt(0, 0), shape.Sz(50, 15)); ok {
//	    // p is the top-left corner of the placed rectangle.
//	}
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//
// # Input
//
// Paths consist of lines, quadratic and cubic Bezier curves. They may be
// non-convex, self-intersecting and may contain holes. Arcs and higher-order
// curves must be pre-approximated by cubics, for example with [Path.Arc].
// Paths with unclosed subpaths or non-finite coordinates yield undefined
// results.
//
// Because a blocking path only affects area that is already free, add all
// free paths before any blocking paths.
//
// # Concurrency
//
// The engine is single-threaded, synchronous and purely in-memory. A Group
// is owned by one caller at a time and mutated only through [Group.Add];
// queries take a shared view and may run from any number of goroutines as
// long as Add is not called concurrently.
package shape
