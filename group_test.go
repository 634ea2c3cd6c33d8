package shape

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The test shapes, as SVG path data in pt-space.
const (
	shapeRect       = "M32 35H92V95H32V35Z"
	shapeGapRects   = "M17 21H77V31H17V21ZM17 37H77V47H17V37Z"
	shapeTrapez     = "M20 100L40 20H80L100 100H20Z"
	shapeSilo       = "M20 100C20 100 28 32 40 20C52 8 66 8.5 80 20C94 31.5 100 100 100 100H20Z"
	shapeRTailplane = "M38 100L16 20H52.5L113 100H38Z"
	shapeLTailplane = "M20 100L65.5 20H99L83 100H20Z"
	shapeSkewed     = "M65 100C23.5 65 59 48 16 20H52.5C90.6 29 113 66.5 113 100H65Z"
	shapeHat        = "M65.5 27.5H21.5L29 64.5L15.5 104.5H98L80 64.5L65.5 27.5Z"
	shapeHighHeel   = "M65 26L45 26C45 26 52.3727 60.5 25 81.2597C5.38123 96.1388 22 141 22 141H63V81.2597L100.273 108.89V141H158.5C158.5 141 164.282 85.5 105 82.5C82.0353 81.3379 65 26 65 26Z"
	shapeBunting    = "M29.0452 86.5C27.5159 93.9653 26.1564 102.373 25 111.793L13 19H106.5L100.5 111.793C99.5083 103.022 97.8405 94.485 95.65 86.5C81.4874 34.8747 45.4731 6.3054 29.0452 86.5Z"
	shapeBird       = "M42.5 88.5L8.5 60.5L21.5 52.5L31.5 20H99L42.5 88.5Z"
	shapeHand       = "M42.5 88.5L8.5 60.5V52.5H21.5L8.5 20H71.5L56.5 32.5L63 80L42.5 88.5Z"
	shapeArrow      = "M118 112L81 124L56 108L82 70H105L100 96L118 112Z"
	shapeIceberg    = "M20 100L60.5 26.5L84 20L100 59L92.5 100H20Z"
	shapeCanyon     = "M100 80.5H43L20.5 50.25L11.5 20H102L100 80.5Z"

	shapeRangeExample          = "M32 154L67 6H259L228 154H177L117 35L108 154H32Z"
	shapeComplexCombinations   = "M15 13L10 53V113H115L107 55L97 16L15 13ZM28 86C23.8897 77.4238 24.0788 67.3044 32 62C37.5441 58.2875 43.1394 57.8052 49 61C58.0072 65.9101 57.8465 78.5969 52 87C48.1487 92.5355 43.5461 96.6998 37 95C32.0314 93.7098 30.2107 90.6126 28 86ZM75 92C63.9003 81.7541 77 54 77 54L92 63C92 63 96.7092 73.5217 97 81C97.2695 87.9287 99.6519 94.9456 94 99C87.457 103.694 80.9136 97.4587 75 92Z"
	shapeSelfIntersecting      = "M35 10C54.93 0.66 81.26 8.94 88 30C94.74 51 91.6 83.97 79 92C66.41 100.025 56.5 96 52 77.5C47.5 59 88.95 52.2009 106 59C123 65.8 112.6 105.201 97 115C75.5 128.5 58.35 129.26 35 115C10.16 99.83 4 72.1173 12 44C16.36 28.6 20.6 16.7567 35 10Z"
	shapeSelfIntersectingCurve = "M91 25C-44.3443 133 174.934 133 27 25H91Z"
)

// mustPath parses SVG path data or fails the test.
func mustPath(t *testing.T, svg string) *Path {
	t.Helper()
	path, err := ParsePath(svg)
	require.NoError(t, err)
	return path
}

// buildGroup creates a group from path/blocks pairs.
func buildGroup(t *testing.T, accuracy float64, shapes ...any) *Group {
	t.Helper()
	group := NewGroup(accuracy)
	for i := 0; i < len(shapes); i += 2 {
		group.Add(mustPath(t, shapes[i].(string)), shapes[i+1].(bool))
	}
	return group
}

func TestBuildGroup(t *testing.T) {
	tests := []struct {
		name     string
		accuracy float64
		shapes   []any
		rows     int
		regions  int
	}{
		{
			name:     "without any shapes is empty",
			accuracy: 1e-2,
		},
		{
			name:     "one simple shape has one region",
			accuracy: 1e-2,
			shapes:   []any{shapeTrapez, false},
			rows:     1,
			regions:  1,
		},
		{
			name:     "only blocking shapes is empty",
			accuracy: 1e-2,
			shapes:   []any{shapeBunting, true, shapeRTailplane, true},
			rows:     0,
			regions:  0,
		},
		{
			name:     "union of shape and contained shape",
			accuracy: 1e-2,
			shapes:   []any{shapeTrapez, false, shapeSilo, false},
			rows:     2,
			regions:  2,
		},
		{
			name:     "union of overlapping shapes",
			accuracy: 1e-2,
			shapes:   []any{shapeLTailplane, false, shapeRTailplane, false},
			rows:     4,
			regions:  5,
		},
		{
			name:     "union of non-overlapping shapes",
			accuracy: 1e-2,
			shapes:   []any{shapeBird, false, shapeArrow, false},
			rows:     8,
			regions:  9,
		},
		{
			name:     "difference of overlapping shapes",
			accuracy: 1e-2,
			shapes:   []any{shapeBunting, false, shapeRTailplane, true},
			rows:     9,
			regions:  15,
		},
		{
			name:     "difference of non-overlapping shapes",
			accuracy: 1e-2,
			shapes:   []any{shapeBird, false, shapeArrow, true},
			rows:     4,
			regions:  4,
		},
		{
			name:     "shape with self-intersection",
			accuracy: 0.1,
			shapes:   []any{shapeSelfIntersecting, false},
			rows:     14,
			regions:  21,
		},
		{
			name:     "shape with self-intersecting curve",
			accuracy: 1e-2,
			shapes:   []any{shapeSelfIntersectingCurve, false},
			rows:     4,
			regions:  4,
		},
		{
			name:     "difference of shape with itself",
			accuracy: 1e-2,
			shapes:   []any{shapeBird, false, shapeBird, true},
			rows:     0,
			regions:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			group := buildGroup(t, tt.accuracy, tt.shapes...)
			assert.Len(t, group.rows, tt.rows, "rows")
			assert.Len(t, group.regions, tt.regions, "regions")
		})
	}
}

func TestGroupInvariants(t *testing.T) {
	group := buildGroup(t, 1e-2,
		shapeBunting, false,
		shapeRTailplane, true,
	)

	prevBot := group.rows[0].top
	for _, row := range group.rows {
		assert.Less(t, row.top, row.bot, "row must have positive height")
		assert.GreaterOrEqual(t, row.top, prevBot-group.accuracy, "rows must not overlap")
		prevBot = row.bot

		regions := group.regions[row.start:row.end]
		require.NotEmpty(t, regions, "row must own regions")

		prevMid := regions[0].left.Eval(0.5).X
		for _, reg := range regions {
			// Border endpoints coincide with the row bounds.
			assert.InDelta(t, row.top, reg.left.Start().Y, 1e-6)
			assert.InDelta(t, row.top, reg.right.Start().Y, 1e-6)
			assert.InDelta(t, row.bot, reg.left.End().Y, 1e-6)
			assert.InDelta(t, row.bot, reg.right.End().Y, 1e-6)

			// Regions are sorted left to right by mid-x.
			assert.LessOrEqual(t, prevMid, reg.left.Eval(0.5).X+1e-9)
			prevMid = reg.left.Eval(0.5).X
		}
	}
}

func TestNewGroupRejectsNonPositiveAccuracy(t *testing.T) {
	assert.Panics(t, func() { NewGroup(0) })
	assert.Panics(t, func() { NewGroup(-1) })
}

func TestRenderablePathTracesEveryRegion(t *testing.T) {
	group := buildGroup(t, 1e-2, shapeTrapez, false)
	path := group.RenderablePath()

	require.False(t, path.IsEmpty())

	// One closed loop per region: top line, right border, bottom line,
	// reversed left border.
	closes := 0
	for _, elem := range path.Elements() {
		if _, ok := elem.(Close); ok {
			closes++
		}
	}
	assert.Equal(t, len(group.regions), closes)

	// The loop outlines the region, so its bounding box matches the
	// borders' united boxes.
	want := group.regions[0].left.BoundingBox().
		Union(group.regions[0].right.BoundingBox())
	assert.True(t, path.BoundingBox().Approx(want, 1e-6))
}
