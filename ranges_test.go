package shape

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertRangesApprox(t *testing.T, got, want []Range, tolerance float64) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		assert.InDelta(t, want[i].Start, got[i].Start, tolerance, "range %d start", i)
		assert.InDelta(t, want[i].End, got[i].End, tolerance, "range %d end", i)
	}
}

func TestRangesOnAngularBanner(t *testing.T) {
	group := buildGroup(t, 1e-2, shapeRangeExample, false)

	got := group.Ranges(Rg(46, 126))
	assertRangesApprox(t, got, []Range{Rg(58, 111), Rg(162, 234)}, 1.0)
}

func TestRangesOnBunting(t *testing.T) {
	group := buildGroup(t, 1e-2, shapeBunting, false)

	got := group.Ranges(Rg(30, 54))
	assertRangesApprox(t, got, []Range{Rg(17.5, 39.5), Rg(81.5, 104.5)}, 0.5)
}

func TestRangesWithVerticalRangeOutOfRows(t *testing.T) {
	group := buildGroup(t, 1e-2, shapeRect, false)
	assert.Empty(t, group.Ranges(Rg(30, 60)))
}

func TestRangesWithVerticalGap(t *testing.T) {
	group := buildGroup(t, 1e-2, shapeGapRects, false)
	assert.Empty(t, group.Ranges(Rg(25, 40)))
}

func TestRangesOnEmptyGroup(t *testing.T) {
	group := NewGroup(1e-2)
	assert.Empty(t, group.Ranges(Rg(0, 10)))
}

func TestMiddleRangesForComplexCombinations(t *testing.T) {
	group := buildGroup(t, 1e-2, shapeComplexCombinations, false)

	// The pair of the second and the last row exercises the combination
	// walk across many middle rows.
	require.Greater(t, len(group.rows), 20)
	combos := group.combinations(1, 20)

	mids := make([]Range, 0, len(combos))
	for _, c := range combos {
		mids = append(mids, c.mid)
	}
	assertRangesApprox(t, mids, []Range{
		Rg(10, 25.35),
		Rg(56.1, 70.5),
		Rg(97.7, 106.5),
	}, 0.1)
}

func TestRangeCoverIsInsideAllowedArea(t *testing.T) {
	// Every point of every yielded range must lie strictly between the
	// borders of exactly one region for every y of the band.
	group := buildGroup(t, 1e-2, shapeRangeExample, false)
	vr := Rg(46, 126)

	for _, hr := range group.Ranges(vr) {
		for _, y := range []float64{vr.Start + 0.1, vr.Mid(), vr.End - 0.1} {
			i, ok := group.findRow(y)
			require.True(t, ok)

			for _, x := range []float64{hr.Start + 0.1, hr.Mid(), hr.End - 0.1} {
				inside := 0
				for _, reg := range group.regionsIn(i) {
					left := reg.left.SolveOneXForY(y)
					right := reg.right.SolveOneXForY(y)
					if left < x && x < right {
						inside++
					}
				}
				assert.Equal(t, 1, inside, "point (%v, %v) not inside exactly one region", x, y)
			}
		}
	}
}
