package shape

// Dim holds the dimensions (width / height / depth) of an object with a
// baseline. Height is the extent above the baseline, depth the extent below.
type Dim struct {
	Width, Height, Depth float64
}

// NewDim creates dimensions from width, height and depth.
func NewDim(width, height, depth float64) Dim {
	return Dim{Width: width, Height: height, Depth: depth}
}

// Size returns the bounding size of the object, collapsing height and depth.
func (d Dim) Size() Size {
	return Size{Width: d.Width, Height: d.Height + d.Depth}
}

// VDim returns the vertical dimensions.
func (d Dim) VDim() VDim {
	return VDim{Height: d.Height, Depth: d.Depth}
}

// Approx returns true if two dims are approximately equal within tolerance.
func (d Dim) Approx(e Dim, tolerance float64) bool {
	return approxEq(d.Width, e.Width, tolerance) &&
		approxEq(d.Height, e.Height, tolerance) &&
		approxEq(d.Depth, e.Depth, tolerance)
}

// VDim holds the vertical dimensions (height / depth) of an object with a
// baseline. Like an iceberg, objects rise above (height) and sink below
// (depth) the baseline.
//
// VDims are partially ordered: for Less(a, b) to hold, both the height and
// the depth of a must be smaller than or equal to those of b. Note that !Less(a, b) does not imply
// Less(b, a) or equality.
type VDim struct {
	Height, Depth float64
}

// NewVDim creates vertical dimensions from height and depth.
func NewVDim(height, depth float64) VDim {
	return VDim{Height: height, Depth: depth}
}

// Min returns the component-wise minimum of two v-dims.
func (v VDim) Min(w VDim) VDim {
	return VDim{
		Height: min(v.Height, w.Height),
		Depth:  min(v.Depth, w.Depth),
	}
}

// Max returns the component-wise maximum of two v-dims.
func (v VDim) Max(w VDim) VDim {
	return VDim{
		Height: max(v.Height, w.Height),
		Depth:  max(v.Depth, w.Depth),
	}
}

// Less reports whether both components of v are smaller or equal to w's.
func (v VDim) Less(w VDim) bool {
	return v.Height <= w.Height && v.Depth <= w.Depth
}

// VRange returns the vertical range spanned by an element with these
// dimensions placed on the given baseline.
func (v VDim) VRange(baseline float64) Range {
	return Range{Start: baseline - v.Height, End: baseline + v.Depth}
}

// Approx returns true if two v-dims are approximately equal within tolerance.
func (v VDim) Approx(w VDim, tolerance float64) bool {
	return approxEq(v.Height, w.Height, tolerance) && approxEq(v.Depth, w.Depth, tolerance)
}
