package shape

// Ranges finds all horizontal ranges that are fully inside the shape group
// throughout the given vertical range.
//
// If either end of the vertical range lies outside of every row, there are
// no such ranges and nothing is returned.
func (g *Group) Ranges(vr Range) []Range {
	i, ok := g.findRow(vr.Start)
	if !ok {
		return nil
	}
	j, ok := g.findRow(vr.End)
	if !ok {
		return nil
	}

	var out []Range
	for _, c := range g.combinations(i, j) {
		tr := c.top.rangeIn(vr)
		br := c.bot.rangeIn(vr)

		r := Range{
			Start: max(c.mid.Start, tr.Start, br.Start),
			End:   min(c.mid.End, tr.End, br.End),
		}
		if r.Start < r.End {
			out = append(out, r)
		}
	}
	return out
}

// RenderablePath returns a path that traces every region of the group,
// suitable for rendering or debugging the decomposition.
func (g *Group) RenderablePath() *Path {
	path := NewPath()
	for _, r := range g.regions {
		topLeft := r.left.Start()
		topRight := r.right.Start()
		botLeft := r.left.End()

		path.MoveTo(topLeft.X, topLeft.Y)
		path.LineTo(topRight.X, topRight.Y)
		path.Segment(r.right.Seg)
		path.LineTo(botLeft.X, botLeft.Y)
		path.Segment(r.left.Seg.Reversed())
		path.Close()
	}
	return path
}
