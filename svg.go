package shape

import (
	"fmt"
	"strconv"
)

// ParsePath parses SVG 1.1 path data into a Path.
//
// The commands M, L, H, V, C, S, Q, T and Z are supported in absolute and
// relative form. Arcs (A) are rejected: they must be pre-approximated by
// cubic Bezier curves, for example with Path.Arc.
func ParsePath(data string) (*Path, error) {
	p := &pathParser{data: data, path: NewPath()}
	if err := p.run(); err != nil {
		return nil, fmt.Errorf("shape: invalid path data: %w", err)
	}
	return p.path, nil
}

// pathParser holds the cursor state while scanning SVG path data.
type pathParser struct {
	data string
	pos  int
	path *Path

	cur, start Point
	lastCmd    byte
	cubicCtrl  Point // reflection point for S
	quadCtrl   Point // reflection point for T
}

func (p *pathParser) run() error {
	for {
		p.skipSeparators()
		if p.pos >= len(p.data) {
			return nil
		}

		cmd := p.data[p.pos]
		if isCommand(cmd) {
			p.pos++
		} else {
			// A number repeats the previous command; after a moveto the
			// implicit repetition is a lineto.
			switch p.lastCmd {
			case 'M':
				cmd = 'L'
			case 'm':
				cmd = 'l'
			case 0:
				return fmt.Errorf("expected command at position %d", p.pos)
			default:
				cmd = p.lastCmd
			}
		}

		if err := p.apply(cmd); err != nil {
			return err
		}
		p.lastCmd = cmd
	}
}

func (p *pathParser) apply(cmd byte) error {
	rel := cmd >= 'a'
	abs := cmd
	if rel {
		abs -= 'a' - 'A'
	}

	switch abs {
	case 'M':
		pt, err := p.point(rel)
		if err != nil {
			return err
		}
		p.path.MoveTo(pt.X, pt.Y)
		p.cur, p.start = pt, pt

	case 'L':
		pt, err := p.point(rel)
		if err != nil {
			return err
		}
		p.path.LineTo(pt.X, pt.Y)
		p.cur = pt

	case 'H':
		x, err := p.number()
		if err != nil {
			return err
		}
		if rel {
			x += p.cur.X
		}
		p.path.LineTo(x, p.cur.Y)
		p.cur.X = x

	case 'V':
		y, err := p.number()
		if err != nil {
			return err
		}
		if rel {
			y += p.cur.Y
		}
		p.path.LineTo(p.cur.X, y)
		p.cur.Y = y

	case 'C':
		c1, err := p.point(rel)
		if err != nil {
			return err
		}
		c2, err := p.point(rel)
		if err != nil {
			return err
		}
		pt, err := p.point(rel)
		if err != nil {
			return err
		}
		p.path.CubicTo(c1.X, c1.Y, c2.X, c2.Y, pt.X, pt.Y)
		p.cur, p.cubicCtrl = pt, c2

	case 'S':
		c1 := p.reflectedCubic()
		c2, err := p.point(rel)
		if err != nil {
			return err
		}
		pt, err := p.point(rel)
		if err != nil {
			return err
		}
		p.path.CubicTo(c1.X, c1.Y, c2.X, c2.Y, pt.X, pt.Y)
		p.cur, p.cubicCtrl = pt, c2

	case 'Q':
		c, err := p.point(rel)
		if err != nil {
			return err
		}
		pt, err := p.point(rel)
		if err != nil {
			return err
		}
		p.path.QuadraticTo(c.X, c.Y, pt.X, pt.Y)
		p.cur, p.quadCtrl = pt, c

	case 'T':
		c := p.reflectedQuad()
		pt, err := p.point(rel)
		if err != nil {
			return err
		}
		p.path.QuadraticTo(c.X, c.Y, pt.X, pt.Y)
		p.cur, p.quadCtrl = pt, c

	case 'Z':
		p.path.Close()
		p.cur = p.start

	case 'A':
		return fmt.Errorf("arc commands are not supported, pre-approximate with cubics")

	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
	return nil
}

// reflectedCubic returns the first control point of a smooth cubic: the
// previous second control point reflected at the current point, or the
// current point if the previous command was not a cubic.
func (p *pathParser) reflectedCubic() Point {
	switch p.lastCmd {
	case 'C', 'c', 'S', 's':
		return Point{X: 2*p.cur.X - p.cubicCtrl.X, Y: 2*p.cur.Y - p.cubicCtrl.Y}
	}
	return p.cur
}

// reflectedQuad returns the control point of a smooth quadratic.
func (p *pathParser) reflectedQuad() Point {
	switch p.lastCmd {
	case 'Q', 'q', 'T', 't':
		return Point{X: 2*p.cur.X - p.quadCtrl.X, Y: 2*p.cur.Y - p.quadCtrl.Y}
	}
	return p.cur
}

// point reads an x/y coordinate pair, converting relative pairs to absolute.
func (p *pathParser) point(rel bool) (Point, error) {
	x, err := p.number()
	if err != nil {
		return Point{}, err
	}
	y, err := p.number()
	if err != nil {
		return Point{}, err
	}
	if rel {
		x += p.cur.X
		y += p.cur.Y
	}
	return Point{X: x, Y: y}, nil
}

// number scans the next floating point value.
func (p *pathParser) number() (float64, error) {
	p.skipSeparators()
	start := p.pos
	seenDot, seenExp := false, false

	for p.pos < len(p.data) {
		c := p.data[p.pos]
		switch {
		case c >= '0' && c <= '9':
		case c == '.' && !seenDot && !seenExp:
			seenDot = true
		case (c == 'e' || c == 'E') && !seenExp && p.pos > start:
			seenExp = true
		case (c == '+' || c == '-') && (p.pos == start || isExponent(p.data[p.pos-1])):
		default:
			goto done
		}
		p.pos++
	}
done:
	if p.pos == start {
		return 0, fmt.Errorf("expected number at position %d", start)
	}
	v, err := strconv.ParseFloat(p.data[start:p.pos], 64)
	if err != nil {
		return 0, err
	}
	return v, nil
}

func (p *pathParser) skipSeparators() {
	for p.pos < len(p.data) {
		switch p.data[p.pos] {
		case ' ', '\t', '\n', '\r', ',':
			p.pos++
		default:
			return
		}
	}
}

func isCommand(c byte) bool {
	switch c {
	case 'M', 'm', 'L', 'l', 'H', 'h', 'V', 'v',
		'C', 'c', 'S', 's', 'Q', 'q', 'T', 't', 'A', 'a', 'Z', 'z':
		return true
	}
	return false
}

func isExponent(c byte) bool {
	return c == 'e' || c == 'E'
}
