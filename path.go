package contour

import (
	"errors"
	"fmt"
	"iter"
	"math"
	"strings"

	"honnef.co/go/contour/svgpath"
)

// ErrNoMoveTo is returned by [FromSVG] for path data that does not start
// with a moveto.
var ErrNoMoveTo = errors.New("path data must start with a moveto")

// Path is a sequence of contours, built by replaying drawing commands.
//
// The zero value is an empty path ready to use. A Path is the single writer
// of its contours; once building is done, the path and its contours may be
// read concurrently.
type Path struct {
	contours []*Contour
	// cur is the contour being built, or nil after a moveto or close.
	cur     *Contour
	start   Point
	current Point
}

// NewPath returns an empty path.
func NewPath() *Path {
	return &Path{}
}

// CurrentPoint returns the end point of the last command.
func (p *Path) CurrentPoint() Point { return p.current }

// MoveTo starts a new contour at pt.
func (p *Path) MoveTo(pt Point) {
	p.cur = nil
	p.start = pt
	p.current = pt
}

func (p *Path) push(seg Segment) {
	if p.cur == nil {
		p.cur = NewContour(false)
		p.contours = append(p.contours, p.cur)
	}
	p.cur.Append(seg)
	p.current = seg.P2
}

// LineTo adds a line from the current point to pt.
func (p *Path) LineTo(pt Point) {
	p.push(Linear{p.current, pt}.Seg())
}

// QuadTo adds a quadratic Bézier from the current point to pt.
func (p *Path) QuadTo(cp, pt Point) {
	p.push(Quadratic{p.current, cp, pt}.Seg())
}

// CubicTo adds a cubic Bézier from the current point to pt.
func (p *Path) CubicTo(cp1, cp2, pt Point) {
	p.push(Cubic{p.current, cp1, cp2, pt}.Seg())
}

// ConicTo adds a rational quadratic Bézier with weight w, approximated by a
// single cubic. A weight of 1 is an ordinary quadratic. Non-positive weights
// degenerate to a line to pt, infinite weights to lines through cp.
func (p *Path) ConicTo(cp, pt Point, w float64) {
	switch {
	case !(w > 0):
		p.LineTo(pt)
	case math.IsInf(w, 1):
		p.LineTo(cp)
		p.LineTo(pt)
	default:
		k := 4 * w / (3 * (1 + w))
		p0 := p.current
		p.CubicTo(
			p0.Translate(cp.Sub(p0).Mul(k)),
			pt.Translate(cp.Sub(pt).Mul(k)),
			pt,
		)
	}
}

// Close closes the current contour with a line back to its start. The line
// is added even if it has zero length. Closing a path without segments since
// the last moveto only resets the current point.
func (p *Path) Close() {
	if p.cur == nil {
		p.current = p.start
		return
	}
	p.LineTo(p.start)
	p.cur.closed = true
	p.cur = nil
}

// Contours returns the path's non-empty contours.
func (p *Path) Contours() []*Contour {
	return p.contours
}

// Length returns the total length of all contours.
func (p *Path) Length() float64 {
	var l float64
	for _, c := range p.contours {
		l += c.Length()
	}
	return l
}

// ToCommands returns the drawing commands of all contours, in order.
func (p *Path) ToCommands() []Command {
	var cmds []Command
	for _, c := range p.contours {
		cmds = append(cmds, c.ToCommands()...)
	}
	return cmds
}

// SVG returns the path as SVG path data, with contours separated by spaces.
func (p *Path) SVG() string {
	var b []byte
	for _, c := range p.contours {
		if len(c.segs) == 0 {
			continue
		}
		if len(b) > 0 {
			b = append(b, ' ')
		}
		b = appendSVG(b, c.segs[0].P1, c.segs, c.closed)
	}
	return string(b)
}

// Trim returns the part of the path between the normalized distances
// startT and stopT, measured along all contours in order. Contours that
// fall outside the range are dropped; the remaining ones are trimmed as by
// [Contour.Trim].
func (p *Path) Trim(startT, stopT float64) *Path {
	total := p.Length()
	start := saturate(startT) * total
	stop := saturate(stopT) * total
	out := NewPath()
	if start >= stop {
		return out
	}
	var offset float64
	for _, c := range p.contours {
		lens, l := segmentLengths(c.segs)
		next := offset + l
		if next > start && offset < stop {
			if t := trimRange(c.segs, lens, start-offset, stop-offset, fractionParam); len(t.segs) > 0 {
				out.contours = append(out.contours, t)
			}
		}
		offset = next
	}
	if n := len(out.contours); n > 0 {
		out.start = out.contours[n-1].Start()
		out.current = out.contours[n-1].End()
	}
	return out
}

// Transform returns a copy of the path with aff applied to every contour.
func (p *Path) Transform(aff Affine) *Path {
	out := &Path{
		contours: make([]*Contour, len(p.contours)),
		start:    p.start.Transform(aff),
		current:  p.current.Transform(aff),
	}
	for i, c := range p.contours {
		out.contours[i] = c.Transform(aff)
	}
	return out
}

// Measures returns an iterator over measures of the path's contours. If
// forceClosed is set, open contours are measured as if closed by a line.
func (p *Path) Measures(forceClosed bool) iter.Seq[*ContourMeasure] {
	return func(yield func(*ContourMeasure) bool) {
		for _, c := range p.contours {
			if !yield(NewContourMeasure(c, forceClosed)) {
				return
			}
		}
	}
}

// FromCommands replays cmds into a new path. It returns an error wrapping
// [ErrUnknownVerb] or [ErrShortCommand] for malformed commands.
func FromCommands(cmds []Command) (*Path, error) {
	p := NewPath()
	for i, cmd := range cmds {
		if err := cmd.validate(); err != nil {
			return nil, fmt.Errorf("command %d: %w", i, err)
		}
		switch cmd.Verb {
		case VerbMove:
			p.MoveTo(cmd.Point(0))
		case VerbLine:
			p.LineTo(cmd.Point(0))
		case VerbQuad:
			p.QuadTo(cmd.Point(0), cmd.Point(1))
		case VerbConic:
			p.ConicTo(cmd.Point(0), cmd.Point(1), cmd.Args[4])
		case VerbCubic:
			p.CubicTo(cmd.Point(0), cmd.Point(1), cmd.Point(2))
		case VerbClose:
			p.Close()
		}
	}
	return p, nil
}

// FromSVG builds a path from SVG path data. Relative coordinates, horizontal
// and vertical lines, smooth curves and elliptical arcs are resolved into
// lines, quadratics and cubics. Commands with too few arguments are skipped.
func FromSVG(d string) (*Path, error) {
	cmds := svgpath.Parse(d)
	if len(cmds) > 0 && cmds[0].Letter|0x20 != 'm' {
		return nil, fmt.Errorf("%w, got %q", ErrNoMoveTo, cmds[0].Letter)
	}
	p := NewPath()
	var r svgReplayer
	for _, cmd := range cmds {
		r.replay(p, cmd)
	}
	return p, nil
}

// svgReplayer tracks the state SVG commands depend on beyond the current
// point: the control point that smooth curves reflect.
type svgReplayer struct {
	// ctrl is the last control point of the previous command, if that was a
	// curve of kind last.
	ctrl Point
	last byte
}

func (r *svgReplayer) replay(p *Path, cmd svgpath.Command) {
	if len(cmd.Args) < svgpath.Arity(cmd.Letter) {
		return
	}
	cur := p.CurrentPoint()
	var origin Vec2
	if cmd.Relative() {
		origin = Vec2(cur)
	}
	pt := func(i int) Point {
		return Point{cmd.Args[2*i], cmd.Args[2*i+1]}.Translate(origin)
	}
	// reflect returns the current point mirrored through the previous
	// control point if the previous command was a curve of the given kind.
	reflect := func(kinds string) Point {
		if strings.IndexByte(kinds, r.last) >= 0 {
			return cur.Translate(cur.Sub(r.ctrl))
		}
		return cur
	}

	kind := cmd.Letter &^ 0x20
	switch kind {
	case 'M':
		p.MoveTo(pt(0))
	case 'L':
		p.LineTo(pt(0))
	case 'H':
		x := cmd.Args[0] + origin.X
		p.LineTo(Point{x, cur.Y})
	case 'V':
		y := cmd.Args[0] + origin.Y
		p.LineTo(Point{cur.X, y})
	case 'C':
		cp2 := pt(1)
		p.CubicTo(pt(0), cp2, pt(2))
		r.ctrl = cp2
	case 'S':
		cp2 := pt(0)
		p.CubicTo(reflect("CS"), cp2, pt(1))
		r.ctrl = cp2
	case 'Q':
		cp := pt(0)
		p.QuadTo(cp, pt(1))
		r.ctrl = cp
	case 'T':
		cp := reflect("QT")
		p.QuadTo(cp, pt(0))
		r.ctrl = cp
	case 'A':
		to := Point{cmd.Args[5], cmd.Args[6]}.Translate(origin)
		arc, ok := ArcFromSVG(cur, to, Vec2{cmd.Args[0], cmd.Args[1]}, cmd.Args[2], cmd.Args[3] != 0, cmd.Args[4] != 0)
		switch {
		case ok:
			for c := range arc.Cubics(arcTolerance) {
				p.CubicTo(c.CP1, c.CP2, c.P2)
			}
			// Land exactly on the requested end point.
			p.current = to
			if p.cur != nil {
				p.cur.segs[len(p.cur.segs)-1].P2 = to
			}
		case cur != to:
			p.LineTo(to)
		}
	case 'Z':
		p.Close()
	}
	r.last = kind
}
