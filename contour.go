package contour

import (
	"fmt"
	"iter"
	"math"
)

// Contour is a single subpath: a chain of segments in which every segment
// starts where the previous one ends.
//
// Contours are built by appending segments, usually through a [Path], and are
// not modified afterwards. Methods that derive new geometry, such as
// [Contour.Trim], return new contours. A contour that is no longer being
// appended to is safe for concurrent use.
type Contour struct {
	segs   []Segment
	closed bool
}

// NewContour returns an empty contour.
func NewContour(closed bool) *Contour {
	return &Contour{closed: closed}
}

// Append adds a segment to the end of the contour. The caller must ensure
// that seg starts at the contour's current end point.
func (c *Contour) Append(seg Segment) {
	c.segs = append(c.segs, seg)
}

// Closed reports whether the contour is closed. Closing only affects how the
// contour is serialized.
func (c *Contour) Closed() bool { return c.closed }

// Len returns the number of segments.
func (c *Contour) Len() int { return len(c.segs) }

// Segment returns the i-th segment.
func (c *Contour) Segment(i int) Segment { return c.segs[i] }

// Segments returns an iterator over the contour's segments.
func (c *Contour) Segments() iter.Seq[Segment] {
	return func(yield func(Segment) bool) {
		for _, seg := range c.segs {
			if !yield(seg) {
				return
			}
		}
	}
}

// Start returns the start point of the first segment, or the zero point for
// empty contours.
func (c *Contour) Start() Point {
	if len(c.segs) == 0 {
		return Point{}
	}
	return c.segs[0].P1
}

// End returns the end point of the last segment, or the zero point for empty
// contours.
func (c *Contour) End() Point {
	if len(c.segs) == 0 {
		return Point{}
	}
	return c.segs[len(c.segs)-1].P2
}

// LastSegment returns the last segment. It returns false if the contour is
// empty.
func (c *Contour) LastSegment() (Segment, bool) {
	if len(c.segs) == 0 {
		return Segment{}, false
	}
	return c.segs[len(c.segs)-1], true
}

// Length returns the sum of the arc lengths of all segments.
func (c *Contour) Length() float64 {
	var l float64
	for _, seg := range c.segs {
		l += seg.Length(1)
	}
	return l
}

// PosTanAtLength stores the position and unit tangent at the given distance
// along the contour in out, as x, y, tx, ty, and reports whether the
// distance lies on the contour.
//
// The query is answered by the first segment whose end lies at or beyond
// length; shorter lengths map to the contour's start. If length exceeds the
// contour's length, only out[0:2] is written, with the end point of the last
// segment, and the result is false. For empty contours out is left
// untouched.
func (c *Contour) PosTanAtLength(length float64, out *[4]float64) bool {
	var offset float64
	for _, seg := range c.segs {
		segLen := seg.Length(1)
		next := offset + segLen
		if next >= length {
			pos, tan := seg.PosTanAtLength(max(0, length-offset))
			*out = [4]float64{pos.X, pos.Y, tan.X, tan.Y}
			return true
		}
		offset = next
	}
	if last, ok := c.LastSegment(); ok {
		out[0], out[1] = last.P2.X, last.P2.Y
	}
	return false
}

// saturate clamps t to [0, 1], mapping NaN to 0.
func saturate(t float64) float64 {
	if math.IsNaN(t) {
		return 0
	}
	return clamp01(t)
}

// Trim returns a new open contour covering the part of c between the
// normalized distances startT and stopT, both of which are clamped to
// [0, 1]. The result is empty if startT >= stopT. Segments keep their kind.
//
// Within a segment, the fraction of the segment's length is used as the
// curve parameter. This is exact for lines but only approximates the
// requested distances on curves; use [ContourMeasure.Segment] to trim by
// arc length.
func (c *Contour) Trim(startT, stopT float64) *Contour {
	lens, total := segmentLengths(c.segs)
	return trimRange(c.segs, lens, saturate(startT)*total, saturate(stopT)*total, fractionParam)
}

// segmentLengths returns the arc length of every segment and their sum.
func segmentLengths(segs []Segment) ([]float64, float64) {
	lens := make([]float64, len(segs))
	var total float64
	for i, seg := range segs {
		lens[i] = seg.Length(1)
		total += lens[i]
	}
	return lens, total
}

// paramFunc maps the distance d along a segment of length segLen > 0 to a
// curve parameter in [0, 1].
type paramFunc func(seg Segment, segLen, d float64) float64

func fractionParam(_ Segment, segLen, d float64) float64 {
	return clamp01(d / segLen)
}

func arcLengthParam(seg Segment, _, d float64) float64 {
	return seg.SolveForLength(d)
}

// trimRange returns a new open contour covering the distances [start, stop]
// along segs, whose arc lengths are lens. Segments entirely outside the range
// are skipped; zero-length segments inside it are kept whole.
func trimRange(segs []Segment, lens []float64, start, stop float64, param paramFunc) *Contour {
	out := NewContour(false)
	if start >= stop {
		return out
	}
	var offset float64
	for i, seg := range segs {
		segLen := lens[i]
		next := offset + segLen
		if next <= start || offset >= stop {
			offset = next
			continue
		}
		t0, t1 := 0.0, 1.0
		if segLen > 0 {
			t0 = param(seg, segLen, max(0, start-offset))
			t1 = param(seg, segLen, min(segLen, stop-offset))
		}
		out.Append(seg.Subsegment(t0, t1))
		offset = next
	}
	return out
}

// Handlers holds per-kind callbacks for [Contour.EnumerateComponents]. Nil
// callbacks are skipped.
type Handlers struct {
	Linear    func(seg Linear, index int)
	Quadratic func(seg Quadratic, index int)
	Cubic     func(seg Cubic, index int)
}

// EnumerateComponents calls the matching handler for every segment, in
// order.
func (c *Contour) EnumerateComponents(h Handlers) {
	for i, seg := range c.segs {
		switch seg.Kind {
		case LinearKind:
			if h.Linear != nil {
				h.Linear(seg.Linear(), i)
			}
		case QuadraticKind:
			if h.Quadratic != nil {
				h.Quadratic(seg.Quadratic(), i)
			}
		case CubicKind:
			if h.Cubic != nil {
				h.Cubic(seg.Cubic(), i)
			}
		default:
			panic(fmt.Sprintf("invalid Segment kind %v", seg.Kind))
		}
	}
}

// ToCommands returns the drawing commands for the contour: a move to its
// start followed by one command per segment. If the contour is closed, the
// last segment's command is replaced by [VerbClose]. Empty contours have no
// commands.
func (c *Contour) ToCommands() []Command {
	if len(c.segs) == 0 {
		return nil
	}
	start := c.segs[0].P1
	cmds := make([]Command, 0, len(c.segs)+1)
	cmds = append(cmds, Command{Verb: VerbMove, Args: []float64{start.X, start.Y}})
	for _, seg := range c.segs {
		cmds = append(cmds, seg.Command())
	}
	if c.closed {
		cmds[len(cmds)-1] = Command{Verb: VerbClose}
	}
	return cmds
}

// SVG returns the contour as SVG path data, such as "M0 0 L10 0 Z". Empty
// contours produce the empty string.
func (c *Contour) SVG() string {
	if len(c.segs) == 0 {
		return ""
	}
	return string(appendSVG(nil, c.segs[0].P1, c.segs, c.closed))
}

// Polyline flattens the contour with tolerance DefaultTolerance /
// scaleFactor. The result starts with the contour's start point and contains
// the polylines of all segments.
func (c *Contour) Polyline(scaleFactor float64) []Point {
	if len(c.segs) == 0 {
		return nil
	}
	out := []Point{c.segs[0].P1}
	for _, seg := range c.segs {
		out = append(out, seg.Polyline(scaleFactor)...)
	}
	return out
}

// Bounds returns the smallest rectangle that encloses the contour, or the
// zero rectangle for empty contours.
func (c *Contour) Bounds() Rect {
	if len(c.segs) == 0 {
		return Rect{}
	}
	bbox := c.segs[0].BoundingBox()
	for _, seg := range c.segs[1:] {
		bbox = bbox.Union(seg.BoundingBox())
	}
	return bbox
}

// Transform returns a copy of the contour with aff applied to every segment.
func (c *Contour) Transform(aff Affine) *Contour {
	out := &Contour{
		segs:   make([]Segment, len(c.segs)),
		closed: c.closed,
	}
	for i, seg := range c.segs {
		out.segs[i] = seg.Transform(aff)
	}
	return out
}

// Equal reports whether both contours have the same closedness and
// approximately equal segments.
func (c *Contour) Equal(o *Contour) bool {
	if c.closed != o.closed || len(c.segs) != len(o.segs) {
		return false
	}
	for i := range c.segs {
		if !c.segs[i].Equal(o.segs[i]) {
			return false
		}
	}
	return true
}
