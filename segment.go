package contour

import (
	"fmt"
	"math"
	"strconv"
)

// MaxExtrema is the maximum number of extrema a segment can report. Cubics
// have at most two per axis.
const MaxExtrema = 4

type SegmentKind int

const (
	// A line segment.
	LinearKind SegmentKind = iota + 1
	// A quadratic Bézier segment.
	QuadraticKind
	// A cubic Bézier segment.
	CubicKind
)

func (k SegmentKind) String() string {
	switch k {
	case LinearKind:
		return "LinearKind"
	case QuadraticKind:
		return "QuadraticKind"
	case CubicKind:
		return "CubicKind"
	default:
		return "SegmentKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Segment is one piece of a contour. It acts as a tagged union of [Linear],
// [Quadratic] and [Cubic], and dispatches on Kind.
//
// P1 and P2 are always the start and end points. Quadratics store their
// control point in CP1.
type Segment struct {
	Kind SegmentKind
	P1   Point
	CP1  Point
	CP2  Point
	P2   Point
}

// Linear returns the line represented by this segment. This is only valid
// when Kind == LinearKind.
func (seg Segment) Linear() Linear { return Linear{seg.P1, seg.P2} }

// Quadratic returns the quadratic Bézier represented by this segment. This is
// only valid when Kind == QuadraticKind.
func (seg Segment) Quadratic() Quadratic { return Quadratic{seg.P1, seg.CP1, seg.P2} }

// Cubic converts seg to a cubic Bézier with the same parameterization. This
// is valid for any Kind.
func (seg Segment) Cubic() Cubic {
	switch seg.Kind {
	case LinearKind:
		return Cubic{seg.P1, seg.P1.Lerp(seg.P2, 1.0/3.0), seg.P1.Lerp(seg.P2, 2.0/3.0), seg.P2}
	case QuadraticKind:
		return seg.Quadratic().Raise()
	case CubicKind:
		return Cubic{seg.P1, seg.CP1, seg.CP2, seg.P2}
	default:
		panic(fmt.Sprintf("invalid Segment kind %v", seg.Kind))
	}
}

func (seg Segment) Start() Point { return seg.P1 }
func (seg Segment) End() Point   { return seg.P2 }

// Length returns the arc length of the segment from its start up to
// parameter t.
func (seg Segment) Length(t float64) float64 {
	switch seg.Kind {
	case LinearKind:
		return seg.Linear().Length(t)
	case QuadraticKind:
		return seg.Quadratic().Length(t)
	case CubicKind:
		return seg.Cubic().Length(t)
	default:
		panic(fmt.Sprintf("invalid Segment kind %v", seg.Kind))
	}
}

func (seg Segment) Eval(t float64) Point {
	switch seg.Kind {
	case LinearKind:
		return seg.Linear().Eval(t)
	case QuadraticKind:
		return seg.Quadratic().Eval(t)
	case CubicKind:
		return seg.Cubic().Eval(t)
	default:
		panic(fmt.Sprintf("invalid Segment kind %v", seg.Kind))
	}
}

func (seg Segment) Derivative(t float64) Vec2 {
	switch seg.Kind {
	case LinearKind:
		return seg.Linear().Derivative(t)
	case QuadraticKind:
		return seg.Quadratic().Derivative(t)
	case CubicKind:
		return seg.Cubic().Derivative(t)
	default:
		panic(fmt.Sprintf("invalid Segment kind %v", seg.Kind))
	}
}

func (seg Segment) SolveForLength(length float64) float64 {
	switch seg.Kind {
	case LinearKind:
		return seg.Linear().SolveForLength(length)
	case QuadraticKind:
		return seg.Quadratic().SolveForLength(length)
	case CubicKind:
		return seg.Cubic().SolveForLength(length)
	default:
		panic(fmt.Sprintf("invalid Segment kind %v", seg.Kind))
	}
}

// PosTanAtLength returns the point and unit tangent at the given arc length
// from the start of the segment. Lengths outside [0, Length(1)] are clamped.
func (seg Segment) PosTanAtLength(length float64) (Point, Vec2) {
	switch seg.Kind {
	case LinearKind:
		return seg.Linear().PosTanAtLength(length)
	case QuadraticKind:
		return seg.Quadratic().PosTanAtLength(length)
	case CubicKind:
		return seg.Cubic().PosTanAtLength(length)
	default:
		panic(fmt.Sprintf("invalid Segment kind %v", seg.Kind))
	}
}

// Subsegment returns the part of the segment between parameters t0 and t1,
// as a segment of the same kind.
func (seg Segment) Subsegment(t0, t1 float64) Segment {
	switch seg.Kind {
	case LinearKind:
		return seg.Linear().Subsegment(t0, t1).Seg()
	case QuadraticKind:
		return seg.Quadratic().Subsegment(t0, t1).Seg()
	case CubicKind:
		return seg.Cubic().Subsegment(t0, t1).Seg()
	default:
		panic(fmt.Sprintf("invalid Segment kind %v", seg.Kind))
	}
}

// Polyline flattens the segment with tolerance DefaultTolerance /
// scaleFactor. The result excludes the start point and ends with P2.
func (seg Segment) Polyline(scaleFactor float64) []Point {
	switch seg.Kind {
	case LinearKind:
		return seg.Linear().Polyline(scaleFactor)
	case QuadraticKind:
		return seg.Quadratic().Polyline(scaleFactor)
	case CubicKind:
		return seg.Cubic().Polyline(scaleFactor)
	default:
		panic(fmt.Sprintf("invalid Segment kind %v", seg.Kind))
	}
}

func (seg Segment) StartDirection() (Vec2, bool) {
	switch seg.Kind {
	case LinearKind:
		return seg.Linear().StartDirection()
	case QuadraticKind:
		return seg.Quadratic().StartDirection()
	case CubicKind:
		return seg.Cubic().StartDirection()
	default:
		panic(fmt.Sprintf("invalid Segment kind %v", seg.Kind))
	}
}

func (seg Segment) EndDirection() (Vec2, bool) {
	switch seg.Kind {
	case LinearKind:
		return seg.Linear().EndDirection()
	case QuadraticKind:
		return seg.Quadratic().EndDirection()
	case CubicKind:
		return seg.Cubic().EndDirection()
	default:
		panic(fmt.Sprintf("invalid Segment kind %v", seg.Kind))
	}
}

func (seg Segment) Extrema() ([MaxExtrema]float64, int) {
	switch seg.Kind {
	case LinearKind:
		return seg.Linear().Extrema()
	case QuadraticKind:
		return seg.Quadratic().Extrema()
	case CubicKind:
		return seg.Cubic().Extrema()
	default:
		panic(fmt.Sprintf("invalid Segment kind %v", seg.Kind))
	}
}

// BoundingBox returns the smallest axis-aligned rectangle that encloses the
// segment.
func (seg Segment) BoundingBox() Rect {
	bbox := NewRectFromPoints(seg.P1, seg.P2)
	ex, n := seg.Extrema()
	for _, t := range ex[:n] {
		bbox = bbox.UnionPoint(seg.Eval(t))
	}
	return bbox
}

// Command returns the drawing command for the segment, discarding its start
// point.
func (seg Segment) Command() Command {
	switch seg.Kind {
	case LinearKind:
		return seg.Linear().Command()
	case QuadraticKind:
		return seg.Quadratic().Command()
	case CubicKind:
		return seg.Cubic().Command()
	default:
		panic(fmt.Sprintf("invalid Segment kind %v", seg.Kind))
	}
}

// SVGFragment returns the SVG path data for the segment, discarding its start
// point.
func (seg Segment) SVGFragment() string {
	switch seg.Kind {
	case LinearKind:
		return seg.Linear().SVGFragment()
	case QuadraticKind:
		return seg.Quadratic().SVGFragment()
	case CubicKind:
		return seg.Cubic().SVGFragment()
	default:
		panic(fmt.Sprintf("invalid Segment kind %v", seg.Kind))
	}
}

// Equal reports whether the segments have the same kind and approximately
// equal points. Unused points are ignored.
func (seg Segment) Equal(o Segment) bool {
	if seg.Kind != o.Kind {
		return false
	}
	switch seg.Kind {
	case LinearKind:
		return seg.Linear().Equal(o.Linear())
	case QuadraticKind:
		return seg.Quadratic().Equal(o.Quadratic())
	case CubicKind:
		return seg.Cubic().Equal(o.Cubic())
	default:
		panic(fmt.Sprintf("invalid Segment kind %v", seg.Kind))
	}
}

func (seg Segment) Transform(aff Affine) Segment {
	return Segment{
		Kind: seg.Kind,
		P1:   seg.P1.Transform(aff),
		CP1:  seg.CP1.Transform(aff),
		CP2:  seg.CP2.Transform(aff),
		P2:   seg.P2.Transform(aff),
	}
}

func (seg Segment) IsInf() bool {
	return seg.P1.IsInf() || seg.CP1.IsInf() || seg.CP2.IsInf() || seg.P2.IsInf()
}

func (seg Segment) IsNaN() bool {
	return seg.P1.IsNaN() || seg.CP1.IsNaN() || seg.CP2.IsNaN() || seg.P2.IsNaN()
}

// unit normalizes v, returning the zero vector for zero input.
func unit(v Vec2) Vec2 {
	if v.IsZero() {
		return Vec2{}
	}
	return v.Normalize()
}

// direction normalizes v. It returns false if v is approximately zero.
func direction(v Vec2) (Vec2, bool) {
	if v.ApproxEqual(Vec2{}) {
		return Vec2{}, false
	}
	return v.Normalize(), true
}

// tangentAt returns the unit tangent for the derivative d at parameter t.
// Where the derivative vanishes, as at a cusp or a coincident control point,
// it falls back to the nearer of the end tangents start and end.
func tangentAt(d Vec2, t float64, start, end Vec2) Vec2 {
	const epsilon = 1e-12
	if d.Hypot2() <= epsilon {
		if t < 0.5 {
			d = start
		} else {
			d = end
		}
	}
	if d.Hypot2() <= epsilon || math.IsNaN(d.Hypot2()) {
		return Vec2{}
	}
	return d.Normalize()
}
