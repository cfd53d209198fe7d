package contour

import (
	"iter"
	"math"
	"sort"
)

// Cubic is a cubic Bézier from P1 to P2 with control points CP1 and CP2.
type Cubic struct {
	P1  Point
	CP1 Point
	CP2 Point
	P2  Point
}

func (c Cubic) Start() Point { return c.P1 }
func (c Cubic) End() Point   { return c.P2 }

// Eval returns the point at parameter t.
func (c Cubic) Eval(t float64) Point {
	return Point{
		X: evalCubic(t, c.P1.X, c.CP1.X, c.CP2.X, c.P2.X),
		Y: evalCubic(t, c.P1.Y, c.CP1.Y, c.CP2.Y, c.P2.Y),
	}
}

// Derivative returns the first derivative at parameter t.
func (c Cubic) Derivative(t float64) Vec2 {
	return Vec2{
		X: derivCubic(t, c.P1.X, c.CP1.X, c.CP2.X, c.P2.X),
		Y: derivCubic(t, c.P1.Y, c.CP1.Y, c.CP2.Y, c.P2.Y),
	}
}

// speed returns the magnitude of the first derivative at parameter t.
func (c Cubic) speed(t float64) float64 {
	return c.Derivative(t).Hypot()
}

// Length returns the arc length of the curve from its start up to
// parameter t, using Gauss–Legendre quadrature of order [LengthOrder].
func (c Cubic) Length(t float64) float64 {
	return integrate(c.speed, t, LengthOrder)
}

// SolveForLength returns the parameter at which the curve has the given arc
// length from its start.
func (c Cubic) SolveForLength(length float64) float64 {
	return solveForLength(c.Length, length)
}

// PosTanAtLength returns the point and unit tangent at the given arc length
// from the start of the curve.
func (c Cubic) PosTanAtLength(length float64) (Point, Vec2) {
	t := c.SolveForLength(length)
	d0, d1 := c.Tangents()
	return c.Eval(t), tangentAt(c.Derivative(t), t, d0, d1)
}

// Tangents returns non-zero tangent vectors at the start and end of the
// curve, unless all control points coincide.
func (c Cubic) Tangents() (Vec2, Vec2) {
	const epsilon = 1e-12
	d0 := c.CP1.Sub(c.P1)
	if d0.Hypot2() <= epsilon {
		d0 = c.CP2.Sub(c.P1)
		if d0.Hypot2() <= epsilon {
			d0 = c.P2.Sub(c.P1)
		}
	}
	d1 := c.P2.Sub(c.CP2)
	if d1.Hypot2() <= epsilon {
		d1 = c.P2.Sub(c.CP1)
		if d1.Hypot2() <= epsilon {
			d1 = c.P2.Sub(c.P1)
		}
	}
	return d0, d1
}

// Subsegment returns the part of the curve between t0 and t1. The new end
// points lie on the curve, and the new control points follow the first
// derivative at t0 and t1.
func (c Cubic) Subsegment(t0, t1 float64) Cubic {
	p1 := c.Eval(t0)
	p2 := c.Eval(t1)
	scale := (t1 - t0) * (1.0 / 3.0)
	cp1 := p1.Translate(c.Derivative(t0).Mul(scale))
	cp2 := p2.Translate(c.Derivative(t1).Mul(-scale))
	return Cubic{p1, cp1, cp2, p2}
}

// CubicToQuadraticSegment is one quadratic of a cubic's quadratic
// approximation, covering the cubic's parameter range [Start, End].
type CubicToQuadraticSegment struct {
	Start, End float64
	Segment    Quadratic
}

// Quadratics approximates the cubic with quadratic Béziers, splitting the
// parameter range evenly.
//
// The maximum error, as a vector from the cubic to the best approximating
// quadratic, is proportional to the third derivative, which is constant
// across the segment. The error thus scales down with the third power of the
// number of subdivisions. The number of quadratics is capped at
// [MaxSubdivisions].
//
// The resulting quadratics are not in general G1 continuous. This iterator
// always produces at least one value.
func (c Cubic) Quadratics(accuracy float64) iter.Seq[CubicToQuadraticSegment] {
	return func(yield func(CubicToQuadraticSegment) bool) {
		n := c.quadCount(accuracy)
		for i := range n {
			t0 := float64(i) / float64(n)
			t1 := float64(i+1) / float64(n)
			seg := c.Subsegment(t0, t1)
			p1x2 := Vec2(seg.CP1).Mul(3).Sub(Vec2(seg.P1))
			p2x2 := Vec2(seg.CP2).Mul(3).Sub(Vec2(seg.P2))
			q := Quadratic{seg.P1, Point(p1x2.Add(p2x2).Mul(1.0 / 4.0)), seg.P2}
			if !yield(CubicToQuadraticSegment{t0, t1, q}) {
				return
			}
		}
	}
}

// quadCount returns the number of quadratics [Cubic.Quadratics] splits the
// curve into.
func (c Cubic) quadCount(accuracy float64) int {
	// 432 is the square of 36 / sqrt(3).
	// See: https://web.archive.org/web/20210108052742/http://caffeineowl.com/graphics/2d/vectorial/cubic2quad01.html
	maxHypot2 := 432.0 * accuracy * accuracy
	err := c.quadControls().Hypot2()
	return subdivisions(math.Pow(err/maxHypot2, 1.0/6.0))
}

// quadControls returns the difference between the two quadratic control
// points implied by the cubic's start and end tangents. It is zero exactly
// when the cubic is a raised quadratic.
func (c Cubic) quadControls() Vec2 {
	p1x2 := Vec2(c.CP1).Mul(3).Sub(Vec2(c.P1))
	p2x2 := Vec2(c.CP2).Mul(3).Sub(Vec2(c.P2))
	return p2x2.Sub(p1x2)
}

// StartDirection returns the unit vector pointing backwards out of the start
// of the curve. It returns false if the curve has no direction.
func (c Cubic) StartDirection() (Vec2, bool) {
	d0, _ := c.Tangents()
	return direction(d0.Negate())
}

// EndDirection returns the unit vector pointing forwards out of the end of
// the curve. It returns false if the curve has no direction.
func (c Cubic) EndDirection() (Vec2, bool) {
	_, d1 := c.Tangents()
	return direction(d1)
}

// Extrema returns the parameters in (0, 1) where the derivative of x or y is
// zero, in increasing order.
func (c Cubic) Extrema() ([MaxExtrema]float64, int) {
	var out [MaxExtrema]float64
	var n int
	oneCoord := func(d0, d1, d2 float64) {
		roots, rn := SolveQuadratic(d0, 2*(d1-d0), d0-2*d1+d2)
		for _, t := range roots[:rn] {
			if t > 0 && t < 1 {
				out[n] = t
				n++
			}
		}
	}
	d0 := c.CP1.Sub(c.P1)
	d1 := c.CP2.Sub(c.CP1)
	d2 := c.P2.Sub(c.CP2)
	oneCoord(d0.X, d1.X, d2.X)
	oneCoord(d0.Y, d1.Y, d2.Y)
	sort.Float64s(out[:n])
	return out, n
}

func (c Cubic) Command() Command {
	return Command{Verb: VerbCubic, Args: []float64{c.CP1.X, c.CP1.Y, c.CP2.X, c.CP2.Y, c.P2.X, c.P2.Y}}
}

func (c Cubic) SVGFragment() string {
	return string(appendPoints([]byte{'C'}, c.CP1, c.CP2, c.P2))
}

func (c Cubic) Equal(o Cubic) bool {
	return c.P1.ApproxEqual(o.P1) &&
		c.CP1.ApproxEqual(o.CP1) &&
		c.CP2.ApproxEqual(o.CP2) &&
		c.P2.ApproxEqual(o.P2)
}

func (c Cubic) Transform(aff Affine) Cubic {
	return Cubic{
		P1:  c.P1.Transform(aff),
		CP1: c.CP1.Transform(aff),
		CP2: c.CP2.Transform(aff),
		P2:  c.P2.Transform(aff),
	}
}

func (c Cubic) Seg() Segment {
	return Segment{Kind: CubicKind, P1: c.P1, CP1: c.CP1, CP2: c.CP2, P2: c.P2}
}
