package contour

import "math"

// Quadratic is a quadratic Bézier from P1 to P2 with control point CP.
type Quadratic struct {
	P1 Point
	CP Point
	P2 Point
}

func (q Quadratic) Start() Point { return q.P1 }
func (q Quadratic) End() Point   { return q.P2 }

// Eval returns the point at parameter t.
func (q Quadratic) Eval(t float64) Point {
	return Point{
		X: evalQuadratic(t, q.P1.X, q.CP.X, q.P2.X),
		Y: evalQuadratic(t, q.P1.Y, q.CP.Y, q.P2.Y),
	}
}

// Derivative returns the first derivative at parameter t.
func (q Quadratic) Derivative(t float64) Vec2 {
	return Vec2{
		X: derivQuadratic(t, q.P1.X, q.CP.X, q.P2.X),
		Y: derivQuadratic(t, q.P1.Y, q.CP.Y, q.P2.Y),
	}
}

// Length returns the arc length of the curve from its start up to
// parameter t.
func (q Quadratic) Length(t float64) float64 {
	if t <= 0 {
		return 0
	}
	if t != 1 {
		q = q.Subsegment(0, t)
	}
	return q.arclen()
}

// arclen returns the arc length of the whole curve.
//
// This computation is based on an analytical formula. Since that formula
// suffers from numerical instability when the curve is very close to a
// straight line, we detect that case and fall back to Gauss–Legendre
// quadrature.
func (q Quadratic) arclen() float64 {
	d2 := Vec2(q.P1).Sub(Vec2(q.CP).Mul(2)).Add(Vec2(q.P2))
	a := d2.Hypot2()
	d1 := q.CP.Sub(q.P1)
	c := d1.Hypot2()
	if a <= 5e-4*c {
		// Nearly straight, or all points coincide. Three-point quadrature,
		// with the formula from Behdad in
		// https://github.com/Pomax/BezierInfo-2/issues/77, written in terms
		// of the control polygon's edges so that coincident points measure
		// exactly 0.
		d12 := q.P2.Sub(q.CP)
		v0 := d1.Mul(0.4929435192337452).Add(d12.Mul(0.0626120363218102)).Hypot()
		v1 := d1.Add(d12).Mul(0.4444444444444444).Hypot()
		v2 := d1.Mul(0.0626120363218102).Add(d12.Mul(0.4929435192337452)).Hypot()
		return v0 + v1 + v2
	}
	b := 2.0 * d2.Dot(d1)

	sabc := math.Sqrt(a + b + c)
	a2 := math.Pow(a, -0.5)
	a32 := a2 * a2 * a2
	c2 := 2.0 * math.Sqrt(c)
	baC2 := b*a2 + c2

	v0 := 0.25*a2*a2*b*(2.0*sabc-c2) + sabc
	if baC2 < 1e-13 {
		// Sharp kink.
		return v0
	}
	return v0 + 0.25*a32*(4.0*c*a-b*b)*math.Log(((2.0*a+b)*a2+2.0*sabc)/baC2)
}

// SolveForLength returns the parameter at which the curve has the given arc
// length from its start.
func (q Quadratic) SolveForLength(length float64) float64 {
	return solveForLength(q.Length, length)
}

// PosTanAtLength returns the point and unit tangent at the given arc length
// from the start of the curve.
func (q Quadratic) PosTanAtLength(length float64) (Point, Vec2) {
	t := q.SolveForLength(length)
	d0, d1 := q.Tangents()
	return q.Eval(t), tangentAt(q.Derivative(t), t, d0, d1)
}

// Tangents returns non-zero tangent vectors at the start and end of the
// curve, unless all control points coincide.
func (q Quadratic) Tangents() (Vec2, Vec2) {
	const epsilon = 1e-12
	d0 := q.CP.Sub(q.P1)
	if d0.Hypot2() <= epsilon {
		d0 = q.P2.Sub(q.P1)
	}
	d1 := q.P2.Sub(q.CP)
	if d1.Hypot2() <= epsilon {
		d1 = q.P2.Sub(q.P1)
	}
	return d0, d1
}

// Raise returns the cubic Bézier that exactly represents the curve.
func (q Quadratic) Raise() Cubic {
	return Cubic{
		q.P1,
		q.P1.Translate(q.CP.Sub(q.P1).Mul(2.0 / 3.0)),
		q.P2.Translate(q.CP.Sub(q.P2).Mul(2.0 / 3.0)),
		q.P2,
	}
}

func (q Quadratic) Subsegment(t0, t1 float64) Quadratic {
	p1 := q.Eval(t0)
	p2 := q.Eval(t1)
	cp := p1.Translate(q.CP.Sub(q.P1).Lerp(q.P2.Sub(q.CP), t0).Mul(t1 - t0))
	return Quadratic{p1, cp, p2}
}

// StartDirection returns the unit vector pointing backwards out of the start
// of the curve. It returns false if the curve has no direction.
func (q Quadratic) StartDirection() (Vec2, bool) {
	d0, _ := q.Tangents()
	return direction(d0.Negate())
}

// EndDirection returns the unit vector pointing forwards out of the end of
// the curve. It returns false if the curve has no direction.
func (q Quadratic) EndDirection() (Vec2, bool) {
	_, d1 := q.Tangents()
	return direction(d1)
}

// Extrema returns the parameters in (0, 1) where the derivative of x or y is
// zero, in increasing order.
func (q Quadratic) Extrema() ([MaxExtrema]float64, int) {
	var out [MaxExtrema]float64
	var n int
	d0 := q.CP.Sub(q.P1)
	dd := q.P2.Sub(q.CP).Sub(d0)
	if dd.X != 0 {
		if t := -d0.X / dd.X; t > 0 && t < 1 {
			out[n] = t
			n++
		}
	}
	if dd.Y != 0 {
		if t := -d0.Y / dd.Y; t > 0 && t < 1 {
			out[n] = t
			n++
			if n == 2 && out[0] > t {
				out[0], out[1] = out[1], out[0]
			}
		}
	}
	return out, n
}

func (q Quadratic) Command() Command {
	return Command{Verb: VerbQuad, Args: []float64{q.CP.X, q.CP.Y, q.P2.X, q.P2.Y}}
}

func (q Quadratic) SVGFragment() string {
	return string(appendPoints([]byte{'Q'}, q.CP, q.P2))
}

func (q Quadratic) Equal(o Quadratic) bool {
	return q.P1.ApproxEqual(o.P1) && q.CP.ApproxEqual(o.CP) && q.P2.ApproxEqual(o.P2)
}

func (q Quadratic) Transform(aff Affine) Quadratic {
	return Quadratic{
		P1: q.P1.Transform(aff),
		CP: q.CP.Transform(aff),
		P2: q.P2.Transform(aff),
	}
}

func (q Quadratic) Seg() Segment {
	return Segment{Kind: QuadraticKind, P1: q.P1, CP1: q.CP, P2: q.P2}
}
