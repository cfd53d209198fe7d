package contour

import "math"

const (
	// DefaultTolerance is the maximum distance, in user space units, between
	// a curve and its polyline at a scale factor of 1.
	DefaultTolerance = 1.0

	// CubicAccuracy is the accuracy with which cubics are reduced to
	// quadratics before flattening.
	CubicAccuracy = 0.1

	// MaxSubdivisions caps the number of pieces a single segment is split
	// into, both when reducing cubics to quadratics and when flattening. A
	// segment's polyline never has more than MaxSubdivisions points.
	MaxSubdivisions = 1 << 12
)

// subdivisions rounds an estimated subdivision count up to an integer in
// [1, MaxSubdivisions].
func subdivisions(est float64) int {
	switch {
	case math.IsNaN(est) || est <= 1:
		return 1
	case est >= MaxSubdivisions:
		return MaxSubdivisions
	default:
		return int(math.Ceil(est))
	}
}

// flattenTolerance returns the flattening tolerance for a scale factor.
// Non-positive scale factors are treated as 1.
func flattenTolerance(scaleFactor float64) float64 {
	if !(scaleFactor > 0) {
		scaleFactor = 1
	}
	return DefaultTolerance / scaleFactor
}

// An approximation to $\int (1 + 4x^2) ^ -0.25 dx$
//
// This is used for flattening curves.
func approxParabolaIntegral(x float64) float64 {
	const d = 0.67
	return x / (1.0 - d + math.Sqrt(math.Sqrt(d*d*d*d+0.25*x*x)))
}

// An approximation to the inverse parabola integral.
func approxParabolaInvIntegral(x float64) float64 {
	const b = 0.39
	return x * (1.0 - b + math.Sqrt(b*b+0.25*x*x))
}

type flattenParams struct {
	a0     float64
	a2     float64
	u0     float64
	uscale float64
	// The number of subdivisions * 2 * sqrtTol.
	val float64
}

// estimateSubdiv maps the quadratic onto a segment of the parabola y = x²
// and estimates the cost of flattening it.
func (q Quadratic) estimateSubdiv(sqrtTol float64) flattenParams {
	d01 := q.CP.Sub(q.P1)
	d12 := q.P2.Sub(q.CP)
	dd := d01.Sub(d12)
	cross := q.P2.Sub(q.P1).Cross(dd)
	x0 := d01.Dot(dd) * (1.0 / cross)
	x2 := d12.Dot(dd) * (1.0 / cross)
	scale := math.Abs(cross / (dd.Hypot() * (x2 - x0)))

	a0 := approxParabolaIntegral(x0)
	a2 := approxParabolaIntegral(x2)
	var val float64
	if !math.IsInf(scale, 0) {
		da := math.Abs(a2 - a0)
		sqrtScale := math.Sqrt(scale)
		if math.Signbit(x0) == math.Signbit(x2) {
			val = da * sqrtScale
		} else {
			// The segment contains the curvature maximum.
			xmin := sqrtTol / sqrtScale
			val = sqrtTol * da / approxParabolaIntegral(xmin)
		}
	}
	u0 := approxParabolaInvIntegral(a0)
	u2 := approxParabolaInvIntegral(a2)
	return flattenParams{
		a0:     a0,
		a2:     a2,
		u0:     u0,
		uscale: 1.0 / (u2 - u0),
		val:    val,
	}
}

// determineSubdivT maps a uniform step x in [0, 1] to the curve parameter
// at which to place a polyline vertex.
func (q Quadratic) determineSubdivT(params *flattenParams, x float64) float64 {
	a := params.a0 + (params.a2-params.a0)*x
	u := approxParabolaInvIntegral(a)
	return (u - params.u0) * params.uscale
}

// Polyline flattens the curve into line segments whose distance from the
// curve is at most DefaultTolerance / scaleFactor. The result excludes the
// start point and always ends with P2.
func (q Quadratic) Polyline(scaleFactor float64) []Point {
	return q.appendPolyline(nil, math.Sqrt(flattenTolerance(scaleFactor)), MaxSubdivisions)
}

// appendPolyline appends the flattened curve, without its start point, to
// dst. At most budget points are appended, budget >= 1; the last one is
// always P2.
//
// The algorithm is described in [Flattening quadratic Béziers]. Vertices are
// placed so that each line covers an equal share of the approximate parabola
// integral, which concentrates them where the curvature is highest.
//
// [Flattening quadratic Béziers]: https://raphlinus.github.io/graphics/curves/2019/12/23/flatten-quadbez.html
func (q Quadratic) appendPolyline(dst []Point, sqrtTol float64, budget int) []Point {
	params := q.estimateSubdiv(sqrtTol)
	if math.IsNaN(params.val) || math.IsNaN(params.uscale) {
		// Collinear control points. The curve may still double back on
		// itself, in which case its turning points are the only vertices
		// needed.
		ts, n := q.Extrema()
		for i, t := range ts[:min(n, budget-1)] {
			if i > 0 && t == ts[i-1] {
				continue
			}
			dst = append(dst, q.Eval(t))
		}
		return append(dst, q.P2)
	}
	n := min(subdivisions(0.5*params.val/sqrtTol), budget)
	step := 1.0 / float64(n)
	for i := 1; i < n; i++ {
		t := q.determineSubdivT(&params, float64(i)*step)
		dst = append(dst, q.Eval(t))
	}
	return append(dst, q.P2)
}

// Polyline flattens the curve by reducing it to quadratics with
// [CubicAccuracy] and flattening each of those with a tolerance of
// DefaultTolerance / scaleFactor. The result excludes the start point and
// always ends with P2.
func (c Cubic) Polyline(scaleFactor float64) []Point {
	sqrtTol := math.Sqrt(flattenTolerance(scaleFactor))
	n := c.quadCount(CubicAccuracy)
	out := make([]Point, 0, n)
	var i int
	for quad := range c.Quadratics(CubicAccuracy) {
		// Every remaining quadratic needs at least its end point.
		i++
		budget := MaxSubdivisions - len(out) - (n - i)
		out = quad.Segment.appendPolyline(out, sqrtTol, budget)
	}
	// The last quadratic ends on the curve's end point up to rounding.
	out[len(out)-1] = c.P2
	return out
}
