package contour

import "math"

// arclenAccuracy is the absolute accuracy, in user space units, with which
// a parameter is solved for a given arc length.
const arclenAccuracy = 1e-9

// solveITP returns a zero crossing of the increasing function f on [0, 1],
// within epsilon, using the [ITP method]. f0 and f1 are f(0) < 0 and
// f(1) > 0.
//
// The method brackets the root like bisection but steps towards the secant
// estimate, truncated by k1 = 0.2 and projected into a shrinking window
// around the midpoint (n0 = 1).
//
// [ITP method]: https://en.wikipedia.org/wiki/ITP_Method
func solveITP(f func(float64) float64, epsilon, f0, f1 float64) float64 {
	const (
		n0 = 1
		k1 = 0.2
	)
	lo, hi := 0.0, 1.0
	ylo, yhi := f0, f1
	nHalf := int(max(math.Ceil(math.Log2(1/epsilon))-1, 0))
	window := epsilon * float64(uint64(1)<<(n0+nHalf))
	for hi-lo > 2*epsilon {
		width := hi - lo
		mid := 0.5 * (lo + hi)
		secant := (yhi*lo - ylo*hi) / (yhi - ylo)
		sigma := mid - secant

		// Truncation, with k2 = 2.
		x := mid
		if delta := k1 * width * width; delta <= math.Abs(sigma) {
			x = secant + math.Copysign(delta, sigma)
		}
		// Projection.
		if r := window - 0.5*width; math.Abs(x-mid) > r {
			x = mid - math.Copysign(r, sigma)
		}

		switch y := f(x); {
		case y > 0:
			hi, yhi = x, y
		case y < 0:
			lo, ylo = x, y
		default:
			return x
		}
		window *= 0.5
	}
	return 0.5 * (lo + hi)
}

// solveForLength returns the parameter t ∈ [0, 1] at which length(t), the
// arc length from the start of a curve, equals target.
func solveForLength(length func(t float64) float64, target float64) float64 {
	if !(target > 0) {
		return 0
	}
	total := length(1)
	if !(target < total) {
		return 1
	}
	// solveITP scales epsilon by 2^⌈log2(1/epsilon)⌉, which must not
	// overflow.
	epsilon := max(arclenAccuracy/total, 1e-12)
	f := func(t float64) float64 {
		return length(t) - target
	}
	return solveITP(f, epsilon, -target, total-target)
}

// SolveQuadratic finds real roots of a quadratic equation.
//
// Returns values of x for which c0 + c1 x + c2 x² = 0.0
//
// If the equation is nearly linear, it returns the root ignoring the
// quadratic term. In the degenerate case where all coefficients are zero, a
// single 0.0 is returned.
func SolveQuadratic(c0, c1, c2 float64) ([2]float64, int) {
	sc0 := c0 / c2
	sc1 := c1 / c2
	if !isFinite(sc0) || !isFinite(sc1) {
		// c2 is zero or very small, treat as a linear equation
		if c0 == 0.0 && c1 == 0.0 {
			return [2]float64{0}, 1
		}
		root := -c0 / c1
		if isFinite(root) {
			return [2]float64{root}, 1
		}
		return [2]float64{}, 0
	}
	arg := sc1*sc1 - 4.0*sc0
	var root1 float64
	if math.IsInf(arg, 0) {
		// sc1 * sc1 overflowed. Find one root using sc1 x + x² = 0, the
		// other as sc0 / root1.
		root1 = -sc1
	} else {
		if arg < 0.0 {
			return [2]float64{}, 0
		} else if arg == 0.0 {
			return [2]float64{-0.5 * sc1}, 1
		}
		// See https://math.stackexchange.com/questions/866331
		root1 = -0.5 * (sc1 + math.Copysign(math.Sqrt(arg), sc1))
	}
	root2 := sc0 / root1
	if math.IsInf(root2, 0) {
		return [2]float64{root1}, 1
	}
	if root2 > root1 {
		return [2]float64{root1, root2}, 2
	}
	return [2]float64{root2, root1}, 2
}

func isFinite(x float64) bool {
	return !math.IsInf(x, 0) && !math.IsNaN(x)
}
