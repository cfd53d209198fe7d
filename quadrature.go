package contour

import "math"

const (
	minQuadratureOrder = 2
	maxQuadratureOrder = 24
)

// LengthOrder is the number of Gauss–Legendre sample points used to compute
// the arc length of cubic Béziers.
const LengthOrder = 20

type glCoeff struct {
	weight   float64
	abscissa float64
}

// Tables of Gauss–Legendre weights and abscissae on [-1, 1], indexed by
// order. Entries below minQuadratureOrder are nil.
var gaussLegendreTables = func() [maxQuadratureOrder + 1][]glCoeff {
	var tables [maxQuadratureOrder + 1][]glCoeff
	for n := minQuadratureOrder; n <= maxQuadratureOrder; n++ {
		tables[n] = legendreCoeffs(n)
	}
	return tables
}()

// gaussLegendre returns the coefficients of n-point Gauss–Legendre
// quadrature, sorted by increasing abscissa. It returns nil for orders that
// aren't tabulated.
func gaussLegendre(n int) []glCoeff {
	if n < minQuadratureOrder || n > maxQuadratureOrder {
		return nil
	}
	return gaussLegendreTables[n]
}

// legendreCoeffs computes the roots of the Legendre polynomial Pₙ by Newton
// iteration, together with the matching quadrature weights.
func legendreCoeffs(n int) []glCoeff {
	out := make([]glCoeff, n)
	for i := range (n + 1) / 2 {
		x := math.Cos(math.Pi * (float64(i) + 0.75) / (float64(n) + 0.5))
		for range 100 {
			p, dp := legendre(n, x)
			dx := p / dp
			x -= dx
			if math.Abs(dx) < 1e-16 {
				break
			}
		}
		_, dp := legendre(n, x)
		w := 2 / ((1 - x*x) * dp * dp)
		out[i] = glCoeff{w, -x}
		out[n-1-i] = glCoeff{w, x}
	}
	return out
}

// legendre evaluates Pₙ(x) and its derivative using the three-term
// recurrence. x must not be ±1.
func legendre(n int, x float64) (p, dp float64) {
	p, prev := x, 1.0
	for k := 2; k <= n; k++ {
		fk := float64(k)
		p, prev = ((2*fk-1)*x*p-(fk-1)*prev)/fk, p
	}
	dp = float64(n) * (x*p - prev) / (x*x - 1)
	return p, dp
}

// integrate approximates the integral of f over [0, t] with quadrature of
// the given order, mapping the abscissae from [-1, 1] onto [0, t].
func integrate(f func(float64) float64, t float64, order int) float64 {
	z := t / 2
	var sum float64
	for _, c := range gaussLegendre(order) {
		sum += c.weight * f(z*c.abscissa+z)
	}
	return z * sum
}
