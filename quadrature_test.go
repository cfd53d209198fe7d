package contour

import (
	"math"
	"testing"
)

func TestGaussLegendreTables(t *testing.T) {
	if gaussLegendre(1) != nil || gaussLegendre(maxQuadratureOrder+1) != nil {
		t.Error("got coefficients for an untabulated order")
	}
	for n := minQuadratureOrder; n <= maxQuadratureOrder; n++ {
		coeffs := gaussLegendre(n)
		if len(coeffs) != n {
			t.Fatalf("order %d: got %d coefficients", n, len(coeffs))
		}
		var sum float64
		for i, c := range coeffs {
			sum += c.weight
			if i > 0 && c.abscissa <= coeffs[i-1].abscissa {
				t.Errorf("order %d: abscissae not increasing at %d", n, i)
			}
			if c.abscissa <= -1 || c.abscissa >= 1 {
				t.Errorf("order %d: abscissa %g outside (-1, 1)", n, c.abscissa)
			}
		}
		if math.Abs(sum-2) > 1e-13 {
			t.Errorf("order %d: weights sum to %.17g, want 2", n, sum)
		}
	}
}

func TestIntegratePolynomials(t *testing.T) {
	// n-point quadrature is exact for polynomials of degree up to 2n − 1.
	for _, n := range []int{2, 3, 8, LengthOrder, maxQuadratureOrder} {
		for k := range 2 * n {
			f := func(x float64) float64 { return math.Pow(x, float64(k)) }
			got := integrate(f, 1, n)
			want := 1 / float64(k+1)
			if math.Abs(got-want) > 1e-13 {
				t.Errorf("order %d: ∫x^%d = %.17g, want %.17g", n, k, got, want)
			}
		}
	}
}

func TestIntegratePartial(t *testing.T) {
	got := integrate(math.Cos, 0.5, LengthOrder)
	if want := math.Sin(0.5); math.Abs(got-want) > 1e-15 {
		t.Errorf("got %.17g, want %.17g", got, want)
	}
	if got := integrate(math.Cos, 0, LengthOrder); got != 0 {
		t.Errorf("got %g for an empty interval", got)
	}
}
