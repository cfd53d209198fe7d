package contour

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestCubicDerivative(t *testing.T) {
	// y = x^2
	c := Cubic{
		Pt(0.0, 0.0),
		Pt(1.0/3.0, 0.0),
		Pt(2.0/3.0, 1.0/3.0),
		Pt(1.0, 1.0),
	}

	const n = 10
	const delta = 1e-6
	for i := range n + 1 {
		ts := float64(i) / float64(n)
		p := c.Eval(ts)
		p1 := c.Eval(ts + delta)
		dApprox := p1.Sub(p).Mul(1.0 / delta)
		d := c.Derivative(ts)
		if l := d.Sub(dApprox).Hypot(); l >= delta*2 {
			t.Errorf("got difference of %g, want at most %g", l, delta*2)
		}
	}
}

func TestCubicEval(t *testing.T) {
	// Each axis uses its own coordinates.
	c := Cubic{Pt(0, 8), Pt(1, 8), Pt(2, 0), Pt(3, 0)}
	diff(t, Pt(1.5, 4), c.Eval(0.5))
}

func TestCubicToQuadratics(t *testing.T) {
	// y = x^3
	c := Cubic{
		Pt(0.0, 0.0),
		Pt(1.0/3.0, 0.0),
		Pt(2.0/3.0, 0.0),
		Pt(1.0, 1.0),
	}
	for i := range 10 {
		accuracy := math.Pow(0.1, float64(i))
		for seg := range c.Quadratics(accuracy) {
			t0, t1, q := seg.Start, seg.End, seg.Segment
			const epsilon = 1e-12
			if delta := q.Start().Sub(c.Eval(t0)).Hypot(); delta > epsilon {
				t.Fatalf("%g > %g", delta, epsilon)
			}
			if delta := q.End().Sub(c.Eval(t1)).Hypot(); delta > epsilon {
				t.Fatalf("%g > %g", delta, epsilon)
			}
			const n = 4
			for j := range n + 1 {
				ts := float64(j) / float64(n)
				p := q.Eval(ts)
				if error := math.Abs(p.Y - math.Pow(p.X, 3)); error > accuracy {
					t.Fatalf("got error %g for desired accuracy of %g", error, accuracy)
				}
			}
		}
	}
}

func TestCubicToQuadraticsDegenerate(t *testing.T) {
	// Collinear points still produce a quadratic.
	c := Cubic{
		Pt(0.0, 9.0),
		Pt(6.0, 6.0),
		Pt(12.0, 3.0),
		Pt(18.0, 0.0),
	}
	var n int
	for range c.Quadratics(1e-6) {
		n++
	}
	if n != 1 {
		t.Errorf("got %d quadratics, expected 1", n)
	}
}

func TestCubicToQuadraticsCap(t *testing.T) {
	c := Cubic{Pt(0, 0), Pt(1e12, 0), Pt(-1e12, 0), Pt(0, 0)}
	var n int
	for range c.Quadratics(CubicAccuracy) {
		n++
	}
	if n != MaxSubdivisions {
		t.Errorf("got %d quadratics, want %d", n, MaxSubdivisions)
	}
}

func TestCubicExtrema(t *testing.T) {
	// y = x^2
	q := Cubic{Pt(0.0, 0.0), Pt(0.0, 1.0), Pt(1.0, 1.0), Pt(1.0, 0.0)}
	extrema, n := q.Extrema()
	if n != 1 {
		t.Fatalf("got %d extrema, expected 1", n)
	}
	if want := 0.5; math.Abs(extrema[0]-want) > 1e-6 {
		t.Errorf("got extrema %v, want %v", extrema[0], want)
	}

	q = Cubic{Pt(0.4, 0.5), Pt(0.0, 1.0), Pt(1.0, 0.0), Pt(0.5, 0.4)}
	extrema, n = q.Extrema()
	if n != 4 {
		t.Fatalf("got %d extrema, expected 4", n)
	}
	for i := 1; i < n; i++ {
		if extrema[i] < extrema[i-1] {
			t.Errorf("extrema not sorted: %v", extrema[:n])
		}
	}
}

func TestCubicArclen(t *testing.T) {
	// y = x^2
	c := Cubic{
		Pt(0.0, 0.0),
		Pt(1.0/3.0, 0.0),
		Pt(2.0/3.0, 1.0/3.0),
		Pt(1.0, 1.0),
	}
	trueArclen := 0.5*math.Sqrt(5.0) + 0.25*math.Log(2.0+math.Sqrt(5.0))
	diff(t, trueArclen, c.Length(1), cmpopts.EquateApprox(0, 1e-12))

	straight := Cubic{Pt(0, 0), Pt(1, 0), Pt(2, 0), Pt(3, 0)}
	diff(t, 3.0, straight.Length(1), cmpopts.EquateApprox(0, 1e-12))
	diff(t, 1.5, straight.Length(0.5), cmpopts.EquateApprox(0, 1e-12))
}

func TestCubicSolveForLength(t *testing.T) {
	// y = x^2 / 100
	c := Cubic{
		Pt(0.0, 0.0),
		Pt(100.0/3.0, 0.0),
		Pt(200.0/3.0, 100.0/3.0),
		Pt(100.0, 100.0),
	}
	trueArclen := 100.0 * (0.5*math.Sqrt(5.0) + 0.25*math.Log(2.0+math.Sqrt(5.0)))
	const n = 10
	for j := range n + 1 {
		arc := float64(j) * (1.0 / float64(n) * trueArclen)
		tt := c.SolveForLength(arc)
		actualArc := c.Subsegment(0.0, tt).Length(1)
		diff(t, arc, actualArc, cmpopts.EquateApprox(0, 1e-8))
	}
}

func TestCubicSubsegment(t *testing.T) {
	c := Cubic{Pt(3.1, 4.1), Pt(5.9, 2.6), Pt(5.3, 5.8), Pt(1.2, 0.3)}
	t0 := 0.2
	t1 := 0.7
	cs := c.Subsegment(t0, t1)
	const n = 10
	for i := range n + 1 {
		tt := float64(i) / float64(n)
		assertNear(t, c.Eval(t0+tt*(t1-t0)), cs.Eval(tt), 1e-12)
	}
}

func TestCubicTangents(t *testing.T) {
	// Both control points coincide with the end points.
	c := Cubic{Pt(0, 0), Pt(0, 0), Pt(10, 10), Pt(10, 10)}
	d0, d1 := c.Tangents()
	diff(t, Vec(10, 10), d0)
	diff(t, Vec(10, 10), d1)

	_, tan := c.PosTanAtLength(0)
	diff(t, Vec(1, 1).Normalize(), tan, cmpopts.EquateApprox(0, 1e-12))

	if _, ok := (Cubic{Pt(1, 1), Pt(1, 1), Pt(1, 1), Pt(1, 1)}).StartDirection(); ok {
		t.Error("degenerate cubic has a start direction")
	}
}
