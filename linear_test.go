package contour

import (
	"math"
	"testing"
)

func TestLinearEval(t *testing.T) {
	// Each axis interpolates between its own coordinates.
	l := Linear{Pt(1, 2), Pt(5, 10)}
	diff(t, Pt(3, 6), l.Eval(0.5))
	diff(t, Pt(1, 2), l.Eval(0))
	diff(t, Pt(5, 10), l.Eval(1))
	diff(t, Vec(4, 8), l.Derivative(0.3))
}

func TestLinearLength(t *testing.T) {
	l := Linear{Pt(0, 0), Pt(3, 4)}
	if got := l.Length(1); got != 5 {
		t.Errorf("got length %g, want 5", got)
	}
	if got := l.Length(0.5); got != 2.5 {
		t.Errorf("got length %g, want 2.5", got)
	}
	if got := l.SolveForLength(2.5); got != 0.5 {
		t.Errorf("got t = %g, want 0.5", got)
	}
	if got := l.SolveForLength(-1); got != 0 {
		t.Errorf("got t = %g for negative length, want 0", got)
	}
	if got := l.SolveForLength(10); got != 1 {
		t.Errorf("got t = %g past the end, want 1", got)
	}
	if got := (Linear{Pt(1, 1), Pt(1, 1)}).SolveForLength(1); got != 0 {
		t.Errorf("got t = %g for a zero-length line, want 0", got)
	}
}

func TestLinearPosTan(t *testing.T) {
	l := Linear{Pt(0, 0), Pt(0, 10)}
	pos, tan := l.PosTanAtLength(4)
	diff(t, Pt(0, 4), pos)
	diff(t, Vec(0, 1), tan)

	pos, tan = Linear{Pt(2, 2), Pt(2, 2)}.PosTanAtLength(1)
	diff(t, Pt(2, 2), pos)
	diff(t, Vec2{}, tan)
}

func TestLinearDirections(t *testing.T) {
	l := Linear{Pt(0, 0), Pt(10, 0)}
	d, ok := l.StartDirection()
	if !ok {
		t.Fatal("line has no start direction")
	}
	diff(t, Vec(-1, 0), d)
	d, ok = l.EndDirection()
	if !ok {
		t.Fatal("line has no end direction")
	}
	diff(t, Vec(1, 0), d)

	if _, ok := (Linear{Pt(1, 1), Pt(1, 1)}).EndDirection(); ok {
		t.Error("degenerate line has an end direction")
	}
}

func TestLinearSubsegment(t *testing.T) {
	l := Linear{Pt(0, 0), Pt(10, 20)}
	diff(t, Linear{Pt(2.5, 5), Pt(5, 10)}, l.Subsegment(0.25, 0.5))
	if n := len(l.Polyline(1)); n != 1 {
		t.Errorf("got %d polyline points, want 1", n)
	}
	if got := l.Length(1); math.Abs(got-math.Sqrt(500)) > 1e-12 {
		t.Errorf("got length %g", got)
	}
	if got := l.SVGFragment(); got != "L10 20" {
		t.Errorf("got fragment %q", got)
	}
}
