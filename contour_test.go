package contour

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func mixedContour(closed bool) *Contour {
	c := NewContour(closed)
	c.Append(Linear{Pt(0, 0), Pt(100, 0)}.Seg())
	c.Append(Quadratic{Pt(100, 0), Pt(150, 50), Pt(100, 100)}.Seg())
	c.Append(Cubic{Pt(100, 100), Pt(60, 140), Pt(20, 60), Pt(0, 100)}.Seg())
	c.Append(Linear{Pt(0, 100), Pt(0, 0)}.Seg())
	return c
}

func TestContourLength(t *testing.T) {
	c := mixedContour(false)
	var sum float64
	for seg := range c.Segments() {
		sum += seg.Length(1)
	}
	if got := c.Length(); got != sum {
		t.Errorf("got length %g, want sum of segment lengths %g", got, sum)
	}
	if got := NewContour(false).Length(); got != 0 {
		t.Errorf("got length %g for an empty contour", got)
	}
}

func TestContourTrimWhole(t *testing.T) {
	c := mixedContour(true)
	trimmed := c.Trim(0, 1)
	if trimmed.Closed() {
		t.Error("trimmed contour is closed")
	}
	if trimmed.Len() != c.Len() {
		t.Fatalf("got %d segments, want %d", trimmed.Len(), c.Len())
	}
	diff(t, c.Length(), trimmed.Length(), cmpopts.EquateApprox(0, 1e-9))
	assertNear(t, trimmed.Start(), c.Start(), 1e-9)
	assertNear(t, trimmed.End(), c.End(), 1e-9)
	for i := range c.Len() {
		if got, want := trimmed.Segment(i).Kind, c.Segment(i).Kind; got != want {
			t.Errorf("segment %d: got kind %v, want %v", i, got, want)
		}
	}
}

func TestContourTrimPartial(t *testing.T) {
	c := NewContour(false)
	c.Append(Linear{Pt(0, 0), Pt(10, 0)}.Seg())
	c.Append(Linear{Pt(10, 0), Pt(10, 30)}.Seg())
	trimmed := c.Trim(0.125, 0.5)
	if got, want := trimmed.SVG(), "M5 0 L10 0 L10 10"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	diff(t, 15.0, trimmed.Length(), cmpopts.EquateApprox(0, 1e-12))

	// Within a curve, the length fraction is the curve parameter.
	q := Quadratic{Pt(0, 0), Pt(50, 100), Pt(100, 0)}
	c = NewContour(false)
	c.Append(q.Seg())
	trimmed = c.Trim(0.25, 0.75)
	if trimmed.Len() != 1 || trimmed.Segment(0).Kind != QuadraticKind {
		t.Fatalf("got %d segments, want one quadratic", trimmed.Len())
	}
	assertNear(t, trimmed.Start(), q.Eval(0.25), 1e-12)
	assertNear(t, trimmed.End(), q.Eval(0.75), 1e-12)
}

func TestContourTrimEmpty(t *testing.T) {
	c := mixedContour(true)
	for _, r := range [][2]float64{{0.5, 0.5}, {0.7, 0.2}, {2, 3}, {-2, -1}} {
		trimmed := c.Trim(r[0], r[1])
		if trimmed.Len() != 0 || trimmed.Closed() {
			t.Errorf("Trim(%g, %g) = %d segments, closed %t; want empty open contour",
				r[0], r[1], trimmed.Len(), trimmed.Closed())
		}
	}
	// NaN bounds saturate to 0.
	if n := c.Trim(math.NaN(), 0.5).Len(); n == 0 {
		t.Error("Trim(NaN, 0.5) is empty")
	}
}

func TestContourTrimClamps(t *testing.T) {
	c := mixedContour(false)
	diff(t, c.Length(), c.Trim(-1, 2).Length(), cmpopts.EquateApprox(0, 1e-9))
}

func TestContourPosTan(t *testing.T) {
	c := NewContour(false)
	c.Append(Linear{Pt(0, 0), Pt(10, 0)}.Seg())
	c.Append(Linear{Pt(10, 0), Pt(10, 10)}.Seg())

	var out [4]float64
	if !c.PosTanAtLength(5, &out) {
		t.Fatal("distance 5 reported as off the contour")
	}
	diff(t, [4]float64{5, 0, 1, 0}, out)

	if !c.PosTanAtLength(15, &out) {
		t.Fatal("distance 15 reported as off the contour")
	}
	diff(t, [4]float64{10, 5, 0, 1}, out)

	// The first segment answers queries at its end.
	c.PosTanAtLength(10, &out)
	diff(t, [4]float64{10, 0, 1, 0}, out)

	// Negative lengths map to the start.
	c.PosTanAtLength(-3, &out)
	diff(t, [4]float64{0, 0, 1, 0}, out)

	out = [4]float64{-1, -1, -1, -1}
	if c.PosTanAtLength(25, &out) {
		t.Error("distance 25 reported as on the contour")
	}
	diff(t, [4]float64{10, 10, -1, -1}, out)

	out = [4]float64{-1, -1, -1, -1}
	if NewContour(false).PosTanAtLength(0, &out) {
		t.Error("empty contour reported a position")
	}
	diff(t, [4]float64{-1, -1, -1, -1}, out)
}

func TestContourSVG(t *testing.T) {
	c := NewContour(true)
	c.Append(Linear{Pt(0, 0), Pt(10, 0)}.Seg())
	c.Append(Linear{Pt(10, 0), Pt(0, 0)}.Seg())
	if got, want := c.SVG(), "M0 0 L10 0 Z"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	c = NewContour(false)
	c.Append(Linear{Pt(0, 0), Pt(10, 0)}.Seg())
	c.Append(Quadratic{Pt(10, 0), Pt(15, 5), Pt(10, 10)}.Seg())
	c.Append(Cubic{Pt(10, 10), Pt(5, 15), Pt(0, 15), Pt(-0.5, 10)}.Seg())
	if got, want := c.SVG(), "M0 0 L10 0 Q15 5 10 10 C5 15 0 15 -0.5 10"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	if got := NewContour(true).SVG(); got != "" {
		t.Errorf("got %q for an empty contour", got)
	}
}

func TestContourToCommands(t *testing.T) {
	c := NewContour(true)
	c.Append(Linear{Pt(0, 0), Pt(10, 0)}.Seg())
	c.Append(Cubic{Pt(10, 0), Pt(10, 5), Pt(5, 10), Pt(0, 10)}.Seg())
	c.Append(Linear{Pt(0, 10), Pt(0, 0)}.Seg())
	want := []Command{
		{VerbMove, []float64{0, 0}},
		{VerbLine, []float64{10, 0}},
		{VerbCubic, []float64{10, 5, 5, 10, 0, 10}},
		{VerbClose, nil},
	}
	diff(t, want, c.ToCommands())
	if cmds := NewContour(false).ToCommands(); cmds != nil {
		t.Errorf("got %v for an empty contour", cmds)
	}
}

func TestContourEnumerateComponents(t *testing.T) {
	c := mixedContour(false)
	var kinds []string
	var indices []int
	c.EnumerateComponents(Handlers{
		Linear: func(seg Linear, index int) {
			kinds = append(kinds, "line")
			indices = append(indices, index)
		},
		Cubic: func(seg Cubic, index int) {
			kinds = append(kinds, "cubic")
			indices = append(indices, index)
		},
	})
	diff(t, []string{"line", "cubic", "line"}, kinds)
	diff(t, []int{0, 2, 3}, indices)
}

func TestContourBounds(t *testing.T) {
	c := NewContour(false)
	c.Append(Linear{Pt(0, 0), Pt(10, 0)}.Seg())
	c.Append(Quadratic{Pt(10, 0), Pt(20, 5), Pt(10, 10)}.Seg())
	diff(t, Rect{0, 0, 15, 10}, c.Bounds(), cmpopts.EquateApprox(0, 1e-12))
	diff(t, Rect{}, NewContour(false).Bounds())
}

func TestContourTransform(t *testing.T) {
	c := mixedContour(true)
	moved := c.Transform(Translate(Vec(5, -5)))
	if moved.Closed() != c.Closed() {
		t.Error("transform changed closedness")
	}
	assertNear(t, moved.Start(), Pt(5, -5), 1e-12)
	if !moved.Transform(Translate(Vec(-5, 5))).Equal(c) {
		t.Error("inverse translation does not restore the contour")
	}
	if c.Equal(mixedContour(false)) {
		t.Error("contours with different closedness compare equal")
	}
	diff(t, c.Length(), c.Transform(Rotate(1)).Length(), cmpopts.EquateApprox(0, 1e-9))
}

func TestContourPolyline(t *testing.T) {
	c := mixedContour(false)
	pts := c.Polyline(1)
	diff(t, c.Start(), pts[0])
	diff(t, c.End(), pts[len(pts)-1])
	if pts := NewContour(false).Polyline(1); pts != nil {
		t.Errorf("got %v for an empty contour", pts)
	}
}
