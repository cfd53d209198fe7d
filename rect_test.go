package contour

import "testing"

func TestRect(t *testing.T) {
	r := NewRectFromPoints(Pt(10, 8), Pt(2, 4))
	diff(t, Rect{2, 4, 10, 8}, r)
	if w, h := r.Width(), r.Height(); w != 8 || h != 4 {
		t.Errorf("got size %gx%g, want 8x4", w, h)
	}
	diff(t, Pt(6, 6), r.Center())
	diff(t, Rect{0, 4, 10, 9}, r.UnionPoint(Pt(0, 9)))
	diff(t, Rect{2, 1, 12, 8}, r.Union(Rect{5, 1, 12, 3}))
	if got := r.String(); got != "Rect{2, 4, 10, 8}" {
		t.Errorf("got %q", got)
	}
}
