package contour

// Linear is a line segment from P1 to P2.
type Linear struct {
	P1 Point
	P2 Point
}

func (l Linear) Start() Point { return l.P1 }
func (l Linear) End() Point   { return l.P2 }

// Length returns the length of the line from its start up to parameter t.
func (l Linear) Length(t float64) float64 {
	return t * l.P2.Sub(l.P1).Hypot()
}

// Eval returns the point at parameter t.
func (l Linear) Eval(t float64) Point {
	return Point{
		X: lerp(t, l.P1.X, l.P2.X),
		Y: lerp(t, l.P1.Y, l.P2.Y),
	}
}

// Derivative returns the first derivative, which is constant.
func (l Linear) Derivative(t float64) Vec2 {
	return l.P2.Sub(l.P1)
}

// SolveForLength returns the parameter at which the line has the given
// length from its start.
func (l Linear) SolveForLength(length float64) float64 {
	total := l.Length(1)
	if total == 0 {
		return 0
	}
	return clamp01(length / total)
}

// PosTanAtLength returns the point and unit tangent at the given distance
// from the start of the line. The tangent is zero for zero-length lines.
func (l Linear) PosTanAtLength(length float64) (Point, Vec2) {
	return l.Eval(l.SolveForLength(length)), unit(l.P2.Sub(l.P1))
}

func (l Linear) Subsegment(t0, t1 float64) Linear {
	return Linear{l.Eval(t0), l.Eval(t1)}
}

// Polyline returns the line's end point. Lines are already flat.
func (l Linear) Polyline(scaleFactor float64) []Point {
	return []Point{l.P2}
}

// StartDirection returns the unit vector pointing from the end of the line
// back to its start. It returns false if the line has no direction.
func (l Linear) StartDirection() (Vec2, bool) {
	if l.P1.ApproxEqual(l.P2) {
		return Vec2{}, false
	}
	return l.P1.Sub(l.P2).Normalize(), true
}

// EndDirection returns the unit vector pointing from the start of the line
// to its end. It returns false if the line has no direction.
func (l Linear) EndDirection() (Vec2, bool) {
	if l.P1.ApproxEqual(l.P2) {
		return Vec2{}, false
	}
	return l.P2.Sub(l.P1).Normalize(), true
}

func (l Linear) Extrema() ([MaxExtrema]float64, int) {
	return [MaxExtrema]float64{}, 0
}

func (l Linear) Command() Command {
	return Command{Verb: VerbLine, Args: []float64{l.P2.X, l.P2.Y}}
}

func (l Linear) SVGFragment() string {
	return string(appendPoints([]byte{'L'}, l.P2))
}

func (l Linear) Equal(o Linear) bool {
	return l.P1.ApproxEqual(o.P1) && l.P2.ApproxEqual(o.P2)
}

func (l Linear) Transform(aff Affine) Linear {
	return Linear{
		P1: l.P1.Transform(aff),
		P2: l.P2.Transform(aff),
	}
}

func (l Linear) Seg() Segment {
	return Segment{Kind: LinearKind, P1: l.P1, P2: l.P2}
}
