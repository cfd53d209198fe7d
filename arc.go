package contour

import (
	"iter"
	"math"
)

// Arc is an elliptical arc in center parameterization.
type Arc struct {
	Center     Point
	Radii      Vec2
	StartAngle float64
	SweepAngle float64
	XRotation  float64
}

// arcTolerance is the accuracy with which SVG arcs are approximated by
// cubics.
const arcTolerance = 0.1

// ArcFromSVG converts an SVG elliptical arc from one point to another into
// center parameterization. xRotation is in degrees, as in SVG path data.
//
// It returns false if the arc degenerates: identical end points mean the
// arc is omitted, and a zero radius means it is drawn as a straight line.
// Radii too small to span the end points are scaled up.
//
// See https://www.w3.org/TR/SVG/implnote.html#ArcConversionEndpointToCenter
func ArcFromSVG(from, to Point, radii Vec2, xRotation float64, largeArc, sweep bool) (Arc, bool) {
	if from == to {
		return Arc{}, false
	}
	rx, ry := math.Abs(radii.X), math.Abs(radii.Y)
	if rx < 1e-5 || ry < 1e-5 {
		return Arc{}, false
	}
	xRotation *= math.Pi / 180.0

	// Step 1: compute (x1', y1').
	p := rotatePt(from.Sub(to).Mul(0.5), -xRotation)

	// Correct out-of-range radii.
	if lambda := p.X*p.X/(rx*rx) + p.Y*p.Y/(ry*ry); lambda > 1 {
		s := math.Sqrt(lambda)
		rx *= s
		ry *= s
	}

	// Step 2: compute (cx', cy').
	rxry := rx * rx * ry * ry
	num := rxry - rx*rx*p.Y*p.Y - ry*ry*p.X*p.X
	den := rx*rx*p.Y*p.Y + ry*ry*p.X*p.X
	coef := math.Sqrt(max(num/den, 0))
	if largeArc == sweep {
		coef = -coef
	}
	cp := Vec2{coef * rx * p.Y / ry, -coef * ry * p.X / rx}

	// Step 3: compute (cx, cy) from (cx', cy').
	center := from.Midpoint(to).Translate(rotatePt(cp, xRotation))

	// Step 4: compute the start and sweep angles.
	u := Vec2{(p.X - cp.X) / rx, (p.Y - cp.Y) / ry}
	v := Vec2{(-p.X - cp.X) / rx, (-p.Y - cp.Y) / ry}
	start := math.Atan2(u.Y, u.X)
	sweepAngle := math.Atan2(u.Cross(v), u.Dot(v))
	if !sweep && sweepAngle > 0 {
		sweepAngle -= 2 * math.Pi
	} else if sweep && sweepAngle < 0 {
		sweepAngle += 2 * math.Pi
	}

	return Arc{
		Center:     center,
		Radii:      Vec2{rx, ry},
		StartAngle: start,
		SweepAngle: sweepAngle,
		XRotation:  xRotation,
	}, true
}

// Start returns the point at the start of the arc.
func (a Arc) Start() Point {
	return a.Center.Translate(sampleEllipse(a.Radii, a.XRotation, a.StartAngle))
}

// End returns the point at the end of the arc.
func (a Arc) End() Point {
	return a.Center.Translate(sampleEllipse(a.Radii, a.XRotation, a.StartAngle+a.SweepAngle))
}

// Cubics approximates the arc with cubic Béziers, such that the distance
// between arc and cubics is roughly bounded by tolerance. The number of
// cubics scales as tolerance^(-1/6).
func (a Arc) Cubics(tolerance float64) iter.Seq[Cubic] {
	return func(yield func(Cubic) bool) {
		scaledError := max(a.Radii.X, a.Radii.Y) / tolerance
		// Number of subdivisions per ellipse based on error tolerance.
		// Note: this may slightly underestimate the error for quadrants.
		nError := max(math.Pow(1.1163*scaledError, 1.0/6.0), 3.999_999)
		n := subdivisions(nError * math.Abs(a.SweepAngle) * (1.0 / (2.0 * math.Pi)))
		angleStep := a.SweepAngle / float64(n)
		armLen := math.Copysign((4.0/3.0)*math.Tan(math.Abs(0.25*angleStep)), a.SweepAngle)
		angle0 := a.StartAngle
		p0 := sampleEllipse(a.Radii, a.XRotation, angle0)

		for range n {
			angle1 := angle0 + angleStep
			p1 := p0.Add(sampleEllipse(a.Radii, a.XRotation, angle0+math.Pi/2).Mul(armLen))
			p3 := sampleEllipse(a.Radii, a.XRotation, angle1)
			p2 := p3.Sub(sampleEllipse(a.Radii, a.XRotation, angle1+math.Pi/2).Mul(armLen))

			c := Cubic{
				a.Center.Translate(p0),
				a.Center.Translate(p1),
				a.Center.Translate(p2),
				a.Center.Translate(p3),
			}
			angle0 = angle1
			p0 = p3

			if !yield(c) {
				return
			}
		}
	}
}

// sampleEllipse returns the point on the ellipse with the given radii and
// rotation at the given angle, relative to the ellipse's center.
func sampleEllipse(radii Vec2, xRotation float64, angle float64) Vec2 {
	sin, cos := math.Sincos(angle)
	u := radii.X * cos
	v := radii.Y * sin
	return rotatePt(Vec2{u, v}, xRotation)
}

// rotatePt rotates pt about the origin by angle radians.
func rotatePt(pt Vec2, angle float64) Vec2 {
	sin, cos := math.Sincos(angle)
	return Vec2{
		X: pt.X*cos - pt.Y*sin,
		Y: pt.X*sin + pt.Y*cos,
	}
}
