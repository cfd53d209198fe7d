package contour

// The functions in this file evaluate Bézier curves along a single axis.
// Callers evaluate x and y separately, always passing the coordinates of the
// same axis for every control point.

func lerp(t, p0, p1 float64) float64 {
	return p0 + t*(p1-p0)
}

func evalQuadratic(t, p0, p1, p2 float64) float64 {
	mt := 1 - t
	return mt*mt*p0 + 2*mt*t*p1 + t*t*p2
}

func evalCubic(t, p0, p1, p2, p3 float64) float64 {
	mt := 1 - t
	return mt*mt*mt*p0 + 3*mt*mt*t*p1 + 3*mt*t*t*p2 + t*t*t*p3
}

// derivQuadratic evaluates the first derivative of a quadratic Bézier, which
// is the line between 2(p1−p0) and 2(p2−p1).
func derivQuadratic(t, p0, p1, p2 float64) float64 {
	return lerp(t, 2*(p1-p0), 2*(p2-p1))
}

// derivCubic evaluates the first derivative of a cubic Bézier, which is the
// quadratic over 3(p1−p0), 3(p2−p1) and 3(p3−p2).
func derivCubic(t, p0, p1, p2, p3 float64) float64 {
	return evalQuadratic(t, 3*(p1-p0), 3*(p2-p1), 3*(p3-p2))
}

func clamp01(t float64) float64 {
	return min(max(t, 0), 1)
}
