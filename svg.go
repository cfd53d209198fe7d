package contour

import "strconv"

// appendFloat appends the shortest decimal form of v that parses back to v,
// without an exponent.
func appendFloat(b []byte, v float64) []byte {
	return strconv.AppendFloat(b, v, 'f', -1, 64)
}

// appendPoints appends the coordinates of pts to b, separated by spaces.
func appendPoints(b []byte, pts ...Point) []byte {
	for i, pt := range pts {
		if i > 0 {
			b = append(b, ' ')
		}
		b = appendFloat(b, pt.X)
		b = append(b, ' ')
		b = appendFloat(b, pt.Y)
	}
	return b
}

// appendSVG appends the SVG path data for a contour: a moveto to start,
// followed by the fragments of segs separated by spaces. If closed, the last
// fragment is replaced by a closepath.
func appendSVG(b []byte, start Point, segs []Segment, closed bool) []byte {
	b = appendPoints(append(b, 'M'), start)
	for i, seg := range segs {
		b = append(b, ' ')
		if closed && i == len(segs)-1 {
			b = append(b, 'Z')
			break
		}
		b = append(b, seg.SVGFragment()...)
	}
	return b
}
