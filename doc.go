// Package contour measures, trims, flattens, and serializes 2D vector paths.
//
// A path is made of one or more contours. A [Contour] is an ordered chain of
// segments, each of which is a line ([Linear]), a quadratic Bézier
// ([Quadratic]), or a cubic Bézier ([Cubic]). Consecutive segments share
// their end and start points. A contour may be closed, which only affects
// how it is serialized.
//
// # Building paths
//
// Contours are usually built with a [Path], which accepts drawing operations
// ([Path.MoveTo], [Path.LineTo], [Path.QuadTo], [Path.ConicTo],
// [Path.CubicTo], [Path.Close]) and appends segments to its current contour.
// Paths can also be replayed from a command stream ([FromCommands]) or from
// SVG path data ([FromSVG]). SVG path data is tokenized by the independent
// [honnef.co/go/contour/svgpath] package.
//
// Once built, contours are treated as immutable. Operations such as
// [Contour.Trim] return new contours and never modify their receiver, which
// makes concurrent read-only use of a contour safe.
//
// # Measuring
//
// [Contour.Length] returns the arc length of a contour and
// [Contour.PosTanAtLength] finds the position and unit tangent at a given
// distance along it. Arc lengths of lines are exact, those of quadratics use
// an analytical formula, and those of cubics use 20-point Gauss–Legendre
// quadrature. Finding the parameter for a given arc length uses the ITP
// method.
//
// [ContourMeasure] caches the cumulative segment lengths of a contour, for
// callers that issue many queries against the same contour.
//
// # Flattening
//
// [Contour.Polyline] approximates a contour by a polyline. Quadratic Béziers
// are flattened using the parabola integral approach described in
// [Flattening quadratic Béziers]; cubic Béziers are first approximated by a
// small number of quadratics (see [Cubic.Quadratics]).
//
// # Serializing
//
// [Contour.ToCommands] produces a stream of [Command] values using the verb
// encoding of Skia ([VerbMove], [VerbLine], ...), and [Contour.SVG] produces
// SVG path data using the M, L, Q, C and Z commands.
//
// [Flattening quadratic Béziers]: https://raphlinus.github.io/graphics/curves/2019/12/23/flatten-quadbez.html
package contour
