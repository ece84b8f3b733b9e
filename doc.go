// Package bezierline computes discretized quadratic Bézier curves between
// two geographic coordinates, for use as curved polyline overlays on a map.
//
// A [Curve] is built from two endpoints. Its single Bézier control point is
// either supplied explicitly with [WithControlPoint] or derived from the
// endpoints and a curvature factor: the arithmetic midpoint of the segment,
// offset sideways by an amount scaled by the factor. Sampling the curve at
// evenly spaced parameter values yields an ordered sequence of [LatLng]
// points suitable for a polyline, plus the exact curve midpoint.
//
// All arithmetic happens in flat lat/lng space. The curves are not
// geodesics, and the control point offset is not a true perpendicular under
// real map projections; the distortion grows near the poles. This trade-off
// is deliberate: the output is a visual map decoration, not a navigation
// path.
//
// The package performs no validation. Non-finite coordinates propagate into
// non-finite samples; callers that accept untrusted input should check
// [LatLng.IsNaN] and [LatLng.IsInf] before constructing a curve.
//
// Rendering is out of scope. A map layer consumes the [RenderableLine]
// capability, pairing the sampled path with pass-through [Style] attributes,
// and constructs whatever overlay primitive its rendering library requires.
//
// See [A Primer on Bézier Curves] for background on the quadratic Bernstein
// blend used here.
//
// [A Primer on Bézier Curves]: https://pomax.github.io/bezierinfo/
package bezierline
