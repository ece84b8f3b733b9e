package bezierline

import (
	"sync"
)

// Curve is a quadratic Bézier curve between two geographic coordinates.
//
// A Curve is fully determined when [New] returns: the control point is
// resolved once, from an explicit override or from the curvature factor,
// and never re-derived. The sampled polyline is computed on first access
// and cached; a Curve is never mutated afterwards, so it is safe to read
// from multiple goroutines. Producing a different curve means constructing
// a new Curve.
type Curve struct {
	from    LatLng
	to      LatLng
	control LatLng
	steps   int
	style   Style

	once     sync.Once
	points   []LatLng
	midpoint LatLng
}

// New constructs a curve between from and to, applying opts over the
// package defaults.
func New(from, to LatLng, opts ...Option) *Curve {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	control := o.control
	if !o.hasControl {
		control = ControlPoint(from, to, o.curveFactor)
	}
	return &Curve{
		from:    from,
		to:      to,
		control: control,
		steps:   o.steps,
		style: Style{
			Color:   o.color,
			Opacity: o.opacity,
			Weight:  o.weight,
		},
	}
}

// ControlPoint derives the Bézier control point for the segment from→to:
// the arithmetic midpoint of the segment, offset sideways by an amount
// scaled by factor. A factor of 0 returns the midpoint itself; negating
// the factor mirrors the offset to the other side of the segment.
//
// The offset is a fixed affine formula in flat lat/lng space, not a true
// perpendicular under real map projections. Consumers rely on its exact
// output, so it must not be "corrected".
func ControlPoint(from, to LatLng, factor float64) LatLng {
	m := from.Midpoint(to)
	return LatLng{
		Lat: (m.Lng-to.Lng)*factor + m.Lat,
		Lng: (to.Lat-m.Lat)*factor + m.Lng,
	}
}

// Eval evaluates the curve at parameter t, blending each axis with the
// quadratic Bernstein polynomial (1−t)²·from + 2t(1−t)·control + t²·to.
// t is conventionally in [0, 1] but is not clamped; values outside that
// range extrapolate the curve. t=0 and t=1 reduce exactly to the
// endpoints.
func (c *Curve) Eval(t float64) LatLng {
	mt := 1.0 - t
	return LatLng{
		Lat: c.from.Lat*mt*mt + (c.control.Lat*mt*2.0+c.to.Lat*t)*t,
		Lng: c.from.Lng*mt*mt + (c.control.Lng*mt*2.0+c.to.Lng*t)*t,
	}
}

// Points returns the curve sampled at evenly spaced parameter values, as
// an ordered polyline from the start point to the end point. The sequence
// has effectiveSteps+1 points, where effectiveSteps is the configured step
// count rounded up to the nearest even number so that an exact midpoint
// sample exists.
//
// The slice is computed once and cached; repeated calls return the same
// slice, which callers must not modify.
func (c *Curve) Points() []LatLng {
	c.once.Do(c.sample)
	return c.points
}

// Midpoint returns the sample at the curve's center parameter. It equals
// Eval(0.5) exactly.
func (c *Curve) Midpoint() LatLng {
	c.once.Do(c.sample)
	return c.midpoint
}

func (c *Curve) sample() {
	n := c.steps
	if n%2 != 0 {
		n++
	}
	if n == 0 {
		// Degenerate single-sample curve; avoids dividing by zero below.
		c.points = []LatLng{c.from}
		c.midpoint = c.from
		return
	}
	pts := make([]LatLng, n+1)
	for i := range pts {
		pts[i] = c.Eval(float64(i) / float64(n))
	}
	c.points = pts
	c.midpoint = pts[n/2]
}

// PathLength returns the length of the sampled polyline in flat lat/lng
// space, in degrees. It approximates the curve's arc length at the curve's
// sampling resolution; it is not a geodesic length.
func (c *Curve) PathLength() float64 {
	pts := c.Points()
	var length float64
	for i := 1; i < len(pts); i++ {
		length += pts[i-1].Distance(pts[i])
	}
	return length
}

// From returns the start point.
func (c *Curve) From() LatLng {
	return c.from
}

// To returns the end point.
func (c *Curve) To() LatLng {
	return c.to
}

// Control returns the resolved control point.
func (c *Curve) Control() LatLng {
	return c.control
}
