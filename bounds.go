package bezierline

// Bounds is an axis-aligned geographic bounding box.
type Bounds struct {
	MinLat, MinLng float64
	MaxLat, MaxLng float64
}

// NewBoundsFromPoints returns the bounding box with the extents of a and b.
func NewBoundsFromPoints(a, b LatLng) Bounds {
	return Bounds{
		MinLat: min(a.Lat, b.Lat),
		MinLng: min(a.Lng, b.Lng),
		MaxLat: max(a.Lat, b.Lat),
		MaxLng: max(a.Lng, b.Lng),
	}
}

// Extend returns the bounding box grown to include ll.
func (b Bounds) Extend(ll LatLng) Bounds {
	return Bounds{
		MinLat: min(b.MinLat, ll.Lat),
		MinLng: min(b.MinLng, ll.Lng),
		MaxLat: max(b.MaxLat, ll.Lat),
		MaxLng: max(b.MaxLng, ll.Lng),
	}
}

// Contains reports whether ll lies inside the bounding box, edges
// included.
func (b Bounds) Contains(ll LatLng) bool {
	return ll.Lat >= b.MinLat && ll.Lat <= b.MaxLat &&
		ll.Lng >= b.MinLng && ll.Lng <= b.MaxLng
}

// Extrema returns the interior parameter values at which the curve's
// latitude or longitude reaches an extremum, in increasing order.
//
// Finding the extrema of a quadratic Bézier means finding the roots of its
// first derivative, which is linear in t, so at most one extremum exists
// per axis. Only extrema strictly inside (0, 1) count.
func (c *Curve) Extrema() ([2]float64, int) {
	var out [2]float64
	var n int
	d0 := c.control.Lat - c.from.Lat
	dd := (c.to.Lat - c.control.Lat) - d0
	if dd != 0.0 {
		t := -d0 / dd
		if t > 0.0 && t < 1.0 {
			out[n] = t
			n++
		}
	}
	d0 = c.control.Lng - c.from.Lng
	dd = (c.to.Lng - c.control.Lng) - d0
	if dd != 0.0 {
		t := -d0 / dd
		if t > 0.0 && t < 1.0 {
			out[n] = t
			n++
			if n == 2 && out[0] > t {
				out[0], out[1] = out[1], out[0]
			}
		}
	}
	return out, n
}

// Bounds returns the smallest axis-aligned bounding box that encloses the
// curve for t in [0, 1]. The box is tight: the control point is excluded
// unless the curve actually reaches its latitude or longitude. Useful for
// fitting a map viewport around the overlay.
func (c *Curve) Bounds() Bounds {
	b := NewBoundsFromPoints(c.from, c.to)
	ex, n := c.Extrema()
	for _, t := range ex[:n] {
		b = b.Extend(c.Eval(t))
	}
	return b
}
