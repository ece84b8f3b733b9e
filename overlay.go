package bezierline

// Style is display-only overlay styling. It has no effect on geometry and
// is passed through verbatim to the rendering layer.
type Style struct {
	Color   string
	Opacity float64
	Weight  float64
}

// RenderableLine is the capability a map-overlay rendering layer consumes
// to draw a styled polyline. The geometry core implements it; the map
// layer constructs whatever overlay primitive its rendering library
// requires from the path and style.
type RenderableLine interface {
	// Path returns the ordered polyline to draw.
	Path() []LatLng
	// Style returns the display attributes for the line.
	Style() Style
}

var _ RenderableLine = (*Curve)(nil)

// Path returns the sampled polyline; it is the same cached slice returned
// by [Curve.Points].
func (c *Curve) Path() []LatLng {
	return c.Points()
}

// Style returns the curve's display attributes.
func (c *Curve) Style() Style {
	return c.style
}
