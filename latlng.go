package bezierline

import (
	"fmt"
	"math"
)

// LatLng is a geographic coordinate in degrees. It is a plain value; all
// methods return new values and never mutate the receiver.
type LatLng struct {
	Lat float64
	Lng float64
}

// LL returns the coordinate (lat, lng).
func LL(lat, lng float64) LatLng {
	return LatLng{Lat: lat, Lng: lng}
}

func (ll LatLng) String() string {
	return fmt.Sprintf("(%g, %g)", ll.Lat, ll.Lng)
}

func (ll LatLng) Splat() (float64, float64) {
	return ll.Lat, ll.Lng
}

// Midpoint returns the arithmetic midpoint of two coordinates.
func (ll LatLng) Midpoint(o LatLng) LatLng {
	return LatLng{
		Lat: 0.5 * (ll.Lat + o.Lat),
		Lng: 0.5 * (ll.Lng + o.Lng),
	}
}

// Lerp linearly interpolates between two coordinates.
func (ll LatLng) Lerp(o LatLng, t float64) LatLng {
	return LatLng{
		Lat: ll.Lat + (o.Lat-ll.Lat)*t,
		Lng: ll.Lng + (o.Lng-ll.Lng)*t,
	}
}

// Distance returns the Euclidean distance between two coordinates in flat
// lat/lng space, in degrees. It is not a great-circle distance.
func (ll LatLng) Distance(o LatLng) float64 {
	return math.Hypot(ll.Lat-o.Lat, ll.Lng-o.Lng)
}

// IsInf reports whether at least one of lat and lng is infinite.
func (ll LatLng) IsInf() bool {
	return math.IsInf(ll.Lat, 0) || math.IsInf(ll.Lng, 0)
}

// IsNaN reports whether at least one of lat and lng is NaN.
func (ll LatLng) IsNaN() bool {
	return math.IsNaN(ll.Lat) || math.IsNaN(ll.Lng)
}
