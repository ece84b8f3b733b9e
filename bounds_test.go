package bezierline

import (
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestCurveExtrema(t *testing.T) {
	approx := cmpopts.EquateApprox(0, 1e-6)

	// Symmetric bow over a west-east segment: one longitude extremum at
	// the apex.
	c := New(LL(0, 0), LL(10, 0))
	ex, n := c.Extrema()
	diff(t, ex[:n], []float64{0.5}, approx)

	c = New(LL(0, 0.5), LL(0.5, 0), WithControlPoint(LL(1, 1)))
	ex, n = c.Extrema()
	diff(t, ex[:n], []float64{1.0 / 3.0, 2.0 / 3.0}, approx)

	// Reverse direction
	c = New(LL(0.5, 0), LL(0, 0.5), WithControlPoint(LL(1, 1)))
	ex, n = c.Extrema()
	diff(t, ex[:n], []float64{1.0 / 3.0, 2.0 / 3.0}, approx)

	// A straight segment has no interior extrema.
	c = New(LL(0, 0), LL(10, 10), WithCurveFactor(0))
	if _, n := c.Extrema(); n != 0 {
		t.Errorf("got %d extrema for a straight segment, want 0", n)
	}
}

func TestCurveBounds(t *testing.T) {
	// from=(0,0), to=(10,0), factor 0.4 derives control (5,2); the apex
	// longitude is 1, half way to the control point.
	c := New(LL(0, 0), LL(10, 0))
	diff(t, c.Bounds(), Bounds{MinLat: 0, MinLng: 0, MaxLat: 10, MaxLng: 1})

	// Parabola dipping below both endpoints.
	c = New(LL(-1, 1), LL(1, 1), WithControlPoint(LL(0, -1)))
	diff(t, c.Bounds(), Bounds{MinLat: -1, MinLng: 0, MaxLat: 1, MaxLng: 1})

	// Straight segment: the box of the endpoints.
	c = New(LL(3, 9), LL(-2, 4), WithCurveFactor(0))
	diff(t, c.Bounds(), Bounds{MinLat: -2, MinLng: 4, MaxLat: 3, MaxLng: 9})
}

func TestBoundsContains(t *testing.T) {
	b := NewBoundsFromPoints(LL(0, 0), LL(10, 5))
	for _, ll := range []LatLng{LL(0, 0), LL(10, 5), LL(5, 2.5), LL(0, 5)} {
		if !b.Contains(ll) {
			t.Errorf("%s not contained in %+v", ll, b)
		}
	}
	for _, ll := range []LatLng{LL(-1, 0), LL(11, 5), LL(5, 5.01)} {
		if b.Contains(ll) {
			t.Errorf("%s contained in %+v", ll, b)
		}
	}
}

func TestBoundsContainCurve(t *testing.T) {
	// Every sample of a curve lies within its bounds.
	c := New(LL(-37.8, 144.9), LL(51.5, -0.1), WithCurveFactor(-0.6), WithSteps(50))
	b := c.Bounds()
	for _, ll := range c.Points() {
		if !b.Contains(ll) {
			t.Errorf("sample %s outside bounds %+v", ll, b)
		}
	}
}
