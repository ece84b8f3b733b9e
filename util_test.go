package bezierline

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func assertNear(t *testing.T, p0 LatLng, p1 LatLng, epsilon float64) {
	t.Helper()
	if d := p0.Distance(p1); d > epsilon {
		t.Fatalf("got %s, expected %s", p0, p1)
	}
}
