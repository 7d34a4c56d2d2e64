package curveisect

import (
	"math"
	"testing"

	"github.com/tdewolff/test"
)

func TestSelfIntersectFiveSegmentFigure(t *testing.T) {
	curves := []Curve{
		{38.5, 0, 38.5, 0, 62, 87, 62, 87},
		{0, 64.5, 0, 64.5, 80, 17.5, 80, 17.5},
		{80, 17.5, 80, 17.5, 0, 17.5, 0, 17.5},
		{0, 17.5, 0, 17.5, 78.5, 67, 78.5, 67},
		{78.5, 67, 78.5, 67, 0, 64.5, 0, 64.5},
	}

	records := SelfIntersect(curves)
	test.T(t, len(records), 5)

	want := []Point{
		{48.26, 36.15},
		{43.23, 17.50},
		{52.10, 50.35},
		{56.41, 66.30},
		{38.59, 41.83},
	}
	for _, r := range records {
		test.Float(t, r.T1, -1.0)
		test.Float(t, r.T2, -1.0)
		found := false
		for _, w := range want {
			if math.Abs(r.X1-w.X) < 0.01 && math.Abs(r.Y1-w.Y) < 0.01 {
				found = true
				break
			}
		}
		test.That(t, found)
	}
}

func TestSelfIntersectionNoLoop(t *testing.T) {
	// A gently curved, non-looping cubic has no self-intersection.
	v := Curve{0, 0, 10, 10, 20, 10, 30, 0}
	_, _, ok := selfIntersection(v)
	test.That(t, !ok)
}
