package curveisect

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestFindCurveBoundsCollisionsCrossSequence(t *testing.T) {
	a := []Curve{
		{0, 0, 0, 0, 1, 1, 1, 1},   // box [0,1]x[0,1]
		{10, 10, 10, 10, 11, 11, 11, 11}, // box [10,11]x[10,11], far away
	}
	b := []Curve{
		{0.5, 0.5, 0.5, 0.5, 1.5, 1.5, 1.5, 1.5}, // overlaps a[0]
	}

	collisions := findCurveBoundsCollisions(a, b, false, geometricEpsilon)
	test.T(t, len(collisions), 2)
	test.T(t, collisions[0], []int{0})
	test.T(t, len(collisions[1]), 0)
}

func TestFindCurveBoundsCollisionsSelfMode(t *testing.T) {
	curves := []Curve{
		{0, 0, 0, 0, 1, 1, 1, 1},
		{0.5, 0.5, 0.5, 0.5, 1.5, 1.5, 1.5, 1.5},
		{10, 10, 10, 10, 11, 11, 11, 11},
	}

	collisions := findCurveBoundsCollisions(curves, curves, true, geometricEpsilon)
	test.T(t, len(collisions), 3)
	// every curve collides with itself in self mode
	test.That(t, contains(collisions[0], 0))
	test.That(t, contains(collisions[0], 1))
	test.That(t, contains(collisions[1], 1))
	test.T(t, len(collisions[2]), 1) // only itself, the far box
	test.That(t, contains(collisions[2], 2))
}

func contains(xs []int, v int) bool {
	for _, x := range xs {
		if x == v {
			return true
		}
	}
	return false
}

func TestBroadPhaseCompleteness(t *testing.T) {
	// Every narrow-phase intersection must trace back to a pair that the
	// broad phase itself reported as colliding.
	a := []Curve{
		{0, 0, 3, 10, 7, 10, 10, 0},
		{10, 10, 10, 10, 11, 11, 11, 11}, // disjoint decoy
	}
	b := []Curve{
		{0, 10, 3, 0, 7, 0, 10, 10},
	}

	collisions := findCurveBoundsCollisions(a, b, false, geometricEpsilon)
	for i, curve1 := range a {
		for j, curve2 := range b {
			var locations []Record
			getCurveIntersections(curve1, curve2, &locations)
			if len(locations) > 0 {
				test.That(t, contains(collisions[i], j))
			}
		}
	}
}
