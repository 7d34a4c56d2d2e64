package curveisect

// Intersect returns every intersection between a curve in curves1 and a
// curve in curves2, after a bounding-box broad phase prunes pairs that
// cannot possibly meet.
func Intersect(curves1, curves2 []Curve) []Record {
	var locations []Record
	GetIntersections(curves1, curves2, false, &locations)
	return locations
}

// SelfIntersect returns every intersection within curves, both between
// distinct curves in the sequence and within a single curve's own loop.
func SelfIntersect(curves []Curve) []Record {
	var locations []Record
	GetIntersections(curves, curves, true, &locations)
	return locations
}

// GetIntersections is the orchestration entry point shared by Intersect
// and SelfIntersect: it runs the broad phase once, then for each curve
// in curves1 tests its own loop (in self mode) and every bounds
// collision the broad phase reported, appending records to locations.
// In self mode only collisions with a later curve (index > i) are
// tested, so each pair is tested once.
func GetIntersections(curves1, curves2 []Curve, isSelf bool, locations *[]Record) {
	boundsCollisions := findCurveBoundsCollisions(curves1, curves2, isSelf, geometricEpsilon)

	for i, curve1 := range curves1 {
		if isSelf {
			if t1, t2, ok := selfIntersection(curve1); ok {
				p1, ok1 := evaluate(curve1, t1, evalPoint)
				p2, ok2 := evaluate(curve1, t2, evalPoint)
				if ok1 && ok2 {
					*locations = append(*locations, Record{t1, p1.X, p1.Y, t2, p2.X, p2.Y})
				}
			}
		}

		for _, index := range boundsCollisions[i] {
			if !isSelf || index > i {
				getCurveIntersections(curve1, curves2[index], locations)
			}
		}
	}
}
