package curveisect

// maxRecursion and maxCalls bound the Bézier-clipping recursion so that
// pathological or near-tangent curve pairs cannot hang the search; both
// values come straight from the algorithm this is ported from.
const (
	maxRecursion = 40
	maxCalls     = 4096
)

// bezierIntersections is the Bézier-clipping narrow phase (Sederberg &
// Nishita). It repeatedly builds a fat line around v2, clips v1 against
// it to shrink the candidate parameter window, and recurses until both
// windows are narrower than fatLineEpsilon, at which point their
// midpoints are reported as an intersection. When a clip keeps more than
// 80% of v1's window, the curve with the wider window is split in half
// and both halves are searched. v1/v2 normally swap roles on each
// recursive call (tracked by flip), so the curve just clipped is the one
// the next fat line is built around; they keep their roles while v2's
// window is already narrower than fatLineEpsilon but not zero.
func bezierIntersections(
	v1, v2 Curve,
	locations *[]Record,
	flip bool,
	recursion int,
	calls int,
	tMin, tMax, uMin, uMax float64,
) int {
	calls++
	recursion++
	if calls >= maxCalls || recursion >= maxRecursion {
		return calls
	}

	q0x, q0y := v2[0], v2[1]
	q3x, q3y := v2[6], v2[7]
	dMin, dMax, d1, d2 := fatLine(v2)
	dp0 := signedDistance(q0x, q0y, q3x, q3y, v1[0], v1[1], false)
	dp1 := signedDistance(q0x, q0y, q3x, q3y, v1[2], v1[3], false)
	dp2 := signedDistance(q0x, q0y, q3x, q3y, v1[4], v1[5], false)
	dp3 := signedDistance(q0x, q0y, q3x, q3y, v1[6], v1[7], false)
	top, bottom := convexHull(dp0, dp1, dp2, dp3)

	if d1 == 0 && d2 == 0 && dp0 == 0 && dp1 == 0 && dp2 == 0 && dp3 == 0 {
		// v1 and v2 are colinear; Bézier clipping cannot narrow a
		// degenerate fat line, so this pair contributes no records.
		return calls
	}

	tMinClip, ok := clipConvexHull(top, bottom, dMin, dMax)
	if !ok {
		return calls
	}
	tMaxClip, ok := clipConvexHull(reversed(top), reversed(bottom), dMin, dMax)
	if !ok {
		return calls
	}

	tMinNew := tMin + (tMax-tMin)*tMinClip
	tMaxNew := tMin + (tMax-tMin)*tMaxClip

	if max(uMax-uMin, tMaxNew-tMinNew) < fatLineEpsilon {
		t := (tMinNew + tMaxNew) / 2.0
		u := (uMin + uMax) / 2.0
		t1, t2 := t, u
		if flip {
			t1, t2 = u, t
		}
		if t1 < curveTimeEpsilon || t1 > 1-curveTimeEpsilon ||
			t2 < curveTimeEpsilon || t2 > 1-curveTimeEpsilon {
			return calls
		}

		// v1 and v2 span only [tMin,tMax] and [uMin,uMax] of the curves
		// they were cut from, so they are evaluated at local parameters.
		sT, sU := 0.0, 0.0
		if tMax > tMin {
			sT = min(max((t-tMin)/(tMax-tMin), 0), 1)
		}
		if uMax > uMin {
			sU = min(max((u-uMin)/(uMax-uMin), 0), 1)
		}
		if flip {
			if p1, ok := evaluate(v2, sU, evalPoint); ok {
				if p2, ok := evaluate(v1, sT, evalPoint); ok {
					*locations = append(*locations, Record{t1, p1.X, p1.Y, t2, p2.X, p2.Y})
				}
			}
		} else {
			if p1, ok := evaluate(v1, sT, evalPoint); ok {
				if p2, ok := evaluate(v2, sU, evalPoint); ok {
					*locations = append(*locations, Record{t1, p1.X, p1.Y, t2, p2.X, p2.Y})
				}
			}
		}
		return calls
	}

	v1 = splitCubicBezierPart(v1, tMinClip, tMaxClip)
	uDiff := uMax - uMin

	if tMaxClip-tMinClip > 0.8 {
		// Clipping barely shrank v1's window: subdividing is more
		// productive than clipping again next round.
		if tMaxNew-tMinNew > uDiff {
			left, right := splitCubicBezier(v1, 0.5)
			t := (tMinNew + tMaxNew) / 2.0
			calls = bezierIntersections(v2, left, locations, !flip, recursion, calls, uMin, uMax, tMinNew, t)
			calls = bezierIntersections(v2, right, locations, !flip, recursion, calls, uMin, uMax, t, tMaxNew)
		} else {
			left, right := splitCubicBezier(v2, 0.5)
			u := (uMin + uMax) / 2.0
			calls = bezierIntersections(left, v1, locations, !flip, recursion, calls, uMin, u, tMinNew, tMaxNew)
			calls = bezierIntersections(right, v1, locations, !flip, recursion, calls, u, uMax, tMinNew, tMaxNew)
		}
	} else if uDiff == 0 || uDiff >= fatLineEpsilon {
		calls = bezierIntersections(v2, v1, locations, !flip, recursion, calls, uMin, uMax, tMinNew, tMaxNew)
	} else {
		calls = bezierIntersections(v1, v2, locations, flip, recursion, calls, tMinNew, tMaxNew, uMin, uMax)
	}

	return calls
}

func reversed(pts []Point) []Point {
	out := make([]Point, len(pts))
	for i, p := range pts {
		out[len(pts)-1-i] = p
	}
	return out
}
